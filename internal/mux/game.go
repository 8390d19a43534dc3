package mux

import (
	"errors"
	"fmt"
	"net/http"

	gmux "github.com/gorilla/mux"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"quince-server/internal/config"
	"quince-server/internal/rng"
	"quince-server/internal/util"
	"quince-server/pkg/deck"
	"quince-server/pkg/game/match"
	"quince-server/pkg/game/ronda"
	"quince-server/pkg/game/scoring"
)

type createGamePayload struct {
	// PlayerName seats one prompt-driven player; empty means NPCs only
	PlayerName string `json:"playerName"`
	// NPCCount is the number of automated seats; zero or absent falls back
	// to the configured default
	NPCCount int `json:"npcCount"`
	// Seed fixes the first shuffle; 0 picks a random one
	Seed int64 `json:"seed"`
}

type createGameResponse struct {
	ID string `json:"id"`
}

func (m *Mux) postGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createGamePayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		cfg := config.Instance()

		npcCount := payload.NPCCount
		if npcCount == 0 {
			npcCount = cfg.Game.DefaultNPCCount
		}

		players := make([]ronda.Player, 0, npcCount+1)
		human := ""
		if payload.PlayerName != "" {
			human = payload.PlayerName
			players = append(players, ronda.NewPlayer(payload.PlayerName))
		}

		// totals and tallies key on names, so no two seats may share one
		taken := map[string]bool{human: true}
		for i := 0; i < npcCount; i++ {
			name := util.RandomNPCName()
			for taken[name] {
				name = util.RandomNPCName()
			}
			taken[name] = true

			players = append(players, ronda.NewNPC(name, rng.Crypto{}))
		}

		if len(players) > cfg.Game.MaxPlayers {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("at most %d players per game", cfg.Game.MaxPlayers))
			return
		}

		game, err := match.New(logrus.StandardLogger(), players)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		s := &session{match: game, human: human}

		s.lock.Lock()
		defer s.lock.Unlock()

		if err := game.StartRonda(payload.Seed); err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		if err := s.advanceNPCs(); err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		id := uuid.New().String()
		m.putSession(id, s)

		logrus.WithFields(logrus.Fields{
			"game":    id,
			"players": len(players),
		}).Info("game created")

		writeJSON(w, http.StatusCreated, createGameResponse{ID: id})
	}
}

type playerState struct {
	Name    string `json:"name"`
	IsNPC   bool   `json:"isNpc"`
	Cards   int    `json:"cards"`
	Escobas int    `json:"escobas"`
	Total   int    `json:"total"`
}

type gameState struct {
	Mesa          []string                  `json:"mesa"`
	Hand          []string                  `json:"hand,omitempty"`
	CurrentPlayer string                    `json:"currentPlayer,omitempty"`
	DeckRemaining int                       `json:"deckRemaining"`
	Players       []playerState             `json:"players"`
	RondaFinished bool                      `json:"rondaFinished"`
	DealtEscoba   bool                      `json:"dealtEscoba"`
	LastTallies   map[string]*scoring.Tally `json:"lastTallies,omitempty"`
	Winner        string                    `json:"winner,omitempty"`
}

func cardStrings(cards []*deck.Card) []string {
	out := make([]string, len(cards))
	for i, card := range cards {
		out[i] = deck.CardToString(card)
	}

	return out
}

func (s *session) state() *gameState {
	state := &gameState{
		LastTallies: s.match.LastTallies(),
	}

	totals := s.match.Totals()
	for _, player := range s.match.Players() {
		_, isNPC := player.(*ronda.NPC)
		state.Players = append(state.Players, playerState{
			Name:    player.Name(),
			IsNPC:   isNPC,
			Cards:   player.Pile().Count(),
			Escobas: player.Pile().Escobas(),
			Total:   totals[player.Name()],
		})

		if s.human != "" && player.Name() == s.human {
			state.Hand = cardStrings(player.Hand())
		}
	}

	if r := s.match.Current(); r != nil {
		state.Mesa = cardStrings(r.Mesa())
		state.DeckRemaining = r.DeckRemaining()
		state.RondaFinished = r.IsFinished()
		state.DealtEscoba = r.DealtEscoba()
		if !r.IsFinished() {
			state.CurrentPlayer = r.CurrentPlayer().Name()
		}
	}

	if winner, over := s.match.Winner(); over {
		state.Winner = winner.Name()
	}

	return state
}

func (m *Mux) getGameUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := m.getSession(gmux.Vars(r)["uuid"])
		if !ok {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		s.lock.Lock()
		defer s.lock.Unlock()

		writeJSON(w, http.StatusOK, s.state())
	}
}

type playPayload struct {
	OwnCard   string `json:"ownCard"`
	MesaCards string `json:"mesaCards"`
}

func (m *Mux) postGameUUIDPlay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := m.getSession(gmux.Vars(r)["uuid"])
		if !ok {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		var payload playPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		if payload.OwnCard == "" {
			writeJSONError(w, http.StatusBadRequest, errors.New("ownCard is required"))
			return
		}

		ownCard, err := cardFromRequest(payload.OwnCard)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		mesaCards, err := cardsFromRequest(payload.MesaCards)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		s.lock.Lock()
		defer s.lock.Unlock()

		current := s.match.Current()
		if current == nil || current.IsFinished() {
			writeJSONError(w, http.StatusConflict, ronda.ErrRondaFinished)
			return
		}

		if s.human == "" || current.CurrentPlayer().Name() != s.human {
			writeJSONError(w, http.StatusConflict, errors.New("it is not your turn"))
			return
		}

		if _, err := s.match.Play(ownCard, mesaCards); err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		if err := s.advanceNPCs(); err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, s.state())
	}
}

// advanceNPCs plays NPC turns and rolls into the next ronda whenever one
// finishes without a match winner. It stops at a human turn or the end of the
// match. The caller must hold the session lock.
func (s *session) advanceNPCs() error {
	for {
		if _, err := s.match.AutoPlay(); err != nil {
			return err
		}

		current := s.match.Current()
		if !current.IsFinished() {
			return nil
		}

		if _, over := s.match.Winner(); over {
			return nil
		}

		// keep the finished ronda's log messages before the channel goes away
		s.stashLogs()

		if err := s.match.StartRonda(0); err != nil {
			return err
		}
	}
}
