// Package match drives consecutive rondas until one player reaches the
// winning score, rotating the dealer clockwise between rondas and keeping the
// running point totals.
package match

import (
	"errors"

	"github.com/sirupsen/logrus"
	"quince-server/internal/rng"
	"quince-server/pkg/deck"
	"quince-server/pkg/game/ronda"
	"quince-server/pkg/game/scoring"
)

// WinningScore ends the match once a player's total reaches it
const WinningScore = 30

// ErrRondaInProgress happens when a new ronda is started before the current one finished
var ErrRondaInProgress = errors.New("the current ronda is not finished")

// ErrNoRonda happens when a turn is played with no ronda in progress
var ErrNoRonda = errors.New("no ronda in progress")

// ErrMatchOver happens when play continues after a player reached the winning score
var ErrMatchOver = errors.New("the match is over")

// ErrUnsupportedPlayerCount happens when the 40-card deck cannot be dealt out
// to the given number of players in whole hand-cycles
var ErrUnsupportedPlayerCount = errors.New("player count cannot play out a full deck")

// Match is a full game of quince: as many rondas as it takes for someone to
// reach thirty points
type Match struct {
	players     []ronda.Player
	dealerIndex int
	totals      map[string]int
	current     *ronda.Ronda
	lastTallies map[string]*scoring.Tally

	logger logrus.FieldLogger
}

// New returns a match between the given players. The first player deals the
// first ronda.
func New(logger logrus.FieldLogger, players []ronda.Player) (*Match, error) {
	if len(players) < 2 {
		return nil, ronda.PlayerCountError(len(players))
	}

	if !ronda.CanPlayOut(deck.Size, len(players)) {
		return nil, ErrUnsupportedPlayerCount
	}

	totals := make(map[string]int, len(players))
	for _, player := range players {
		totals[player.Name()] = 0
	}

	return &Match{
		players: players,
		totals:  totals,
		logger:  logger,
	}, nil
}

// StartRonda shuffles a fresh deck and deals the next ronda.
// A seed of 0 picks a random one.
func (m *Match) StartRonda(seed int64) error {
	if _, over := m.Winner(); over {
		return ErrMatchOver
	}

	if m.current != nil && !m.current.IsFinished() {
		return ErrRondaInProgress
	}

	if seed == 0 {
		seed = rng.Seed()
	}

	d := deck.New()
	d.Shuffle(seed)

	for _, player := range m.players {
		player.NewRonda()
	}

	dealer := m.players[m.dealerIndex]
	r, err := ronda.New(m.logger, m.players, dealer, d)
	if err != nil {
		return err
	}

	m.current = r
	m.lastTallies = nil

	m.logger.WithFields(logrus.Fields{
		"dealer": dealer.Name(),
		"seed":   seed,
	}).Info("ronda started")

	return nil
}

// Current returns the ronda in progress, or nil
func (m *Match) Current() *ronda.Ronda {
	return m.current
}

// Play resolves one turn of the current ronda. A capture that clears the mesa
// is credited to the capturing player as an escoba here, since the engine only
// reports the event. When the turn finishes the ronda, the piles are scored,
// totals updated, and the deal rotates.
func (m *Match) Play(ownCard *deck.Card, mesaCards []*deck.Card) (*ronda.Result, error) {
	if m.current == nil {
		return nil, ErrNoRonda
	}

	player := m.current.CurrentPlayer()

	res, err := m.current.PlayTurn(ownCard, mesaCards)
	if err != nil {
		return nil, err
	}

	if res.ClearedMesa {
		player.Pile().MarkEscoba()
		m.logger.WithField("player", player.Name()).Info("escoba")
	}

	if res.Finished {
		m.finishRonda()
	}

	return res, nil
}

// AutoPlay lets NPCs take their turns until it's a non-NPC's turn or the ronda
// ends. It returns the number of turns played.
func (m *Match) AutoPlay() (int, error) {
	if m.current == nil {
		return 0, ErrNoRonda
	}

	played := 0
	for !m.current.IsFinished() {
		npc, ok := m.current.CurrentPlayer().(*ronda.NPC)
		if !ok {
			break
		}

		move := npc.ChooseMove(m.current.Mesa())
		if _, err := m.Play(move.OwnCard, move.MesaCards); err != nil {
			return played, err
		}

		played++
	}

	return played, nil
}

func (m *Match) finishRonda() {
	tallies := scoring.Score(m.players)
	for name, tally := range tallies {
		m.totals[name] += tally.Points
	}

	m.lastTallies = tallies
	m.dealerIndex = (m.dealerIndex + 1) % len(m.players)

	m.logger.WithField("totals", m.totals).Info("ronda finished")
}

// Totals returns a copy of the running point totals
func (m *Match) Totals() map[string]int {
	totals := make(map[string]int, len(m.totals))
	for name, points := range m.totals {
		totals[name] = points
	}

	return totals
}

// LastTallies returns the per-player breakdown of the most recently finished
// ronda, or nil if none finished since the last deal
func (m *Match) LastTallies() map[string]*scoring.Tally {
	return m.lastTallies
}

// Players returns the players in seating order
func (m *Match) Players() []ronda.Player {
	return append([]ronda.Player{}, m.players...)
}

// Winner returns the first player whose total reached the winning score
func (m *Match) Winner() (ronda.Player, bool) {
	for _, player := range m.players {
		if m.totals[player.Name()] >= WinningScore {
			return player, true
		}
	}

	return nil, false
}

// Run plays NPC-only rondas until the match is over and returns the winner.
// It fails if any player is not an NPC.
func (m *Match) Run() (ronda.Player, error) {
	for {
		if winner, over := m.Winner(); over {
			return winner, nil
		}

		if err := m.StartRonda(0); err != nil {
			return nil, err
		}

		if _, err := m.AutoPlay(); err != nil {
			return nil, err
		}

		if !m.current.IsFinished() {
			return nil, errors.New("match requires NPC players to run unattended")
		}
	}
}
