package ronda

import (
	"quince-server/pkg/deck"

	"github.com/sirupsen/logrus"
)

const (
	handSize     = 3
	mesaDealSize = 4
	quinceTarget = 15
)

// Ronda is one complete play-through of a single deck of cards, from the
// initial deal until every hand has been played out. Captured cards accumulate
// in per-player pilas; scoring happens elsewhere once the ronda is finished.
type Ronda struct {
	players     []Player
	dealerIndex int
	deck        *deck.Deck
	mesa        deck.Hand

	currentPlayerIndex int

	// lastPicker gets whatever remains on the mesa when the ronda ends.
	// By convention it starts as the dealer.
	lastPicker Player

	finished    bool
	dealtEscoba bool

	logger  logrus.FieldLogger
	logChan chan []*LogMessage
}

// Result describes what a call to PlayTurn did
type Result struct {
	// Captured holds the cards moved to the player's pila, or nil on a drop
	Captured []*deck.Card

	// ClearedMesa is true if a capture left the mesa empty. The engine does
	// not record this anywhere; the scoring side decides whether it counts as
	// an escoba.
	ClearedMesa bool

	// Redealt is true if a fresh hand was dealt to every player
	Redealt bool

	// Finished is true if this turn ended the ronda
	Finished bool
}

// CanPlayOut reports whether a deck of deckSize cards deals out to n players
// in whole hand-cycles after the opening mesa deal. Any other size strands
// cards the redeal cadence can never reach.
func CanPlayOut(deckSize, n int) bool {
	rest := deckSize - mesaDealSize
	return rest > 0 && rest%(handSize*n) == 0
}

// New starts a ronda: 4 cards to the mesa (awarded to the dealer as an escoba
// if they sum to 15), 3 cards to each player, and the first turn goes to the
// player immediately clockwise of the dealer. The deck must play out in whole
// hand-cycles so that it is empty exactly when the last hand is.
func New(logger logrus.FieldLogger, players []Player, dealer Player, d *deck.Deck) (*Ronda, error) {
	if len(players) < 2 {
		return nil, PlayerCountError(len(players))
	}

	dealerIndex := -1
	for i, player := range players {
		for _, other := range players[i+1:] {
			if player == other {
				return nil, ErrDuplicatePlayer
			}
		}

		if player == dealer {
			dealerIndex = i
		}
	}

	if dealerIndex < 0 {
		return nil, ErrDealerNotPlaying
	}

	if !d.CanDeal(mesaDealSize + handSize*len(players)) {
		return nil, ErrDeckExhausted
	}

	if !CanPlayOut(d.CardsLeft(), len(players)) {
		return nil, ErrUnevenDeck
	}

	r := &Ronda{
		players:     players,
		dealerIndex: dealerIndex,
		deck:        d,
		lastPicker:  dealer,
		logger:      logger,
		logChan:     make(chan []*LogMessage, 256),
	}

	mesa, err := d.Deal(mesaDealSize)
	if err != nil {
		return nil, err
	}
	r.mesa = mesa

	// the sum-to-15 check fires only on this opening deal, never on a redeal
	if r.mesa.QuinceSum() == quinceTarget {
		cards := r.Mesa()
		dealer.Pile().Add(cards, true)
		r.mesa = deck.Hand{}
		r.dealtEscoba = true

		r.logger.WithField("player", dealer.Name()).Info("escoba on the deal")
		r.sendLogMessages(newLogMessage(dealer.Name(), cards, "{} was dealt an escoba"))
	}

	if err := r.dealHands(); err != nil {
		return nil, err
	}

	r.currentPlayerIndex = r.dealerIndex
	r.nextPlayer()

	return r, nil
}

// dealHands deals a hand to each player.
// Hands are dealt iterating the players in their original order, not rotated
// to start left of the dealer the way turn order is. That mismatch is how the
// game has always dealt; do not harmonize it with the turn order.
func (r *Ronda) dealHands() error {
	if r.finished {
		return ErrRondaFinished
	}

	if !r.deck.CanDeal(handSize * len(r.players)) {
		return ErrDeckExhausted
	}

	for _, player := range r.players {
		cards, err := r.deck.Deal(handSize)
		if err != nil {
			return err
		}

		player.ReceiveHand(cards)
	}

	return nil
}

func (r *Ronda) nextPlayer() {
	r.currentPlayerIndex = (r.currentPlayerIndex + 1) % len(r.players)
}

// CurrentPlayer returns the player whose turn is active
func (r *Ronda) CurrentPlayer() Player {
	return r.players[r.currentPlayerIndex]
}

// Mesa returns a copy of the cards on the mesa
func (r *Ronda) Mesa() []*deck.Card {
	return r.mesa.Clone()
}

// IsFinished returns true once the deck is empty and all players have played
// their last cards. A finished ronda never becomes unfinished.
func (r *Ronda) IsFinished() bool {
	return r.finished
}

// DealtEscoba returns true if the opening 4-card deal summed to 15
func (r *Ronda) DealtEscoba() bool {
	return r.dealtEscoba
}

// DeckRemaining returns the number of undealt cards
func (r *Ronda) DeckRemaining() int {
	return r.deck.CardsLeft()
}

// Players returns the players in their fixed seating order
func (r *Ronda) Players() []Player {
	return append([]Player{}, r.players...)
}

// Dealer returns the player who dealt this ronda
func (r *Ronda) Dealer() Player {
	return r.players[r.dealerIndex]
}

// LogChan returns a channel the engine sends game-log messages to
func (r *Ronda) LogChan() <-chan []*LogMessage {
	return r.logChan
}

// PlayTurn resolves one action for the current player and advances, or ends,
// the ronda. An empty or nil mesaCards means the player drops ownCard on the
// mesa; otherwise the player captures the named mesa cards along with ownCard.
// Validation happens before any mutation, so a returned error means no state
// changed.
func (r *Ronda) PlayTurn(ownCard *deck.Card, mesaCards []*deck.Card) (*Result, error) {
	if r.finished {
		return nil, ErrRondaFinished
	}

	player := r.CurrentPlayer()
	res := &Result{}

	if len(mesaCards) == 0 {
		if err := player.PlaceOnMesa(&r.mesa, ownCard); err != nil {
			return nil, err
		}

		r.sendLogMessages(newLogMessage(player.Name(), []*deck.Card{ownCard}, "{} dropped a card on the mesa"))
	} else {
		if err := player.CaptureFromMesa(&r.mesa, ownCard, mesaCards); err != nil {
			return nil, err
		}

		r.lastPicker = player

		res.Captured = append([]*deck.Card{ownCard}, mesaCards...)
		res.ClearedMesa = len(r.mesa) == 0

		r.sendLogMessages(newLogMessage(player.Name(), res.Captured, "{} picked up %d cards", len(mesaCards)))
	}

	// The dealer always plays last in a hand-cycle, so an empty dealer hand
	// means every player's hand is empty and it's time to redeal or finish.
	handIsDone := player == r.Dealer() && len(player.Hand()) == 0

	switch {
	case handIsDone && r.deck.CardsLeft() == 0:
		remainder := r.Mesa()
		r.lastPicker.Pile().Add(remainder, false)
		r.mesa = deck.Hand{}
		r.finished = true
		res.Finished = true

		r.logger.WithFields(logrus.Fields{
			"lastPicker": r.lastPicker.Name(),
			"remainder":  len(remainder),
		}).Debug("ronda finished")
		r.sendLogMessages(newLogMessage(r.lastPicker.Name(), remainder, "{} took the remaining mesa cards"))
	case handIsDone:
		if err := r.dealHands(); err != nil {
			return nil, err
		}

		res.Redealt = true
		r.nextPlayer()

		r.sendLogMessages(newLogMessage("", nil, "A new hand has been dealt"))
	default:
		r.nextPlayer()
	}

	return res, nil
}

func (r *Ronda) sendLogMessages(msg ...*LogMessage) {
	if r.logChan != nil {
		select {
		case r.logChan <- msg:
		default:
			r.logger.Warn("log channel is full; dropping message")
		}
	}
}
