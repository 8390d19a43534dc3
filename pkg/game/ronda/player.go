package ronda

import (
	"quince-server/pkg/deck"
)

// Player is a participant in a ronda. It owns a hand and a pila; the decision
// of which card to play comes from outside the engine (a prompt, an HTTP
// request, or an NPC strategy).
type Player interface {
	// Name returns the player's display name
	Name() string

	// ReceiveHand adds the dealt cards to the player's hand
	ReceiveHand(cards []*deck.Card)

	// Hand returns a snapshot of the player's hand
	Hand() []*deck.Card

	// PlaceOnMesa moves ownCard from the player's hand onto the mesa
	PlaceOnMesa(mesa *deck.Hand, ownCard *deck.Card) error

	// CaptureFromMesa moves ownCard and the named mesa cards into the pila as one capture
	CaptureFromMesa(mesa *deck.Hand, ownCard *deck.Card, mesaCards []*deck.Card) error

	// Pile returns the player's pila
	Pile() *Pila

	// NewRonda clears the hand and pila ahead of a fresh ronda
	NewRonda()
}

// BasePlayer implements the card mechanics shared by all player variants
type BasePlayer struct {
	name string
	hand deck.Hand
	pila *Pila
}

// NewPlayer returns a new player with an empty hand and pila
func NewPlayer(name string) *BasePlayer {
	return &BasePlayer{
		name: name,
		hand: make(deck.Hand, 0),
		pila: &Pila{},
	}
}

// Name returns the player's display name
func (p *BasePlayer) Name() string {
	return p.name
}

// ReceiveHand adds the dealt cards to the player's hand
func (p *BasePlayer) ReceiveHand(cards []*deck.Card) {
	p.hand = append(p.hand, cards...)
}

// Hand returns a shallow clone of the player's hand
func (p *BasePlayer) Hand() []*deck.Card {
	return p.hand.Clone()
}

// Pile returns the player's pila
func (p *BasePlayer) Pile() *Pila {
	return p.pila
}

// NewRonda clears the hand and pila ahead of a fresh ronda
func (p *BasePlayer) NewRonda() {
	p.hand = make(deck.Hand, 0)
	p.pila = &Pila{}
}

// PlaceOnMesa moves ownCard from the player's hand onto the mesa
func (p *BasePlayer) PlaceOnMesa(mesa *deck.Hand, ownCard *deck.Card) error {
	if !p.hand.Discard(ownCard) {
		return ErrCardNotInHand
	}

	mesa.AddCard(ownCard)
	return nil
}

// CaptureFromMesa moves ownCard and the named mesa cards into the pila as one capture.
// All membership checks happen before any card moves.
func (p *BasePlayer) CaptureFromMesa(mesa *deck.Hand, ownCard *deck.Card, mesaCards []*deck.Card) error {
	if !p.hand.HasCard(ownCard) {
		return ErrCardNotInHand
	}

	seen := make(map[deck.Card]bool)
	for _, card := range mesaCards {
		if !mesa.HasCard(card) {
			return ErrCardNotOnMesa
		}

		if seen[*card] {
			return ErrDuplicateMesaCard
		}

		seen[*card] = true
	}

	p.hand.Discard(ownCard)

	captured := make([]*deck.Card, 0, len(mesaCards)+1)
	captured = append(captured, ownCard)
	for _, card := range mesaCards {
		mesa.Discard(card)
		captured = append(captured, card)
	}

	p.pila.Add(captured, false)
	return nil
}
