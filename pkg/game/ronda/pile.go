package ronda

import (
	"quince-server/pkg/deck"
)

// Pila is a player's pile of captured cards, scored at the end of the ronda
type Pila struct {
	cards   deck.Hand
	escobas int
}

// Add appends the cards to the pile as one capture.
// If escoba is true, the capture also counts an escoba bonus.
func (p *Pila) Add(cards []*deck.Card, escoba bool) {
	p.cards = append(p.cards, cards...)
	if escoba {
		p.escobas++
	}
}

// MarkEscoba records an escoba for a capture that was already added.
// The engine does not track in-play escobas itself; the caller notes one when a
// capture clears the mesa.
func (p *Pila) MarkEscoba() {
	p.escobas++
}

// Cards returns a copy of the captured cards
func (p *Pila) Cards() []*deck.Card {
	return p.cards.Clone()
}

// Escobas returns the number of escobas earned
func (p *Pila) Escobas() int {
	return p.escobas
}

// Count returns the number of captured cards
func (p *Pila) Count() int {
	return len(p.cards)
}
