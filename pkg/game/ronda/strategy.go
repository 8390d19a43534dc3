package ronda

import (
	"quince-server/pkg/deck"
)

// Move is a candidate play: drop ownCard if MesaCards is empty, otherwise
// capture MesaCards with it
type Move struct {
	OwnCard   *deck.Card
	MesaCards []*deck.Card
}

// IsCapture returns true if the move picks up cards from the mesa
func (m *Move) IsCapture() bool {
	return len(m.MesaCards) > 0
}

// findCaptures returns every capture available to a hand against the mesa.
// A capture is any hand card plus a subset of mesa cards whose quince values
// sum to 15. The mesa holds at most a handful of cards, so a bitmask walk over
// its subsets is plenty.
func findCaptures(hand, mesa []*deck.Card) []*Move {
	moves := make([]*Move, 0)

	for _, own := range hand {
		need := quinceTarget - own.QuinceValue()

		for mask := 1; mask < 1<<len(mesa); mask++ {
			sum := 0
			for i, card := range mesa {
				if mask&(1<<i) != 0 {
					sum += card.QuinceValue()
				}
			}

			if sum != need {
				continue
			}

			subset := make([]*deck.Card, 0)
			for i, card := range mesa {
				if mask&(1<<i) != 0 {
					subset = append(subset, card)
				}
			}

			moves = append(moves, &Move{OwnCard: own, MesaCards: subset})
		}
	}

	return moves
}
