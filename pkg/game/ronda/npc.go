package ronda

import (
	"quince-server/internal/rng"
	"quince-server/pkg/deck"
)

// NPC is an automated player. It owns its hand and pila like any other player
// and picks its own moves when asked.
type NPC struct {
	*BasePlayer
	rng rng.Generator
}

// NewNPC returns an automated player
func NewNPC(name string, gen rng.Generator) *NPC {
	return &NPC{
		BasePlayer: NewPlayer(name),
		rng:        gen,
	}
}

// ChooseMove picks the NPC's next play against the given mesa.
// It prefers the capture that takes the most cards (favoring the 7 de velo on
// a tie), breaking remaining ties at random. With no capture available it
// drops its lowest-value card.
func (n *NPC) ChooseMove(mesa []*deck.Card) *Move {
	captures := findCaptures(n.Hand(), mesa)
	if len(captures) > 0 {
		best := make([]*Move, 0, 1)
		bestScore := -1
		for _, move := range captures {
			score := len(move.MesaCards) * 2
			for _, card := range move.MesaCards {
				if card.IsSieteDeVelo() {
					score++
				}
			}
			if move.OwnCard.IsSieteDeVelo() {
				// keep the velo in the pila rather than the hand
				score++
			}

			if score > bestScore {
				best = best[:0]
				bestScore = score
			}

			if score == bestScore {
				best = append(best, move)
			}
		}

		return best[n.rng.Intn(len(best))]
	}

	hand := n.Hand()
	drop := hand[0]
	for _, card := range hand[1:] {
		if card.QuinceValue() < drop.QuinceValue() {
			drop = card
		}
	}

	return &Move{OwnCard: drop}
}
