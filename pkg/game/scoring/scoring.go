// Package scoring tallies the points from a finished ronda.
//
// Each escoba is worth a point. One point each goes to the player with the
// most captured cards, the most oros, and the most sietes, but a tie for any
// of those awards nobody the point. Whoever captured the 7 de oros (the
// "siete de velo") gets one more.
package scoring

import (
	"quince-server/pkg/deck"
	"quince-server/pkg/game/ronda"
)

// Tally is one player's breakdown for a single ronda
type Tally struct {
	Cards          int  `json:"cards"`
	Oros           int  `json:"oros"`
	Sietes         int  `json:"sietes"`
	Escobas        int  `json:"escobas"`
	HasSieteDeVelo bool `json:"hasSieteDeVelo"`
	Points         int  `json:"points"`
}

// Score tallies every player's pila and awards the ronda's points
func Score(players []ronda.Player) map[string]*Tally {
	tallies := make(map[string]*Tally, len(players))

	for _, player := range players {
		tally := &Tally{
			Escobas: player.Pile().Escobas(),
		}

		for _, card := range player.Pile().Cards() {
			tally.Cards++

			if card.Suit == deck.Oros {
				tally.Oros++
			}

			if card.Number == 7 {
				tally.Sietes++
			}

			if card.IsSieteDeVelo() {
				tally.HasSieteDeVelo = true
			}
		}

		tally.Points = tally.Escobas
		if tally.HasSieteDeVelo {
			tally.Points++
		}

		tallies[player.Name()] = tally
	}

	awardMax(tallies, func(t *Tally) int { return t.Cards })
	awardMax(tallies, func(t *Tally) int { return t.Oros })
	awardMax(tallies, func(t *Tally) int { return t.Sietes })

	return tallies
}

// awardMax gives one point to the sole owner of the highest count.
// A tie awards nobody.
func awardMax(tallies map[string]*Tally, count func(*Tally) int) {
	max := 0
	var winner *Tally
	tied := false

	for _, tally := range tallies {
		c := count(tally)
		if c > max {
			max = c
			winner = tally
			tied = false
		} else if c == max && max > 0 {
			tied = true
		}
	}

	if winner != nil && !tied {
		winner.Points++
	}
}
