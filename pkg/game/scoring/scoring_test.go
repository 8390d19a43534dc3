package scoring

import (
	"github.com/stretchr/testify/assert"
	"quince-server/pkg/deck"
	"quince-server/pkg/game/ronda"
	"testing"
)

func player(name, cards string, escobas int) ronda.Player {
	p := ronda.NewPlayer(name)
	p.Pile().Add(deck.CardsFromString(cards), false)
	for i := 0; i < escobas; i++ {
		p.Pile().MarkEscoba()
	}

	return p
}

func TestScore(t *testing.T) {
	a := assert.New(t)

	alice := player("alice", "7o,1o,2o,3o,10o,5c,6c,7c,1e,2e,3e,4e", 1)
	bob := player("bob", "4o,5o,6o,7e,7b,1b,2b", 0)

	tallies := Score([]ronda.Player{alice, bob})

	a.Equal(12, tallies["alice"].Cards)
	a.Equal(5, tallies["alice"].Oros)
	a.Equal(2, tallies["alice"].Sietes)
	a.Equal(1, tallies["alice"].Escobas)
	a.True(tallies["alice"].HasSieteDeVelo)

	a.Equal(7, tallies["bob"].Cards)
	a.Equal(3, tallies["bob"].Oros)
	a.Equal(2, tallies["bob"].Sietes)
	a.False(tallies["bob"].HasSieteDeVelo)

	// alice: escoba + velo + most cards + most oros; sietes tie 2-2 scores nobody
	a.Equal(4, tallies["alice"].Points)
	a.Equal(0, tallies["bob"].Points)
}

func TestScore_tiesAwardNobody(t *testing.T) {
	a := assert.New(t)

	// same number of cards, oros and sietes on both sides
	alice := player("alice", "7o,1c,2c", 0)
	bob := player("bob", "7c,1o,2e", 0)

	tallies := Score([]ronda.Player{alice, bob})

	// only the velo separates them
	a.Equal(1, tallies["alice"].Points)
	a.Equal(0, tallies["bob"].Points)
}

func TestScore_emptyPiles(t *testing.T) {
	alice := player("alice", "", 0)
	bob := player("bob", "", 0)

	tallies := Score([]ronda.Player{alice, bob})

	assert.Equal(t, 0, tallies["alice"].Points)
	assert.Equal(t, 0, tallies["bob"].Points)
}
