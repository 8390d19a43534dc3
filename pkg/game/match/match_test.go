package match

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"quince-server/pkg/deck"
	"quince-server/pkg/game/ronda"
)

type fixedRNG int

func (f fixedRNG) Intn(n int) int {
	return int(f) % n
}

func npcMatch(t *testing.T) *Match {
	t.Helper()

	m, err := New(logrus.StandardLogger(), []ronda.Player{
		ronda.NewNPC("p0", fixedRNG(0)),
		ronda.NewNPC("p1", fixedRNG(0)),
	})
	if err != nil {
		t.Fatal(err)
	}

	return m
}

func TestNew_validation(t *testing.T) {
	m, err := New(logrus.StandardLogger(), []ronda.Player{ronda.NewPlayer("solo")})
	assert.Nil(t, m)
	assert.EqualError(t, err, "expected at least 2 players, got 1")
}

// a seating the 40-card deck cannot deal out evenly must be rejected up front,
// not discovered as a failed redeal halfway through a ronda
func TestNew_playerCountMustPlayOut(t *testing.T) {
	a := assert.New(t)

	seat := func(n int) []ronda.Player {
		players := make([]ronda.Player, n)
		for i := range players {
			players[i] = ronda.NewNPC(fmt.Sprintf("p%d", i), fixedRNG(0))
		}
		return players
	}

	for _, n := range []int{2, 3, 4, 6} {
		m, err := New(logrus.StandardLogger(), seat(n))
		a.NoError(err, "n=%d", n)
		a.NotNil(m)
	}

	for _, n := range []int{5, 7} {
		m, err := New(logrus.StandardLogger(), seat(n))
		a.Nil(m, "n=%d", n)
		a.Equal(ErrUnsupportedPlayerCount, err)
	}
}

func TestMatch_sequencing(t *testing.T) {
	a := assert.New(t)

	m := npcMatch(t)

	_, err := m.Play(deck.CardFromString("1o"), nil)
	a.Equal(ErrNoRonda, err)

	a.NoError(m.StartRonda(1))
	a.Equal(ErrRondaInProgress, m.StartRonda(1))

	a.Equal(m.Players()[0], m.Current().Dealer())
}

func TestMatch_playOneRonda(t *testing.T) {
	a := assert.New(t)

	m := npcMatch(t)
	a.NoError(m.StartRonda(1))

	played, err := m.AutoPlay()
	a.NoError(err)
	a.True(m.Current().IsFinished())
	a.Greater(played, 0)

	// the velo is always captured by somebody, so every ronda scores
	totals := m.Totals()
	a.Greater(totals["p0"]+totals["p1"], 0)
	a.NotNil(m.LastTallies())

	// the deal rotates for the next ronda
	a.NoError(m.StartRonda(2))
	a.Equal(m.Players()[1], m.Current().Dealer())

	// piles were cleared for the fresh ronda
	for _, p := range m.Players() {
		a.Equal(0, p.Pile().Count())
		a.Equal(3, len(p.Hand()))
	}
}

func TestMatch_escobaCredit(t *testing.T) {
	a := assert.New(t)

	alice := ronda.NewPlayer("alice")
	bob := ronda.NewPlayer("bob")

	m, err := New(logrus.StandardLogger(), []ronda.Player{alice, bob})
	a.NoError(err)

	d := deck.New()
	d.Cards = deck.CardsFromString("1o,2o,3o,4o,1c,2c,3c,5e,6c,7c")

	r, err := ronda.New(logrus.StandardLogger(), m.Players(), alice, d)
	a.NoError(err)
	m.current = r

	// bob clears the mesa: 5 + (1+2+3+4) = 15
	res, err := m.Play(deck.CardFromString("5e"), deck.CardsFromString("1o,2o,3o,4o"))
	a.NoError(err)
	a.True(res.ClearedMesa)

	a.Equal(1, bob.Pile().Escobas())
	a.Equal(0, alice.Pile().Escobas())
}

func TestMatch_autoPlayStopsAtHumanTurn(t *testing.T) {
	a := assert.New(t)

	human := ronda.NewPlayer("human")
	npc := ronda.NewNPC("bot", fixedRNG(0))

	m, err := New(logrus.StandardLogger(), []ronda.Player{human, npc})
	a.NoError(err)
	a.NoError(m.StartRonda(1))

	// bot plays first (human deals), then yields to the human
	played, err := m.AutoPlay()
	a.NoError(err)
	a.Equal(1, played)
	a.Equal(human.Name(), m.Current().CurrentPlayer().Name())
}

func TestMatch_Run(t *testing.T) {
	a := assert.New(t)

	m := npcMatch(t)

	winner, err := m.Run()
	a.NoError(err)
	a.NotNil(winner)

	_, over := m.Winner()
	a.True(over)
	a.GreaterOrEqual(m.Totals()[winner.Name()], WinningScore)

	a.Equal(ErrMatchOver, m.StartRonda(0))
}
