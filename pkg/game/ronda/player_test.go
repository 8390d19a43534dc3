package ronda

import (
	"github.com/stretchr/testify/assert"
	"quince-server/pkg/deck"
	"testing"
)

func TestBasePlayer_hand(t *testing.T) {
	a := assert.New(t)

	p := NewPlayer("alice")
	a.Equal("alice", p.Name())
	a.Equal(0, len(p.Hand()))

	p.ReceiveHand(deck.CardsFromString("1o,2o,3o"))
	a.Equal("1o,2o,3o", deck.CardsToString(p.Hand()))

	// the snapshot must not alias the player's hand
	hand := p.Hand()
	hand[0] = deck.CardFromString("7b")
	a.Equal("1o,2o,3o", deck.CardsToString(p.Hand()))
}

func TestBasePlayer_PlaceOnMesa(t *testing.T) {
	a := assert.New(t)

	p := NewPlayer("alice")
	p.ReceiveHand(deck.CardsFromString("1o,2o,3o"))

	mesa := deck.Hand(deck.CardsFromString("5c"))

	a.NoError(p.PlaceOnMesa(&mesa, deck.CardFromString("2o")))
	a.Equal("5c,2o", deck.CardsToString(mesa))
	a.Equal("1o,3o", deck.CardsToString(p.Hand()))

	a.Equal(ErrCardNotInHand, p.PlaceOnMesa(&mesa, deck.CardFromString("2o")))
	a.Equal("5c,2o", deck.CardsToString(mesa))
}

func TestBasePlayer_CaptureFromMesa(t *testing.T) {
	a := assert.New(t)

	p := NewPlayer("alice")
	p.ReceiveHand(deck.CardsFromString("5o,6o,7o"))

	mesa := deck.Hand(deck.CardsFromString("1c,2c,3c,4c"))

	a.Equal(ErrCardNotInHand, p.CaptureFromMesa(&mesa, deck.CardFromString("1b"), deck.CardsFromString("1c")))
	a.Equal(ErrCardNotOnMesa, p.CaptureFromMesa(&mesa, deck.CardFromString("5o"), deck.CardsFromString("7b")))
	a.Equal(ErrDuplicateMesaCard, p.CaptureFromMesa(&mesa, deck.CardFromString("5o"), deck.CardsFromString("1c,1c")))

	// failures leave everything untouched
	a.Equal("1c,2c,3c,4c", deck.CardsToString(mesa))
	a.Equal("5o,6o,7o", deck.CardsToString(p.Hand()))
	a.Equal(0, p.Pile().Count())

	a.NoError(p.CaptureFromMesa(&mesa, deck.CardFromString("5o"), deck.CardsFromString("1c,4c")))
	a.Equal("2c,3c", deck.CardsToString(mesa))
	a.Equal("6o,7o", deck.CardsToString(p.Hand()))
	a.Equal("5o,1c,4c", deck.CardsToString(p.Pile().Cards()))
	a.Equal(0, p.Pile().Escobas())
}

func TestPila(t *testing.T) {
	a := assert.New(t)

	pila := &Pila{}
	a.Equal(0, pila.Count())
	a.Equal(0, pila.Escobas())

	pila.Add(deck.CardsFromString("1o,2o,10e,4b"), true)
	a.Equal(4, pila.Count())
	a.Equal(1, pila.Escobas())

	pila.Add(deck.CardsFromString("5c"), false)
	a.Equal(5, pila.Count())
	a.Equal(1, pila.Escobas())

	pila.MarkEscoba()
	a.Equal(2, pila.Escobas())

	// the returned cards are a copy
	cards := pila.Cards()
	cards[0] = deck.CardFromString("7b")
	a.Equal("1o,2o,10e,4b,5c", deck.CardsToString(pila.Cards()))
}
