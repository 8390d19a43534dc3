package deck

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestHand(t *testing.T) {
	a := assert.New(t)

	hand := Hand(CardsFromString("1o,7e,12b"))
	a.True(hand.HasCard(CardFromString("7e")))
	a.False(hand.HasCard(CardFromString("7o")))

	hand.AddCard(CardFromString("5c"))
	a.Equal("1o,7e,12b,5c", hand.String())

	a.True(hand.Discard(CardFromString("7e")))
	a.False(hand.Discard(CardFromString("7e")))
	a.Equal("1o,12b,5c", hand.String())
}

func TestHand_QuinceSum(t *testing.T) {
	// 1 + 8 + 10 = 19
	hand := Hand(CardsFromString("1o,10e,12b"))
	assert.Equal(t, 19, hand.QuinceSum())

	assert.Equal(t, 0, Hand{}.QuinceSum())
}

func TestHand_Clone(t *testing.T) {
	hand := Hand(CardsFromString("1o,2o"))
	clone := hand.Clone()
	clone[0] = CardFromString("3o")

	assert.Equal(t, "1o,2o", hand.String())
	assert.Equal(t, "3o,2o", clone.String())
}
