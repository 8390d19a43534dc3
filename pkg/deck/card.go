package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a Spanish card suit
type Suit string

// suit constants
const (
	Oros    Suit = "oros"
	Copas   Suit = "copas"
	Espadas Suit = "espadas"
	Bastos  Suit = "bastos"
)

// face cards
const (
	Sota    = 10
	Caballo = 11
	Rey     = 12
)

// Card is an individual card from a 40-card Spanish deck.
// Numbers run 1-7 and 10-12; there are no 8s or 9s.
type Card struct {
	Suit   Suit `json:"suit"`
	Number int  `json:"number"`
}

func (c *Card) String() string {
	var number string
	switch c.Number {
	case Sota:
		number = "S"
	case Caballo:
		number = "C"
	case Rey:
		number = "R"
	default:
		number = strconv.Itoa(c.Number)
	}

	var suit string
	switch c.Suit {
	case Oros:
		suit = "o"
	case Copas:
		suit = "c"
	case Espadas:
		suit = "e"
	case Bastos:
		suit = "b"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", number, suit)
}

// Equal returns true if the cards are equal (matches suit and number)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Number == card.Number
}

// QuinceValue returns the card's counting value for the sum-to-15 rule.
// Numbers 1-7 count as-is; sota, caballo and rey count as 8, 9 and 10.
func (c *Card) QuinceValue() int {
	if c.Number <= 7 {
		return c.Number
	}

	return c.Number - 2
}

// IsSieteDeVelo returns true for the 7 of oros
func (c *Card) IsSieteDeVelo() bool {
	return c.Suit == Oros && c.Number == 7
}

// Clone returns a clone of the card
func (c *Card) Clone() *Card {
	cp := *c
	return &cp
}

var cardRx = regexp.MustCompile(`(?i)^([1-9]|1[0-2])([oceb])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <number><suit> where number is 1-7 or
// 10-12, and suit in [oceb]
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	number, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	if number == 8 || number == 9 {
		panic(fmt.Sprintf("no such card in a Spanish deck: %s", s))
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "o":
		suit = Oros
	case "c":
		suit = Copas
	case "e":
		suit = Espadas
	case "b":
		suit = Bastos
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return &Card{
		Suit:   suit,
		Number: number,
	}
}

// CardToString converts a card (7 of oros) to a string (7o)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	return strconv.Itoa(card.Number) + string(card.Suit[0])
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardsToString will convert a slice of cards to a string in the format of 1o,7e,12b,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
