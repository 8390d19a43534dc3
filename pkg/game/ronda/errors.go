package ronda

import (
	"errors"
	"fmt"
)

// ErrRondaFinished is an error when an action is attempted on a finished ronda
var ErrRondaFinished = errors.New("the ronda is finished")

// ErrCardNotInHand happens when the player tries to play a card they don't have
var ErrCardNotInHand = errors.New("card is not in player's hand")

// ErrCardNotOnMesa happens when a capture names a card that is not on the mesa
var ErrCardNotOnMesa = errors.New("card is not on the mesa")

// ErrDuplicateMesaCard happens when a capture names the same mesa card twice
var ErrDuplicateMesaCard = errors.New("cannot pick up the same mesa card twice")

// ErrDeckExhausted is an error when the deck cannot supply the cards for a deal
var ErrDeckExhausted = errors.New("not enough cards left in the deck")

// ErrUnevenDeck happens when the deck cannot be played out in whole
// hand-cycles and would run dry on a mid-ronda redeal
var ErrUnevenDeck = errors.New("deck cannot be dealt out in whole hand-cycles")

// ErrDealerNotPlaying happens when the dealer is not one of the players
var ErrDealerNotPlaying = errors.New("dealer is not one of the players")

// ErrDuplicatePlayer happens when the same player is seated twice
var ErrDuplicatePlayer = errors.New("the same player cannot be seated twice")

// PlayerCountError is an error on the number of players in the ronda
type PlayerCountError int

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected at least 2 players, got %d", int(p))
}
