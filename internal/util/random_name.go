package util

import (
	"fmt"
	"math/rand"
)

var adjectives = []string{
	"Swift", "Sly", "Lucky", "Gracious", "Happy", "Sneaky", "Patient", "Bold",
	"Quiet", "Grand", "Daring", "Cunning",
}

var animals = []string{
	"Lynx", "Otter", "Raven", "Fox", "Ibex", "Heron", "Wolf", "Hare",
	"Badger", "Stork", "Viper", "Owl",
}

// RandomNPCName returns a display name for an automated player
func RandomNPCName() string {
	adjectivesIndex := rand.Intn(len(adjectives))
	animalsIndex := rand.Intn(len(animals))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], animals[animalsIndex])
}
