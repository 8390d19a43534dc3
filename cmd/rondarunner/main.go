package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"quince-server/internal/rng"
	"quince-server/internal/util"
	"quince-server/pkg/deck"
	"quince-server/pkg/game/match"
	"quince-server/pkg/game/ronda"
)

var name = flag.String("name", "You", "your display name")
var npcs = flag.Int("npcs", 3, "number of automated opponents")
var seed = flag.Int64("seed", 0, "shuffle seed for the first ronda (0 for random)")

func main() {
	flag.Parse()
	logrus.SetLevel(logrus.WarnLevel)

	human := ronda.NewPlayer(*name)
	players := []ronda.Player{human}
	taken := map[string]bool{*name: true}
	for i := 0; i < *npcs; i++ {
		npcName := util.RandomNPCName()
		for taken[npcName] {
			npcName = util.RandomNPCName()
		}
		taken[npcName] = true

		players = append(players, ronda.NewNPC(npcName, rng.Crypto{}))
	}

	m, err := match.New(logrus.StandardLogger(), players)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	stdin := bufio.NewScanner(os.Stdin)
	rondaSeed := *seed

	for {
		if winner, over := m.Winner(); over {
			fmt.Printf("\n%s wins the match!\n", winner.Name())
			return
		}

		fmt.Println("///////////////////////////")
		fmt.Println("     Dealing cards . . .")
		fmt.Println("///////////////////////////")

		if err := m.StartRonda(rondaSeed); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		rondaSeed = 0

		playRonda(m, human, stdin)

		fmt.Println("\n------- PUNTUAJE ----------")
		for name, tally := range m.LastTallies() {
			fmt.Printf("%s:\t%d points (%d cards, %d escobas)\n", name, tally.Points, tally.Cards, tally.Escobas)
		}

		fmt.Println("\n------- TOTALS ----------")
		for name, total := range m.Totals() {
			fmt.Printf("%s:\t%d\n", name, total)
		}
	}
}

func playRonda(m *match.Match, human *ronda.BasePlayer, stdin *bufio.Scanner) {
	for {
		if _, err := m.AutoPlay(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		printLog(m.Current())

		if m.Current().IsFinished() {
			fmt.Println("\nRonda finished!")
			return
		}

		mesa := m.Current().Mesa()
		hand := human.Hand()

		fmt.Println("\nThe cards on the mesa are:")
		for i, card := range mesa {
			fmt.Printf(">>> %d: %s\n", i+1, card)
		}
		fmt.Printf("\n%s, you hold:\n", human.Name())
		for i, card := range hand {
			fmt.Printf(">>> %d: %s\n", i+1, card)
		}

		ownCard := chooseCard(stdin, hand)
		mesaCards := chooseMesaCards(stdin, mesa)

		if _, err := m.Play(ownCard, mesaCards); err != nil {
			fmt.Printf("Invalid move: %v\n", err)
		}
	}
}

// chooseCard prompts until a valid hand index is entered
func chooseCard(stdin *bufio.Scanner, hand []*deck.Card) *deck.Card {
	for {
		fmt.Print("what card will you play? (integer): ")
		if !stdin.Scan() {
			os.Exit(0)
		}

		n, err := strconv.Atoi(strings.TrimSpace(stdin.Text()))
		if err == nil && n >= 1 && n <= len(hand) {
			return hand[n-1]
		}

		fmt.Println("Invalid entry.")
	}
}

// chooseMesaCards prompts for mesa indices, or "drop" / blank to drop
func chooseMesaCards(stdin *bufio.Scanner, mesa []*deck.Card) []*deck.Card {
	if len(mesa) == 0 {
		fmt.Println(">>> Mesa is empty. Dropping card.")
		return nil
	}

	for {
		fmt.Print(`What cards would you like to pick up? (space-separated integers, or "drop"): `)
		if !stdin.Scan() {
			os.Exit(0)
		}

		input := strings.TrimSpace(stdin.Text())
		if input == "" || input == "drop" {
			fmt.Println(">>> Dropped card on the table")
			return nil
		}

		cards := make([]*deck.Card, 0)
		valid := true
		for _, field := range strings.Fields(input) {
			n, err := strconv.Atoi(field)
			if err != nil || n < 1 || n > len(mesa) {
				valid = false
				break
			}

			cards = append(cards, mesa[n-1])
		}

		if valid {
			return cards
		}

		fmt.Println("Invalid entry.")
	}
}

// printLog renders any pending engine log messages
func printLog(r *ronda.Ronda) {
	for {
		select {
		case msgs := <-r.LogChan():
			for _, msg := range msgs {
				line := msg.Message
				if len(msg.Players) > 0 {
					line = strings.Replace(line, "{}", msg.Players[0], 1)
				}

				if len(msg.Cards) > 0 {
					line += " (" + deck.CardsToString(msg.Cards) + ")"
				}

				fmt.Println(". " + line)
			}
		default:
			return
		}
	}
}
