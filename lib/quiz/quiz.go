// Package quiz runs the terminal brand-guessing game over the maker/model
// reference store.
package quiz

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"
	"strings"
	"time"

	"carhunt/lib/catalog"
)

const (
	DefaultRounds = 10
	numChoices    = 4
)

type Game struct {
	// number of questions asked before the score is printed
	Rounds int
	// source of all sampling and shuffling, swap it for a seeded one to
	// make a game deterministic
	Rand *rand.Rand
	In   io.Reader
	Out  io.Writer

	index  catalog.Index
	models []string
}

func NewGame(idx catalog.Index) *Game {
	// map iteration order is not reproducible even with a seeded source,
	// so rounds draw from a sorted model list instead
	models := make([]string, 0, len(idx.ModelBrand))
	for model := range idx.ModelBrand {
		models = append(models, model)
	}
	sort.Strings(models)

	return &Game{
		Rounds: DefaultRounds,
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		In:     os.Stdin,
		Out:    os.Stdout,
		index:  idx,
		models: models,
	}
}

// Round is a single question: a model, its brand, and four lettered
// choices, exactly one of which is the brand.
type Round struct {
	Model   string
	Brand   string
	Letters []string
	Choices map[string]string
}

func (g *Game) newRound() (Round, error) {
	if len(g.models) == 0 {
		return Round{}, fmt.Errorf("the reference store has no models")
	}
	model := g.models[g.Rand.Intn(len(g.models))]
	brand := g.index.ModelBrand[model]

	decoys := make([]string, 0, len(g.index.Brands))
	for _, b := range g.index.Brands {
		if b != brand {
			decoys = append(decoys, b)
		}
	}
	if len(decoys) < numChoices-1 {
		return Round{}, fmt.Errorf(
			"need at least %d distinct brands to build choices, have %d",
			numChoices, len(decoys)+1,
		)
	}
	g.Rand.Shuffle(len(decoys), func(i, j int) {
		decoys[i], decoys[j] = decoys[j], decoys[i]
	})

	choices := append(decoys[:numChoices-1:numChoices-1], brand)
	g.Rand.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	round := Round{
		Model:   model,
		Brand:   brand,
		Choices: make(map[string]string, numChoices),
	}
	for i, choice := range choices {
		letter := string(rune('A' + i))
		round.Letters = append(round.Letters, letter)
		round.Choices[letter] = choice
	}
	return round, nil
}

// Run plays the configured number of rounds and returns the number of
// correct answers. Input errors (including EOF mid-game) abort the game.
func (g *Game) Run() (int, error) {
	scanner := bufio.NewScanner(g.In)
	correct := 0

	for i := 1; i <= g.Rounds; i++ {
		round, err := g.newRound()
		if err != nil {
			return correct, err
		}

		fmt.Fprintf(
			g.Out, "%d. What is the brand of %s? (choose one from %s to %s)\n",
			i, round.Model, round.Letters[0], round.Letters[len(round.Letters)-1],
		)
		for _, letter := range round.Letters {
			fmt.Fprintf(g.Out, "%s. %s  ", letter, round.Choices[letter])
		}
		fmt.Fprintln(g.Out)

		letter, err := g.readChoice(scanner, round)
		if err != nil {
			return correct, err
		}

		if round.Choices[letter] == round.Brand {
			fmt.Fprintln(g.Out, "correct!")
			correct++
		} else {
			fmt.Fprintln(g.Out, "wrong!")
			fmt.Fprintf(g.Out, "%s belongs to %s!\n", round.Model, round.Brand)
		}
	}

	fmt.Fprintf(g.Out, "Score %d/%d\n", correct, g.Rounds)
	return correct, nil
}

// readChoice blocks until a line holding a valid choice letter arrives,
// reprompting on anything else. There is no retry limit.
func (g *Game) readChoice(scanner *bufio.Scanner, round Round) (string, error) {
	for {
		fmt.Fprint(g.Out, "> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		letter := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if _, ok := round.Choices[letter]; ok {
			return letter, nil
		}
		fmt.Fprintln(g.Out, "please pick a valid choice")
	}
}
