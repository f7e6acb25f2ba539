// Package rockpaperscissors scores a strategy guide of rock paper scissors rounds.
package rockpaperscissors

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/temirov/advent/internal/puzzle"
)

const errorRoundFormat = "round %q: %w"

// ErrMalformedRound is returned for a guide line that is not two known symbols.
var ErrMalformedRound = errors.New("malformed round")

// Shape is a hand shape. Its value is the score for playing it.
type Shape int

const (
	Rock     Shape = 1
	Paper    Shape = 2
	Scissors Shape = 3
)

// Outcome is the result of a round from the player's point of view. Its value
// is the score it earns.
type Outcome int

const (
	Loss Outcome = 0
	Draw Outcome = 3
	Win  Outcome = 6
)

var (
	opponentShapes = map[string]Shape{"A": Rock, "B": Paper, "C": Scissors}
	playerShapes   = map[string]Shape{"X": Rock, "Y": Paper, "Z": Scissors}
	outcomes       = map[string]Outcome{"X": Loss, "Y": Draw, "Z": Win}
)

// Beats returns the shape that shape defeats.
func (shape Shape) Beats() Shape {
	switch shape {
	case Rock:
		return Scissors
	case Paper:
		return Rock
	default:
		return Paper
	}
}

// BeatenBy returns the shape that defeats shape.
func (shape Shape) BeatenBy() Shape {
	switch shape {
	case Rock:
		return Paper
	case Paper:
		return Scissors
	default:
		return Rock
	}
}

// Play returns the outcome for player against opponent.
func Play(player, opponent Shape) Outcome {
	switch {
	case player == opponent:
		return Draw
	case player.Beats() == opponent:
		return Win
	default:
		return Loss
	}
}

// ShapeFor returns the shape that produces outcome against opponent.
func ShapeFor(opponent Shape, outcome Outcome) Shape {
	switch outcome {
	case Win:
		return opponent.BeatenBy()
	case Loss:
		return opponent.Beats()
	default:
		return opponent
	}
}

// Score returns the points the player earns for one round.
func Score(player, opponent Shape) int {
	return int(player) + int(Play(player, opponent))
}

func splitRound(line string) (string, string, error) {
	columns := strings.Fields(line)
	if len(columns) != 2 {
		return "", "", fmt.Errorf(errorRoundFormat, line, ErrMalformedRound)
	}
	return columns[0], columns[1], nil
}

// scoreGuide sums the round scores; decide turns the second column into the
// player's shape.
func scoreGuide(input io.Reader, decide func(opponent Shape, column string) (Shape, bool)) (string, error) {
	total := 0
	scanError := puzzle.ForEachNonBlankLine(input, func(lineNumber int, line string) error {
		opponentColumn, playerColumn, splitError := splitRound(line)
		if splitError != nil {
			return puzzle.LineError(lineNumber, splitError)
		}
		opponent, known := opponentShapes[opponentColumn]
		if !known {
			return puzzle.LineError(lineNumber, fmt.Errorf(errorRoundFormat, line, ErrMalformedRound))
		}
		player, known := decide(opponent, playerColumn)
		if !known {
			return puzzle.LineError(lineNumber, fmt.Errorf(errorRoundFormat, line, ErrMalformedRound))
		}
		total += Score(player, opponent)
		return nil
	})
	if scanError != nil {
		return "", scanError
	}
	return strconv.Itoa(total), nil
}

// PartOne reads the second column as the player's shape.
func PartOne(input io.Reader) (string, error) {
	return scoreGuide(input, func(_ Shape, column string) (Shape, bool) {
		shape, known := playerShapes[column]
		return shape, known
	})
}

// PartTwo reads the second column as the required outcome.
func PartTwo(input io.Reader) (string, error) {
	return scoreGuide(input, func(opponent Shape, column string) (Shape, bool) {
		outcome, known := outcomes[column]
		if !known {
			return 0, false
		}
		return ShapeFor(opponent, outcome), true
	})
}
