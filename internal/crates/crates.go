// Package crates simulates the crane rearranging stacks of supply crates.
package crates

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/temirov/advent/internal/puzzle"
)

const (
	cellWidth         = 4
	cellContentOffset = 1

	moveKeyword = "move"
	fromKeyword = "from"
	toKeyword   = "to"

	errorDrawingFormat     = "drawing line %q: %w"
	errorInstructionFormat = "instruction %q: %w"
	errorStackFormat       = "stack %d of %d: %w"
	errorCratesFormat      = "move %d from stack %d holding %d: %w"
)

var (
	// ErrMalformedDrawing is returned when the stack drawing or its numbering line is missing or invalid.
	ErrMalformedDrawing = errors.New("malformed stack drawing")
	// ErrMalformedInstruction is returned for a line that is not "move N from A to B".
	ErrMalformedInstruction = errors.New("malformed instruction")
	// ErrUnknownStack is returned when an instruction names a stack that does not exist.
	ErrUnknownStack = errors.New("unknown stack")
	// ErrNotEnoughCrates is returned when a stack holds fewer crates than an instruction moves.
	ErrNotEnoughCrates = errors.New("not enough crates")
)

// Stacks holds crates bottom to top for every stack.
type Stacks [][]byte

// Instruction moves Count crates from stack From to stack To. Stack numbers are 1-based.
type Instruction struct {
	Count int
	From  int
	To    int
}

// Crane applies an instruction to the stacks.
type Crane func(stacks Stacks, instruction Instruction) error

// ParseDrawing builds the stacks from the drawing lines, the last of which
// is the numbering line (" 1   2   3").
func ParseDrawing(lines []string) (Stacks, error) {
	if len(lines) < 1 {
		return nil, fmt.Errorf(errorDrawingFormat, "", ErrMalformedDrawing)
	}
	numberingLine := lines[len(lines)-1]
	labels := strings.Fields(numberingLine)
	if len(labels) == 0 {
		return nil, fmt.Errorf(errorDrawingFormat, numberingLine, ErrMalformedDrawing)
	}
	for labelIndex, label := range labels {
		if label != strconv.Itoa(labelIndex+1) {
			return nil, fmt.Errorf(errorDrawingFormat, numberingLine, ErrMalformedDrawing)
		}
	}

	stacks := make(Stacks, len(labels))
	for lineIndex := len(lines) - 2; lineIndex >= 0; lineIndex-- {
		line := lines[lineIndex]
		for position := cellContentOffset; position < len(line); position += cellWidth {
			crate := line[position]
			if crate == ' ' {
				continue
			}
			stackIndex := position / cellWidth
			if stackIndex >= len(stacks) || line[position-1] != '[' {
				return nil, fmt.Errorf(errorDrawingFormat, line, ErrMalformedDrawing)
			}
			stacks[stackIndex] = append(stacks[stackIndex], crate)
		}
	}
	return stacks, nil
}

// ParseInstruction parses "move N from A to B".
func ParseInstruction(line string) (Instruction, error) {
	words := strings.Fields(line)
	if len(words) != 6 || words[0] != moveKeyword || words[2] != fromKeyword || words[4] != toKeyword {
		return Instruction{}, fmt.Errorf(errorInstructionFormat, line, ErrMalformedInstruction)
	}
	var numbers [3]int
	for numberIndex, word := range []string{words[1], words[3], words[5]} {
		value, conversionError := strconv.Atoi(word)
		if conversionError != nil || value < 0 {
			return Instruction{}, fmt.Errorf(errorInstructionFormat, line, ErrMalformedInstruction)
		}
		numbers[numberIndex] = value
	}
	return Instruction{Count: numbers[0], From: numbers[1], To: numbers[2]}, nil
}

func (stacks Stacks) validate(instruction Instruction) error {
	for _, stackNumber := range []int{instruction.From, instruction.To} {
		if stackNumber < 1 || stackNumber > len(stacks) {
			return fmt.Errorf(errorStackFormat, stackNumber, len(stacks), ErrUnknownStack)
		}
	}
	if held := len(stacks[instruction.From-1]); held < instruction.Count {
		return fmt.Errorf(errorCratesFormat, instruction.Count, instruction.From, held, ErrNotEnoughCrates)
	}
	return nil
}

// CrateMover9000 moves crates one at a time, reversing their order.
func CrateMover9000(stacks Stacks, instruction Instruction) error {
	if validationError := stacks.validate(instruction); validationError != nil {
		return validationError
	}
	source, destination := instruction.From-1, instruction.To-1
	if source == destination {
		return nil
	}
	for moved := 0; moved < instruction.Count; moved++ {
		top := len(stacks[source]) - 1
		stacks[destination] = append(stacks[destination], stacks[source][top])
		stacks[source] = stacks[source][:top]
	}
	return nil
}

// CrateMover9001 moves crates all at once, keeping their order.
func CrateMover9001(stacks Stacks, instruction Instruction) error {
	if validationError := stacks.validate(instruction); validationError != nil {
		return validationError
	}
	source, destination := instruction.From-1, instruction.To-1
	if source == destination {
		return nil
	}
	cut := len(stacks[source]) - instruction.Count
	stacks[destination] = append(stacks[destination], stacks[source][cut:]...)
	stacks[source] = stacks[source][:cut]
	return nil
}

// Tops concatenates the top crate of every non-empty stack.
func (stacks Stacks) Tops() string {
	var builder strings.Builder
	for _, stack := range stacks {
		if len(stack) > 0 {
			builder.WriteByte(stack[len(stack)-1])
		}
	}
	return builder.String()
}

// Rearrange parses the drawing and instructions from input and runs them with crane.
func Rearrange(input io.Reader, crane Crane) (Stacks, error) {
	var drawing []string
	var stacks Stacks
	scanError := puzzle.ForEachLine(input, func(lineNumber int, line string) error {
		if stacks == nil {
			if strings.TrimSpace(line) != "" {
				drawing = append(drawing, line)
				return nil
			}
			parsed, drawingError := ParseDrawing(drawing)
			if drawingError != nil {
				return puzzle.LineError(lineNumber, drawingError)
			}
			stacks = parsed
			return nil
		}
		if strings.TrimSpace(line) == "" {
			return nil
		}
		instruction, instructionError := ParseInstruction(line)
		if instructionError != nil {
			return puzzle.LineError(lineNumber, instructionError)
		}
		if moveError := crane(stacks, instruction); moveError != nil {
			return puzzle.LineError(lineNumber, moveError)
		}
		return nil
	})
	if scanError != nil {
		return nil, scanError
	}
	if stacks == nil {
		return nil, fmt.Errorf(errorDrawingFormat, strings.Join(drawing, "\n"), ErrMalformedDrawing)
	}
	return stacks, nil
}

// PartOne reports the top crates after rearranging with the CrateMover 9000.
func PartOne(input io.Reader) (string, error) {
	return topsAfter(input, CrateMover9000)
}

// PartTwo reports the top crates after rearranging with the CrateMover 9001.
func PartTwo(input io.Reader) (string, error) {
	return topsAfter(input, CrateMover9001)
}

func topsAfter(input io.Reader, crane Crane) (string, error) {
	stacks, rearrangeError := Rearrange(input, crane)
	if rearrangeError != nil {
		return "", rearrangeError
	}
	return stacks.Tops(), nil
}
