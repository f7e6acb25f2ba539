// Package calories totals the food carried by each elf.
package calories

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/temirov/advent/internal/puzzle"
)

// DefaultTopCount is how many of the best-stocked elves part two adds up.
const DefaultTopCount = 3

const (
	errorCaloriesFormat = "calories %q: %w"
	errorTopCountFormat = "top count %d: %w"
)

var (
	// ErrInvalidCalories is returned for a line that is not a non-negative integer.
	ErrInvalidCalories = errors.New("invalid calorie count")
	// ErrNoElves is returned when the input holds no calorie groups.
	ErrNoElves = errors.New("no elves in input")
	// ErrInvalidTopCount is returned when fewer than one elf is requested.
	ErrInvalidTopCount = errors.New("top count must be positive")
)

// ElfTotals returns the calorie sum of every blank-line separated group in
// input order. A trailing group without a closing blank line is included.
func ElfTotals(input io.Reader) ([]int, error) {
	var totals []int
	current := 0
	inGroup := false
	scanError := puzzle.ForEachLine(input, func(lineNumber int, line string) error {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if inGroup {
				totals = append(totals, current)
			}
			current, inGroup = 0, false
			return nil
		}
		value, conversionError := strconv.Atoi(trimmed)
		if conversionError != nil || value < 0 {
			return puzzle.LineError(lineNumber, fmt.Errorf(errorCaloriesFormat, trimmed, ErrInvalidCalories))
		}
		current += value
		inGroup = true
		return nil
	})
	if scanError != nil {
		return nil, scanError
	}
	if inGroup {
		totals = append(totals, current)
	}
	if len(totals) == 0 {
		return nil, ErrNoElves
	}
	return totals, nil
}

// TopTotal sums the count largest totals. When fewer elves exist, all are summed.
func TopTotal(totals []int, count int) (int, error) {
	if count < 1 {
		return 0, fmt.Errorf(errorTopCountFormat, count, ErrInvalidTopCount)
	}
	if len(totals) == 0 {
		return 0, ErrNoElves
	}
	sorted := append([]int(nil), totals...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	if count > len(sorted) {
		count = len(sorted)
	}
	sum := 0
	for _, total := range sorted[:count] {
		sum += total
	}
	return sum, nil
}

// Solver answers both parts of the day.
type Solver struct {
	TopCount int
}

// PartOne returns the largest single elf total.
func (solver Solver) PartOne(input io.Reader) (string, error) {
	return solver.solve(input, 1)
}

// PartTwo returns the sum of the TopCount largest totals.
func (solver Solver) PartTwo(input io.Reader) (string, error) {
	return solver.solve(input, solver.TopCount)
}

func (solver Solver) solve(input io.Reader, count int) (string, error) {
	totals, totalsError := ElfTotals(input)
	if totalsError != nil {
		return "", totalsError
	}
	sum, topError := TopTotal(totals, count)
	if topError != nil {
		return "", topError
	}
	return strconv.Itoa(sum), nil
}
