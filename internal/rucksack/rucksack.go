// Package rucksack finds misplaced and shared items in elf rucksacks.
package rucksack

import (
	"errors"
	"fmt"
	"io"
	"math/bits"
	"strconv"
	"strings"

	"github.com/temirov/advent/internal/puzzle"
)

// GroupSize is the number of elves sharing one badge.
const GroupSize = 3

const (
	errorRucksackFormat  = "rucksack %q: %w"
	errorGroupFormat     = "group ending at line %d: %w"
	errorLineCountFormat = "%d rucksacks: %w"
)

var (
	// ErrInvalidRucksack is returned for an odd-length line or a non-letter item.
	ErrInvalidRucksack = errors.New("invalid rucksack")
	// ErrNoCommonItem is returned when the compared item sets share nothing.
	ErrNoCommonItem = errors.New("no common item")
	// ErrIncompleteGroup is returned when the rucksack count is not a multiple of GroupSize.
	ErrIncompleteGroup = errors.New("incomplete group")
)

// ItemSet is a bit set of item priorities; bit p is set when an item of
// priority p is present.
type ItemSet uint64

// Priority maps a-z to 1-26 and A-Z to 27-52. Other bytes yield 0.
func Priority(item byte) int {
	switch {
	case item >= 'a' && item <= 'z':
		return int(item-'a') + 1
	case item >= 'A' && item <= 'Z':
		return int(item-'A') + 27
	default:
		return 0
	}
}

// Encode builds the item set of items.
func Encode(items string) (ItemSet, error) {
	var set ItemSet
	for index := 0; index < len(items); index++ {
		priority := Priority(items[index])
		if priority == 0 {
			return 0, fmt.Errorf(errorRucksackFormat, items, ErrInvalidRucksack)
		}
		set |= 1 << priority
	}
	return set, nil
}

// HighestPriority returns the highest priority in set, or 0 when set is empty.
func (set ItemSet) HighestPriority() int {
	if set == 0 {
		return 0
	}
	return bits.Len64(uint64(set)) - 1
}

// MisplacedPriority returns the priority of the item found in both halves of line.
func MisplacedPriority(line string) (int, error) {
	if len(line)%2 != 0 {
		return 0, fmt.Errorf(errorRucksackFormat, line, ErrInvalidRucksack)
	}
	first, firstError := Encode(line[:len(line)/2])
	if firstError != nil {
		return 0, firstError
	}
	second, secondError := Encode(line[len(line)/2:])
	if secondError != nil {
		return 0, secondError
	}
	common := first & second
	if common == 0 {
		return 0, fmt.Errorf(errorRucksackFormat, line, ErrNoCommonItem)
	}
	return common.HighestPriority(), nil
}

// BadgePriority returns the priority of the item carried by every rucksack.
func BadgePriority(rucksacks []string) (int, error) {
	common := ^ItemSet(0)
	for _, rucksack := range rucksacks {
		set, encodeError := Encode(rucksack)
		if encodeError != nil {
			return 0, encodeError
		}
		common &= set
	}
	if len(rucksacks) == 0 || common == 0 {
		return 0, ErrNoCommonItem
	}
	return common.HighestPriority(), nil
}

// PartOne sums the priorities of the item misplaced in each rucksack.
func PartOne(input io.Reader) (string, error) {
	total := 0
	scanError := puzzle.ForEachNonBlankLine(input, func(lineNumber int, line string) error {
		priority, priorityError := MisplacedPriority(strings.TrimSpace(line))
		if priorityError != nil {
			return puzzle.LineError(lineNumber, priorityError)
		}
		total += priority
		return nil
	})
	if scanError != nil {
		return "", scanError
	}
	return strconv.Itoa(total), nil
}

// PartTwo sums the badge priorities of each group of GroupSize rucksacks.
func PartTwo(input io.Reader) (string, error) {
	total := 0
	count := 0
	group := make([]string, 0, GroupSize)
	scanError := puzzle.ForEachNonBlankLine(input, func(lineNumber int, line string) error {
		count++
		group = append(group, strings.TrimSpace(line))
		if len(group) < GroupSize {
			return nil
		}
		priority, priorityError := BadgePriority(group)
		if priorityError != nil {
			return fmt.Errorf(errorGroupFormat, lineNumber, priorityError)
		}
		total += priority
		group = group[:0]
		return nil
	})
	if scanError != nil {
		return "", scanError
	}
	if len(group) != 0 {
		return "", fmt.Errorf(errorLineCountFormat, count, ErrIncompleteGroup)
	}
	return strconv.Itoa(total), nil
}
