// Package signal locates start-of-packet and start-of-message markers in a
// communication device datastream.
package signal

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	// DefaultPacketWindow is the marker length of a start-of-packet.
	DefaultPacketWindow = 4
	// DefaultMessageWindow is the marker length of a start-of-message.
	DefaultMessageWindow = 14

	errorWindowFormat = "window %d: %w"
	errorMarkerFormat = "window %d in %d characters: %w"
	errorReadFormat   = "reading datastream: %w"
)

var (
	// ErrMarkerNotFound is returned when no window of distinct characters exists.
	ErrMarkerNotFound = errors.New("marker not found")
	// ErrInvalidWindow is returned for a window shorter than one character.
	ErrInvalidWindow = errors.New("window must be positive")
)

// FindMarker returns how many characters of stream are processed when the
// most recent window characters are first all different.
func FindMarker(stream string, window int) (int, error) {
	if window < 1 {
		return 0, fmt.Errorf(errorWindowFormat, window, ErrInvalidWindow)
	}
	characters := []rune(stream)
	counts := make(map[rune]int, window)
	for index, character := range characters {
		counts[character]++
		if index >= window {
			leaving := characters[index-window]
			counts[leaving]--
			if counts[leaving] == 0 {
				delete(counts, leaving)
			}
		}
		if index+1 >= window && len(counts) == window {
			return index + 1, nil
		}
	}
	return 0, fmt.Errorf(errorMarkerFormat, window, len(characters), ErrMarkerNotFound)
}

// Solver answers both parts of the day.
type Solver struct {
	PacketWindow  int
	MessageWindow int
}

// PartOne finds the start-of-packet marker.
func (solver Solver) PartOne(input io.Reader) (string, error) {
	return solve(input, solver.PacketWindow)
}

// PartTwo finds the start-of-message marker.
func (solver Solver) PartTwo(input io.Reader) (string, error) {
	return solve(input, solver.MessageWindow)
}

func solve(input io.Reader, window int) (string, error) {
	contents, readError := io.ReadAll(input)
	if readError != nil {
		return "", fmt.Errorf(errorReadFormat, readError)
	}
	position, markerError := FindMarker(strings.TrimSpace(string(contents)), window)
	if markerError != nil {
		return "", markerError
	}
	return strconv.Itoa(position), nil
}
