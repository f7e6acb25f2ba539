package cli

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/temirov/advent/internal/puzzle"
)

func delayedPart(delay time.Duration, answer string) puzzle.Part {
	return func(io.Reader) (string, error) {
		time.Sleep(delay)
		return answer, nil
	}
}

func TestSolveAllKeepsRequestOrder(t *testing.T) {
	defer goleak.VerifyNone(t)
	inputPath := writeInput(t, t.TempDir(), "input.txt", "unused\n")

	var requests []solveRequest
	for day := 1; day <= 6; day++ {
		delay := time.Duration(7-day) * time.Millisecond
		requests = append(requests, solveRequest{
			puzzle: puzzle.Puzzle{
				Day:   day,
				Parts: []puzzle.Part{delayedPart(delay, strconv.Itoa(day*10+1)), delayedPart(delay, strconv.Itoa(day*10+2))},
			},
			partNumbers: []int{1, 2},
			inputPath:   inputPath,
		})
	}
	answers, err := solveAll(context.Background(), zap.NewNop(), requests)
	if err != nil {
		t.Fatalf("solveAll error: %v", err)
	}
	var values []string
	for _, answer := range answers {
		values = append(values, answer.Value)
	}
	expected := []string{"11", "12", "21", "22", "31", "32", "41", "42", "51", "52", "61", "62"}
	if diff := cmp.Diff(expected, values); diff != "" {
		t.Fatalf("unexpected answer order (-want +got):\n%s", diff)
	}
}

func TestSolveAllReturnsFirstFailure(t *testing.T) {
	defer goleak.VerifyNone(t)
	directory := t.TempDir()
	inputPath := writeInput(t, directory, "input.txt", "unused\n")
	failure := errors.New("unsolvable")

	requests := []solveRequest{
		{
			puzzle:      puzzle.Puzzle{Day: 1, Parts: []puzzle.Part{delayedPart(0, "1")}},
			partNumbers: []int{1},
			inputPath:   inputPath,
		},
		{
			puzzle: puzzle.Puzzle{Day: 2, Parts: []puzzle.Part{func(io.Reader) (string, error) {
				return "", failure
			}}},
			partNumbers: []int{1},
			inputPath:   inputPath,
		},
		{
			puzzle:      puzzle.Puzzle{Day: 3, Parts: []puzzle.Part{delayedPart(0, "3")}},
			partNumbers: []int{1},
			inputPath:   filepath.Join(directory, "missing.txt"),
		},
	}
	if _, err := solveAll(context.Background(), zap.NewNop(), requests); !errors.Is(err, failure) {
		t.Fatalf("expected the part failure, got %v", err)
	}
}

func TestSolveHonorsCancelledContext(t *testing.T) {
	inputPath := writeInput(t, t.TempDir(), "input.txt", "unused\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	request := solveRequest{
		puzzle:      puzzle.Puzzle{Day: 1, Parts: []puzzle.Part{delayedPart(0, "1")}},
		partNumbers: []int{1},
		inputPath:   inputPath,
	}
	if _, err := solve(ctx, zap.NewNop(), request); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
