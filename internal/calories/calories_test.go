package calories_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/temirov/advent/internal/calories"
)

const exampleInput = `1000
2000
3000

4000

5000
6000

7000
8000
9000

10000`

func TestElfTotals(t *testing.T) {
	totals, totalsError := calories.ElfTotals(strings.NewReader(exampleInput))
	if totalsError != nil {
		t.Fatalf("ElfTotals error: %v", totalsError)
	}
	expected := []int{6000, 4000, 11000, 24000, 10000}
	if diff := cmp.Diff(expected, totals); diff != "" {
		t.Fatalf("unexpected totals (-want +got):\n%s", diff)
	}
}

func TestSolverParts(t *testing.T) {
	solver := calories.Solver{TopCount: calories.DefaultTopCount}
	testCases := []struct {
		name     string
		solve    func(io.Reader) (string, error)
		expected string
	}{
		{name: "part_one", solve: solver.PartOne, expected: "24000"},
		{name: "part_two", solve: solver.PartTwo, expected: "45000"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			answer, solveError := testCase.solve(strings.NewReader(exampleInput))
			if solveError != nil {
				t.Fatalf("solve error: %v", solveError)
			}
			if answer != testCase.expected {
				t.Fatalf("expected %s, got %s", testCase.expected, answer)
			}
		})
	}
}

func TestTopTotalCountLargerThanElves(t *testing.T) {
	sum, topError := calories.TopTotal([]int{5, 7}, 3)
	if topError != nil {
		t.Fatalf("TopTotal error: %v", topError)
	}
	if sum != 12 {
		t.Fatalf("expected 12, got %d", sum)
	}
}

func TestErrors(t *testing.T) {
	if _, totalsError := calories.ElfTotals(strings.NewReader("100\nabc\n")); !errors.Is(totalsError, calories.ErrInvalidCalories) {
		t.Fatalf("expected ErrInvalidCalories, got %v", totalsError)
	}
	if _, totalsError := calories.ElfTotals(strings.NewReader("\n\n")); !errors.Is(totalsError, calories.ErrNoElves) {
		t.Fatalf("expected ErrNoElves, got %v", totalsError)
	}
	if _, topError := calories.TopTotal([]int{1}, 0); !errors.Is(topError, calories.ErrInvalidTopCount) {
		t.Fatalf("expected ErrInvalidTopCount, got %v", topError)
	}
}
