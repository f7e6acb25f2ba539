// Package solutions registers every implemented day with the puzzle registry.
package solutions

import (
	"fmt"

	"github.com/temirov/advent/internal/calories"
	"github.com/temirov/advent/internal/config"
	"github.com/temirov/advent/internal/crates"
	"github.com/temirov/advent/internal/filesystem"
	"github.com/temirov/advent/internal/puzzle"
	"github.com/temirov/advent/internal/rockpaperscissors"
	"github.com/temirov/advent/internal/rucksack"
	"github.com/temirov/advent/internal/sections"
	"github.com/temirov/advent/internal/signal"
)

const errorRegisterFormat = "register %s: %w"

// NewRegistry returns a registry holding days 1 through 7 tuned by settings.
func NewRegistry(settings config.Settings) (*puzzle.Registry, error) {
	caloriesSolver := calories.Solver{TopCount: settings.TopCount}
	signalSolver := signal.Solver{PacketWindow: settings.PacketWindow, MessageWindow: settings.MessageWindow}
	filesystemSolver := filesystem.Solver{Options: settings.Filesystem}

	puzzles := []puzzle.Puzzle{
		{Day: 1, Name: "calories", Title: "Calorie Counting", Parts: []puzzle.Part{caloriesSolver.PartOne, caloriesSolver.PartTwo}},
		{Day: 2, Name: "rockpaperscissors", Title: "Rock Paper Scissors", Parts: []puzzle.Part{rockpaperscissors.PartOne, rockpaperscissors.PartTwo}},
		{Day: 3, Name: "rucksack", Title: "Rucksack Reorganization", Parts: []puzzle.Part{rucksack.PartOne, rucksack.PartTwo}},
		{Day: 4, Name: "sections", Title: "Camp Cleanup", Parts: []puzzle.Part{sections.PartOne, sections.PartTwo}},
		{Day: 5, Name: "crates", Title: "Supply Stacks", Parts: []puzzle.Part{crates.PartOne, crates.PartTwo}},
		{Day: 6, Name: "signal", Title: "Tuning Trouble", Parts: []puzzle.Part{signalSolver.PartOne, signalSolver.PartTwo}},
		{Day: 7, Name: "filesystem", Title: "No Space Left On Device", Parts: []puzzle.Part{filesystemSolver.PartOne, filesystemSolver.PartTwo}},
	}

	registry := puzzle.NewRegistry()
	for _, dailyPuzzle := range puzzles {
		if registerError := registry.Register(dailyPuzzle); registerError != nil {
			return nil, fmt.Errorf(errorRegisterFormat, dailyPuzzle.Name, registerError)
		}
	}
	return registry, nil
}
