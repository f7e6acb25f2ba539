package filesystem

import (
	"io"
	"strconv"
)

// Options holds the thresholds of both queries.
type Options struct {
	SmallDirectoryLimit int64
	DiskCapacity        int64
	RequiredFreeSpace   int64
}

// DefaultOptions returns the puzzle's published thresholds.
func DefaultOptions() Options {
	return Options{
		SmallDirectoryLimit: DefaultSmallDirectoryLimit,
		DiskCapacity:        DefaultDiskCapacity,
		RequiredFreeSpace:   DefaultRequiredFreeSpace,
	}
}

// Solver answers both parts of the day with fixed options.
type Solver struct {
	Options Options
}

// PartOne sums the sizes of every directory below the small directory limit.
func (solver Solver) PartOne(transcript io.Reader) (string, error) {
	root, parseError := Parse(transcript)
	if parseError != nil {
		return "", parseError
	}
	total := SumOfSmallDirectories(EnumerateDirectories(root), solver.Options.SmallDirectoryLimit)
	return strconv.FormatInt(total, 10), nil
}

// PartTwo finds the smallest directory whose deletion frees enough space.
func (solver Solver) PartTwo(transcript io.Reader) (string, error) {
	root, parseError := Parse(transcript)
	if parseError != nil {
		return "", parseError
	}
	needed := SpaceNeeded(root.Size(), solver.Options.DiskCapacity, solver.Options.RequiredFreeSpace)
	smallest, queryError := SmallestSufficientDirectory(EnumerateDirectories(root), needed)
	if queryError != nil {
		return "", queryError
	}
	return strconv.FormatInt(smallest, 10), nil
}
