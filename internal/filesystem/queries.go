package filesystem

import (
	"errors"
	"fmt"
)

const (
	// DefaultSmallDirectoryLimit is the exclusive upper bound for Query A.
	DefaultSmallDirectoryLimit int64 = 100_000
	// DefaultDiskCapacity is the total size of the device.
	DefaultDiskCapacity int64 = 70_000_000
	// DefaultRequiredFreeSpace is the free space the update needs.
	DefaultRequiredFreeSpace int64 = 30_000_000

	errorNoCandidateFormat = "no directory of at least %d bytes: %w"
)

// ErrEmptyCandidateSet is returned when no directory is large enough to free the required space.
var ErrEmptyCandidateSet = errors.New("no deletion candidate")

// DirectorySize pairs a directory with its computed size.
type DirectorySize struct {
	Directory *Node
	Size      int64
}

// EnumerateDirectories lists every directory reachable from root, root
// included, in pre-order with children in insertion order. Files are skipped.
func EnumerateDirectories(root *Node) []DirectorySize {
	var directories []DirectorySize
	root.Walk(func(current *Node, _ int) {
		if current.IsDirectory() {
			directories = append(directories, DirectorySize{Directory: current, Size: current.Size()})
		}
	})
	return directories
}

// SumOfSmallDirectories adds up the sizes strictly below limit.
func SumOfSmallDirectories(directories []DirectorySize, limit int64) int64 {
	var total int64
	for _, directory := range directories {
		if directory.Size < limit {
			total += directory.Size
		}
	}
	return total
}

// SpaceNeeded returns how many bytes must be freed so that capacity minus
// used leaves at least requiredFree. It is negative when enough space is
// already free.
func SpaceNeeded(used, capacity, requiredFree int64) int64 {
	return requiredFree - (capacity - used)
}

// SmallestSufficientDirectory returns the smallest directory size that is at
// least needed.
func SmallestSufficientDirectory(directories []DirectorySize, needed int64) (int64, error) {
	found := false
	var smallest int64
	for _, directory := range directories {
		if directory.Size < needed {
			continue
		}
		if !found || directory.Size < smallest {
			smallest = directory.Size
			found = true
		}
	}
	if !found {
		return 0, fmt.Errorf(errorNoCandidateFormat, needed, ErrEmptyCandidateSet)
	}
	return smallest, nil
}
