package filesystem_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/temirov/advent/internal/filesystem"
)

const exampleTranscript = `$ cd /
$ ls
dir a
14848514 b.txt
8504156 c.dat
dir d
$ cd a
$ ls
dir e
29116 f
2557 g
62596 h.lst
$ cd e
$ ls
584 i
$ cd ..
$ cd ..
$ cd d
$ ls
4060174 j
8033020 d.log
5626152 d.ext
7214296 k
`

type pathSize struct {
	Path string
	Size int64
}

func summarize(directories []filesystem.DirectorySize) []pathSize {
	summary := make([]pathSize, 0, len(directories))
	for _, directory := range directories {
		summary = append(summary, pathSize{Path: directory.Directory.Path(), Size: directory.Size})
	}
	return summary
}

func sumOfFiles(root *filesystem.Node) int64 {
	var total int64
	root.Walk(func(current *filesystem.Node, _ int) {
		if !current.IsDirectory() {
			total += current.Size()
		}
	})
	return total
}

func mustParse(t *testing.T, transcript string) *filesystem.Node {
	t.Helper()
	root, parseError := filesystem.Parse(strings.NewReader(transcript))
	if parseError != nil {
		t.Fatalf("parse transcript: %v", parseError)
	}
	return root
}

func TestParseExampleTranscript(t *testing.T) {
	root := mustParse(t, exampleTranscript)

	if root.Size() != 48381165 {
		t.Fatalf("expected root size 48381165, got %d", root.Size())
	}
	if root.Size() != sumOfFiles(root) {
		t.Fatalf("root size %d differs from file total %d", root.Size(), sumOfFiles(root))
	}

	expected := []pathSize{
		{Path: "/", Size: 48381165},
		{Path: "/a", Size: 94853},
		{Path: "/a/e", Size: 584},
		{Path: "/d", Size: 24933642},
	}
	if diff := cmp.Diff(expected, summarize(filesystem.EnumerateDirectories(root))); diff != "" {
		t.Fatalf("unexpected directory enumeration (-want +got):\n%s", diff)
	}
}

func TestSolverAnswersExample(t *testing.T) {
	solver := filesystem.Solver{Options: filesystem.DefaultOptions()}

	partOne, partOneError := solver.PartOne(strings.NewReader(exampleTranscript))
	if partOneError != nil {
		t.Fatalf("part one: %v", partOneError)
	}
	if partOne != "95437" {
		t.Fatalf("expected part one 95437, got %s", partOne)
	}

	partTwo, partTwoError := solver.PartTwo(strings.NewReader(exampleTranscript))
	if partTwoError != nil {
		t.Fatalf("part two: %v", partTwoError)
	}
	if partTwo != "24933642" {
		t.Fatalf("expected part two 24933642, got %s", partTwo)
	}
}

func TestSmallScenario(t *testing.T) {
	transcript := "$ cd /\n$ ls\ndir a\n100 b.txt\n$ cd a\n$ ls\n50 c.txt\n$ cd ..\n"
	root := mustParse(t, transcript)
	directories := filesystem.EnumerateDirectories(root)

	expected := []pathSize{{Path: "/", Size: 150}, {Path: "/a", Size: 50}}
	if diff := cmp.Diff(expected, summarize(directories)); diff != "" {
		t.Fatalf("unexpected directory enumeration (-want +got):\n%s", diff)
	}
	if total := filesystem.SumOfSmallDirectories(directories, 60); total != 50 {
		t.Fatalf("expected small directory sum 50, got %d", total)
	}
	if total := filesystem.SumOfSmallDirectories(directories, filesystem.DefaultSmallDirectoryLimit); total != 200 {
		t.Fatalf("expected small directory sum 200, got %d", total)
	}
}

func TestDuplicateListingsAreIgnored(t *testing.T) {
	once := "$ cd /\n$ ls\ndir a\n10 x\n$ cd a\n$ ls\n5 y\n"
	twice := "$ cd /\n$ ls\ndir a\n10 x\n$ ls\ndir a\n10 x\n999 x\n$ cd a\n$ ls\n5 y\n5 y\n$ cd /\n$ ls\ndir a\n"

	onceRoot := mustParse(t, once)
	twiceRoot := mustParse(t, twice)

	if diff := cmp.Diff(summarize(filesystem.EnumerateDirectories(onceRoot)), summarize(filesystem.EnumerateDirectories(twiceRoot))); diff != "" {
		t.Fatalf("re-listing changed the tree (-once +twice):\n%s", diff)
	}
	if len(twiceRoot.Children()) != 2 {
		t.Fatalf("expected 2 root children, got %d", len(twiceRoot.Children()))
	}
	twiceRoot.Walk(func(current *filesystem.Node, _ int) {
		seen := make(map[string]struct{})
		for _, child := range current.Children() {
			if _, duplicate := seen[child.Path()]; duplicate {
				t.Fatalf("duplicate sibling path %s", child.Path())
			}
			seen[child.Path()] = struct{}{}
		}
	})
}

func TestParseBlankLinesAreSkipped(t *testing.T) {
	root := mustParse(t, "\n$ cd /\n\n$ ls\n\n42 a\n\n")
	if root.Size() != 42 {
		t.Fatalf("expected size 42, got %d", root.Size())
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name       string
		transcript string
		expected   error
	}{
		{name: "parent_of_root", transcript: "$ cd /\n$ cd ..\n", expected: filesystem.ErrInvalidNavigation},
		{name: "undeclared_directory", transcript: "$ cd /\n$ cd missing\n", expected: filesystem.ErrPathNotFound},
		{name: "cd_into_file", transcript: "$ cd /\n$ ls\n12 notes\n$ cd notes\n", expected: filesystem.ErrInvalidNodeKind},
		{name: "missing_cd_argument", transcript: "$ cd\n", expected: filesystem.ErrMissingArgument},
		{name: "unknown_command", transcript: "$ rm -rf /\n", expected: filesystem.ErrMalformedLine},
		{name: "garbage_line", transcript: "$ cd /\nhello world\n", expected: filesystem.ErrMalformedLine},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			root, parseError := filesystem.Parse(strings.NewReader(testCase.transcript))
			if !errors.Is(parseError, testCase.expected) {
				t.Fatalf("expected %v, got %v", testCase.expected, parseError)
			}
			if root != nil {
				t.Fatalf("expected no tree on error")
			}
		})
	}
}

func TestParseErrorReportsLineNumber(t *testing.T) {
	_, parseError := filesystem.Parse(strings.NewReader("$ cd /\n$ ls\nbogus\n"))
	if parseError == nil || !strings.Contains(parseError.Error(), "line 3") {
		t.Fatalf("expected error mentioning line 3, got %v", parseError)
	}
}

func TestSmallestSufficientDirectory(t *testing.T) {
	directories := summarizeSizes(300, 120, 45, 80)
	testCases := []struct {
		name     string
		needed   int64
		expected int64
		err      error
	}{
		{name: "exact_match", needed: 80, expected: 80},
		{name: "between_sizes", needed: 81, expected: 120},
		{name: "negative_need", needed: -10, expected: 45},
		{name: "largest_only", needed: 300, expected: 300},
		{name: "nothing_large_enough", needed: 301, err: filesystem.ErrEmptyCandidateSet},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			smallest, queryError := filesystem.SmallestSufficientDirectory(directories, testCase.needed)
			if testCase.err != nil {
				if !errors.Is(queryError, testCase.err) {
					t.Fatalf("expected %v, got %v", testCase.err, queryError)
				}
				return
			}
			if queryError != nil {
				t.Fatalf("unexpected error: %v", queryError)
			}
			if smallest != testCase.expected {
				t.Fatalf("expected %d, got %d", testCase.expected, smallest)
			}
		})
	}
}

func TestSmallestSufficientDirectoryEmptyList(t *testing.T) {
	if _, queryError := filesystem.SmallestSufficientDirectory(nil, 0); !errors.Is(queryError, filesystem.ErrEmptyCandidateSet) {
		t.Fatalf("expected ErrEmptyCandidateSet, got %v", queryError)
	}
}

func TestSumOfSmallDirectoriesBounds(t *testing.T) {
	root := mustParse(t, exampleTranscript)
	directories := filesystem.EnumerateDirectories(root)
	if total := filesystem.SumOfSmallDirectories(directories, 500); total != 0 {
		t.Fatalf("expected 0 when every directory is at least the limit, got %d", total)
	}
	if total := filesystem.SumOfSmallDirectories(directories, 1<<40); total <= root.Size() {
		t.Fatalf("expected nested directories to be counted on top of the root, got %d", total)
	}
	if total := filesystem.SumOfSmallDirectories(directories, root.Size()); total > root.Size() {
		t.Fatalf("sum %d exceeds root size %d", total, root.Size())
	}
}

func TestSpaceNeeded(t *testing.T) {
	needed := filesystem.SpaceNeeded(48381165, filesystem.DefaultDiskCapacity, filesystem.DefaultRequiredFreeSpace)
	if needed != 8381165 {
		t.Fatalf("expected 8381165, got %d", needed)
	}
}

func summarizeSizes(sizes ...int64) []filesystem.DirectorySize {
	directories := make([]filesystem.DirectorySize, 0, len(sizes))
	for _, size := range sizes {
		directories = append(directories, filesystem.DirectorySize{Directory: filesystem.NewDirectory("/"), Size: size})
	}
	return directories
}
