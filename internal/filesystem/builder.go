package filesystem

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/temirov/advent/internal/puzzle"
)

const (
	errorResolveFormat      = "resolve %s: %w"
	errorUnknownLineKind    = "unknown line kind %d: %w"
	errorNavigateRootFormat = "cd %s from %s: %w"
)

// ErrInvalidNavigation is returned when cd .. is issued at the root.
var ErrInvalidNavigation = errors.New("cannot move above the root directory")

// Builder applies classified transcript lines to a tree. It tracks the
// working directory as path segments plus the resolved directory node.
type Builder struct {
	root             *Node
	currentSegments  []string
	currentDirectory *Node
}

// NewBuilder returns a builder positioned at a freshly created root.
func NewBuilder() *Builder {
	root := NewDirectory(RootPath)
	return &Builder{root: root, currentDirectory: root}
}

// Root returns the root directory of the tree built so far.
func (builder *Builder) Root() *Node {
	return builder.root
}

// WorkingDirectory returns the fully-qualified path of the cursor.
func (builder *Builder) WorkingDirectory() string {
	return RootPath + strings.Join(builder.currentSegments, pathSeparator)
}

// Apply advances the builder by one transcript line.
func (builder *Builder) Apply(line Line) error {
	switch line.Kind {
	case LineKindChangeDirectory:
		return builder.changeDirectory(line.Argument)
	case LineKindList:
		return nil
	case LineKindDirectoryEntry:
		_, addError := builder.currentDirectory.AddIfNew(NewDirectory(JoinPath(builder.currentSegments, line.Argument)))
		return addError
	case LineKindFileEntry:
		_, addError := builder.currentDirectory.AddIfNew(NewFile(JoinPath(builder.currentSegments, line.Argument), line.Size))
		return addError
	default:
		return fmt.Errorf(errorUnknownLineKind, line.Kind, ErrMalformedLine)
	}
}

func (builder *Builder) changeDirectory(target string) error {
	switch target {
	case RootPath:
		builder.currentSegments = builder.currentSegments[:0]
	case ParentDirectory:
		if len(builder.currentSegments) == 0 {
			return fmt.Errorf(errorNavigateRootFormat, target, RootPath, ErrInvalidNavigation)
		}
		builder.currentSegments = builder.currentSegments[:len(builder.currentSegments)-1]
	default:
		builder.currentSegments = append(builder.currentSegments, target)
	}
	return builder.resolveCurrentDirectory()
}

// resolveCurrentDirectory walks from the root through every segment of the
// working directory, looking each child up by its fully-qualified path.
func (builder *Builder) resolveCurrentDirectory() error {
	directory := builder.root
	for segmentIndex := range builder.currentSegments {
		childPath := JoinPath(builder.currentSegments[:segmentIndex], builder.currentSegments[segmentIndex])
		child, lookupError := directory.Lookup(childPath)
		if lookupError != nil {
			return fmt.Errorf(errorResolveFormat, builder.WorkingDirectory(), lookupError)
		}
		directory = child
	}
	if !directory.IsDirectory() {
		return fmt.Errorf(errorResolveFormat, builder.WorkingDirectory(), ErrInvalidNodeKind)
	}
	builder.currentDirectory = directory
	return nil
}

// Parse builds a tree from a whole transcript. Blank lines are skipped. The
// first error aborts the parse and no tree is returned.
func Parse(transcript io.Reader) (*Node, error) {
	builder := NewBuilder()
	parseError := puzzle.ForEachNonBlankLine(transcript, func(lineNumber int, text string) error {
		line, classifyError := ClassifyLine(text)
		if classifyError != nil {
			return puzzle.LineError(lineNumber, classifyError)
		}
		if applyError := builder.Apply(line); applyError != nil {
			return puzzle.LineError(lineNumber, applyError)
		}
		return nil
	})
	if parseError != nil {
		return nil, parseError
	}
	return builder.Root(), nil
}
