// Package filesystem reconstructs a directory tree from a shell transcript of
// cd and ls commands and answers size queries over it.
package filesystem

import (
	"errors"
	"fmt"
	"strings"
)

// RootPath is the fully-qualified path of the root directory.
const RootPath = "/"

const (
	pathSeparator = "/"

	errorLookupOnFileFormat = "lookup %s in file %s: %w"
	errorAddToFileFormat    = "add %s to file %s: %w"
	errorChildMissingFormat = "%s in %s: %w"
)

var (
	// ErrPathNotFound is returned when a lookup references a path that was never declared.
	ErrPathNotFound = errors.New("path not found")
	// ErrInvalidNodeKind is returned when a directory-only operation is invoked on a file.
	ErrInvalidNodeKind = errors.New("operation requires a directory")
)

// NodeKind tags a Node as a directory or a file.
type NodeKind int

const (
	NodeKindDirectory NodeKind = iota
	NodeKindFile
)

// String returns the lower-case name of the kind.
func (kind NodeKind) String() string {
	switch kind {
	case NodeKindDirectory:
		return "directory"
	case NodeKindFile:
		return "file"
	default:
		return fmt.Sprintf("NodeKind(%d)", int(kind))
	}
}

// Node is either a directory with ordered children or a file with a size.
// Directory-only operations check the kind at run time so both variants can
// live in the same children list.
type Node struct {
	kind     NodeKind
	path     string
	fileSize int64
	children []*Node
}

// NewDirectory returns an empty directory at path.
func NewDirectory(path string) *Node {
	return &Node{kind: NodeKindDirectory, path: path}
}

// NewFile returns a file at path holding size bytes.
func NewFile(path string, size int64) *Node {
	return &Node{kind: NodeKindFile, path: path, fileSize: size}
}

// Kind reports whether the node is a directory or a file.
func (node *Node) Kind() NodeKind {
	return node.kind
}

// IsDirectory reports whether the node is a directory.
func (node *Node) IsDirectory() bool {
	return node.kind == NodeKindDirectory
}

// Path returns the fully-qualified path of the node.
func (node *Node) Path() string {
	return node.path
}

// Name returns the last path segment, or "/" for the root.
func (node *Node) Name() string {
	if node.path == RootPath {
		return RootPath
	}
	return node.path[strings.LastIndex(node.path, pathSeparator)+1:]
}

// Children returns the children in insertion order. Files have none.
func (node *Node) Children() []*Node {
	return node.children
}

// Size returns the stored size of a file, or the recursive sum of a
// directory's children. Directory sizes are never cached.
func (node *Node) Size() int64 {
	if node.kind == NodeKindFile {
		return node.fileSize
	}
	var total int64
	for _, child := range node.children {
		total += child.Size()
	}
	return total
}

// Lookup returns the direct child whose fully-qualified path equals path.
func (node *Node) Lookup(path string) (*Node, error) {
	if node.kind != NodeKindDirectory {
		return nil, fmt.Errorf(errorLookupOnFileFormat, path, node.path, ErrInvalidNodeKind)
	}
	for _, child := range node.children {
		if child.path == path {
			return child, nil
		}
	}
	return nil, fmt.Errorf(errorChildMissingFormat, path, node.path, ErrPathNotFound)
}

// AddIfNew appends child unless a child with the same path already exists.
// An existing entry is never replaced, even if its size differs.
// It reports whether child was added.
func (node *Node) AddIfNew(child *Node) (bool, error) {
	if node.kind != NodeKindDirectory {
		return false, fmt.Errorf(errorAddToFileFormat, child.path, node.path, ErrInvalidNodeKind)
	}
	for _, existing := range node.children {
		if existing.path == child.path {
			return false, nil
		}
	}
	node.children = append(node.children, child)
	return true, nil
}

// Walk visits node and every descendant in pre-order, children in insertion
// order, passing the depth below node.
func (node *Node) Walk(visit func(current *Node, depth int)) {
	node.walk(visit, 0)
}

func (node *Node) walk(visit func(current *Node, depth int), depth int) {
	visit(node, depth)
	for _, child := range node.children {
		child.walk(visit, depth+1)
	}
}

// JoinPath builds the fully-qualified path of name inside the directory whose
// segments from the root are given.
func JoinPath(segments []string, name string) string {
	if len(segments) == 0 {
		return RootPath + name
	}
	return RootPath + strings.Join(segments, pathSeparator) + pathSeparator + name
}
