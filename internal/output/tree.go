package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/temirov/advent/internal/filesystem"
	"github.com/temirov/advent/internal/types"
	"github.com/temirov/advent/internal/utils"
)

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "

	directoryLineFormat = "%s%s (dir, size=%d)\n"
	fileLineFormat      = "%s%s (file, size=%d)\n"
)

// BuildTreeOutput converts a reconstructed filesystem into its output form,
// computing every directory's recursive size and file count.
func BuildTreeOutput(node *filesystem.Node) *types.TreeOutputNode {
	if node == nil {
		return nil
	}
	outputNode := &types.TreeOutputNode{
		Path: node.Path(),
		Name: node.Name(),
	}
	if !node.IsDirectory() {
		outputNode.Type = types.NodeTypeFile
		outputNode.SizeBytes = node.Size()
		outputNode.Size = utils.FormatFileSize(outputNode.SizeBytes)
		return outputNode
	}
	outputNode.Type = types.NodeTypeDirectory
	for _, child := range node.Children() {
		childOutput := BuildTreeOutput(child)
		outputNode.SizeBytes += childOutput.SizeBytes
		if childOutput.Type == types.NodeTypeFile {
			outputNode.TotalFiles++
		} else {
			outputNode.TotalFiles += childOutput.TotalFiles
		}
		outputNode.Children = append(outputNode.Children, childOutput)
	}
	outputNode.Size = utils.FormatFileSize(outputNode.SizeBytes)
	return outputNode
}

// RenderTree writes a tree in the requested format.
func RenderTree(writer io.Writer, format string, node *types.TreeOutputNode) error {
	switch strings.ToLower(format) {
	case types.FormatRaw:
		var builder strings.Builder
		WriteTreeRaw(&builder, node)
		return writeString(writer, format, builder.String())
	case types.FormatJSON:
		return writeJSON(writer, node)
	case types.FormatXML:
		return writeXML(writer, node)
	default:
		return fmt.Errorf(errorFormatFormat, format, ErrUnsupportedFormat)
	}
}

// WriteTreeRaw draws the tree with box connectors, one node per line.
func WriteTreeRaw(writer io.Writer, node *types.TreeOutputNode) {
	if node == nil {
		return
	}
	renderTreeNode(writer, node, "", true, true)
}

func treeNodeLinePrefix(prefix string, isRoot bool, isLast bool) (string, string) {
	if isRoot {
		return "", ""
	}
	if isLast {
		return prefix + treeLastConnector, prefix + treeLastPadding
	}
	return prefix + treeBranchConnector, prefix + treeBranchPadding
}

func renderTreeNode(writer io.Writer, node *types.TreeOutputNode, prefix string, isRoot bool, isLast bool) {
	linePrefix, childPrefix := treeNodeLinePrefix(prefix, isRoot, isLast)
	if node.Type == types.NodeTypeFile {
		fmt.Fprintf(writer, fileLineFormat, linePrefix, node.Name, node.SizeBytes)
		return
	}
	fmt.Fprintf(writer, directoryLineFormat, linePrefix, node.Name, node.SizeBytes)
	for index, child := range node.Children {
		renderTreeNode(writer, child, childPrefix, false, index == len(node.Children)-1)
	}
}
