// Package types defines every cross-package data structure used by the advent CLI.
package types

import (
	"encoding/xml"
	"strings"
)

const (
	NodeTypeFile      = "file"
	NodeTypeDirectory = "directory"

	CommandSolve = "solve"
	CommandAll   = "all"
	CommandTree  = "tree"
	CommandDays  = "days"
	CommandInit  = "init"

	FormatRaw  = "raw"
	FormatJSON = "json"
	FormatXML  = "xml"
)

// IsSupportedFormat reports whether format names one of the output formats.
func IsSupportedFormat(format string) bool {
	switch strings.ToLower(format) {
	case FormatRaw, FormatJSON, FormatXML:
		return true
	default:
		return false
	}
}

// Answer is the result of solving one part of one day.
type Answer struct {
	XMLName xml.Name `json:"-" xml:"answer"`
	Day     int      `json:"day" xml:"day"`
	Part    int      `json:"part" xml:"part"`
	Title   string   `json:"title" xml:"title"`
	Input   string   `json:"input" xml:"input"`
	Value   string   `json:"value" xml:"value"`
}

// DayOutput describes one registered day for the days command.
type DayOutput struct {
	XMLName xml.Name `json:"-" xml:"day"`
	Day     int      `json:"day" xml:"number"`
	Name    string   `json:"name" xml:"name"`
	Title   string   `json:"title" xml:"title"`
	Parts   []int    `json:"parts" xml:"parts>part"`
}

// TreeOutputNode represents a node of a reconstructed filesystem tree.
type TreeOutputNode struct {
	XMLName    xml.Name          `json:"-" xml:"node"`
	Path       string            `json:"path" xml:"path"`
	Name       string            `json:"name" xml:"name"`
	Type       string            `json:"type" xml:"type"`
	Size       string            `json:"size" xml:"size"`
	SizeBytes  int64             `json:"sizeBytes" xml:"sizeBytes"`
	TotalFiles int               `json:"totalFiles,omitempty" xml:"totalFiles,omitempty"`
	Children   []*TreeOutputNode `json:"children,omitempty" xml:"children>node,omitempty"`
}
