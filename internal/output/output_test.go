package output_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/temirov/advent/internal/filesystem"
	"github.com/temirov/advent/internal/output"
	"github.com/temirov/advent/internal/types"
)

const scenarioTranscript = "$ cd /\n$ ls\ndir a\n100 b.txt\n$ cd a\n$ ls\n50 c.txt\n$ cd ..\n"

const scenarioTreeRaw = "/ (dir, size=150)\n" +
	"├── a (dir, size=50)\n" +
	"│   └── c.txt (file, size=50)\n" +
	"└── b.txt (file, size=100)\n"

var sampleAnswers = []types.Answer{
	{Day: 7, Part: 1, Title: "No Space Left On Device", Input: "input/day7.txt", Value: "95437"},
	{Day: 7, Part: 2, Title: "No Space Left On Device", Input: "input/day7.txt", Value: "24933642"},
}

func buildScenarioTree(t *testing.T) *types.TreeOutputNode {
	t.Helper()
	root, parseError := filesystem.Parse(strings.NewReader(scenarioTranscript))
	if parseError != nil {
		t.Fatalf("parse transcript: %v", parseError)
	}
	return output.BuildTreeOutput(root)
}

func TestRenderAnswersRaw(t *testing.T) {
	var buffer bytes.Buffer
	if err := output.RenderAnswers(&buffer, types.FormatRaw, sampleAnswers); err != nil {
		t.Fatalf("RenderAnswers error: %v", err)
	}
	expected := "Day 7 part 1: 95437\nDay 7 part 2: 24933642\n"
	if buffer.String() != expected {
		t.Fatalf("unexpected output: %q", buffer.String())
	}
}

func TestRenderAnswersJSON(t *testing.T) {
	var buffer bytes.Buffer
	if err := output.RenderAnswers(&buffer, types.FormatJSON, sampleAnswers); err != nil {
		t.Fatalf("RenderAnswers error: %v", err)
	}
	var decoded []types.Answer
	if err := json.Unmarshal(buffer.Bytes(), &decoded); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if diff := cmp.Diff(sampleAnswers, decoded, cmpopts.IgnoreFields(types.Answer{}, "XMLName")); diff != "" {
		t.Fatalf("unexpected answers (-want +got):\n%s", diff)
	}
	if !strings.Contains(buffer.String(), "\n  {\n    \"day\": 7,") {
		t.Fatalf("expected indented json, got %s", buffer.String())
	}

	buffer.Reset()
	if err := output.RenderAnswers(&buffer, types.FormatJSON, nil); err != nil {
		t.Fatalf("RenderAnswers error: %v", err)
	}
	if buffer.String() != "[]\n" {
		t.Fatalf("expected empty array, got %q", buffer.String())
	}
}

func TestRenderAnswersXML(t *testing.T) {
	var buffer bytes.Buffer
	if err := output.RenderAnswers(&buffer, types.FormatXML, sampleAnswers[:1]); err != nil {
		t.Fatalf("RenderAnswers error: %v", err)
	}
	rendered := buffer.String()
	for _, fragment := range []string{"<?xml", "<answers>", "<answer>", "<value>95437</value>", "</answers>"} {
		if !strings.Contains(rendered, fragment) {
			t.Fatalf("expected %q in %s", fragment, rendered)
		}
	}
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	var buffer bytes.Buffer
	if err := output.RenderAnswers(&buffer, "yaml", sampleAnswers); !errors.Is(err, output.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if err := output.RenderDays(&buffer, "toml", nil); !errors.Is(err, output.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if err := output.RenderTree(&buffer, "csv", nil); !errors.Is(err, output.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestRenderDaysRaw(t *testing.T) {
	var buffer bytes.Buffer
	days := []types.DayOutput{{Day: 7, Name: "filesystem", Title: "No Space Left On Device", Parts: []int{1, 2}}}
	if err := output.RenderDays(&buffer, types.FormatRaw, days); err != nil {
		t.Fatalf("RenderDays error: %v", err)
	}
	expected := " 7  filesystem           No Space Left On Device (parts 1,2)\n"
	if buffer.String() != expected {
		t.Fatalf("unexpected output: %q", buffer.String())
	}
}

func TestBuildTreeOutput(t *testing.T) {
	tree := buildScenarioTree(t)
	if tree.SizeBytes != 150 || tree.TotalFiles != 2 || tree.Size != "150b" {
		t.Fatalf("unexpected root summary %+v", tree)
	}
	if len(tree.Children) != 2 {
		t.Fatalf("expected two children, got %d", len(tree.Children))
	}
	directory := tree.Children[0]
	if directory.Path != "/a" || directory.Type != types.NodeTypeDirectory || directory.SizeBytes != 50 || directory.TotalFiles != 1 {
		t.Fatalf("unexpected directory node %+v", directory)
	}
	if output.BuildTreeOutput(nil) != nil {
		t.Fatalf("expected nil output for nil node")
	}
}

func TestRenderTreeRaw(t *testing.T) {
	var buffer bytes.Buffer
	if err := output.RenderTree(&buffer, types.FormatRaw, buildScenarioTree(t)); err != nil {
		t.Fatalf("RenderTree error: %v", err)
	}
	if buffer.String() != scenarioTreeRaw {
		t.Fatalf("unexpected tree:\n%s", buffer.String())
	}
}

func TestRenderTreeJSONAndXML(t *testing.T) {
	tree := buildScenarioTree(t)
	var buffer bytes.Buffer
	if err := output.RenderTree(&buffer, types.FormatJSON, tree); err != nil {
		t.Fatalf("RenderTree json error: %v", err)
	}
	var decoded types.TreeOutputNode
	if err := json.Unmarshal(buffer.Bytes(), &decoded); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if diff := cmp.Diff(tree, &decoded, cmpopts.IgnoreFields(types.TreeOutputNode{}, "XMLName")); diff != "" {
		t.Fatalf("json round trip mismatch (-want +got):\n%s", diff)
	}

	buffer.Reset()
	if err := output.RenderTree(&buffer, types.FormatXML, tree); err != nil {
		t.Fatalf("RenderTree xml error: %v", err)
	}
	for _, fragment := range []string{"<node>", "<path>/a/c.txt</path>", "<sizeBytes>150</sizeBytes>", "<children>"} {
		if !strings.Contains(buffer.String(), fragment) {
			t.Fatalf("expected %q in %s", fragment, buffer.String())
		}
	}
}
