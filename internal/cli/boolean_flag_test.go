package cli

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
)

func TestRegisterBooleanFlagParsesValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		defaultValue bool
		arguments    []string
		expected     bool
	}{
		{name: "defaults_to_false", arguments: []string{}, expected: false},
		{name: "sets_true_without_value", arguments: []string{"--copy"}, expected: true},
		{name: "sets_false_with_equals", defaultValue: true, arguments: []string{"--copy=false"}, expected: false},
		{name: "sets_false_with_no_literal", defaultValue: true, arguments: []string{"--copy", "no"}, expected: false},
		{name: "sets_true_with_on_literal", arguments: []string{"--copy", "on"}, expected: true},
		{name: "ignores_non_boolean_trailing_value", arguments: []string{"--copy", "maybe"}, expected: true},
		{name: "keeps_numeric_positional", arguments: []string{"--copy", "0"}, expected: true},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			command := &cobra.Command{Use: "boolean-test"}
			flagValue := !testCase.defaultValue
			registerBooleanFlag(command.Flags(), &flagValue, "copy", testCase.defaultValue, "copy answers")
			if parseErr := command.ParseFlags(normalizeBooleanFlagArguments(command, testCase.arguments)); parseErr != nil {
				t.Fatalf("unexpected parse error: %v", parseErr)
			}
			if flagValue != testCase.expected {
				t.Fatalf("expected %t, got %t", testCase.expected, flagValue)
			}
		})
	}
}

func TestBooleanFlagRejectsUnknownLiteral(t *testing.T) {
	var flagValue bool
	value := &booleanFlagValue{target: &flagValue, flagName: "copy"}
	if setErr := value.Set("maybe"); !errors.Is(setErr, errInvalidBooleanValue) {
		t.Fatalf("expected errInvalidBooleanValue, got %v", setErr)
	}
}

func TestNormalizeBooleanFlagArgumentsStopsAtTerminator(t *testing.T) {
	command := &cobra.Command{Use: "boolean-test"}
	var flagValue bool
	registerBooleanFlag(command.Flags(), &flagValue, "copy", false, "copy answers")
	normalized := normalizeBooleanFlagArguments(command, []string{"--copy", "yes", "--", "--copy", "no"})
	if diff := cmp.Diff([]string{"--copy=yes", "--", "--copy", "no"}, normalized); diff != "" {
		t.Fatalf("unexpected arguments (-want +got):\n%s", diff)
	}
}
