// Package output renders answers, day listings and filesystem trees as raw
// text, JSON or XML.
package output

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/temirov/advent/internal/types"
)

const (
	indentPrefix = ""
	indentSpacer = "  "

	xmlHeader = xml.Header

	errorFormatFormat  = "format %q: %w"
	errorEncodeFormat  = "encode %s: %w"
	errorWriteFormat   = "write %s output: %w"
	answerLineFormat   = "Day %d part %d: %s\n"
	dayLineFormat      = "%2d  %-20s %s (parts %s)\n"
	partNumberSeparate = ","
)

// ErrUnsupportedFormat is returned for a format other than raw, json or xml.
var ErrUnsupportedFormat = errors.New("unsupported output format")

type answersDocument struct {
	XMLName xml.Name       `xml:"answers"`
	Answers []types.Answer `xml:"answer"`
}

type daysDocument struct {
	XMLName xml.Name          `xml:"days"`
	Days    []types.DayOutput `xml:"day"`
}

// RenderAnswers writes answers in the requested format.
func RenderAnswers(writer io.Writer, format string, answers []types.Answer) error {
	switch strings.ToLower(format) {
	case types.FormatRaw:
		var builder strings.Builder
		for _, answer := range answers {
			fmt.Fprintf(&builder, answerLineFormat, answer.Day, answer.Part, answer.Value)
		}
		return writeString(writer, format, builder.String())
	case types.FormatJSON:
		if answers == nil {
			answers = []types.Answer{}
		}
		return writeJSON(writer, answers)
	case types.FormatXML:
		return writeXML(writer, answersDocument{Answers: answers})
	default:
		return fmt.Errorf(errorFormatFormat, format, ErrUnsupportedFormat)
	}
}

// RenderDays writes the registered days in the requested format.
func RenderDays(writer io.Writer, format string, days []types.DayOutput) error {
	switch strings.ToLower(format) {
	case types.FormatRaw:
		var builder strings.Builder
		for _, day := range days {
			partNumbers := make([]string, 0, len(day.Parts))
			for _, partNumber := range day.Parts {
				partNumbers = append(partNumbers, fmt.Sprint(partNumber))
			}
			fmt.Fprintf(&builder, dayLineFormat, day.Day, day.Name, day.Title, strings.Join(partNumbers, partNumberSeparate))
		}
		return writeString(writer, format, builder.String())
	case types.FormatJSON:
		if days == nil {
			days = []types.DayOutput{}
		}
		return writeJSON(writer, days)
	case types.FormatXML:
		return writeXML(writer, daysDocument{Days: days})
	default:
		return fmt.Errorf(errorFormatFormat, format, ErrUnsupportedFormat)
	}
}

func writeJSON(writer io.Writer, value any) error {
	encoded, encodeError := json.MarshalIndent(value, indentPrefix, indentSpacer)
	if encodeError != nil {
		return fmt.Errorf(errorEncodeFormat, types.FormatJSON, encodeError)
	}
	return writeString(writer, types.FormatJSON, string(encoded)+"\n")
}

func writeXML(writer io.Writer, value any) error {
	encoded, encodeError := xml.MarshalIndent(value, indentPrefix, indentSpacer)
	if encodeError != nil {
		return fmt.Errorf(errorEncodeFormat, types.FormatXML, encodeError)
	}
	return writeString(writer, types.FormatXML, xmlHeader+string(encoded)+"\n")
}

func writeString(writer io.Writer, format string, text string) error {
	if _, writeError := io.WriteString(writer, text); writeError != nil {
		return fmt.Errorf(errorWriteFormat, format, writeError)
	}
	return nil
}
