package conformance

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Report output formats.
const (
	FormatLines = "lines"
	FormatTable = "table"
	FormatJSON  = "json"
)

// Formats lists the supported report formats.
func Formats() []string {
	return []string{FormatLines, FormatTable, FormatJSON}
}

// Write renders results to w in the given format.
func Write(w io.Writer, format string, results ...SuiteResult) error {
	switch format {
	case FormatLines:
		return WriteLines(w, results...)
	case FormatTable:
		return WriteTable(w, results...)
	case FormatJSON:
		return WriteJSON(w, results...)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// WriteLines emits each got-value as a decimal integer followed by a newline,
// in case order. This is the harness wire format: for the builtin GCD suite
// the output is byte-identical to the upstream oracle stream.
func WriteLines(w io.Writer, results ...SuiteResult) error {
	for _, sr := range results {
		for _, res := range sr.Results {
			if _, err := fmt.Fprintf(w, "%d\n", res.Got); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteTable renders one row per case.
func WriteTable(w io.Writer, results ...SuiteResult) error {
	table := tablewriter.NewWriter(w)
	table.Header("Suite", "Kernel", "Args", "Want", "Got", "Status")
	for _, sr := range results {
		for _, res := range sr.Results {
			status := "PASS"
			if !res.Pass {
				status = "FAIL"
			}
			table.Append(
				sr.Suite,
				sr.Kernel,
				formatArgs(res.Args),
				strconv.FormatInt(res.Want, 10),
				strconv.FormatInt(res.Got, 10),
				status,
			)
		}
	}
	return table.Render()
}

// WriteJSON marshals the suite results, indented, to w.
func WriteJSON(w io.Writer, results ...SuiteResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func formatArgs(args []int64) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = strconv.FormatInt(a, 10)
	}
	return strings.Join(parts, ", ")
}
