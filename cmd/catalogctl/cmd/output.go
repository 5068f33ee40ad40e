package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	headerColor  = color.New(color.FgCyan, color.Bold)
	dimColor     = color.New(color.Faint)
)

func printSuccess(w io.Writer, format string, args ...any) {
	successColor.Fprintf(w, "✓ %s\n", fmt.Sprintf(format, args...)) //nolint:errcheck
}

func printError(w io.Writer, err error) {
	errorColor.Fprintf(w, "✗ %v\n", err) //nolint:errcheck
}

func printHeader(w io.Writer, format string, args ...any) {
	headerColor.Fprintf(w, "%s\n", fmt.Sprintf(format, args...)) //nolint:errcheck
}

// printCounts prints aligned "label value" rows.
func printCounts(w io.Writer, rows [][2]any) {
	width := 0
	for _, r := range rows {
		if n := len(fmt.Sprint(r[0])); n > width {
			width = n
		}
	}
	for _, r := range rows {
		label := fmt.Sprint(r[0])
		fmt.Fprintf(w, "  %s%s  %v\n", label, strings.Repeat(" ", width-len(label)), r[1])
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
