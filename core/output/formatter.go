// Package output renders quotes and rate sheets for humans and machines.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"import-duty/core/engine"
	"import-duty/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatText is a human-readable table
	FormatText Format = "text"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter renders engine output in one format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// RenderQuote writes a single quote
	RenderQuote(w io.Writer, q *engine.Quote) error

	// RenderSheet writes a rate sheet
	RenderSheet(w io.Writer, s engine.Sheet) error
}

var formatters = map[Format]Formatter{
	FormatText: textFormatter{},
	FormatJSON: jsonFormatter{},
}

// Get returns the formatter for f
func Get(f Format) (Formatter, error) {
	if fm, ok := formatters[f]; ok {
		return fm, nil
	}
	return nil, errors.NotSupported("output format", string(f))
}

// Formats lists the available formats in sorted order
func Formats() []Format {
	out := make([]Format, 0, len(formatters))
	for f := range formatters {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

type jsonFormatter struct{}

func (jsonFormatter) Format() Format { return FormatJSON }

func (jsonFormatter) RenderQuote(w io.Writer, q *engine.Quote) error {
	return writeJSON(w, q)
}

func (jsonFormatter) RenderSheet(w io.Writer, s engine.Sheet) error {
	return writeJSON(w, s)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type textFormatter struct{}

func (textFormatter) Format() Format { return FormatText }

func (textFormatter) RenderQuote(w io.Writer, q *engine.Quote) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Jurisdiction:\t%s\n", q.Jurisdiction)
	if q.Bracket != "" {
		fmt.Fprintf(tw, "Age bracket:\t%s\n", q.Bracket)
	}
	if q.Breakdown != nil {
		fmt.Fprintf(tw, "Base duty:\t%s\n", q.Formatted.BaseDuty)
		fmt.Fprintf(tw, "Excise:\t%s\n", q.Formatted.Excise)
		fmt.Fprintf(tw, "VAT:\t%s\n", q.Formatted.VAT)
	}
	fmt.Fprintf(tw, "Total:\t%s\n", q.Formatted.Total)
	if q.Currency != "USD" {
		fmt.Fprintf(tw, "Total (USD):\t%s\n", q.Formatted.TotalUSD)
	}
	fmt.Fprintf(tw, "Rates:\t%s\n", q.ScheduleVersion)

	return tw.Flush()
}

func (textFormatter) RenderSheet(w io.Writer, s engine.Sheet) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Rate schedule: %s\n\n", s.Version)
	fmt.Fprintln(tw, "JURISDICTION\tKIND\tKEY\tAPPLIES\tRATE\tUNIT")
	for _, r := range s.Rows {
		j := string(r.Jurisdiction)
		if j == "" {
			j = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", j, r.Kind, r.Key, r.Applies, r.Rate, r.Unit)
	}

	return tw.Flush()
}
