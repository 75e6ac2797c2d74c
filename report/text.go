package report

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/metro/dijkstra"
)

const pathSeparator = " -> "

// Formatter renders distances with a unit and a locale-aware printer.
type Formatter struct {
	printer *message.Printer
	unit    string
}

// NewFormatter returns a Formatter for unit (e.g. "km") in English.
func NewFormatter(unit string) *Formatter {
	return &Formatter{printer: newPrinter(), unit: unit}
}

func newPrinter() *message.Printer {
	return message.NewPrinter(language.English)
}

// Distance renders d with at most two fraction digits and the unit.
func (f *Formatter) Distance(d float64) string {
	s := f.printer.Sprintf("%v", formatNumber(d))
	if f.unit == "" {
		return s
	}

	return s + " " + f.unit
}

// Text summarizes res on one line.
//
//	Shortest path from S1 to S21: S1 -> S2 -> ... -> S21 (12 km)
//	No path from A to D
func (f *Formatter) Text(res *dijkstra.Result) string {
	if res == nil {
		return ""
	}
	if !res.Found {
		return f.printer.Sprintf("No path from %s to %s", res.Source, res.Target)
	}

	return f.printer.Sprintf("Shortest path from %s to %s: %s (%s)",
		res.Source, res.Target, strings.Join(res.Path, pathSeparator), f.Distance(res.Distance))
}

// Error describes a query failure, naming the failure kind and node(s).
func (f *Formatter) Error(err error) string {
	var (
		une *dijkstra.UnknownNodeError
		nfe *dijkstra.NotFoundError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &une):
		return f.printer.Sprintf("Unknown station %q", une.Node)
	case errors.As(err, &nfe):
		return f.printer.Sprintf("No path from %s to %s", nfe.Source, nfe.Target)
	default:
		return err.Error()
	}
}
