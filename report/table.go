package report

import (
	"math"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/metro/dijkstra"
)

// unreachableCell marks an infinite distance in Table output.
const unreachableCell = "-"

// Table renders m as a tab-aligned grid with one row and one column per node.
func (f *Formatter) Table(m *dijkstra.Matrix) string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 1, ' ', tabwriter.AlignRight)

	tw.Write([]byte("\t" + strings.Join(m.Nodes, "\t") + "\t\n"))
	for i, from := range m.Nodes {
		cells := make([]string, 0, len(m.Nodes)+1)
		cells = append(cells, from)
		for j := range m.Nodes {
			d := m.Dist[i][j]
			if math.IsInf(d, 1) {
				cells = append(cells, unreachableCell)
				continue
			}
			cells = append(cells, f.printer.Sprintf("%v", formatNumber(d)))
		}
		tw.Write([]byte(strings.Join(cells, "\t") + "\t\n"))
	}
	tw.Flush()

	return sb.String()
}
