package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/number"

	"github.com/katalvlaran/metro/core"
	"github.com/katalvlaran/metro/dijkstra"
	"github.com/katalvlaran/metro/metro"
)

// Path styling in DOT output.
const (
	pathColor = "red"
	pathWidth = 2
)

// DOT writes g as an undirected Graphviz graph.
//
//   - Nodes are filled with their line color from net (UnassignedColor otherwise).
//   - Every edge carries its weight as a label.
//   - When res is a found path, its edges are drawn red and thicker.
//   - A legend cluster lists the lines of net.
//
// net and res may be nil.
func DOT(w io.Writer, g *core.Graph, net *metro.Network, res *dijkstra.Result) error {
	bw := bufio.NewWriter(w)
	p := newPrinter()

	title := "network"
	if net != nil && net.Name != "" {
		title = net.Name
	}
	onPath := pathEdges(res)

	fmt.Fprintf(bw, "graph %s {\n", strconv.Quote(title))
	fmt.Fprintf(bw, "  label=%s;\n  labelloc=t;\n", strconv.Quote(title))
	fmt.Fprintln(bw, "  node [shape=circle, style=filled, color=gray];")

	for _, v := range g.Vertices() {
		color := metro.UnassignedColor
		if net != nil {
			color = net.ColorOf(v)
		}
		fmt.Fprintf(bw, "  %s [fillcolor=%s];\n", strconv.Quote(v), strconv.Quote(color))
	}

	for _, e := range g.Edges() {
		attrs := "label=" + strconv.Quote(p.Sprintf("%v", formatNumber(e.Weight)))
		if onPath[undirectedKey(e.From, e.To)] {
			attrs += fmt.Sprintf(", color=%s, penwidth=%d", pathColor, pathWidth)
		}
		fmt.Fprintf(bw, "  %s -- %s [%s];\n", strconv.Quote(e.From), strconv.Quote(e.To), attrs)
	}

	if net != nil && len(net.Lines) > 0 {
		fmt.Fprintln(bw, "  subgraph cluster_legend {")
		fmt.Fprintln(bw, "    label=\"Lines\";")
		for i, l := range net.Lines {
			fmt.Fprintf(bw, "    legend_%d [label=%s, shape=box, fillcolor=%s];\n",
				i, strconv.Quote(l.Name), strconv.Quote(l.Color))
		}
		fmt.Fprintln(bw, "  }")
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}

func pathEdges(res *dijkstra.Result) map[string]bool {
	out := make(map[string]bool)
	if res == nil || !res.Found {
		return out
	}
	for i := 1; i < len(res.Path); i++ {
		out[undirectedKey(res.Path[i-1], res.Path[i])] = true
	}

	return out
}

func undirectedKey(a, b string) string {
	if b < a {
		a, b = b, a
	}

	return a + "\x00" + b
}

// formatNumber trims a weight to at most two fraction digits.
func formatNumber(d float64) number.Formatter {
	return number.Decimal(d, number.MaxFractionDigits(2))
}
