package metro

import (
	"sort"

	"github.com/katalvlaran/metro/builder"
	"github.com/katalvlaran/metro/core"
)

// UnassignedColor is the legend color for stations that belong to no line.
const UnassignedColor = "#CCCCCC"

// Line is a named, colored group of stations.
type Line struct {
	Name     string   `yaml:"name" validate:"required"`
	Color    string   `yaml:"color" validate:"omitempty,hexcolor"`
	Stations []string `yaml:"stations" validate:"dive,required"`
}

// Network is a static station/line table with its weighted segments.
type Network struct {
	Name  string             `yaml:"name" validate:"required"`
	Unit  string             `yaml:"unit"`
	Lines []Line             `yaml:"lines" validate:"dive"`
	Edges []builder.EdgeSpec `yaml:"edges" validate:"required,min=1,dive"`
}

// Graph builds the core graph of the network's segments. Stations listed on
// a line but without any segment are added as isolated vertices.
func (n *Network) Graph(opts ...builder.Option) (*core.Graph, error) {
	all := make([]builder.Option, 0, len(opts)+1)
	all = append(all, builder.WithVertices(n.lineStations()...))
	all = append(all, opts...)

	return builder.FromTriples(n.Edges, all...)
}

// LineOf returns the first line listing station.
func (n *Network) LineOf(station string) (Line, bool) {
	for _, l := range n.Lines {
		for _, s := range l.Stations {
			if s == station {
				return l, true
			}
		}
	}

	return Line{}, false
}

// ColorOf returns the legend color of station's line, or UnassignedColor.
func (n *Network) ColorOf(station string) string {
	if l, ok := n.LineOf(station); ok && l.Color != "" {
		return l.Color
	}

	return UnassignedColor
}

// Stations returns every station named by a line or a segment, sorted.
func (n *Network) Stations() []string {
	seen := make(map[string]struct{})
	for _, s := range n.lineStations() {
		seen[s] = struct{}{}
	}
	for _, e := range n.Edges {
		seen[e.From] = struct{}{}
		seen[e.To] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}

// DistanceUnit returns Unit, defaulting to "km".
func (n *Network) DistanceUnit() string {
	if n.Unit == "" {
		return "km"
	}

	return n.Unit
}

func (n *Network) lineStations() []string {
	var out []string
	for _, l := range n.Lines {
		out = append(out, l.Stations...)
	}

	return out
}
