package metro

import "github.com/katalvlaran/metro/builder"

// Sample returns the built-in Guangzhou network: 23 stations on five lines
// and 30 segments weighted in kilometres.
func Sample() *Network {
	return &Network{
		Name: "Guangzhou Metro",
		Unit: "km",
		Lines: []Line{
			{Name: "Line 1", Color: "#FFB3BA", Stations: []string{"S1", "S2", "S3", "S4", "S5"}},
			{Name: "Line 2", Color: "#BAFFC9", Stations: []string{"S6", "S7", "S8", "S9"}},
			{Name: "Line 3", Color: "#BAE1FF", Stations: []string{"S10", "S11", "S12"}},
			{Name: "Line 5", Color: "#FFFFBA", Stations: []string{"S13", "S14", "S15", "S16"}},
			{Name: "Line 8", Color: "#FFD9BA", Stations: []string{"S17", "S18", "S19", "S20", "S21", "S22", "S23"}},
		},
		Edges: []builder.EdgeSpec{
			// Line 1
			{From: "S1", To: "S2", Weight: 2},
			{From: "S1", To: "S8", Weight: 2},
			{From: "S2", To: "S3", Weight: 2},
			{From: "S3", To: "S4", Weight: 2},
			{From: "S3", To: "S7", Weight: 1},
			{From: "S4", To: "S5", Weight: 2},
			{From: "S4", To: "S11", Weight: 1},
			{From: "S5", To: "S10", Weight: 2},

			// Line 2
			{From: "S6", To: "S20", Weight: 3},
			{From: "S7", To: "S6", Weight: 2},
			{From: "S7", To: "S15", Weight: 1},
			{From: "S8", To: "S9", Weight: 4},
			{From: "S9", To: "S23", Weight: 1},

			// Line 3
			{From: "S10", To: "S11", Weight: 2},
			{From: "S11", To: "S12", Weight: 2},
			{From: "S11", To: "S23", Weight: 1},
			{From: "S12", To: "S13", Weight: 4},
			{From: "S12", To: "S18", Weight: 1},

			// Line 5
			{From: "S13", To: "S6", Weight: 5},
			{From: "S15", To: "S16", Weight: 3},
			{From: "S15", To: "S14", Weight: 2},
			{From: "S14", To: "S9", Weight: 2},
			{From: "S16", To: "S17", Weight: 3},

			// Line 8
			{From: "S17", To: "S21", Weight: 3},
			{From: "S18", To: "S19", Weight: 3},
			{From: "S19", To: "S20", Weight: 2},
			{From: "S20", To: "S21", Weight: 2},
			{From: "S21", To: "S22", Weight: 2},
			{From: "S22", To: "S19", Weight: 1},
			{From: "S23", To: "S6", Weight: 1},
		},
	}
}
