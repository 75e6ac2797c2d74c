// Package metro describes a transit network as data: lines with their
// stations and legend colors, plus the weighted segments between stations.
//
// A Network is a plain value. Nothing here is global; Sample returns a fresh
// copy of the built-in Guangzhou network on every call, and Load/Decode read
// the same shape from YAML:
//
//	name: Guangzhou Metro
//	lines:
//	  - name: Line 1
//	    color: "#FFB3BA"
//	    stations: [S1, S2, S3, S4, S5]
//	edges:
//	  - {from: S1, to: S2, weight: 2}
//
// Network.Graph hands the segments to builder.FromTriples, so every graph
// invariant (non-negative weights, no loops, symmetric adjacency) is checked
// there.
package metro
