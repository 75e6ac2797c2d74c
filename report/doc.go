// Package report turns engine output into text for people and Graphviz.
//
// The engine never formats anything; this package is the consumer side:
//
//   - Text    one-line summary of a Result.
//   - Error   one-line description of a query failure.
//   - Table   all-pairs distance grid.
//   - DOT     Graphviz source with line colors, weight labels, the path
//     highlighted in red and a legend cluster.
//
// Distances are printed through a golang.org/x/text/message printer, so large
// values get digit grouping and whole numbers print without a fraction.
package report
