// SPDX-License-Identifier: MIT
// Package builder turns static edge tables into validated core.Graph values.
//
// It is the graph-construction boundary of the module: every invariant the
// shortest-path engine relies on is checked here, before any query runs.
//
// Inputs:
//
//   - FromTriples: a flat list of (from, to, weight) triples.
//   - FromAdjacency: an adjacency-dict view, map[station][]Neighbor, iterated
//     in sorted key order so construction is deterministic.
//
// Validation (all failures are collected, not just the first):
//
//   - ErrEmptyNode      – a triple names an empty station ID.
//   - ErrSelfLoop       – a triple connects a station to itself.
//   - ErrInvalidWeight  – negative, NaN or infinite weight.
//   - ErrDuplicateEdge  – repeated unordered pair under DuplicateReject.
//
// The returned error is a *multierror.Error whose entries each wrap one of
// the sentinels above, so errors.Is(err, ErrInvalidWeight) works on the
// aggregate. No partial graph is ever returned alongside an error.
//
// Duplicate policy:
//
//	The pair is unordered: {A,B,3} and {B,A,5} describe the same segment.
//	  • DuplicateLastWins (default): the later triple's weight replaces the earlier one.
//	  • DuplicateKeepMin:            the smaller weight is kept.
//	  • DuplicateReject:             the repeat is a validation failure.
//
// Example:
//
//	g, err := builder.FromTriples([]builder.EdgeSpec{
//	    {From: "S1", To: "S2", Weight: 2},
//	    {From: "S2", To: "S3", Weight: 2},
//	})
package builder
