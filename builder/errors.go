// SPDX-License-Identifier: MIT
// Package: metro/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Context (row index, endpoints) is attached with %w at the failure site.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/metro/core"
)

// ErrInvalidWeight indicates a negative, NaN or infinite weight.
// It is the same value as core.ErrInvalidWeight so either can be matched.
var ErrInvalidWeight = core.ErrInvalidWeight

// ErrSelfLoop indicates a triple whose endpoints are equal.
var ErrSelfLoop = core.ErrLoopNotAllowed

// ErrEmptyNode indicates a triple with an empty endpoint.
var ErrEmptyNode = core.ErrEmptyVertexID

// ErrDuplicateEdge indicates a repeated unordered pair under DuplicateReject.
var ErrDuplicateEdge = errors.New("builder: duplicate edge")

// rowError attaches the row index and endpoints of a failing triple.
// The result is "edge #<i> <from>-<to>: <sentinel>".
func rowError(i int, e EdgeSpec, sentinel error) error {
	return fmt.Errorf("edge #%d %q-%q: %w", i, e.From, e.To, sentinel)
}
