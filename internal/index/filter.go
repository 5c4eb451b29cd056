// Package index builds the read-only path index for one catalog: a bitmap
// incidence table with one roaring column per variable name, branch, and
// keyword token. Filter evaluation is AND across dimensions and OR within a
// dimension, computed as bitmap unions and intersections over path ordinals.
package index

import (
	"fmt"
	"strings"

	"github.com/polarbytes/floe/internal/varpath"
)

// Dimension names one of the three filter axes.
type Dimension string

const (
	DimVariables Dimension = "variables"
	DimBranches  Dimension = "branches"
	DimKeywords  Dimension = "keywords"
)

// EmptyDimensionError is the introspection signal: a filter dimension was
// supplied as an explicit empty list, which asks for the set of valid values
// rather than a match. Callers must catch it and treat Valid as the result.
type EmptyDimensionError struct {
	Dimension Dimension
	Valid     []string // sorted
}

func (e *EmptyDimensionError) Error() string {
	return fmt.Sprintf("empty %s filter: valid values are %s",
		e.Dimension, strings.Join(e.Valid, ", "))
}

// FilterSpec selects paths along up to three independent axes. A nil slice
// leaves that axis unconstrained; a non-nil empty slice is an introspection
// request (see EmptyDimensionError). Dimensions combine with AND, values
// within one dimension with OR.
type FilterSpec struct {
	Variables []string
	Branches  []string
	Keywords  []string
}

// IsZero reports whether no axis is set at all.
func (s FilterSpec) IsZero() bool {
	return s.Variables == nil && s.Branches == nil && s.Keywords == nil
}

// Matches evaluates the filter predicate against a single parsed path.
// Explicit empty dimensions match nothing here; use Index.Lookup to get the
// introspection signal instead.
func (s FilterSpec) Matches(p varpath.Path) bool {
	if s.Variables != nil && !contains(s.Variables, p.Variable) {
		return false
	}
	if s.Branches != nil && !contains(s.Branches, p.Branch) {
		return false
	}
	if s.Keywords != nil && !intersects(s.Keywords, p.Keywords) {
		return false
	}
	return true
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func intersects(list, keywords []string) bool {
	for _, kw := range keywords {
		if contains(list, kw) {
			return true
		}
	}
	return false
}
