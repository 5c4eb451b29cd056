// Package wanted maintains the mutable, deduplicated selection of full
// variable paths a session intends to order. The set is a roaring bitmap
// over catalog ordinals; append and remove are bitmap unions and
// differences driven by the shared read-only index.
//
// A Set is single-writer: one interactive session mutates it one call at a
// time, so there is no internal locking.
package wanted

import (
	"errors"

	"github.com/RoaringBitmap/roaring"

	"github.com/polarbytes/floe/internal/index"
)

// ErrEmptySelection means an append or remove request constrained nothing:
// no defaults flag, no filter, no all flag.
var ErrEmptySelection = errors.New("selection request is empty")

// Constants supplies the per-product curated lists the set consults.
// *product.Registry satisfies it.
type Constants interface {
	// DefaultVariables returns the baseline variable names, or an error
	// (product.ErrUnknownProduct) when no curated list exists.
	DefaultVariables(productID string) ([]string, error)
	// MandatoryPaths returns the full paths every order must carry.
	MandatoryPaths(productID string) []string
}

// AppendRequest selects paths to union into the set. Defaults and Spec may
// be combined; their contributions are unioned.
type AppendRequest struct {
	Defaults bool
	Spec     *index.FilterSpec
}

// RemoveRequest selects paths to drop. All clears the whole set and resets
// it to the uninitialized state; otherwise Spec selects within the current
// set using the same AND/OR predicate as append.
type RemoveRequest struct {
	All  bool
	Spec *index.FilterSpec
}

// Set is the wanted-path collection for one session.
type Set struct {
	bits    *roaring.Bitmap
	idx     *index.Index
	product string
	consts  Constants
	seeded  bool
}

// New returns an empty Set bound to a catalog index and a product's
// constants.
func New(idx *index.Index, productID string, consts Constants) *Set {
	return &Set{
		bits:    roaring.New(),
		idx:     idx,
		product: productID,
		consts:  consts,
	}
}

// Append unions the requested paths into the set and returns the paths that
// are newly present, in catalog order. On the first successful append the
// product's mandatory paths are injected first, exactly once per Set
// lifetime; they count toward the returned additions. Re-appending present
// paths is a no-op.
//
// Errors surface before any mutation: an introspection request inside Spec
// (index.EmptyDimensionError) and a defaults request for a product without
// a curated list (product.ErrUnknownProduct) both leave the set untouched.
func (s *Set) Append(req AppendRequest) ([]string, error) {
	if !req.Defaults && req.Spec == nil {
		return nil, ErrEmptySelection
	}

	contribution := roaring.New()
	if req.Spec != nil {
		bm, err := s.idx.LookupBitmap(*req.Spec)
		if err != nil {
			return nil, err
		}
		contribution.Or(bm)
	}
	if req.Defaults {
		names, err := s.consts.DefaultVariables(s.product)
		if err != nil {
			return nil, err
		}
		if len(names) > 0 {
			bm, err := s.idx.LookupBitmap(index.FilterSpec{Variables: names})
			if err != nil {
				return nil, err
			}
			contribution.Or(bm)
		}
	}

	before := s.bits.Clone()
	if !s.seeded {
		// Mandatory paths go in first, unconditionally. Configured paths
		// absent from this catalog version are skipped.
		s.bits.Or(s.idx.OrdinalsOf(s.consts.MandatoryPaths(s.product)))
		s.seeded = true
	}
	s.bits.Or(contribution)

	added := roaring.AndNot(s.bits, before)
	return s.idx.PathsOf(added), nil
}

// Remove drops the selected paths and returns them in catalog order.
// All resets the set to uninitialized, so mandatory injection re-triggers on
// the next append; a targeted Spec remove does not, and may drop mandatory
// paths. Removing absent paths is a no-op.
func (s *Set) Remove(req RemoveRequest) ([]string, error) {
	if req.All {
		removed := s.idx.PathsOf(s.bits)
		s.bits.Clear()
		s.seeded = false
		return removed, nil
	}
	if req.Spec == nil {
		return nil, ErrEmptySelection
	}
	bm, err := s.idx.LookupBitmap(*req.Spec)
	if err != nil {
		return nil, err
	}
	removed := roaring.And(s.bits, bm)
	s.bits.AndNot(bm)
	return s.idx.PathsOf(removed), nil
}

// Paths returns the current selection as full path strings in catalog
// order. The snapshot is independent of later mutation; this is the flat
// sequence handed to the ordering collaborator.
func (s *Set) Paths() []string { return s.idx.PathsOf(s.bits) }

// Len returns the number of selected paths.
func (s *Set) Len() int { return int(s.bits.GetCardinality()) }

// Contains reports whether a full path is currently selected.
func (s *Set) Contains(path string) bool {
	ord, ok := s.idx.Ordinal(path)
	return ok && s.bits.Contains(ord)
}
