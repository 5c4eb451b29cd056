package index

import (
	"fmt"
	"sort"

	"github.com/RoaringBitmap/roaring"

	"github.com/polarbytes/floe/internal/varpath"
)

// Index is the immutable query structure derived from one catalog.
// Column-major storage: each variable/branch/keyword value owns a bitmap of
// the path ordinals that carry it. Built once, never mutated, safe to share
// read-only across any number of selection sessions.
type Index struct {
	paths    []string       // catalog order
	parsed   []varpath.Path // parallel to paths
	ordinals map[string]uint32

	byVariable map[string]*roaring.Bitmap
	byBranch   map[string]*roaring.Bitmap
	byKeyword  map[string]*roaring.Bitmap
}

// Build parses every catalog entry exactly once and constructs the three
// reverse indices. A single malformed path aborts the build; no partial
// index is returned.
func Build(catalog varpath.Catalog, parser *varpath.Parser) (*Index, error) {
	n := catalog.Len()
	ix := &Index{
		paths:      make([]string, 0, n),
		parsed:     make([]varpath.Path, 0, n),
		ordinals:   make(map[string]uint32, n),
		byVariable: make(map[string]*roaring.Bitmap),
		byBranch:   make(map[string]*roaring.Bitmap),
		byKeyword:  make(map[string]*roaring.Bitmap),
	}

	for i := 0; i < n; i++ {
		raw := catalog.At(i)
		p, err := parser.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("build index: %w", err)
		}
		ord := uint32(len(ix.paths))
		ix.paths = append(ix.paths, raw)
		ix.parsed = append(ix.parsed, p)
		ix.ordinals[raw] = ord

		addBit(ix.byVariable, p.Variable, ord)
		if p.Branch != "" {
			addBit(ix.byBranch, p.Branch, ord)
		}
		for _, kw := range p.Keywords {
			addBit(ix.byKeyword, kw, ord)
		}
	}
	return ix, nil
}

func addBit(m map[string]*roaring.Bitmap, key string, ord uint32) {
	bm, ok := m[key]
	if !ok {
		bm = roaring.New()
		m[key] = bm
	}
	bm.Add(ord)
}

// Len returns the number of indexed paths.
func (ix *Index) Len() int { return len(ix.paths) }

// PathAt returns the full path at the given ordinal.
func (ix *Index) PathAt(ord uint32) string { return ix.paths[ord] }

// ParsedAt returns the parsed record at the given ordinal.
func (ix *Index) ParsedAt(ord uint32) varpath.Path { return ix.parsed[ord] }

// Ordinal maps a full path back to its catalog position.
func (ix *Index) Ordinal(path string) (uint32, bool) {
	ord, ok := ix.ordinals[path]
	return ord, ok
}

// Variables returns the sorted distinct variable names in the catalog.
func (ix *Index) Variables() []string { return sortedKeys(ix.byVariable) }

// Branches returns the sorted distinct branch values observed.
func (ix *Index) Branches() []string { return sortedKeys(ix.byBranch) }

// Keywords returns the sorted distinct keyword tokens observed.
func (ix *Index) Keywords() []string { return sortedKeys(ix.byKeyword) }

// ValidValues returns the sorted legal inputs for one filter dimension.
// This is the explicit form of the empty-list introspection overload.
func (ix *Index) ValidValues(dim Dimension) ([]string, error) {
	switch dim {
	case DimVariables:
		return ix.Variables(), nil
	case DimBranches:
		return ix.Branches(), nil
	case DimKeywords:
		return ix.Keywords(), nil
	default:
		return nil, fmt.Errorf("unknown filter dimension %q", dim)
	}
}

// Lookup returns the full paths satisfying spec, in catalog order.
// A dimension supplied as an explicit empty list yields an
// EmptyDimensionError carrying that dimension's valid values.
func (ix *Index) Lookup(spec FilterSpec) ([]string, error) {
	bm, err := ix.LookupBitmap(spec)
	if err != nil {
		return nil, err
	}
	return ix.PathsOf(bm), nil
}

// LookupBitmap is Lookup at the ordinal level, for callers that compose the
// result with further set operations.
func (ix *Index) LookupBitmap(spec FilterSpec) (*roaring.Bitmap, error) {
	result := roaring.New()
	result.AddRange(0, uint64(len(ix.paths)))

	dims := []struct {
		dim    Dimension
		values []string
		column map[string]*roaring.Bitmap
	}{
		{DimVariables, spec.Variables, ix.byVariable},
		{DimBranches, spec.Branches, ix.byBranch},
		{DimKeywords, spec.Keywords, ix.byKeyword},
	}
	for _, d := range dims {
		if d.values == nil {
			continue
		}
		if len(d.values) == 0 {
			valid, _ := ix.ValidValues(d.dim)
			return nil, &EmptyDimensionError{Dimension: d.dim, Valid: valid}
		}
		union := roaring.New()
		for _, v := range d.values {
			if bm, ok := d.column[v]; ok {
				union.Or(bm)
			}
		}
		result.And(union)
	}
	return result, nil
}

// PathsOf materializes a bitmap of ordinals as full paths in catalog order.
func (ix *Index) PathsOf(bm *roaring.Bitmap) []string {
	out := make([]string, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, ix.paths[it.Next()])
	}
	return out
}

// OrdinalsOf maps full paths to a bitmap of ordinals, skipping paths that
// are not in the catalog.
func (ix *Index) OrdinalsOf(paths []string) *roaring.Bitmap {
	bm := roaring.New()
	for _, p := range paths {
		if ord, ok := ix.ordinals[p]; ok {
			bm.Add(ord)
		}
	}
	return bm
}

func sortedKeys(m map[string]*roaring.Bitmap) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
