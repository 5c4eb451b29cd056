package varpath

// Catalog is the ordered universe of selectable full paths for one product.
// It is immutable once constructed and shared read-only by the index.
type Catalog struct {
	paths []string
}

// NewCatalog builds a Catalog from the path list handed over by the metadata
// collaborator. Duplicate entries are dropped, keeping the first occurrence;
// order is otherwise preserved.
func NewCatalog(paths []string) Catalog {
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return Catalog{paths: out}
}

// Len returns the number of distinct paths.
func (c Catalog) Len() int { return len(c.paths) }

// Paths returns a copy of the catalog's paths in order.
func (c Catalog) Paths() []string {
	out := make([]string, len(c.paths))
	copy(out, c.paths)
	return out
}

// At returns the path at ordinal i.
func (c Catalog) At(i int) string { return c.paths[i] }
