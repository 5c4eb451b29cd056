// Package product supplies the curated per-product constant data: valid
// branch (beam/profile) names, the recommended baseline variable list, and
// the mandatory paths injected into every order. The data is declared in
// HCL — an embedded document for the known products, plus optional user
// files for products without a curated entry.
package product

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

//go:embed products.hcl
var builtinHCL []byte

// ErrUnknownProduct means no entry is registered for a product identifier.
// For defaults this is recoverable: callers proceed with an empty baseline.
var ErrUnknownProduct = errors.New("unknown product")

// Mandatory orientation/epoch paths required for downstream time and
// orientation conversion, shared by every product unless its entry
// overrides them.
var baseMandatory = []string{
	"orbit_info/sc_orient",
	"orbit_info/sc_orient_time",
	"ancillary_data/atlas_sdp_gps_epoch",
	"ancillary_data/data_start_utc",
	"ancillary_data/data_end_utc",
	"ancillary_data/granule_start_utc",
	"ancillary_data/granule_end_utc",
	"ancillary_data/start_delta_time",
	"ancillary_data/end_delta_time",
}

// Ground-track beam names used by every product that is not profile-based.
var defaultBranches = []string{"gt1l", "gt1r", "gt2l", "gt2r", "gt3l", "gt3r"}

// Info is one product's registered constants.
type Info struct {
	ID        string
	Branches  []string
	Defaults  []string // variable names, not full paths
	Mandatory []string // full paths
}

type productBlock struct {
	ID        string   `hcl:"id,label"`
	Branches  []string `hcl:"branches,optional"`
	Defaults  []string `hcl:"defaults,optional"`
	Mandatory []string `hcl:"mandatory,optional"`
}

type fileConfig struct {
	Products []productBlock `hcl:"product,block"`
}

// Registry maps product identifiers to their constants.
type Registry struct {
	products map[string]Info
}

// NewRegistry returns a registry seeded with the embedded product data.
func NewRegistry() *Registry {
	r := &Registry{products: make(map[string]Info)}
	// The embedded document is compiled in; a parse failure is a build bug.
	if err := r.loadBytes(builtinHCL, "products.hcl"); err != nil {
		panic(fmt.Sprintf("embedded product config: %v", err))
	}
	return r
}

// LoadFile merges product entries from a user-supplied HCL file.
// Entries with an already-registered ID replace the built-in ones.
func (r *Registry) LoadFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read product config: %w", err)
	}
	return r.loadBytes(src, path)
}

func (r *Registry) loadBytes(src []byte, filename string) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return fmt.Errorf("parse %s: %w", filename, diags)
	}
	var cfg fileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return fmt.Errorf("decode %s: %w", filename, diags)
	}
	for _, p := range cfg.Products {
		info := Info{
			ID:        p.ID,
			Branches:  p.Branches,
			Defaults:  p.Defaults,
			Mandatory: p.Mandatory,
		}
		if info.Branches == nil {
			info.Branches = defaultBranches
		}
		if info.Mandatory == nil {
			info.Mandatory = baseMandatory
		}
		r.products[p.ID] = info
	}
	return nil
}

// IDs returns the sorted registered product identifiers.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.products))
	for id := range r.products {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Lookup returns the full entry for a product.
func (r *Registry) Lookup(id string) (Info, error) {
	info, ok := r.products[id]
	if !ok {
		return Info{}, fmt.Errorf("%w: %s", ErrUnknownProduct, id)
	}
	return info, nil
}

// DefaultVariables resolves the recommended baseline variable names for a
// product. Unknown products fail with ErrUnknownProduct; callers treat that
// as "no curated list" and continue with an empty contribution.
func (r *Registry) DefaultVariables(id string) ([]string, error) {
	info, err := r.Lookup(id)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), info.Defaults...), nil
}

// MandatoryPaths returns the full paths every order for this product must
// carry. Unknown products fall back to the shared orientation/epoch set.
func (r *Registry) MandatoryPaths(id string) []string {
	if info, ok := r.products[id]; ok {
		return append([]string(nil), info.Mandatory...)
	}
	return append([]string(nil), baseMandatory...)
}

// Branches returns the valid branch names for a product. Unknown products
// fall back to the six ground-track beams.
func (r *Registry) Branches(id string) []string {
	if info, ok := r.products[id]; ok {
		return append([]string(nil), info.Branches...)
	}
	return append([]string(nil), defaultBranches...)
}
