// Package session wires one product's catalog, index, and wanted set
// together for an interactive selection session.
package session

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/polarbytes/floe/api"
	"github.com/polarbytes/floe/internal/index"
	"github.com/polarbytes/floe/internal/product"
	"github.com/polarbytes/floe/internal/varpath"
	"github.com/polarbytes/floe/internal/wanted"
)

// Session owns the selection state for one (product, catalog) pair.
// Like the wanted set it contains, a Session is single-writer.
type Session struct {
	Product string
	Version string
	Catalog varpath.Catalog
	Index   *index.Index
	Wanted  *wanted.Set

	registry *product.Registry
}

// New builds a session from the catalog handed over by the metadata
// collaborator. The product's registered branch names configure the parser;
// the index is built once and shared with the wanted set.
func New(productID, version string, paths []string, reg *product.Registry) (*Session, error) {
	catalog := varpath.NewCatalog(paths)
	parser := varpath.NewParser(reg.Branches(productID))
	idx, err := index.Build(catalog, parser)
	if err != nil {
		return nil, err
	}
	return &Session{
		Product:  productID,
		Version:  version,
		Catalog:  catalog,
		Index:    idx,
		Wanted:   wanted.New(idx, productID, reg),
		registry: reg,
	}, nil
}

// Append adds paths to the wanted set. A defaults request for a product
// without a curated list is a known gap, not a failure: it degrades to an
// empty defaults contribution, logged at warn level, and any filter part of
// the request still applies.
func (s *Session) Append(req wanted.AppendRequest) ([]string, error) {
	added, err := s.Wanted.Append(req)
	if err != nil && req.Defaults && errors.Is(err, product.ErrUnknownProduct) {
		log.Warn().Str("product", s.Product).
			Msg("no curated default variable list; continuing without defaults")
		if req.Spec == nil {
			return nil, nil
		}
		req.Defaults = false
		return s.Wanted.Append(req)
	}
	return added, err
}

// Remove drops paths from the wanted set.
func (s *Session) Remove(req wanted.RemoveRequest) ([]string, error) {
	return s.Wanted.Remove(req)
}

// Order produces the order-request scaffold for the current selection.
func (s *Session) Order() api.SubsetRequest {
	return api.NewSubsetRequest(s.Product, s.Version, s.Wanted.Paths())
}
