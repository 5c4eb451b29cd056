// Package api defines the handoff surface between the selection engine and
// the external ordering collaborator. The engine's only opinion about
// transport is the shape of the coverage parameter.
package api

import "strings"

// CoverageParam flattens a wanted-path list into the single
// delivery-coverage value embedded in a subsetting order request.
func CoverageParam(paths []string) string {
	return strings.Join(paths, ",")
}

// SubsetRequest is the order-request scaffold the ordering collaborator
// fills in around the coverage selection. Spatial and temporal parameters
// belong to that collaborator, not to the engine.
type SubsetRequest struct {
	// Product is the data product short name, e.g. "ATL06".
	Product string `json:"short_name"`
	// Version of the product, zero-padded, e.g. "006".
	Version string `json:"version,omitempty"`
	// Coverage is the comma-joined wanted-path list.
	Coverage string `json:"Coverage,omitempty"`
}

// NewSubsetRequest builds the scaffold for one order from a session's
// wanted paths. An empty path list yields a request with no Coverage,
// meaning "all variables" to the subsetting service.
func NewSubsetRequest(product, version string, paths []string) SubsetRequest {
	return SubsetRequest{
		Product:  product,
		Version:  version,
		Coverage: CoverageParam(paths),
	}
}
