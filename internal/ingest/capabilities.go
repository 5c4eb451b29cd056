// Package ingest brings externally produced variable catalogs into a
// session: capabilities documents from the metadata service, plain path
// listings, and a local SQLite cache keyed by product and version.
//
// Nothing here talks to the network; callers hand in already-fetched bytes.
package ingest

import (
	"fmt"
	"os"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// Capabilities is the subset of a service capabilities document the
// selection engine needs: the product identity and the ordered variable
// path list.
type Capabilities struct {
	Product string
	Version string
	Paths   []string
}

var (
	pathsExpr   = jp.MustParseString("$.variables[*]")
	productExpr = jp.MustParseString("$.product")
	versionExpr = jp.MustParseString("$.version")
)

// ParseCapabilities extracts the catalog from a capabilities JSON document.
// Variable entries may be plain path strings or objects with a "path"
// member; order is preserved.
func ParseCapabilities(data []byte) (*Capabilities, error) {
	root, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse capabilities json: %w", err)
	}

	caps := &Capabilities{}
	if v := productExpr.First(root); v != nil {
		caps.Product, _ = v.(string)
	}
	if v := versionExpr.First(root); v != nil {
		caps.Version, _ = v.(string)
	}

	entries := pathsExpr.Get(root)
	if len(entries) == 0 {
		return nil, fmt.Errorf("capabilities document has no variables")
	}
	caps.Paths = make([]string, 0, len(entries))
	for i, e := range entries {
		switch v := e.(type) {
		case string:
			caps.Paths = append(caps.Paths, v)
		case map[string]any:
			p, ok := v["path"].(string)
			if !ok {
				return nil, fmt.Errorf("variable entry %d has no path member", i)
			}
			caps.Paths = append(caps.Paths, p)
		default:
			return nil, fmt.Errorf("variable entry %d has unexpected type %T", i, e)
		}
	}
	return caps, nil
}

// ReadCapabilitiesFile reads and parses a capabilities document from disk.
func ReadCapabilitiesFile(path string) (*Capabilities, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read capabilities: %w", err)
	}
	return ParseCapabilities(data)
}
