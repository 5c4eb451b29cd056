// Package varpath parses the full hierarchical variable paths that make up
// a data product's catalog (e.g. "gt1l/land_ice_segments/latitude").
//
// A path is the external wire form; the parsed Path record is the source of
// truth for filtering. Parsing is lossless: String() reproduces the input
// byte for byte.
package varpath

import (
	"fmt"
	"strings"
)

// Separator delimits hierarchy levels in a full variable path.
const Separator = "/"

// MalformedPathError reports a catalog entry that cannot be parsed.
type MalformedPathError struct {
	Path   string
	Reason string
}

func (e *MalformedPathError) Error() string {
	return fmt.Sprintf("malformed variable path %q: %s", e.Path, e.Reason)
}

// Path is the parsed form of one catalog entry.
type Path struct {
	// Variable is the final segment — the field's name.
	Variable string
	// Branch names the repeated structural unit (beam or profile) this path
	// belongs to, or "" when the path is branch-independent.
	Branch string
	// Keywords are the ordered intermediate segments between the branch
	// (when present) and the variable.
	Keywords []string
}

// String reconstructs the full path. For any p produced by Parser.Parse,
// p.String() equals the source string exactly.
func (p Path) String() string {
	segs := make([]string, 0, len(p.Keywords)+2)
	if p.Branch != "" {
		segs = append(segs, p.Branch)
	}
	segs = append(segs, p.Keywords...)
	segs = append(segs, p.Variable)
	return strings.Join(segs, Separator)
}

// Parser splits full paths into Path records. Branch recognition is
// data-driven: only segments in the configured branch set are treated as
// branches, and only in leading position.
type Parser struct {
	branches map[string]struct{}
}

// NewParser returns a Parser that recognizes the given branch names
// (e.g. gt1l..gt3r for most products, profile_1..3 for atmosphere products).
// A nil or empty list yields a parser that treats every path as
// branch-independent.
func NewParser(branches []string) *Parser {
	set := make(map[string]struct{}, len(branches))
	for _, b := range branches {
		set[b] = struct{}{}
	}
	return &Parser{branches: set}
}

// IsBranch reports whether seg is a recognized branch name.
func (pr *Parser) IsBranch(seg string) bool {
	_, ok := pr.branches[seg]
	return ok
}

// Parse splits raw into its Path record. A path must contain at least a
// variable segment; empty paths and empty segments (leading, trailing, or
// doubled separators) are malformed.
func (pr *Parser) Parse(raw string) (Path, error) {
	if raw == "" {
		return Path{}, &MalformedPathError{Path: raw, Reason: "empty path"}
	}
	segs := strings.Split(raw, Separator)
	for _, s := range segs {
		if s == "" {
			return Path{}, &MalformedPathError{Path: raw, Reason: "empty segment"}
		}
	}

	p := Path{Variable: segs[len(segs)-1]}
	rest := segs[:len(segs)-1]
	if len(rest) > 0 && pr.IsBranch(rest[0]) {
		p.Branch = rest[0]
		rest = rest[1:]
	}
	if len(rest) > 0 {
		p.Keywords = rest
	}
	return p, nil
}
