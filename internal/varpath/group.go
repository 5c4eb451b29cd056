package varpath

import "strings"

// Group is one variable name together with every path ending in it,
// in input order.
type Group struct {
	Variable string
	Paths    []string
}

// GroupByVariable projects a path collection into per-variable groups for
// display. Variables appear in order of first occurrence; each group's paths
// keep the input order and the exact path strings. Flattening all groups
// reproduces the input set.
func GroupByVariable(paths []string) []Group {
	ordinal := make(map[string]int)
	var groups []Group
	for _, p := range paths {
		name := p
		if i := strings.LastIndex(p, Separator); i >= 0 {
			name = p[i+len(Separator):]
		}
		j, ok := ordinal[name]
		if !ok {
			j = len(groups)
			ordinal[name] = j
			groups = append(groups, Group{Variable: name})
		}
		groups[j].Paths = append(groups[j].Paths, p)
	}
	return groups
}
