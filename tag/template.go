package tag

import (
	"strings"

	"github.com/sjquinney/lcfg-core/types"
)

// Template is a linked sequence of name patterns of the form `stem_$_$`
// attached to list resources (spec.md §2 item 2). It is parsed and
// validated from a string and carried opaquely: the engine never expands
// it, it only round-trips it (the expansion DSL itself is out of core
// scope, spec.md §1).
type Template struct {
	patterns []string
}

// ParseTemplate splits s on whitespace into patterns, validating that each
// contains at least one '$' placeholder; no other character check is
// made. An empty string yields an empty, valid Template.
func ParseTemplate(s string) (Template, error) {
	fields := strings.Fields(s)
	for _, p := range fields {
		if p == "" || !strings.Contains(p, "$") {
			return Template{}, types.NewError(types.Validation, "template pattern "+p, nil)
		}
	}
	return Template{patterns: fields}, nil
}

// Empty reports whether the template carries no patterns.
func (t Template) Empty() bool { return len(t.patterns) == 0 }

// String renders the template back to its space-separated spec form.
func (t Template) String() string {
	return strings.Join(t.patterns, " ")
}

// Patterns returns a copy of the underlying pattern list.
func (t Template) Patterns() []string {
	cp := make([]string, len(t.patterns))
	copy(cp, t.patterns)
	return cp
}
