package component

import (
	"sort"
	"strings"

	"github.com/fatih/structs"
)

// exportedVar is the struct fatih/structs turns into one ordered map per
// resource; struct tags drive the key names the same way the teacher
// shapes output with tagged structs rather than ad hoc field access.
type exportedVar struct {
	Name  string `structs:"name"`
	Value string `structs:"value"`
	Type  string `structs:"type"`
}

// ToEnv renders every active resource in c as shell `export` assignments
// (spec.md §4.4): one `export {valPfx}{name}='{value}'` line per active
// resource in name order, an optional `export {typePfx}{name}='{type}'`
// sibling when withType is set, and a final `export {valPfx}_RESOURCES='...'`
// line listing the exported names, sorted and space-separated. valPfx and
// typePfx may each contain one `%s`, substituted with c.Name() exactly
// once; a prefix with no `%s` is used as a literal.
func (c *Component) ToEnv(valPfx, typePfx string, withType bool) []string {
	valPfx = expandPrefix(valPfx, c.name)
	typePfx = expandPrefix(typePfx, c.name)

	active := c.Active()
	vars := make([]exportedVar, 0, len(active))
	for _, r := range active {
		v, _ := r.Value()
		vars = append(vars, exportedVar{Name: r.Name(), Value: v, Type: r.Type().String()})
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })

	lines := make([]string, 0, len(vars)*2+1)
	names := make([]string, 0, len(vars))
	for _, ev := range vars {
		m := structs.Map(ev)
		name, _ := m["name"].(string)
		value, _ := m["value"].(string)
		lines = append(lines, exportLine(valPfx+name, value))
		if withType {
			typ, _ := m["type"].(string)
			lines = append(lines, exportLine(typePfx+name, typ))
		}
		names = append(names, name)
	}
	lines = append(lines, exportLine(valPfx+"_RESOURCES", strings.Join(names, " ")))
	return lines
}

// expandPrefix substitutes compName for exactly one "%s" in prefix, if
// present, leaving prefix unchanged otherwise.
func expandPrefix(prefix, compName string) string {
	if i := strings.Index(prefix, "%s"); i >= 0 {
		return prefix[:i] + compName + prefix[i+2:]
	}
	return prefix
}

// exportLine formats a POSIX shell export assignment, single-quoting value
// and escaping embedded single quotes the usual '"'"' way (same escaping
// resource.SerialiseExport uses for a single resource).
func exportLine(name, value string) string {
	var b strings.Builder
	b.WriteString("export ")
	b.WriteString(name)
	b.WriteString("='")
	for _, r := range value {
		if r == '\'' {
			b.WriteString(`'"'"'`)
		} else {
			b.WriteRune(r)
		}
	}
	b.WriteString("'")
	return b.String()
}
