package diff

import "github.com/sjquinney/lcfg-core/types"

// ngProdResourceName is the sentinel resource name prod detection watches.
const ngProdResourceName = "ng_prod"

// IsProdded reports whether cd should force a reconfiguration even absent
// a semantic change (spec.md §4.7): its aggregate change is MODIFIED, it
// contains a diff for "ng_prod" classified as ADDED or MODIFIED, and the
// new side of that diff has a non-empty value.
func IsProdded(cd *Component) bool {
	if cd.Change != types.ChangeModified {
		return false
	}
	for _, rd := range cd.Resources {
		if rd.Name != ngProdResourceName {
			continue
		}
		if rd.Change != types.ChangeAdded && rd.Change != types.ChangeModified {
			continue
		}
		if rd.New == nil {
			continue
		}
		if v, ok := rd.New.Value(); ok && v != "" {
			return true
		}
	}
	return false
}
