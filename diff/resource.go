// Package diff implements the diff engine (spec.md §4.6): resource-,
// component-, and profile-level diffs, the fast quickdiff classifiers,
// hold-file emission, and prod detection.
package diff

import (
	"github.com/sjquinney/lcfg-core/resource"
	"github.com/sjquinney/lcfg-core/types"
)

// Resource is the pairwise diff of one resource name between an old and a
// new side. Old and New are nil when the resource is absent on that side.
type Resource struct {
	Name   string
	Old    *resource.Resource
	New    *resource.Resource
	Change types.ChangeCode
}

// DiffResource constructs the pairwise diff of old and new, which must
// share a name when both are present (spec.md §4.6). Classification
// follows resource presence and value equality: both present and
// same_value → NONE; both present and differing → MODIFIED; only new
// present → ADDED; only old present → REMOVED; neither present → NONE.
func DiffResource(old, new *resource.Resource) (*Resource, error) {
	switch {
	case old != nil && new != nil:
		if old.Name() != new.Name() {
			return nil, types.NewError(types.Validation,
				"diff_resource name mismatch: "+old.Name()+" vs "+new.Name(), nil)
		}
		change := types.ChangeNone
		if !resource.SameValue(old, new) {
			change = types.ChangeModified
		}
		return &Resource{Name: old.Name(), Old: old, New: new, Change: change}, nil
	case new != nil:
		return &Resource{Name: new.Name(), New: new, Change: types.ChangeAdded}, nil
	case old != nil:
		return &Resource{Name: old.Name(), Old: old, Change: types.ChangeRemoved}, nil
	default:
		return &Resource{Change: types.ChangeNone}, nil
	}
}

// oldValue returns r's old-side value, or "" if absent.
func (r *Resource) oldValue() string {
	if r.Old == nil {
		return ""
	}
	v, _ := r.Old.Value()
	return v
}

// newValue returns r's new-side value, or "" if absent.
func (r *Resource) newValue() string {
	if r.New == nil {
		return ""
	}
	v, _ := r.New.Value()
	return v
}
