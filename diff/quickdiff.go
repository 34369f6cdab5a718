package diff

import (
	"github.com/sjquinney/lcfg-core/component"
	"github.com/sjquinney/lcfg-core/componentset"
	"github.com/sjquinney/lcfg-core/resource"
	"github.com/sjquinney/lcfg-core/tag"
	"github.com/sjquinney/lcfg-core/types"
)

// QuickDiffComponent classifies the difference between c1 (old) and c2
// (new) without building the resource-diff list (spec.md §4.6), looking
// only at active resources: both sides empty is NONE, only the old side
// empty is ADDED, only the new side empty is REMOVED; otherwise size
// inequality short-circuits to MODIFIED, and failing that one side is scanned for
// a modified or missing value, then the other for an addition, stopping at
// the first difference found.
func QuickDiffComponent(c1, c2 *component.Component) types.ChangeCode {
	old := c1.Active()
	new := c2.Active()

	if len(old) == 0 {
		if len(new) == 0 {
			return types.ChangeNone
		}
		return types.ChangeAdded
	}
	if len(new) == 0 {
		return types.ChangeRemoved
	}
	if len(old) != len(new) {
		return types.ChangeModified
	}
	for _, or := range old {
		nr, ok := c2.Find(or.Name())
		if !ok || !resource.SameValue(or, nr) {
			return types.ChangeModified
		}
	}
	for _, nr := range new {
		if !c1.Has(nr.Name()) {
			return types.ChangeModified
		}
	}
	return types.ChangeNone
}

// QuickDiffSetResult buckets component names into modified/added/removed,
// per spec.md §4.6's quickdiff_set.
type QuickDiffSetResult struct {
	Change   types.ChangeCode
	Modified tag.List
	Added    tag.List
	Removed  tag.List
}

// QuickDiffSet classifies every component name present in s1 or s2: names
// in s1 are bucketed into Modified or Removed via QuickDiffComponent
// against the matching (possibly absent) component in s2; names in s2 not
// in s1 are bucketed into Added. If every bucket stays empty, Change is
// NONE; otherwise MODIFIED.
func QuickDiffSet(s1, s2 *componentset.Set) (QuickDiffSetResult, error) {
	var modified, added, removed []string

	for _, c1 := range s1.Components() {
		c2, ok := s2.Find(c1.Name())
		if !ok {
			empty, err := component.New(c1.Name())
			if err != nil {
				return QuickDiffSetResult{}, err
			}
			switch QuickDiffComponent(c1, empty) {
			case types.ChangeRemoved, types.ChangeModified:
				removed = append(removed, c1.Name())
			}
			continue
		}
		switch QuickDiffComponent(c1, c2) {
		case types.ChangeModified, types.ChangeAdded, types.ChangeRemoved:
			modified = append(modified, c1.Name())
		}
	}
	for _, c2 := range s2.Components() {
		if s1.Has(c2.Name()) {
			continue
		}
		added = append(added, c2.Name())
	}

	result := QuickDiffSetResult{Change: types.ChangeNone}
	var err error
	if result.Modified, err = tag.FromArray(modified); err != nil {
		return QuickDiffSetResult{}, err
	}
	if result.Added, err = tag.FromArray(added); err != nil {
		return QuickDiffSetResult{}, err
	}
	if result.Removed, err = tag.FromArray(removed); err != nil {
		return QuickDiffSetResult{}, err
	}
	if result.Modified.Len() > 0 || result.Added.Len() > 0 || result.Removed.Len() > 0 {
		result.Change = types.ChangeModified
	}
	return result, nil
}
