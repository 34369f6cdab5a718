package diff

import (
	"time"

	"github.com/sjquinney/lcfg-core/component"
	"github.com/sjquinney/lcfg-core/metrics"
	"github.com/sjquinney/lcfg-core/resource"
	"github.com/sjquinney/lcfg-core/types"
)

// Component is the diff of one component between an old and new side: the
// per-resource diffs that differ, and an aggregate classification.
type Component struct {
	Name      string
	Resources []*Resource
	Change    types.ChangeCode
}

// NamesByChange returns, in diff order, the names of the resources whose
// diff is classified as change (spec.md §2 item 6's "selective name
// extraction by change kind").
func (c *Component) NamesByChange(change types.ChangeCode) []string {
	var names []string
	for _, rd := range c.Resources {
		if rd.Change == change {
			names = append(names, rd.Name)
		}
	}
	return names
}

// findActive finds the active resource named name within active, an
// Active()-filtered slice. A resource that exists in the component but is
// inactive (priority < 0) must never be treated as present here: diffing is
// scoped to active, validly-named resources on both sides (spec.md §4.6).
func findActive(active []*resource.Resource, name string) (*resource.Resource, bool) {
	for _, r := range active {
		if r.Name() == name {
			return r, true
		}
	}
	return nil, false
}

// DiffComponent compares c1 (old) against c2 (new), per spec.md §4.6: for
// each active resource in c1, locate the matching resource in c2 by name;
// if absent or differing in value, record a diff. For each active
// resource in c2 absent from c1, record an ADDED diff. Aggregate
// classification: if c1 is empty, ADDED when c2 is non-empty else NONE; if
// c2 is empty, REMOVED; otherwise MODIFIED iff any per-resource diff
// accumulated, else NONE.
func DiffComponent(c1, c2 *component.Component) (*Component, error) {
	start := time.Now()
	defer func() { metrics.ObserveDiffDuration("component", time.Since(start).Seconds()) }()

	name := c1.Name()
	if c1.Len() == 0 {
		name = c2.Name()
	}
	result := &Component{Name: name}

	c2Active := c2.Active()
	c1Active := c1.Active()

	for _, or := range c1Active {
		nr, ok := findActive(c2Active, or.Name())
		var new *resource.Resource
		if ok {
			new = nr
		}
		if ok && resource.SameValue(or, nr) {
			continue
		}
		rd, err := DiffResource(or, new)
		if err != nil {
			return nil, err
		}
		if rd.Change != types.ChangeNone {
			result.Resources = append(result.Resources, rd)
		}
	}
	for _, nr := range c2Active {
		if _, ok := findActive(c1Active, nr.Name()); ok {
			continue
		}
		rd, err := DiffResource(nil, nr)
		if err != nil {
			return nil, err
		}
		result.Resources = append(result.Resources, rd)
	}

	switch {
	case c1.Len() == 0:
		if c2.Len() == 0 {
			result.Change = types.ChangeNone
		} else {
			result.Change = types.ChangeAdded
		}
	case c2.Len() == 0:
		result.Change = types.ChangeRemoved
	case len(result.Resources) > 0:
		result.Change = types.ChangeModified
	default:
		result.Change = types.ChangeNone
	}
	return result, nil
}
