package component

import (
	"github.com/sjquinney/lcfg-core/resource"
	"github.com/sjquinney/lcfg-core/types"
)

// MergeResource applies the resource-level merge policy of spec.md §4.5 to
// target and incoming, which must share a name. On ChangeReplaced,
// target's attributes are overwritten in place with incoming's (target
// keeps its own identity and share count; nothing about incoming is
// retained). On ChangeError, neither resource is mutated.
func MergeResource(target, incoming *resource.Resource) (types.ChangeCode, error) {
	pt, pn := target.Priority(), incoming.Priority()
	switch {
	case pt > pn:
		return types.ChangeNone, nil
	case pn > pt:
		target.CopyAttributesFrom(incoming)
		return types.ChangeReplaced, nil
	default:
		if resource.SameValue(target, incoming) {
			target.CopyAttributesFrom(incoming)
			return types.ChangeReplaced, nil
		}
		return types.ChangeError, types.NewError(types.Conflict,
			"resource "+target.Name()+" merge conflict at equal priority", nil)
	}
}

// MergeResource merges the single resource other into c. When c already
// holds a resource of the same name, the resource-level policy above
// decides and its result is returned. Otherwise, with c.MergeRules.TakeNew
// set, a clone of other is appended and ChangeAdded is returned; without
// it, other is ignored and ChangeNone is returned.
func (c *Component) MergeResource(other *resource.Resource) (types.ChangeCode, error) {
	if existing, ok := c.Find(other.Name()); ok {
		return MergeResource(existing, other)
	}
	if !c.MergeRules.TakeNew {
		return types.ChangeNone, nil
	}
	c.Append(other.Clone())
	return types.ChangeAdded, nil
}

// Merge folds every resource of other into c via MergeResource, per
// spec.md §4.5's component-level merge. The aggregate result is
// ChangeModified if any sub-merge reported a non-NONE change, ChangeNone
// otherwise. The first CONFLICT stops the pass immediately and already
// merged resources stay merged (spec.md §7: "stop on first error; preserve
// already-committed intermediates").
func (c *Component) Merge(other *Component) (types.ChangeCode, error) {
	aggregate := types.ChangeNone
	for _, r := range other.resources {
		result, err := c.MergeResource(r)
		if err != nil {
			return types.ChangeError, err
		}
		if result != types.ChangeNone {
			aggregate = types.ChangeModified
		}
	}
	return aggregate, nil
}

// MergeWithConfig behaves like Merge, but runs cfg's MergeAspects'
// BeforeMerge/AfterMerge hooks around every per-resource decision, in the
// order of cfg.Aspects (types.WithAspects keeps that slice sorted by
// Order(); a Config built by hand is used as given). A BeforeMerge veto (non-nil error) short-circuits that
// resource's merge as a CONFLICT without calling MergeResource. cfg may be
// nil, in which case this is exactly Merge.
func (c *Component) MergeWithConfig(other *Component, cfg *types.Config) (types.ChangeCode, error) {
	if cfg == nil || len(cfg.Aspects) == 0 {
		return c.Merge(other)
	}
	aggregate := types.ChangeNone
	for _, r := range other.resources {
		targetPriority, incomingPriority := 0, r.Priority()
		if existing, ok := c.Find(r.Name()); ok {
			targetPriority = existing.Priority()
		}
		var vetoErr error
		for _, a := range cfg.Aspects {
			if err := a.BeforeMerge(c.name, r.Name(), targetPriority, incomingPriority); err != nil {
				vetoErr = err
				break
			}
		}
		var result types.ChangeCode
		var err error
		if vetoErr != nil {
			result, err = types.ChangeError, types.NewError(types.Conflict, "resource "+r.Name()+" merge vetoed", vetoErr)
		} else {
			result, err = c.MergeResource(r)
		}
		for _, a := range cfg.Aspects {
			a.AfterMerge(c.name, r.Name(), result)
		}
		if err != nil {
			return types.ChangeError, err
		}
		if result != types.ChangeNone {
			aggregate = types.ChangeModified
		}
	}
	return aggregate, nil
}

// ApplyOverrides unconditionally replaces, in self, every resource that
// also appears (by name) in other — regardless of priority or content.
// Resources in other absent from self are ignored unless takeNew is true,
// in which case they are appended (shared, not copied), per spec.md §4.4.
func (c *Component) ApplyOverrides(other *Component, takeNew bool) types.ChangeCode {
	changed := types.ChangeNone
	for _, r := range other.resources {
		if existing, ok := c.Find(r.Name()); ok {
			existing.CopyAttributesFrom(r)
			changed = types.ChangeModified
		} else if takeNew {
			c.Append(r)
			changed = types.ChangeModified
		}
	}
	return changed
}

// Transplant force-overwrites c's resources from other's, regardless of
// priority or content, and always reports ChangeModified when other is
// non-empty (spec.md §4.5).
func (c *Component) Transplant(other *Component) types.ChangeCode {
	if other.Len() == 0 {
		return types.ChangeNone
	}
	for _, r := range other.resources {
		if existing, ok := c.Find(r.Name()); ok {
			existing.CopyAttributesFrom(r)
		} else {
			c.Append(r.Clone())
		}
	}
	return types.ChangeModified
}
