// Package componentset implements ComponentSet (spec.md §3, "Component
// Set"): an ordered collection of components indexed by name, with
// find-or-create, insert-or-replace, transplant, merge, and directory-level
// (de)serialisation of status files.
package componentset

import (
	"github.com/sjquinney/lcfg-core/component"
	"github.com/sjquinney/lcfg-core/refcount"
	"github.com/sjquinney/lcfg-core/types"
)

// Set is an ordered collection of components, indexed by name. Like
// Resource and Component, a Set is reference counted; New sets the
// initial share to 1.
type Set struct {
	refs refcount.Counter

	components []*component.Component
}

// New creates an empty Set with an initial share of 1.
func New() *Set {
	s := &Set{}
	s.refs.Acquire()
	return s
}

// Acquire adds one share of s.
func (s *Set) Acquire() { s.refs.Acquire() }

// Release removes one share of s, releasing every component it holds if
// this was the last one.
func (s *Set) Release() int32 {
	return s.refs.ReleaseFunc(func() {
		for _, c := range s.components {
			c.Release()
		}
	})
}

// Len returns the number of components in the set.
func (s *Set) Len() int { return len(s.components) }

// Components returns the set's components in current order. The returned
// slice is a copy of the header; the *component.Component elements are
// shared.
func (s *Set) Components() []*component.Component {
	out := make([]*component.Component, len(s.components))
	copy(out, s.components)
	return out
}

// Find returns the component named name, scanning linearly, mirroring
// Component.Find's O(n) contract at the set level (spec.md §4.4).
func (s *Set) Find(name string) (*component.Component, bool) {
	for _, c := range s.components {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// Has reports whether a component named name is present.
func (s *Set) Has(name string) bool {
	_, ok := s.Find(name)
	return ok
}

// FindOrCreate returns the existing component named name, or creates,
// appends, and returns a new empty one.
func (s *Set) FindOrCreate(name string) (*component.Component, error) {
	if c, ok := s.Find(name); ok {
		return c, nil
	}
	c, err := component.New(name)
	if err != nil {
		return nil, err
	}
	s.Append(c)
	return c, nil
}

// Append retains c (acquiring a share) and adds it to the end of the set.
func (s *Set) Append(c *component.Component) {
	c.Acquire()
	s.components = append(s.components, c)
}

// InsertOrReplace retains incoming and either replaces the existing
// component of the same name in place (releasing the old one's share) or
// appends incoming when no such component exists.
func (s *Set) InsertOrReplace(incoming *component.Component) {
	for i, c := range s.components {
		if c.Name() == incoming.Name() {
			incoming.Acquire()
			s.components[i] = incoming
			c.Release()
			return
		}
	}
	s.Append(incoming)
}

// Remove deletes the component named name, releasing its share. Reports
// whether a component was actually removed.
func (s *Set) Remove(name string) bool {
	for i, c := range s.components {
		if c.Name() != name {
			continue
		}
		s.components = append(s.components[:i], s.components[i+1:]...)
		c.Release()
		return true
	}
	return false
}

// Sort orders the set's components lexicographically by name, in place,
// with the same bubble-sort shape as Component.Sort (spec.md §9).
func (s *Set) Sort() {
	n := len(s.components)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1-i; j++ {
			if s.components[j].Name() > s.components[j+1].Name() {
				s.components[j], s.components[j+1] = s.components[j+1], s.components[j]
			}
		}
	}
}

// Transplant force-overwrites s's components from other's, regardless of
// priority or content: each component of other replaces (via
// component.Component.Transplant) the matching one in s, or is appended
// when absent. Always reports ChangeModified when other is non-empty
// (spec.md §4.5).
func (s *Set) Transplant(other *Set) types.ChangeCode {
	if other.Len() == 0 {
		return types.ChangeNone
	}
	for _, oc := range other.components {
		if existing, ok := s.Find(oc.Name()); ok {
			existing.Transplant(oc)
		} else {
			s.Append(oc.Clone())
		}
	}
	return types.ChangeModified
}

// Merge folds every component of other into s using component-level merge
// (spec.md §4.5): a component present in both sides merges
// resource-by-resource; a component present only in other is appended when
// takeNew is true and ignored otherwise. The pass stops at the first
// CONFLICT, leaving already-merged components merged.
func (s *Set) Merge(other *Set, takeNew bool) (types.ChangeCode, error) {
	aggregate := types.ChangeNone
	for _, oc := range other.components {
		existing, ok := s.Find(oc.Name())
		if !ok {
			if !takeNew {
				continue
			}
			s.Append(oc.Clone())
			aggregate = types.ChangeModified
			continue
		}
		result, err := existing.Merge(oc)
		if err != nil {
			return types.ChangeError, err
		}
		if result != types.ChangeNone {
			aggregate = types.ChangeModified
		}
	}
	return aggregate, nil
}
