/*
 * Copyright 2023 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package component implements Component (spec.md §3, §4.4): a named,
// ordered sequence of resources with set-like lookup by name, a
// merge-rules configuration, and the priority-driven merge policy that
// resolves the same resource arriving from multiple sources.
package component

import (
	"github.com/sjquinney/lcfg-core/refcount"
	"github.com/sjquinney/lcfg-core/resource"
	"github.com/sjquinney/lcfg-core/types"
)

// MergeRules configures how Merge (via MergeResource) treats incoming
// resources the target doesn't already have; ApplyOverrides takes its own
// takeNew argument instead. Decoded from a generic map with
// mitchellh/mapstructure (mirrors the teacher's maps.Map2Struct decode of
// a node's Configuration in every components/transform/*_node.go Init).
type MergeRules struct {
	// TakeNew appends resources present in the incoming side but absent
	// from the target, instead of ignoring them (spec.md §4.5).
	TakeNew bool `mapstructure:"take_new"`
}

// DecodeMergeRules decodes a generic options map into a MergeRules.
func DecodeMergeRules(m map[string]any) (MergeRules, error) {
	var rules MergeRules
	if err := mapstructureDecode(m, &rules); err != nil {
		return MergeRules{}, types.NewError(types.Validation, "merge rules", err)
	}
	return rules, nil
}

// Component is a named, ordered sequence of resources. Iteration order is
// insertion order until Sort is called, after which it is lexicographic by
// resource name (spec.md §3). Like Resource, Components are reference
// counted; New sets the initial share to 1.
type Component struct {
	refs refcount.Counter

	name       string
	resources  []*resource.Resource
	MergeRules MergeRules
}

// New creates an empty Component named name with an initial share of 1.
func New(name string) (*Component, error) {
	if !types.ValidateName(name) {
		return nil, types.NewError(types.Validation, "component name "+name, nil)
	}
	c := &Component{name: name}
	c.refs.Acquire()
	return c, nil
}

// Acquire adds one share of c.
func (c *Component) Acquire() { c.refs.Acquire() }

// Release removes one share of c, releasing every resource it holds if
// this was the last one.
func (c *Component) Release() int32 {
	return c.refs.ReleaseFunc(func() {
		for _, r := range c.resources {
			r.Release()
		}
	})
}

// Name returns the component's name.
func (c *Component) Name() string { return c.name }

// SetName validates and, on success, replaces the component's name.
func (c *Component) SetName(name string) error {
	if !types.ValidateName(name) {
		return types.NewError(types.Validation, "component name "+name, nil)
	}
	c.name = name
	return nil
}

// Len returns the number of resources the component holds.
func (c *Component) Len() int { return len(c.resources) }

// Resources returns the component's resources in current iteration order.
// The returned slice is a copy of the header; the *Resource elements
// themselves are shared.
func (c *Component) Resources() []*resource.Resource {
	out := make([]*resource.Resource, len(c.resources))
	copy(out, c.resources)
	return out
}

// Active returns the resources whose priority is non-negative, in
// iteration order (spec.md §3's "active view").
func (c *Component) Active() []*resource.Resource {
	out := make([]*resource.Resource, 0, len(c.resources))
	for _, r := range c.resources {
		if r.IsActive() {
			out = append(out, r)
		}
	}
	return out
}

// Find returns the resource named name, if present, by a case-sensitive
// linear scan. The scan covers every resource the component holds:
// inactive resources (priority < 0) are found as well, so Find, Has and
// FindOrCreate do not restrict themselves to the active view.
func (c *Component) Find(name string) (*resource.Resource, bool) {
	for _, r := range c.resources {
		if r.Name() == name {
			return r, true
		}
	}
	return nil, false
}

// Has reports whether a resource named name is present.
func (c *Component) Has(name string) bool {
	_, ok := c.Find(name)
	return ok
}

// FindOrCreate returns the existing resource named name, or creates and
// appends a new, empty one. Creation fails only on an invalid name.
func (c *Component) FindOrCreate(name string) (*resource.Resource, error) {
	if r, ok := c.Find(name); ok {
		return r, nil
	}
	r, err := resource.New(name)
	if err != nil {
		return nil, err
	}
	c.Append(r)
	return r, nil
}

// Append retains r (acquiring a share) and adds it to the end of the
// component's resource list. This is the common-case insertion primitive;
// spec.md §9 calls out node-level insert/remove as an abstraction leak, so
// Append/Remove/InsertAt are the only mutators exposed, with no node
// handles in the public API.
func (c *Component) Append(r *resource.Resource) {
	r.Acquire()
	c.resources = append(c.resources, r)
}

// InsertAt retains r and inserts it at index i, shifting later resources
// along. i may equal Len() to append.
func (c *Component) InsertAt(i int, r *resource.Resource) {
	r.Acquire()
	c.resources = append(c.resources, nil)
	copy(c.resources[i+1:], c.resources[i:])
	c.resources[i] = r
}

// Remove deletes the resource named name, releasing its share. Reports
// whether a resource was actually removed.
func (c *Component) Remove(name string) bool {
	for i, r := range c.resources {
		if r.Name() != name {
			continue
		}
		c.resources = append(c.resources[:i], c.resources[i+1:]...)
		r.Release()
		return true
	}
	return false
}

// Sort orders the component's resources lexicographically by name, in
// place. A bubble sort, per spec.md §9 ("any correct sort suffices, but
// the same final order MUST result because it is observable through
// status-file content") — the order it produces is identical to a
// sort.Slice by name, kept this shape to mirror the source's own sort.
func (c *Component) Sort() {
	n := len(c.resources)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1-i; j++ {
			if c.resources[j].Name() > c.resources[j+1].Name() {
				c.resources[j], c.resources[j+1] = c.resources[j+1], c.resources[j]
			}
		}
	}
}

// Clone returns a new, independently share-counted Component with clones
// of every resource (used by callers that need to mutate a copy without
// disturbing the original, e.g. building a merge scratch-pad).
func (c *Component) Clone() *Component {
	clone := &Component{name: c.name, MergeRules: c.MergeRules}
	clone.refs.Acquire()
	for _, r := range c.resources {
		clone.resources = append(clone.resources, r.Clone())
	}
	return clone
}
