package component

import "github.com/sjquinney/lcfg-core/resource"

// Iterator is a single-pass forward cursor over a component's resources
// (spec.md §4.8). Constructing one acquires a share of the component,
// keeping it alive for the iterator's lifetime; Close releases that share.
// Multiple concurrent iterators over the same component are fine; sorting
// the component mid-iteration is undefined behaviour, same as the spec.
type Iterator struct {
	c      *Component
	pos    int
	closed bool
}

// NewIterator returns an Iterator over c, acquiring a share of it.
func NewIterator(c *Component) *Iterator {
	c.Acquire()
	return &Iterator{c: c}
}

// HasNext reports whether Next would return a resource rather than the nil
// sentinel.
func (it *Iterator) HasNext() bool {
	return !it.closed && it.pos < len(it.c.resources)
}

// Next advances the cursor and returns the resource at the new position, or
// nil once exhausted. Calling Next again after exhaustion keeps returning
// nil.
func (it *Iterator) Next() *resource.Resource {
	if !it.HasNext() {
		return nil
	}
	r := it.c.resources[it.pos]
	it.pos++
	return r
}

// Close releases the iterator's share of its component. Safe to call more
// than once.
func (it *Iterator) Close() {
	if it.closed {
		return
	}
	it.closed = true
	it.c.Release()
}
