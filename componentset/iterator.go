package componentset

import "github.com/sjquinney/lcfg-core/component"

// Iterator is a single-pass forward cursor over a set's components
// (spec.md §4.8). Constructing one acquires a share of the set, keeping it
// alive for the iterator's lifetime; Close releases that share. Multiple
// concurrent iterators over the same set are fine; sorting the set
// mid-iteration is undefined behaviour, same as the spec.
type Iterator struct {
	s      *Set
	pos    int
	closed bool
}

// NewIterator returns an Iterator over s, acquiring a share of it.
func NewIterator(s *Set) *Iterator {
	s.Acquire()
	return &Iterator{s: s}
}

// HasNext reports whether Next would return a component rather than the nil
// sentinel.
func (it *Iterator) HasNext() bool {
	return !it.closed && it.pos < len(it.s.components)
}

// Next advances the cursor and returns the component at the new position, or
// nil once exhausted. Calling Next again after exhaustion keeps returning
// nil.
func (it *Iterator) Next() *component.Component {
	if !it.HasNext() {
		return nil
	}
	c := it.s.components[it.pos]
	it.pos++
	return c
}

// Close releases the iterator's share of its set. Safe to call more than
// once.
func (it *Iterator) Close() {
	if it.closed {
		return
	}
	it.closed = true
	it.s.Release()
}
