package componentset

import "testing"

func TestIteratorWalksInOrder(t *testing.T) {
	s := New()
	s.Append(mustComponent(t, "a"))
	s.Append(mustComponent(t, "b"))

	it := NewIterator(s)
	defer it.Close()

	var names []string
	for it.HasNext() {
		names = append(names, it.Next().Name())
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("names = %v, want [a b]", names)
	}
	if it.HasNext() {
		t.Error("expected HasNext false after exhaustion")
	}
	if it.Next() != nil {
		t.Error("expected Next to keep returning nil after exhaustion")
	}
}

func TestIteratorAcquiresAndReleasesShare(t *testing.T) {
	s := New()
	before := s.refs.Count()

	it := NewIterator(s)
	if s.refs.Count() != before+1 {
		t.Errorf("expected NewIterator to acquire a share, count = %d, want %d", s.refs.Count(), before+1)
	}
	it.Close()
	if s.refs.Count() != before {
		t.Errorf("expected Close to release the share, count = %d, want %d", s.refs.Count(), before)
	}
	it.Close() // safe to call twice
}

func TestIteratorCloseIsIdempotent(t *testing.T) {
	s := New()
	it := NewIterator(s)
	it.Close()
	it.Close()
	if it.HasNext() {
		t.Error("expected HasNext false after Close")
	}
}
