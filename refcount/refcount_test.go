package refcount

import "testing"

func TestAcquireRelease(t *testing.T) {
	var c Counter
	if c.Count() != 0 {
		t.Fatalf("zero value Count() = %d, want 0", c.Count())
	}
	c.Acquire()
	if c.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", c.Count())
	}
	c.Acquire()
	if c.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", c.Count())
	}
	c.Release()
	if c.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", c.Count())
	}
}

func TestReleaseFuncFiresOnlyAtZero(t *testing.T) {
	var c Counter
	c.Acquire()
	c.Acquire()

	fired := 0
	c.ReleaseFunc(func() { fired++ })
	if fired != 0 {
		t.Fatalf("onZero fired at count %d, want not yet", c.Count())
	}
	c.ReleaseFunc(func() { fired++ })
	if fired != 1 {
		t.Fatalf("onZero fired %d times, want exactly 1", fired)
	}
}

func TestReleaseFuncNilCallback(t *testing.T) {
	var c Counter
	c.Acquire()
	if n := c.ReleaseFunc(nil); n != 0 {
		t.Fatalf("ReleaseFunc(nil) returned %d, want 0", n)
	}
}
