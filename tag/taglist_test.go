package tag

import "testing"

func TestFromString(t *testing.T) {
	l, err := FromString("usb  net\tdisk\n")
	if err != nil {
		t.Fatalf("FromString error: %v", err)
	}
	if l.Len() != 3 {
		t.Fatalf("Len = %d, want 3", l.Len())
	}
	if l.At(0) != "usb" || l.At(1) != "net" || l.At(2) != "disk" {
		t.Errorf("tags = %v, want [usb net disk]", l.Slice())
	}
	if _, err := FromString("usb -net"); err == nil {
		t.Error("expected error for invalid tag")
	}
}

func TestStringRoundTrip(t *testing.T) {
	l, _ := FromString("usb net")
	if l.String(false) != "usb net" {
		t.Errorf("String(false) = %q", l.String(false))
	}
	if l.String(true) != "usb net\n" {
		t.Errorf("String(true) = %q", l.String(true))
	}
}

func TestMutateAdd(t *testing.T) {
	l, _ := FromString("usb")
	change, err := l.MutateAdd("net")
	if err != nil {
		t.Fatal(err)
	}
	if change.String() != "ADDED" {
		t.Errorf("change = %v, want ADDED", change)
	}
	change, err = l.MutateAdd("usb")
	if err != nil {
		t.Fatal(err)
	}
	if change.String() != "NONE" {
		t.Errorf("change = %v, want NONE for duplicate add", change)
	}
	if l.Len() != 2 {
		t.Errorf("Len = %d, want 2", l.Len())
	}
}

func TestMutateAppendAllowsDuplicates(t *testing.T) {
	l, _ := FromString("usb")
	if err := l.MutateAppend("usb"); err != nil {
		t.Fatal(err)
	}
	if l.Len() != 2 {
		t.Errorf("Len = %d, want 2 (duplicates allowed)", l.Len())
	}
}

func TestMutateReplace(t *testing.T) {
	l, _ := FromString("usb net usb")
	change, err := l.MutateReplace("usb", "disk", false)
	if err != nil {
		t.Fatal(err)
	}
	if change.String() != "MODIFIED" {
		t.Errorf("change = %v, want MODIFIED", change)
	}
	if l.String(false) != "disk net usb" {
		t.Errorf("after single replace = %q, want \"disk net usb\"", l.String(false))
	}

	l2, _ := FromString("usb net usb")
	if _, err := l2.MutateReplace("usb", "disk", true); err != nil {
		t.Fatal(err)
	}
	if l2.String(false) != "disk net disk" {
		t.Errorf("after global replace = %q, want \"disk net disk\"", l2.String(false))
	}
}

func TestSetOperations(t *testing.T) {
	x, _ := FromString("a b c b")
	y, _ := FromString("b c d")

	u := Union(x, y)
	for _, want := range []string{"a", "b", "c", "d"} {
		if !u.Contains(want) {
			t.Errorf("Union missing %q", want)
		}
	}
	if u.String(false) != "a b c d" {
		t.Errorf("Union = %q, want \"a b c d\"", u.String(false))
	}

	uu := Union(x, x)
	if uu.String(false) != Unique(x).String(false) {
		t.Errorf("Union(x,x) = %q, want Unique(x) = %q", uu.String(false), Unique(x).String(false))
	}

	i := Intersection(x, y)
	if i.String(false) != "b c" {
		t.Errorf("Intersection = %q, want \"b c\"", i.String(false))
	}
	for j := 0; j < i.Len(); j++ {
		if !x.Contains(i.At(j)) {
			t.Errorf("Intersection result %q not in x", i.At(j))
		}
	}

	s := Subtract(x, y)
	if s.String(false) != "a" {
		t.Errorf("Subtract = %q, want \"a\"", s.String(false))
	}
	for j := 0; j < s.Len(); j++ {
		if y.Contains(s.At(j)) {
			t.Errorf("Subtract result %q should not be in y", s.At(j))
		}
	}
}

func TestSort(t *testing.T) {
	l, _ := FromString("net usb disk audio")
	l.Sort()
	if l.String(false) != "audio disk net usb" {
		t.Errorf("Sort = %q, want \"audio disk net usb\"", l.String(false))
	}
}
