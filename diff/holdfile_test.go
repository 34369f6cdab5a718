package diff

import (
	"bytes"
	"crypto/md5"
	"fmt"
	"testing"
)

func TestWriteHoldFileEmitsModifiedDiffs(t *testing.T) {
	c1 := mustComponent(t, "auth", map[string]string{"version": "1"})
	c2 := mustComponent(t, "auth", map[string]string{"version": "2"})
	cd, err := DiffComponent(c1, c2)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteHoldFile(&buf, cd); err != nil {
		t.Fatal(err)
	}
	want := "auth.version:\n - 1\n + 2\n"
	if buf.String() != want {
		t.Errorf("WriteHoldFile output = %q, want %q", buf.String(), want)
	}
}

func TestWriteHoldFileSuppressesNonActionableDiffs(t *testing.T) {
	c1 := mustComponent(t, "auth", nil)
	r, _ := c1.FindOrCreate("placeholder")
	r.SetPriority(-1) // inactive, stays out of Active()
	c2 := mustComponent(t, "auth", nil)

	cd, err := DiffComponent(c1, c2)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteHoldFile(&buf, cd); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no hold-file output for an unchanged diff, got %q", buf.String())
	}
}

func TestWriteHoldFileSuppressesEmptyAddedValue(t *testing.T) {
	new := mustResource(t, "placeholder", "")
	rd, err := DiffResource(nil, new)
	if err != nil {
		t.Fatal(err)
	}
	cd := &Component{Name: "auth", Resources: []*Resource{rd}}

	var buf bytes.Buffer
	if err := WriteHoldFile(&buf, cd); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected an ADDED diff with an empty new value suppressed, got %q", buf.String())
	}
}

func TestHoldFileWriterSumIsMD5OfWrittenBytes(t *testing.T) {
	c1 := mustComponent(t, "auth", map[string]string{"version": "1"})
	c2 := mustComponent(t, "auth", map[string]string{"version": "2"})
	cd, err := DiffComponent(c1, c2)
	if err != nil {
		t.Fatal(err)
	}
	p := &Profile{Components: []*Component{cd}}

	var buf bytes.Buffer
	hw := NewHoldFileWriter(&buf)
	if err := hw.WriteProfile(p); err != nil {
		t.Fatal(err)
	}

	want := fmt.Sprintf("%x", md5.Sum(buf.Bytes()))
	if hw.Sum() != want {
		t.Errorf("Sum() = %q, want %q", hw.Sum(), want)
	}
}
