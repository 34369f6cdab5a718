package diff

import (
	"crypto/md5"
	"fmt"
	"hash"
	"io"
)

// WriteHoldFile writes cd's hold-file lines to w (spec.md §4.6):
//
//	[compname.]resname:
//	 - <old-value-or-empty>
//	 + <new-value-or-empty>
//
// emitted only for resource diffs where the value actually differs after
// encoding; additions with an empty new value and removals with an empty
// old value are suppressed as non-actionable.
func WriteHoldFile(w io.Writer, cd *Component) error {
	for _, rd := range cd.Resources {
		old := rd.oldValue()
		new := rd.newValue()
		if old == new {
			continue
		}
		if rd.New == nil && old == "" {
			continue
		}
		if rd.Old == nil && new == "" {
			continue
		}
		key := rd.Name
		if cd.Name != "" {
			key = cd.Name + "." + rd.Name
		}
		if _, err := fmt.Fprintf(w, "%s:\n - %s\n + %s\n", key, old, new); err != nil {
			return err
		}
	}
	return nil
}

// HoldFileWriter streams a profile diff's hold-file output across every
// component diff, threading the bytes through an MD5 accumulator so the
// caller can read off a stable content signature once writing completes
// (spec.md §4.6: "threading the bytes through an MD5 accumulator so the
// final file can carry a stable content signature").
type HoldFileWriter struct {
	w io.Writer
	h hash.Hash
}

// NewHoldFileWriter wraps w with an MD5 accumulator.
func NewHoldFileWriter(w io.Writer) *HoldFileWriter {
	h := md5.New()
	return &HoldFileWriter{w: io.MultiWriter(w, h), h: h}
}

// WriteProfile streams every component diff in p through the wrapped
// writer and its MD5 accumulator.
func (hw *HoldFileWriter) WriteProfile(p *Profile) error {
	for _, cd := range p.Components {
		if err := WriteHoldFile(hw.w, cd); err != nil {
			return err
		}
	}
	return nil
}

// Sum returns the MD5 signature of everything written so far, as a hex
// string.
func (hw *HoldFileWriter) Sum() string {
	return fmt.Sprintf("%x", hw.h.Sum(nil))
}
