package componentset

import (
	"os"
	"path/filepath"

	"github.com/sjquinney/lcfg-core/statusio"
	"github.com/sjquinney/lcfg-core/types"
)

// LoadDir reads every status file in dir into a new Set (spec.md §6,
// "Status directory layout"): one file per component, filename equal to
// the component name, in a single flat directory. Files whose names are
// not valid component names are skipped without error; files beginning
// with '.' are skipped. A non-existent dir yields an empty Set when
// opts.Has(types.OptAllowNoExist), or an IO error otherwise.
//
// The directory handle is closed before LoadDir returns on every path,
// including mid-scan validation failures (the stricter of the two
// closure patterns available for this read, per the Open Question
// decision recorded in DESIGN.md).
func LoadDir(dir string, opts types.Option) (*Set, error) {
	f, err := os.Open(dir)
	if err != nil {
		if os.IsNotExist(err) && opts.Has(types.OptAllowNoExist) {
			return New(), nil
		}
		return nil, types.NewError(types.IO, "opening status directory "+dir, err)
	}

	entries, err := f.ReadDir(-1)
	closeErr := f.Close()
	if err != nil {
		return nil, types.NewError(types.IO, "reading status directory "+dir, err)
	}
	if closeErr != nil {
		return nil, types.NewError(types.IO, "closing status directory "+dir, closeErr)
	}

	set := New()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if len(name) > 0 && name[0] == '.' {
			continue
		}
		if !types.ValidateName(name) {
			continue
		}
		c, err := statusio.ReadFile(filepath.Join(dir, name), name)
		if err != nil {
			return nil, err
		}
		set.Append(c)
	}
	return set, nil
}

// SaveDir writes every component in s to dir, one status file per
// component named after the component, using statusio.WriteFile's
// temp-file-then-rename discipline for each.
func SaveDir(dir string, s *Set) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return types.NewError(types.IO, "creating status directory "+dir, err)
	}
	for _, c := range s.components {
		path := filepath.Join(dir, c.Name())
		if err := statusio.WriteFile(path, c); err != nil {
			return err
		}
	}
	return nil
}
