// Package statusio implements the status-file line grammar (spec.md §4.3,
// §6): parsing a component's status file into attribute-setting calls on
// a resource.Resource, and emitting a component's active resources back
// out in the same grammar, with the source's temp-file-then-rename
// discipline for atomic writes.
package statusio

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/sjquinney/lcfg-core/component"
	"github.com/sjquinney/lcfg-core/resource"
	"github.com/sjquinney/lcfg-core/types"
)

// Line is one parsed status-file line: the attribute symbol, the parsed
// key, and the raw (still-encoded) value.
type Line struct {
	Key   resource.Key
	Value string
}

// ParseLine parses a single status-file line (without its trailing
// newline) per spec.md §6's grammar. A leading byte that isn't one of
// '%','#','^','.' is treated as part of the key (no symbol, i.e. a value
// line), matching "unknown leading bytes are treated as the value symbol".
func ParseLine(line string) (Line, error) {
	eq := strings.IndexByte(line, '=')
	if eq < 0 {
		return Line{}, types.NewError(types.Parse, "missing '=' in line "+line, nil)
	}
	key, err := resource.ParseKey(line[:eq])
	if err != nil {
		return Line{}, err
	}
	return Line{Key: key, Value: line[eq+1:]}, nil
}

// LoadComponent parses r as the status file for a component named name,
// applying each line's attribute to the named resource within a freshly
// created Component. Per spec.md §4.3: lines are processed strictly in
// order, so the last setter for an attribute wins; a key whose component
// segment is present and differs from name is a Parse error; value lines
// are entity-decoded.
func LoadComponent(r io.Reader, name string) (*component.Component, error) {
	c, err := component.New(name)
	if err != nil {
		return nil, err
	}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		raw := strings.TrimRight(scanner.Text(), "\r")
		if raw == "" {
			continue
		}
		line, err := ParseLine(raw)
		if err != nil {
			return nil, err
		}
		if line.Key.Comp != "" && line.Key.Comp != name {
			return nil, types.NewError(types.Parse,
				"component mismatch in key for "+name+": "+line.Key.Comp, nil)
		}
		res, err := c.FindOrCreate(line.Key.Res)
		if err != nil {
			return nil, err
		}
		value := line.Value
		if line.Key.Symbol == types.SymbolValue {
			value = resource.Decode(value)
		}
		if err := res.SetAttribute(line.Key.Symbol, value); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, types.NewError(types.IO, "reading status file for "+name, err)
	}
	return c, nil
}

// SaveComponent writes c's active resources to w in status-file grammar,
// sorted lexicographically by resource name (spec.md §4.3: "emitted sort
// order is lexicographic by resource name to make byte-for-byte diffs
// stable"). Only active resources (priority >= 0) are emitted.
func SaveComponent(w io.Writer, c *component.Component) error {
	active := c.Active()
	sort.Slice(active, func(i, j int) bool { return active[i].Name() < active[j].Name() })
	for _, r := range active {
		if _, err := io.WriteString(w, r.SerialiseStatus(c.Name())); err != nil {
			return types.NewError(types.IO, "writing status line for "+r.Name(), err)
		}
	}
	return nil
}

// WriteFile serialises c to path using the temp-file-then-rename
// discipline (spec.md §4.4: "write errors abort emission without
// clobbering the destination"). The temp file is created alongside path
// as "<path>.<uuid4>.tmp", using a random UUIDv4 suffix (gofrs/uuid/v5) in
// place of a hand-rolled random source, the same library the teacher uses
// for id generation elsewhere.
func WriteFile(path string, c *component.Component) error {
	id, err := uuid.NewV4()
	if err != nil {
		return types.NewError(types.IO, "generating temp suffix for "+path, err)
	}
	tmp := path + "." + id.String() + ".tmp"

	var buf bytes.Buffer
	if err := SaveComponent(&buf, c); err != nil {
		return err
	}
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return types.NewError(types.IO, "writing temp file "+tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return types.NewError(types.IO, "renaming "+tmp+" to "+path, err)
	}
	return nil
}

// ReadFile loads the status file at path as a component named name
// (filepath.Base(path) by convention, but callers may pass any valid
// name).
func ReadFile(path, name string) (*component.Component, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, types.NewError(types.IO, "opening "+path, err)
	}
	defer f.Close()
	return LoadComponent(f, name)
}
