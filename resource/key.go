package resource

import (
	"strings"

	"github.com/sjquinney/lcfg-core/types"
)

// Key is the parsed form of a status-line key: an optional symbol, an
// optional host/namespace, an optional component name, and the resource
// name.
type Key struct {
	Symbol types.Symbol
	Host   string
	Comp   string
	Res    string
}

// ParseKey accepts an optional leading type-symbol character, then splits
// the remainder on the last two '.' separators from the right: the last
// segment is the resource name, the one before it is the component name,
// and anything remaining is the host/namespace (spec.md §4.1). Empty
// segments anywhere in that split are a Parse error.
func ParseKey(raw string) (Key, error) {
	if raw == "" {
		return Key{}, types.NewError(types.Parse, "empty key", nil)
	}
	sym := types.SymbolValue
	rest := raw
	switch raw[0] {
	case '%', '#', '^', '.':
		sym = types.Symbol(raw[0])
		rest = raw[1:]
	}
	if rest == "" {
		return Key{}, types.NewError(types.Parse, "empty key "+raw, nil)
	}

	segs := strings.Split(rest, ".")
	res := segs[len(segs)-1]
	if res == "" || !types.ValidateName(res) {
		return Key{}, types.NewError(types.Parse, "resource name in key "+raw, nil)
	}
	k := Key{Symbol: sym, Res: res}

	if len(segs) >= 2 {
		comp := segs[len(segs)-2]
		if comp == "" || !types.ValidateName(comp) {
			return Key{}, types.NewError(types.Parse, "component name in key "+raw, nil)
		}
		k.Comp = comp
	}
	if len(segs) >= 3 {
		hostSegs := segs[:len(segs)-2]
		for _, h := range hostSegs {
			if h == "" {
				return Key{}, types.NewError(types.Parse, "host segment in key "+raw, nil)
			}
		}
		k.Host = strings.Join(hostSegs, ".")
	}
	return k, nil
}
