package resource

import (
	"strings"

	"github.com/sjquinney/lcfg-core/types"
)

// Compare performs the three-way comparison spec.md §3/§4.1 requires for
// merge/diff ordering: by (name, value, context) treated as strings, with
// missing attributes comparing as the empty string. Type, derivation,
// template, and comment are deliberately not compared.
func Compare(a, b *Resource) int {
	if c := strings.Compare(a.name, b.name); c != 0 {
		return c
	}
	av, _ := a.Value()
	bv, _ := b.Value()
	if c := strings.Compare(av, bv); c != 0 {
		return c
	}
	ac, _ := a.Context()
	bc, _ := b.Context()
	return strings.Compare(ac, bc)
}

// Equal reports whether Compare(a, b) == 0.
func Equal(a, b *Resource) bool {
	return Compare(a, b) == 0
}

// SameValue implements the type-aware value equality spec.md §4.1
// describes: Boolean values compare as canonical booleans, Integer values
// compare numerically (a non-parseable value reads as 0, matching a
// strtol-style parse), and any other pairing — including resources whose
// types differ — compares the raw value strings. Two absent values always
// compare equal.
func SameValue(a, b *Resource) bool {
	av, aok := a.Value()
	bv, bok := b.Value()
	if !aok && !bok {
		return true
	}
	if aok != bok {
		return false
	}
	if a.typ == b.typ {
		switch a.typ {
		case types.TypeBoolean:
			ca, _ := canonicalBoolean(av)
			cb, _ := canonicalBoolean(bv)
			return ca == cb
		case types.TypeInteger:
			return parseInt(av) == parseInt(bv)
		}
	}
	return av == bv
}
