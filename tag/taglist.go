package tag

import (
	"strings"

	"github.com/sjquinney/lcfg-core/types"
)

// List is an ordered sequence of tags. The zero value is an empty list.
// Operations that build a List from strings validate every tag and refuse
// the whole input on the first invalid one, per spec.md §4.2.
type List struct {
	tags []string
}

// FromString splits s on any ASCII whitespace (" \t\r\n") and validates
// each token as a tag name, preserving order of appearance (spec.md §4.2).
func FromString(s string) (List, error) {
	return FromArray(strings.FieldsFunc(s, isTagSpace))
}

func isTagSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

// FromArray validates and wraps an already-tokenised slice of tag names.
func FromArray(a []string) (List, error) {
	for _, t := range a {
		if !Valid(t) {
			return List{}, types.NewError(types.Validation, "tag name "+t, nil)
		}
	}
	cp := make([]string, len(a))
	copy(cp, a)
	return List{tags: cp}, nil
}

// Len returns the number of tags in the list.
func (l List) Len() int { return len(l.tags) }

// At returns the tag at index i.
func (l List) At(i int) string { return l.tags[i] }

// Slice returns a copy of the underlying tags, safe for the caller to
// mutate without affecting l.
func (l List) Slice() []string {
	cp := make([]string, len(l.tags))
	copy(cp, l.tags)
	return cp
}

// Contains reports whether name appears anywhere in the list.
func (l List) Contains(name string) bool {
	for _, t := range l.tags {
		if t == name {
			return true
		}
	}
	return false
}

// String renders the list as its space-separated spec form. If newline is
// true a trailing "\n" is appended (the NEWLINE option of spec.md §6).
func (l List) String(newline bool) string {
	s := strings.Join(l.tags, " ")
	if newline {
		s += "\n"
	}
	return s
}

// MutateAdd appends name iff it is not already present, returning
// ChangeAdded if it was appended or ChangeNone if it was already there.
func (l *List) MutateAdd(name string) (types.ChangeCode, error) {
	if !Valid(name) {
		return types.ChangeError, types.NewError(types.Validation, "tag name "+name, nil)
	}
	if l.Contains(name) {
		return types.ChangeNone, nil
	}
	l.tags = append(l.tags, name)
	return types.ChangeAdded, nil
}

// MutateAppend unconditionally appends name, allowing duplicates.
func (l *List) MutateAppend(name string) error {
	if !Valid(name) {
		return types.NewError(types.Validation, "tag name "+name, nil)
	}
	l.tags = append(l.tags, name)
	return nil
}

// MutateReplace replaces occurrences of match with replace. If all is
// false only the first match is replaced; otherwise every occurrence is.
// Returns ChangeModified if anything was replaced, ChangeNone otherwise.
func (l *List) MutateReplace(match, replace string, all bool) (types.ChangeCode, error) {
	if !Valid(replace) {
		return types.ChangeError, types.NewError(types.Validation, "tag name "+replace, nil)
	}
	changed := types.ChangeNone
	for i, t := range l.tags {
		if t != match {
			continue
		}
		l.tags[i] = replace
		changed = types.ChangeModified
		if !all {
			break
		}
	}
	return changed, nil
}

// Unique returns a duplicate-free copy of l, preserving first occurrences.
func Unique(l List) List {
	out := make([]string, 0, len(l.tags))
	seen := make(map[string]struct{}, len(l.tags))
	for _, t := range l.tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return List{tags: out}
}

// Union returns unique(x) followed by the tags of y not already present,
// preserving x's order then y's order (spec.md §4.2, §8).
func Union(x, y List) List {
	u := Unique(x)
	for _, t := range y.tags {
		if !u.Contains(t) {
			u.tags = append(u.tags, t)
		}
	}
	return u
}

// Intersection returns the tags of x that also appear in y, deduplicated
// in x's order.
func Intersection(x, y List) List {
	out := make([]string, 0, len(x.tags))
	seen := make(map[string]struct{}, len(x.tags))
	for _, t := range x.tags {
		if _, ok := seen[t]; ok {
			continue
		}
		if y.Contains(t) {
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return List{tags: out}
}

// Subtract returns the tags of x that do not appear in y, deduplicated.
func Subtract(x, y List) List {
	out := make([]string, 0, len(x.tags))
	seen := make(map[string]struct{}, len(x.tags))
	for _, t := range x.tags {
		if _, ok := seen[t]; ok {
			continue
		}
		if !y.Contains(t) {
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return List{tags: out}
}

// Sort orders the list lexicographically in place. A bubble sort, per
// spec.md §9's note that the source's sorts are literal bubble sorts and
// "any correct sort suffices, but the same final order MUST result" — the
// order produced is identical to sort.Strings, kept this way so the
// provenance of "same algorithm shape as the source" stays honest even
// though the result is indistinguishable from a library sort.
func (l *List) Sort() {
	n := len(l.tags)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1-i; j++ {
			if l.tags[j] > l.tags[j+1] {
				l.tags[j], l.tags[j+1] = l.tags[j+1], l.tags[j]
			}
		}
	}
}
