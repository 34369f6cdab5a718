/*
 * Copyright 2023 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package resource implements Resource (spec.md §3, §4.1): the atomic
// configuration unit — name, value, type, template, context, derivation,
// comment, and priority — along with its validation and every
// serialisation form (spec, status, export, key) the rest of the engine
// round-trips it through.
package resource

import (
	"strconv"
	"strings"

	"github.com/sjquinney/lcfg-core/refcount"
	"github.com/sjquinney/lcfg-core/tag"
	"github.com/sjquinney/lcfg-core/types"
)

// Resource is the atomic unit of configuration: a typed, named attribute
// carrying its own provenance and activation priority. Resources are
// shared by reference counting (spec.md §5); New sets the initial share to
// 1, and every container that retains a Resource must call Acquire/Release
// around its own hold on it.
type Resource struct {
	refs refcount.Counter

	name       string
	value      *string
	typ        types.ResourceType
	template   tag.Template
	hasTmpl    bool
	context    string
	hasContext bool
	derivation string
	comment    string
	priority   int
}

// New creates a Resource named name with an initial share count of 1.
func New(name string) (*Resource, error) {
	if !types.ValidateName(name) {
		return nil, types.NewError(types.Validation, "resource name "+name, nil)
	}
	r := &Resource{name: name, typ: types.TypeString}
	r.refs.Acquire()
	return r, nil
}

// Acquire adds one share of r.
func (r *Resource) Acquire() { r.refs.Acquire() }

// Release removes one share of r, returning the remaining count.
func (r *Resource) Release() int32 { return r.refs.Release() }

// Shares returns the current share count.
func (r *Resource) Shares() int32 { return r.refs.Count() }

// Name returns the resource's name.
func (r *Resource) Name() string { return r.name }

// SetName validates and, on success, replaces the resource's name. On
// failure r is unchanged.
func (r *Resource) SetName(name string) error {
	if !types.ValidateName(name) {
		return types.NewError(types.Validation, "resource name "+name, nil)
	}
	r.name = name
	return nil
}

// Value returns the resource's value and whether one is set.
func (r *Resource) Value() (string, bool) {
	if r.value == nil {
		return "", false
	}
	return *r.value, true
}

// Type returns the resource's type.
func (r *Resource) Type() types.ResourceType { return r.typ }

// SetValue validates new against the resource's current type and, on
// success, replaces the value (in canonical form — e.g. booleans are
// canonicalised to "yes" or ""). On failure r is unchanged.
func (r *Resource) SetValue(new string) error {
	canon, err := ValidateValue(r.typ, new)
	if err != nil {
		return err
	}
	r.value = &canon
	return nil
}

// ClearValue removes the resource's value, returning it to the "no value"
// state.
func (r *Resource) ClearValue() { r.value = nil }

// SetType validates the resource's current value (if any) against new and,
// only if it still validates, changes the type (spec.md §3 invariant: "a
// resource's type may only change if the current value, if any, validates
// under the new type").
func (r *Resource) SetType(new types.ResourceType) error {
	if r.value != nil {
		canon, err := ValidateValue(new, *r.value)
		if err != nil {
			return err
		}
		r.value = &canon
	}
	r.typ = new
	return nil
}

// Context returns the resource's context expression and whether one is set.
func (r *Resource) Context() (string, bool) {
	return r.context, r.hasContext
}

// SetContext replaces the context expression. Context-expression syntax is
// an external collaborator's concern (spec.md §1); this only stores the
// string.
func (r *Resource) SetContext(expr string) {
	r.context = expr
	r.hasContext = true
}

// ClearContext removes the context expression.
func (r *Resource) ClearContext() {
	r.context = ""
	r.hasContext = false
}

// Derivation returns the provenance trail.
func (r *Resource) Derivation() string { return r.derivation }

// SetDerivation replaces the derivation trail wholesale (used when loading
// a `#`-symbol status line, where the last setter for an attribute wins).
func (r *Resource) SetDerivation(d string) { r.derivation = d }

// AddDerivation idempotently appends extra to the derivation trail with a
// single space, unless extra is already a substring of it. Per spec.md §9
// this is a literal substring test, not a token containment test — e.g.
// re-adding "file:10" when "file:100" is already present silently
// succeeds without appending. That behaviour is preserved deliberately.
func (r *Resource) AddDerivation(extra string) {
	if extra == "" {
		return
	}
	if strings.Contains(r.derivation, extra) {
		return
	}
	if r.derivation == "" {
		r.derivation = extra
	} else {
		r.derivation = r.derivation + " " + extra
	}
}

// Comment returns the free-form comment, usually describing expected
// value syntax for String-like resources.
func (r *Resource) Comment() string { return r.comment }

// SetComment replaces the comment.
func (r *Resource) SetComment(c string) { r.comment = c }

// Template returns the resource's list-expansion template, if any. Only
// meaningful (and only settable) when Type() == types.TypeList.
func (r *Resource) Template() (tag.Template, bool) {
	return r.template, r.hasTmpl
}

// SetTemplate attaches t to the resource. Fails with Validation if the
// resource's type is not TypeList.
func (r *Resource) SetTemplate(t tag.Template) error {
	if r.typ != types.TypeList {
		return types.NewError(types.Validation, "template on non-list resource "+r.name, nil)
	}
	r.template = t
	r.hasTmpl = true
	return nil
}

// ClearTemplate removes the resource's template.
func (r *Resource) ClearTemplate() {
	r.template = tag.Template{}
	r.hasTmpl = false
}

// Priority returns the resource's current priority.
func (r *Resource) Priority() int { return r.priority }

// SetPriority directly sets the priority, bypassing context evaluation
// (used when loading a `^`-symbol status line).
func (r *Resource) SetPriority(p int) { r.priority = p }

// IsActive reports whether the resource's priority is non-negative: active
// resources are included in merges, diffs, and emitted output; inactive
// ones (priority < 0, meaning their defining context is currently
// unsatisfied) are excluded from almost all of it (spec.md §3).
func (r *Resource) IsActive() bool { return r.priority >= 0 }

// EvalPriority asks ev to evaluate the resource's context expression
// against ctx and stores the resulting priority. If the resource has no
// context, priority is set to 0 without consulting ev.
func (r *Resource) EvalPriority(ev types.ContextEvaluator, ctx []string) error {
	if !r.hasContext {
		r.priority = 0
		return nil
	}
	if ev == nil {
		return types.NewError(types.Validation, "no context evaluator configured", nil)
	}
	p, err := ev.Evaluate(r.context, ctx)
	if err != nil {
		return types.NewError(types.Validation, "context "+r.context, err)
	}
	r.priority = p
	return nil
}

// Clone returns a new, independently-owned Resource (share count 1) with
// the same attributes as r.
func (r *Resource) Clone() *Resource {
	c := &Resource{
		name:       r.name,
		typ:        r.typ,
		template:   r.template,
		hasTmpl:    r.hasTmpl,
		context:    r.context,
		hasContext: r.hasContext,
		derivation: r.derivation,
		comment:    r.comment,
		priority:   r.priority,
	}
	if r.value != nil {
		v := *r.value
		c.value = &v
	}
	c.refs.Acquire()
	return c
}

// CopyAttributesFrom overwrites r's value, type, template, context,
// derivation, comment, and priority with other's, leaving r's name and
// share count untouched. Used by the merge policy (spec.md §4.5) when an
// incoming resource wins and replaces a target's attributes in place,
// without disturbing whatever else already holds a share of r.
func (r *Resource) CopyAttributesFrom(other *Resource) {
	r.value = nil
	if other.value != nil {
		v := *other.value
		r.value = &v
	}
	r.typ = other.typ
	r.template = other.template
	r.hasTmpl = other.hasTmpl
	r.context = other.context
	r.hasContext = other.hasContext
	r.derivation = other.derivation
	r.comment = other.comment
	r.priority = other.priority
}

// ValidateValue canonicalises and validates value against typ, per
// spec.md §3:
//   - Integer: optional leading '-' then one or more ASCII digits.
//   - Boolean: {true,yes,on,1} (any case) canonicalise to "yes";
//     {false,no,off,0,""} (any case) canonicalise to "" (false); anything
//     else is invalid.
//   - List: a space-separated sequence of valid tags; the canonical form
//     re-joins the tags with single spaces.
//   - String/Publish/Subscribe: any byte sequence, unchanged.
func ValidateValue(typ types.ResourceType, value string) (string, error) {
	switch typ {
	case types.TypeInteger:
		if !validInteger(value) {
			return "", types.NewError(types.Validation, "integer value "+value, nil)
		}
		return value, nil
	case types.TypeBoolean:
		return canonicalBoolean(value)
	case types.TypeList:
		l, err := tag.FromString(value)
		if err != nil {
			return "", err
		}
		return l.String(false), nil
	default:
		return value, nil
	}
}

func validInteger(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '-' {
		i = 1
	}
	if i == len(s) {
		return false
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func canonicalBoolean(s string) (string, error) {
	switch strings.ToLower(s) {
	case "true", "yes", "on", "1":
		return "yes", nil
	case "false", "no", "off", "0", "":
		return "", nil
	default:
		return "", types.NewError(types.Validation, "boolean value "+s, nil)
	}
}

// parseInt parses s as a base-10 integer, returning 0 if it does not parse
// (used by SameValue's numeric comparison, which treats a malformed value
// the same way the strtol-style source parser would: as zero).
func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
