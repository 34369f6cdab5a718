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

// Package types defines the core value types shared across the LCFG core
// engine: resource types, change/status codes, the on-disk symbol grammar,
// the generic Configuration map, and the ContextEvaluator collaborator
// interface that every priority computation is routed through.
package types

// ResourceType is the type of a Resource's value.
type ResourceType int

const (
	// TypeString is the default resource type; any byte sequence is valid.
	TypeString ResourceType = iota
	TypeInteger
	TypeBoolean
	TypeList
	// TypePublish and TypeSubscribe validate identically to TypeString but
	// are distinct so that spanning-map/publish-subscribe callers can tell
	// them apart (spec.md §3).
	TypePublish
	TypeSubscribe
)

// String renders the canonical type name used in status-file %-lines and
// error messages.
func (t ResourceType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInteger:
		return "integer"
	case TypeBoolean:
		return "boolean"
	case TypeList:
		return "list"
	case TypePublish:
		return "publish"
	case TypeSubscribe:
		return "subscribe"
	default:
		return "string"
	}
}

// ParseResourceType parses a type name as it appears on a status-file %-line
// (spec.md §6's typestr grammar). An empty or unrecognised name resolves to
// TypeString.
func ParseResourceType(s string) ResourceType {
	switch s {
	case "integer":
		return TypeInteger
	case "boolean":
		return TypeBoolean
	case "list":
		return TypeList
	case "publish":
		return TypePublish
	case "subscribe":
		return TypeSubscribe
	default:
		return TypeString
	}
}

// ChangeCode is the outcome of a mutating operation: merge, diff
// classification, or tag-list mutation. Values are distinct but their
// integers are otherwise implementation-defined (spec.md §6).
type ChangeCode int

const (
	ChangeNone ChangeCode = iota
	ChangeAdded
	ChangeRemoved
	ChangeModified
	ChangeReplaced
	ChangeError
)

func (c ChangeCode) String() string {
	switch c {
	case ChangeNone:
		return "NONE"
	case ChangeAdded:
		return "ADDED"
	case ChangeRemoved:
		return "REMOVED"
	case ChangeModified:
		return "MODIFIED"
	case ChangeReplaced:
		return "REPLACED"
	case ChangeError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// StatusCode is a coarse health indicator returned by batch operations such
// as directory loads.
type StatusCode int

const (
	StatusOK StatusCode = iota
	StatusWarn
	StatusError
)

func (s StatusCode) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarn:
		return "WARN"
	case StatusError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Symbol is the optional leading character of a status-file line (spec.md
// §4.3/§6) identifying which Resource attribute the line sets.
type Symbol byte

const (
	// SymbolValue is the zero Symbol: the line sets the resource's value.
	SymbolValue    Symbol = 0
	SymbolType     Symbol = '%'
	SymbolDeriv    Symbol = '#'
	SymbolPriority Symbol = '^'
	SymbolContext  Symbol = '.'
)

// Configuration is a generic, JSON/map-shaped bag of options, decoded into
// typed structs with mapstructure at the point of use (mirrors the
// teacher's types.Configuration used by every component Init).
type Configuration map[string]any

// Option flags, bit-ORed, controlling resource/component serialisation
// (spec.md §6).
type Option uint32

const (
	OptAllPriorities Option = 1 << iota
	OptAllValues
	OptUseMeta
	OptEncode
	OptNewline
	OptNoValue
	OptNoContext
	OptNoTemplates
	OptAllowNoExist
)

// Has reports whether flag is set in opts.
func (opts Option) Has(flag Option) bool {
	return opts&flag != 0
}

// ContextEvaluator is the external collaborator spec.md §1 carves out of
// core scope: given a context expression and the context tag list currently
// in effect, it returns the signed priority that expression evaluates to.
// The core engine never interprets context-expression syntax itself; it
// only calls this collaborator and stores the resulting integer.
type ContextEvaluator interface {
	Evaluate(expr string, ctx []string) (int, error)
}

// ValidateName reports whether s matches the name grammar shared by
// resources, components, and tags: `[A-Za-z][A-Za-z0-9_]*` (spec.md §3).
// Names are restricted to this small ASCII subset by design (spec.md §1
// Non-goals: no Unicode-aware validation).
func ValidateName(s string) bool {
	if len(s) == 0 {
		return false
	}
	c := s[0]
	if !(c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z') {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !(c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_') {
			return false
		}
	}
	return true
}
