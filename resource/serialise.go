package resource

import (
	"strconv"
	"strings"

	"github.com/sjquinney/lcfg-core/tag"
	"github.com/sjquinney/lcfg-core/types"
)

// specSymbol is the single-character type marker serialise_spec emits
// ahead of non-String resources. spec.md §4.1 only says "see §6" for this
// marker without spelling one out (§6's symbol table covers status-file
// lines, not the profile "spec" form); this table is this package's own
// resolution of that gap, kept distinct from the status-line symbols in
// types.Symbol so the two forms can't be confused for one another.
func specSymbol(t types.ResourceType) byte {
	switch t {
	case types.TypeInteger:
		return '#'
	case types.TypeBoolean:
		return '?'
	case types.TypeList:
		return '@'
	case types.TypePublish:
		return '<'
	case types.TypeSubscribe:
		return '>'
	default:
		return 0
	}
}

// SerialiseSpec renders `[sym][prefix.]name[CTX][= value]` (spec.md §4.1).
func (r *Resource) SerialiseSpec(prefix string, opts types.Option) string {
	var b strings.Builder
	if s := specSymbol(r.typ); s != 0 {
		b.WriteByte(s)
	}
	if prefix != "" {
		b.WriteString(prefix)
		b.WriteByte('.')
	}
	b.WriteString(r.name)
	if r.hasContext && !opts.Has(types.OptNoContext) {
		b.WriteByte('[')
		b.WriteString(r.context)
		b.WriteByte(']')
	}
	if !opts.Has(types.OptNoValue) {
		if v, ok := r.Value(); ok {
			b.WriteString("= ")
			if opts.Has(types.OptEncode) {
				b.WriteString(Encode(v))
			} else {
				b.WriteString(v)
			}
		}
	}
	return b.String()
}

// TypeString renders the %-line value grammar of spec.md §6:
// `typename ( '(' comment ')' )? ( ': ' templatestr )?`.
func (r *Resource) TypeString() string {
	var b strings.Builder
	b.WriteString(r.typ.String())
	if r.comment != "" {
		b.WriteString("(")
		b.WriteString(r.comment)
		b.WriteString(")")
	}
	if r.typ == types.TypeList && r.hasTmpl && !r.template.Empty() {
		b.WriteString(": ")
		b.WriteString(r.template.String())
	}
	return b.String()
}

// SerialiseStatus renders the resource's status-file lines: the value
// line, followed by a `%`-type line when the resource is not a plain
// String or carries a comment, followed by a `#`-derivation line when the
// derivation is non-empty (spec.md §4.3).
func (r *Resource) SerialiseStatus(prefix string) string {
	key := prefix + "." + r.name
	var lines []string
	v, _ := r.Value()
	lines = append(lines, key+"="+Encode(v))
	if r.typ != types.TypeString || r.comment != "" {
		lines = append(lines, "%"+key+"="+r.TypeString())
	}
	if r.derivation != "" {
		lines = append(lines, "#"+key+"="+r.derivation)
	}
	return strings.Join(lines, "\n") + "\n"
}

// SerialiseExport renders `export PFXname='value'` with `'` escaped as
// `'"'"'` (spec.md §6).
func (r *Resource) SerialiseExport(prefix string) string {
	v, _ := r.Value()
	return "export " + prefix + r.name + "='" + strings.ReplaceAll(v, "'", `'"'"'`) + "'"
}

// SetAttribute applies a parsed status line's right-hand side to the
// resource according to sym (spec.md §4.1): `%` sets type (and comment and
// template), `#` sets derivation, `^` sets priority (the value must parse
// as an integer), `.` sets context, and the zero Symbol sets the value.
// value has already been entity-decoded by the caller for the zero
// Symbol; the other symbols carry plain text.
func (r *Resource) SetAttribute(sym types.Symbol, value string) error {
	switch sym {
	case types.SymbolType:
		return r.setFromTypeString(value)
	case types.SymbolDeriv:
		r.SetDerivation(value)
		return nil
	case types.SymbolPriority:
		p, err := strconv.Atoi(value)
		if err != nil {
			return types.NewError(types.Parse, "priority "+value, err)
		}
		r.SetPriority(p)
		return nil
	case types.SymbolContext:
		r.SetContext(value)
		return nil
	default:
		return r.SetValue(value)
	}
}

// setFromTypeString parses the %-line grammar of spec.md §6 and applies
// type, comment, and (for list types) template to r.
func (r *Resource) setFromTypeString(s string) error {
	typename := s
	comment := ""
	templateStr := ""

	if idx := strings.Index(typename, ": "); idx >= 0 {
		templateStr = typename[idx+2:]
		typename = typename[:idx]
	}
	if open := strings.IndexByte(typename, '('); open >= 0 && strings.HasSuffix(typename, ")") {
		comment = typename[open+1 : len(typename)-1]
		typename = typename[:open]
	}

	newType := types.ParseResourceType(typename)
	if err := r.SetType(newType); err != nil {
		return err
	}
	r.SetComment(comment)
	if newType == types.TypeList && templateStr != "" {
		t, err := tag.ParseTemplate(templateStr)
		if err != nil {
			return err
		}
		if err := r.SetTemplate(t); err != nil {
			return err
		}
	}
	return nil
}
