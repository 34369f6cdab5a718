package resource

import "strings"

var encoder = strings.NewReplacer("&", "&#x26;", "\r", "&#xD;", "\n", "&#xA;")
var decoder = strings.NewReplacer("&#x26;", "&", "&#xD;", "\r", "&#xA;", "\n")

// Encode escapes CR, LF, and & in a resource value for a status-file
// value line, per spec.md §4.3/§6.
func Encode(s string) string {
	return encoder.Replace(s)
}

// Decode reverses Encode. decode(encode(v)) == v for every byte string v
// (spec.md §8).
func Decode(s string) string {
	return decoder.Replace(s)
}
