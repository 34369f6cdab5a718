package resource

import (
	"testing"

	"github.com/sjquinney/lcfg-core/types"
)

func TestParseKey(t *testing.T) {
	cases := []struct {
		raw  string
		want Key
	}{
		{"eth0", Key{Symbol: types.SymbolValue, Res: "eth0"}},
		{"net.eth0", Key{Symbol: types.SymbolValue, Comp: "net", Res: "eth0"}},
		{"host1.net.eth0", Key{Symbol: types.SymbolValue, Host: "host1", Comp: "net", Res: "eth0"}},
		{"%net.eth0", Key{Symbol: types.SymbolType, Comp: "net", Res: "eth0"}},
		{"#net.eth0", Key{Symbol: types.SymbolDeriv, Comp: "net", Res: "eth0"}},
		{"^net.eth0", Key{Symbol: types.SymbolPriority, Comp: "net", Res: "eth0"}},
		{".net.eth0", Key{Symbol: types.SymbolContext, Comp: "net", Res: "eth0"}},
		{"a.b.net.eth0", Key{Symbol: types.SymbolValue, Host: "a.b", Comp: "net", Res: "eth0"}},
	}
	for _, tc := range cases {
		got, err := ParseKey(tc.raw)
		if err != nil {
			t.Errorf("ParseKey(%q) unexpected error: %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseKey(%q) = %+v, want %+v", tc.raw, got, tc.want)
		}
	}
}

func TestParseKeyErrors(t *testing.T) {
	bad := []string{"", "%", ".", "net.", "..eth0", "net..eth0", "net.0eth"}
	for _, raw := range bad {
		if _, err := ParseKey(raw); err == nil {
			t.Errorf("ParseKey(%q) expected error, got none", raw)
		}
	}
}
