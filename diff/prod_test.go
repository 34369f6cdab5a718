package diff

import (
	"testing"

	"github.com/sjquinney/lcfg-core/types"
)

func TestIsProddedTrueWhenNgProdAddedWithValue(t *testing.T) {
	c1 := mustComponent(t, "auth", map[string]string{"version": "1"})
	c2 := mustComponent(t, "auth", map[string]string{"version": "1", "ng_prod": "1"})

	cd, err := DiffComponent(c1, c2)
	if err != nil {
		t.Fatal(err)
	}
	if !IsProdded(cd) {
		t.Error("expected IsProdded true when ng_prod is added with a non-empty value")
	}
}

func TestIsProddedFalseWithoutNgProd(t *testing.T) {
	c1 := mustComponent(t, "auth", map[string]string{"version": "1"})
	c2 := mustComponent(t, "auth", map[string]string{"version": "2"})

	cd, err := DiffComponent(c1, c2)
	if err != nil {
		t.Fatal(err)
	}
	if IsProdded(cd) {
		t.Error("expected IsProdded false without an ng_prod diff")
	}
}

func TestIsProddedFalseWhenAggregateUnchanged(t *testing.T) {
	cd := &Component{Name: "auth", Change: types.ChangeNone}
	if IsProdded(cd) {
		t.Error("expected IsProdded false when aggregate Change is not MODIFIED")
	}
}

func TestIsProddedFalseWhenNgProdValueEmpty(t *testing.T) {
	c1 := mustComponent(t, "auth", map[string]string{"version": "1"})
	c2 := mustComponent(t, "auth", map[string]string{"version": "1", "ng_prod": ""})

	cd, err := DiffComponent(c1, c2)
	if err != nil {
		t.Fatal(err)
	}
	if IsProdded(cd) {
		t.Error("expected IsProdded false when ng_prod's new value is empty")
	}
}
