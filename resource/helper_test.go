package resource

import (
	"testing"

	"github.com/sjquinney/lcfg-core/tag"
)

func mustTemplate(t *testing.T, s string) tag.Template {
	t.Helper()
	tmpl, err := tag.ParseTemplate(s)
	if err != nil {
		t.Fatalf("ParseTemplate(%q) error: %v", s, err)
	}
	return tmpl
}
