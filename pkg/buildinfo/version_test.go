package buildinfo

import (
	"strings"
	"testing"
)

func TestStringIncludesFields(t *testing.T) {
	old := Version
	Version = "v9.9.9"
	defer func() { Version = old }()

	s := String()
	for _, want := range []string{"v9.9.9", Commit, Date} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func TestTemplateUsesName(t *testing.T) {
	if !strings.HasPrefix(Template(), "{{.Name}} ") {
		t.Errorf("Template() = %q, want {{.Name}} prefix", Template())
	}
}
