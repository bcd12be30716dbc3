package htmltag_test

import (
	"os"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-htmltag"
)

type composeCase struct {
	Name      string   `yaml:"name"`
	Fragments []string `yaml:"fragments"`
	Values    []any    `yaml:"values"`
	Want      string   `yaml:"want"`
}

func mustLoadComposeCases(t *testing.T, path string) []composeCase {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("load cases: %v", err)
	}
	var cases []composeCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		t.Fatalf("unmarshal cases: %v", err)
	}
	if len(cases) == 0 {
		t.Fatalf("no cases found in %s", path)
	}
	return cases
}

// fixtureValues wraps `{trusted: ...}` mappings with htmltag.Trusted.
func fixtureValues(t *testing.T, raw []any) []any {
	t.Helper()

	values := make([]any, len(raw))
	for i, value := range raw {
		mapping, ok := value.(map[string]any)
		if !ok {
			values[i] = value
			continue
		}
		payload, ok := mapping["trusted"].(string)
		if !ok {
			t.Fatalf("value %d: unsupported mapping %v", i, mapping)
		}
		values[i] = htmltag.Trusted(payload)
	}
	return values
}
