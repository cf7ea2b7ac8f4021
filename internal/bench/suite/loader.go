package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type LoadedSuite struct {
	Suite    *TestSuite
	Registry *TemplateRegistry
}

func LoadFromFile(path string) (*LoadedSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*LoadedSuite, error) {
	var s TestSuite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}

	registry := NewTemplateRegistry()
	for _, t := range s.Templates {
		if t == nil {
			return nil, fmt.Errorf("register template: empty entry")
		}
		if err := registry.Register(t); err != nil {
			return nil, fmt.Errorf("register template: %w", err)
		}
	}

	seen := make(map[string]bool, len(s.Cases))
	for i := range s.Cases {
		c := &s.Cases[i]
		if c.ID == "" {
			return nil, fmt.Errorf("case at index %d has no id", i)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = true

		switch {
		case c.Expression != nil && c.Template != "":
			return nil, fmt.Errorf("case %q sets both expression and template", c.ID)
		case c.Expression == nil && c.Template == "":
			return nil, fmt.Errorf("case %q has no expression", c.ID)
		case c.Template != "":
			if _, err := c.ResolveExpression(registry); err != nil {
				return nil, fmt.Errorf("case %q: %w", c.ID, err)
			}
		}

		if err := c.Expect.Validate(); err != nil {
			return nil, fmt.Errorf("case %q: %w", c.ID, err)
		}
	}

	return &LoadedSuite{Suite: &s, Registry: registry}, nil
}
