package arch

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/components.yaml
var builtinFS embed.FS

// Info carries the display material for one architecture component.
type Info struct {
	Component   Component `yaml:"component"`
	Label       string    `yaml:"label"`
	Summary     string    `yaml:"summary"`
	Description string    `yaml:"description"`
	Code        string    `yaml:"code,omitempty"`
}

// Catalog maps components to their display material, preserving diagram order.
type Catalog struct {
	infos map[Component]Info
}

// LoadCatalog parses the bundled component catalog.
func LoadCatalog() (*Catalog, error) {
	data, err := builtinFS.ReadFile("builtin/components.yaml")
	if err != nil {
		return nil, fmt.Errorf("read builtin catalog: %w", err)
	}

	var entries []Info
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse builtin catalog: %w", err)
	}

	infos := make(map[Component]Info, len(entries))
	for _, entry := range entries {
		if !entry.Component.Valid() {
			return nil, fmt.Errorf("builtin catalog: unknown component %q", entry.Component)
		}
		if entry.Label == "" {
			return nil, fmt.Errorf("builtin catalog: component %q missing label", entry.Component)
		}
		if _, dup := infos[entry.Component]; dup {
			return nil, fmt.Errorf("builtin catalog: duplicate component %q", entry.Component)
		}
		infos[entry.Component] = entry
	}

	for _, c := range Components() {
		if _, ok := infos[c]; !ok {
			return nil, fmt.Errorf("builtin catalog: component %q missing", c)
		}
	}

	return &Catalog{infos: infos}, nil
}

// Describe returns the display material for a component.
func (c *Catalog) Describe(component Component) (Info, bool) {
	info, ok := c.infos[component]
	return info, ok
}

// All returns catalog entries in diagram order.
func (c *Catalog) All() []Info {
	out := make([]Info, 0, len(c.infos))
	for _, component := range Components() {
		out = append(out, c.infos[component])
	}
	return out
}
