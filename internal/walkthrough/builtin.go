package walkthrough

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/lifecycle.yaml
var builtinFS embed.FS

// LoadBuiltinSteps returns the bundled transaction-lifecycle script.
func LoadBuiltinSteps() ([]Step, error) {
	data, err := builtinFS.ReadFile("builtin/lifecycle.yaml")
	if err != nil {
		return nil, fmt.Errorf("read builtin walkthrough: %w", err)
	}
	return parseSteps(data)
}

func parseSteps(data []byte) ([]Step, error) {
	var steps []Step
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("parse walkthrough steps: %w", err)
	}

	if len(steps) == 0 {
		return nil, fmt.Errorf("walkthrough script is empty")
	}

	for i, step := range steps {
		if step.Index != i {
			return nil, fmt.Errorf("walkthrough step %d: index %d out of order", i, step.Index)
		}
		if step.Title == "" {
			return nil, fmt.Errorf("walkthrough step %d: missing title", i)
		}
		if !step.Component.Valid() {
			return nil, fmt.Errorf("walkthrough step %d: unknown component %q", i, step.Component)
		}
	}

	return steps, nil
}
