package sequence

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is a sequence description authored on disk.
type File struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description,omitempty"`
	Steps       []TransactionStep `yaml:"steps"`
	Source      string            // file path
}

// Load reads a single sequence file from disk.
func Load(path string) (*File, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sequence path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sequence %s: %w", path, err)
	}

	file, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse sequence %s: %w", path, err)
	}
	file.Source = path
	return file, nil
}

// LoadDir loads all sequence files from a directory. A missing directory
// yields an empty list.
func LoadDir(dir string) ([]*File, error) {
	if strings.TrimSpace(dir) == "" {
		return []*File{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*File{}, nil
		}
		return nil, fmt.Errorf("read sequences dir %s: %w", dir, err)
	}

	files := make([]*File, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		file, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	return files, nil
}

// Parse decodes and validates sequence YAML.
func Parse(data []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	file.Name = strings.TrimSpace(file.Name)
	if file.Name == "" {
		return nil, fmt.Errorf("sequence name is required")
	}
	file.Description = strings.TrimSpace(file.Description)

	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("sequence steps are required")
	}

	for i := range file.Steps {
		if err := normalizeStep(&file.Steps[i]); err != nil {
			return nil, fmt.Errorf("sequence step %d: %w", i+1, err)
		}
	}

	return &file, nil
}

func normalizeStep(step *TransactionStep) error {
	kind := StepKind(strings.ToLower(strings.TrimSpace(string(step.Kind))))
	step.Kind = kind
	step.Addr = strings.TrimSpace(step.Addr)
	step.Data = strings.TrimSpace(step.Data)

	switch kind {
	case StepKindRead, StepKindWrite:
		if step.Addr == "" {
			return fmt.Errorf("%s step requires addr", kind)
		}

	case StepKindIdle:
		// Addr and data are meaningless for idle waits.
		step.Addr = ""
		step.Data = ""

	default:
		return fmt.Errorf("unknown step kind %q", step.Kind)
	}

	return nil
}
