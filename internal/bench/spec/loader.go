package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*BenchSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spec file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, err
	}
	s.Dir = filepath.Dir(path)
	return s, nil
}

func Parse(data []byte) (*BenchSpec, error) {
	var s BenchSpec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse spec YAML: %w", err)
	}
	if err := validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SuitePath resolves the job's suite file against the spec directory.
func (s *BenchSpec) SuitePath(j Job) string {
	if filepath.IsAbs(j.Suite) || s.Dir == "" {
		return j.Suite
	}
	return filepath.Join(s.Dir, j.Suite)
}

var validEngineTypes = map[string]bool{
	EngineNative: true,
	EngineAPI:    true,
}

func validate(s *BenchSpec) error {
	if len(s.Jobs) == 0 {
		return fmt.Errorf("spec has no jobs")
	}
	if len(s.Engines) == 0 {
		return fmt.Errorf("spec has no engines")
	}
	for i, j := range s.Jobs {
		if j.Name == "" {
			return fmt.Errorf("job at index %d has no name", i)
		}
		if j.Suite == "" {
			return fmt.Errorf("job %q has no suite", j.Name)
		}
		if len(j.Engines) == 0 {
			return fmt.Errorf("job %q has no engines", j.Name)
		}
		for _, engRef := range j.Engines {
			if _, ok := s.Engines[engRef]; !ok {
				return fmt.Errorf("job %q references unknown engine %q", j.Name, engRef)
			}
		}
	}
	for name, eng := range s.Engines {
		if eng.Type == "" {
			return fmt.Errorf("engine %q has no type", name)
		}
		if !validEngineTypes[eng.Type] {
			return fmt.Errorf("engine %q has invalid type %q", name, eng.Type)
		}
		if eng.Type == EngineAPI && eng.Connection == "" {
			return fmt.Errorf("engine %q has no connection", name)
		}
		if eng.Timeout < 0 {
			return fmt.Errorf("engine %q has negative timeout", name)
		}
	}
	if s.Runs.Warmup < 0 {
		s.Runs.Warmup = 0
	}
	if s.Runs.Iterations <= 0 {
		s.Runs.Iterations = 1
	}
	return nil
}
