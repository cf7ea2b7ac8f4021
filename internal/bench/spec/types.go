package spec

import "time"

const (
	EngineNative = "native"
	EngineAPI    = "api"
)

type BenchSpec struct {
	Jobs    []Job             `yaml:"jobs" schema:"required,minItems=1"`
	Engines map[string]Engine `yaml:"engines" schema:"required"`
	Runs    RunsConfig        `yaml:"runs"`

	// Dir is the directory of the spec file; relative suite paths resolve
	// against it.
	Dir string `yaml:"-"`
}

type Job struct {
	Name    string   `yaml:"name" schema:"required"`
	Suite   string   `yaml:"suite" schema:"required"`
	Engines []string `yaml:"engines" schema:"required,minItems=1"`
}

type Engine struct {
	Type       string        `yaml:"type" schema:"required,enum=native|api"`
	Connection string        `yaml:"connection,omitempty"`
	Timeout    time.Duration `yaml:"timeout,omitempty"`
}

type RunsConfig struct {
	Warmup     int `yaml:"warmup" schema:"minimum=0"`
	Iterations int `yaml:"iterations" schema:"minimum=0"`
}
