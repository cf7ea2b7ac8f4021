package runner

const (
	DefaultWarmupRuns = 0
	DefaultRuns       = 1
)

type Config struct {
	WarmupRuns int
	Runs       int
	// Tags restricts every job to cases carrying one of them.
	Tags []string
}

func DefaultConfig() Config {
	return Config{
		WarmupRuns: DefaultWarmupRuns,
		Runs:       DefaultRuns,
	}
}
