package app

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string // .hcl file or directory of fragments; may be empty

	LogFormat string
	LogLevel  string
}

// Invocation is one user request: the positional command tokens and the
// named options, already separated by the argument parser.
type Invocation struct {
	Tokens []string
	Named  map[string]string
}

// NewConfig applies defaults and returns the validated configuration.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return &cfg, nil
}
