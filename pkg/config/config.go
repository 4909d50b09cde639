package config

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	// DefaultPorts is the external:internal mapping used when -p is not given.
	DefaultPorts = "3000:3000"
)

// Config holds everything parsed from the command line for one invocation.
// It is built once at startup and passed down by value; nothing reads flag
// state after that.
type Config struct {
	Verbose     bool
	Daemonize   bool
	Environment string // development or production
	Link        string // volume mount (src:dst) overriding the default
	NoLinks     bool   // disable the default volume mount entirely
	Force       bool
	Ports       string // "ext:int"
	Service     string // target a named service container instead
}

// Default returns the configuration used when no flags are given.
func Default() Config {
	return Config{
		Environment: EnvDevelopment,
		Ports:       DefaultPorts,
	}
}

// Production reports whether this invocation targets the production container.
func (c Config) Production() bool {
	return c.Environment == EnvProduction
}
