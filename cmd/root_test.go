package cmd

import (
	"testing"

	"github.com/hustlecli/hustle/pkg/config"
)

func TestInvocationConfigDefaults(t *testing.T) {
	cfg := invocationConfig()

	if cfg.Environment != config.EnvDevelopment {
		t.Errorf("Environment = %v, want %v", cfg.Environment, config.EnvDevelopment)
	}
	if cfg.Ports != config.DefaultPorts {
		t.Errorf("Ports = %v, want %v", cfg.Ports, config.DefaultPorts)
	}
}

func TestForwardVerbUnrecognized(t *testing.T) {
	t.Setenv(config.RunAliasesEnvVar, "")

	err := forwardVerb(rootCmd, []string{"frobnicate"})
	if err == nil {
		t.Fatal("forwardVerb() with an unknown verb should error")
	}
	if got := err.Error(); got != `unrecognized command "frobnicate"` {
		t.Errorf("forwardVerb() error = %q", got)
	}
}
