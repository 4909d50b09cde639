// Package catalog maps (verb, mode) pairs onto container-engine commands.
// Commands are built as structured argument lists and only flattened to a
// single string at the execution and logging boundary.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hustlecli/hustle/pkg/config"
)

// Verb is the closed set of atomic operations the engine knows how to emit.
type Verb int

const (
	Start Verb = iota
	Stop
	Remove
	RemoveImage
	Build
	Debug
	Shell
)

func (v Verb) String() string {
	switch v {
	case Start:
		return "start"
	case Stop:
		return "stop"
	case Remove:
		return "remove"
	case RemoveImage:
		return "remove-image"
	case Build:
		return "build"
	case Debug:
		return "debug"
	case Shell:
		return "shell"
	}
	return fmt.Sprintf("verb(%d)", int(v))
}

// Mode selects between direct engine invocations and compose invocations.
type Mode int

const (
	ModeDirect Mode = iota
	ModeCompose
)

func (m Mode) String() string {
	if m == ModeCompose {
		return "compose"
	}
	return "direct"
}

// ComposeManifest is the file whose presence in the working directory
// switches command construction to compose mode.
const ComposeManifest = "docker-compose.yaml"

// DetectMode probes dir for a compose manifest. Re-evaluated on every
// invocation, never cached across runs.
func DetectMode(dir string) Mode {
	if _, err := os.Stat(filepath.Join(dir, ComposeManifest)); err == nil {
		return ModeCompose
	}
	return ModeDirect
}

// Command is a resolved engine invocation: the argv passed to the container
// CLI (or its compose companion), without the binary itself.
type Command struct {
	Compose bool
	Args    []string
}

// Empty reports whether the command is a no-op (compose mode has no remove).
func (c Command) Empty() bool {
	return len(c.Args) == 0
}

// String flattens the argv with single spaces, which is also the whitespace
// normalization of the final command line.
func (c Command) String() string {
	return strings.Join(c.Args, " ")
}

// BuildCmd maps a verb to its command for the given mode. Compose mode only
// covers start, stop and build; every other verb falls back to the direct
// template.
func BuildCmd(verb Verb, mode Mode, cfg config.Config, identity string) Command {
	if mode == ModeCompose {
		switch verb {
		case Start:
			args := []string{"up"}
			if cfg.Daemonize {
				args = append(args, "-d")
			}
			return Command{Compose: true, Args: args}
		case Stop:
			return Command{Compose: true, Args: []string{"down"}}
		case Build:
			return Command{Compose: true, Args: []string{"build"}}
		case Remove:
			// compose down already removes; nothing left to do
			return Command{Compose: true}
		}
	}

	switch verb {
	case Start:
		args := []string{"run", "-p", cfg.Ports}
		args = append(args, linkArgs(cfg)...)
		if cfg.Daemonize {
			args = append(args, "-d")
		}
		return Command{Args: append(args, "--name", identity, identity)}
	case Stop:
		return Command{Args: []string{"stop", identity}}
	case Remove:
		return Command{Args: []string{"rm", identity}}
	case RemoveImage:
		return Command{Args: []string{"rmi", identity}}
	case Build:
		return Command{Args: []string{"build", ".", "--no-cache=true", "-t", identity}}
	case Debug:
		return Command{Args: []string{"run", "-it", "--entrypoint=/bin/bash", identity, "-s"}}
	case Shell:
		return Command{Args: []string{"exec", "-i", "-t", identity, "sh", "-c", "/bin/bash"}}
	}
	return Command{}
}

// BuildExec wraps an arbitrary in-container command line.
func BuildExec(identity string, command string) Command {
	return Command{Args: []string{"exec", "-i", "-t", identity, "sh", "-c", command}}
}

// linkArgs resolves the volume mount: --no-links disables it, -l overrides
// it, otherwise the working directory's myapp tree is mounted at /myapp.
func linkArgs(cfg config.Config) []string {
	if cfg.NoLinks {
		return nil
	}
	mount := cfg.Link
	if mount == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil
		}
		mount = filepath.Join(wd, "myapp") + ":/myapp"
	}
	return []string{"-v", mount}
}

// MountTarget returns the in-container side of the configured volume mount.
func MountTarget(cfg config.Config) string {
	if cfg.Link != "" {
		if i := strings.LastIndex(cfg.Link, ":"); i >= 0 && i < len(cfg.Link)-1 {
			return cfg.Link[i+1:]
		}
	}
	return "/myapp"
}
