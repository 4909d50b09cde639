// Package engine sequences lifecycle verbs into container-engine commands.
// Compound verbs run their steps strictly in order and stop at the first
// failing step.
package engine

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/hustlecli/hustle/pkg/catalog"
	"github.com/hustlecli/hustle/pkg/config"
	"github.com/hustlecli/hustle/pkg/container"
	"github.com/hustlecli/hustle/pkg/envfile"
)

// Runner executes resolved commands. Capture blocks and reports the exit
// status; Replace swaps the process image and never returns on success.
type Runner interface {
	Capture(cmd catalog.Command) (string, int, error)
	Replace(cmd catalog.Command) error
}

// ExitError reports a failed external command; its status propagates to the
// process exit code.
type ExitError struct {
	Cmd    string
	Status int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command %q exited with status %d", e.Cmd, e.Status)
}

// Engine drives one invocation against one resolved container identity.
type Engine struct {
	cfg      config.Config
	mode     catalog.Mode
	identity string
	runner   Runner
	log      *log.Logger
	envPath  string
}

// New builds an engine. The identity may be empty only for the "new" verb,
// which generates and persists it.
func New(cfg config.Config, mode catalog.Mode, identity string, runner Runner, logger *log.Logger) *Engine {
	return &Engine{
		cfg:      cfg,
		mode:     mode,
		identity: identity,
		runner:   runner,
		log:      logger,
		envPath:  envfile.DefaultPath,
	}
}

// SetEnvPath overrides where the generated identity is persisted.
func (e *Engine) SetEnvPath(path string) {
	e.envPath = path
}

func (e *Engine) step(verb catalog.Verb) error {
	cmd := catalog.BuildCmd(verb, e.mode, e.cfg, e.identity)
	if cmd.Empty() {
		e.log.Debug("step is a no-op", "verb", verb.String(), "mode", e.mode.String())
		return nil
	}
	return e.capture(cmd)
}

func (e *Engine) capture(cmd catalog.Command) error {
	out, status, err := e.runner.Capture(cmd)
	if out != "" {
		fmt.Print(out)
	}
	if err != nil {
		return &ExitError{Cmd: cmd.String(), Status: status}
	}
	e.log.Debug("step succeeded", "cmd", cmd.String())
	return nil
}

// Start boots the container: "run" with ports, link and daemonize flags in
// direct mode, "up" in compose mode.
func (e *Engine) Start() error {
	return e.step(catalog.Start)
}

func (e *Engine) Stop() error {
	return e.step(catalog.Stop)
}

func (e *Engine) Remove() error {
	return e.step(catalog.Remove)
}

func (e *Engine) RemoveImage() error {
	return e.step(catalog.RemoveImage)
}

func (e *Engine) Build() error {
	return e.step(catalog.Build)
}

// StopAndRemove stops the container then removes it. Compose mode collapses
// to a single "down", which already removes.
func (e *Engine) StopAndRemove() error {
	if e.mode == catalog.ModeCompose {
		return e.Stop()
	}
	if err := e.Stop(); err != nil {
		return err
	}
	return e.Remove()
}

// Restart stops and removes the container, then starts a fresh one.
func (e *Engine) Restart() error {
	if err := e.StopAndRemove(); err != nil {
		return err
	}
	return e.Start()
}

// Pristine stops and removes the container, then removes its image.
func (e *Engine) Pristine() error {
	if err := e.StopAndRemove(); err != nil {
		return err
	}
	return e.RemoveImage()
}

// NewProject bootstraps a project from a base image: generate and persist a
// fresh identity, boot the base image itself (not the derived identity),
// copy its /app tree into the working directory, tear the container down,
// and build the dev image from the copied sources.
func (e *Engine) NewProject(baseImage string) error {
	name, err := container.GenerateName(baseImage)
	if err != nil {
		return err
	}

	if _, err := os.Stat(e.envPath); err == nil && !e.cfg.Force {
		return fmt.Errorf("%s already exists; pass --force to overwrite it", e.envPath)
	}

	if err := envfile.Save(e.envPath, map[string]string{envfile.ContainerNameKey: name}); err != nil {
		return err
	}
	e.identity = name
	e.log.Debug("persisted container name", "name", name)

	if err := e.capture(catalog.Command{Args: []string{"run", "-d", "--name", name, baseImage}}); err != nil {
		return err
	}
	if err := e.capture(catalog.Command{Args: []string{"cp", name + ":/app", "."}}); err != nil {
		return err
	}
	if err := e.StopAndRemove(); err != nil {
		return err
	}
	return e.Build()
}

// Run executes a command inside the container and returns to the caller.
func (e *Engine) Run(argv []string) error {
	return e.capture(catalog.BuildExec(e.identity, strings.Join(argv, " ")))
}

// RunHard executes a command inside the container, replacing the current
// process. It only returns on failure to exec.
func (e *Engine) RunHard(argv []string) error {
	return e.runner.Replace(catalog.BuildExec(e.identity, strings.Join(argv, " ")))
}

// Shell replaces the process with an interactive container shell.
func (e *Engine) Shell() error {
	return e.runner.Replace(catalog.BuildCmd(catalog.Shell, catalog.ModeDirect, e.cfg, e.identity))
}

// Debug replaces the process with a bash entrypoint on a fresh container.
func (e *Engine) Debug() error {
	return e.runner.Replace(catalog.BuildCmd(catalog.Debug, catalog.ModeDirect, e.cfg, e.identity))
}

// Identity returns the container name this engine targets.
func (e *Engine) Identity() string {
	return e.identity
}
