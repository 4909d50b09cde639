// Package docker shells out to a docker-compatible CLI. It is the execution
// boundary: everything above it deals in structured commands.
package docker

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/hustlecli/hustle/pkg/catalog"
)

// Client handles container CLI interactions.
type Client struct {
	cmd string
	log *log.Logger
}

// NewClient detects the container CLI and returns a client logging through
// logger.
func NewClient(logger *log.Logger) (*Client, error) {
	client := &Client{log: logger}
	cmd, err := client.DetectCLI()
	if err != nil {
		return nil, err
	}
	client.cmd = cmd
	return client, nil
}

// DetectCLI finds the container command to use: the DOCKER_CMD override
// first, then docker, then podman.
func (c *Client) DetectCLI() (string, error) {
	if envCmd := os.Getenv("DOCKER_CMD"); envCmd != "" {
		if _, err := exec.LookPath(envCmd); err != nil {
			return "", fmt.Errorf("DOCKER_CMD=%s not found in PATH", envCmd)
		}
		return envCmd, nil
	}

	if _, err := exec.LookPath("docker"); err == nil {
		return "docker", nil
	}

	if _, err := exec.LookPath("podman"); err == nil {
		return "podman", nil
	}

	return "", errors.New("no docker-compatible CLI found (tried: docker, podman)")
}

// Command returns the container command being used.
func (c *Client) Command() string {
	return c.cmd
}

// ComposeCommand returns the compose companion of the detected CLI.
func (c *Client) ComposeCommand() string {
	return c.cmd + "-compose"
}

func (c *Client) binFor(cmd catalog.Command) string {
	if cmd.Compose {
		return c.ComposeCommand()
	}
	return c.cmd
}

// Capture runs the command as a blocking subprocess and returns its combined
// output and exit status.
func (c *Client) Capture(cmd catalog.Command) (string, int, error) {
	bin := c.binFor(cmd)
	c.log.Debug("exec", "cmd", bin+" "+cmd.String())

	proc := exec.Command(bin, cmd.Args...)
	output, err := proc.CombinedOutput()

	status := 0
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			status = exitErr.ExitCode()
		} else {
			status = 1
		}
	}
	return string(output), status, err
}

// Replace swaps the current process image for the command. On success it
// never returns, so no cleanup runs afterwards.
func (c *Client) Replace(cmd catalog.Command) error {
	bin := c.binFor(cmd)
	path, err := exec.LookPath(bin)
	if err != nil {
		return fmt.Errorf("failed to find %s: %w", bin, err)
	}

	c.log.Debug("exec (replace)", "cmd", bin+" "+cmd.String())

	argv := append([]string{filepath.Base(path)}, cmd.Args...)
	return syscall.Exec(path, argv, os.Environ())
}
