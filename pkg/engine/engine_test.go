package engine

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hustlecli/hustle/pkg/catalog"
	"github.com/hustlecli/hustle/pkg/config"
	"github.com/hustlecli/hustle/pkg/envfile"
)

// fakeRunner records every command instead of executing it. failAt is the
// 1-based index of the Capture call that reports failure.
type fakeRunner struct {
	captured []catalog.Command
	replaced []catalog.Command
	failAt   int
	status   int
}

func (f *fakeRunner) Capture(cmd catalog.Command) (string, int, error) {
	f.captured = append(f.captured, cmd)
	if f.failAt == len(f.captured) {
		status := f.status
		if status == 0 {
			status = 1
		}
		return "", status, errors.New("exit status " + cmd.String())
	}
	return "", 0, nil
}

func (f *fakeRunner) Replace(cmd catalog.Command) error {
	f.replaced = append(f.replaced, cmd)
	return nil
}

func (f *fakeRunner) capturedStrings() []string {
	out := make([]string, len(f.captured))
	for i, c := range f.captured {
		out[i] = c.String()
	}
	return out
}

func testEngine(runner *fakeRunner, mode catalog.Mode) *Engine {
	cfg := config.Default()
	cfg.NoLinks = true
	return New(cfg, mode, "foo", runner, log.New(io.Discard))
}

func TestStopAndRemove(t *testing.T) {
	runner := &fakeRunner{}
	eng := testEngine(runner, catalog.ModeDirect)

	require.NoError(t, eng.StopAndRemove())
	assert.Equal(t, []string{"stop foo", "rm foo"}, runner.capturedStrings())
}

func TestStopAndRemoveShortCircuits(t *testing.T) {
	runner := &fakeRunner{failAt: 1, status: 3}
	eng := testEngine(runner, catalog.ModeDirect)

	err := eng.StopAndRemove()
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.Status)
	assert.Equal(t, "stop foo", exitErr.Cmd)

	// remove must not have run
	assert.Len(t, runner.captured, 1)
}

func TestStopAndRemoveComposeCollapses(t *testing.T) {
	runner := &fakeRunner{}
	eng := testEngine(runner, catalog.ModeCompose)

	require.NoError(t, eng.StopAndRemove())
	require.Len(t, runner.captured, 1)
	assert.True(t, runner.captured[0].Compose)
	assert.Equal(t, "down", runner.captured[0].String())
}

func TestRestartOrder(t *testing.T) {
	runner := &fakeRunner{}
	eng := testEngine(runner, catalog.ModeDirect)

	require.NoError(t, eng.Restart())
	assert.Equal(t, []string{
		"stop foo",
		"rm foo",
		"run -p 3000:3000 --name foo foo",
	}, runner.capturedStrings())
}

func TestRestartStopsAfterFirstFailure(t *testing.T) {
	runner := &fakeRunner{failAt: 1}
	eng := testEngine(runner, catalog.ModeDirect)

	require.Error(t, eng.Restart())
	assert.Len(t, runner.captured, 1)
}

func TestPristine(t *testing.T) {
	runner := &fakeRunner{}
	eng := testEngine(runner, catalog.ModeDirect)

	require.NoError(t, eng.Pristine())
	assert.Equal(t, []string{"stop foo", "rm foo", "rmi foo"}, runner.capturedStrings())
}

func TestRunForwardsCommand(t *testing.T) {
	runner := &fakeRunner{}
	eng := testEngine(runner, catalog.ModeDirect)

	require.NoError(t, eng.Run([]string{"rake", "db:migrate"}))
	require.Len(t, runner.captured, 1)
	assert.Equal(t, "exec -i -t foo sh -c rake db:migrate", runner.captured[0].String())
}

func TestRunHardReplacesProcess(t *testing.T) {
	runner := &fakeRunner{}
	eng := testEngine(runner, catalog.ModeDirect)

	require.NoError(t, eng.RunHard([]string{"rails", "server"}))
	assert.Empty(t, runner.captured)
	require.Len(t, runner.replaced, 1)
	assert.Equal(t, "exec -i -t foo sh -c rails server", runner.replaced[0].String())
}

func TestShellAndDebugReplaceProcess(t *testing.T) {
	runner := &fakeRunner{}
	eng := testEngine(runner, catalog.ModeDirect)

	require.NoError(t, eng.Shell())
	require.NoError(t, eng.Debug())

	require.Len(t, runner.replaced, 2)
	assert.Equal(t, "exec -i -t foo sh -c /bin/bash", runner.replaced[0].String())
	assert.Equal(t, "run -it --entrypoint=/bin/bash foo -s", runner.replaced[1].String())
}

func TestNewProject(t *testing.T) {
	runner := &fakeRunner{}
	eng := testEngine(runner, catalog.ModeDirect)
	envPath := filepath.Join(t.TempDir(), ".env")
	eng.SetEnvPath(envPath)

	require.NoError(t, eng.NewProject("myapp-base"))

	name, err := envfile.ContainerName(envPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "myapp-app-"), "persisted name %q", name)
	assert.Equal(t, name, eng.Identity())

	assert.Equal(t, []string{
		"run -d --name " + name + " myapp-base",
		"cp " + name + ":/app .",
		"stop " + name,
		"rm " + name,
		"build . --no-cache=true -t " + name,
	}, runner.capturedStrings())
}

func TestNewProjectShortCircuits(t *testing.T) {
	runner := &fakeRunner{failAt: 1}
	eng := testEngine(runner, catalog.ModeDirect)
	eng.SetEnvPath(filepath.Join(t.TempDir(), ".env"))

	require.Error(t, eng.NewProject("myapp-base"))
	assert.Len(t, runner.captured, 1)
}

func TestNewProjectRefusesToOverwrite(t *testing.T) {
	runner := &fakeRunner{}
	eng := testEngine(runner, catalog.ModeDirect)
	envPath := filepath.Join(t.TempDir(), ".env")
	eng.SetEnvPath(envPath)

	require.NoError(t, envfile.Save(envPath, map[string]string{envfile.ContainerNameKey: "existing"}))

	err := eng.NewProject("myapp-base")
	require.Error(t, err)
	assert.Empty(t, runner.captured)

	// the original entry is untouched
	name, err := envfile.ContainerName(envPath)
	require.NoError(t, err)
	assert.Equal(t, "existing", name)
}

func TestNewProjectForceOverwrites(t *testing.T) {
	runner := &fakeRunner{}
	cfg := config.Default()
	cfg.NoLinks = true
	cfg.Force = true
	eng := New(cfg, catalog.ModeDirect, "", runner, log.New(io.Discard))
	envPath := filepath.Join(t.TempDir(), ".env")
	eng.SetEnvPath(envPath)

	require.NoError(t, envfile.Save(envPath, map[string]string{envfile.ContainerNameKey: "existing"}))
	require.NoError(t, eng.NewProject("myapp-base"))

	name, err := envfile.ContainerName(envPath)
	require.NoError(t, err)
	assert.NotEqual(t, "existing", name)
}

func TestEmptyBaseImage(t *testing.T) {
	runner := &fakeRunner{}
	eng := testEngine(runner, catalog.ModeDirect)
	eng.SetEnvPath(filepath.Join(t.TempDir(), ".env"))

	require.Error(t, eng.NewProject(""))
	assert.Empty(t, runner.captured)
}
