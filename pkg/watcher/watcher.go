// Package watcher mirrors local edits into a running container.
package watcher

import (
	"context"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/hustlecli/hustle/pkg/catalog"
)

// Runner is the capturing subset of the engine's command runner.
type Runner interface {
	Capture(cmd catalog.Command) (string, int, error)
}

// Watcher copies files into a container as they change on disk.
type Watcher struct {
	dir      string
	identity string
	target   string // in-container directory receiving the copies
	runner   Runner
	log      *log.Logger
}

func New(dir, identity, target string, runner Runner, logger *log.Logger) *Watcher {
	return &Watcher{
		dir:      dir,
		identity: identity,
		target:   target,
		runner:   runner,
		log:      logger,
	}
}

// Watch blocks until ctx is done, copying every written or created file into
// the container. Newly created directories are picked up as they appear. A
// failed copy is logged and watching continues; the container may simply not
// be up yet.
func (w *Watcher) Watch(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := w.addTree(fw, w.dir); err != nil {
		return err
	}

	w.log.Info("watching for changes", "dir", w.dir, "container", w.identity)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handle(fw, event)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", "err", err)
		}
	}
}

func (w *Watcher) handle(fw *fsnotify.Watcher, event fsnotify.Event) {
	if ignored(filepath.Base(event.Name)) {
		return
	}
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
		return
	}

	info, err := os.Stat(event.Name)
	if err != nil {
		// already gone again; nothing to sync
		return
	}

	if info.IsDir() {
		if event.Op.Has(fsnotify.Create) {
			if err := w.addTree(fw, event.Name); err != nil {
				w.log.Warn("failed to watch new directory", "dir", event.Name, "err", err)
			}
		}
		return
	}

	w.copy(event.Name)
}

func (w *Watcher) copy(file string) {
	rel, err := filepath.Rel(w.dir, file)
	if err != nil {
		w.log.Warn("skipping file outside watch root", "file", file)
		return
	}

	dest := w.identity + ":" + path.Join(w.target, filepath.ToSlash(rel))
	cmd := catalog.Command{Args: []string{"cp", file, dest}}

	if out, _, err := w.runner.Capture(cmd); err != nil {
		w.log.Warn("copy failed", "file", rel, "err", err, "output", strings.TrimSpace(out))
		return
	}
	w.log.Info("synced", "file", rel)
}

func (w *Watcher) addTree(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != root && ignored(d.Name()) {
			return fs.SkipDir
		}
		return fw.Add(p)
	})
}

// ignored filters out version control and editor noise.
func ignored(name string) bool {
	return name == ".git" || strings.HasPrefix(name, ".#") || strings.HasSuffix(name, "~")
}
