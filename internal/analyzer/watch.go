package analyzer

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pitwall/pacestat/internal/util"
)

// Timing systems rewrite the export in bursts; wait for them to settle
// before recomputing.
const watchDebounce = 300 * time.Millisecond

// Watch runs the pipeline once, then re-runs it whenever the export file
// changes, until the context is cancelled. The watch goes on the parent
// directory because exporters replace the file rather than append to it.
func (a *Analyzer) Watch(ctx context.Context) error {
	if err := a.Run(); err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	target := filepath.Clean(a.config.File)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return err
	}
	util.LogInfof("Watching %s for changes", target)

	var pending <-chan time.Time
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(watchDebounce)

		case <-pending:
			pending = nil
			util.LogInfo("Export changed; recomputing")
			if err := a.Run(); err != nil {
				// Keep watching: a half-written file fixes itself on
				// the next event.
				util.LogErrorf("Recomputation failed: %v", err)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			util.LogErrorf("File monitoring error: %v", err)

		case <-ctx.Done():
			return nil
		}
	}
}
