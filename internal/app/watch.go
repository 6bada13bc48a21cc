package app

import (
	"errors"

	"github.com/dshills/nanox/internal/config/watcher"
	"github.com/dshills/nanox/internal/renderer/backend"
)

// reloadRequest is the interrupt payload asking the main loop to reload
// highlight rules and schemes.
type reloadRequest struct{}

// quitRequest asks the main loop to exit, as on SIGTERM.
type quitRequest struct{}

// Quit asks a running application to exit. It is safe to call from any
// goroutine.
func (app *Application) Quit() {
	if b := app.backend; b != nil && app.running.Load() {
		b.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: quitRequest{}})
	}
}

// startWatcher watches the rule file, the languages directories and the
// colorscheme directories. Changes are turned into a reload request on the
// backend's event queue so the reload itself runs on the main loop.
func (app *Application) startWatcher() error {
	log := app.logger.WithComponent("watcher")

	opts := []watcher.Option{
		watcher.WithErrorHandler(func(err error) { log.Debug("watch error: %v", err) }),
	}
	if app.opts.WatchDebounce > 0 {
		opts = append(opts, watcher.WithDebounce(app.opts.WatchDebounce))
	}
	w, err := watcher.New(opts...)
	if err != nil {
		return NewOperationError("watch", "", err)
	}

	files, dirs := app.engine.WatchPaths()
	watch := func(path string, add func(string) error) {
		if err := add(path); err != nil && !errors.Is(err, watcher.ErrPathNotExist) {
			log.Debug("cannot watch %s: %v", path, err)
		}
	}
	for _, f := range files {
		watch(f, w.WatchFile)
	}
	for _, d := range dirs {
		watch(d, w.WatchDir)
	}
	log.Debug("watching %d directories", w.WatchedDirs())

	b := app.backend
	w.OnChange(func(events []watcher.Event) {
		log.Debug("%d changes, first %s %s", len(events), events[0].Op, events[0].Path)
		b.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: reloadRequest{}})
	})
	app.watcher = w
	return nil
}

func (app *Application) stopWatcher() {
	if app.watcher == nil {
		return
	}
	if err := app.watcher.Close(); err != nil {
		app.logger.WithComponent("watcher").Debug("close: %v", err)
	}
	app.watcher = nil
}
