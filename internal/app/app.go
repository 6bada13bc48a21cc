// Package app wires the highlighting engine, the display and a terminal
// backend into the nanox viewer, and owns the main loop on which every
// redraw and reload happens.
package app

import (
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/dshills/nanox/internal/config"
	"github.com/dshills/nanox/internal/config/loader"
	"github.com/dshills/nanox/internal/config/watcher"
	"github.com/dshills/nanox/internal/renderer/backend"
	"github.com/dshills/nanox/internal/renderer/display"
	"github.com/dshills/nanox/internal/renderer/highlight"
)

// Application is the viewer: one document shown in one window.
type Application struct {
	opts     Options
	settings config.Settings
	logger   *Logger
	metrics  *Metrics

	engine  *highlight.Engine
	doc     *Document
	win     *display.Window
	backend backend.Backend
	display *display.Display
	watcher *watcher.Watcher

	running atomic.Bool
}

// Options configures the application.
type Options struct {
	// Settings are the resolved editor settings.
	Settings config.Settings

	// Files are the files to open. The viewer shows the first one; with
	// none it shows an empty scratch document.
	Files []string

	// Logger receives diagnostics. Nil discards them.
	Logger *Logger

	// FS reads documents, rule files and schemes. Defaults to the OS.
	FS loader.FileSystem

	// Getenv overrides os.Getenv for the colorscheme override variable.
	Getenv func(string) string

	// DisableChroma stops scheme names from falling back to chroma styles.
	DisableChroma bool

	// WatchDebounce overrides the watcher's quiet period.
	WatchDebounce time.Duration
}

// New loads the highlight rules and the first document.
func New(opts Options) (*Application, error) {
	if opts.Logger == nil {
		opts.Logger = NullLogger
	}
	if opts.FS == nil {
		opts.FS = loader.DefaultFS()
	}
	if opts.Getenv == nil {
		opts.Getenv = os.Getenv
	}

	app := &Application{
		opts:     opts,
		settings: opts.Settings,
		logger:   opts.Logger,
		metrics:  NewMetrics(),
	}

	app.engine = highlight.NewEngine(highlight.EngineOptions{
		RulePath: opts.Settings.RulesPath,
		Dirs: highlight.Dirs{
			ConfigDir: opts.Settings.Paths.ConfigDir,
			DataDir:   opts.Settings.Paths.DataDir,
		},
		Colorscheme:   opts.Settings.Colorscheme,
		FS:            opts.FS,
		Getenv:        opts.Getenv,
		DisableChroma: opts.DisableChroma,
	})
	app.logReport(app.engine.Report())

	if len(opts.Files) > 0 {
		doc, err := OpenDocument(opts.FS, opts.Files[0])
		if err != nil {
			return nil, err
		}
		app.doc = doc
	} else {
		app.doc = NewScratchDocument()
	}
	app.win = display.NewWindow(app.doc)
	return app, nil
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Run initializes the backend and processes events until a quit key.
// Each loop iteration redraws, then waits for one event.
func (app *Application) Run() error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return NewOperationError("init", "terminal", err)
	}
	defer app.backend.Shutdown()

	app.display = display.New(app.backend, app.engine, app.displayOptions())

	if app.settings.Watch {
		if err := app.startWatcher(); err != nil {
			app.logger.WithComponent("watcher").Warn("live reload disabled: %v", err)
		}
		defer app.stopWatcher()
	}

	err := app.eventLoop()
	snap := app.metrics.Snapshot()
	app.logger.Debug("%d frames, avg %v, max %v, %d reloads",
		snap.Frames, snap.AvgFrame, snap.MaxFrame, snap.Reloads)
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

func (app *Application) eventLoop() error {
	for {
		app.redraw()
		if err := app.handleBackendEvent(app.backend.PollEvent()); err != nil {
			return err
		}
	}
}

func (app *Application) redraw() {
	start := time.Now()
	app.display.Update(app.win, false)
	app.metrics.RecordFrame(time.Since(start))
}

func (app *Application) displayOptions() display.Options {
	return display.Options{
		TabWidth:     app.settings.TabWidth,
		ShowModeLine: app.settings.ShowModeLine,
		TrueColor:    app.settings.TrueColor,
		ColorPreview: app.settings.ColorPreview,
	}
}

// reload rebuilds the highlighting context and repaints everything.
func (app *Application) reload() {
	rep := app.engine.Reload()
	app.metrics.RecordReload()
	app.logReport(rep)

	app.doc.ResetStates()
	app.settleStates()
	app.win.Invalidate()
	if app.display != nil {
		app.display.Garbage()
		app.display.SetMessage(fmt.Sprintf("[reloaded %d profiles, scheme %s]", rep.Profiles, rep.Scheme))
	}
}

// settleStates scans the lines above the window so its first row enters
// in the right lexical state.
func (app *Application) settleStates() {
	if !app.engine.IsEnabled() {
		return
	}
	p := app.engine.ProfileFor(app.doc.ID(), app.win.Filename())
	var spans highlight.Spans
	for i := 0; i < app.win.Top && i < app.doc.Len(); i++ {
		spans, _ = highlight.ScanLine(app.doc, i, p, spans[:0])
	}
}

func (app *Application) logReport(rep highlight.Report) {
	log := app.logger.WithComponent("highlight")
	log.Debug("rule file %q loaded=%v, %d language files, %d profiles",
		rep.RuleFile, rep.RuleFileLoaded, len(rep.LangFiles), rep.Profiles)
	log.Debug("colorscheme %s enabled=%v", rep.Scheme, rep.SchemeEnabled)
	for _, err := range rep.Errors {
		log.Debug("load error: %v", err)
	}
}

// Engine returns the highlighting context.
func (app *Application) Engine() *highlight.Engine { return app.engine }

// Document returns the document being viewed.
func (app *Application) Document() *Document { return app.doc }

// Window returns the window onto the document.
func (app *Application) Window() *display.Window { return app.win }

// Display returns the display, or nil before Run.
func (app *Application) Display() *display.Display { return app.display }

// Metrics returns the redraw counters.
func (app *Application) Metrics() *Metrics { return app.metrics }

// Logger returns the application's logger.
func (app *Application) Logger() *Logger { return app.logger }
