package highlight

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dshills/nanox/internal/config/loader"
	"github.com/dshills/nanox/internal/renderer/colorscheme"
	"github.com/dshills/nanox/internal/renderer/core"
)

// EngineOptions configure an Engine.
type EngineOptions struct {
	// RulePath is the primary rule file. It may be empty.
	RulePath string
	Dirs     Dirs

	// Colorscheme overrides the scheme named by the rule file.
	Colorscheme string

	FS            loader.FileSystem
	Getenv        func(string) string
	DisableChroma bool
}

// Report combines the registry load report with the scheme outcome.
type Report struct {
	LoadReport
	Scheme        string
	SchemeEnabled bool
}

// Engine is the highlighting context shared by the renderer: one profile
// registry, one style table, and the profile chosen for each open buffer.
// It is not safe for concurrent use; reloads happen on the redraw loop.
type Engine struct {
	opts     EngineOptions
	registry *Registry
	scheme   *colorscheme.Table
	buffers  map[uuid.UUID]boundProfile
	report   Report
}

type boundProfile struct {
	filename string
	profile  *Profile
}

// NewEngine builds an engine and performs the initial load.
func NewEngine(opts EngineOptions) *Engine {
	if opts.FS == nil {
		opts.FS = loader.DefaultFS()
	}
	if opts.Getenv == nil {
		opts.Getenv = os.Getenv
	}
	e := &Engine{
		opts:   opts,
		scheme: colorscheme.New(),
	}
	e.Reload()
	return e
}

// Reload rebuilds the registry and style table from disk and drops every
// buffer's profile binding. The previous context is replaced as a whole.
func (e *Engine) Reload() Report {
	reg := NewRegistryWithFS(e.opts.FS)
	rep := Report{LoadReport: reg.Init(e.opts.RulePath, e.opts.Dirs)}

	scheme := colorscheme.New()
	if reg.ColorschemeEnabled() {
		name := reg.Colorscheme()
		if e.opts.Colorscheme != "" {
			name = e.opts.Colorscheme
		}
		rep.Scheme = scheme.Init(name, colorscheme.InitOptions{
			ConfigDir:     e.opts.Dirs.ConfigDir,
			DataDir:       e.opts.Dirs.DataDir,
			FS:            e.opts.FS,
			Getenv:        e.opts.Getenv,
			DisableChroma: e.opts.DisableChroma,
		})
		rep.SchemeEnabled = true
	} else {
		rep.Scheme = scheme.ActiveName()
	}

	e.registry = reg
	e.scheme = scheme
	e.buffers = make(map[uuid.UUID]boundProfile)
	e.report = rep
	return rep
}

// Report returns the outcome of the last load.
func (e *Engine) Report() Report { return e.report }

// Registry returns the active registry.
func (e *Engine) Registry() *Registry { return e.registry }

// Scheme returns the active style table.
func (e *Engine) Scheme() *colorscheme.Table { return e.scheme }

// Style resolves a style ID through the active table.
func (e *Engine) Style(id colorscheme.StyleID) core.Style { return e.scheme.Get(id) }

// IsEnabled reports whether highlighting is active.
func (e *Engine) IsEnabled() bool { return e.registry.IsEnabled() }

// ProfileFor returns the profile for the buffer id, resolving it from
// filename on first use or when the filename changes.
func (e *Engine) ProfileFor(id uuid.UUID, filename string) *Profile {
	if b, ok := e.buffers[id]; ok && b.filename == filename {
		return b.profile
	}
	p := e.registry.GetProfile(filename)
	e.buffers[id] = boundProfile{filename: filename, profile: p}
	return p
}

// Forget drops the binding of a closed buffer.
func (e *Engine) Forget(id uuid.UUID) {
	delete(e.buffers, id)
}

// WatchPaths returns the files and directories whose changes should trigger
// a Reload.
func (e *Engine) WatchPaths() (files, dirs []string) {
	if e.opts.RulePath != "" {
		files = append(files, e.opts.RulePath)
	}
	dirs = append(dirs, LangDirs(e.opts.RulePath, e.opts.Dirs)...)
	for _, d := range []string{e.opts.Dirs.ConfigDir, e.opts.Dirs.DataDir} {
		if d != "" {
			dirs = append(dirs, filepath.Join(d, "colorscheme"))
		}
	}
	return files, dirs
}
