package colorscheme

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshills/nanox/internal/config/loader"
)

// EnvVar names the environment variable that overrides the scheme name.
const EnvVar = "NANOX_COLORSCHEME"

// schemeExtensions are tried in order for every search directory.
var schemeExtensions = []string{".nanoxcolor", ".ini"}

// InitOptions locate scheme files.
type InitOptions struct {
	// ConfigDir and DataDir are the user directories; each is searched in
	// its colorscheme/ subdirectory. Empty directories are skipped.
	ConfigDir string
	DataDir   string

	// FS reads scheme files. Defaults to the OS file system.
	FS loader.FileSystem

	// Getenv reads EnvVar. Defaults to os.Getenv.
	Getenv func(string) string

	// DisableChroma turns off the fallback to chroma's bundled styles.
	DisableChroma bool
}

// Init resets the table to the built-in defaults and loads the scheme
// selected by, in order: the NANOX_COLORSCHEME variable, requested, and
// "default". Names that fail IsSafeName are passed over. The name
// "default" keeps the built-ins. Lookup failures are not errors: the
// table simply keeps its defaults. Init returns the active name.
func (t *Table) Init(requested string, opts InitOptions) string {
	if opts.FS == nil {
		opts.FS = loader.DefaultFS()
	}
	if opts.Getenv == nil {
		opts.Getenv = os.Getenv
	}

	t.Reset()

	name := selectName(opts.Getenv(EnvVar), requested)
	if name == DefaultName {
		return t.name
	}

	if path := FindScheme(opts.FS, name, opts.ConfigDir, opts.DataDir); path != "" {
		if err := t.LoadFile(opts.FS, path); err == nil {
			t.name = name
			return t.name
		}
	}

	if !opts.DisableChroma {
		if style, ok := LookupChroma(name); ok {
			t.ApplyChroma(style)
			t.name = name
		}
	}
	return t.name
}

// selectName returns the first non-empty safe candidate, or DefaultName.
func selectName(candidates ...string) string {
	for _, c := range candidates {
		if c != "" && IsSafeName(c) {
			return c
		}
	}
	return DefaultName
}

// FindScheme returns the first existing scheme file for name, trying
// <dir>/colorscheme/<name>.nanoxcolor then .ini for each dir in turn.
func FindScheme(fsys loader.FileSystem, name string, dirs ...string) string {
	if !IsSafeName(name) || name == "" {
		return ""
	}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		for _, ext := range schemeExtensions {
			path := filepath.Join(dir, "colorscheme", name+ext)
			if loader.IsFile(fsys, path) {
				return path
			}
		}
	}
	return ""
}

// LoadFile parses a scheme file on top of the current styles.
func (t *Table) LoadFile(fsys loader.FileSystem, path string) error {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading colorscheme %s: %w", path, err)
	}
	t.Parse(data)
	return nil
}
