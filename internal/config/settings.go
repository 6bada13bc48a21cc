package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dshills/nanox/internal/config/loader"
)

// Settings are the editor-wide options.
type Settings struct {
	// TabWidth is the distance between tab stops.
	TabWidth int

	// RulesPath is the primary highlight rule file. Empty means only the
	// languages directories are scanned.
	RulesPath string

	// Colorscheme overrides the scheme named in the rule file. The
	// NANOX_COLORSCHEME environment variable still takes precedence.
	Colorscheme string

	// TrueColor enables 24-bit SGR output; otherwise RGB colors are mapped
	// onto the 256-color palette.
	TrueColor bool

	// ShowModeLine reserves the bottom rows for the mode and message lines.
	ShowModeLine bool

	// ColorPreview paints color literals such as #ff8800 in their color.
	ColorPreview bool

	// Watch reloads rule and scheme files when they change on disk.
	Watch bool

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// LogFile receives log output. Empty disables logging.
	LogFile string

	// Paths are the resolved user directories.
	Paths Paths
}

// Defaults returns the built-in settings.
func Defaults(paths Paths) Settings {
	return Settings{
		TabWidth:     8,
		TrueColor:    detectTrueColor(os.Getenv("COLORTERM")),
		ShowModeLine: true,
		Watch:        true,
		LogLevel:     "info",
		Paths:        paths,
	}
}

func detectTrueColor(colorterm string) bool {
	switch strings.ToLower(colorterm) {
	case "truecolor", "24bit":
		return true
	}
	return false
}

// LoadOptions configure Load.
type LoadOptions struct {
	// FS reads config.toml. Defaults to the OS file system.
	FS loader.FileSystem
	// Env overrides the environment loader, for tests.
	Env loader.Loader
	// Getenv overrides os.Getenv when resolving paths.
	Getenv func(string) string
}

// Load resolves settings from defaults, config.toml and the environment.
// A missing config.toml is not an error. Values of the wrong type are
// skipped and reported through the returned error; the returned Settings
// are always usable.
func Load(opts LoadOptions) (Settings, error) {
	if opts.FS == nil {
		opts.FS = loader.DefaultFS()
	}
	if opts.Env == nil {
		opts.Env = loader.NewEnvLoader("NANOX_")
	}

	s := Defaults(ResolvePaths(opts.Getenv))

	var fileMap map[string]any
	if path := s.Paths.SettingsFile(); path != "" {
		m, err := loader.NewTOMLLoaderWithFS(opts.FS, path).Load()
		if err != nil {
			return s, fmt.Errorf("loading settings: %w", err)
		}
		fileMap = m
	}

	envMap, err := opts.Env.Load()
	if err != nil {
		return s, fmt.Errorf("loading environment: %w", err)
	}

	return s, s.Apply(loader.DeepMerge(fileMap, envMap))
}

// Apply sets every recognised key of a nested settings map.
func (s *Settings) Apply(m map[string]any) error {
	var errs []error

	intVal := func(dst *int, path ...string) {
		v, ok := loader.Lookup(m, path...)
		if !ok {
			return
		}
		n, ok := v.(int64)
		if !ok || n < 1 {
			errs = append(errs, &SettingError{Path: strings.Join(path, "."), Value: v, Err: ErrTypeMismatch})
			return
		}
		*dst = int(n)
	}
	strVal := func(dst *string, path ...string) {
		v, ok := loader.Lookup(m, path...)
		if !ok {
			return
		}
		str, ok := v.(string)
		if !ok {
			errs = append(errs, &SettingError{Path: strings.Join(path, "."), Value: v, Err: ErrTypeMismatch})
			return
		}
		*dst = str
	}
	boolVal := func(dst *bool, path ...string) {
		v, ok := loader.Lookup(m, path...)
		if !ok {
			return
		}
		b, ok := v.(bool)
		if !ok {
			errs = append(errs, &SettingError{Path: strings.Join(path, "."), Value: v, Err: ErrTypeMismatch})
			return
		}
		*dst = b
	}

	intVal(&s.TabWidth, "editor", "tab_width")
	strVal(&s.RulesPath, "highlight", "rules")
	strVal(&s.Colorscheme, "highlight", "colorscheme")
	boolVal(&s.Watch, "highlight", "watch")
	boolVal(&s.TrueColor, "display", "truecolor")
	boolVal(&s.ShowModeLine, "display", "mode_line")
	boolVal(&s.ColorPreview, "display", "color_preview")
	strVal(&s.LogLevel, "logging", "level")
	strVal(&s.LogFile, "logging", "file")

	return errors.Join(errs...)
}
