package highlight

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dshills/nanox/internal/config/loader"
)

const (
	// MaxProfiles bounds the number of registered profiles.
	MaxProfiles = 512

	// DefaultColorscheme is the scheme requested when the rule file names none.
	DefaultColorscheme = "nanox-dark"

	// DefaultLangDir is the repository languages directory, searched last.
	DefaultLangDir = "configs/nanox/langs"

	// globalSection holds registry-wide settings in the primary rule file.
	globalSection = "highlight"
)

// Dirs are the user directories searched for languages/ rule files.
type Dirs struct {
	ConfigDir string
	DataDir   string
	// Fallback replaces DefaultLangDir when set.
	Fallback string
}

// LoadReport describes what an Init call read.
type LoadReport struct {
	RuleFile       string
	RuleFileLoaded bool
	// LangFiles lists the language files that declared at least one profile.
	LangFiles []string
	Profiles  int
	// Errors holds read failures other than missing files. They never stop
	// loading.
	Errors []error
}

// Registry holds the language profiles and the global highlight settings.
type Registry struct {
	fs       loader.FileSystem
	profiles []*Profile

	enableScheme bool
	scheme       string
	initialized  bool
}

// NewRegistry returns an empty registry reading from the OS file system.
func NewRegistry() *Registry {
	return NewRegistryWithFS(loader.DefaultFS())
}

// NewRegistryWithFS returns an empty registry reading from fsys.
func NewRegistryWithFS(fsys loader.FileSystem) *Registry {
	r := &Registry{fs: fsys}
	r.clear()
	return r
}

func (r *Registry) clear() {
	r.profiles = nil
	r.enableScheme = true
	r.scheme = DefaultColorscheme
	r.initialized = false
}

// Init discards all profiles and loads the primary rule file at rulePath
// followed by every languages directory in LangDirs order. Missing files
// and directories are skipped silently.
//
// The registry counts as initialized when at least one profile was
// registered by a file that loaded.
func (r *Registry) Init(rulePath string, dirs Dirs) LoadReport {
	r.clear()
	rep := LoadReport{RuleFile: rulePath}

	loaded := false
	if rulePath != "" {
		added, err := r.loadFile(rulePath, true)
		if err != nil {
			rep.addErr(err)
		}
		rep.RuleFileLoaded = added
		loaded = added
	}

	for _, dir := range LangDirs(rulePath, dirs) {
		for _, path := range r.langFiles(dir, &rep) {
			added, err := r.loadFile(path, false)
			if err != nil {
				rep.addErr(err)
			}
			if added {
				rep.LangFiles = append(rep.LangFiles, path)
				loaded = true
			}
		}
	}

	r.initialized = len(r.profiles) > 0 && loaded
	rep.Profiles = len(r.profiles)
	return rep
}

func (rep *LoadReport) addErr(err error) {
	if errors.Is(err, fs.ErrNotExist) {
		return
	}
	rep.Errors = append(rep.Errors, err)
}

// LangDirs returns the languages directories searched for rulePath, in
// order: langs/ beside the rule file, under the config dir, under the data
// dir, then the fallback directory unless it was already listed first.
func LangDirs(rulePath string, dirs Dirs) []string {
	fallback := dirs.Fallback
	if fallback == "" {
		fallback = DefaultLangDir
	}

	var out []string
	triedFallback := false
	if sep := strings.LastIndexAny(rulePath, `/`+string(filepath.Separator)); sep >= 0 {
		base := rulePath[:sep]
		if base == "" {
			base = string(filepath.Separator)
		}
		dir := filepath.Join(base, "langs")
		out = append(out, dir)
		triedFallback = filepath.Clean(dir) == filepath.Clean(fallback)
	}
	if dirs.ConfigDir != "" {
		out = append(out, filepath.Join(dirs.ConfigDir, "langs"))
	}
	if dirs.DataDir != "" {
		out = append(out, filepath.Join(dirs.DataDir, "langs"))
	}
	if !triedFallback {
		out = append(out, fallback)
	}
	return out
}

// langFiles lists the *.ini files of dir, skipping dotfiles and
// directories, sorted by name.
func (r *Registry) langFiles(dir string, rep *LoadReport) []string {
	entries, err := r.fs.ReadDir(dir)
	if err != nil {
		rep.addErr(err)
		return nil
	}
	var out []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if !strings.EqualFold(filepath.Ext(name), ".ini") {
			continue
		}
		out = append(out, filepath.Join(dir, name))
	}
	sort.Strings(out)
	return out
}

// LoadFile reads one rule file. When allowGlobal is set the [highlight]
// section, and keys before any section, set the global options; otherwise
// those are ignored. It reports whether the file declared a profile.
func (r *Registry) LoadFile(path string, allowGlobal bool) (bool, error) {
	added, err := r.loadFile(path, allowGlobal)
	if added {
		r.initialized = true
	}
	return added, err
}

func (r *Registry) loadFile(path string, allowGlobal bool) (bool, error) {
	data, err := r.fs.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read rule file %s: %w", path, err)
	}

	var cur *Profile
	ignore := false
	added := false
	loader.ScanINI(data, func(ev loader.INIEvent) {
		switch ev.Kind {
		case loader.INISection:
			if strings.EqualFold(ev.Section, globalSection) {
				cur = nil
				ignore = !allowGlobal
				return
			}
			cur = r.prepare(ev.Section)
			ignore = cur == nil
			if cur != nil {
				added = true
			}
		case loader.INIKeyValue:
			if ignore {
				return
			}
			if cur == nil {
				if allowGlobal {
					r.setGlobal(ev.Key, ev.Value)
				}
				return
			}
			setProfileKey(cur, ev.Key, ev.Value)
		}
	})

	for _, p := range r.profiles {
		p.Compile()
	}
	return added, nil
}

// prepare returns the profile named name, reset to defaults when it already
// exists, or appends a new one. It returns nil when the registry is full.
func (r *Registry) prepare(name string) *Profile {
	for i, p := range r.profiles {
		if strings.EqualFold(p.Name, name) {
			r.profiles[i] = NewProfile(name)
			return r.profiles[i]
		}
	}
	if len(r.profiles) >= MaxProfiles {
		return nil
	}
	p := NewProfile(name)
	r.profiles = append(r.profiles, p)
	return p
}

func (r *Registry) setGlobal(key, val string) {
	switch key {
	case "enable_colorscheme":
		r.enableScheme = loader.ParseBool(val)
	case "colorscheme":
		r.scheme = val
	}
}

func setProfileKey(p *Profile, key, val string) {
	switch key {
	case "extensions":
		p.Extensions = loader.SplitList(val)
	case "line_comment_tokens":
		p.LineComments = loader.SplitList(val)
	case "block_comment_pairs":
		p.BlockComments = parseCommentPairs(val)
	case "string_delims":
		p.StringDelims = parseDelims(val)
	case "keywords":
		p.Keywords = loader.SplitList(val)
	case "types":
		p.Types = loader.SplitList(val)
	case "flow":
		p.Flow = loader.SplitList(val)
	case "preproc":
		p.Preproc = loader.SplitList(val)
	case "return_keywords":
		p.ReturnKeywords = loader.SplitList(val)
	case "enable_triple_quotes":
		p.TripleQuotes = loader.ParseBool(val)
	case "enable_number_highlight":
		p.Numbers = loader.ParseBool(val)
	case "enable_bracket_highlight":
		p.Brackets = loader.ParseBool(val)
	}
}

// parseCommentPairs reads "START END" items separated by commas. Each item
// is split at its first space; items missing either side are dropped.
func parseCommentPairs(val string) []CommentPair {
	var out []CommentPair
	for _, item := range loader.SplitList(val) {
		sp := strings.IndexByte(item, ' ')
		if sp < 0 {
			continue
		}
		start := item[:sp]
		end := strings.TrimSpace(item[sp+1:])
		if start == "" || end == "" {
			continue
		}
		out = append(out, CommentPair{Start: start, End: end})
	}
	return out
}

// parseDelims keeps every byte of val except commas and whitespace.
func parseDelims(val string) string {
	var b strings.Builder
	for i := 0; i < len(val); i++ {
		c := val[i]
		if c == ',' || isSpace(c) || strings.IndexByte(b.String(), c) >= 0 {
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// GetProfile returns the first profile listing the extension of filename,
// compared case-insensitively, or nil. The extension is the text after the
// last '.' of the base name.
func (r *Registry) GetProfile(filename string) *Profile {
	if filename == "" {
		return nil
	}
	base := filepath.Base(filename)
	dot := strings.LastIndexByte(base, '.')
	if dot < 0 {
		return nil
	}
	ext := base[dot+1:]
	for _, p := range r.profiles {
		if p.MatchesExtension(ext) {
			return p
		}
	}
	return nil
}

// Profile returns the profile named name, case-insensitively, or nil.
func (r *Registry) Profile(name string) *Profile {
	for _, p := range r.profiles {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}

// Profiles returns the registered profiles in registration order.
func (r *Registry) Profiles() []*Profile {
	out := make([]*Profile, len(r.profiles))
	copy(out, r.profiles)
	return out
}

// Initialized reports whether the last Init registered any profile.
func (r *Registry) Initialized() bool { return r.initialized }

// ColorschemeEnabled reports the enable_colorscheme global.
func (r *Registry) ColorschemeEnabled() bool { return r.enableScheme }

// IsEnabled reports whether highlighting is active: the registry is
// initialized and color schemes are enabled.
func (r *Registry) IsEnabled() bool { return r.initialized && r.enableScheme }

// Colorscheme returns the scheme name requested by the rule file.
func (r *Registry) Colorscheme() string { return r.scheme }
