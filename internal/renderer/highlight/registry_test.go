package highlight

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const primaryRules = `; primary rule file
enable_colorscheme = true

[highlight]
colorscheme = solarized

[C]
extensions = c, h
line_comment_tokens = //
block_comment_pairs = /* */, #if 0 #endif
string_delims = " , '
keywords = int, static
return_keywords = return
enable_number_highlight = FALSE
`

func TestRegistryInitPrimaryFile(t *testing.T) {
	fsys := fstest.MapFS{
		"cfg/rules.ini": {Data: []byte(primaryRules)},
	}
	r := NewRegistryWithFS(fsys)
	rep := r.Init("cfg/rules.ini", Dirs{Fallback: "none"})

	require.True(t, rep.RuleFileLoaded)
	require.Empty(t, rep.Errors)
	assert.Equal(t, 1, rep.Profiles)
	assert.True(t, r.Initialized())
	assert.True(t, r.IsEnabled())
	assert.Equal(t, "solarized", r.Colorscheme())

	p := r.GetProfile("main.c")
	require.NotNil(t, p)
	assert.Equal(t, "C", p.Name)
	assert.Equal(t, []string{"c", "h"}, p.Extensions)
	assert.Equal(t, []string{"//"}, p.LineComments)
	assert.Equal(t, []CommentPair{{"/*", "*/"}, {"#if", "0 #endif"}}, p.BlockComments)
	assert.Equal(t, `"'`, p.StringDelims)
	assert.False(t, p.Numbers)
	assert.True(t, p.Brackets)
	assert.False(t, p.TripleQuotes)

	style, ok := p.Lookup("return")
	assert.True(t, ok)
	assert.Equal(t, "return", style.String())
}

func TestRegistryGlobalSectionOnlyInPrimary(t *testing.T) {
	const goRules = "enable_colorscheme = false\n[highlight]\ncolorscheme = evil\n[go]\nextensions = go\n"
	fsys := fstest.MapFS{
		"cfg/rules.ini":    {Data: []byte("[highlight]\nenable_colorscheme = true\n")},
		"cfg/langs/go.ini": {Data: []byte(goRules)},
	}
	r := NewRegistryWithFS(fsys)
	rep := r.Init("cfg/rules.ini", Dirs{Fallback: "none"})

	assert.False(t, rep.RuleFileLoaded)
	assert.Equal(t, []string{filepath.Join("cfg", "langs", "go.ini")}, rep.LangFiles)
	assert.True(t, r.ColorschemeEnabled())
	assert.Equal(t, DefaultColorscheme, r.Colorscheme())
	assert.True(t, r.IsEnabled())
	assert.NotNil(t, r.GetProfile("x.go"))
}

func TestRegistryDisabledColorscheme(t *testing.T) {
	fsys := fstest.MapFS{
		"rules.ini": {Data: []byte("enable_colorscheme = no\n[sh]\nextensions = sh\n")},
	}
	r := NewRegistryWithFS(fsys)
	r.Init("rules.ini", Dirs{Fallback: "none"})

	assert.True(t, r.Initialized())
	assert.False(t, r.ColorschemeEnabled())
	assert.False(t, r.IsEnabled())
	assert.NotNil(t, r.GetProfile("run.sh"), "profiles still resolve when colors are off")
}

func TestRegistryRedeclarationReplaces(t *testing.T) {
	fsys := fstest.MapFS{
		"a/langs/01-c.ini": {Data: []byte("[c]\nextensions = c\nkeywords = int\n")},
		"a/langs/02-c.ini": {Data: []byte("[C]\nextensions = cc\n")},
	}
	r := NewRegistryWithFS(fsys)
	r.Init("", Dirs{Fallback: "a/langs"})

	require.Len(t, r.Profiles(), 1)
	assert.Nil(t, r.GetProfile("x.c"))
	p := r.GetProfile("x.cc")
	require.NotNil(t, p)
	assert.Equal(t, "C", p.Name)
	assert.Empty(t, p.Keywords)
}

func TestRegistryLangDirFiltering(t *testing.T) {
	fsys := fstest.MapFS{
		"user/langs/b.INI":       {Data: []byte("[b]\nextensions = b\n")},
		"user/langs/a.ini":       {Data: []byte("[a]\nextensions = a, b\n")},
		"user/langs/.hidden.ini": {Data: []byte("[h]\nextensions = h\n")},
		"user/langs/notes.txt":   {Data: []byte("[t]\nextensions = t\n")},
		"user/langs/sub.ini/x":   {Data: []byte("")},
	}
	r := NewRegistryWithFS(fsys)
	rep := r.Init("", Dirs{ConfigDir: "user", Fallback: "none"})

	assert.Len(t, rep.LangFiles, 2)
	names := []string{}
	for _, p := range r.Profiles() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Equal(t, "a", r.GetProfile("f.b").Name, "first registered profile wins")
	assert.Nil(t, r.GetProfile("f.h"))
	assert.Nil(t, r.GetProfile("f.t"))
}

func TestRegistryNothingLoaded(t *testing.T) {
	r := NewRegistryWithFS(fstest.MapFS{})
	rep := r.Init("missing.ini", Dirs{ConfigDir: "c", DataDir: "d"})

	assert.Empty(t, rep.Errors, "missing files are not errors")
	assert.False(t, r.Initialized())
	assert.False(t, r.IsEnabled())
	assert.Nil(t, r.GetProfile("a.c"))
}

func TestGetProfileExtensions(t *testing.T) {
	fsys := fstest.MapFS{
		"rules.ini": {Data: []byte("[python]\nextensions = py\n")},
	}
	r := NewRegistryWithFS(fsys)
	r.Init("rules.ini", Dirs{Fallback: "none"})

	tests := []struct {
		filename string
		match    bool
	}{
		{"foo.py", true},
		{"foo.PY", true},
		{"foo.Py", true},
		{"dir.py/foo", false},
		{"/tmp/x.tar.py", true},
		{"py", false},
		{"foo.", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got := r.GetProfile(tt.filename) != nil
			if got != tt.match {
				t.Errorf("GetProfile(%q) matched = %v, want %v", tt.filename, got, tt.match)
			}
		})
	}
}

func TestLangDirs(t *testing.T) {
	tests := []struct {
		name string
		rule string
		dirs Dirs
		want []string
	}{
		{
			name: "all locations",
			rule: filepath.Join("etc", "nanox", "rules.ini"),
			dirs: Dirs{ConfigDir: "cfg", DataDir: "data"},
			want: []string{
				filepath.Join("etc", "nanox", "langs"),
				filepath.Join("cfg", "langs"),
				filepath.Join("data", "langs"),
				DefaultLangDir,
			},
		},
		{
			name: "rule file in repository config",
			rule: "configs/nanox/highlight.ini",
			want: []string{filepath.Join("configs", "nanox", "langs")},
		},
		{
			name: "bare rule file name",
			rule: "rules.ini",
			want: []string{DefaultLangDir},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LangDirs(tt.rule, tt.dirs)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHelpers(t *testing.T) {
	assert.Equal(t, `"'`+"`", parseDelims(`" , ' `+"`"+` "`))
	assert.Equal(t, []CommentPair{{"<!--", "-->"}}, parseCommentPairs("<!-- -->, bad, ,"))
}
