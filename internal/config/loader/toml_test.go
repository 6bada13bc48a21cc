package loader

import (
	"errors"
	"strings"
	"testing"
)

func TestTOMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.toml", `
[editor]
tab_width = 4

[highlight]
rules = "/etc/nanox/rules.ini"
watch = false
`)

	loader := NewTOMLLoaderWithFS(memfs, "/config.toml")
	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if v, ok := Lookup(config, "editor", "tab_width"); !ok || v != int64(4) {
		t.Errorf("editor.tab_width = %v (%T), want 4", v, v)
	}
	if v, ok := Lookup(config, "highlight", "rules"); !ok || v != "/etc/nanox/rules.ini" {
		t.Errorf("highlight.rules = %v, want /etc/nanox/rules.ini", v)
	}
	if v, ok := Lookup(config, "highlight", "watch"); !ok || v != false {
		t.Errorf("highlight.watch = %v, want false", v)
	}
}

func TestTOMLLoader_Missing(t *testing.T) {
	loader := NewTOMLLoaderWithFS(NewMemFS(), "/nope.toml")
	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if config != nil {
		t.Errorf("Load() = %v, want nil map", config)
	}
}

func TestTOMLLoader_ParseError(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.toml", "[editor\ntab_width = 4\n")

	_, err := NewTOMLLoaderWithFS(memfs, "/bad.toml").Load()
	if err == nil {
		t.Fatal("Load() error = nil, want parse error")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if pe.Path != "/bad.toml" {
		t.Errorf("ParseError.Path = %q, want /bad.toml", pe.Path)
	}
	if pe.Line < 1 {
		t.Errorf("ParseError.Line = %d, want a position", pe.Line)
	}
}

func TestTOMLLoader_LoadFromReader(t *testing.T) {
	config, err := NewTOMLLoader("").LoadFromReader(strings.NewReader(`[logging]
level = "debug"`))
	if err != nil {
		t.Fatalf("LoadFromReader() error = %v", err)
	}
	if v, _ := Lookup(config, "logging", "level"); v != "debug" {
		t.Errorf("logging.level = %v, want debug", v)
	}
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"editor":  map[string]any{"tab_width": int64(8), "keep": true},
		"logging": "info",
	}
	src := map[string]any{
		"editor":  map[string]any{"tab_width": int64(2)},
		"logging": "debug",
	}

	got := DeepMerge(dst, src)
	if v, _ := Lookup(got, "editor", "tab_width"); v != int64(2) {
		t.Errorf("editor.tab_width = %v, want 2", v)
	}
	if v, _ := Lookup(got, "editor", "keep"); v != true {
		t.Errorf("editor.keep = %v, want true", v)
	}
	if got["logging"] != "debug" {
		t.Errorf("logging = %v, want debug", got["logging"])
	}
}

func TestLookup_Missing(t *testing.T) {
	data := map[string]any{"a": map[string]any{"b": 1}}
	if _, ok := Lookup(data, "a", "c"); ok {
		t.Error("Lookup(a.c) found a value")
	}
	if _, ok := Lookup(data, "a", "b", "c"); ok {
		t.Error("Lookup through a scalar found a value")
	}
}
