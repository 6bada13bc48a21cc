package loader

import "testing"

func fakeEnv(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func TestEnvLoader_Load(t *testing.T) {
	loader := NewEnvLoader("NANOX_")
	loader.lookup = fakeEnv(map[string]string{
		"NANOX_TAB_WIDTH": "2",
		"NANOX_LOG_LEVEL": "debug",
		"NANOX_WATCH":     "off",
		"UNRELATED":       "x",
	})

	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if v, ok := Lookup(config, "editor", "tab_width"); !ok || v != int64(2) {
		t.Errorf("editor.tab_width = %v (%T), want 2", v, v)
	}
	if v, ok := Lookup(config, "logging", "level"); !ok || v != "debug" {
		t.Errorf("logging.level = %v, want debug", v)
	}
	if v, ok := Lookup(config, "highlight", "watch"); !ok || v != false {
		t.Errorf("highlight.watch = %v, want false", v)
	}
	if len(config) != 3 {
		t.Errorf("len(config) = %d, want 3 sections", len(config))
	}
}

func TestEnvLoader_AddMapping(t *testing.T) {
	loader := NewEnvLoaderWithMapping("NANOX_", nil)
	loader.AddMapping("NANOX_FOO", "x.foo")
	loader.lookup = fakeEnv(map[string]string{"NANOX_FOO": "bar"})

	config, _ := loader.Load()
	if v, _ := Lookup(config, "x", "foo"); v != "bar" {
		t.Errorf("x.foo = %v, want bar", v)
	}
	if loader.Prefix() != "NANOX_" {
		t.Errorf("Prefix() = %q", loader.Prefix())
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"", ""},
		{"true", true},
		{"Yes", true},
		{"off", false},
		{"42", int64(42)},
		{"-3", int64(-3)},
		{"nanox-dark", "nanox-dark"},
	}
	for _, tt := range tests {
		if got := parseValue(tt.in); got != tt.want {
			t.Errorf("parseValue(%q) = %v (%T), want %v", tt.in, got, got, tt.want)
		}
	}
}
