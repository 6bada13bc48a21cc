package dirty

import (
	"reflect"
	"testing"
)

func TestNewLineRegion(t *testing.T) {
	t.Run("normal order", func(t *testing.T) {
		r := NewLineRegion(5, 10)
		if r.StartLine != 5 || r.EndLine != 10 {
			t.Errorf("NewLineRegion(5, 10) = {%d, %d}, want {5, 10}", r.StartLine, r.EndLine)
		}
	})

	t.Run("reversed order", func(t *testing.T) {
		r := NewLineRegion(10, 5)
		if r.StartLine != 5 || r.EndLine != 10 {
			t.Errorf("NewLineRegion(10, 5) should swap to {5, 10}, got {%d, %d}", r.StartLine, r.EndLine)
		}
	})
}

func TestRegionLineCount(t *testing.T) {
	tests := []struct {
		r    Region
		want int
	}{
		{NewSingleLine(3), 1},
		{NewLineRegion(2, 6), 5},
		{Region{StartLine: 4, EndLine: 3}, 0},
		{Region{StartLine: -5, EndLine: -1}, 0},
	}
	for _, tt := range tests {
		if got := tt.r.LineCount(); got != tt.want {
			t.Errorf("%+v.LineCount() = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestRegionMerge(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Region
		want  Region
		merge bool
	}{
		{"overlap", NewLineRegion(1, 5), NewLineRegion(4, 8), NewLineRegion(1, 8), true},
		{"adjacent", NewLineRegion(1, 3), NewLineRegion(4, 6), NewLineRegion(1, 6), true},
		{"contained", NewLineRegion(1, 9), NewSingleLine(4), NewLineRegion(1, 9), true},
		{"gap", NewLineRegion(1, 2), NewLineRegion(4, 5), Region{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.Merge(tt.b)
			if ok != tt.merge || got != tt.want {
				t.Errorf("Merge() = %+v, %v; want %+v, %v", got, ok, tt.want, tt.merge)
			}
		})
	}
}

func TestRegionSubtract(t *testing.T) {
	tests := []struct {
		name string
		a, b Region
		want []Region
	}{
		{"disjoint", NewLineRegion(1, 2), NewLineRegion(5, 6), []Region{NewLineRegion(1, 2)}},
		{"middle", NewLineRegion(1, 9), NewLineRegion(4, 5), []Region{NewLineRegion(1, 3), NewLineRegion(6, 9)}},
		{"head", NewLineRegion(1, 9), NewLineRegion(0, 4), []Region{NewLineRegion(5, 9)}},
		{"all", NewLineRegion(3, 4), NewLineRegion(0, 9), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Subtract(tt.b)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Subtract() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFlags(t *testing.T) {
	f := Edit | Mode
	if !f.Has(Edit) || f.Has(Edit|Hard) {
		t.Errorf("Has() wrong for %v", f)
	}
	if !f.Any(Hard | Mode) {
		t.Errorf("Any(Hard|Mode) = false for %v", f)
	}
	if got := f.String(); got != "edit|mode" {
		t.Errorf("String() = %q, want %q", got, "edit|mode")
	}
	if got := Flags(0).String(); got != "none" {
		t.Errorf("String() = %q, want %q", got, "none")
	}
}
