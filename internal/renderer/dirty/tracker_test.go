package dirty

import (
	"reflect"
	"testing"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	if tracker.IsDirty() {
		t.Error("New tracker should not be dirty")
	}
	if tracker.maxRegions != DefaultMaxRegions {
		t.Errorf("maxRegions = %d, want %d", tracker.maxRegions, DefaultMaxRegions)
	}
}

func TestTrackerMarkLine(t *testing.T) {
	tracker := NewTracker()

	tracker.MarkLine(5)

	if !tracker.IsDirty() {
		t.Error("Should be dirty after marking line")
	}
	if !tracker.IsLineDirty(5) {
		t.Error("Line 5 should be dirty")
	}
	if tracker.IsLineDirty(4) {
		t.Error("Line 4 should not be dirty")
	}
}

func TestTrackerCoalesces(t *testing.T) {
	tracker := NewTracker()

	tracker.MarkLine(5)
	tracker.MarkLine(9)
	tracker.MarkLines(6, 8)

	if tracker.RegionCount() != 1 {
		t.Fatalf("RegionCount() = %d, want 1", tracker.RegionCount())
	}
	want := []Region{NewLineRegion(5, 9)}
	if got := tracker.DirtyRegions(); !reflect.DeepEqual(got, want) {
		t.Errorf("DirtyRegions() = %+v, want %+v", got, want)
	}
}

func TestTrackerDirtyLinesSorted(t *testing.T) {
	tracker := NewTracker()

	tracker.MarkLine(7)
	tracker.MarkLine(2)
	tracker.MarkLines(4, 3)

	want := []int{2, 3, 4, 7}
	if got := tracker.DirtyLines(100); !reflect.DeepEqual(got, want) {
		t.Errorf("DirtyLines() = %v, want %v", got, want)
	}
	if got := tracker.DirtyLines(4); !reflect.DeepEqual(got, []int{2, 3}) {
		t.Errorf("DirtyLines(4) = %v, want [2 3]", got)
	}
}

func TestTrackerMaxRegions(t *testing.T) {
	tracker := NewTracker()
	tracker.SetMaxRegions(2)

	tracker.MarkLine(0)
	tracker.MarkLine(10)
	if tracker.AllDirty() {
		t.Fatal("two regions should not overflow")
	}
	tracker.MarkLine(20)

	if !tracker.AllDirty() {
		t.Error("exceeding the region limit should mark every line")
	}
	if !tracker.IsLineDirty(15) {
		t.Error("Line 15 should be dirty after overflow")
	}
}

func TestTrackerClearLines(t *testing.T) {
	tracker := NewTracker()
	tracker.MarkLines(0, 10)

	tracker.ClearLines(3, 5)

	want := []int{0, 1, 2, 6, 7, 8, 9, 10}
	if got := tracker.DirtyLines(100); !reflect.DeepEqual(got, want) {
		t.Errorf("DirtyLines() = %v, want %v", got, want)
	}
}

func TestTrackerClearLinesFromAll(t *testing.T) {
	tracker := NewTracker()
	tracker.MarkAll()

	tracker.ClearLines(2, 4)

	if tracker.AllDirty() {
		t.Error("clearing a range should leave the tracker partial")
	}
	for line, dirty := range map[int]bool{0: true, 1: true, 2: false, 4: false, 5: true, 1000: true} {
		if tracker.IsLineDirty(line) != dirty {
			t.Errorf("IsLineDirty(%d) = %v, want %v", line, !dirty, dirty)
		}
	}
}

func TestTrackerClear(t *testing.T) {
	tracker := NewTracker()
	tracker.MarkLine(1)
	tracker.MarkAll()

	tracker.Clear()

	if tracker.IsDirty() {
		t.Error("Clear should unmark everything")
	}
	if tracker.DirtyLines(10) != nil {
		t.Error("DirtyLines should be empty after Clear")
	}
}

func TestTrackerIgnoresNegativeRegion(t *testing.T) {
	tracker := NewTracker()
	tracker.MarkLines(-4, -1)
	if tracker.IsDirty() {
		t.Error("regions before the first line should be ignored")
	}
	tracker.MarkLines(-2, 1)
	if got := tracker.DirtyLines(10); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Errorf("DirtyLines() = %v, want [0 1]", got)
	}
}
