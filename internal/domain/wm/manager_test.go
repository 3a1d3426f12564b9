package wm

import (
	"reflect"
	"testing"

	"github.com/Dave-Meloncelli/reliquary-desktop/internal/shared/types"
)

func testConfig() Config {
	return Config{
		Desktop:     types.Geometry{X: 0, Y: 0, Width: 1920, Height: 1080},
		Origin:      types.Position{X: 40, Y: 40},
		SpawnJitter: 0, // deterministic placement for assertions
	}
}

func testDescriptor(appID string) types.Descriptor {
	return types.Descriptor{
		AppID:       appID,
		Title:       appID,
		DefaultSize: types.Size{Width: 400, Height: 300},
	}
}

func TestOpenAssignsDistinctIDs(t *testing.T) {
	m := NewManager(testConfig())

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		rec := m.Open(testDescriptor("notes"))
		if seen[rec.ID] {
			t.Fatalf("duplicate window id %s", rec.ID)
		}
		seen[rec.ID] = true
	}
}

func TestIDsNeverReusedAfterClose(t *testing.T) {
	m := NewManager(testConfig())

	a := m.Open(testDescriptor("a"))
	m.Close(a.ID)
	b := m.Open(testDescriptor("b"))

	if a.ID == b.ID {
		t.Errorf("window id %s was reused after close", a.ID)
	}
}

func TestOpenMultipleInstancesOfSameApp(t *testing.T) {
	m := NewManager(testConfig())

	first := m.Open(testDescriptor("terminal"))
	second := m.Open(testDescriptor("terminal"))

	if first.ID == second.ID {
		t.Error("expected distinct records for concurrent instances of one app")
	}
	if len(m.List()) != 2 {
		t.Errorf("expected 2 windows, got %d", len(m.List()))
	}
}

func TestOpenAppliesDefaults(t *testing.T) {
	m := NewManager(testConfig())

	rec := m.Open(types.Descriptor{AppID: "bare"})
	if rec.Title != DefaultTitle {
		t.Errorf("expected default title, got %q", rec.Title)
	}
	if rec.Geometry.Width != DefaultWidth || rec.Geometry.Height != DefaultHeight {
		t.Errorf("expected default size, got %dx%d", rec.Geometry.Width, rec.Geometry.Height)
	}
}

func TestOpenClampsToMinSize(t *testing.T) {
	m := NewManager(testConfig())

	rec := m.Open(types.Descriptor{
		AppID:       "tiny",
		DefaultSize: types.Size{Width: 100, Height: 80},
		MinSize:     &types.Size{Width: 320, Height: 240},
	})

	if rec.Geometry.Width != 320 || rec.Geometry.Height != 240 {
		t.Errorf("expected 320x240 after clamp, got %dx%d", rec.Geometry.Width, rec.Geometry.Height)
	}
}

func TestSpawnJitterStaysInRange(t *testing.T) {
	cfg := testConfig()
	cfg.SpawnJitter = 200
	m := NewManager(cfg)

	for i := 0; i < 100; i++ {
		rec := m.Open(testDescriptor("notes"))
		if rec.Geometry.X < 40 || rec.Geometry.X > 240 {
			t.Fatalf("x offset %d outside [40,240]", rec.Geometry.X)
		}
		if rec.Geometry.Y < 40 || rec.Geometry.Y > 240 {
			t.Fatalf("y offset %d outside [40,240]", rec.Geometry.Y)
		}
	}
}

func TestZOrderDistinct(t *testing.T) {
	m := NewManager(testConfig())

	a := m.Open(testDescriptor("a"))
	b := m.Open(testDescriptor("b"))
	c := m.Open(testDescriptor("c"))

	m.Focus(a.ID)
	m.Maximize(b.ID)
	m.Minimize(c.ID)
	m.Focus(c.ID)

	seen := make(map[int64]string)
	for _, rec := range m.List() {
		if other, dup := seen[rec.ZIndex]; dup {
			t.Fatalf("windows %s and %s share z-index %d", other, rec.ID, rec.ZIndex)
		}
		seen[rec.ZIndex] = rec.ID
	}
}

func TestFocusRaisesWindow(t *testing.T) {
	m := NewManager(testConfig())

	a := m.Open(testDescriptor("a"))
	b := m.Open(testDescriptor("b"))

	if !m.Focus(a.ID) {
		t.Fatal("focus failed")
	}

	focused, ok := m.Focused()
	if !ok || focused.ID != a.ID {
		t.Fatal("expected a to be focused")
	}

	got, _ := m.Get(b.ID)
	if got.ZIndex != b.ZIndex {
		t.Errorf("b's z-index changed from %d to %d", b.ZIndex, got.ZIndex)
	}
}

func TestFocusIdempotentOnTopmost(t *testing.T) {
	m := NewManager(testConfig())

	m.Open(testDescriptor("a"))
	b := m.Open(testDescriptor("b"))

	m.Focus(b.ID)
	before := m.List()
	m.Focus(b.ID)
	after := m.List()

	if !reflect.DeepEqual(before, after) {
		t.Error("repeated focus on topmost window changed the registry")
	}
}

func TestFocusClearsMinimized(t *testing.T) {
	m := NewManager(testConfig())

	a := m.Open(testDescriptor("a"))
	m.Open(testDescriptor("b"))

	m.Minimize(a.ID)
	m.Focus(a.ID)

	got, _ := m.Get(a.ID)
	if got.Minimized {
		t.Error("focus should clear the minimized flag")
	}
}

func TestFocusTopmostMinimizedClearsFlag(t *testing.T) {
	m := NewManager(testConfig())

	m.Open(testDescriptor("a"))
	b := m.Open(testDescriptor("b"))

	// Minimize never changes z, so b stays topmost while minimized.
	m.Minimize(b.ID)

	if !m.Focus(b.ID) {
		t.Fatal("focus failed")
	}
	got, _ := m.Get(b.ID)
	if got.Minimized {
		t.Error("focus on a topmost minimized window must clear the flag")
	}
	if got.ZIndex != b.ZIndex {
		t.Errorf("un-minimizing the topmost window must not consume a z value, got %d want %d", got.ZIndex, b.ZIndex)
	}

	// Only the second consecutive call is the true no-op.
	before := m.List()
	m.Focus(b.ID)
	if !reflect.DeepEqual(before, m.List()) {
		t.Error("second focus on a topmost visible window changed the registry")
	}
}

func TestFocusUnknownIDIsNoop(t *testing.T) {
	m := NewManager(testConfig())
	a := m.Open(testDescriptor("a"))

	if m.Focus("win_999") {
		t.Error("focus on unknown id should report false")
	}

	got, _ := m.Get(a.ID)
	if got.ZIndex != a.ZIndex {
		t.Error("unknown-id focus must leave the registry unchanged")
	}
}

func TestMinimizeTogglesOnlyFlag(t *testing.T) {
	m := NewManager(testConfig())

	a := m.Open(testDescriptor("a"))
	m.Minimize(a.ID)

	got, _ := m.Get(a.ID)
	if !got.Minimized {
		t.Fatal("expected minimized")
	}
	if got.ZIndex != a.ZIndex || got.Geometry != a.Geometry || got.Maximized {
		t.Error("minimize must not touch z-index, geometry or maximized")
	}

	m.Minimize(a.ID)
	got, _ = m.Get(a.ID)
	if got.Minimized {
		t.Error("second minimize should restore the window")
	}
}

func TestMaximizeRestoreRoundTrip(t *testing.T) {
	m := NewManager(testConfig())

	a := m.Open(testDescriptor("a"))
	m.Move(a.ID, 123, 77)
	before, _ := m.Get(a.ID)

	m.Maximize(a.ID)
	maxed, _ := m.Get(a.ID)
	if !maxed.Maximized {
		t.Fatal("expected maximized")
	}
	if maxed.Geometry != m.Desktop() {
		t.Errorf("expected desktop bounds, got %+v", maxed.Geometry)
	}
	if maxed.PreMaximize == nil || *maxed.PreMaximize != before.Geometry {
		t.Fatal("pre-maximize geometry not captured")
	}

	m.Maximize(a.ID)
	restored, _ := m.Get(a.ID)
	if restored.Maximized {
		t.Error("expected restored")
	}
	if restored.Geometry != before.Geometry {
		t.Errorf("expected exact geometry %+v, got %+v", before.Geometry, restored.Geometry)
	}
}

func TestMoveWhileMaximizedDoesNotCorruptRestore(t *testing.T) {
	m := NewManager(testConfig())

	a := m.Open(testDescriptor("a"))
	before, _ := m.Get(a.ID)

	m.Maximize(a.ID)
	m.Move(a.ID, 500, 500) // host permitted a drag mid-maximize
	m.Maximize(a.ID)

	restored, _ := m.Get(a.ID)
	if restored.Geometry != before.Geometry {
		t.Errorf("restore after mid-maximize drag got %+v, want %+v", restored.Geometry, before.Geometry)
	}
}

func TestMaximizeBringsToFront(t *testing.T) {
	m := NewManager(testConfig())

	a := m.Open(testDescriptor("a"))
	b := m.Open(testDescriptor("b"))

	m.Maximize(a.ID)
	focused, _ := m.Focused()
	if focused.ID != a.ID {
		t.Fatal("maximize should raise the window")
	}

	// restore leaves z alone
	zBefore, _ := m.Get(a.ID)
	m.Maximize(a.ID)
	zAfter, _ := m.Get(a.ID)
	if zAfter.ZIndex != zBefore.ZIndex {
		t.Error("restore must not change z-index")
	}

	got, _ := m.Get(b.ID)
	if got.ZIndex != b.ZIndex {
		t.Error("maximizing a must not renumber b")
	}
}

func TestMinimizedMaximizedCompose(t *testing.T) {
	m := NewManager(testConfig())

	a := m.Open(testDescriptor("a"))
	m.Maximize(a.ID)
	m.Minimize(a.ID)

	got, _ := m.Get(a.ID)
	if !got.Minimized || !got.Maximized {
		t.Fatal("minimizing a maximized window must keep both flags")
	}
	if got.Geometry != m.Desktop() {
		t.Error("minimize must leave the maximized geometry in place")
	}

	// Un-minimize via focus: back to the maximized state, not pre-maximize.
	m.Focus(a.ID)
	got, _ = m.Get(a.ID)
	if got.Minimized {
		t.Error("focus should clear minimized")
	}
	if !got.Maximized || got.Geometry != m.Desktop() {
		t.Error("window should return to its maximized state")
	}
}

func TestMoveDoesNotFocus(t *testing.T) {
	m := NewManager(testConfig())

	a := m.Open(testDescriptor("a"))
	b := m.Open(testDescriptor("b"))

	m.Move(a.ID, 10, 20)

	got, _ := m.Get(a.ID)
	if got.Geometry.X != 10 || got.Geometry.Y != 20 {
		t.Error("move should update position")
	}
	if got.Geometry.Width != a.Geometry.Width || got.Geometry.Height != a.Geometry.Height {
		t.Error("move must not change size")
	}
	if got.ZIndex != a.ZIndex {
		t.Error("move must not change z-index")
	}

	focused, _ := m.Focused()
	if focused.ID != b.ID {
		t.Error("dragging a background window must not change the focused window")
	}
}

func TestResize(t *testing.T) {
	m := NewManager(testConfig())

	a := m.Open(testDescriptor("a"))
	m.Resize(a.ID, 800, 600)

	got, _ := m.Get(a.ID)
	if got.Geometry.Width != 800 || got.Geometry.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", got.Geometry.Width, got.Geometry.Height)
	}
	if got.Geometry.X != a.Geometry.X || got.Geometry.Y != a.Geometry.Y {
		t.Error("resize must not move the window")
	}
}

func TestResizeIgnoredWhileMaximized(t *testing.T) {
	m := NewManager(testConfig())

	a := m.Open(testDescriptor("a"))
	m.Maximize(a.ID)
	m.Resize(a.ID, 100, 100)

	got, _ := m.Get(a.ID)
	if got.Geometry != m.Desktop() {
		t.Error("resize while maximized should be ignored")
	}
}

func TestCloseRemovesRecordOnly(t *testing.T) {
	m := NewManager(testConfig())

	a := m.Open(testDescriptor("a"))
	b := m.Open(testDescriptor("b"))
	c := m.Open(testDescriptor("c"))

	if !m.Close(b.ID) {
		t.Fatal("close failed")
	}
	if _, ok := m.Get(b.ID); ok {
		t.Fatal("closed window still present")
	}

	gotA, _ := m.Get(a.ID)
	gotC, _ := m.Get(c.ID)
	if gotA.ZIndex != a.ZIndex || gotC.ZIndex != c.ZIndex {
		t.Error("close must not renumber surviving windows")
	}

	focused, _ := m.Focused()
	if focused.ID != c.ID {
		t.Error("focus should fall to the surviving window with maximum z")
	}
}

func TestCloseUnknownIDIsNoop(t *testing.T) {
	m := NewManager(testConfig())
	m.Open(testDescriptor("a"))

	before := m.List()
	if m.Close("win_404") {
		t.Error("close on unknown id should report false")
	}
	if !reflect.DeepEqual(before, m.List()) {
		t.Error("close on unknown id must leave the registry unchanged")
	}
}

func TestListAscendingZOrder(t *testing.T) {
	m := NewManager(testConfig())

	a := m.Open(testDescriptor("a"))
	m.Open(testDescriptor("b"))
	m.Focus(a.ID)

	list := m.List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ZIndex >= list[i].ZIndex {
			t.Fatal("list must be strictly ascending by z-index")
		}
	}
	if list[len(list)-1].ID != a.ID {
		t.Error("last rendered window should be the focused one")
	}
}

func TestStats(t *testing.T) {
	m := NewManager(testConfig())

	m.Open(testDescriptor("a"))
	b := m.Open(testDescriptor("b"))
	c := m.Open(testDescriptor("c"))
	m.Minimize(b.ID)
	m.Maximize(c.ID)

	stats := m.Stats()
	if stats.TotalWindows != 3 {
		t.Errorf("expected 3 total, got %d", stats.TotalWindows)
	}
	if stats.MinimizedWindows != 1 || stats.VisibleWindows != 2 {
		t.Errorf("unexpected visibility split: %+v", stats)
	}
	if stats.MaximizedWindows != 1 {
		t.Errorf("expected 1 maximized, got %d", stats.MaximizedWindows)
	}
	if stats.FocusedID == nil || *stats.FocusedID != c.ID {
		t.Error("expected c to be the focused window")
	}
}

// Mirrors a full user session: open two windows, refocus, maximize, restore.
func TestScenarioFocusThenMaximize(t *testing.T) {
	m := NewManager(testConfig())

	a := m.Open(testDescriptor("a"))
	b := m.Open(testDescriptor("b"))
	if a.ZIndex != 1 || b.ZIndex != 2 {
		t.Fatalf("expected z 1 and 2, got %d and %d", a.ZIndex, b.ZIndex)
	}

	m.Focus(a.ID)
	gotA, _ := m.Get(a.ID)
	gotB, _ := m.Get(b.ID)
	if gotA.ZIndex != 3 || gotB.ZIndex != 2 {
		t.Fatalf("after focus expected a=3 b=2, got a=%d b=%d", gotA.ZIndex, gotB.ZIndex)
	}

	preMax := gotA.Geometry
	m.Maximize(a.ID)
	gotA, _ = m.Get(a.ID)
	if gotA.ZIndex != 4 {
		t.Fatalf("expected z 4 after maximize, got %d", gotA.ZIndex)
	}
	if gotA.Geometry != m.Desktop() {
		t.Fatal("expected full-surface bounds")
	}

	m.Maximize(a.ID)
	gotA, _ = m.Get(a.ID)
	if gotA.Geometry != preMax {
		t.Fatalf("expected exact pre-maximize geometry %+v, got %+v", preMax, gotA.Geometry)
	}
	if gotA.ZIndex != 4 {
		t.Fatalf("restore must keep z, got %d", gotA.ZIndex)
	}
}

func TestSnapshotCapturesOrderAndFocus(t *testing.T) {
	m := NewManager(testConfig())

	a := m.Open(testDescriptor("a"))
	b := m.Open(testDescriptor("b"))
	m.Minimize(b.ID)
	m.Focus(a.ID)

	ws := m.Snapshot()
	if len(ws.Windows) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(ws.Windows))
	}
	if ws.Windows[0].ID != b.ID || ws.Windows[1].ID != a.ID {
		t.Error("snapshot must preserve ascending z-order")
	}
	if !ws.Windows[0].Minimized {
		t.Error("snapshot must carry the minimized flag")
	}
	if ws.FocusedID == nil || *ws.FocusedID != a.ID {
		t.Error("snapshot must record the focused window")
	}
}
