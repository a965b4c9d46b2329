package scene

import (
	"math/rand"
	"testing"
	"time"

	"github.com/san-kum/atomscene/internal/bounds"
	"github.com/san-kum/atomscene/internal/motion"
	"github.com/san-kum/atomscene/internal/theme"
)

func newTestScene(seed int64) *Scene {
	return New(Options{
		Width:   1280,
		Height:  720,
		Padding: bounds.DefaultPadding,
		Tuning:  motion.DefaultTuning(),
		Mode:    theme.Light,
		Rand:    rand.New(rand.NewSource(seed)),
	})
}

func TestNewUsesDefaults(t *testing.T) {
	s := New(Options{Width: 1280, Height: 720, Rand: rand.New(rand.NewSource(1))})
	if s.Registry.Len() != 7 {
		t.Errorf("expected default atom table, got %d atoms", s.Registry.Len())
	}
	if s.Padding() != bounds.DefaultPadding {
		t.Errorf("zero padding should normalize to defaults, got %+v", s.Padding())
	}
	if s.Theme.Mode() != theme.Light {
		t.Errorf("expected light mode, got %v", s.Theme.Mode())
	}
}

func TestPointerTracking(t *testing.T) {
	s := newTestScene(1)
	if s.Cursor().Tracked {
		t.Fatal("cursor tracked before any movement")
	}
	s.PointerMove(10, 20)
	if c := s.Cursor(); !c.Tracked || c.X != 10 || c.Y != 20 {
		t.Errorf("cursor after move = %+v", c)
	}
	s.PointerLeave()
	if s.Cursor().Tracked {
		t.Error("cursor still tracked after leave")
	}
}

func TestResizeClampsImmediately(t *testing.T) {
	s := newTestScene(2)
	for _, a := range s.Registry.All() {
		a.X = 1000
		a.Y = 500
	}

	s.Resize(800, 500)
	b := s.Bounds()
	if b.MaxX != 650 || b.MaxY != 410 {
		t.Fatalf("bounds after resize = %+v", b)
	}
	for _, a := range s.Registry.All() {
		if !b.Contains(a.X, a.Y, a.Size) {
			t.Errorf("%s left at (%.1f, %.1f) after resize", a.ID, a.X, a.Y)
		}
	}
	if s.Frames() != 0 {
		t.Error("resize should not advance the animation")
	}
}

func TestFrameUsesWallClock(t *testing.T) {
	s := newTestScene(3)
	t0 := time.Unix(100, 0)

	if dt := s.Frame(t0); dt != 0 {
		t.Errorf("first frame dt = %v, want 0", dt)
	}
	if dt := s.Frame(t0.Add(16 * time.Millisecond)); dt != 0.016 {
		t.Errorf("second frame dt = %v, want 0.016", dt)
	}
	if dt := s.Frame(t0.Add(10 * time.Second)); dt != motion.MaxDt {
		t.Errorf("long pause dt = %v, want %v", dt, motion.MaxDt)
	}
	if s.Frames() != 3 {
		t.Errorf("Frames() = %d", s.Frames())
	}
}

func TestSetModeIdempotent(t *testing.T) {
	s := newTestScene(4)
	s.SetMode(theme.Dark)
	s.SetMode(theme.Light)
	once := s.Theme.State()
	s.SetMode(theme.Light)
	if s.Theme.State() != once {
		t.Error("repeated light mode changed the display state")
	}
}

func TestSetPaddingReclamps(t *testing.T) {
	s := newTestScene(5)
	s.SetPadding(bounds.Padding{Top: 200, Bottom: 200, Left: 400, Right: 400})
	b := s.Bounds()
	if b.MinX != 400 || b.MaxX != 880 {
		t.Fatalf("bounds = %+v", b)
	}
	for _, a := range s.Registry.All() {
		if a.X < b.MinX || a.Y < b.MinY {
			t.Errorf("%s not clamped to new minimum edges", a.ID)
		}
	}
}

func TestAtomAt(t *testing.T) {
	s := newTestScene(6)
	a := s.Registry.Find("pink")
	cx, cy := a.Center()
	if got := s.AtomAt(cx, cy); got == nil {
		t.Error("expected an atom at pink's center")
	}
	if got := s.AtomAt(-10, -10); got != nil {
		t.Errorf("AtomAt(-10,-10) = %s", got.ID)
	}
}
