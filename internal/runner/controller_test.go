package runner

import (
	"context"
	"testing"
	"time"

	"github.com/NRJ900/Quest-Passer/internal/icon"
)

func startController(t *testing.T, cfg Config) (*Controller, *fakeWindow, *fakeClock) {
	t.Helper()
	w := newFakeWindow()
	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	c := NewController(cfg, ControllerOptions{Window: w, Tray: &fakeTray{}, Now: clock.Now})
	c.Start(context.Background())
	return c, w, clock
}

func TestControllerStartShown(t *testing.T) {
	c, w, _ := startController(t, Config{Title: "Game"})

	if c.State() != StateRunning {
		t.Errorf("State() = %s, want running", c.State())
	}
	if c.Visibility() != Shown {
		t.Errorf("Visibility() = %s, want shown", c.Visibility())
	}
	if mode, _ := w.lastShow(); mode != ShowNoActivate {
		t.Errorf("initial show mode = %d, want ShowNoActivate", mode)
	}
	if w.timer != time.Second {
		t.Errorf("timer period = %s, want 1s", w.timer)
	}
	if w.progMax != ProgressCap {
		t.Errorf("progress max = %d, want %d", w.progMax, ProgressCap)
	}
	if got := w.texts[ControlDuration]; got != "Running: 00:00:00" {
		t.Errorf("duration text = %q", got)
	}
	// "Game" measures 40px in the fake window.
	if got, want := w.labels[ControlTitle], (Rect{X: 150, Y: 50, Width: 100, Height: 40}); got != want {
		t.Errorf("title rect = %+v, want %+v", got, want)
	}
}

func TestControllerStartHidden(t *testing.T) {
	c, w, _ := startController(t, Config{Title: "Game", StartHidden: true})

	if c.Visibility() != HiddenToTray {
		t.Fatalf("Visibility() = %s, want hidden", c.Visibility())
	}
	if mode, _ := w.lastShow(); mode != ShowHide {
		t.Errorf("show mode = %d, want ShowHide", mode)
	}
	if w.style&ExAppWindow != 0 {
		t.Errorf("app window style still set: %#x", w.style)
	}
	if w.style&hiddenStyles != hiddenStyles {
		t.Errorf("hidden styles not set: %#x", w.style)
	}
}

func TestControllerMeasureFallback(t *testing.T) {
	w := newFakeWindow()
	w.measureOK = false
	c := NewController(DefaultConfig(), ControllerOptions{Window: w})
	c.Start(context.Background())

	for id, r := range w.labels {
		if id == ControlProgress {
			continue
		}
		if r.Width != 240 || r.X != 80 {
			t.Errorf("label %s = %+v, want fallback width 240 at x 80", id, r)
		}
	}
}

func TestControllerTrayFailureIsNotFatal(t *testing.T) {
	w := newFakeWindow()
	tray := &fakeTray{err: errTray}
	c := NewController(Config{Title: "T"}, ControllerOptions{Window: w, Tray: tray})
	c.Start(context.Background())

	if tray.opens != 1 || tray.title != "T" {
		t.Errorf("tray opened %d times with %q", tray.opens, tray.title)
	}
	if c.State() != StateRunning {
		t.Errorf("State() = %s, want running", c.State())
	}
}

func TestControllerIcon(t *testing.T) {
	asset := &icon.Asset{Pix: make([]byte, 4), Width: 1, Height: 1}

	tests := []struct {
		name     string
		url      string
		asset    *icon.Asset
		wantLoad bool
		wantSet  bool
	}{
		{"no icon flag", "", asset, false, false},
		{"loaded", "https://x/i.png", asset, true, true},
		{"load failed", "https://x/i.png", nil, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newFakeWindow()
			icons := &fakeIcons{asset: tt.asset}
			c := NewController(Config{Title: "T", IconURL: tt.url}, ControllerOptions{Window: w, Icons: icons})
			c.Start(context.Background())

			if got := len(icons.urls) == 1; got != tt.wantLoad {
				t.Errorf("loaded = %v, want %v", got, tt.wantLoad)
			}
			if got := w.icon != nil; got != tt.wantSet {
				t.Errorf("icon applied = %v, want %v", got, tt.wantSet)
			}
			if c.State() != StateRunning {
				t.Errorf("State() = %s, want running", c.State())
			}
		})
	}
}

func TestControllerTick(t *testing.T) {
	c, w, clock := startController(t, Config{Title: "T"})

	clock.Advance(61 * time.Second)
	c.Handle(Message{Kind: MsgTimer})
	if got := w.texts[ControlDuration]; got != "Running: 00:01:01" {
		t.Errorf("duration = %q, want Running: 00:01:01", got)
	}
	if w.progress != 61 {
		t.Errorf("progress = %d, want 61", w.progress)
	}

	clock.Advance(time.Hour)
	c.Handle(Message{Kind: MsgTimer})
	if got := w.texts[ControlDuration]; got != "Running: 01:01:01" {
		t.Errorf("duration = %q, want Running: 01:01:01", got)
	}
	if w.progress != ProgressCap {
		t.Errorf("progress = %d, want %d", w.progress, ProgressCap)
	}
}

func TestControllerShowHide(t *testing.T) {
	c, w, _ := startController(t, Config{Title: "T"})
	shows := len(w.shows)

	// Show while shown is a no-op.
	c.HandleMenu(MenuShow)
	if len(w.shows) != shows {
		t.Fatalf("Show while shown touched the window")
	}

	c.HandleMenu(MenuHide)
	if c.Visibility() != HiddenToTray {
		t.Fatalf("Visibility() = %s after hide", c.Visibility())
	}
	hiddenStyle := w.style
	shows = len(w.shows)

	c.HandleMenu(MenuHide)
	if len(w.shows) != shows || w.style != hiddenStyle {
		t.Errorf("Hide while hidden touched the window")
	}

	c.HandleMenu(MenuShow)
	if c.Visibility() != Shown {
		t.Fatalf("Visibility() = %s after show", c.Visibility())
	}
	if mode, _ := w.lastShow(); mode != ShowNormal {
		t.Errorf("show mode = %d, want ShowNormal", mode)
	}
	if w.style&hiddenStyles != 0 || w.style&ExAppWindow == 0 {
		t.Errorf("style after show = %#x", w.style)
	}
}

func TestControllerVisibilityMatchesStyle(t *testing.T) {
	c, w, _ := startController(t, Config{Title: "T"})

	for _, id := range []MenuID{MenuHide, MenuShow, MenuShow, MenuHide, MenuHide, MenuShow} {
		c.HandleMenu(id)
		app := w.style&ExAppWindow != 0
		if app != (c.Visibility() == Shown) {
			t.Fatalf("after %s: visibility %s but app window style %v", id, c.Visibility(), app)
		}
	}
}

func TestControllerQuit(t *testing.T) {
	c, w, _ := startController(t, Config{Title: "T"})
	w.onClose = func() { c.Handle(Message{Kind: MsgDestroy}) }

	c.HandleMenu(MenuQuit)
	if w.closes != 1 {
		t.Errorf("Close called %d times, want 1", w.closes)
	}
	if c.State() != StateTerminated {
		t.Errorf("State() = %s, want terminated", c.State())
	}
	if w.quits != 1 {
		t.Errorf("Quit called %d times, want 1", w.quits)
	}

	// Further events are ignored once terminated.
	c.Handle(Message{Kind: MsgDestroy})
	c.HandleMenu(MenuShow)
	c.Handle(Message{Kind: MsgTimer})
	if w.quits != 1 {
		t.Errorf("Quit called %d times after terminate, want 1", w.quits)
	}
}

func TestPaintStyle(t *testing.T) {
	c, _, _ := startController(t, Config{Title: "T"})

	for _, id := range []ControlID{ControlTitle, ControlBranding, ControlSubtitle, ControlDuration, ControlProgress} {
		s := c.PaintStyle(id)
		if s.Foreground != TextColor {
			t.Errorf("%s foreground = %#x", id, s.Foreground)
		}
		wantOpaque := id == ControlDuration
		if s.Opaque != wantOpaque {
			t.Errorf("%s opaque = %v, want %v", id, s.Opaque, wantOpaque)
		}
		if s.Opaque && s.Background != BackgroundColor {
			t.Errorf("%s background = %#x", id, s.Background)
		}
	}
}
