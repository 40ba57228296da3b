//go:build !windows

package runner

import (
	"context"
	"io"
	"log"
	"testing"
	"time"
)

func TestHeadlessSession(t *testing.T) {
	trace := log.New(io.Discard, "", 0)
	w := newHeadlessWindow("Game", trace)
	c := NewController(Config{Title: "Game"}, ControllerOptions{Window: w, Trace: trace})
	c.Start(context.Background())

	if !w.Visible() {
		t.Fatal("window not visible after start")
	}
	if got := w.Text(ControlTitle); got != "Game" {
		t.Errorf("title text = %q", got)
	}

	menu := make(chan MenuID, 4)
	done := make(chan struct{})
	go func() {
		Loop(menu, &headlessPump{win: w, c: c}, c)
		close(done)
	}()

	// Menu events reach the loop through the same wake path the signals use.
	tray := newSignalTray(menu, w.wake, trace)
	tray.emit(MenuHide)
	tray.emit(MenuQuit)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not exit after quit")
	}

	if c.State() != StateTerminated {
		t.Errorf("State() = %s, want terminated", c.State())
	}
	if w.Visible() {
		t.Error("window still visible after hide")
	}
	if w.ExStyle()&ExAppWindow != 0 {
		t.Errorf("app window style still set: %#x", w.ExStyle())
	}
}

func TestHeadlessTimerTicks(t *testing.T) {
	trace := log.New(io.Discard, "", 0)
	w := newHeadlessWindow("Game", trace)
	defer w.Quit()

	if err := w.StartTimer(10 * time.Millisecond); err != nil {
		t.Fatalf("StartTimer: %v", err)
	}

	pump := &headlessPump{win: w}
	m, ok := pump.Next()
	if !ok || m.Kind != MsgTimer {
		t.Fatalf("Next() = %+v, %v; want a timer message", m, ok)
	}

	w.Quit()
	if _, ok := pump.Next(); ok {
		t.Error("Next() after Quit reported a message")
	}
}

func TestHeadlessCapabilities(t *testing.T) {
	p := newPlatform(log.New(io.Discard, "", 0))
	if p.Capabilities().Icon {
		t.Error("headless platform claims icon support")
	}
}
