//go:build !windows

package runner

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/NRJ900/Quest-Passer/internal/icon"
)

// headlessPlatform keeps the game session alive without a desktop window.
// The window state lives in memory and POSIX signals stand in for the tray
// menu.
type headlessPlatform struct {
	trace *log.Logger
}

func newPlatform(trace *log.Logger) Platform {
	return &headlessPlatform{trace: trace}
}

func (p *headlessPlatform) Name() string { return "headless" }

func (p *headlessPlatform) Capabilities() Capabilities {
	return Capabilities{Icon: false, Tray: len(menuSignals) > 0}
}

func (p *headlessPlatform) Run(ctx context.Context, cfg Config) error {
	w := newHeadlessWindow(cfg.Title, p.trace)
	menu := make(chan MenuID, 8)
	tray := newSignalTray(menu, w.wake, p.trace)
	defer tray.Close()

	c := NewController(cfg, ControllerOptions{Window: w, Tray: tray, Trace: p.trace})

	go func() {
		select {
		case <-ctx.Done():
			tray.emit(MenuQuit)
		case <-w.done:
		}
	}()

	c.Start(ctx)
	Loop(menu, &headlessPump{win: w, c: c}, c)
	p.trace.Println("Message loop exited")
	return nil
}

// headlessWindow records what a desktop window would display.
type headlessWindow struct {
	title string
	trace *log.Logger

	msgs     chan Message
	done     chan struct{}
	quitOnce sync.Once

	mu          sync.Mutex
	texts       map[ControlID]string
	rects       map[ControlID]Rect
	progress    int
	progressMax int
	style       ExStyle
	visible     bool
}

func newHeadlessWindow(title string, trace *log.Logger) *headlessWindow {
	return &headlessWindow{
		title: title,
		trace: trace,
		msgs:  make(chan Message, 16),
		done:  make(chan struct{}),
		texts: make(map[ControlID]string),
		rects: make(map[ControlID]Rect),
		style: ExAppWindow,
	}
}

// MeasureText approximates the width with an average glyph of half the
// font size.
func (w *headlessWindow) MeasureText(text string, f Font) (int, bool) {
	return utf8.RuneCountInString(text) * f.Size / 2, true
}

func (w *headlessWindow) AddLabel(spec LabelSpec, r Rect) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.texts[spec.ID] = spec.Text
	w.rects[spec.ID] = r
	return nil
}

func (w *headlessWindow) AddProgress(r Rect, max int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.rects[ControlProgress] = r
	w.progressMax = max
	return nil
}

func (w *headlessWindow) SetText(id ControlID, text string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.texts[id] = text
}

func (w *headlessWindow) SetProgress(pos int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.progress = pos
}

func (w *headlessWindow) Text(id ControlID) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.texts[id]
}

func (w *headlessWindow) ExStyle() ExStyle {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.style
}

func (w *headlessWindow) SetExStyle(style ExStyle) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.style = style
}

func (w *headlessWindow) Show(mode ShowMode) {
	w.mu.Lock()
	w.visible = mode != ShowHide
	w.mu.Unlock()
	if mode == ShowHide {
		w.trace.Printf("Window %q hidden", w.title)
	} else {
		w.trace.Printf("Window %q shown", w.title)
	}
}

func (w *headlessWindow) Visible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible
}

func (w *headlessWindow) SetIcon(*icon.Asset) error {
	return errors.New("window icons are not supported without a desktop")
}

func (w *headlessWindow) StartTimer(period time.Duration) error {
	if period <= 0 {
		return errors.New("timer period must be positive")
	}
	go func() {
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.post(Message{Kind: MsgTimer})
			case <-w.done:
				return
			}
		}
	}()
	return nil
}

func (w *headlessWindow) Close() {
	go w.post(Message{Kind: MsgDestroy})
}

func (w *headlessWindow) Quit() {
	w.quitOnce.Do(func() { close(w.done) })
}

func (w *headlessWindow) wake() {
	w.post(Message{Kind: MsgWake})
}

func (w *headlessWindow) post(m Message) {
	select {
	case w.msgs <- m:
	case <-w.done:
	}
}

// headlessPump delivers posted messages straight to the controller.
type headlessPump struct {
	win *headlessWindow
	c   *Controller
}

func (p *headlessPump) Next() (Message, bool) {
	select {
	case <-p.win.done:
		return Message{}, false
	default:
	}
	select {
	case m := <-p.win.msgs:
		return m, true
	case <-p.win.done:
		return Message{}, false
	}
}

func (p *headlessPump) Dispatch(m Message) {
	p.c.Handle(m)
}

// signalTray maps signals onto tray menu selections.
type signalTray struct {
	menu  chan<- MenuID
	wake  func()
	trace *log.Logger

	sigs     chan os.Signal
	stop     chan struct{}
	stopOnce sync.Once
}

func newSignalTray(menu chan<- MenuID, wake func(), trace *log.Logger) *signalTray {
	return &signalTray{
		menu:  menu,
		wake:  wake,
		trace: trace,
		sigs:  make(chan os.Signal, 4),
		stop:  make(chan struct{}),
	}
}

func (t *signalTray) Open(title string) error {
	if len(menuSignals) == 0 {
		return errors.New("no tray signals on this platform")
	}
	sigs := make([]os.Signal, 0, len(menuSignals))
	for s := range menuSignals {
		sigs = append(sigs, s)
	}
	signal.Notify(t.sigs, sigs...)
	t.trace.Printf("Tray for %q listening on signals %v", title, sigs)

	go func() {
		for {
			select {
			case s := <-t.sigs:
				t.emit(menuSignals[s])
			case <-t.stop:
				return
			}
		}
	}()
	return nil
}

func (t *signalTray) emit(id MenuID) {
	select {
	case t.menu <- id:
	default:
		t.trace.Printf("Tray queue full, dropping %s", id)
	}
	t.wake()
}

func (t *signalTray) Close() {
	t.stopOnce.Do(func() {
		signal.Stop(t.sigs)
		close(t.stop)
	})
}
