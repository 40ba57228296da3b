package runner

import (
	"context"
	"errors"
	"time"

	"github.com/NRJ900/Quest-Passer/internal/icon"
)

// fakeWindow records every call the controller makes.
type fakeWindow struct {
	measureOK bool
	labels    map[ControlID]Rect
	texts     map[ControlID]string
	progress  int
	progMax   int
	style     ExStyle
	shows     []ShowMode
	icon      *icon.Asset
	timer     time.Duration
	closes    int
	quits     int

	onClose func()
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{
		measureOK: true,
		labels:    make(map[ControlID]Rect),
		texts:     make(map[ControlID]string),
		style:     ExAppWindow,
	}
}

func (w *fakeWindow) MeasureText(text string, f Font) (int, bool) {
	return len(text) * 10, w.measureOK
}

func (w *fakeWindow) AddLabel(spec LabelSpec, r Rect) error {
	w.labels[spec.ID] = r
	w.texts[spec.ID] = spec.Text
	return nil
}

func (w *fakeWindow) AddProgress(r Rect, max int) error {
	w.labels[ControlProgress] = r
	w.progMax = max
	return nil
}

func (w *fakeWindow) SetText(id ControlID, text string) { w.texts[id] = text }
func (w *fakeWindow) SetProgress(pos int)               { w.progress = pos }
func (w *fakeWindow) ExStyle() ExStyle                  { return w.style }
func (w *fakeWindow) SetExStyle(s ExStyle)              { w.style = s }
func (w *fakeWindow) Show(mode ShowMode)                { w.shows = append(w.shows, mode) }

func (w *fakeWindow) SetIcon(a *icon.Asset) error {
	w.icon = a
	return nil
}

func (w *fakeWindow) StartTimer(d time.Duration) error {
	w.timer = d
	return nil
}

func (w *fakeWindow) Close() {
	w.closes++
	if w.onClose != nil {
		w.onClose()
	}
}

func (w *fakeWindow) Quit() { w.quits++ }

func (w *fakeWindow) lastShow() (ShowMode, bool) {
	if len(w.shows) == 0 {
		return 0, false
	}
	return w.shows[len(w.shows)-1], true
}

type fakeTray struct {
	title string
	err   error
	opens int
}

func (t *fakeTray) Open(title string) error {
	t.opens++
	t.title = title
	return t.err
}

type fakeIcons struct {
	asset *icon.Asset
	urls  []string
}

func (f *fakeIcons) Load(_ context.Context, url string) *icon.Asset {
	f.urls = append(f.urls, url)
	return f.asset
}

// fakeClock is a settable time source.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

var errTray = errors.New("no notification area")
