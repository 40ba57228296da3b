package runner

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/NRJ900/Quest-Passer/internal/icon"
)

// ExStyle is a set of extended window style bits (Win32 values).
type ExStyle uint32

// Extended styles toggled by the tray transitions.
const (
	ExTransparent ExStyle = 0x00000020
	ExToolWindow  ExStyle = 0x00000080
	ExAppWindow   ExStyle = 0x00040000
	ExLayered     ExStyle = 0x00080000

	// hiddenStyles mark the window as a tool window that taskbars and
	// alt-tab ignore.
	hiddenStyles = ExToolWindow | ExTransparent | ExLayered
)

// ShowMode selects how a window is made visible or hidden.
type ShowMode int

const (
	ShowHide       ShowMode = iota // hide the window
	ShowNoActivate                 // show without taking focus
	ShowNormal                     // restore and bring to the foreground
)

// Window is the native window owned by the controller. All methods are
// called from the loop goroutine.
type Window interface {
	// MeasureText returns the pixel width of text in font; ok=false when
	// the platform could not measure it.
	MeasureText(text string, font Font) (width int, ok bool)
	AddLabel(spec LabelSpec, r Rect) error
	AddProgress(r Rect, max int) error
	SetText(id ControlID, text string)
	SetProgress(pos int)
	ExStyle() ExStyle
	SetExStyle(style ExStyle)
	Show(mode ShowMode)
	// SetIcon applies asset to both the big and the small icon slot.
	SetIcon(asset *icon.Asset) error
	StartTimer(period time.Duration) error
	// Close posts a destroy request; the destroy message arrives later
	// through the loop.
	Close()
	// Quit makes the message pump report that no messages remain.
	Quit()
}

// Tray is the notification area presence.
type Tray interface {
	Open(title string) error
}

// IconLoader fetches a remote icon, returning nil when none is usable.
type IconLoader interface {
	Load(ctx context.Context, url string) *icon.Asset
}

// State is the controller lifecycle state.
type State int

const (
	StateInitializing State = iota
	StateRunning
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Visibility is the tray-driven display state while running.
type Visibility int

const (
	Shown Visibility = iota
	HiddenToTray
)

func (v Visibility) String() string {
	if v == HiddenToTray {
		return "hidden"
	}
	return "shown"
}

// PaintStyle tells the platform how to paint a child control's background.
type PaintStyle struct {
	Opaque     bool
	Background Color
	Foreground Color
}

// ControllerOptions contains the collaborators of a Controller.
type ControllerOptions struct {
	Window Window
	Tray   Tray       // optional
	Icons  IconLoader // optional
	Trace  *log.Logger
	Now    func() time.Time
}

// Controller runs the window/tray state machine. It is not safe for
// concurrent use: the event loop is its only caller.
type Controller struct {
	cfg   Config
	win   Window
	tray  Tray
	icons IconLoader
	trace *log.Logger
	now   func() time.Time

	state      State
	visibility Visibility
	startedAt  time.Time
}

// NewController creates a controller for cfg in the Initializing state.
func NewController(cfg Config, opts ControllerOptions) *Controller {
	trace := opts.Trace
	if trace == nil {
		trace = log.New(io.Discard, "", 0)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Controller{
		cfg:   cfg,
		win:   opts.Window,
		tray:  opts.Tray,
		icons: opts.Icons,
		trace: trace,
		now:   now,
	}
}

// Start builds the controls, the tray and the optional icon, starts the
// timer, and enters Running with the configured initial visibility.
func (c *Controller) Start(ctx context.Context) {
	for _, spec := range labelSpecs(c.cfg.Title) {
		width, ok := c.win.MeasureText(spec.Text, spec.Font)
		if err := c.win.AddLabel(spec, CenterLabel(spec, width, ok)); err != nil {
			c.trace.Printf("Failed to create %s label: %v", spec.ID, err)
		}
	}
	if err := c.win.AddProgress(progressRect(), ProgressCap); err != nil {
		c.trace.Printf("Failed to create progress bar: %v", err)
	}

	if c.tray != nil {
		if err := c.tray.Open(c.cfg.Title); err != nil {
			c.trace.Printf("Failed to create tray icon: %v", err)
		} else {
			c.trace.Println("Tray icon created")
		}
	}

	if c.cfg.HasIcon() && c.icons != nil {
		if asset := c.icons.Load(ctx, c.cfg.IconURL); asset != nil {
			if err := c.win.SetIcon(asset); err != nil {
				c.trace.Printf("Failed to apply icon: %v", err)
			}
		}
	}

	c.startedAt = c.now()
	if err := c.win.StartTimer(TickInterval); err != nil {
		c.trace.Printf("Failed to start timer: %v", err)
	}

	c.state = StateRunning
	if c.cfg.StartHidden {
		c.hide()
	} else {
		c.visibility = Shown
		c.win.Show(ShowNoActivate)
	}
	c.trace.Printf("Running (%s)", c.visibility)
}

// State returns the lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Visibility returns the current display state.
func (c *Controller) Visibility() Visibility {
	return c.visibility
}

// Elapsed returns the time since the timer started.
func (c *Controller) Elapsed() time.Duration {
	if c.startedAt.IsZero() {
		return 0
	}
	return c.now().Sub(c.startedAt)
}

// Handle processes one platform message. Messages other than timer ticks
// and destroy notifications are ignored.
func (c *Controller) Handle(msg Message) {
	switch msg.Kind {
	case MsgTimer:
		c.Tick()
	case MsgDestroy:
		if c.state == StateTerminated {
			return
		}
		c.state = StateTerminated
		c.trace.Println("Window destroyed")
		c.win.Quit()
	}
}

// Tick refreshes the duration label and the progress bar.
func (c *Controller) Tick() {
	if c.state != StateRunning {
		return
	}
	secs := int64(c.Elapsed() / time.Second)
	c.win.SetText(ControlDuration, FormatDuration(secs))
	c.win.SetProgress(Progress(secs))
}

// PaintStyle returns the background treatment for control id. Only the
// duration label paints an opaque background.
func (c *Controller) PaintStyle(id ControlID) PaintStyle {
	if id == ControlDuration {
		return PaintStyle{Opaque: true, Background: BackgroundColor, Foreground: TextColor}
	}
	return PaintStyle{Foreground: TextColor}
}

// HandleMenu applies a tray menu selection.
func (c *Controller) HandleMenu(id MenuID) {
	if c.state != StateRunning {
		return
	}
	c.trace.Printf("Tray menu: %s", id)

	switch id {
	case MenuShow:
		if c.visibility != Shown {
			c.show()
		}
	case MenuHide:
		if c.visibility != HiddenToTray {
			c.hide()
		}
	case MenuQuit:
		c.win.Close()
	}
}

// show and hide always change the extended style and the visibility
// together.
func (c *Controller) show() {
	style := c.win.ExStyle()
	c.win.SetExStyle(style&^hiddenStyles | ExAppWindow)
	c.win.Show(ShowNormal)
	c.visibility = Shown
}

func (c *Controller) hide() {
	style := c.win.ExStyle()
	c.win.SetExStyle(style&^ExAppWindow | hiddenStyles)
	c.win.Show(ShowHide)
	c.visibility = HiddenToTray
}
