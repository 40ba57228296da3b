package runner

import (
	"fmt"
	"time"
)

// Window geometry and theme.
const (
	WindowWidth  = 400
	WindowHeight = 300

	// Colors are 0x00BBGGRR, the order the Win32 COLORREF uses.
	BackgroundColor Color = 0x001E1E2E
	TextColor       Color = 0x00CDD6F4

	// LabelPadding is added to the measured text width of every label.
	LabelPadding = 60
	// fallbackLabelWidth is used when the text cannot be measured.
	fallbackLabelWidth = 240

	// ProgressCap is the progress bar maximum, in seconds (15 minutes).
	ProgressCap = 900

	// TickInterval is the timer period driving the duration label.
	TickInterval = time.Second

	BrandingText = "Quest Passer"
	SubtitleText = "Active Game Session"
)

// Color is a 0x00BBGGRR color value.
type Color uint32

// ControlID identifies a child control of the runner window.
type ControlID int

// Child controls, in creation order.
const (
	ControlTitle ControlID = iota + 1
	ControlBranding
	ControlSubtitle
	ControlDuration
	ControlProgress
)

func (id ControlID) String() string {
	switch id {
	case ControlTitle:
		return "title"
	case ControlBranding:
		return "branding"
	case ControlSubtitle:
		return "subtitle"
	case ControlDuration:
		return "duration"
	case ControlProgress:
		return "progress"
	default:
		return fmt.Sprintf("control(%d)", int(id))
	}
}

// Rect is a control rectangle in window client coordinates.
type Rect struct {
	X, Y, Width, Height int
}

// Font describes a label font.
type Font struct {
	Size int
	Bold bool
}

// LabelSpec is the input of the styled label operation.
type LabelSpec struct {
	ID   ControlID
	Text string
	Y    int
	H    int
	Font Font
}

// labelSpecs returns the four text labels for a session titled title.
func labelSpecs(title string) []LabelSpec {
	return []LabelSpec{
		{ID: ControlTitle, Text: title, Y: 50, H: 40, Font: Font{Size: 24, Bold: true}},
		{ID: ControlBranding, Text: BrandingText, Y: 20, H: 30, Font: Font{Size: 16, Bold: true}},
		{ID: ControlSubtitle, Text: SubtitleText, Y: 90, H: 25, Font: Font{Size: 18}},
		{ID: ControlDuration, Text: FormatDuration(0), Y: WindowHeight - 100, H: 30, Font: Font{Size: 20}},
	}
}

// progressRect is the fixed rectangle of the progress bar.
func progressRect() Rect {
	return Rect{X: 20, Y: WindowHeight - 65, Width: WindowWidth - 40, Height: 6}
}

// CenterLabel computes a horizontally centered rectangle for a label whose
// text measured textWidth pixels. ok=false means measuring failed.
func CenterLabel(spec LabelSpec, textWidth int, ok bool) Rect {
	width := fallbackLabelWidth
	if ok {
		width = textWidth + LabelPadding
	}
	return Rect{
		X:      (WindowWidth - width) / 2,
		Y:      spec.Y,
		Width:  width,
		Height: spec.H,
	}
}

// FormatDuration renders elapsed whole seconds as "Running: HH:MM:SS".
func FormatDuration(secs int64) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("Running: %02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}

// Progress clamps elapsed seconds to [0, ProgressCap].
func Progress(secs int64) int {
	if secs < 0 {
		return 0
	}
	if secs > ProgressCap {
		return ProgressCap
	}
	return int(secs)
}
