//go:build windows

package runner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime"
	"sync"
	"syscall"
	"time"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/NRJ900/Quest-Passer/internal/icon"
)

const (
	windowClass = "QuestPasserRunner"
	fontFace    = "Segoe UI"
	timerID     = 1

	iconSmall = 0
	iconBig   = 1

	// wmTrayWake is posted after a tray event is queued.
	wmTrayWake = win.WM_APP + 1
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	gdi32                = windows.NewLazySystemDLL("gdi32.dll")
	procCreateIcon       = user32.NewProc("CreateIcon")
	procCreateSolidBrush = gdi32.NewProc("CreateSolidBrush")

	registerOnce sync.Once
	registerErr  error
)

type win32Platform struct {
	trace *log.Logger
}

func newPlatform(trace *log.Logger) Platform {
	return &win32Platform{trace: trace}
}

func (p *win32Platform) Name() string { return "windows" }

func (p *win32Platform) Capabilities() Capabilities {
	return Capabilities{Icon: true, Tray: true}
}

func (p *win32Platform) Run(ctx context.Context, cfg Config) error {
	// Windows, their timers and the tray window belong to this thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	w, err := newWin32Window(cfg.Title, p.trace)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	p.trace.Println("Window created")
	defer w.release()

	menu := make(chan MenuID, 8)
	tray := newSystrayTray(menu, w.wake, p.trace)
	w.onQuit = tray.Close

	c := NewController(cfg, ControllerOptions{
		Window: w,
		Tray:   tray,
		Icons:  icon.NewLoader(p.trace),
		Trace:  p.trace,
	})
	w.controller = c

	go func() {
		<-ctx.Done()
		tray.emit(MenuQuit)
	}()

	c.Start(ctx)
	Loop(menu, win32Pump{}, c)
	p.trace.Println("Message loop exited")
	return nil
}

// win32Window is the top-level runner window and its child controls.
type win32Window struct {
	hwnd       win.HWND
	instance   win.HINSTANCE
	controls   map[ControlID]win.HWND
	fonts      []win.HFONT
	icon       win.HICON
	controller *Controller
	onQuit     func()
	trace      *log.Logger
}

func registerClass(instance win.HINSTANCE) error {
	registerOnce.Do(func() {
		brush, _, _ := procCreateSolidBrush.Call(uintptr(BackgroundColor))
		wc := win.WNDCLASSEX{
			LpfnWndProc:   syscall.NewCallback(defWindowProc),
			HInstance:     instance,
			HCursor:       win.LoadCursor(0, win.MAKEINTRESOURCE(win.IDC_ARROW)),
			HbrBackground: win.HBRUSH(brush),
			LpszClassName: syscall.StringToUTF16Ptr(windowClass),
		}
		wc.CbSize = uint32(unsafe.Sizeof(wc))
		if win.RegisterClassEx(&wc) == 0 {
			registerErr = errors.New("RegisterClassEx failed")
		}
	})
	return registerErr
}

func defWindowProc(hwnd win.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	return win.DefWindowProc(hwnd, msg, wParam, lParam)
}

func newWin32Window(title string, trace *log.Logger) (*win32Window, error) {
	instance := win.GetModuleHandle(nil)
	if err := registerClass(instance); err != nil {
		return nil, err
	}

	icc := win.INITCOMMONCONTROLSEX{DwICC: win.ICC_PROGRESS_CLASS}
	icc.DwSize = uint32(unsafe.Sizeof(icc))
	win.InitCommonControlsEx(&icc)

	hwnd := win.CreateWindowEx(
		0,
		syscall.StringToUTF16Ptr(windowClass),
		syscall.StringToUTF16Ptr(title),
		win.WS_OVERLAPPEDWINDOW,
		win.CW_USEDEFAULT, win.CW_USEDEFAULT,
		WindowWidth, WindowHeight,
		0, 0, instance, nil,
	)
	if hwnd == 0 {
		return nil, errors.New("CreateWindowEx failed")
	}

	w := &win32Window{
		hwnd:     hwnd,
		instance: instance,
		controls: make(map[ControlID]win.HWND),
		trace:    trace,
	}
	win.SetWindowLongPtr(hwnd, win.GWLP_WNDPROC, syscall.NewCallback(w.wndProc))
	return w, nil
}

func (w *win32Window) wndProc(hwnd win.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	switch msg {
	case win.WM_TIMER:
		if wParam == timerID && w.controller != nil {
			w.controller.Handle(Message{Kind: MsgTimer})
		}
		return 0
	case win.WM_DESTROY:
		if w.controller != nil {
			w.controller.Handle(Message{Kind: MsgDestroy})
		}
		return 0
	case win.WM_CTLCOLORSTATIC:
		if w.controller == nil {
			break
		}
		hdc := win.HDC(wParam)
		style := w.controller.PaintStyle(w.controlID(win.HWND(lParam)))
		if style.Opaque {
			win.SetBkMode(hdc, win.OPAQUE)
			win.SetBkColor(hdc, win.COLORREF(style.Background))
		} else {
			win.SetBkMode(hdc, win.TRANSPARENT)
		}
		win.SetTextColor(hdc, win.COLORREF(style.Foreground))
		return uintptr(win.GetStockObject(win.NULL_BRUSH))
	}
	return win.DefWindowProc(hwnd, msg, wParam, lParam)
}

func (w *win32Window) controlID(h win.HWND) ControlID {
	for id, ch := range w.controls {
		if ch == h {
			return id
		}
	}
	return ControlTitle
}

func (w *win32Window) wake() {
	win.PostMessage(w.hwnd, wmTrayWake, 0, 0)
}

func (w *win32Window) createFont(f Font) win.HFONT {
	lf := win.LOGFONT{
		LfHeight:  -int32(f.Size),
		LfWeight:  win.FW_NORMAL,
		LfCharSet: win.DEFAULT_CHARSET,
		LfQuality: win.CLEARTYPE_QUALITY,
	}
	if f.Bold {
		lf.LfWeight = win.FW_BOLD
	}
	copy(lf.LfFaceName[:win.LF_FACESIZE-1], syscall.StringToUTF16(fontFace))
	return win.CreateFontIndirect(&lf)
}

func (w *win32Window) MeasureText(text string, f Font) (int, bool) {
	hdc := win.GetDC(w.hwnd)
	if hdc == 0 {
		return 0, false
	}
	defer win.ReleaseDC(w.hwnd, hdc)

	font := w.createFont(f)
	if font != 0 {
		old := win.SelectObject(hdc, win.HGDIOBJ(font))
		defer func() {
			win.SelectObject(hdc, old)
			win.DeleteObject(win.HGDIOBJ(font))
		}()
	}

	s := syscall.StringToUTF16(text)
	var size win.SIZE
	if !win.GetTextExtentPoint32(hdc, &s[0], int32(len(s)-1), &size) {
		return 0, false
	}
	return int(size.CX), true
}

func (w *win32Window) AddLabel(spec LabelSpec, r Rect) error {
	h := win.CreateWindowEx(
		0,
		syscall.StringToUTF16Ptr("STATIC"),
		syscall.StringToUTF16Ptr(spec.Text),
		win.WS_CHILD|win.WS_VISIBLE|win.SS_CENTER,
		int32(r.X), int32(r.Y), int32(r.Width), int32(r.Height),
		w.hwnd, 0, w.instance, nil,
	)
	if h == 0 {
		return errors.New("CreateWindowEx STATIC failed")
	}
	if font := w.createFont(spec.Font); font != 0 {
		w.fonts = append(w.fonts, font)
		win.SendMessage(h, win.WM_SETFONT, uintptr(font), 1)
	}
	w.controls[spec.ID] = h
	return nil
}

func (w *win32Window) AddProgress(r Rect, max int) error {
	h := win.CreateWindowEx(
		0,
		syscall.StringToUTF16Ptr("msctls_progress32"),
		nil,
		win.WS_CHILD|win.WS_VISIBLE,
		int32(r.X), int32(r.Y), int32(r.Width), int32(r.Height),
		w.hwnd, 0, w.instance, nil,
	)
	if h == 0 {
		return errors.New("CreateWindowEx msctls_progress32 failed")
	}
	win.SendMessage(h, win.PBM_SETRANGE32, 0, uintptr(max))
	w.controls[ControlProgress] = h
	return nil
}

func (w *win32Window) SetText(id ControlID, text string) {
	h, ok := w.controls[id]
	if !ok {
		return
	}
	win.SendMessage(h, win.WM_SETTEXT, 0, uintptr(unsafe.Pointer(syscall.StringToUTF16Ptr(text))))
}

func (w *win32Window) SetProgress(pos int) {
	if h, ok := w.controls[ControlProgress]; ok {
		win.SendMessage(h, win.PBM_SETPOS, uintptr(pos), 0)
	}
}

func (w *win32Window) ExStyle() ExStyle {
	return ExStyle(win.GetWindowLongPtr(w.hwnd, win.GWL_EXSTYLE))
}

func (w *win32Window) SetExStyle(style ExStyle) {
	win.SetWindowLongPtr(w.hwnd, win.GWL_EXSTYLE, uintptr(style))
}

func (w *win32Window) Show(mode ShowMode) {
	switch mode {
	case ShowHide:
		win.ShowWindow(w.hwnd, win.SW_HIDE)
	case ShowNoActivate:
		win.ShowWindow(w.hwnd, win.SW_SHOWNOACTIVATE)
		win.UpdateWindow(w.hwnd)
	case ShowNormal:
		win.ShowWindow(w.hwnd, win.SW_SHOWNORMAL)
		win.SetForegroundWindow(w.hwnd)
	}
}

func (w *win32Window) SetIcon(asset *icon.Asset) error {
	if asset == nil || asset.Width <= 0 || asset.Height <= 0 {
		return errors.New("empty icon")
	}
	if len(asset.Pix) < asset.Width*asset.Height*4 {
		return fmt.Errorf("icon buffer holds %d bytes, need %d", len(asset.Pix), asset.Width*asset.Height*4)
	}
	// Monochrome AND mask rows are word aligned; all zero keeps every
	// color pixel.
	stride := (asset.Width + 15) / 16 * 2
	mask := make([]byte, stride*asset.Height)

	h, _, err := procCreateIcon.Call(
		uintptr(w.instance),
		uintptr(asset.Width),
		uintptr(asset.Height),
		1,
		32,
		uintptr(unsafe.Pointer(&mask[0])),
		uintptr(unsafe.Pointer(&asset.Pix[0])),
	)
	if h == 0 {
		return fmt.Errorf("CreateIcon failed: %w", err)
	}
	if w.icon != 0 {
		win.DestroyIcon(w.icon)
	}
	w.icon = win.HICON(h)
	win.SendMessage(w.hwnd, win.WM_SETICON, iconBig, h)
	win.SendMessage(w.hwnd, win.WM_SETICON, iconSmall, h)
	w.trace.Printf("Icon applied: %dx%d", asset.Width, asset.Height)
	return nil
}

func (w *win32Window) StartTimer(period time.Duration) error {
	if win.SetTimer(w.hwnd, timerID, uint32(period/time.Millisecond), 0) == 0 {
		return errors.New("SetTimer failed")
	}
	return nil
}

func (w *win32Window) Close() {
	win.PostMessage(w.hwnd, win.WM_CLOSE, 0, 0)
}

func (w *win32Window) Quit() {
	win.KillTimer(w.hwnd, timerID)
	if w.onQuit != nil {
		w.onQuit()
	}
	win.PostQuitMessage(0)
}

// release frees the fonts and the icon. The child controls keep using the
// fonts until they are destroyed after the parent's WM_DESTROY, so this
// runs once the loop has exited.
func (w *win32Window) release() {
	for _, f := range w.fonts {
		win.DeleteObject(win.HGDIOBJ(f))
	}
	w.fonts = nil
	if w.icon != 0 {
		win.DestroyIcon(w.icon)
		w.icon = 0
	}
}

// win32Pump is the thread message queue.
type win32Pump struct{}

func (win32Pump) Next() (Message, bool) {
	var msg win.MSG
	switch win.GetMessage(&msg, 0, 0, 0) {
	case 0, -1:
		return Message{}, false
	}
	kind := MsgOther
	if msg.Message == wmTrayWake {
		kind = MsgWake
	}
	return Message{Kind: kind, Native: &msg}, true
}

func (win32Pump) Dispatch(m Message) {
	msg, ok := m.Native.(*win.MSG)
	if !ok {
		return
	}
	win.TranslateMessage(msg)
	win.DispatchMessage(msg)
}
