//go:build windows

package runner

import (
	"log"

	"github.com/getlantern/systray"

	"github.com/NRJ900/Quest-Passer/internal/icon"
)

// systrayTray puts the runner in the notification area. Its hidden window
// lives on the runner thread, so systray is registered without a loop of
// its own and the runner's pump dispatches its messages.
type systrayTray struct {
	menu   chan<- MenuID
	wake   func()
	trace  *log.Logger
	opened bool
}

func newSystrayTray(menu chan<- MenuID, wake func(), trace *log.Logger) *systrayTray {
	return &systrayTray{menu: menu, wake: wake, trace: trace}
}

func (t *systrayTray) Open(title string) error {
	data, err := icon.TrayICO()
	if err != nil {
		return err
	}
	systray.Register(func() { t.onReady(title, data) }, nil)
	t.opened = true
	return nil
}

func (t *systrayTray) onReady(title string, data []byte) {
	systray.SetIcon(data)
	systray.SetTooltip(title)

	show := systray.AddMenuItem("Show", "Show the game window")
	hide := systray.AddMenuItem("Hide", "Hide the game window to the tray")
	systray.AddSeparator()
	quit := systray.AddMenuItem("Quit", "Close the game window")

	go func() {
		for {
			select {
			case <-show.ClickedCh:
				t.emit(MenuShow)
			case <-hide.ClickedCh:
				t.emit(MenuHide)
			case <-quit.ClickedCh:
				t.emit(MenuQuit)
			}
		}
	}()
}

// emit queues a menu event and wakes the loop. Events are dropped when the
// queue is full rather than blocking the tray.
func (t *systrayTray) emit(id MenuID) {
	select {
	case t.menu <- id:
	default:
		t.trace.Printf("Tray queue full, dropping %s", id)
	}
	t.wake()
}

// Close removes the notification icon.
func (t *systrayTray) Close() {
	if !t.opened {
		return
	}
	systray.Quit()
}
