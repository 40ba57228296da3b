package runner

import "fmt"

// MenuID identifies a tray menu entry.
type MenuID int

// Tray menu entries. The separator has no identity.
const (
	MenuShow MenuID = iota + 1
	MenuHide
	MenuQuit
)

func (id MenuID) String() string {
	switch id {
	case MenuShow:
		return "show"
	case MenuHide:
		return "hide"
	case MenuQuit:
		return "quit"
	default:
		return fmt.Sprintf("menu(%d)", int(id))
	}
}

// MessageKind classifies platform messages the controller cares about.
type MessageKind int

const (
	MsgOther MessageKind = iota
	MsgTimer
	MsgDestroy
	// MsgWake is posted after a tray event is queued so a blocked Next
	// returns and the loop polls the menu channel.
	MsgWake
)

// Message is one platform message. Native carries the platform payload
// for pumps that dispatch it themselves.
type Message struct {
	Kind   MessageKind
	Native any
}

// Pump is the platform message queue.
type Pump interface {
	// Next blocks until a message is available. ok is false once quit
	// has been requested and the queue is finished.
	Next() (msg Message, ok bool)
	Dispatch(msg Message)
}

// Loop runs the event loop until the pump is drained. Each iteration handles
// at most one pending tray event without blocking, then waits for and
// dispatches the next platform message.
func Loop(menu <-chan MenuID, pump Pump, c *Controller) {
	for {
		select {
		case id := <-menu:
			c.HandleMenu(id)
		default:
		}

		msg, ok := pump.Next()
		if !ok {
			return
		}
		pump.Dispatch(msg)
	}
}
