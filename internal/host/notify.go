package host

import "log"

// EventGameExited is emitted once per spawned runner after it exits.
const EventGameExited = "game_exited"

// Notifier receives supervisor events. Notify is called from monitor
// goroutines and must not block for long.
type Notifier interface {
	Notify(event string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(event string)

func (f NotifierFunc) Notify(event string) { f(event) }

// LogNotifier writes each event to a logger.
type LogNotifier struct {
	Logger *log.Logger
}

func (n LogNotifier) Notify(event string) {
	if n.Logger != nil {
		n.Logger.Printf("event: %s", event)
		return
	}
	log.Printf("event: %s", event)
}
