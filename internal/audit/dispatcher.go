package audit

import "log"

type Event struct {
	RequestID string
	UserID    *uint
	Action    string
	Entity    string
	EntityID  *uint
	Metadata  any
}

// Dispatcher decouples audit writes from request handling: events are
// queued and persisted by a single background worker.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.RequestID,
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// Queue full: drop the event rather than block a request.
		log.Println("audit queue full, dropping event")
	}
}
