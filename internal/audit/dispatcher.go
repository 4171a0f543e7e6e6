package audit

import "log"

type Event struct {
	ProviderID uint
	Action     string
	Entity     string
	EntityID   *uint
	Metadata   any
}

// Dispatcher grava a trilha de auditoria fora do caminho da request,
// por um worker único sobre um canal com buffer.
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
			ev.ProviderID,
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
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		// fila cheia: auditoria nunca derruba a operação
		log.Println("audit queue full, dropping event")
	}
}
