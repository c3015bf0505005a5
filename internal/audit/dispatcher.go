package audit

import "go.uber.org/zap"

// Portal actions recorded in the audit trail.
const (
	ActionReservationSubmitted  = "reservation_submitted"
	ActionReservationConflict   = "reservation_conflict"
	ActionDashboardReservations = "dashboard_reservations_viewed"
)

type Event struct {
	ShopID   uint
	UserID   *uint
	Action   string
	Entity   string
	EntityID *string
	Metadata any
}

// Dispatcher decouples audit writes from request handling: events go through
// a buffered channel to a single worker. When the queue is full the event is
// dropped — the audit trail never blocks or fails a request.
type Dispatcher struct {
	logger *Logger
	log    *zap.Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.ShopID,
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.Error("audit write failed", zap.String("action", ev.Action), zap.Error(err))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}
