package history

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Event struct {
	ClientID string
	Name     string
	Event    string
	Details  string
	At       time.Time
}

// Recorder accepts history events without blocking the caller.
type Recorder interface {
	Dispatch(ev Event)
}

type writer interface {
	Log(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	writer writer
	log    *zap.Logger
	queue  chan Event

	done      chan struct{}
	closeOnce sync.Once
}

func NewDispatcher(w writer, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		writer: w,
		log:    log,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.writer.Log(ctx, ev); err != nil {
			d.log.Error("history write failed",
				zap.String("event", ev.Event),
				zap.String("client_id", ev.ClientID),
				zap.Error(err),
			)
		}
		cancel()
	}
}

// Dispatch drops the event when the queue is full; history must never break a
// booking.
func (d *Dispatcher) Dispatch(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("history queue full, dropping event", zap.String("event", ev.Event))
	}
}

// Close drains pending events. Dispatch must not be called afterwards.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() { close(d.queue) })
	<-d.done
}
