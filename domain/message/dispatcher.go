//go:generate go run go.uber.org/mock/mockgen -source=dispatcher.go -destination=../../mocks/mock_handler.go -package=mocks
package message

import (
	"fmt"
	"time"

	"type-lab/errors"

	"github.com/google/uuid"
)

// Handler Each kind of message has his own handler
// Based on the Chain of responsibility pattern
type Handler interface {
	Handle(m Message)
}

// Dispatch is the envelope recorded for every dispatched message.
type Dispatch struct {
	ID   uuid.UUID
	Kind Kind
	At   time.Time
}

// Dispatcher feeds messages through a handler chain and keeps a local
// timeline of what went through. Single-threaded by design: callers own
// the dispatcher and never share it across goroutines.
type Dispatcher struct {
	handlers []Handler
	history  []Dispatch
	now      func() time.Time
}

func NewDispatcher(handlers ...Handler) (*Dispatcher, error) {
	for i, h := range handlers {
		if h == nil {
			return nil, fmt.Errorf("%w: position %d", errors.ErrNilHandler, i)
		}
	}
	return &Dispatcher{
		handlers: handlers,
		now:      time.Now,
	}, nil
}

// Dispatch invokes the message's own behavior, runs the chain,
// and records one envelope.
func (d *Dispatcher) Dispatch(m Message) Dispatch {
	m.Call()

	for _, h := range d.handlers {
		h.Handle(m)
	}

	entry := Dispatch{
		ID:   uuid.New(),
		Kind: m.Kind(),
		At:   d.now(),
	}
	d.history = append(d.history, entry)
	return entry
}

// History returns a defensive copy so callers cannot alter the timeline.
func (d *Dispatcher) History() []Dispatch {
	out := make([]Dispatch, len(d.history))
	copy(out, d.history)
	return out
}
