package sim

import "github.com/rs/xid"

// VTimeInSec defines the time in the simulated space in the unit of second.
type VTimeInSec = float64

// An Event is something going to happen in the future.
//
// An event is created with a delay. When the event is scheduled, the
// simulator converts the delay into an absolute time. The time is fixed once
// assigned. Both the scheduling code and the event queue hold a reference to
// the same event, so a cancellation performed by either side is visible to
// the other.
type Event interface {
	// Delay returns the interval between the scheduling moment and the
	// execution of the event.
	Delay() VTimeInSec

	// Time returns the absolute time at which the event executes. The time
	// is assigned by the simulator when the event is scheduled.
	Time() VTimeInSec

	// SetTime assigns the absolute execution time. Only the simulator should
	// call SetTime, and only once, at scheduling time.
	SetTime(t VTimeInSec)

	// IsCancelled tells if the event has been cancelled.
	IsCancelled() bool

	// Cancel marks the event as cancelled. The event stays in the event
	// queue and is discarded when it is popped.
	Cancel()

	// Action executes the event. The action can schedule more events and
	// record statistics through the simulator.
	Action(s *Simulator) error
}

// A Describer is an event that can describe itself for logging. Events that
// do not implement Describer are logged by their reflected type name.
type Describer interface {
	Describe() string
}

// EventBase provides the basic fields and getters for other events.
type EventBase struct {
	ID        string
	delay     VTimeInSec
	time      VTimeInSec
	cancelled bool
}

// NewEventBase creates a new EventBase that executes the given delay after
// it is scheduled.
func NewEventBase(delay VTimeInSec) *EventBase {
	e := new(EventBase)
	e.ID = xid.New().String()
	e.delay = delay
	return e
}

// Delay returns the interval between scheduling and execution.
func (e *EventBase) Delay() VTimeInSec {
	return e.delay
}

// Time returns the absolute time that the event is going to happen.
func (e *EventBase) Time() VTimeInSec {
	return e.time
}

// SetTime assigns the absolute time at which the event executes.
func (e *EventBase) SetTime(t VTimeInSec) {
	e.time = t
}

// IsCancelled tells if the event has been cancelled.
func (e *EventBase) IsCancelled() bool {
	return e.cancelled
}

// Cancel marks the event as cancelled without removing it from the event
// queue. The queue discards the event when it surfaces.
func (e *EventBase) Cancel() {
	e.cancelled = true
}

// TimeTeller can be used to get the current time.
type TimeTeller interface {
	Now() VTimeInSec
}

// EventScheduler can be used to schedule future events.
type EventScheduler interface {
	Schedule(e Event)
}
