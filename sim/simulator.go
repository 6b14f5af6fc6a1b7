package sim

import (
	"log"
	"reflect"
	"sync"
)

// UnboundedTime can be passed to RunUntil to process events until the event
// queue drains. Any negative time has the same meaning.
const UnboundedTime VTimeInSec = -1

// A Simulator owns the simulated clock and the event queue. It pops events
// in time order, advances the clock to each event, and invokes the event's
// action. Events run one after another; an action runs to completion before
// the next event is popped.
type Simulator struct {
	HookableBase

	timeLock sync.RWMutex
	time     VTimeInSec
	queue    EventQueue

	isPaused     bool
	isPausedLock sync.Mutex
	pauseLock    sync.Mutex

	singleRunLock sync.Mutex
}

// NewSimulator creates a Simulator with an empty event queue and the clock
// at time 0.
func NewSimulator() *Simulator {
	s := new(Simulator)

	s.queue = NewEventQueue()

	return s
}

// Now returns the current simulated time.
func (s *Simulator) Now() VTimeInSec {
	return s.readNow()
}

func (s *Simulator) readNow() VTimeInSec {
	s.timeLock.RLock()
	t := s.time
	s.timeLock.RUnlock()
	return t
}

func (s *Simulator) writeNow(t VTimeInSec) {
	s.timeLock.Lock()
	s.time = t
	s.timeLock.Unlock()
}

// Schedule registers an event to happen at Now() plus the event's delay.
// The assigned time is fixed for the lifetime of the event.
func (s *Simulator) Schedule(evt Event) {
	if evt.Delay() < 0 {
		log.Panic("scheduling an event with a negative delay")
	}

	evt.SetTime(s.readNow() + evt.Delay())
	s.queue.Push(evt)
}

// Run processes all the events scheduled in the Simulator until the event
// queue drains. Run never returns if the actions perpetually reschedule
// themselves.
func (s *Simulator) Run() error {
	return s.RunUntil(UnboundedTime)
}

// RunUntil processes events in time order up to the given time. Events with
// a time beyond the boundary stay pending and a later run resumes from the
// same point. After a bounded run, Now() equals the boundary. A negative
// until removes the boundary.
func (s *Simulator) RunUntil(until VTimeInSec) error {
	s.singleRunLock.Lock()
	defer s.singleRunLock.Unlock()

	for {
		if s.queue.Len() == 0 {
			return nil
		}

		s.pauseLock.Lock()

		if until >= 0 && s.queue.Peek().Time() > until {
			s.writeNow(until)
			s.pauseLock.Unlock()
			return nil
		}

		evt := s.queue.Pop()

		if evt.IsCancelled() {
			s.pauseLock.Unlock()
			continue
		}

		now := s.readNow()
		if evt.Time() < now {
			log.Panicf(
				"cannot run event in the past, evt %s @ %.10f, now %.10f",
				reflect.TypeOf(evt), evt.Time(), now,
			)
		}
		s.writeNow(evt.Time())

		hookCtx := HookCtx{
			Domain: s,
			Pos:    HookPosBeforeEvent,
			Item:   evt,
		}
		s.InvokeHook(hookCtx)

		if err := evt.Action(s); err != nil {
			s.pauseLock.Unlock()
			return err
		}

		hookCtx.Pos = HookPosAfterEvent
		s.InvokeHook(hookCtx)

		s.pauseLock.Unlock()
	}
}

// Pause prevents the Simulator from triggering more events.
func (s *Simulator) Pause() {
	s.isPausedLock.Lock()
	defer s.isPausedLock.Unlock()

	if s.isPaused {
		return
	}

	s.pauseLock.Lock()
	s.isPaused = true
}

// Continue allows the Simulator to trigger more events.
func (s *Simulator) Continue() {
	s.isPausedLock.Lock()
	defer s.isPausedLock.Unlock()

	if !s.isPaused {
		return
	}

	s.pauseLock.Unlock()
	s.isPaused = false
}
