package sim

import (
	"bytes"
	"errors"
	"log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"
)

type countEvent struct {
	*EventBase
	counter *int
	limit   int
}

func (e *countEvent) Action(s *Simulator) error {
	*e.counter++
	if *e.counter < e.limit {
		s.Schedule(&countEvent{
			EventBase: NewEventBase(1.0),
			counter:   e.counter,
			limit:     e.limit,
		})
	}
	return nil
}

type arrivalEvent struct {
	*EventBase
}

func (e *arrivalEvent) Action(s *Simulator) error {
	return nil
}

func (e *arrivalEvent) Describe() string {
	return "Arrival"
}

func scheduledMockEvent(
	ctrl *gomock.Controller,
	delay, time VTimeInSec,
) *MockEvent {
	evt := NewMockEvent(ctrl)
	evt.EXPECT().Delay().Return(delay).AnyTimes()
	evt.EXPECT().SetTime(time)
	evt.EXPECT().Time().Return(time).AnyTimes()
	evt.EXPECT().IsCancelled().Return(false).AnyTimes()
	return evt
}

var _ = Describe("Simulator", func() {
	var (
		mockCtrl  *gomock.Controller
		simulator *Simulator
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		simulator = NewSimulator()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should start at time 0", func() {
		Expect(simulator.Now()).To(Equal(VTimeInSec(0.0)))
	})

	It("should do nothing when running with an empty queue", func() {
		Expect(simulator.Run()).To(Succeed())
		Expect(simulator.Now()).To(Equal(VTimeInSec(0.0)))
	})

	It("should run events in time order", func() {
		evt1 := scheduledMockEvent(mockCtrl, 10.0, 10.0)
		evt2 := scheduledMockEvent(mockCtrl, 5.0, 5.0)
		evt3 := scheduledMockEvent(mockCtrl, 15.0, 15.0)

		runEvt2 := evt2.EXPECT().
			Action(simulator).
			DoAndReturn(func(s *Simulator) error {
				Expect(s.Now()).To(Equal(VTimeInSec(5.0)))
				return nil
			})
		runEvt1 := evt1.EXPECT().
			Action(simulator).
			DoAndReturn(func(s *Simulator) error {
				Expect(s.Now()).To(Equal(VTimeInSec(10.0)))
				return nil
			}).
			After(runEvt2)
		evt3.EXPECT().
			Action(simulator).
			DoAndReturn(func(s *Simulator) error {
				Expect(s.Now()).To(Equal(VTimeInSec(15.0)))
				return nil
			}).
			After(runEvt1)

		simulator.Schedule(evt1)
		simulator.Schedule(evt2)
		simulator.Schedule(evt3)

		Expect(simulator.Run()).To(Succeed())
		Expect(simulator.Now()).To(Equal(VTimeInSec(15.0)))
	})

	It("should run equal-time events in scheduling order", func() {
		evt1 := scheduledMockEvent(mockCtrl, 5.0, 5.0)
		evt2 := scheduledMockEvent(mockCtrl, 5.0, 5.0)

		runEvt1 := evt1.EXPECT().Action(simulator).Return(nil)
		evt2.EXPECT().Action(simulator).Return(nil).After(runEvt1)

		simulator.Schedule(evt1)
		simulator.Schedule(evt2)

		Expect(simulator.Run()).To(Succeed())
	})

	It("should stop at the boundary and keep later events pending", func() {
		evt1 := scheduledMockEvent(mockCtrl, 5.0, 5.0)
		evt2 := scheduledMockEvent(mockCtrl, 15.0, 15.0)

		evt1.EXPECT().Action(simulator).Return(nil)

		simulator.Schedule(evt1)
		simulator.Schedule(evt2)

		Expect(simulator.RunUntil(10.0)).To(Succeed())
		Expect(simulator.Now()).To(Equal(VTimeInSec(10.0)))

		evt2.EXPECT().Action(simulator).Return(nil)

		Expect(simulator.Run()).To(Succeed())
		Expect(simulator.Now()).To(Equal(VTimeInSec(15.0)))
	})

	It("should skip cancelled events without advancing time", func() {
		evt := NewMockEvent(mockCtrl)
		evt.EXPECT().Delay().Return(VTimeInSec(5.0)).AnyTimes()
		evt.EXPECT().SetTime(VTimeInSec(5.0))
		evt.EXPECT().Time().Return(VTimeInSec(5.0)).AnyTimes()
		evt.EXPECT().IsCancelled().Return(true).AnyTimes()

		simulator.Schedule(evt)

		Expect(simulator.Run()).To(Succeed())
		Expect(simulator.Now()).To(Equal(VTimeInSec(0.0)))
	})

	It("should let actions schedule more events", func() {
		counter := 0

		simulator.Schedule(&countEvent{
			EventBase: NewEventBase(1.0),
			counter:   &counter,
			limit:     5,
		})

		Expect(simulator.Run()).To(Succeed())
		Expect(counter).To(Equal(5))
		Expect(simulator.Now()).To(Equal(VTimeInSec(5.0)))
	})

	It("should stop the run when an action fails", func() {
		evt1 := scheduledMockEvent(mockCtrl, 5.0, 5.0)
		evt2 := scheduledMockEvent(mockCtrl, 10.0, 10.0)

		evt1.EXPECT().Action(simulator).Return(errors.New("action failed"))

		simulator.Schedule(evt1)
		simulator.Schedule(evt2)

		Expect(simulator.Run()).To(MatchError("action failed"))
		Expect(simulator.Now()).To(Equal(VTimeInSec(5.0)))
	})

	It("should panic when scheduling an event with a negative delay", func() {
		evt := NewMockEvent(mockCtrl)
		evt.EXPECT().Delay().Return(VTimeInSec(-1.0)).AnyTimes()

		Expect(func() { simulator.Schedule(evt) }).To(Panic())
	})

	It("should log executed events", func() {
		buf := new(bytes.Buffer)
		simulator.AcceptHook(NewEventLogger(log.New(buf, "", 0)))

		simulator.Schedule(&arrivalEvent{EventBase: NewEventBase(5.0)})

		Expect(simulator.Run()).To(Succeed())
		Expect(buf.String()).To(Equal("t=   5.0 | Arrival\n"))
	})
})
