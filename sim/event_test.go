package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("EventBase", func() {
	It("should carry the delay it was created with", func() {
		e := NewEventBase(3.0)

		Expect(e.Delay()).To(Equal(VTimeInSec(3.0)))
		Expect(e.Time()).To(Equal(VTimeInSec(0.0)))
		Expect(e.IsCancelled()).To(BeFalse())
		Expect(e.ID).NotTo(BeEmpty())
	})

	It("should keep the time assigned at scheduling", func() {
		e := NewEventBase(3.0)
		e.SetTime(7.5)

		Expect(e.Time()).To(Equal(VTimeInSec(7.5)))
	})

	It("should make cancellation visible through every reference", func() {
		e := &countEvent{EventBase: NewEventBase(1.0)}

		var viaInterface Event = e
		viaInterface.Cancel()

		Expect(e.IsCancelled()).To(BeTrue())
	})
})
