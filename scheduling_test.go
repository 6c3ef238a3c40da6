package presence_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"

	"github.com/motionkit/presence"
)

// flushingScheduler combines the scheduler and flusher mocks into one
// injected capability, the way a DOM-bound scheduler would look.
type flushingScheduler struct {
	*MockScheduler
	*MockLayoutFlusher
}

var _ = Describe("Controller scheduling", func() {
	var (
		mockCtrl *gomock.Controller
		sched    *MockScheduler
		cfg      presence.Config
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		sched = NewMockScheduler(mockCtrl)

		var err error
		cfg, err = presence.NewConfig(100 * time.Millisecond)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should flush layout before scheduling the frame flip", func() {
		flusher := NewMockLayoutFlusher(mockCtrl)
		controller := presence.NewController("c",
			flushingScheduler{sched, flusher})

		frameTask := NewMockTask(mockCtrl)
		gomock.InOrder(
			flusher.EXPECT().FlushLayout(),
			sched.EXPECT().
				ScheduleNextFrame(gomock.Any()).
				Return(frameTask),
		)

		controller.Evaluate(false, cfg)
		obs := controller.Evaluate(true, cfg)
		Expect(obs.Phase).To(Equal(presence.PhaseMountedPreEntry))

		frameTask.EXPECT().Cancel()
		controller.Release()
	})

	It("should flip synchronously when there is no frame primitive", func() {
		controller := presence.NewController("c", sched)

		enterTask := NewMockTask(mockCtrl)
		sched.EXPECT().ScheduleNextFrame(gomock.Any()).Return(nil)
		sched.EXPECT().
			ScheduleAfter(100*time.Millisecond, gomock.Any()).
			Return(enterTask)

		controller.Evaluate(false, cfg)
		obs := controller.Evaluate(true, cfg)
		Expect(obs.Phase).To(Equal(presence.PhaseEntering))
		Expect(obs.IsVisible).To(BeTrue())

		enterTask.EXPECT().Cancel()
		controller.Release()
	})

	It("should cancel the pending flip when intent reverses", func() {
		controller := presence.NewController("c", sched)

		frameTask := NewMockTask(mockCtrl)
		sched.EXPECT().ScheduleNextFrame(gomock.Any()).Return(frameTask)

		controller.Evaluate(false, cfg)
		controller.Evaluate(true, cfg)

		exitTask := NewMockTask(mockCtrl)
		gomock.InOrder(
			frameTask.EXPECT().Cancel(),
			sched.EXPECT().
				ScheduleAfter(100*time.Millisecond, gomock.Any()).
				Return(exitTask),
		)

		obs := controller.Evaluate(false, cfg)
		Expect(obs.Phase).To(Equal(presence.PhaseExiting))

		exitTask.EXPECT().Cancel()
		controller.Release()
	})

	It("should walk the entry through the scheduler callbacks", func() {
		controller := presence.NewController("c", sched)

		var frameFn, enterFn func()
		frameTask := NewMockTask(mockCtrl)
		enterTask := NewMockTask(mockCtrl)

		sched.EXPECT().
			ScheduleNextFrame(gomock.Any()).
			DoAndReturn(func(f func()) *MockTask {
				frameFn = f
				return frameTask
			})

		controller.Evaluate(false, cfg)
		controller.Evaluate(true, cfg)
		Expect(frameFn).NotTo(BeNil())

		sched.EXPECT().
			ScheduleAfter(100*time.Millisecond, gomock.Any()).
			DoAndReturn(func(_ time.Duration, f func()) *MockTask {
				enterFn = f
				return enterTask
			})

		frameFn()
		Expect(controller.Observe().Phase).
			To(Equal(presence.PhaseEntering))

		enterFn()
		Expect(controller.Observe().Phase).
			To(Equal(presence.PhaseEntered))
		Expect(controller.Observe().IsAnimating).To(BeFalse())

		controller.Release()
	})

	It("should ignore a stale frame callback after supersession", func() {
		controller := presence.NewController("c", sched)

		var frameFn func()
		frameTask := NewMockTask(mockCtrl)
		sched.EXPECT().
			ScheduleNextFrame(gomock.Any()).
			DoAndReturn(func(f func()) *MockTask {
				frameFn = f
				return frameTask
			})

		controller.Evaluate(false, cfg)
		controller.Evaluate(true, cfg)

		exitTask := NewMockTask(mockCtrl)
		frameTask.EXPECT().Cancel()
		sched.EXPECT().
			ScheduleAfter(100*time.Millisecond, gomock.Any()).
			Return(exitTask)
		controller.Evaluate(false, cfg)

		// A scheduler that delivered the frame callback anyway must not
		// resurrect the entry.
		frameFn()
		Expect(controller.Observe().Phase).To(Equal(presence.PhaseExiting))

		exitTask.EXPECT().Cancel()
		controller.Release()
	})
})
