package playback_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/neurovolt/internal/playback"
	"github.com/san-kum/neurovolt/internal/trace"
)

// fixedStepSet builds a recording with n samples spaced dt apart and a flat
// series per channel.
func fixedStepSet(n int, dt float64, channels ...string) *trace.Set {
	times := make([]float64, n)
	for i := range times {
		times[i] = float64(i) * dt
	}
	values := make(map[string][]float64, len(channels))
	for _, id := range channels {
		series := make([]float64, n)
		for i := range series {
			series[i] = -70
		}
		values[id] = series
	}
	return trace.New(times, values)
}

var _ = Describe("Controller", func() {
	Describe("construction", func() {
		It("rejects a non-positive step", func() {
			_, err := playback.NewController(fixedStepSet(10, 0.025, "cell_0"),
				playback.Config{Step: 0})
			Expect(err).To(MatchError(playback.ErrInvalidStep))
		})

		It("rejects an inverted highlight window", func() {
			_, err := playback.NewController(fixedStepSet(10, 0.025, "cell_0"),
				playback.Config{Step: 1, Highlight: &playback.Window{Start: 35, End: 20}})
			Expect(err).To(MatchError(playback.ErrInvalidWindow))
		})
	})

	Describe("lifecycle", func() {
		It("rejects ticks while idle", func() {
			ctrl, err := playback.NewController(fixedStepSet(10, 0.025, "cell_0"),
				playback.Config{Step: 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(ctrl.Phase()).To(Equal(playback.Idle))

			_, err = ctrl.Tick()
			Expect(err).To(MatchError(playback.ErrNotRunning))
		})

		It("stops terminally from any phase", func() {
			ctrl, _ := playback.NewController(fixedStepSet(10, 0.025, "cell_0"),
				playback.Config{Step: 2})
			ctrl.Start()
			_, err := ctrl.Tick()
			Expect(err).NotTo(HaveOccurred())

			ctrl.Stop()
			Expect(ctrl.Phase()).To(Equal(playback.Stopped))
			_, err = ctrl.Tick()
			Expect(err).To(MatchError(playback.ErrStopped))

			ctrl.Start() // no resurrection
			_, err = ctrl.Tick()
			Expect(err).To(MatchError(playback.ErrStopped))
		})
	})

	Describe("revealing", func() {
		It("reveals the same leading slice on every channel", func() {
			ctrl, _ := playback.NewController(fixedStepSet(100, 0.025, "cell_0", "cell_1"),
				playback.Config{Step: 16})
			ctrl.Start()

			frame, err := ctrl.Tick()
			Expect(err).NotTo(HaveOccurred())
			Expect(frame.Index).To(Equal(16))
			Expect(frame.Times).To(HaveLen(16))
			Expect(frame.Channels).To(HaveLen(2))
			for _, ch := range frame.Channels {
				Expect(ch.Values).To(HaveLen(16))
			}
		})

		It("degrades a malformed channel to an empty slice without touching the others", func() {
			set := trace.New([]float64{0, 0.025, 0.05, 0.075}, map[string][]float64{
				"cell_0": {-70, -69, -68, -67},
				"cell_1": {-70}, // length mismatch from the engine
			})
			ctrl, _ := playback.NewController(set, playback.Config{Step: 2})
			ctrl.Start()
			Expect(ctrl.Degraded()).To(ConsistOf("cell_1"))

			frame, err := ctrl.Tick()
			Expect(err).NotTo(HaveOccurred())
			Expect(frame.Channels).To(HaveLen(1))
			Expect(frame.Channels[0].ID).To(Equal("cell_0"))
			Expect(frame.Channels[0].Values).To(HaveLen(2))
		})

		It("completes a bounded cycle per tick on an empty recording", func() {
			ctrl, _ := playback.NewController(fixedStepSet(0, 0.025),
				playback.Config{Step: 16, Loop: true})
			ctrl.Start()

			for i := 0; i < 5; i++ {
				frame, err := ctrl.Tick()
				Expect(err).NotTo(HaveOccurred())
				Expect(frame.Index).To(BeZero())
				Expect(frame.CycleComplete).To(BeTrue())
				Expect(frame.HighlightOn).To(BeFalse())
				Expect(frame.Markers).To(BeEmpty())
			}
		})
	})

	Describe("markers", func() {
		// The narrow-interval demo: 200 ms at 0.025 ms spacing, 16 samples
		// per frame, stimulus markers at 21, 26 and 61 ms.
		newDemo := func(loop bool) *playback.Controller {
			ctrl, err := playback.NewController(fixedStepSet(8000, 0.025, "cell_0", "cell_1"),
				playback.Config{
					Step:      16,
					Loop:      loop,
					Triggers:  []float64{21, 26, 61},
					Highlight: &playback.Window{Start: 20, End: 35},
				})
			Expect(err).NotTo(HaveOccurred())
			ctrl.Start()
			return ctrl
		}

		It("fires each marker exactly once per cycle and never drops one", func() {
			ctrl := newDemo(false)

			newlyFired := 0
			prev := 0
			for {
				frame, err := ctrl.Tick()
				Expect(err).NotTo(HaveOccurred())
				Expect(len(frame.Markers)).To(BeNumerically(">=", prev),
					"markers are append-only within a cycle")
				if len(frame.Markers) > prev {
					newlyFired += len(frame.Markers) - prev
				}
				prev = len(frame.Markers)
				if frame.CycleComplete {
					Expect(frame.Markers).To(Equal([]float64{21, 26, 61}))
					break
				}
			}
			Expect(newlyFired).To(Equal(3))
		})

		It("fires the first marker on the tick that reveals its threshold", func() {
			ctrl := newDemo(false)

			for {
				frame, err := ctrl.Tick()
				Expect(err).NotTo(HaveOccurred())
				if len(frame.Markers) > 0 {
					// Revealed time first reaches 21 ms at sample 841;
					// with step 16 that is reveal index 848.
					Expect(frame.Index).To(Equal(848))
					Expect(frame.Markers[0]).To(Equal(21.0))
					break
				}
				Expect(frame.CycleComplete).To(BeFalse())
			}
		})

		It("re-arms markers only after a loop restart", func() {
			ctrl := newDemo(true)

			var final playback.Frame
			for {
				frame, err := ctrl.Tick()
				Expect(err).NotTo(HaveOccurred())
				if frame.CycleComplete {
					final = frame
					break
				}
			}
			// The completed cycle's final frame still shows everything.
			Expect(final.Markers).To(HaveLen(3))
			Expect(final.Index).To(Equal(8000))

			// The next tick starts a fresh cycle: nothing fired, nothing
			// revealed beyond the first step.
			frame, err := ctrl.Tick()
			Expect(err).NotTo(HaveOccurred())
			Expect(frame.Index).To(Equal(16))
			Expect(frame.Markers).To(BeEmpty())
			Expect(frame.HighlightOn).To(BeFalse())
		})

		It("holds the final frame when looping is disabled", func() {
			ctrl := newDemo(false)

			for {
				frame, _ := ctrl.Tick()
				if frame.CycleComplete {
					break
				}
			}
			frame, err := ctrl.Tick()
			Expect(err).NotTo(HaveOccurred())
			Expect(frame.Index).To(Equal(8000))
			Expect(frame.CycleComplete).To(BeTrue())
			Expect(frame.Markers).To(HaveLen(3))
		})
	})

	Describe("highlight", func() {
		It("toggles on inside the window and off past it", func() {
			ctrl, _ := playback.NewController(fixedStepSet(8000, 0.025, "cell_0"),
				playback.Config{
					Step:      16,
					Highlight: &playback.Window{Start: 20, End: 35},
				})
			ctrl.Start()

			sawOn := false
			for {
				frame, err := ctrl.Tick()
				Expect(err).NotTo(HaveOccurred())
				revealed := float64(frame.Index-1) * 0.025
				inWindow := revealed >= 20 && revealed < 35
				Expect(frame.HighlightOn).To(Equal(inWindow),
					"revealed up to %v ms", revealed)
				if frame.HighlightOn {
					sawOn = true
				}
				if frame.CycleComplete {
					Expect(frame.HighlightOn).To(BeFalse())
					break
				}
			}
			Expect(sawOn).To(BeTrue())
		})
	})
})
