package animate_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/heartbeat/internal/animate"
	"github.com/san-kum/heartbeat/internal/config"
	"github.com/san-kum/heartbeat/internal/scene"
)

func presetAnimator(name string) *animate.Animator {
	cfg, err := config.GetPreset(name)
	Expect(err).NotTo(HaveOccurred())
	return animate.New(cfg.Animation())
}

var _ = Describe("Animator", func() {
	Describe("at t=0 with the burst constants", func() {
		var f scene.Frame

		BeforeEach(func() {
			f = presetAnimator("burst").Frame(0)
		})

		It("starts at rest", func() {
			Expect(f.Beat).To(BeZero())
			Expect(f.Heart.RotationX).To(BeZero())
			Expect(f.Heart.RotationY).To(BeZero())
			Expect(f.Heart.Scale).To(Equal(1.0))
		})

		It("emits the base color", func() {
			Expect(f.Heart.Color.R).To(Equal(1.0))
			Expect(f.Heart.Color.G).To(BeNumerically("~", 0.1, 1e-12))
			Expect(f.Heart.Color.B).To(BeNumerically("~", 0.4, 1e-12))
		})

		It("keeps the burst cube hidden", func() {
			Expect(f.Explosion.Visible).To(BeFalse())
			Expect(f.Explosion.Scale).To(Equal(1.0))
		})
	})

	Describe("at t=π/6 with the classic constants", func() {
		It("puts the primary pulse at its peak", func() {
			a := presetAnimator("classic")
			t := math.Pi / 6
			want := 0.08*1 + 0.04*math.Sin(6*t)
			Expect(a.Beat(t)).To(BeNumerically("~", want, 1e-12))
			Expect(a.Beat(t)).To(BeNumerically("~", 0.08, 1e-12))
		})
	})

	Describe("shape coupling", func() {
		It("rotates heart and text together but scales only the heart", func() {
			a := presetAnimator("classic")
			for _, t := range []float64{0.3, 1.7, 4.2, 9.9} {
				f := a.Frame(t)
				Expect(f.Text.RotationX).To(Equal(f.Heart.RotationX))
				Expect(f.Text.RotationY).To(Equal(f.Heart.RotationY))
				Expect(f.Heart.Scale).To(BeNumerically("~", 1+f.Beat, 1e-12))
				Expect(f.Text.Scale).To(Equal(1.0))
			}
		})

		It("drives particle size from the beat", func() {
			a := presetAnimator("classic")
			f := a.Frame(0.4)
			Expect(f.Heart.Size).To(BeNumerically("~", 0.035+f.Beat*0.06, 1e-12))
			Expect(f.Text.Size).To(BeNumerically("~", 0.03, 1e-12))
		})

		It("derives color from intensity without clamping", func() {
			a := animate.New(scene.Animation{
				Beat:   scene.BeatParams{A1: 0.5, W1: math.Pi / 2},
				Styles: scene.Styles{Heart: scene.ShapeStyle{BaseIntensity: 3, IntensityGain: 2, Green: 0.5, Blue: 0.4}},
			})
			f := a.Frame(1)
			Expect(f.Heart.Color.G).To(BeNumerically("~", 0.5*4, 1e-12))
			Expect(f.Heart.Color.B).To(BeNumerically("~", 0.4*4, 1e-12))
			Expect(f.Heart.Color.Clamp().G).To(Equal(1.0))
		})
	})

	Describe("explosion gate", func() {
		var a *animate.Animator

		BeforeEach(func() {
			// beat(1) = 0.15 sin(π/2) = 0.15; beat(2) = 0.15 sin(π) = 0.
			a = animate.New(scene.Animation{
				Beat:      scene.BeatParams{A1: 0.15, W1: math.Pi / 2},
				Explosion: scene.ExplosionParams{Enabled: true, Threshold: 0.12, Gain: 8},
			})
		})

		It("scales the cube above the threshold", func() {
			f := a.Frame(1)
			Expect(f.Beat).To(BeNumerically("~", 0.15, 1e-12))
			Expect(f.Explosion.Visible).To(BeTrue())
			Expect(f.Explosion.Scale).To(BeNumerically("~", 2.2, 1e-12))
		})

		It("resets once the beat falls back", func() {
			Expect(a.Frame(1).Explosion.Visible).To(BeTrue())
			f := a.Frame(2)
			Expect(f.Explosion.Visible).To(BeFalse())
			Expect(f.Explosion.Scale).To(Equal(1.0))
		})

		It("stays hidden when disabled", func() {
			b := animate.New(scene.Animation{
				Beat:      scene.BeatParams{A1: 0.15, W1: math.Pi / 2},
				Explosion: scene.ExplosionParams{Threshold: 0.12, Gain: 8},
			})
			Expect(b.Frame(1).Explosion.Visible).To(BeFalse())
		})

		It("fires on the burst preset peaks", func() {
			b := presetAnimator("burst")
			// 0.1 sin x + 0.05 sin 2x peaks at x = π/3.
			f := b.Frame(math.Pi / 9)
			Expect(f.Beat).To(BeNumerically(">", 0.12))
			Expect(f.Explosion.Visible).To(BeTrue())
			Expect(f.Explosion.Scale).To(BeNumerically("~", 1+f.Beat*8, 1e-12))
		})
	})
})
