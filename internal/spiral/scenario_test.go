package spiral_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fibzoom/internal/spiral"
)

var _ = Describe("Compose", func() {
	var (
		params   spiral.Params
		viewport spiral.Rect
	)

	BeforeEach(func() {
		params = spiral.DefaultParams()
		viewport = spiral.Rect{Max: spiral.Pt(1000, 800)}
	})

	Context("at the start of a cycle in a 1000x800 window", func() {
		var frame spiral.Frame

		BeforeEach(func() {
			frame = spiral.Compose(spiral.Clock{}, viewport, params)
		})

		It("projects the first unit square to a 160px box around the centre", func() {
			first := frame.Commands[0]
			Expect(first.Kind).To(Equal(spiral.CmdStrokeRect))
			Expect(first.Rect.Min.X).To(BeNumerically("~", 384.2, 0.05))
			Expect(first.Rect.Min.Y).To(BeNumerically("~", 355.8, 0.05))
			Expect(first.Rect.Max.X).To(BeNumerically("~", 544.2, 0.05))
			Expect(first.Rect.Max.Y).To(BeNumerically("~", 515.8, 0.05))
			Expect(first.Rect.Width()).To(BeNumerically("~", 160, 1e-9))
		})

		It("draws the first square fully opaque with the label 1", func() {
			label := frame.Commands[1]
			Expect(label.Kind).To(Equal(spiral.CmdText))
			Expect(label.Text).To(Equal("1"))
			Expect(label.Color.A).To(BeEquivalentTo(255))
			Expect(label.At.X).To(BeNumerically("~", 464.2, 0.05))
			Expect(label.At.Y).To(BeNumerically("~", 435.8, 0.05))
		})

		It("always asks for another frame", func() {
			Expect(frame.Repaint).To(BeTrue())
		})
	})

	Context("with a zero-sized surface", func() {
		It("produces no draw commands", func() {
			frame := spiral.Compose(spiral.Clock{Time: 7}, spiral.Rect{}, params)
			Expect(frame.Commands).To(BeEmpty())
			Expect(frame.Repaint).To(BeTrue())
		})
	})

	Context("late in a cycle", func() {
		It("culls the smallest squares and keeps work bounded", func() {
			frame := spiral.Compose(spiral.Clock{Time: 19.9}, viewport, params)
			Expect(frame.Stats.CulledSmall).To(BeNumerically(">", 0))
			Expect(frame.Stats.StoppedAt).To(BeNumerically(">", 0))
			Expect(frame.Stats.Visible).To(BeNumerically("<", params.MaxTerms))
		})
	})
})
