package anim_test

import (
	"github.com/san-kum/stepviz/internal/anim"
	"github.com/san-kum/stepviz/internal/surface"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Stepper", func() {
	var (
		tree *surface.Tree
		st   *anim.Stepper
	)

	BeforeEach(func() {
		tree = surface.New()
		for _, id := range []anim.ElementID{"a", "b"} {
			Expect(tree.Add(id)).To(Succeed())
		}
		script := anim.Script{
			{
				anim.Create("a", anim.Props{X: anim.Ptr(-5.0), Y: anim.Ptr(0.0), Label: anim.Label(1), Classes: "square"}),
				anim.Create("b", anim.Props{X: anim.Ptr(0.0), Y: anim.Ptr(-1.0)}),
			},
			{anim.Config("a", anim.Props{ZIndex: anim.Ptr(3), Classes: "square color1"})},
			{anim.Config("a", anim.Props{DX: -3, Label: anim.Label(2)})},
			{anim.Delete("a"), anim.Config("b", anim.Props{DY: 1})},
		}
		var err error
		st, err = anim.New(tree, tree.Root(), script)
		Expect(err).NotTo(HaveOccurred())
	})

	It("starts with the first step applied", func() {
		Expect(st.StepIndex()).To(Equal(1))
		Expect(tree.Attached("a")).To(BeTrue())
		Expect(tree.Text("a")).To(Equal("1"))
	})

	It("places every coordinate at or beyond the origin", func() {
		Expect(st.Origin()).To(Equal(anim.Origin{X: -8, Y: -1}))
		for st.CanAdvance() {
			for _, e := range tree.Frame() {
				x, y := e.Pos()
				Expect(x).To(BeNumerically(">=", 0))
				Expect(y).To(BeNumerically(">=", 0))
			}
			Expect(st.Advance()).To(Succeed())
		}
	})

	Context("at the last step", func() {
		BeforeEach(func() {
			Expect(st.Seek(st.Len())).To(Succeed())
		})

		It("rejects advance without mutating", func() {
			depth := st.UndoDepth()
			Expect(st.Advance()).To(MatchError(anim.ErrStepRange))
			Expect(st.UndoDepth()).To(Equal(depth))
			Expect(st.StepIndex()).To(Equal(st.Len()))
		})

		It("unwinds to nothing applied", func() {
			for st.CanRetreat() {
				Expect(st.Retreat()).To(Succeed())
			}
			Expect(st.StepIndex()).To(BeZero())
			Expect(st.UndoDepth()).To(BeZero())
			Expect(tree.Children(tree.Root())).To(BeEmpty())
			Expect(tree.Classes("a")).To(BeEmpty())
		})

		It("reattaches a deleted element at its original index", func() {
			Expect(tree.Attached("a")).To(BeFalse())
			Expect(st.Retreat()).To(Succeed())
			Expect(tree.Children(tree.Root())).To(Equal([]anim.ElementID{"a", "b"}))
		})
	})

	DescribeTable("round trip of each step",
		func(k int) {
			Expect(st.Seek(k)).To(Succeed())
			before := tree.Snapshot()
			Expect(st.Advance()).To(Succeed())
			Expect(st.Retreat()).To(Succeed())
			Expect(tree.Snapshot()).To(Equal(before))
		},
		Entry("step 1", 1),
		Entry("step 2", 2),
		Entry("step 3", 3),
	)

	It("keeps classes that predate the step", func() {
		Expect(st.Advance()).To(Succeed())
		Expect(tree.Classes("a")).To(Equal([]string{"square", "color1"}))
		Expect(st.Retreat()).To(Succeed())
		Expect(tree.Classes("a")).To(Equal([]string{"square"}))
	})

	It("restores the exact composed position", func() {
		Expect(st.Seek(3)).To(Succeed())
		Expect(tree.State("a").X.String()).To(Equal("(3) + -3"))
		Expect(st.Retreat()).To(Succeed())
		Expect(tree.State("a").X).To(Equal(anim.Coord{Base: 3}))
	})
})
