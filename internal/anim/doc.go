// Package anim provides the step engine for scripted, reversible animations.
//
// A [Script] is an ordered list of steps; each step is a batch of element
// level [Action] values (create, configure, delete) applied to a [Surface].
// The package defines:
//
//   - [Surface]: the render-surface capability the engine mutates
//   - [Coord]: a composed position (base plus ordered offsets)
//   - [Normalize]: the coordinate pass computing the script's [Origin]
//   - [Stepper]: the forward/backward state machine with its undo log
//
// # Example
//
//	tree := surface.New()
//	a := tree.NewElement("a")
//	script := anim.Script{
//		{anim.Create(a, anim.Props{X: anim.Ptr(0.0), Y: anim.Ptr(0.0)})},
//		{anim.Config(a, anim.Props{DX: 2})},
//	}
//	st, _ := anim.New(tree, tree.Root(), script)
//	_ = st.Advance()
//	_ = st.Retreat()
//
// # Thread Safety
//
// A Stepper is NOT safe for concurrent use, and it must be the only writer of
// the elements it manages for the lifetime of the script.
package anim
