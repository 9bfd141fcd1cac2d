package anim_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/san-kum/stepviz/internal/anim"
	"github.com/san-kum/stepviz/internal/surface"
	"github.com/stretchr/testify/require"
)

func newTree(t *testing.T, ids ...anim.ElementID) *surface.Tree {
	t.Helper()
	tree := surface.New()
	for _, id := range ids {
		require.NoError(t, tree.Add(id))
	}
	return tree
}

func demoScript() anim.Script {
	return anim.Script{
		{anim.Create("a", anim.Props{X: anim.Ptr(0.0), Y: anim.Ptr(0.0), Label: anim.Label(1)})},
		{anim.Config("a", anim.Props{DX: 2})},
		{anim.Delete("a")},
	}
}

var equateEmpty = cmpopts.EquateEmpty()

func TestStepper_Scenario(t *testing.T) {
	tree := newTree(t, "a")
	st, err := anim.New(tree, tree.Root(), demoScript())
	require.NoError(t, err)
	require.Equal(t, 1, st.StepIndex())

	require.NoError(t, st.Advance())
	require.NoError(t, st.Advance())
	require.Equal(t, 3, st.StepIndex())
	require.False(t, tree.Attached("a"))

	require.NoError(t, st.Retreat())
	require.True(t, tree.Attached("a"))
	x, y := tree.State("a").Pos()
	require.Equal(t, 2.0, x)
	require.Equal(t, 0.0, y)

	require.NoError(t, st.Retreat())
	x, y = tree.State("a").Pos()
	require.Equal(t, 0.0, x)
	require.Equal(t, 0.0, y)

	require.NoError(t, st.Retreat())
	require.False(t, tree.Attached("a"))
	require.Equal(t, 0, st.StepIndex())
	require.Equal(t, 0, st.UndoDepth())

	// Back to a never-created element: no position, no label.
	require.Empty(t, cmp.Diff(surface.ElementState{ID: "a", Index: -1}, tree.State("a"), equateEmpty))
}

func TestStepper_RoundTripEveryStep(t *testing.T) {
	tree := newTree(t, "a", "b", "c")
	script := anim.Script{
		{
			anim.Create("a", anim.Props{X: anim.Ptr(-2.0), Y: anim.Ptr(1.0), Classes: "square"}),
			anim.Create("b", anim.Props{X: anim.Ptr(0.0), Y: anim.Ptr(0.0), Label: anim.Label("b")}),
			anim.Create("c", anim.Props{X: anim.Ptr(1.0), Y: anim.Ptr(1.0)}),
		},
		{
			anim.Config("a", anim.Props{Label: anim.Label(5), ZIndex: anim.Ptr(-1), Classes: "square color1"}),
			anim.Config("b", anim.Props{DX: 3, DY: -4}),
		},
		{
			anim.Delete("b"),
			anim.Config("c", anim.Props{X: anim.Ptr(9.0), DY: 2, ZIndex: anim.Ptr(2)}),
		},
		{
			anim.Config("a", anim.Props{DX: 1}),
			anim.Config("a", anim.Props{DX: 1}),
			anim.Delete("a"),
			anim.Config("c", anim.Props{Classes: "merged", Label: anim.Label(8)}),
		},
	}
	st, err := anim.New(tree, tree.Root(), script)
	require.NoError(t, err)

	for st.CanAdvance() {
		before := tree.Snapshot()
		k := st.StepIndex()
		require.NoError(t, st.Advance())
		require.NoError(t, st.Retreat())
		require.Equal(t, k, st.StepIndex())
		if diff := cmp.Diff(before, tree.Snapshot(), equateEmpty); diff != "" {
			t.Fatalf("step %d round trip mismatch (-want +got):\n%s", k, diff)
		}
		require.NoError(t, st.Advance())
	}
}

func TestStepper_IdempotentClassAdd(t *testing.T) {
	tree := newTree(t, "a")
	script := anim.Script{
		{anim.Create("a", anim.Props{X: anim.Ptr(0.0), Y: anim.Ptr(0.0), Classes: "square"})},
		{anim.Config("a", anim.Props{Classes: "square"})},
		{anim.Config("a", anim.Props{Classes: "square merged"})},
	}
	st, err := anim.New(tree, tree.Root(), script)
	require.NoError(t, err)

	depth := st.UndoDepth()
	require.NoError(t, st.Advance())
	require.Equal(t, depth, st.UndoDepth(), "re-adding a present class records nothing")

	require.NoError(t, st.Advance())
	require.Equal(t, depth+1, st.UndoDepth())

	require.NoError(t, st.Retreat())
	require.NoError(t, st.Retreat())
	require.True(t, tree.HasClass("a", "square"))
	require.False(t, tree.HasClass("a", "merged"))
}

func TestStepper_ConfigAlwaysRecords(t *testing.T) {
	tree := newTree(t, "a")
	script := anim.Script{
		{anim.Create("a", anim.Props{X: anim.Ptr(0.0), Y: anim.Ptr(0.0), Label: anim.Label(1)})},
		{anim.Config("a", anim.Props{Label: anim.Label(1), X: anim.Ptr(0.0)})},
	}
	st, err := anim.New(tree, tree.Root(), script)
	require.NoError(t, err)

	depth := st.UndoDepth()
	require.NoError(t, st.Advance())
	require.Equal(t, depth+2, st.UndoDepth())
}

func TestStepper_Bounds(t *testing.T) {
	tree := newTree(t, "a")
	st, err := anim.New(tree, tree.Root(), demoScript())
	require.NoError(t, err)

	require.NoError(t, st.Seek(st.Len()))
	before := tree.Snapshot()
	depth := st.UndoDepth()
	require.ErrorIs(t, st.Advance(), anim.ErrStepRange)
	require.Equal(t, st.Len(), st.StepIndex())
	require.Equal(t, depth, st.UndoDepth())
	require.Empty(t, cmp.Diff(before, tree.Snapshot(), equateEmpty))

	require.NoError(t, st.Seek(0))
	require.ErrorIs(t, st.Retreat(), anim.ErrStepRange)
	require.Equal(t, 0, st.StepIndex())
	require.False(t, st.CanRetreat())

	require.ErrorIs(t, st.Seek(-1), anim.ErrStepRange)
	require.ErrorIs(t, st.Seek(st.Len()+1), anim.ErrStepRange)

	// Still usable after range errors.
	require.NoError(t, st.Advance())
	require.Equal(t, 1, st.StepIndex())
}

func TestStepper_Normalization(t *testing.T) {
	tree := newTree(t, "a", "b")
	script := anim.Script{
		{
			anim.Create("a", anim.Props{X: anim.Ptr(-5.0), Y: anim.Ptr(2.0)}),
			anim.Create("b", anim.Props{X: anim.Ptr(0.0), Y: anim.Ptr(4.0)}),
		},
		{anim.Config("b", anim.Props{Label: anim.Label("b")})},
		{anim.Config("a", anim.Props{DX: -3})},
	}
	st, err := anim.New(tree, tree.Root(), script)
	require.NoError(t, err)
	require.Equal(t, anim.Origin{X: -8, Y: 2}, st.Origin())

	x, y := tree.State("a").Pos()
	require.Equal(t, 3.0, x)
	require.Equal(t, 0.0, y)
	x, _ = tree.State("b").Pos()
	require.Equal(t, 8.0, x)

	require.NoError(t, st.Seek(3))
	x, _ = tree.State("a").Pos()
	require.Equal(t, 0.0, x)
	require.Equal(t, "(3) + -3", tree.State("a").X.String())
}

func TestStepper_DeleteRestoresSiblingOrder(t *testing.T) {
	tree := newTree(t, "a", "b", "c")
	pos := anim.Props{X: anim.Ptr(0.0), Y: anim.Ptr(0.0)}
	script := anim.Script{
		{anim.Create("a", pos), anim.Create("b", pos), anim.Create("c", pos)},
		{anim.Delete("b")},
		{anim.Delete("c")},
		{anim.Delete("a")},
	}
	st, err := anim.New(tree, tree.Root(), script)
	require.NoError(t, err)
	require.NoError(t, st.Seek(st.Len()))
	require.Empty(t, tree.Children(tree.Root()))

	require.NoError(t, st.Seek(1))
	require.Equal(t, []anim.ElementID{"a", "b", "c"}, tree.Children(tree.Root()))
}

func TestStepper_CreateDeleteSymmetry(t *testing.T) {
	tree := newTree(t, "a", "b")
	script := anim.Script{
		{anim.Create("b", anim.Props{X: anim.Ptr(0.0), Y: anim.Ptr(0.0)})},
		{anim.Create("a", anim.Props{X: anim.Ptr(1.0), Y: anim.Ptr(2.0), Label: anim.Label(3), Classes: "square"})},
		{anim.Config("b", anim.Props{Label: anim.Label("moved")})},
		{anim.Delete("a")},
	}
	st, err := anim.New(tree, tree.Root(), script)
	require.NoError(t, err)

	require.NoError(t, st.Seek(2))
	created := tree.Snapshot()

	require.NoError(t, st.Seek(4))
	require.False(t, tree.Attached("a"))

	require.NoError(t, st.Seek(2))
	require.Empty(t, cmp.Diff(created, tree.Snapshot(), equateEmpty))
	require.Equal(t, []anim.ElementID{"b", "a"}, tree.Children(tree.Root()))
}

func TestNew_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name   string
		script anim.Script
		want   error
	}{
		{"no positions", anim.Script{{anim.Create("a", anim.Props{Label: anim.Label(1)})}}, anim.ErrNoCoordinates},
		{"offset before position", anim.Script{
			{anim.Create("a", anim.Props{X: anim.Ptr(0.0), Y: anim.Ptr(0.0)})},
			{anim.Config("b", anim.Props{DX: 1})},
		}, anim.ErrUnpositionedOffset},
		{"unknown element", anim.Script{{anim.Create("zz", anim.Props{X: anim.Ptr(0.0), Y: anim.Ptr(0.0)})}}, anim.ErrUnknownElement},
		{"duplicate create", anim.Script{
			{anim.Create("a", anim.Props{X: anim.Ptr(0.0), Y: anim.Ptr(0.0)})},
			{anim.Create("a", anim.Props{})},
		}, anim.ErrAlreadyAttached},
		{"delete detached", anim.Script{
			{anim.Create("a", anim.Props{X: anim.Ptr(0.0), Y: anim.Ptr(0.0)})},
			{anim.Delete("b")},
		}, anim.ErrNotAttached},
		{"unknown action", anim.Script{
			{anim.Create("a", anim.Props{X: anim.Ptr(0.0), Y: anim.Ptr(0.0)})},
			{{Kind: anim.Kind(42), Element: "a"}},
		}, anim.ErrUnknownAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := newTree(t, "a", "b")
			st, err := anim.New(tree, tree.Root(), tt.script)
			require.ErrorIs(t, err, tt.want)
			require.Nil(t, st)
			require.Empty(t, tree.Children(tree.Root()), "construction failures must not mutate the surface")
		})
	}
}

func TestNew_InvalidScriptLocation(t *testing.T) {
	tree := newTree(t, "a")
	script := anim.Script{
		{anim.Create("a", anim.Props{X: anim.Ptr(0.0), Y: anim.Ptr(0.0)})},
		{anim.Config("a", anim.Props{}), anim.Create("a", anim.Props{})},
	}
	_, err := anim.New(tree, tree.Root(), script)
	require.ErrorIs(t, err, anim.ErrInvalidScript)

	var se *anim.StepError
	require.True(t, errors.As(err, &se))
	require.Equal(t, 1, se.Step)
	require.Equal(t, 1, se.Action)
}

// hostile mutates the tree behind the stepper's back to force a mid-step failure.
type hostile struct {
	*surface.Tree
	failOn anim.ElementID
}

func (h hostile) Insert(parent, id, before anim.ElementID) error {
	if id == h.failOn {
		return errors.New("surface refused")
	}
	return h.Tree.Insert(parent, id, before)
}

func TestStepper_AdvanceRollsBackPartialStep(t *testing.T) {
	tree := newTree(t, "a", "b", "c")
	script := anim.Script{
		{anim.Create("a", anim.Props{X: anim.Ptr(0.0), Y: anim.Ptr(0.0)})},
		{
			anim.Config("a", anim.Props{Label: anim.Label("changed"), Classes: "x"}),
			anim.Create("b", anim.Props{X: anim.Ptr(1.0)}),
			anim.Create("c", anim.Props{X: anim.Ptr(2.0)}),
		},
	}
	st, err := anim.New(hostile{Tree: tree, failOn: "c"}, tree.Root(), script)
	require.NoError(t, err)

	before := tree.Snapshot()
	depth := st.UndoDepth()

	err = st.Advance()
	require.Error(t, err)
	var se *anim.StepError
	require.True(t, errors.As(err, &se))
	require.Equal(t, anim.ElementID("c"), se.Element)

	require.Equal(t, 1, st.StepIndex())
	require.Equal(t, depth, st.UndoDepth())
	require.Empty(t, cmp.Diff(before, tree.Snapshot(), equateEmpty))
}

type recorder struct {
	indexes []int
	dirs    []anim.Direction
}

func (r *recorder) OnStep(index int, dir anim.Direction) {
	r.indexes = append(r.indexes, index)
	r.dirs = append(r.dirs, dir)
}

func TestStepper_ObserversAndLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	rec := &recorder{}

	tree := newTree(t, "a")
	st, err := anim.New(tree, tree.Root(), demoScript(), anim.WithLogger(logger), anim.WithObserver(rec))
	require.NoError(t, err)
	require.NoError(t, st.Advance())
	require.NoError(t, st.Retreat())

	require.Equal(t, []int{1, 2, 1}, rec.indexes)
	require.Equal(t, []anim.Direction{anim.Forward, anim.Forward, anim.Backward}, rec.dirs)

	out := buf.String()
	require.True(t, strings.Contains(out, "msg=advance"), out)
	require.True(t, strings.Contains(out, "msg=retreat"), out)
}
