package metrics

import (
	"testing"

	"github.com/san-kum/stepviz/internal/anim"
	"github.com/san-kum/stepviz/internal/scenario"
	"github.com/san-kum/stepviz/internal/surface"
)

func TestRecorderDemo(t *testing.T) {
	tree := surface.New()
	script, err := scenario.Demo(tree)
	if err != nil {
		t.Fatal(err)
	}

	rec := NewRecorder(NewAttached(tree), NewClassCount(tree, "square"))
	st, err := anim.New(tree, tree.Root(), script, anim.WithObserver(rec))
	if err != nil {
		t.Fatal(err)
	}
	depth := NewUndoDepth(st)
	rec.Add(depth)

	if err := st.Seek(st.Len()); err != nil {
		t.Fatal(err)
	}
	if err := st.Seek(0); err != nil {
		t.Fatal(err)
	}

	steps := []int{}
	for _, s := range rec.Samples() {
		steps = append(steps, s.Step)
	}
	wantSteps := []int{1, 2, 3, 2, 1, 0}
	if len(steps) != len(wantSteps) {
		t.Fatalf("expected steps %v, got %v", wantSteps, steps)
	}
	for i := range steps {
		if steps[i] != wantSteps[i] {
			t.Fatalf("expected steps %v, got %v", wantSteps, steps)
		}
	}

	attached := rec.Series("attached")
	wantAttached := []float64{1, 1, 0, 1, 1, 0}
	for i, v := range wantAttached {
		if attached[i] != v {
			t.Errorf("attached[%d] = %v, want %v", i, attached[i], v)
		}
	}

	// depth was added after construction so the first sample reads zero.
	if got := rec.Series("undo_depth"); len(got) != 6 || got[0] != 0 {
		t.Errorf("unexpected depth series %v", got)
	}
	if depth.Peak() == 0 {
		t.Error("expected a non-zero peak undo depth")
	}
	if st.UndoDepth() != 0 || depth.Value() != 0 {
		t.Errorf("undo log should be empty at step 0, got %d", st.UndoDepth())
	}

	if rec.Samples()[4].Direction != anim.Backward {
		t.Error("retreat samples should be marked backward")
	}
}

func TestRecorderSeriesUnknown(t *testing.T) {
	rec := NewRecorder()
	rec.Sample(0)
	if rec.Series("missing") != nil {
		t.Error("unknown metric should have no series")
	}
}

func TestRecorderClassCounts(t *testing.T) {
	tree := surface.New()
	script, err := scenario.Squares(tree, 2)
	if err != nil {
		t.Fatal(err)
	}
	rec := NewRecorder(NewAttached(tree))
	for _, class := range []string{"merged", "square"} {
		rec.Add(NewClassCount(tree, class))
	}
	st, err := anim.New(tree, tree.Root(), script, anim.WithObserver(rec))
	if err != nil {
		t.Fatal(err)
	}
	if err := st.Seek(st.Len()); err != nil {
		t.Fatal(err)
	}

	want := []string{"attached", "class:merged", "class:square"}
	got := rec.Names()
	if len(got) != len(want) {
		t.Fatalf("expected names %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected names %v, got %v", want, got)
		}
	}

	merged := rec.Series("class:merged")
	if merged[0] != 0 {
		t.Errorf("nothing is merged at step 1, got %v", merged[0])
	}
	if last := merged[len(merged)-1]; last != 2 {
		t.Errorf("expected 2 merged cells at the end, got %v", last)
	}
}
