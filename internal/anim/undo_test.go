package anim

import (
	"errors"
	"testing"
)

func TestUndoLog_UnwindStopsAtLowerTag(t *testing.T) {
	var log undoLog
	var ran []string
	push := func(step int, name string) {
		log.push(step, func() error { ran = append(ran, name); return nil })
	}
	push(0, "a")
	push(1, "b")
	push(1, "c")
	push(2, "d")

	n, err := log.unwind(1)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("unwound %d entries, want 3", n)
	}
	want := []string{"d", "c", "b"}
	for i := range want {
		if ran[i] != want[i] {
			t.Fatalf("ran %v, want %v", ran, want)
		}
	}
	if log.depth() != 1 {
		t.Errorf("depth = %d, want 1", log.depth())
	}
}

func TestUndoLog_UnwindJoinsErrors(t *testing.T) {
	var log undoLog
	boom := errors.New("boom")
	calls := 0
	log.push(0, func() error { calls++; return nil })
	log.push(0, func() error { calls++; return boom })

	_, err := log.unwind(0)
	if !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}
