package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Search hooks
	s := NoopSearchHooks{}
	s.OnSearchStart(ctx, "run", 4, 8)
	s.OnProgress(ctx, "run", 1, 24)
	s.OnSolution(ctx, "run", "8 / (3 - 8 / 3)")
	s.OnSearchComplete(ctx, "run", 221184, 1, time.Second, nil)

	// Render hooks
	r := NoopRenderHooks{}
	r.OnRenderStart(ctx, "svg")
	r.OnRenderComplete(ctx, "svg", 1024, time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Search().(NoopSearchHooks); !ok {
		t.Error("Search() should return NoopSearchHooks by default")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}

	// Set custom hooks
	customSearch := &testSearchHooks{}
	SetSearchHooks(customSearch)
	if Search() != customSearch {
		t.Error("SetSearchHooks should set custom hooks")
	}

	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	// Setting nil should not change hooks
	SetSearchHooks(nil)
	if Search() != customSearch {
		t.Error("SetSearchHooks(nil) should not change hooks")
	}
	SetRenderHooks(nil)
	if Render() != customRender {
		t.Error("SetRenderHooks(nil) should not change hooks")
	}

	// Reset should restore defaults
	Reset()
	if _, ok := Search().(NoopSearchHooks); !ok {
		t.Error("Reset() should restore NoopSearchHooks")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Reset() should restore NoopRenderHooks")
	}
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	hooks := &testSearchHooks{}
	SetSearchHooks(hooks)

	ctx := context.Background()
	Search().OnSearchStart(ctx, "run", 4, 2)
	Search().OnSolution(ctx, "run", "1 + 2")
	Search().OnSolution(ctx, "run", "2 + 1")

	if hooks.started != 1 {
		t.Errorf("started = %d, want 1", hooks.started)
	}
	if len(hooks.solutions) != 2 || hooks.solutions[1] != "2 + 1" {
		t.Errorf("solutions = %v", hooks.solutions)
	}
}

// Test implementations

type testSearchHooks struct {
	NoopSearchHooks
	started   int
	solutions []string
}

func (h *testSearchHooks) OnSearchStart(context.Context, string, int, int) { h.started++ }

func (h *testSearchHooks) OnSolution(_ context.Context, _ string, expr string) {
	h.solutions = append(h.solutions, expr)
}

type testRenderHooks struct {
	NoopRenderHooks
}
