package server

import (
	"testing"

	"github.com/rpruizc/rustoguelike/internal/engine"
)

func registrySession(t *testing.T, id string) *Session {
	t.Helper()
	cfg := engine.NewConfig()
	cfg.Seed = 1
	cfg.Width = 3
	cfg.Height = 1
	return NewSession(id, engine.NewGame(cfg, rowTerrain{"@.."}))
}

func TestRegistry_AddGetRemove(t *testing.T) {
	r := NewRegistry()

	if r.Len() != 0 {
		t.Fatalf("fresh registry holds %d sessions", r.Len())
	}

	s := registrySession(t, "alpha")
	r.Add(s)

	got, ok := r.Get("alpha")
	if !ok || got != s {
		t.Fatalf("Get(alpha) = %v/%v, want the added session", got, ok)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}

	r.Remove("alpha")
	if _, ok := r.Get("alpha"); ok {
		t.Error("removed session still resolvable")
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d after removal, want 0", r.Len())
	}
}

func TestRegistry_RemoveMissingIsNoOp(t *testing.T) {
	r := NewRegistry()
	r.Remove("ghost")
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}

func TestRegistry_SummariesSorted(t *testing.T) {
	r := NewRegistry()
	r.Add(registrySession(t, "bravo"))
	r.Add(registrySession(t, "alpha"))
	r.Add(registrySession(t, "charlie"))

	sums := r.Summaries()
	if len(sums) != 3 {
		t.Fatalf("summaries = %d, want 3", len(sums))
	}
	order := []string{"alpha", "bravo", "charlie"}
	for i, want := range order {
		if sums[i].ID != want {
			t.Errorf("summary %d = %s, want %s", i, sums[i].ID, want)
		}
	}
}
