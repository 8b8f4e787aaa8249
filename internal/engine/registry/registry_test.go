package registry

import (
	"testing"

	"github.com/DevCompass/compass-cli/internal/engine/core"
	"github.com/DevCompass/compass-cli/pkg/schema"
)

// mockAnalyzer is a mock implementation for testing
type mockAnalyzer struct {
	name  string
	score float64
}

func (m *mockAnalyzer) Name() string { return m.name }

func (m *mockAnalyzer) Score(in schema.ClassificationInput) float64 { return m.score }

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := &Registry{
		analyzers: make(map[string]core.Analyzer),
		factories: make(map[string]AnalyzerFactory),
	}

	// Register factory
	err := r.Register("test", func() (core.Analyzer, error) {
		return &mockAnalyzer{name: "test", score: 0.5}, nil
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	// Get analyzer (should create it)
	a, err := r.Get("test")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if a == nil {
		t.Fatal("Get returned nil analyzer")
	}

	// Get again (should return same instance)
	a2, err := r.Get("test")
	if err != nil {
		t.Fatalf("Get (2nd) failed: %v", err)
	}
	if a != a2 {
		t.Error("Get returned different instances (should be same)")
	}
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	r := &Registry{
		analyzers: make(map[string]core.Analyzer),
		factories: make(map[string]AnalyzerFactory),
	}

	factory := func() (core.Analyzer, error) {
		return &mockAnalyzer{name: "test"}, nil
	}

	if err := r.Register("test", factory); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	if err := r.Register("test", factory); err == nil {
		t.Error("duplicate Register should fail")
	}
}

func TestRegistry_GetUnregistered(t *testing.T) {
	r := &Registry{
		analyzers: make(map[string]core.Analyzer),
		factories: make(map[string]AnalyzerFactory),
	}

	if _, err := r.Get("missing"); err == nil {
		t.Error("Get of unregistered analyzer should fail")
	}
}

func TestRegistry_ListIsSorted(t *testing.T) {
	r := &Registry{
		analyzers: make(map[string]core.Analyzer),
		factories: make(map[string]AnalyzerFactory),
	}

	for _, name := range []string{"zeta", "alpha", "mid"} {
		n := name
		if err := r.Register(n, func() (core.Analyzer, error) {
			return &mockAnalyzer{name: n}, nil
		}); err != nil {
			t.Fatalf("Register(%q) failed: %v", n, err)
		}
	}

	got := r.List()
	want := []string{"alpha", "mid", "zeta"}
	if len(got) != len(want) {
		t.Fatalf("List returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("List returned %v, want %v", got, want)
		}
	}
}
