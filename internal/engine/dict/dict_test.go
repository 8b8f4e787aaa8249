package dict

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/DevCompass/compass-cli/internal/engine/core"
)

func TestDefault_CategoryKeywords(t *testing.T) {
	d := Default()

	tests := []struct {
		category string
		contains []string
		count    int
	}{
		{SimpleComplexity, []string{"fix", "typo", "update"}, 8},
		{ComplexComplexity, []string{"architecture", "refactor", "security"}, 7},
		{HighRisk, []string{"delete", "production", "payment"}, 10},
		{LowRisk, []string{"docs", "test"}, 5},
		{SecurityTrigger, []string{"auth", "jwt", "certificate"}, 17},
		{SystemScope, []string{"entire", "across", "migrate"}, 5},
	}

	for _, tt := range tests {
		kws, err := d.CategoryKeywords(tt.category)
		if err != nil {
			t.Fatalf("CategoryKeywords(%q) failed: %v", tt.category, err)
		}
		if len(kws) != tt.count {
			t.Errorf("category %q has %d keywords, want %d", tt.category, len(kws), tt.count)
		}
		if !sort.StringsAreSorted(kws) {
			t.Errorf("category %q keywords not sorted: %v", tt.category, kws)
		}
		for _, want := range tt.contains {
			if !contains(kws, want) {
				t.Errorf("category %q missing keyword %q", tt.category, want)
			}
		}
	}
}

func TestCategoryKeywords_Unknown(t *testing.T) {
	d := Default()
	_, err := d.CategoryKeywords("urgency")
	if !errors.Is(err, core.ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestCategoryKeywords_ReturnsCopy(t *testing.T) {
	d := Default()
	kws, _ := d.CategoryKeywords(SimpleComplexity)
	kws[0] = "mutated"

	again, _ := d.CategoryKeywords(SimpleComplexity)
	if again[0] == "mutated" {
		t.Error("CategoryKeywords returned the internal slice")
	}
}

func TestNew_Overlay(t *testing.T) {
	d, err := New(map[string][]string{
		SimpleComplexity: {"Tweak", "fix", "", "  polish  "},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	kws, _ := d.CategoryKeywords(SimpleComplexity)
	if !contains(kws, "tweak") || !contains(kws, "polish") {
		t.Errorf("overlay keywords not merged: %v", kws)
	}
	// Builtins stay, duplicates and blanks collapse.
	if !contains(kws, "fix") {
		t.Errorf("builtin keyword lost: %v", kws)
	}
	if len(kws) != 10 {
		t.Errorf("got %d keywords, want 10: %v", len(kws), kws)
	}
}

func TestNew_OverlayUnknownCategory(t *testing.T) {
	_, err := New(map[string][]string{"urgency": {"asap"}})
	if !errors.Is(err, core.ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keywords.yaml")
	content := "categories:\n  highRisk:\n    - rollback\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	d, err := LoadOverlay(path)
	if err != nil {
		t.Fatalf("LoadOverlay failed: %v", err)
	}
	kws, _ := d.CategoryKeywords(HighRisk)
	if !contains(kws, "rollback") {
		t.Errorf("overlay keyword missing: %v", kws)
	}
}

func TestLoadOverlay_MissingFile(t *testing.T) {
	d, err := LoadOverlay(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing overlay should fall back to defaults, got %v", err)
	}
	if d == nil {
		t.Fatal("expected default dictionary")
	}
}

func contains(ss []string, want string) bool {
	for _, s := range ss {
		if s == want {
			return true
		}
	}
	return false
}
