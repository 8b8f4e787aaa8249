// Package dict owns the fixed keyword vocabulary used for task
// classification: one lowercase keyword set per category. Other
// components only read through CategoryKeywords; the builtin sets never
// change at runtime. A user overlay file may add keywords to a category
// but can never remove builtin ones.
package dict

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/DevCompass/compass-cli/internal/engine/core"
)

// Category names. Comparisons against task text are case-insensitive
// substring matches.
const (
	SimpleComplexity  = "simpleComplexity"
	ComplexComplexity = "complexComplexity"
	HighRisk          = "highRisk"
	LowRisk           = "lowRisk"
	SecurityTrigger   = "securityTrigger"
	SystemScope       = "systemScope"
)

// Mixed membership across categories (e.g. "security" in both
// complexComplexity and highRisk) is deliberate: one keyword may add
// evidence to several rules at once.
var builtin = map[string][]string{
	SimpleComplexity: {
		"fix", "update", "change", "typo", "rename", "style", "small", "simple",
	},
	ComplexComplexity: {
		"architecture", "refactor", "system", "integration", "migration",
		"security", "database",
	},
	HighRisk: {
		"critical", "production", "breaking", "delete", "remove", "security",
		"database", "authentication", "payment", "encryption",
	},
	LowRisk: {
		"styling", "docs", "config", "test", "development",
	},
	SecurityTrigger: {
		"auth", "login", "password", "token", "jwt", "session", "oauth",
		"sql", "query", "database", "migration", "schema", "encrypt",
		"decrypt", "permission", "role", "certificate",
	},
	SystemScope: {
		"entire", "all", "across", "throughout", "migrate",
	},
}

// Categories returns all category names in a fixed order.
func Categories() []string {
	return []string{
		SimpleComplexity,
		ComplexComplexity,
		HighRisk,
		LowRisk,
		SecurityTrigger,
		SystemScope,
	}
}

// Dictionary maps category names to lowercase keyword sets.
type Dictionary struct {
	keywords map[string][]string
}

// Default returns a dictionary holding only the builtin keyword sets.
func Default() *Dictionary {
	d := &Dictionary{keywords: make(map[string][]string, len(builtin))}
	for cat, words := range builtin {
		set := make([]string, len(words))
		copy(set, words)
		sort.Strings(set)
		d.keywords[cat] = set
	}
	return d
}

// New builds a dictionary from the builtin sets plus an overlay of extra
// keywords per category. Overlay keywords are lowercased and
// deduplicated. An overlay naming a category outside the fixed set fails
// with ErrUnknownCategory.
func New(overlay map[string][]string) (*Dictionary, error) {
	d := Default()
	for cat, extra := range overlay {
		set, ok := d.keywords[cat]
		if !ok {
			return nil, fmt.Errorf("%w: %q", core.ErrUnknownCategory, cat)
		}

		seen := make(map[string]bool, len(set))
		for _, kw := range set {
			seen[kw] = true
		}
		for _, kw := range extra {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" || seen[kw] {
				continue
			}
			set = append(set, kw)
			seen[kw] = true
		}
		sort.Strings(set)
		d.keywords[cat] = set
	}
	return d, nil
}

// CategoryKeywords returns the keyword set for a named category, sorted
// lexicographically. Fails with ErrUnknownCategory for names outside the
// fixed category set.
func (d *Dictionary) CategoryKeywords(category string) ([]string, error) {
	set, ok := d.keywords[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownCategory, category)
	}
	out := make([]string, len(set))
	copy(out, set)
	return out, nil
}

// Overlay is the on-disk format of a keyword overlay file.
type Overlay struct {
	Categories map[string][]string `yaml:"categories"`
}

// LoadOverlay reads a YAML overlay file and builds a dictionary from it.
// A missing file is not an error: the builtin dictionary is returned.
func LoadOverlay(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read keyword overlay: %w", err)
	}

	var o Overlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("failed to parse keyword overlay: %w", err)
	}

	return New(o.Categories)
}
