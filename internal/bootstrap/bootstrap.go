package bootstrap

import (
	// Import analyzers for registration side-effects.
	// Each analyzer package contains an init() function that registers
	// the analyzer with the global registry.
	_ "github.com/DevCompass/compass-cli/internal/analyze/complexity"
	_ "github.com/DevCompass/compass-cli/internal/analyze/load"
	_ "github.com/DevCompass/compass-cli/internal/analyze/risk"
	_ "github.com/DevCompass/compass-cli/internal/analyze/scope"
	_ "github.com/DevCompass/compass-cli/internal/analyze/urgency"
)

// This package only imports analyzer packages for their init() side-effects.
// Import this package from main.go to ensure all analyzers are registered.
