package classify

import (
	// Import analyzers for registration side-effects.
	// Each analyzer's init() registers it with the global registry.
	_ "github.com/DevCompass/compass-cli/internal/analyze/complexity"
	_ "github.com/DevCompass/compass-cli/internal/analyze/load"
	_ "github.com/DevCompass/compass-cli/internal/analyze/risk"
	_ "github.com/DevCompass/compass-cli/internal/analyze/scope"
	_ "github.com/DevCompass/compass-cli/internal/analyze/urgency"
)
