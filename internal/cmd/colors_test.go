package cmd

import (
	"strings"
	"testing"

	"github.com/DevCompass/compass-cli/pkg/schema"
)

func TestWorkflowColor_CoversAllLabels(t *testing.T) {
	// Under `go test` stdout is not a TTY, so colorize passes the label
	// through and the output is the plain label name.
	for _, w := range schema.AllWorkflows() {
		got := workflowColor(w)
		if !strings.Contains(got, w.String()) {
			t.Errorf("workflowColor(%s) = %q, want the label name in the output", w, got)
		}
	}
}

func TestFormatHelpers(t *testing.T) {
	if got := warn("careful"); !strings.Contains(got, "[WARN]") || !strings.Contains(got, "careful") {
		t.Errorf("warn = %q", got)
	}
	if got := formatError("boom"); !strings.Contains(got, "[ERROR]") || !strings.Contains(got, "boom") {
		t.Errorf("formatError = %q", got)
	}
	if got := titleWithDesc("STATS", "3 decisions"); !strings.Contains(got, "[STATS]") || !strings.Contains(got, "3 decisions") {
		t.Errorf("titleWithDesc = %q", got)
	}
	if got := indent("line"); got != "     line" {
		t.Errorf("indent = %q", got)
	}
}
