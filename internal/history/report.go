package history

import (
	"fmt"
	"html/template"
	"io"
)

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>compass classification stats</title>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 2rem auto; max-width: 720px; color: #1f2430; }
  h1 { font-size: 1.4rem; }
  table { border-collapse: collapse; width: 100%; margin: 1rem 0; }
  th, td { text-align: left; padding: 0.4rem 0.8rem; border-bottom: 1px solid #dde1e8; }
  th { background: #f4f6fa; }
  .metric { font-size: 1.1rem; margin: 0.3rem 0; }
  .muted { color: #6b7280; font-size: 0.85rem; }
</style>
</head>
<body>
<h1>Workflow classification stats</h1>
<p class="metric">Total decisions: <strong>{{.TotalDecisions}}</strong></p>
<p class="metric">Average confidence: <strong>{{printf "%.2f" .AvgConfidence}}</strong></p>
<p class="metric">Security scan rate: <strong>{{printf "%.0f%%" (pct .SecurityScanRate)}}</strong></p>
{{if .ByWorkflow}}
<table>
<tr><th>Workflow</th><th>Count</th></tr>
{{range .ByWorkflow}}<tr><td>{{.Workflow}}</td><td>{{.Count}}</td></tr>
{{end}}</table>
{{end}}
{{if .FirstRecordedAt}}<p class="muted">Recorded from {{.FirstRecordedAt}} to {{.LastRecordedAt}}.</p>{{end}}
</body>
</html>
`

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"pct": func(f float64) float64 { return f * 100 },
}).Parse(reportTemplate))

// WriteReport renders the stats as a standalone HTML page.
func WriteReport(w io.Writer, st *Stats) error {
	if err := reportTmpl.Execute(w, st); err != nil {
		return fmt.Errorf("history: render report: %w", err)
	}
	return nil
}
