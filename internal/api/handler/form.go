package handler

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/vfg2006/ga4-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ga4-report-api/pkg/log"
)

const formPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>GA4 Month-on-Month Report</title>
<style>
  body { font-family: sans-serif; max-width: 40rem; margin: 3rem auto; color: #1f2937; }
  h1 { color: #1F4E78; }
  form { display: grid; gap: 1rem; margin-top: 1.5rem; }
  label { font-weight: bold; }
  button { background: #1F4E78; color: white; border: 0; padding: .6rem 1.2rem; cursor: pointer; }
  .months { color: #6b7280; font-size: .9rem; }
</style>
</head>
<body>
<h1>GA4 Month-on-Month Report</h1>
<p class="months">Reporting period: {{.FirstMonth}} &ndash; {{.LastMonth}} ({{.Count}} months, organic search)</p>
<form method="post" action="/v1/reports" enctype="multipart/form-data">
  <div>
    <label for="key_file">Service account key (JSON)</label><br>
    <input type="file" id="key_file" name="key_file" accept=".json" required>
  </div>
  <div>
    <label for="property_id">GA4 property ID</label><br>
    <input type="text" id="property_id" name="property_id" required>
  </div>
  <button type="submit">Generate report</button>
</form>
</body>
</html>
`

var formTemplate = template.Must(template.New("form").Parse(formPageHTML))

type formPageData struct {
	FirstMonth string
	LastMonth  string
	Count      int
}

// ReportForm serve a página única com o formulário de geração do relatório
func ReportForm(service reporting.ReportGenerator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		windows := service.Windows()
		data := formPageData{Count: len(windows)}
		if len(windows) > 0 {
			first := windows[0]
			last := windows[len(windows)-1]
			data.FirstMonth = fmt.Sprintf("%s %d", first.Label, first.Year)
			data.LastMonth = fmt.Sprintf("%s %d", last.Label, last.Year)
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := formTemplate.Execute(w, data); err != nil {
			logger.WithError(err).Error("reports: failed to render form page")
		}
	})
}
