package reporting

import (
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"time"

	"e2e_automation/domain/entities"
)

// DefaultReportTitle matches the title the original template stamped on its
// HTML reports.
const DefaultReportTitle = "Playwright Test Report"

type reportData struct {
	Title       string
	GeneratedAt string
	Total       int
	Passed      int
	Failed      int
	Broken      int
	Skipped     int
	Rows        []reportRow
}

type reportRow struct {
	Name     string
	Status   entities.Status
	Duration string
	Message  string
	Steps    []entities.Step
	Markers  string
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; width: 100%; margin-top: 1em; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; vertical-align: top; }
th { background: #f5f5f5; }
.passed { color: #1a7f37; }
.failed { color: #cf222e; }
.broken { color: #bc4c00; }
.skipped { color: #57606a; }
.summary span { margin-right: 1.5em; }
ul.steps { margin: 0; padding-left: 1.2em; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="summary">
<span>Total: {{.Total}}</span>
<span class="passed">Passed: {{.Passed}}</span>
<span class="failed">Failed: {{.Failed}}</span>
<span class="broken">Broken: {{.Broken}}</span>
<span class="skipped">Skipped: {{.Skipped}}</span>
</p>
<p>Generated at {{.GeneratedAt}}</p>
<table>
<tr><th>Test</th><th>Status</th><th>Duration</th><th>Markers</th><th>Steps</th><th>Message</th></tr>
{{range .Rows}}<tr>
<td>{{.Name}}</td>
<td class="{{.Status}}">{{.Status}}</td>
<td>{{.Duration}}</td>
<td>{{.Markers}}</td>
<td>{{if .Steps}}<ul class="steps">{{range .Steps}}<li class="{{.Status}}">{{.Name}}</li>{{end}}</ul>{{end}}</td>
<td>{{.Message}}</td>
</tr>
{{end}}</table>
</body>
</html>
`))

// GenerateHTML reads the result files under resultsDir and writes a single
// index.html into reportDir.
func GenerateHTML(resultsDir, reportDir, title string) error {
	return generateHTMLAt(resultsDir, reportDir, title, time.Now())
}

func generateHTMLAt(resultsDir, reportDir, title string, generatedAt time.Time) error {
	if title == "" {
		title = DefaultReportTitle
	}

	results, err := ReadResults(resultsDir)
	if err != nil {
		return err
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Start != results[j].Start {
			return results[i].Start < results[j].Start
		}
		return results[i].Name < results[j].Name
	})

	data := reportData{
		Title:       title,
		GeneratedAt: generatedAt.UTC().Format(time.RFC3339),
	}
	for _, r := range results {
		data.Total++
		switch r.Status {
		case entities.StatusPassed:
			data.Passed++
		case entities.StatusFailed:
			data.Failed++
		case entities.StatusBroken:
			data.Broken++
		case entities.StatusSkipped:
			data.Skipped++
		}

		row := reportRow{
			Name:     r.Name,
			Status:   r.Status,
			Duration: (time.Duration(r.Stop-r.Start) * time.Millisecond).String(),
			Steps:    r.Steps,
		}
		if r.StatusDetails != nil {
			row.Message = r.StatusDetails.Message
		}
		for i, m := range r.Markers() {
			if i > 0 {
				row.Markers += ", "
			}
			row.Markers += string(m)
		}
		data.Rows = append(data.Rows, row)
	}

	if err := os.MkdirAll(reportDir, 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	f, err := os.Create(filepath.Join(reportDir, "index.html"))
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := reportTemplate.Execute(f, data); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

// ServeReport serves the generated report directory over local HTTP, standing
// in for `allure serve`. Blocks until the listener fails.
func ServeReport(reportDir, addr string) error {
	if _, err := os.Stat(filepath.Join(reportDir, "index.html")); err != nil {
		return fmt.Errorf("no report found in %s, generate it first: %w", reportDir, err)
	}
	return http.ListenAndServe(addr, http.FileServer(http.Dir(reportDir)))
}
