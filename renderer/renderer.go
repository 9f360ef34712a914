package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
	"text/template"

	"github.com/etnz/returns"
	"github.com/etnz/returns/date"
)

//go:embed templates/*.md
var embedded embed.FS

var templates, _ = fs.Sub(embedded, "templates")

// ReportRenderOptions holds configuration for rendering a returns report.
type ReportRenderOptions struct {
	SkipCashflows bool // Do not render the cashflows section.
	SkipPeriods   bool // Do not render the holding periods section.
}

var funcs = template.FuncMap{
	"join":   strings.Join,
	"concat": slices.Concat[[]string, string],
	// cell escapes a string for a markdown table cell.
	"cell": func(s string) string { return strings.ReplaceAll(s, "|", `\|`) },
}

// RenderReport renders a returns report to a markdown string.
func RenderReport(r *returns.Report, opts ReportRenderOptions) string {
	partials := map[string]string{
		"report_title":     "report_title.md",
		"report_summary":   "report_summary.md",
		"report_cashflows": "report_cashflows.md",
		"report_periods":   "report_periods.md",
	}
	// An empty file name results in an empty template.
	if opts.SkipCashflows {
		partials["report_cashflows"] = ""
	}
	if opts.SkipPeriods {
		partials["report_periods"] = ""
	}
	return renderTemplate("report", "report.md", partials, r)
}

// RenderCashflows renders the cashflows of a returns report only.
func RenderCashflows(r *returns.Report) string {
	partials := map[string]string{
		"report_title":     "report_title.md",
		"report_cashflows": "report_cashflows.md",
	}
	return renderTemplate("cashflows", "cashflows.md", partials, r)
}

// RenderHoldings renders a valuation of the tracked accounts.
func RenderHoldings(h *returns.HoldingReport) string {
	return renderTemplate("holdings", "holdings.md", nil, h)
}

// RenderHorizons renders the returns over the trailing horizons ending on 'on'.
func RenderHorizons(on date.Date, currency string, horizons []returns.HorizonReturn) string {
	data := struct {
		Date     date.Date
		Currency string
		Horizons []returns.HorizonReturn
	}{on, currency, horizons}
	return renderTemplate("horizons", "horizons.md", nil, data)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		if file != "" {
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
