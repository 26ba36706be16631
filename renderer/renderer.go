// Package renderer renders the silver datasets and query results as markdown.
package renderer

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/silver"
	md "github.com/nao1215/markdown"
)

//go:embed templates/*.md
var templates embed.FS

// funcs exposes the table builders to the templates.
var funcs = template.FuncMap{
	"table":            tableString,
	"salesTable":       func(s []silver.SalesRecord) md.TableSet { return salesTable(s, false) },
	"rankTable":        func(s []silver.SalesRecord) md.TableSet { return salesTable(s, true) },
	"pricesTable":      pricesTable,
	"monthTable":       monthTable,
	"calculationTable": calculationTable,
	"seriesSummary":    seriesSummary,
	"total":            func(s []silver.SalesRecord) string { return silver.Total(s, silver.ByPurchased).String() },
}

// RenderDashboard renders the whole dashboard: calculator, price history, state
// purchases, top ranking and the month series.
func RenderDashboard(d *Dashboard) string {
	partials := map[string]string{
		"dashboard_calculator": "dashboard_calculator.md",
		"dashboard_history":    "dashboard_history.md",
		"dashboard_sales":      "dashboard_sales.md",
		"dashboard_month":      "dashboard_month.md",
	}
	if d.Calculation == nil {
		partials["dashboard_calculator"] = ""
	}
	return renderTemplate("dashboard", "dashboard.md", partials, d)
}

// tableString renders a single table.
func tableString(t md.TableSet) string {
	var buf bytes.Buffer
	return strings.TrimRight(md.NewMarkdown(&buf).Table(t).String(), "\n")
}

// renderTemplate renders a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name results in an empty section.
		if file != "" {
			content, err = fs.ReadFile(templates, "templates/"+file)
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
