// Package renderer turns inventory and spot price data into markdown
// reports. All rendering goes through text/template files embedded in
// this package, the Go side only assembles view structs.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// RenderReport renders the full report, spot prices, positions and the
// valuation history, to a markdown string.
func RenderReport(r *Report) string {
	partials := map[string]string{
		"report_title":     "report_title.md",
		"report_prices":    "prices.md",
		"report_inventory": "inventory.md",
		"report_history":   "history.md",
	}
	return renderTemplate("report", "report.md", partials, r)
}

// RenderPrices renders only the spot price section.
func RenderPrices(r *Report) string {
	return renderTemplate("prices", "prices.md", nil, r)
}

// RenderInventory renders only the positions table.
func RenderInventory(r *Report) string {
	return renderTemplate("inventory", "inventory.md", nil, r)
}

// RenderHistory renders only the valuation history table.
func RenderHistory(r *Report) string {
	return renderTemplate("history", "history.md", nil, r)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
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
