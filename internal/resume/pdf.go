package resume

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"go-lever-e2e/internal/models"

	"github.com/playwright-community/playwright-go"
)

//go:embed template.html
var defaultTemplate string

// Generator renders resume profiles to PDF through a browser page.
type Generator struct {
	tmpl *template.Template
}

// NewGenerator parses the built-in resume layout.
func NewGenerator() (*Generator, error) {
	funcMap := template.FuncMap{
		"join": strings.Join,
	}
	tmpl, err := template.New("resume").Funcs(funcMap).Parse(defaultTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	return &Generator{tmpl: tmpl}, nil
}

// HTML executes the layout for p.
func (g *Generator) HTML(p models.ResumeProfile) (string, error) {
	var buf bytes.Buffer
	if err := g.tmpl.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// RenderPDF prints the resume on a new page of bctx. Only Chromium can print.
func (g *Generator) RenderPDF(bctx playwright.BrowserContext, p models.ResumeProfile) ([]byte, error) {
	htmlContent, err := g.HTML(p)
	if err != nil {
		return nil, err
	}

	page, err := bctx.NewPage()
	if err != nil {
		return nil, fmt.Errorf("could not create new page: %w", err)
	}
	defer page.Close()

	if err := page.SetContent(htmlContent, playwright.PageSetContentOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
	}); err != nil {
		return nil, fmt.Errorf("could not set page content: %w", err)
	}

	pdfBytes, err := page.PDF(playwright.PagePdfOptions{
		Format:          playwright.String("Letter"),
		PrintBackground: playwright.Bool(true),
		Margin: &playwright.Margin{
			Top:    playwright.String("0.5in"),
			Bottom: playwright.String("0.5in"),
			Left:   playwright.String("0.5in"),
			Right:  playwright.String("0.5in"),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("could not generate PDF: %w", err)
	}
	return pdfBytes, nil
}
