// Package plotpage assembles go-echarts charts into a single HTML report page.
package plotpage

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/components"
)

// Page represents a complete visualization page.
type Page struct {
	Title string
	page  *components.Page
}

// NewPage creates an empty page with the given title.
func NewPage(title string) *Page {
	page := components.NewPage()
	page.SetLayout(components.PageCenterLayout)
	page.PageTitle = title

	return &Page{
		Title: title,
		page:  page,
	}
}

// Add appends charts to the page.
func (p *Page) Add(charts ...components.Charter) {
	p.page.AddCharts(charts...)
}

// Render writes the page as HTML.
func (p *Page) Render(w io.Writer) error {
	err := p.page.Render(w)
	if err != nil {
		return fmt.Errorf("render plot page: %w", err)
	}

	return nil
}
