// Package assembler turns a brand and a project snapshot into a Deck by
// walking the layout catalog. Assembly is total: every input, including an
// empty one, yields a complete ten-slide deck.
package assembler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/realty-decks/deck-backend/internal/deck/catalog"
	"github.com/realty-decks/deck-backend/internal/deck/domain"
	"github.com/realty-decks/deck-backend/internal/deck/fields"
	"github.com/realty-decks/deck-backend/internal/deck/theme"
)

const (
	DefaultAuthor  = "Investor Deck Generator"
	DefaultSubject = "Real Estate Investment Opportunity"

	// dateLayout stamps the cover with the month and year of assembly.
	dateLayout = "January 2006"
)

type Options struct {
	// Figures overrides the illustrative chart data. Nil uses the defaults.
	Figures *catalog.Figures
	// Now pins the cover date. Zero means time.Now.
	Now time.Time
}

type assembly struct {
	brand   domain.BrandConfig
	theme   theme.Theme
	values  fields.Values
	figures catalog.Figures
}

// Assemble builds the deck. It holds no shared state and is safe to call
// concurrently.
func Assemble(brand domain.BrandConfig, data domain.ProjectData, opts Options) *Deck {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	figures := catalog.DefaultFigures()
	if opts.Figures != nil {
		figures = *opts.Figures
	}

	values := fields.NewValues(data, brand.CompanyName)
	values.Extra[fields.KeyGeneratedOn] = now.Format(dateLayout)

	a := &assembly{
		brand:   brand,
		theme:   theme.Resolve(brand),
		values:  values,
		figures: figures,
	}

	deck := &Deck{
		Title:   fields.Resolve(data, domain.FieldProjectName),
		Author:  orDefault(values.First(fields.KeyCompanyName), DefaultAuthor),
		Subject: DefaultSubject,
		Theme:   a.theme,
	}
	for i, spec := range catalog.Slides() {
		deck.Slides = append(deck.Slides, a.slide(i, spec))
	}
	return deck
}

func (a *assembly) slide(index int, spec catalog.SlideSpec) Slide {
	s := Slide{Index: index, Name: spec.Name, Master: spec.Master}
	switch spec.Master {
	case catalog.MasterTitle:
		s.Elements = a.titleMaster()
	case catalog.MasterContent:
		s.Elements = a.contentMaster(index, spec.Title)
	}
	for _, r := range spec.Regions {
		if !a.active(r) {
			continue
		}
		s.Elements = append(s.Elements, a.region(r)...)
	}
	return s
}

func (a *assembly) active(r catalog.Region) bool {
	if len(r.When) > 0 {
		matched := false
		for _, k := range r.When {
			if fields.Present(k, a.values) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	for _, k := range r.Unless {
		if fields.Present(k, a.values) {
			return false
		}
	}
	return true
}

var fullCanvas = catalog.Rect{X: 0, Y: 0, W: catalog.CanvasWidth, H: catalog.CanvasHeight}

func (a *assembly) box(id string, r catalog.Rect, fill theme.Role, transparency int) Element {
	return Element{
		RegionID:     id,
		Kind:         ElementShape,
		Rect:         r,
		Fill:         a.theme.Color(fill),
		Shape:        catalog.ShapeRect,
		Transparency: transparency,
	}
}

func (a *assembly) titleMaster() []Element {
	return []Element{
		a.box("master.background", fullCanvas, theme.Primary, 0),
		a.box("master.overlay", fullCanvas, theme.Dark, 85),
		a.box("master.band", catalog.Rect{X: 0, Y: 6.8, W: catalog.CanvasWidth, H: 0.7}, theme.Secondary, 0),
	}
}

func (a *assembly) contentMaster(index int, title string) []Element {
	els := []Element{
		a.box("master.background", fullCanvas, theme.Light, 0),
		a.box("master.header", catalog.Rect{X: 0, Y: 0, W: catalog.CanvasWidth, H: 1.0}, theme.Primary, 0),
		a.box("master.rule", catalog.Rect{X: 0, Y: 1.0, W: catalog.CanvasWidth, H: 0.05}, theme.Secondary, 0),
		a.box("master.footer", catalog.Rect{X: 0, Y: 7.1, W: catalog.CanvasWidth, H: 0.4}, theme.Dark, 0),
		{
			RegionID: "master.title",
			Kind:     ElementText,
			Rect:     catalog.Rect{X: 0.4, Y: 0.25, W: 8, H: 0.5},
			Text:     title,
			Font:     Font{Size: 24, Color: a.theme.White, Bold: true},
		},
	}

	if a.brand.HasLogo() {
		els = append(els, Element{
			RegionID: "master.logo",
			Kind:     ElementImage,
			Rect:     catalog.Rect{X: 11.5, Y: 0.2, W: 1.5, H: 0.6},
			Image:    a.brand.Logo,
		})
	} else if name := strings.TrimSpace(a.brand.CompanyName); name != "" {
		els = append(els, Element{
			RegionID: "master.company",
			Kind:     ElementText,
			Rect:     catalog.Rect{X: 8.8, Y: 0.3, W: 4.2, H: 0.4},
			Text:     name,
			Font:     Font{Size: 14, Color: a.theme.White, Bold: true},
			Align:    catalog.AlignRight,
		})
	}

	return append(els, Element{
		RegionID: "master.number",
		Kind:     ElementText,
		Rect:     catalog.Rect{X: 12.5, Y: 7.15, W: 0.6, H: 0.3},
		Text:     strconv.Itoa(index + 1),
		Font:     Font{Size: 10, Color: a.theme.White},
		Align:    catalog.AlignRight,
	})
}

func (a *assembly) font(s catalog.Style) Font {
	return Font{Size: s.Size, Color: a.theme.Color(s.Color), Bold: s.Bold, Italic: s.Italic}
}

func (a *assembly) text(r catalog.Region, rect catalog.Rect, text string) Element {
	return Element{
		RegionID:     r.ID,
		Kind:         ElementText,
		Rect:         rect,
		Text:         text,
		Font:         a.font(r.Style),
		Align:        r.Style.Align,
		Fill:         a.theme.Color(r.Style.Fill),
		Transparency: r.Style.Transparency,
	}
}

func (a *assembly) region(r catalog.Region) []Element {
	switch r.Kind {
	case catalog.KindText:
		if r.Figure == catalog.FigureAssumptions {
			return a.assumptions(r)
		}
		return []Element{a.text(r, r.Rect, fields.Expand(r.Text, a.values))}
	case catalog.KindShape:
		return []Element{{
			RegionID:     r.ID,
			Kind:         ElementShape,
			Rect:         r.Rect,
			Fill:         a.theme.Color(r.Style.Fill),
			Shape:        r.Style.Shape,
			Transparency: r.Style.Transparency,
		}}
	case catalog.KindImage:
		return a.logo(r)
	case catalog.KindList:
		return a.list(r)
	case catalog.KindTable:
		return []Element{a.table(r, r.Rect, r.Rows)}
	case catalog.KindChart:
		return a.chart(r)
	case catalog.KindBars:
		return a.bars(r)
	}
	return nil
}

// logo places the brand logo, or the company name when no logo is set.
func (a *assembly) logo(r catalog.Region) []Element {
	if a.brand.HasLogo() {
		return []Element{{RegionID: r.ID, Kind: ElementImage, Rect: r.Rect, Image: a.brand.Logo}}
	}
	name := strings.TrimSpace(a.brand.CompanyName)
	if name == "" {
		return nil
	}
	return []Element{a.text(r, r.Rect, name)}
}

func (a *assembly) listItems(r catalog.Region) []string {
	if src := r.Source; src != nil {
		f, ok := domain.LookupField(src.Field)
		if !ok {
			return nil
		}
		items := fields.SplitList(a.values.Data.Get(f), src.Max)
		if len(items) == 0 {
			items = fields.SplitList(fields.Fallback(f), src.Max)
		}
		return items
	}
	items := make([]string, len(r.Items))
	for i, tmpl := range r.Items {
		items[i] = fields.Expand(tmpl, a.values)
	}
	return items
}

func (a *assembly) list(r catalog.Region) []Element {
	items := a.listItems(r)
	cells := catalog.ListCells(r, len(items))
	out := make([]Element, len(items))
	for i, item := range items {
		out[i] = a.text(r, cells[i], r.Prefix+item)
	}
	return out
}

func (a *assembly) table(r catalog.Region, rect catalog.Rect, rows [][]string) Element {
	t := &Table{Step: r.Step}
	for _, c := range r.Columns {
		t.Columns = append(t.Columns, TableColumn{X: c.X, W: c.W, Font: a.font(c.Style), Align: c.Style.Align})
	}
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, tmpl := range row {
			cells[i] = fields.Expand(tmpl, a.values)
		}
		t.Rows = append(t.Rows, cells)
	}
	return Element{RegionID: r.ID, Kind: ElementTable, Rect: rect, Table: t}
}

func (a *assembly) assumptions(r catalog.Region) []Element {
	if len(a.figures.Assumptions) == 0 {
		return nil
	}
	lines := make([]string, len(a.figures.Assumptions))
	for i, s := range a.figures.Assumptions {
		lines[i] = "• " + fields.Expand(s, a.values)
	}
	return []Element{a.text(r, r.Rect, strings.Join(lines, "\n"))}
}

func (a *assembly) chart(r catalog.Region) []Element {
	var series catalog.Series
	var palette []string
	switch r.Figure {
	case catalog.FigureNOI:
		series = a.figures.NOI
		palette = []string{a.theme.Primary}
	case catalog.FigureCapitalStack:
		series = a.figures.CapitalStack
		palette = []string{a.theme.Primary, a.theme.Secondary, a.theme.Accent}
	default:
		return nil
	}
	return []Element{{
		RegionID: r.ID,
		Kind:     ElementChart,
		Rect:     r.Rect,
		Font:     a.font(r.Style),
		Chart: &Chart{
			Kind:       r.Chart,
			Title:      r.ChartTitle,
			SeriesName: series.Name,
			Labels:     append([]string(nil), series.Labels...),
			Values:     append([]float64(nil), series.Values...),
			Colors:     palette,
		},
	}}
}

// bars lays out the use-of-proceeds rows as a label/amount/percent table
// with a horizontal bar under each row sized by its percentage.
func (a *assembly) bars(r catalog.Region) []Element {
	rows := make([][]string, 0, len(a.figures.Proceeds))
	var out []Element
	for i, p := range a.figures.Proceeds {
		rows = append(rows, []string{p.Category, p.Amount, formatPercent(p.Percent)})
		w := r.Rect.W * p.Percent / 100
		if w <= 0 {
			continue
		}
		out = append(out, Element{
			RegionID: fmt.Sprintf("%s.bar%d", r.ID, i+1),
			Kind:     ElementShape,
			Rect:     catalog.Rect{X: r.Rect.X, Y: r.Rect.Y + float64(i)*r.Step + r.Rect.H, W: w, H: r.Rect.H * 0.6},
			Fill:     a.theme.Color(r.Style.Fill),
			Shape:    r.Style.Shape,
		})
	}
	if len(rows) == 0 {
		return nil
	}
	tableRect := r.Rect
	tableRect.W = r.Columns[len(r.Columns)-1].X + r.Columns[len(r.Columns)-1].W - r.Rect.X
	return append([]Element{a.table(r, tableRect, rows)}, out...)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}
