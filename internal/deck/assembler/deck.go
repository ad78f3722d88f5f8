package assembler

import (
	"github.com/realty-decks/deck-backend/internal/deck/catalog"
	"github.com/realty-decks/deck-backend/internal/deck/theme"
)

// Deck is the fully resolved, renderer-independent presentation.
type Deck struct {
	Title   string      `json:"title"`
	Author  string      `json:"author"`
	Subject string      `json:"subject"`
	Theme   theme.Theme `json:"theme"`
	Slides  []Slide     `json:"slides"`
}

type Slide struct {
	Index    int            `json:"index"`
	Name     string         `json:"name"`
	Master   catalog.Master `json:"master"`
	Elements []Element      `json:"elements"`
}

type ElementKind string

const (
	ElementText  ElementKind = "text"
	ElementShape ElementKind = "shape"
	ElementImage ElementKind = "image"
	ElementChart ElementKind = "chart"
	ElementTable ElementKind = "table"
)

// Font colors are concrete hex values.
type Font struct {
	Size   int    `json:"size,omitempty"`
	Color  string `json:"color,omitempty"`
	Bold   bool   `json:"bold,omitempty"`
	Italic bool   `json:"italic,omitempty"`
}

// Element is one positioned primitive. Only the fields relevant to Kind are set.
type Element struct {
	RegionID     string            `json:"regionId"`
	Kind         ElementKind       `json:"kind"`
	Rect         catalog.Rect      `json:"rect"`
	Text         string            `json:"text,omitempty"`
	Font         Font              `json:"font,omitzero"`
	Align        catalog.Align     `json:"align,omitempty"`
	Fill         string            `json:"fill,omitempty"`
	Shape        catalog.ShapeKind `json:"shape,omitempty"`
	Transparency int               `json:"transparency,omitempty"`
	// Image holds the brand logo as supplied; decoding happens at render time.
	Image string `json:"-"`
	Chart *Chart `json:"chart,omitempty"`
	Table *Table `json:"table,omitempty"`
}

type Chart struct {
	Kind       catalog.ChartKind `json:"kind"`
	Title      string            `json:"title"`
	SeriesName string            `json:"seriesName"`
	Labels     []string          `json:"labels"`
	Values     []float64         `json:"values"`
	// Colors cycle over data points.
	Colors []string `json:"colors"`
}

// Table rows start at the element's Rect.Y and are Step apart; each row is
// Rect.H tall.
type Table struct {
	Columns []TableColumn `json:"columns"`
	Rows    [][]string    `json:"rows"`
	Step    float64       `json:"step"`
}

type TableColumn struct {
	X     float64       `json:"x"`
	W     float64       `json:"w"`
	Font  Font          `json:"font"`
	Align catalog.Align `json:"align,omitempty"`
}

// Find returns the first element produced by regionID.
func (s Slide) Find(regionID string) (Element, bool) {
	for _, e := range s.Elements {
		if e.RegionID == regionID {
			return e, true
		}
	}
	return Element{}, false
}

// Texts returns the text of every element produced by regionID, in order.
func (s Slide) Texts(regionID string) []string {
	var out []string
	for _, e := range s.Elements {
		if e.RegionID == regionID && e.Kind == ElementText {
			out = append(out, e.Text)
		}
	}
	return out
}

// Cell returns the value next to label in the first column of a table.
func (t *Table) Cell(label string, col int) (string, bool) {
	if t == nil {
		return "", false
	}
	for _, row := range t.Rows {
		if len(row) > col && row[0] == label {
			return row[col], true
		}
	}
	return "", false
}
