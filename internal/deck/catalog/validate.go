package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/realty-decks/deck-backend/internal/deck/fields"
)

var ErrInvalidLayout = errors.New("invalid layout")

// Validate checks that every region of every slide fits the canvas, that
// region IDs are unique within a slide, that each kind carries the fields
// it needs, that templates bind fields without inline literals and that no
// two text boxes of a slide overlap.
func Validate(slides []SlideSpec) error {
	for _, s := range slides {
		seen := make(map[string]struct{}, len(s.Regions))
		for _, r := range s.Regions {
			if _, dup := seen[r.ID]; dup {
				return fmt.Errorf("%w: slide %q repeats region %q", ErrInvalidLayout, s.Name, r.ID)
			}
			seen[r.ID] = struct{}{}

			if err := checkRegion(r); err != nil {
				return fmt.Errorf("%w: slide %q region %q: %v", ErrInvalidLayout, s.Name, r.ID, err)
			}
			for _, tmpl := range Templates(r) {
				if err := fields.CheckTemplate(tmpl); err != nil {
					return fmt.Errorf("%w: slide %q region %q: %v", ErrInvalidLayout, s.Name, r.ID, err)
				}
			}
		}
		if err := checkOverlap(s); err != nil {
			return fmt.Errorf("%w: slide %q: %v", ErrInvalidLayout, s.Name, err)
		}
	}
	return nil
}

// Templates lists every template string a region renders.
func Templates(r Region) []string {
	var out []string
	if r.Text != "" {
		out = append(out, r.Text)
	}
	out = append(out, r.Items...)
	for _, row := range r.Rows {
		out = append(out, row...)
	}
	return out
}

type textBox struct {
	region Region
	rect   Rect
}

// textBoxes returns the boxes text is drawn into. Bars are left out: their
// row count comes from the figures, not the layout.
func textBoxes(r Region) []Rect {
	switch r.Kind {
	case KindText, KindImage:
		return []Rect{r.Rect}
	case KindList:
		n := len(r.Items)
		if r.Source != nil {
			n = r.Source.Max
		}
		return listCells(r, n)
	case KindTable:
		out := make([]Rect, len(r.Rows))
		for i := range r.Rows {
			out[i] = r.Rect.Offset(0, float64(i)*r.Step)
		}
		return out
	}
	return nil
}

func checkOverlap(s SlideSpec) error {
	var boxes []textBox
	for _, r := range s.Regions {
		for _, rect := range textBoxes(r) {
			boxes = append(boxes, textBox{region: r, rect: rect})
		}
	}
	for i := 0; i < len(boxes); i++ {
		for j := i + 1; j < len(boxes); j++ {
			a, b := boxes[i], boxes[j]
			if a.region.ID == b.region.ID || exclusive(a.region, b.region) {
				continue
			}
			if overlaps(a.rect, b.rect) {
				return fmt.Errorf("region %q overlaps %q", a.region.ID, b.region.ID)
			}
		}
	}
	return nil
}

// exclusive reports whether the two regions can never render together.
func exclusive(a, b Region) bool {
	for _, k := range a.When {
		if slices.Contains(b.Unless, k) {
			return true
		}
	}
	for _, k := range b.When {
		if slices.Contains(a.Unless, k) {
			return true
		}
	}
	return false
}

func overlaps(a, b Rect) bool {
	return a.X < b.Right()-epsilon && b.X < a.Right()-epsilon &&
		a.Y < b.Bottom()-epsilon && b.Y < a.Bottom()-epsilon
}

const epsilon = 1e-6

func inCanvas(r Rect) bool {
	return r.X >= 0 && r.Y >= 0 && r.W > 0 && r.H > 0 &&
		r.Right() <= CanvasWidth+epsilon && r.Bottom() <= CanvasHeight+epsilon
}

func checkRegion(r Region) error {
	if r.ID == "" {
		return errors.New("missing id")
	}
	if !inCanvas(r.Rect) {
		return fmt.Errorf("rect %+v outside canvas", r.Rect)
	}

	switch r.Kind {
	case KindText:
		if r.Text == "" && r.Figure == "" {
			return errors.New("text region without text")
		}
	case KindShape, KindImage:
	case KindList:
		n := len(r.Items)
		if r.Source != nil {
			n = r.Source.Max
		}
		if n == 0 {
			return errors.New("list without items")
		}
		for _, cell := range listCells(r, n) {
			if !inCanvas(cell) {
				return fmt.Errorf("list item %+v outside canvas", cell)
			}
		}
	case KindTable:
		if len(r.Columns) == 0 || len(r.Rows) == 0 {
			return errors.New("table without columns or rows")
		}
		for i, row := range r.Rows {
			if len(row) != len(r.Columns) {
				return fmt.Errorf("row %d has %d cells for %d columns", i, len(row), len(r.Columns))
			}
		}
		last := Rect{X: r.Rect.X, Y: r.Rect.Y + float64(len(r.Rows)-1)*r.Step, W: r.Rect.W, H: r.Rect.H}
		if !inCanvas(last) {
			return errors.New("last row outside canvas")
		}
	case KindChart:
		if r.Chart != ChartBar && r.Chart != ChartDoughnut {
			return fmt.Errorf("unknown chart %q", r.Chart)
		}
		if r.Figure == "" {
			return errors.New("chart without figure")
		}
	case KindBars:
		if len(r.Columns) != 3 {
			return errors.New("bars need label, amount and percent columns")
		}
		last := r.Rect.Offset(0, float64(maxProceedsRows-1)*r.Step+r.Rect.H)
		if !inCanvas(last) {
			return errors.New("last bar outside canvas")
		}
	default:
		return fmt.Errorf("unknown kind %q", r.Kind)
	}
	return nil
}

// ListCells returns the rectangle of each of n list items.
func ListCells(r Region, n int) []Rect {
	return listCells(r, n)
}

func listCells(r Region, n int) []Rect {
	per := r.PerRow
	if per < 1 {
		per = 1
	}
	out := make([]Rect, 0, n)
	for i := 0; i < n; i++ {
		row, col := i/per, i%per
		out = append(out, r.Rect.Offset(float64(col)*r.ColStep, float64(row)*r.Step))
	}
	return out
}
