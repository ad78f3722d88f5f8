package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlides_OrderAndMasters(t *testing.T) {
	slides := Slides()
	require.Len(t, slides, 10)

	names := make([]string, len(slides))
	for i, s := range slides {
		names[i] = s.Name
	}
	assert.Equal(t, []string{
		"Cover", "Executive Summary", "Opportunity", "Market Analysis", "Development Plan",
		"Team", "Financials", "Deal Structure", "Use of Funds", "Exit",
	}, names)

	assert.Equal(t, MasterTitle, slides[0].Master)
	for _, s := range slides[1:] {
		assert.Equal(t, MasterContent, s.Master, s.Name)
		assert.NotEmpty(t, s.Title, s.Name)
	}
}

func TestSlides_Validate(t *testing.T) {
	require.NoError(t, Validate(Slides()))
}

func TestSlides_ReturnsFreshCopy(t *testing.T) {
	a := Slides()
	a[0].Regions[0].Text = "mutated"
	assert.NotEqual(t, "mutated", Slides()[0].Regions[0].Text)
}

func TestValidate_RejectsBadLayouts(t *testing.T) {
	tests := []struct {
		name   string
		region Region
	}{
		{"outside canvas", Region{ID: "a", Kind: KindText, Rect: Rect{12, 1, 2, 1}, Text: "x"}},
		{"zero height", Region{ID: "a", Kind: KindShape, Rect: Rect{1, 1, 1, 0}}},
		{"empty text", Region{ID: "a", Kind: KindText, Rect: Rect{1, 1, 1, 1}}},
		{"ragged table", Region{ID: "a", Kind: KindTable, Rect: Rect{1, 1, 1, 1},
			Columns: []Column{{X: 1, W: 1}}, Rows: [][]string{{"a", "b"}}}},
		{"list overflows", Region{ID: "a", Kind: KindList, Rect: Rect{1, 6, 1, 0.5}, Step: 1,
			Items: []string{"a", "b", "c"}}},
		{"unknown kind", Region{ID: "a", Kind: "video", Rect: Rect{1, 1, 1, 1}}},
		{"field with inline literal", Region{ID: "a", Kind: KindText, Rect: Rect{1, 1, 1, 1}, Text: "{projectedIRR|18%}"}},
		{"literal in table cell", Region{ID: "a", Kind: KindTable, Rect: Rect{1, 1, 2, 0.5},
			Columns: []Column{{X: 1, W: 1}, {X: 2, W: 1}}, Rows: [][]string{{"IRR", "{projectedIRR|TBD}"}}}},
		{"empty placeholder", Region{ID: "a", Kind: KindList, Rect: Rect{1, 1, 1, 0.5}, Step: 0.5,
			Items: []string{"{}"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]SlideSpec{{Name: "s", Regions: []Region{tt.region}}})
			assert.True(t, errors.Is(err, ErrInvalidLayout), "got %v", err)
		})
	}
}

func TestValidate_DuplicateRegion(t *testing.T) {
	r := Region{ID: "dup", Kind: KindShape, Rect: Rect{1, 1, 1, 1}}
	err := Validate([]SlideSpec{{Name: "s", Regions: []Region{r, r}}})
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestValidate_TextOverlap(t *testing.T) {
	title := Region{ID: "title", Kind: KindText, Rect: Rect{1, 1, 4, 1}, Text: "Title"}

	tests := []struct {
		name    string
		other   Region
		wantErr bool
	}{
		{"overlapping text", Region{ID: "sub", Kind: KindText, Rect: Rect{3, 1.5, 4, 1}, Text: "Sub"}, true},
		{"list item reaches into text", Region{ID: "list", Kind: KindList, Rect: Rect{1, 0, 4, 0.5}, Step: 0.6,
			Items: []string{"a", "b"}}, true},
		{"table row reaches into text", Region{ID: "table", Kind: KindTable, Rect: Rect{1, 1.8, 4, 0.4}, Step: 0.5,
			Columns: []Column{{X: 1, W: 4}}, Rows: [][]string{{"a"}, {"b"}}}, true},
		{"touching edges", Region{ID: "below", Kind: KindText, Rect: Rect{1, 2, 4, 1}, Text: "Below"}, false},
		{"shape behind text", Region{ID: "box", Kind: KindShape, Rect: Rect{0.5, 0.5, 5, 2}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]SlideSpec{{Name: "s", Regions: []Region{title, tt.other}}})
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidLayout)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidate_ExclusiveRegionsMayShareSpace(t *testing.T) {
	a := Region{ID: "a", Kind: KindText, Rect: Rect{1, 1, 4, 1}, Text: "{companyName}", When: []string{"companyName"}}
	b := Region{ID: "b", Kind: KindText, Rect: Rect{1, 1, 4, 1}, Text: "{sponsorName}", Unless: []string{"companyName"}}
	assert.NoError(t, Validate([]SlideSpec{{Name: "s", Regions: []Region{a, b}}}))

	b.Unless = nil
	assert.ErrorIs(t, Validate([]SlideSpec{{Name: "s", Regions: []Region{a, b}}}), ErrInvalidLayout)
}

func TestListCells_Grid(t *testing.T) {
	r := Region{Rect: Rect{1, 2, 3, 0.5}, Step: 0.4, PerRow: 2, ColStep: 6}
	cells := ListCells(r, 3)
	require.Len(t, cells, 3)
	assert.Equal(t, Rect{1, 2, 3, 0.5}, cells[0])
	assert.Equal(t, Rect{7, 2, 3, 0.5}, cells[1])
	assert.InDelta(t, 2.4, cells[2].Y, 1e-9)
	assert.Equal(t, 1.0, cells[2].X)
}

func TestDefaultFigures_Valid(t *testing.T) {
	f := DefaultFigures()
	require.NoError(t, f.Validate())
	assert.Equal(t, []float64{200, 450, 650, 750, 800}, f.NOI.Values)
	assert.Len(t, f.Proceeds, 6)
}

func TestParseFigures_KeepsMissingSections(t *testing.T) {
	f, err := ParseFigures([]byte(`
noi:
  name: NOI
  labels: [Y1, Y2]
  values: [10, 20]
assumptions:
  - flat rents
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Y1", "Y2"}, f.NOI.Labels)
	assert.Equal(t, []string{"flat rents"}, f.Assumptions)
	assert.Equal(t, DefaultFigures().CapitalStack, f.CapitalStack)
	assert.Equal(t, DefaultFigures().Proceeds, f.Proceeds)
}

func TestParseFigures_Invalid(t *testing.T) {
	_, err := ParseFigures([]byte(`
capital_stack:
  labels: [A, B]
  values: [1]
`))
	assert.ErrorIs(t, err, ErrInvalidFigures)

	_, err = ParseFigures([]byte(`
proceeds:
  - {category: Land, amount: $1M, percent: 140}
`))
	assert.ErrorIs(t, err, ErrInvalidFigures)

	_, err = ParseFigures([]byte(`
proceeds:
  - {category: Land, amount: "{purchasePrice|$1M}", percent: 14}
`))
	assert.ErrorIs(t, err, ErrInvalidFigures)

	_, err = ParseFigures([]byte(`
assumptions:
  - "{holdPeriod|5 years} hold"
`))
	assert.ErrorIs(t, err, ErrInvalidFigures)

	_, err = ParseFigures([]byte("noi: [unterminated"))
	assert.Error(t, err)
}

func TestLoadFigures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "figures.yaml")
	require.NoError(t, os.WriteFile(path, []byte("assumptions: [a, b]\n"), 0o600))

	f, err := LoadFigures(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, f.Assumptions)

	_, err = LoadFigures(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
