package assembler

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realty-decks/deck-backend/internal/deck/catalog"
	"github.com/realty-decks/deck-backend/internal/deck/domain"
	"github.com/realty-decks/deck-backend/internal/deck/fields"
)

var fixedNow = time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)

func assemble(brand domain.BrandConfig, data domain.ProjectData) *Deck {
	return Assemble(brand, data, Options{Now: fixedNow})
}

func slideNamed(t *testing.T, d *Deck, name string) Slide {
	t.Helper()
	for _, s := range d.Slides {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("slide %q not found", name)
	return Slide{}
}

func tableOf(t *testing.T, s Slide, regionID string) *Table {
	t.Helper()
	e, ok := s.Find(regionID)
	require.True(t, ok, "region %s", regionID)
	require.NotNil(t, e.Table)
	return e.Table
}

func TestAssemble_EmptyInput(t *testing.T) {
	d := assemble(domain.BrandConfig{}, domain.ProjectData{})

	require.Len(t, d.Slides, 10)
	for i, s := range d.Slides {
		assert.Equal(t, i, s.Index)
	}
	assert.Equal(t, "Investment Opportunity", d.Title)
	assert.Equal(t, "Investor Deck Generator", d.Author)
	assert.Equal(t, "Real Estate Investment Opportunity", d.Subject)

	cover := slideNamed(t, d, "Cover")
	assert.Equal(t, []string{"Investment Opportunity"}, cover.Texts("cover.title"))
	assert.Equal(t, []string{"March 2025"}, cover.Texts("cover.date"))
	_, hasBadge := cover.Find("cover.badge")
	assert.False(t, hasBadge, "badge needs facilityType or bedCount")
	_, hasLogo := cover.Find("cover.logo")
	assert.False(t, hasLogo, "no logo and no company name")

	raise, ok := tableOf(t, slideNamed(t, d, "Executive Summary"), "summary.metrics").Cell("Total Raise", 1)
	require.True(t, ok)
	assert.Equal(t, "$1.5M", raise)
}

func TestAssemble_NoEmptyText(t *testing.T) {
	d := assemble(domain.BrandConfig{}, domain.ProjectData{})
	for _, s := range d.Slides {
		for _, e := range s.Elements {
			switch e.Kind {
			case ElementText:
				assert.NotEmpty(t, strings.TrimSpace(e.Text), "%s/%s", s.Name, e.RegionID)
				assert.NotContains(t, e.Text, "{", "%s/%s", s.Name, e.RegionID)
			case ElementTable:
				for _, row := range e.Table.Rows {
					for _, cell := range row {
						assert.NotEmpty(t, cell, "%s/%s", s.Name, e.RegionID)
						assert.NotContains(t, cell, "{", "%s/%s", s.Name, e.RegionID)
					}
				}
			}
		}
	}
}

func TestAssemble_PartialInput(t *testing.T) {
	d := assemble(domain.BrandConfig{}, domain.ProjectData{ProjectName: "Sunrise Gardens", BedCount: "72"})

	assert.Equal(t, "Sunrise Gardens", d.Title)
	cover := slideNamed(t, d, "Cover")
	assert.Equal(t, []string{"Sunrise Gardens"}, cover.Texts("cover.title"))
	assert.Equal(t, []string{"Skilled Nursing Facility | 72 Licensed Beds"}, cover.Texts("cover.badge"))

	opp := slideNamed(t, d, "Opportunity")
	beds, ok := tableOf(t, opp, "opportunity.development").Cell("Licensed Beds:", 1)
	require.True(t, ok)
	assert.Equal(t, "72", beds)
	addr, _ := tableOf(t, opp, "opportunity.property").Cell("Address:", 1)
	assert.Equal(t, "Southern California", addr)
}

func TestAssemble_CompanyNameFallbacks(t *testing.T) {
	brand := domain.BrandConfig{CompanyName: "Acme Capital"}
	d := assemble(brand, domain.ProjectData{})

	assert.Equal(t, "Investment Opportunity", d.Title, "document title never reads the company name")
	assert.Equal(t, "Acme Capital", d.Author)

	cover := slideNamed(t, d, "Cover")
	assert.Equal(t, []string{"Acme Capital"}, cover.Texts("cover.logo"))
	assert.Equal(t, []string{"Acme Capital"}, cover.Texts("cover.title"))

	summary := slideNamed(t, d, "Executive Summary")
	assert.Equal(t, []string{"Acme Capital"}, summary.Texts("master.company"))

	exit := slideNamed(t, d, "Exit")
	assert.Equal(t, []string{"Contact: Acme Capital | Acme Capital"}, exit.Texts("exit.contact"))
	assert.Empty(t, exit.Texts("exit.contact.sponsor"))
}

func TestAssemble_LogoReplacesCompanyName(t *testing.T) {
	brand := domain.BrandConfig{CompanyName: "Acme", Logo: "data:image/png;base64,AAAA"}
	d := assemble(brand, domain.ProjectData{})

	cover := slideNamed(t, d, "Cover")
	logo, ok := cover.Find("cover.logo")
	require.True(t, ok)
	assert.Equal(t, ElementImage, logo.Kind)
	assert.Equal(t, brand.Logo, logo.Image)

	summary := slideNamed(t, d, "Executive Summary")
	_, ok = summary.Find("master.logo")
	assert.True(t, ok)
	_, ok = summary.Find("master.company")
	assert.False(t, ok)
}

func TestAssemble_WaterfallInterpolation(t *testing.T) {
	d := assemble(domain.BrandConfig{}, domain.ProjectData{PreferredReturn: "7%"})
	tiers := tableOf(t, slideNamed(t, d, "Deal Structure"), "deal.waterfall")

	require.Len(t, tiers.Rows, 4)
	assert.Contains(t, tiers.Rows[1][1], "7%")
	assert.Equal(t, "Up to 12% IRR", tiers.Rows[2][1])
	assert.Equal(t, "Above 12% IRR", tiers.Rows[3][1])
	assert.Equal(t, []string{"4", "Above 12% IRR", "70%", "30%"}, tiers.Rows[3])
}

func TestAssemble_DemandDriversTruncated(t *testing.T) {
	data := domain.ProjectData{
		DemandDrivers: "Aging population,  Hospital partnerships ,Limited supply, High acuity, Extra item",
	}
	d := assemble(domain.BrandConfig{}, data)

	got := slideNamed(t, d, "Market Analysis").Texts("market.drivers")
	assert.Equal(t, []string{
		"• Aging population",
		"• Hospital partnerships",
		"• Limited supply",
		"• High acuity",
	}, got)
}

func TestAssemble_DemandDriversDefault(t *testing.T) {
	d := assemble(domain.BrandConfig{}, domain.ProjectData{DemandDrivers: " , "})
	got := slideNamed(t, d, "Market Analysis").Texts("market.drivers")
	assert.Len(t, got, 4)
	assert.Equal(t, "• Hospital discharge partnerships", got[0])
}

func TestAssemble_UnrelatedFieldsIgnored(t *testing.T) {
	base := domain.ProjectData{ProjectName: "Sunrise Gardens"}
	withExtra := base
	withExtra.Population85Plus = "40,000"
	withExtra.LicenseType = "SNF"
	withExtra.EquityStructure = "90/10"

	fromMap := domain.FromMap(map[string]string{"projectName": "Sunrise Gardens", "favoriteColor": "blue"})

	want := assemble(domain.BrandConfig{}, base)
	assert.Empty(t, cmp.Diff(want, assemble(domain.BrandConfig{}, withExtra)))
	assert.Empty(t, cmp.Diff(want, assemble(domain.BrandConfig{}, fromMap)))
}

func TestAssemble_Idempotent(t *testing.T) {
	brand := domain.BrandConfig{CompanyName: "Acme", PrimaryColor: "#112233"}
	data := domain.ProjectData{ProjectName: "Harbor View", TotalRaise: "$3M", HoldPeriod: "7 years"}

	first := assemble(brand, data)
	second := assemble(brand, data)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("assembly not deterministic (-first +second):\n%s", diff)
	}
}

func TestAssemble_Concurrent(t *testing.T) {
	want := assemble(domain.BrandConfig{}, domain.ProjectData{BedCount: "90"})

	var wg sync.WaitGroup
	results := make([]*Deck, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = assemble(domain.BrandConfig{}, domain.ProjectData{BedCount: "90"})
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Empty(t, cmp.Diff(want, got))
	}
}

func TestAssemble_ThemeColorsApplied(t *testing.T) {
	d := assemble(domain.BrandConfig{PrimaryColor: "#123456"}, domain.ProjectData{})
	assert.Equal(t, "123456", d.Theme.Primary)

	bg, ok := d.Slides[0].Find("master.background")
	require.True(t, ok)
	assert.Equal(t, "123456", bg.Fill)

	overlay, _ := d.Slides[0].Find("master.overlay")
	assert.Equal(t, 85, overlay.Transparency)
}

func TestAssemble_Figures(t *testing.T) {
	d := assemble(domain.BrandConfig{}, domain.ProjectData{PurchasePrice: "$2.0M"})

	noi, ok := slideNamed(t, d, "Financials").Find("financials.noi")
	require.True(t, ok)
	require.NotNil(t, noi.Chart)
	assert.Equal(t, catalog.ChartBar, noi.Chart.Kind)
	assert.Equal(t, []float64{200, 450, 650, 750, 800}, noi.Chart.Values)

	funds := slideNamed(t, d, "Use of Funds")
	stack, _ := funds.Find("funds.capitalStack")
	assert.Equal(t, []float64{60, 10, 30}, stack.Chart.Values)
	assert.Len(t, stack.Chart.Colors, 3)

	proceeds := tableOf(t, funds, "funds.proceeds")
	require.Len(t, proceeds.Rows, 6)
	assert.Equal(t, []string{"Land Acquisition", "$2.0M", "14%"}, proceeds.Rows[0])
	assert.Equal(t, []string{"Hard Construction Costs", "$5.5M", "65%"}, proceeds.Rows[1])

	bar, ok := funds.Find("funds.proceeds.bar2")
	require.True(t, ok)
	assert.InDelta(t, 4.5*0.65, bar.Rect.W, 1e-9)

	assumptions := slideNamed(t, d, "Financials").Texts("financials.assumptions")
	require.Len(t, assumptions, 1)
	assert.True(t, strings.HasPrefix(assumptions[0], "• 24-month stabilization period\n"))
}

func TestAssemble_CustomFigures(t *testing.T) {
	figures := catalog.DefaultFigures()
	figures.NOI.Values = []float64{1, 2, 3, 4, 5}
	figures.Assumptions = nil

	d := Assemble(domain.BrandConfig{}, domain.ProjectData{}, Options{Now: fixedNow, Figures: &figures})
	fin := slideNamed(t, d, "Financials")
	noi, _ := fin.Find("financials.noi")
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, noi.Chart.Values)
	assert.Empty(t, fin.Texts("financials.assumptions"))
}

func TestAssemble_ElementsInsideCanvas(t *testing.T) {
	d := assemble(domain.BrandConfig{CompanyName: "Acme"}, domain.ProjectData{
		FacilityType:           "Skilled Nursing",
		ConstructionCostPerBed: "$110K",
		ManagementTeam:         "Jane Doe",
	})
	for _, s := range d.Slides {
		for _, e := range s.Elements {
			assert.LessOrEqual(t, e.Rect.Right(), catalog.CanvasWidth+1e-6, "%s/%s", s.Name, e.RegionID)
			assert.LessOrEqual(t, e.Rect.Bottom(), catalog.CanvasHeight+1e-6, "%s/%s", s.Name, e.RegionID)
		}
	}
}

// withFallbacks substitutes every placeholder in tmpl with the fallback of
// its first field. ok is false when a placeholder leads with a non-field key.
func withFallbacks(tmpl string) (string, bool) {
	out := tmpl
	for _, keys := range fields.Placeholders(tmpl) {
		f, isField := domain.LookupField(keys[0])
		if !isField {
			return "", false
		}
		out = strings.Replace(out, "{"+strings.Join(keys, "|")+"}", fields.Fallback(f), 1)
	}
	return out, true
}

func TestAssemble_EmptyInputRendersFallbackTable(t *testing.T) {
	d := assemble(domain.BrandConfig{}, domain.ProjectData{})

	checked := 0
	for i, spec := range catalog.Slides() {
		s := d.Slides[i]
		for _, r := range spec.Regions {
			if len(r.When) > 0 {
				continue
			}
			switch {
			case r.Kind == catalog.KindText && r.Figure == "":
				want, ok := withFallbacks(r.Text)
				if !ok || len(fields.Placeholders(r.Text)) == 0 {
					continue
				}
				assert.Equal(t, []string{want}, s.Texts(r.ID), "%s/%s", s.Name, r.ID)
				checked++
			case r.Kind == catalog.KindList && r.Source != nil:
				f, ok := domain.LookupField(r.Source.Field)
				require.True(t, ok, r.ID)
				got := s.Texts(r.ID)
				want := fields.SplitList(fields.Fallback(f), r.Source.Max)
				require.Len(t, got, len(want), r.ID)
				for j := range want {
					assert.Equal(t, r.Prefix+want[j], got[j], "%s/%s[%d]", s.Name, r.ID, j)
				}
				checked++
			case r.Kind == catalog.KindList:
				got := s.Texts(r.ID)
				require.Len(t, got, len(r.Items), r.ID)
				for j, tmpl := range r.Items {
					if want, ok := withFallbacks(tmpl); ok {
						assert.Equal(t, r.Prefix+want, got[j], "%s/%s[%d]", s.Name, r.ID, j)
						checked++
					}
				}
			case r.Kind == catalog.KindTable:
				tbl := tableOf(t, s, r.ID)
				require.Len(t, tbl.Rows, len(r.Rows), r.ID)
				for j, row := range r.Rows {
					for k, tmpl := range row {
						if want, ok := withFallbacks(tmpl); ok {
							assert.Equal(t, want, tbl.Rows[j][k], "%s/%s[%d][%d]", s.Name, r.ID, j, k)
							checked++
						}
					}
				}
			}
		}
	}
	assert.Greater(t, checked, 50)
}

func TestAssemble_SameFieldRendersSameEverywhere(t *testing.T) {
	d := assemble(domain.BrandConfig{}, domain.ProjectData{})

	summary := slideNamed(t, d, "Executive Summary")
	opp := slideNamed(t, d, "Opportunity")
	fin := slideNamed(t, d, "Financials")
	dev := slideNamed(t, d, "Development Plan")

	irr := fields.Fallback(domain.FieldProjectedIRR)
	assert.Equal(t, "18%", irr)
	cell, _ := tableOf(t, summary, "summary.metrics").Cell("Projected IRR", 1)
	assert.Equal(t, irr, cell)
	assert.Equal(t, []string{irr}, fin.Texts("financials.return1.value"))
	assert.Contains(t, summary.Texts("summary.highlights"), "• Projected "+irr+" IRR")

	cost := fields.Fallback(domain.FieldTotalProjectCost)
	cell, _ = tableOf(t, summary, "summary.metrics").Cell("Total Project Cost", 1)
	assert.Equal(t, cost, cell)
	cell, _ = tableOf(t, opp, "opportunity.development").Cell("Total Cost:", 1)
	assert.Equal(t, cost, cell)
	assert.Equal(t, []string{cost}, dev.Texts("development.budget.total"))

	facility := fields.Fallback(domain.FieldFacilityType)
	cell, _ = tableOf(t, opp, "opportunity.development").Cell("Facility Type:", 1)
	assert.Equal(t, facility, cell)
	cell, _ = tableOf(t, dev, "development.specs").Cell("Facility Type:", 1)
	assert.Equal(t, facility, cell)
	assert.Contains(t, summary.Texts("summary.highlights"), "• "+facility+" Development")
}
