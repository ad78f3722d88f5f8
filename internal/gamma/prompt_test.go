package gamma

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realty-decks/deck-backend/internal/deck/assembler"
	"github.com/realty-decks/deck-backend/internal/deck/catalog"
	"github.com/realty-decks/deck-backend/internal/deck/domain"
	"github.com/realty-decks/deck-backend/internal/deck/fields"
)

func TestBuildPrompt_Empty(t *testing.T) {
	p := BuildPrompt(domain.ProjectData{}, "", catalog.DefaultFigures())

	assert.Contains(t, p, "Project Name: Investment Opportunity")
	assert.Contains(t, p, "- Project name: Investment Opportunity")
	assert.Contains(t, p, "| Total Raise | $1.5M |")
	assert.Contains(t, p, "Year 1: $200K, Year 2: $450K, Year 3: $650K, Year 4: $750K, Year 5: $800K")
	assert.Contains(t, p, "- LP Equity: 60%")
	assert.Contains(t, p, "- Land Acquisition: $1.2M (14%)")
	assert.Contains(t, p, "Contact: Principal Sponsor")
	assert.NotContains(t, p, "{")
	assert.Equal(t, 10, strings.Count(p, "\n## Slide "))
}

func TestBuildPrompt_UsesData(t *testing.T) {
	data := domain.ProjectData{
		ProjectName:     "Harbor View",
		TotalRaise:      "$3M",
		PurchasePrice:   "$900K",
		PreferredReturn: "7%",
	}
	p := BuildPrompt(data, "Acme Capital", catalog.DefaultFigures())

	assert.Contains(t, p, "Project Name: Harbor View")
	assert.Contains(t, p, `Tagline: "$3M Equity Investment Opportunity"`)
	assert.Contains(t, p, "- Tier 2: 7% Preferred Return → 100% to LP")
	assert.Contains(t, p, "- Land Acquisition: $900K (14%)")
	assert.Contains(t, p, "Contact: Acme Capital")
}

func TestBuildPrompt_CompanyNameFallsBackForProject(t *testing.T) {
	p := BuildPrompt(domain.ProjectData{}, "Acme Capital", catalog.DefaultFigures())
	assert.Contains(t, p, "Project Name: Acme Capital")
}

func TestBuildPrompt_CustomFigures(t *testing.T) {
	figs := catalog.DefaultFigures()
	figs.NOI = catalog.Series{Labels: []string{"2026", "2027"}, Values: []float64{120.5, 300}}

	p := BuildPrompt(domain.ProjectData{}, "", figs)
	assert.Contains(t, p, "NOI growth over 2 years:\n2026: $120.5K, 2027: $300K\n")
}

func TestBuildPrompt_EmptyInputMatchesDeck(t *testing.T) {
	p := BuildPrompt(domain.ProjectData{}, "", catalog.DefaultFigures())
	d := assembler.Assemble(domain.BrandConfig{}, domain.ProjectData{}, assembler.Options{})

	slide := func(name string) assembler.Slide {
		for _, s := range d.Slides {
			if s.Name == name {
				return s
			}
		}
		t.Fatalf("slide %q not found", name)
		return assembler.Slide{}
	}
	cell := func(s assembler.Slide, regionID, label string) string {
		e, ok := s.Find(regionID)
		require.True(t, ok, regionID)
		v, ok := e.Table.Cell(label, 1)
		require.True(t, ok, "%s %s", regionID, label)
		return v
	}

	summary := slide("Executive Summary")
	opp := slide("Opportunity")
	fin := slide("Financials")

	cases := []struct {
		line string
		deck string
	}{
		{"| Total Project Cost | %s |", cell(summary, "summary.metrics", "Total Project Cost")},
		{"| Projected IRR | %s |", cell(summary, "summary.metrics", "Projected IRR")},
		{"- Projected IRR: %s", fin.Texts("financials.return1.value")[0]},
		{"- Address: %s", cell(opp, "opportunity.property", "Address:")},
		{"- Zoning: %s", cell(opp, "opportunity.property", "Zoning:")},
		{"- Land Basis: %s", cell(opp, "opportunity.property", "Land Basis:")},
		{"- Beds: %s", cell(opp, "opportunity.development", "Licensed Beds:")},
		{"- Facility Type: %s", cell(opp, "opportunity.development", "Facility Type:")},
		{"- Timeline: %s", cell(opp, "opportunity.development", "Timeline:")},
		{"- Project name: %s", slide("Cover").Texts("cover.title")[0]},
	}
	for _, tc := range cases {
		assert.Contains(t, p, fmt.Sprintf(tc.line, tc.deck))
	}
}

func TestBuildPrompt_EmptyInputUsesFallbackTable(t *testing.T) {
	p := BuildPrompt(domain.ProjectData{}, "", catalog.DefaultFigures())
	for _, tmpl := range []string{promptOverview, promptReturns, promptExit} {
		for _, keys := range fields.Placeholders(tmpl) {
			f, ok := domain.LookupField(keys[0])
			if !ok {
				continue
			}
			assert.Contains(t, p, fields.Fallback(f), "{%s}", strings.Join(keys, "|"))
		}
	}
	assert.Contains(t, p, "- Beds: "+fields.Placeholder)
	assert.Contains(t, p, "- Projected IRR: 18%")
}
