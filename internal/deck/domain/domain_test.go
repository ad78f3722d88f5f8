package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectData_GetSet(t *testing.T) {
	var p ProjectData
	require.NoError(t, p.Set(FieldBedCount, "72"))
	assert.Equal(t, "72", p.BedCount)
	assert.Equal(t, "72", p.Get(FieldBedCount))

	assert.ErrorIs(t, p.Set(Field("favoriteColor"), "blue"), ErrUnknownField)
	assert.Equal(t, "", p.Get(Field("favoriteColor")))
}

func TestProjectData_Merge(t *testing.T) {
	base := ProjectData{ProjectName: "Harbor View", BedCount: "60"}
	partial := ProjectData{BedCount: "72", TotalRaise: "  ", ZoningStatus: " Entitled "}

	merged := base.Merge(partial)

	assert.Equal(t, ProjectData{ProjectName: "Harbor View", BedCount: "72", ZoningStatus: "Entitled"}, merged)
	assert.Equal(t, ProjectData{ProjectName: "Harbor View", BedCount: "60"}, base)
}

func TestProjectData_PopulatedCountAndValues(t *testing.T) {
	p := ProjectData{ProjectName: "A", LotSize: " ", ExitStrategy: "Sale"}
	assert.Equal(t, 2, p.PopulatedCount())
	assert.Equal(t, map[string]string{"projectName": "A", "exitStrategy": "Sale"}, p.Values())
}

func TestFromMap(t *testing.T) {
	p := FromMap(map[string]string{"projectName": " Harbor ", "unknown": "x", "bedCount": "72"})
	assert.Equal(t, ProjectData{ProjectName: "Harbor", BedCount: "72"}, p)
}

func TestFieldRegistry(t *testing.T) {
	assert.Len(t, Fields(), 49)

	total := 0
	for _, c := range Categories() {
		fs := FieldsIn(c)
		assert.NotEmpty(t, fs, c)
		for _, f := range fs {
			assert.Equal(t, c, f.Category())
		}
		total += len(fs)
	}
	assert.Equal(t, len(Fields()), total)

	f, ok := LookupField("holdPeriod")
	require.True(t, ok)
	assert.Equal(t, "Hold Period", f.Label())
	assert.Equal(t, "nope", Field("nope").Label())
	assert.False(t, Field("nope").Known())
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []Category{CategorySite, CategoryDevelopment, CategoryMarket, CategoryFinancials, CategoryTeam, CategoryTerms}, Categories())

	c, err := ParseCategory(" Financials ")
	require.NoError(t, err)
	assert.Equal(t, CategoryFinancials, c)
	assert.Equal(t, "Financials", c.Label())

	_, err = ParseCategory("weather")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	next, ok := CategorySite.Next()
	assert.True(t, ok)
	assert.Equal(t, CategoryDevelopment, next)

	_, ok = CategoryTerms.Next()
	assert.False(t, ok)
}

func TestBrand(t *testing.T) {
	b := BrandConfig{PrimaryColor: "#112233"}.WithDefaults()
	assert.Equal(t, "#112233", b.PrimaryColor)
	assert.Equal(t, DefaultSecondaryColor, b.SecondaryColor)
	assert.False(t, b.HasLogo())

	merged := b.Merge(BrandConfig{CompanyName: "Acme", AccentColor: "#FFFFFF", PrimaryColor: " "})
	assert.Equal(t, "Acme", merged.CompanyName)
	assert.Equal(t, "#FFFFFF", merged.AccentColor)
	assert.Equal(t, "#112233", merged.PrimaryColor)
	assert.Equal(t, "", b.CompanyName)
}
