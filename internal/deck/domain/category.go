package domain

import (
	"fmt"
	"strings"
)

// Category groups ProjectData fields into the wizard's question sections.
type Category string

const (
	CategorySite        Category = "site"
	CategoryDevelopment Category = "development"
	CategoryMarket      Category = "market"
	CategoryFinancials  Category = "financials"
	CategoryTeam        Category = "team"
	CategoryTerms       Category = "terms"
)

var categoryOrder = []Category{
	CategorySite,
	CategoryDevelopment,
	CategoryMarket,
	CategoryFinancials,
	CategoryTeam,
	CategoryTerms,
}

var categoryInfo = map[Category]struct {
	label       string
	description string
}{
	CategorySite:        {"Site & Property", "Location, zoning, and property details"},
	CategoryDevelopment: {"Development Plan", "Facility type, beds, construction"},
	CategoryMarket:      {"Market Analysis", "Demographics, competition, demand"},
	CategoryFinancials:  {"Financials", "Projections, returns, capital structure"},
	CategoryTeam:        {"Team & Track Record", "Sponsor experience and credentials"},
	CategoryTerms:       {"Deal Terms", "Investment structure and returns"},
}

// Categories returns the categories in question order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// ParseCategory accepts a category key in any case.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := categoryInfo[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

func (c Category) Valid() bool {
	_, ok := categoryInfo[c]
	return ok
}

func (c Category) Label() string {
	return categoryInfo[c].label
}

func (c Category) Description() string {
	return categoryInfo[c].description
}

// Next returns the category asked after c. ok is false for the last one.
func (c Category) Next() (next Category, ok bool) {
	for i, cat := range categoryOrder {
		if cat == c && i+1 < len(categoryOrder) {
			return categoryOrder[i+1], true
		}
	}
	return "", false
}
