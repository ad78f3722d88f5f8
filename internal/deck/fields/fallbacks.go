package fields

import "github.com/realty-decks/deck-backend/internal/deck/domain"

// DefaultDemandDrivers is the demandDrivers fallback, split like a
// collected value when the market slide lists it.
const DefaultDemandDrivers = "Hospital discharge partnerships, aging in place trends, increasing acuity levels, limited new supply"

// fallbacks holds the one display literal per field. Every surface that
// shows a field (slides, the Gamma prompt, the CLI) falls back through this
// table; fields without an entry render Placeholder.
var fallbacks = map[domain.Field]string{
	domain.FieldProjectName:     "Investment Opportunity",
	domain.FieldPropertyAddress: "Southern California",
	domain.FieldPurchasePrice:   "$1.2M",

	domain.FieldFacilityType:         "Skilled Nursing Facility",
	domain.FieldConstructionTimeline: "18-24 months",
	domain.FieldTotalProjectCost:     "$8.5M",
	domain.FieldGeneralContractor:    "TBD",

	domain.FieldMarketLocation:   "Southern California",
	domain.FieldPopulation65Plus: "125,000+",
	domain.FieldPopulationGrowth: "+15%",
	domain.FieldCompetitorCount:  "6",
	domain.FieldMarketOccupancy:  "92%",
	domain.FieldAverageDailyRate: "$325",
	domain.FieldDemandDrivers:    DefaultDemandDrivers,

	domain.FieldTotalRaise:     "$1.5M",
	domain.FieldProjectedIRR:   "18%",
	domain.FieldCashOnCash:     "8-12%",
	domain.FieldEquityMultiple: "2.1x",
	domain.FieldHoldPeriod:     "5-7 years",

	domain.FieldSponsorName:           "Principal Sponsor",
	domain.FieldSponsorExperience:     "15+ years in healthcare real estate",
	domain.FieldPriorDeals:            "10+",
	domain.FieldPriorReturns:          "18%",
	domain.FieldAssetsUnderManagement: "$50M",
	domain.FieldCoInvestAmount:        "5%",
	domain.FieldOperator:              "Experienced third-party operator",

	domain.FieldMinimumInvestment:     "$50,000",
	domain.FieldPreferredReturn:       "8%",
	domain.FieldWaterfallStructure:    "Standard waterfall with LP-favorable structure. GP promotes earned only after investor capital returned with preferred return.",
	domain.FieldManagementFee:         "1.5%",
	domain.FieldAcquisitionFee:        "1.0%",
	domain.FieldDispositionFee:        "1.0%",
	domain.FieldDistributionFrequency: "Quarterly",
	domain.FieldExitStrategy:          "Primary: Sale at stabilization\nSecondary: Refinance & continue",
}

// Fallback returns the display literal for f, never empty.
func Fallback(f domain.Field) string {
	if s, ok := fallbacks[f]; ok {
		return s
	}
	return Placeholder
}
