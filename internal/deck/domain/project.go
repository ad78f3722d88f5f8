package domain

import "strings"

// ProjectData is one investment opportunity as collected by the wizard.
// Every field is an optional, pre-formatted display string.
type ProjectData struct {
	// Site & Property
	ProjectName     string `json:"projectName,omitempty"`
	PropertyAddress string `json:"propertyAddress,omitempty"`
	LotSize         string `json:"lotSize,omitempty"`
	Zoning          string `json:"zoning,omitempty"`
	ZoningStatus    string `json:"zoningStatus,omitempty"`
	PurchasePrice   string `json:"purchasePrice,omitempty"`
	LandOwnership   string `json:"landOwnership,omitempty"`

	// Development Plan
	FacilityType           string `json:"facilityType,omitempty"`
	BedCount               string `json:"bedCount,omitempty"`
	SquareFootage          string `json:"squareFootage,omitempty"`
	ConstructionTimeline   string `json:"constructionTimeline,omitempty"`
	TotalProjectCost       string `json:"totalProjectCost,omitempty"`
	ConstructionCostPerBed string `json:"constructionCostPerBed,omitempty"`
	LicenseType            string `json:"licenseType,omitempty"`
	GeneralContractor      string `json:"generalContractor,omitempty"`

	// Market Analysis
	MarketLocation   string `json:"marketLocation,omitempty"`
	Population65Plus string `json:"population65Plus,omitempty"`
	Population85Plus string `json:"population85Plus,omitempty"`
	PopulationGrowth string `json:"populationGrowth,omitempty"`
	CompetitorCount  string `json:"competitorCount,omitempty"`
	MarketOccupancy  string `json:"marketOccupancy,omitempty"`
	AverageDailyRate string `json:"averageDailyRate,omitempty"`
	DemandDrivers    string `json:"demandDrivers,omitempty"`

	// Financials
	TotalRaise      string `json:"totalRaise,omitempty"`
	EquityStructure string `json:"equityStructure,omitempty"`
	DebtFinancing   string `json:"debtFinancing,omitempty"`
	ProjectedNOI    string `json:"projectedNOI,omitempty"`
	ProjectedIRR    string `json:"projectedIRR,omitempty"`
	CashOnCash      string `json:"cashOnCash,omitempty"`
	EquityMultiple  string `json:"equityMultiple,omitempty"`
	GoingInCapRate  string `json:"goingInCapRate,omitempty"`
	ExitCapRate     string `json:"exitCapRate,omitempty"`
	HoldPeriod      string `json:"holdPeriod,omitempty"`

	// Team & Track Record
	SponsorName           string `json:"sponsorName,omitempty"`
	SponsorExperience     string `json:"sponsorExperience,omitempty"`
	PriorDeals            string `json:"priorDeals,omitempty"`
	PriorReturns          string `json:"priorReturns,omitempty"`
	AssetsUnderManagement string `json:"assetsUnderManagement,omitempty"`
	CoInvestAmount        string `json:"coInvestAmount,omitempty"`
	Operator              string `json:"operator,omitempty"`
	ManagementTeam        string `json:"managementTeam,omitempty"`

	// Deal Terms
	MinimumInvestment     string `json:"minimumInvestment,omitempty"`
	PreferredReturn       string `json:"preferredReturn,omitempty"`
	WaterfallStructure    string `json:"waterfallStructure,omitempty"`
	ManagementFee         string `json:"managementFee,omitempty"`
	AcquisitionFee        string `json:"acquisitionFee,omitempty"`
	DispositionFee        string `json:"dispositionFee,omitempty"`
	DistributionFrequency string `json:"distributionFrequency,omitempty"`
	ExitStrategy          string `json:"exitStrategy,omitempty"`
}

// Get returns the raw value of f, or "" for unset or unknown fields.
func (p ProjectData) Get(f Field) string {
	def, ok := fieldIndex[f]
	if !ok {
		return ""
	}
	return *def.ptr(&p)
}

// Set assigns value to f. It reports ErrUnknownField for keys outside the registry.
func (p *ProjectData) Set(f Field, value string) error {
	def, ok := fieldIndex[f]
	if !ok {
		return ErrUnknownField
	}
	*def.ptr(p) = value
	return nil
}

// Has reports whether f holds a non-blank value.
func (p ProjectData) Has(f Field) bool {
	return strings.TrimSpace(p.Get(f)) != ""
}

// Merge returns a new snapshot where every non-blank field of partial
// replaces the corresponding field of p. p itself is left untouched.
func (p ProjectData) Merge(partial ProjectData) ProjectData {
	out := p
	for _, def := range fieldDefs {
		if v := strings.TrimSpace(*def.ptr(&partial)); v != "" {
			*def.ptr(&out) = v
		}
	}
	return out
}

// PopulatedCount counts the fields holding a non-blank value.
func (p ProjectData) PopulatedCount() int {
	n := 0
	for _, def := range fieldDefs {
		if strings.TrimSpace(*def.ptr(&p)) != "" {
			n++
		}
	}
	return n
}

// Values returns the populated fields keyed by their JSON name.
func (p ProjectData) Values() map[string]string {
	out := make(map[string]string)
	for _, def := range fieldDefs {
		if v := strings.TrimSpace(*def.ptr(&p)); v != "" {
			out[string(def.key)] = v
		}
	}
	return out
}

// FromMap builds a ProjectData from loosely typed input, dropping unknown keys.
func FromMap(m map[string]string) ProjectData {
	var p ProjectData
	for k, v := range m {
		if f, ok := LookupField(k); ok {
			_ = p.Set(f, strings.TrimSpace(v))
		}
	}
	return p
}
