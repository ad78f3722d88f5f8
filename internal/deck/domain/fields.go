package domain

// Field names a ProjectData attribute by its JSON key.
type Field string

const (
	FieldProjectName     Field = "projectName"
	FieldPropertyAddress Field = "propertyAddress"
	FieldLotSize         Field = "lotSize"
	FieldZoning          Field = "zoning"
	FieldZoningStatus    Field = "zoningStatus"
	FieldPurchasePrice   Field = "purchasePrice"
	FieldLandOwnership   Field = "landOwnership"

	FieldFacilityType           Field = "facilityType"
	FieldBedCount               Field = "bedCount"
	FieldSquareFootage          Field = "squareFootage"
	FieldConstructionTimeline   Field = "constructionTimeline"
	FieldTotalProjectCost       Field = "totalProjectCost"
	FieldConstructionCostPerBed Field = "constructionCostPerBed"
	FieldLicenseType            Field = "licenseType"
	FieldGeneralContractor      Field = "generalContractor"

	FieldMarketLocation   Field = "marketLocation"
	FieldPopulation65Plus Field = "population65Plus"
	FieldPopulation85Plus Field = "population85Plus"
	FieldPopulationGrowth Field = "populationGrowth"
	FieldCompetitorCount  Field = "competitorCount"
	FieldMarketOccupancy  Field = "marketOccupancy"
	FieldAverageDailyRate Field = "averageDailyRate"
	FieldDemandDrivers    Field = "demandDrivers"

	FieldTotalRaise      Field = "totalRaise"
	FieldEquityStructure Field = "equityStructure"
	FieldDebtFinancing   Field = "debtFinancing"
	FieldProjectedNOI    Field = "projectedNOI"
	FieldProjectedIRR    Field = "projectedIRR"
	FieldCashOnCash      Field = "cashOnCash"
	FieldEquityMultiple  Field = "equityMultiple"
	FieldGoingInCapRate  Field = "goingInCapRate"
	FieldExitCapRate     Field = "exitCapRate"
	FieldHoldPeriod      Field = "holdPeriod"

	FieldSponsorName           Field = "sponsorName"
	FieldSponsorExperience     Field = "sponsorExperience"
	FieldPriorDeals            Field = "priorDeals"
	FieldPriorReturns          Field = "priorReturns"
	FieldAssetsUnderManagement Field = "assetsUnderManagement"
	FieldCoInvestAmount        Field = "coInvestAmount"
	FieldOperator              Field = "operator"
	FieldManagementTeam        Field = "managementTeam"

	FieldMinimumInvestment     Field = "minimumInvestment"
	FieldPreferredReturn       Field = "preferredReturn"
	FieldWaterfallStructure    Field = "waterfallStructure"
	FieldManagementFee         Field = "managementFee"
	FieldAcquisitionFee        Field = "acquisitionFee"
	FieldDispositionFee        Field = "dispositionFee"
	FieldDistributionFrequency Field = "distributionFrequency"
	FieldExitStrategy          Field = "exitStrategy"
)

type fieldDef struct {
	key      Field
	label    string
	category Category
	ptr      func(*ProjectData) *string
}

var fieldDefs = []fieldDef{
	{FieldProjectName, "Project Name", CategorySite, func(p *ProjectData) *string { return &p.ProjectName }},
	{FieldPropertyAddress, "Property Address", CategorySite, func(p *ProjectData) *string { return &p.PropertyAddress }},
	{FieldLotSize, "Lot Size", CategorySite, func(p *ProjectData) *string { return &p.LotSize }},
	{FieldZoning, "Zoning", CategorySite, func(p *ProjectData) *string { return &p.Zoning }},
	{FieldZoningStatus, "Entitlement Status", CategorySite, func(p *ProjectData) *string { return &p.ZoningStatus }},
	{FieldPurchasePrice, "Purchase Price", CategorySite, func(p *ProjectData) *string { return &p.PurchasePrice }},
	{FieldLandOwnership, "Land Ownership", CategorySite, func(p *ProjectData) *string { return &p.LandOwnership }},

	{FieldFacilityType, "Facility Type", CategoryDevelopment, func(p *ProjectData) *string { return &p.FacilityType }},
	{FieldBedCount, "Bed Count", CategoryDevelopment, func(p *ProjectData) *string { return &p.BedCount }},
	{FieldSquareFootage, "Square Footage", CategoryDevelopment, func(p *ProjectData) *string { return &p.SquareFootage }},
	{FieldConstructionTimeline, "Construction Timeline", CategoryDevelopment, func(p *ProjectData) *string { return &p.ConstructionTimeline }},
	{FieldTotalProjectCost, "Total Project Cost", CategoryDevelopment, func(p *ProjectData) *string { return &p.TotalProjectCost }},
	{FieldConstructionCostPerBed, "Cost per Bed", CategoryDevelopment, func(p *ProjectData) *string { return &p.ConstructionCostPerBed }},
	{FieldLicenseType, "License Type", CategoryDevelopment, func(p *ProjectData) *string { return &p.LicenseType }},
	{FieldGeneralContractor, "General Contractor", CategoryDevelopment, func(p *ProjectData) *string { return &p.GeneralContractor }},

	{FieldMarketLocation, "Market Location", CategoryMarket, func(p *ProjectData) *string { return &p.MarketLocation }},
	{FieldPopulation65Plus, "Population 65+", CategoryMarket, func(p *ProjectData) *string { return &p.Population65Plus }},
	{FieldPopulation85Plus, "Population 85+", CategoryMarket, func(p *ProjectData) *string { return &p.Population85Plus }},
	{FieldPopulationGrowth, "Population Growth", CategoryMarket, func(p *ProjectData) *string { return &p.PopulationGrowth }},
	{FieldCompetitorCount, "Competitor Count", CategoryMarket, func(p *ProjectData) *string { return &p.CompetitorCount }},
	{FieldMarketOccupancy, "Market Occupancy", CategoryMarket, func(p *ProjectData) *string { return &p.MarketOccupancy }},
	{FieldAverageDailyRate, "Average Daily Rate", CategoryMarket, func(p *ProjectData) *string { return &p.AverageDailyRate }},
	{FieldDemandDrivers, "Demand Drivers", CategoryMarket, func(p *ProjectData) *string { return &p.DemandDrivers }},

	{FieldTotalRaise, "Total Raise", CategoryFinancials, func(p *ProjectData) *string { return &p.TotalRaise }},
	{FieldEquityStructure, "Equity Structure", CategoryFinancials, func(p *ProjectData) *string { return &p.EquityStructure }},
	{FieldDebtFinancing, "Debt Financing", CategoryFinancials, func(p *ProjectData) *string { return &p.DebtFinancing }},
	{FieldProjectedNOI, "Projected NOI", CategoryFinancials, func(p *ProjectData) *string { return &p.ProjectedNOI }},
	{FieldProjectedIRR, "Projected IRR", CategoryFinancials, func(p *ProjectData) *string { return &p.ProjectedIRR }},
	{FieldCashOnCash, "Cash-on-Cash", CategoryFinancials, func(p *ProjectData) *string { return &p.CashOnCash }},
	{FieldEquityMultiple, "Equity Multiple", CategoryFinancials, func(p *ProjectData) *string { return &p.EquityMultiple }},
	{FieldGoingInCapRate, "Going-In Cap Rate", CategoryFinancials, func(p *ProjectData) *string { return &p.GoingInCapRate }},
	{FieldExitCapRate, "Exit Cap Rate", CategoryFinancials, func(p *ProjectData) *string { return &p.ExitCapRate }},
	{FieldHoldPeriod, "Hold Period", CategoryFinancials, func(p *ProjectData) *string { return &p.HoldPeriod }},

	{FieldSponsorName, "Sponsor Name", CategoryTeam, func(p *ProjectData) *string { return &p.SponsorName }},
	{FieldSponsorExperience, "Sponsor Experience", CategoryTeam, func(p *ProjectData) *string { return &p.SponsorExperience }},
	{FieldPriorDeals, "Prior Deals", CategoryTeam, func(p *ProjectData) *string { return &p.PriorDeals }},
	{FieldPriorReturns, "Prior Returns", CategoryTeam, func(p *ProjectData) *string { return &p.PriorReturns }},
	{FieldAssetsUnderManagement, "Assets Under Management", CategoryTeam, func(p *ProjectData) *string { return &p.AssetsUnderManagement }},
	{FieldCoInvestAmount, "GP Co-Invest", CategoryTeam, func(p *ProjectData) *string { return &p.CoInvestAmount }},
	{FieldOperator, "Operator", CategoryTeam, func(p *ProjectData) *string { return &p.Operator }},
	{FieldManagementTeam, "Management Team", CategoryTeam, func(p *ProjectData) *string { return &p.ManagementTeam }},

	{FieldMinimumInvestment, "Minimum Investment", CategoryTerms, func(p *ProjectData) *string { return &p.MinimumInvestment }},
	{FieldPreferredReturn, "Preferred Return", CategoryTerms, func(p *ProjectData) *string { return &p.PreferredReturn }},
	{FieldWaterfallStructure, "Waterfall Structure", CategoryTerms, func(p *ProjectData) *string { return &p.WaterfallStructure }},
	{FieldManagementFee, "Management Fee", CategoryTerms, func(p *ProjectData) *string { return &p.ManagementFee }},
	{FieldAcquisitionFee, "Acquisition Fee", CategoryTerms, func(p *ProjectData) *string { return &p.AcquisitionFee }},
	{FieldDispositionFee, "Disposition Fee", CategoryTerms, func(p *ProjectData) *string { return &p.DispositionFee }},
	{FieldDistributionFrequency, "Distribution Frequency", CategoryTerms, func(p *ProjectData) *string { return &p.DistributionFrequency }},
	{FieldExitStrategy, "Exit Strategy", CategoryTerms, func(p *ProjectData) *string { return &p.ExitStrategy }},
}

var fieldIndex = func() map[Field]fieldDef {
	m := make(map[Field]fieldDef, len(fieldDefs))
	for _, d := range fieldDefs {
		m[d.key] = d
	}
	return m
}()

// Fields lists every known field in category order.
func Fields() []Field {
	out := make([]Field, len(fieldDefs))
	for i, d := range fieldDefs {
		out[i] = d.key
	}
	return out
}

// FieldsIn lists the fields collected for one category.
func FieldsIn(c Category) []Field {
	var out []Field
	for _, d := range fieldDefs {
		if d.category == c {
			out = append(out, d.key)
		}
	}
	return out
}

// LookupField resolves a JSON key to a Field.
func LookupField(key string) (Field, bool) {
	f := Field(key)
	_, ok := fieldIndex[f]
	return f, ok
}

func (f Field) Known() bool {
	_, ok := fieldIndex[f]
	return ok
}

// Label is the human readable name, or the raw key for unknown fields.
func (f Field) Label() string {
	if d, ok := fieldIndex[f]; ok {
		return d.label
	}
	return string(f)
}

func (f Field) Category() Category {
	return fieldIndex[f].category
}
