package catalog

import (
	"fmt"

	"github.com/realty-decks/deck-backend/internal/deck/theme"
)

// Fixed tints used on the dark title master and the CTA band.
const (
	tintPale  theme.Role = "B0D4F1"
	tintMuted theme.Role = "80B0D4"
	tintTrack theme.Role = "E0E0E0"
)

var (
	cardTitle = Style{Size: 14, Color: theme.Primary, Bold: true}
	labelCell = Style{Size: 11, Color: theme.TextLight}
	valueCell = Style{Size: 11, Color: theme.Text, Bold: true}
	bodyText  = Style{Size: 11, Color: theme.Text}
	caption   = Style{Size: 10, Color: theme.TextLight, Align: AlignCenter}
	cardBox   = Style{Fill: theme.White, Shape: ShapeRoundRect}
)

// Slides returns the catalog in presentation order. The slice is rebuilt on
// every call, so callers may not mutate a shared copy.
func Slides() []SlideSpec {
	return []SlideSpec{
		coverSlide(),
		executiveSummarySlide(),
		opportunitySlide(),
		marketAnalysisSlide(),
		developmentPlanSlide(),
		teamSlide(),
		financialsSlide(),
		dealStructureSlide(),
		useOfFundsSlide(),
		exitSlide(),
	}
}

// card is a white rounded box with a heading in its top-left corner.
func card(id string, r Rect, title string) []Region {
	return []Region{
		{ID: id + ".box", Kind: KindShape, Rect: r, Style: cardBox},
		{ID: id + ".title", Kind: KindText, Rect: Rect{r.X + 0.2, r.Y + 0.15, r.W - 0.4, 0.35}, Text: title, Style: cardTitle},
	}
}

// stat is a large figure above a small caption.
func stat(id string, x, y, w float64, value, label string, size int, color theme.Role) []Region {
	return []Region{
		{ID: id + ".value", Kind: KindText, Rect: Rect{x, y, w, 0.6}, Text: value,
			Style: Style{Size: size, Color: color, Bold: true}},
		{ID: id + ".label", Kind: KindText, Rect: Rect{x, y + 0.6, w, 0.3}, Text: label,
			Style: Style{Size: 10, Color: theme.TextLight}},
	}
}

func join(parts ...[]Region) []Region {
	var out []Region
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func coverSlide() SlideSpec {
	return SlideSpec{
		Name:   "Cover",
		Master: MasterTitle,
		Regions: []Region{
			{ID: "cover.logo", Kind: KindImage, Rect: Rect{5.5, 0.8, 2.5, 1.0},
				Style: Style{Size: 20, Color: theme.White, Bold: true, Align: AlignCenter}},
			{ID: "cover.title", Kind: KindText, Rect: Rect{0.5, 2.5, 12.33, 1.2},
				Text:  "{projectName|companyName}",
				Style: Style{Size: 44, Color: theme.White, Bold: true, Align: AlignCenter}},
			{ID: "cover.tagline", Kind: KindText, Rect: Rect{0.5, 3.8, 12.33, 0.6},
				Text:  "{totalRaise} Equity Investment Opportunity",
				Style: Style{Size: 24, Color: theme.Secondary, Align: AlignCenter}},
			{ID: "cover.location", Kind: KindText, Rect: Rect{0.5, 4.6, 12.33, 0.5},
				Text:  "{propertyAddress|marketLocation}",
				Style: Style{Size: 18, Color: tintPale, Align: AlignCenter}},
			{ID: "cover.badge", Kind: KindText, Rect: Rect{4.665, 5.12, 4.0, 0.32},
				When:  []string{"facilityType", "bedCount"},
				Text:  "{facilityType} | {bedCount} Licensed Beds",
				Style: Style{Size: 11, Color: theme.White, Fill: theme.Accent, Bold: true, Align: AlignCenter}},
			{ID: "cover.date", Kind: KindText, Rect: Rect{0.5, 5.5, 12.33, 0.4},
				Text:  "{generatedOn}",
				Style: Style{Size: 14, Color: tintMuted, Align: AlignCenter}},
			{ID: "cover.confidential", Kind: KindText, Rect: Rect{0.5, 6.9, 12.33, 0.3},
				Text:  "CONFIDENTIAL",
				Style: Style{Size: 10, Color: theme.White, Align: AlignCenter}},
		},
	}
}

func executiveSummarySlide() SlideSpec {
	return SlideSpec{
		Name:   "Executive Summary",
		Master: MasterContent,
		Title:  "Executive Summary",
		Regions: join(
			[]Region{
				{ID: "summary.highlights.box", Kind: KindShape, Rect: Rect{0.5, 1.3, 6, 4.5}, Style: cardBox},
				{ID: "summary.highlights.title", Kind: KindText, Rect: Rect{0.7, 1.5, 5.6, 0.4},
					Text: "Investment Highlights", Style: Style{Size: 16, Color: theme.Primary, Bold: true}},
				{ID: "summary.highlights", Kind: KindList, Rect: Rect{0.9, 2.0, 5.4, 0.5}, Step: 0.55, Prefix: "• ",
					Style: Style{Size: 13, Color: theme.Text},
					Items: []string{
						"{facilityType} Development",
						"{bedCount} Licensed Beds",
						"{propertyAddress|marketLocation}",
						"Development timeline: {constructionTimeline}",
						"Projected {projectedIRR} IRR",
						"{preferredReturn} Preferred Return to LPs",
					}},
				{ID: "summary.metrics.box", Kind: KindShape, Rect: Rect{6.8, 1.3, 6, 4.5}, Style: cardBox},
				{ID: "summary.metrics.title", Kind: KindText, Rect: Rect{7.0, 1.5, 5.6, 0.4},
					Text: "Key Metrics", Style: Style{Size: 16, Color: theme.Primary, Bold: true}},
				{ID: "summary.metrics", Kind: KindTable, Rect: Rect{7.2, 2.0, 5.3, 0.4}, Step: 0.55,
					Columns: []Column{
						{X: 7.2, W: 2.5, Style: Style{Size: 12, Color: theme.TextLight}},
						{X: 10.0, W: 2.5, Style: Style{Size: 12, Color: theme.Primary, Bold: true, Align: AlignRight}},
					},
					Rows: [][]string{
						{"Total Raise", "{totalRaise}"},
						{"Total Project Cost", "{totalProjectCost}"},
						{"Projected IRR", "{projectedIRR}"},
						{"Equity Multiple", "{equityMultiple}"},
						{"Cash-on-Cash", "{cashOnCash}"},
						{"Hold Period", "{holdPeriod}"},
					}},
				{ID: "summary.thesis.title", Kind: KindText, Rect: Rect{0.5, 6.0, 12.33, 0.4},
					Text: "Investment Thesis", Style: Style{Size: 14, Color: theme.Primary, Bold: true}},
				{ID: "summary.thesis", Kind: KindText, Rect: Rect{0.5, 6.4, 12.33, 0.6}, Style: bodyText,
					Text: "Strategic development opportunity in {marketLocation} addressing the growing " +
						"demand for {facilityType} beds in an underserved market. The sponsor brings " +
						"{sponsorExperience} and is seeking {totalRaise} in LP equity."},
			},
		),
	}
}

func opportunitySlide() SlideSpec {
	return SlideSpec{
		Name:   "Opportunity",
		Master: MasterContent,
		Title:  "The Opportunity",
		Regions: join(
			card("opportunity.property", Rect{0.5, 1.3, 6, 3.0}, "Property Details"),
			[]Region{{ID: "opportunity.property", Kind: KindTable, Rect: Rect{0.9, 1.9, 5.4, 0.35}, Step: 0.4,
				Columns: []Column{{X: 0.9, W: 1.8, Style: labelCell}, {X: 2.8, W: 3.5, Style: valueCell}},
				Rows: [][]string{
					{"Address:", "{propertyAddress}"},
					{"Lot Size:", "{lotSize}"},
					{"Zoning:", "{zoning}"},
					{"Status:", "{zoningStatus}"},
					{"Land Basis:", "{purchasePrice|landOwnership}"},
				}}},
			card("opportunity.development", Rect{6.8, 1.3, 6, 3.0}, "Development Overview"),
			[]Region{{ID: "opportunity.development", Kind: KindTable, Rect: Rect{7.2, 1.9, 5.4, 0.35}, Step: 0.4,
				Columns: []Column{{X: 7.2, W: 2.0, Style: labelCell}, {X: 9.3, W: 3.3, Style: valueCell}},
				Rows: [][]string{
					{"Facility Type:", "{facilityType}"},
					{"Licensed Beds:", "{bedCount}"},
					{"Square Footage:", "{squareFootage}"},
					{"Timeline:", "{constructionTimeline}"},
					{"Total Cost:", "{totalProjectCost}"},
				}}},
			card("opportunity.why", Rect{0.5, 4.5, 12.33, 2.3}, "Why This Opportunity"),
			[]Region{{ID: "opportunity.why", Kind: KindList, Rect: Rect{0.9, 5.1, 11.7, 0.35}, Step: 0.4, Prefix: "✓ ",
				Style: bodyText,
				Items: []string{
					"Aging population in {marketLocation} driving unprecedented demand for {facilityType} beds",
					"Limited new supply due to CON requirements and development complexity",
					"Prime location with strong referral network and hospital proximity",
					"Experienced operator with {priorDeals} completed deals in healthcare real estate",
				}}},
		),
	}
}

func marketAnalysisSlide() SlideSpec {
	return SlideSpec{
		Name:   "Market Analysis",
		Master: MasterContent,
		Title:  "Market Analysis",
		Regions: join(
			card("market.demographics", Rect{0.5, 1.3, 4, 3.2}, "Demographics"),
			stat("market.population65", 0.7, 2.0, 3.6, "{population65Plus}", "Population 65+ (10-mile radius)", 32, theme.Primary),
			stat("market.growth", 0.7, 3.1, 3.6, "{populationGrowth}", "Projected Growth (10-year)", 32, theme.Accent),
			card("market.competition", Rect{4.7, 1.3, 4, 3.2}, "Competitive Landscape"),
			stat("market.competitors", 4.9, 2.0, 3.6, "{competitorCount}", "Competing Facilities", 32, theme.Primary),
			stat("market.occupancy", 4.9, 3.1, 3.6, "{marketOccupancy}", "Market Occupancy Rate", 32, theme.Secondary),
			card("market.rates", Rect{8.9, 1.3, 4, 3.2}, "Market Rates"),
			stat("market.adr", 9.1, 2.0, 3.6, "{averageDailyRate}", "Average Daily Rate", 32, theme.Primary),
			card("market.drivers", Rect{0.5, 4.7, 12.33, 2.1}, "Key Demand Drivers"),
			[]Region{{ID: "market.drivers", Kind: KindList, Rect: Rect{0.9, 5.3, 5.8, 0.35},
				Step: 0.4, PerRow: 2, ColStep: 6, Prefix: "• ", Style: bodyText,
				Source: &ListSource{Field: "demandDrivers", Max: 4}}},
		),
	}
}

type phase struct {
	name, duration, activities string
}

var developmentPhases = []phase{
	{"Pre-Development", "0-3 months", "Entitlements, permits, financing"},
	{"Construction", "3-18 months", "Ground-up development"},
	{"Licensing", "18-21 months", "State licensing, CMS certification"},
	{"Stabilization", "21-30 months", "Ramp to stabilization"},
}

func developmentPlanSlide() SlideSpec {
	regions := []Region{
		{ID: "development.track", Kind: KindShape, Rect: Rect{0.5, 1.8, 12.33, 0.15},
			Style: Style{Fill: tintTrack, Shape: ShapeRect}},
	}
	for i, ph := range developmentPhases {
		x := 0.5 + float64(i)*3.08
		id := fmt.Sprintf("development.phase%d", i+1)
		regions = append(regions,
			Region{ID: id + ".box", Kind: KindShape, Rect: Rect{x, 2.2, 2.9, 1.8}, Style: cardBox},
			Region{ID: id + ".dot", Kind: KindShape, Rect: Rect{x + 1.3, 1.7, 0.3, 0.3},
				Style: Style{Fill: theme.Primary, Shape: ShapeEllipse}},
			Region{ID: id + ".number", Kind: KindText, Rect: Rect{x + 1.3, 1.72, 0.3, 0.25}, Text: fmt.Sprint(i + 1),
				Style: Style{Size: 10, Color: theme.White, Bold: true, Align: AlignCenter}},
			Region{ID: id + ".name", Kind: KindText, Rect: Rect{x + 0.1, 2.35, 2.7, 0.35}, Text: ph.name,
				Style: Style{Size: 12, Color: theme.Primary, Bold: true, Align: AlignCenter}},
			Region{ID: id + ".duration", Kind: KindText, Rect: Rect{x + 0.1, 2.7, 2.7, 0.25}, Text: ph.duration,
				Style: Style{Size: 10, Color: theme.Secondary, Align: AlignCenter}},
			Region{ID: id + ".activities", Kind: KindText, Rect: Rect{x + 0.1, 3.0, 2.7, 0.8}, Text: ph.activities,
				Style: Style{Size: 9, Color: theme.TextLight, Align: AlignCenter}},
		)
	}

	return SlideSpec{
		Name:   "Development Plan",
		Master: MasterContent,
		Title:  "Development Plan",
		Regions: join(
			regions,
			card("development.specs", Rect{0.5, 4.3, 6, 2.5}, "Facility Specifications"),
			[]Region{{ID: "development.specs", Kind: KindTable, Rect: Rect{0.9, 4.9, 5.3, 0.35}, Step: 0.4,
				Columns: []Column{{X: 0.9, W: 2.2, Style: labelCell}, {X: 3.2, W: 3.0, Style: valueCell}},
				Rows: [][]string{
					{"Facility Type:", "{facilityType}"},
					{"Licensed Beds:", "{bedCount}"},
					{"Building Size:", "{squareFootage}"},
					{"General Contractor:", "{generalContractor}"},
				}}},
			card("development.budget", Rect{6.8, 4.3, 6, 2.5}, "Development Budget"),
			[]Region{
				{ID: "development.budget.total", Kind: KindText, Rect: Rect{7.0, 4.9, 5.6, 0.6},
					Text:  "{totalProjectCost}",
					Style: Style{Size: 28, Color: theme.Primary, Bold: true, Align: AlignCenter}},
				{ID: "development.budget.label", Kind: KindText, Rect: Rect{7.0, 5.5, 5.6, 0.3},
					Text: "Total Project Cost", Style: Style{Size: 11, Color: theme.TextLight, Align: AlignCenter}},
				{ID: "development.budget.perBed", Kind: KindText, Rect: Rect{7.0, 5.9, 5.6, 0.3},
					When:  []string{"constructionCostPerBed"},
					Text:  "{constructionCostPerBed} per bed",
					Style: Style{Size: 11, Color: theme.Secondary, Align: AlignCenter}},
			},
		),
	}
}

func teamSlide() SlideSpec {
	var tiles []Region
	for i, m := range [][2]string{
		{"{priorDeals}", "Deals"},
		{"{assetsUnderManagement}", "AUM"},
		{"{priorReturns}", "Avg IRR"},
	} {
		x := 7.2 + float64(i)*1.9
		id := fmt.Sprintf("team.track%d", i+1)
		tiles = append(tiles,
			Region{ID: id + ".value", Kind: KindText, Rect: Rect{x, 2.0, 1.7, 0.5}, Text: m[0],
				Style: Style{Size: 22, Color: theme.Primary, Bold: true, Align: AlignCenter}},
			Region{ID: id + ".label", Kind: KindText, Rect: Rect{x, 2.5, 1.7, 0.3}, Text: m[1], Style: caption},
		)
	}

	return SlideSpec{
		Name:   "Team",
		Master: MasterContent,
		Title:  "Team & Track Record",
		Regions: join(
			card("team.sponsor", Rect{0.5, 1.3, 6, 4}, "Sponsor Profile"),
			[]Region{
				{ID: "team.sponsor.name", Kind: KindText, Rect: Rect{0.7, 1.9, 5.6, 0.4},
					Text: "{sponsorName}", Style: Style{Size: 18, Color: theme.Text, Bold: true}},
				{ID: "team.sponsor.details", Kind: KindList, Rect: Rect{0.9, 2.4, 5.4, 0.4}, Step: 0.45, Prefix: "• ",
					Style: Style{Size: 12, Color: theme.Text},
					Items: []string{
						"{sponsorExperience}",
						"{priorDeals} deals completed",
						"{assetsUnderManagement} assets under management",
						"{priorReturns} average investor IRR",
						"{coInvestAmount} co-investment in this deal",
					}},
			},
			card("team.track", Rect{6.8, 1.3, 6, 2.3}, "Track Record"),
			tiles,
			card("team.operations", Rect{6.8, 3.8, 6, 1.5}, "Operations"),
			[]Region{
				{ID: "team.operator", Kind: KindText, Rect: Rect{7.2, 4.4, 5.4, 0.35}, Style: bodyText,
					Text: "Operator: {operator}"},
				{ID: "team.management", Kind: KindText, Rect: Rect{7.2, 4.8, 5.4, 0.35}, Style: bodyText,
					When: []string{"managementTeam"},
					Text: "Management: {managementTeam}"},
				{ID: "team.alignment.box", Kind: KindShape, Rect: Rect{0.5, 5.5, 12.33, 1.3},
					Style: Style{Fill: theme.Primary, Shape: ShapeRoundRect}},
				{ID: "team.alignment.title", Kind: KindText, Rect: Rect{0.7, 5.65, 12, 0.35},
					Text: "Investor Alignment", Style: Style{Size: 14, Color: theme.White, Bold: true}},
				{ID: "team.alignment", Kind: KindText, Rect: Rect{0.7, 6.1, 12, 0.5},
					Style: Style{Size: 12, Color: tintPale},
					Text: "GP is co-investing {coInvestAmount} of equity alongside LPs, ensuring aligned interests " +
						"throughout the project lifecycle."},
			},
		),
	}
}

func financialsSlide() SlideSpec {
	var tiles []Region
	for i, m := range [][2]string{
		{"{projectedIRR}", "Projected IRR"},
		{"{equityMultiple}", "Equity Multiple"},
		{"{cashOnCash}", "Cash-on-Cash"},
		{"{holdPeriod}", "Hold Period"},
	} {
		x := 0.5 + float64(i)*3.15
		id := fmt.Sprintf("financials.return%d", i+1)
		tiles = append(tiles,
			Region{ID: id + ".box", Kind: KindShape, Rect: Rect{x, 1.3, 2.95, 1.5}, Style: cardBox},
			Region{ID: id + ".value", Kind: KindText, Rect: Rect{x, 1.5, 2.95, 0.7}, Text: m[0],
				Style: Style{Size: 28, Color: theme.Primary, Bold: true, Align: AlignCenter}},
			Region{ID: id + ".label", Kind: KindText, Rect: Rect{x, 2.2, 2.95, 0.4}, Text: m[1],
				Style: Style{Size: 11, Color: theme.TextLight, Align: AlignCenter}},
		)
	}

	return SlideSpec{
		Name:   "Financials",
		Master: MasterContent,
		Title:  "Financial Projections",
		Regions: join(
			tiles,
			[]Region{{ID: "financials.noi", Kind: KindChart, Rect: Rect{0.5, 3.0, 6, 3.5},
				Chart: ChartBar, ChartTitle: "Projected NOI Growth", Figure: FigureNOI,
				Style: Style{Size: 12, Color: theme.Text}}},
			card("financials.valuation", Rect{6.8, 3.0, 6, 3.5}, "Valuation Analysis"),
			[]Region{
				{ID: "financials.valuation", Kind: KindTable, Rect: Rect{7.2, 3.6, 5.4, 0.35}, Step: 0.35,
					Columns: []Column{
						{X: 7.2, W: 2.8, Style: labelCell},
						{X: 10.2, W: 2.4, Style: Style{Size: 11, Color: theme.Text, Bold: true, Align: AlignRight}},
					},
					Rows: [][]string{
						{"Going-In Cap Rate", "{goingInCapRate}"},
						{"Exit Cap Rate", "{exitCapRate}"},
						{"Stabilized NOI", "{projectedNOI}"},
						{"Total Raise", "{totalRaise}"},
						{"Debt Financing", "{debtFinancing}"},
					}},
				{ID: "financials.assumptions.title", Kind: KindText, Rect: Rect{7.2, 5.45, 5.4, 0.3},
					Text: "Key Assumptions:", Style: Style{Size: 10, Color: theme.Primary, Bold: true}},
				{ID: "financials.assumptions", Kind: KindText, Rect: Rect{7.2, 5.75, 5.4, 0.7},
					Figure: FigureAssumptions, Style: Style{Size: 9, Color: theme.TextLight}},
			},
		),
	}
}

func dealStructureSlide() SlideSpec {
	headCell := Style{Size: 10, Color: theme.TextLight, Bold: true}
	return SlideSpec{
		Name:   "Deal Structure",
		Master: MasterContent,
		Title:  "Deal Structure",
		Regions: join(
			card("deal.terms", Rect{0.5, 1.3, 6, 4.9}, "Investment Terms"),
			[]Region{
				{ID: "deal.terms", Kind: KindTable, Rect: Rect{0.9, 1.9, 5.4, 0.4}, Step: 0.55,
					Columns: []Column{
						{X: 0.9, W: 2.8, Style: Style{Size: 12, Color: theme.TextLight}},
						{X: 3.8, W: 2.5, Style: Style{Size: 12, Color: theme.Text, Bold: true, Align: AlignRight}},
					},
					Rows: [][]string{
						{"Total Raise", "{totalRaise}"},
						{"Minimum Investment", "{minimumInvestment}"},
						{"Preferred Return", "{preferredReturn}"},
						{"Distribution Frequency", "{distributionFrequency}"},
						{"Hold Period", "{holdPeriod}"},
						{"GP Co-Invest", "{coInvestAmount}"},
					}},
				{ID: "deal.fees.title", Kind: KindText, Rect: Rect{0.7, 5.1, 5.6, 0.35},
					Text: "Fee Structure", Style: Style{Size: 12, Color: theme.Primary, Bold: true}},
				{ID: "deal.fees", Kind: KindList, Rect: Rect{0.9, 5.45, 2.6, 0.3}, Step: 0.35, PerRow: 2, ColStep: 2.8,
					Style: Style{Size: 10, Color: theme.TextLight},
					Items: []string{
						"Acquisition Fee: {acquisitionFee}",
						"Asset Management: {managementFee}",
						"Disposition Fee: {dispositionFee}",
					}},
			},
			card("deal.waterfall", Rect{6.8, 1.3, 6, 4.9}, "Waterfall Structure"),
			[]Region{
				{ID: "deal.waterfall.header", Kind: KindTable, Rect: Rect{7.2, 2.0, 5.0, 0.35},
					Columns: []Column{
						{X: 7.2, W: 0.6, Style: headCell},
						{X: 7.9, W: 2.5, Style: headCell},
						{X: 10.5, W: 0.8, Style: Style{Size: 10, Color: theme.TextLight, Bold: true, Align: AlignCenter}},
						{X: 11.4, W: 0.8, Style: Style{Size: 10, Color: theme.TextLight, Bold: true, Align: AlignCenter}},
					},
					Rows: [][]string{{"Tier", "Threshold", "LP", "GP"}}},
				{ID: "deal.waterfall", Kind: KindTable, Rect: Rect{7.2, 2.4, 5.0, 0.45}, Step: 0.55,
					Columns: []Column{
						{X: 7.2, W: 0.6, Style: Style{Size: 11, Color: theme.Primary, Bold: true, Align: AlignCenter}},
						{X: 7.9, W: 2.5, Style: Style{Size: 10, Color: theme.Text}},
						{X: 10.5, W: 0.8, Style: Style{Size: 11, Color: theme.Secondary, Bold: true, Align: AlignCenter}},
						{X: 11.4, W: 0.8, Style: Style{Size: 11, Color: theme.Text, Align: AlignCenter}},
					},
					Rows: [][]string{
						{"1", "Return of Capital", "100%", "0%"},
						{"2", "Pref Return ({preferredReturn})", "100%", "0%"},
						{"3", "Up to 12% IRR", "80%", "20%"},
						{"4", "Above 12% IRR", "70%", "30%"},
					}},
				{ID: "deal.waterfall.note", Kind: KindText, Rect: Rect{7.0, 4.9, 5.6, 0.7},
					Style: Style{Size: 9, Color: theme.TextLight, Italic: true},
					Text:  "{waterfallStructure}"},
			},
		),
	}
}

func useOfFundsSlide() SlideSpec {
	return SlideSpec{
		Name:   "Use of Funds",
		Master: MasterContent,
		Title:  "Use of Funds",
		Regions: join(
			[]Region{{ID: "funds.capitalStack", Kind: KindChart, Rect: Rect{0.5, 1.3, 5.5, 4},
				Chart: ChartDoughnut, ChartTitle: "Capital Stack", Figure: FigureCapitalStack,
				Style: Style{Size: 14, Color: theme.Text}}},
			card("funds.proceeds", Rect{6.5, 1.3, 6.33, 5.5}, "Use of Proceeds"),
			[]Region{
				{ID: "funds.total", Kind: KindText, Rect: Rect{6.7, 1.9, 5.9, 0.4},
					Text: "Total Project Cost: {totalProjectCost}", Style: Style{Size: 16, Color: theme.Text, Bold: true}},
				// Rect.W is the length of a 100% bar; each bar sits below its label row.
				{ID: "funds.proceeds", Kind: KindBars, Rect: Rect{6.9, 2.5, 4.5, 0.25}, Step: 0.6,
					Figure: FigureProceeds, Style: Style{Fill: theme.Primary, Shape: ShapeRect},
					Columns: []Column{
						{X: 6.9, W: 3, Style: Style{Size: 10, Color: theme.Text}},
						{X: 10.2, W: 1.3, Style: Style{Size: 10, Color: theme.Text, Bold: true, Align: AlignRight}},
						{X: 11.6, W: 0.8, Style: Style{Size: 10, Color: theme.TextLight, Align: AlignRight}},
					}},
				{ID: "funds.equity.title", Kind: KindText, Rect: Rect{6.7, 6.15, 5.9, 0.3},
					Text: "Equity Breakdown", Style: Style{Size: 12, Color: theme.Primary, Bold: true}},
				{ID: "funds.equity", Kind: KindText, Rect: Rect{6.7, 6.45, 5.9, 0.3},
					Text:  "LP Equity: {totalRaise} | GP Co-Invest: {coInvestAmount}",
					Style: Style{Size: 10, Color: theme.TextLight}},
			},
		),
	}
}

type exitScenario struct {
	name, description, timeline string
}

var exitScenarios = []exitScenario{
	{"Sale to Institutional Buyer", "REIT, private equity, or regional operator acquisition at stabilization", "Year 5-7"},
	{"Refinance & Hold", "Cash-out refinance with continued operation and LP distributions", "Year 4-5"},
	{"Portfolio Sale", "Sale as part of larger multi-facility portfolio transaction", "Year 6-8"},
}

func exitSlide() SlideSpec {
	var names [][]string
	var descriptions []string
	for _, s := range exitScenarios {
		names = append(names, []string{s.name, s.timeline})
		descriptions = append(descriptions, s.description)
	}
	contact := Style{Size: 11, Color: theme.White}

	return SlideSpec{
		Name:   "Exit",
		Master: MasterContent,
		Title:  "Exit Strategy & Next Steps",
		Regions: join(
			card("exit.scenarios", Rect{0.5, 1.3, 8, 3.2}, "Exit Scenarios"),
			[]Region{
				{ID: "exit.scenarios", Kind: KindTable, Rect: Rect{0.9, 1.95, 5.6, 0.35}, Step: 0.85,
					Columns: []Column{
						{X: 0.9, W: 4, Style: Style{Size: 12, Color: theme.Text, Bold: true}},
						{X: 5, W: 1.5, Style: Style{Size: 11, Color: theme.Secondary, Bold: true}},
					},
					Rows: names},
				{ID: "exit.scenarios.detail", Kind: KindList, Rect: Rect{0.9, 2.3, 7.4, 0.35}, Step: 0.85,
					Style: Style{Size: 10, Color: theme.TextLight}, Items: descriptions},
			},
			card("exit.timeline", Rect{8.8, 1.3, 4, 3.2}, "Timeline"),
			[]Region{
				{ID: "exit.hold", Kind: KindText, Rect: Rect{9.0, 1.9, 3.6, 0.6}, Text: "{holdPeriod}",
					Style: Style{Size: 24, Color: theme.Primary, Bold: true, Align: AlignCenter}},
				{ID: "exit.hold.label", Kind: KindText, Rect: Rect{9.0, 2.5, 3.6, 0.3}, Text: "Target Hold Period", Style: caption},
				{ID: "exit.strategy", Kind: KindText, Rect: Rect{9.0, 3.0, 3.6, 0.8},
					Text:  "{exitStrategy}",
					Style: Style{Size: 10, Color: theme.Text, Align: AlignCenter}},
				{ID: "exit.cta.box", Kind: KindShape, Rect: Rect{0.5, 4.7, 12.33, 2.1},
					Style: Style{Fill: theme.Primary, Shape: ShapeRoundRect}},
				{ID: "exit.cta.title", Kind: KindText, Rect: Rect{0.7, 4.9, 12, 0.4},
					Text: "Next Steps", Style: Style{Size: 18, Color: theme.White, Bold: true}},
				{ID: "exit.cta", Kind: KindList, Rect: Rect{0.9, 5.4, 11.7, 0.35}, Step: 0.4,
					Style: Style{Size: 12, Color: tintPale},
					Items: []string{
						"1. Schedule a call to discuss the opportunity in detail",
						"2. Review the Private Placement Memorandum (PPM)",
						"3. Complete subscription documents and fund your investment",
					}},
				{ID: "exit.contact", Kind: KindText, Rect: Rect{0.7, 6.55, 12, 0.25}, Style: contact,
					When: []string{"companyName"},
					Text: "Contact: {sponsorName|companyName} | {companyName}"},
				{ID: "exit.contact.sponsor", Kind: KindText, Rect: Rect{0.7, 6.55, 12, 0.25}, Style: contact,
					Unless: []string{"companyName"},
					Text:   "Contact: {sponsorName}"},
			},
		),
	}
}
