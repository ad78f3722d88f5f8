package gamma

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/realty-decks/deck-backend/internal/deck/catalog"
	"github.com/realty-decks/deck-backend/internal/deck/domain"
	"github.com/realty-decks/deck-backend/internal/deck/fields"
)

const promptOverview = `Create a professional investor pitch deck for a real estate development project.

# PROJECT OVERVIEW
Project Name: {projectName|companyName}
Property Address: {propertyAddress}
Facility Type: {facilityType}
Total Raise: {totalRaise} LP Equity

# SLIDES TO CREATE

## Slide 1: Cover
- Project name: {projectName|companyName}
- Tagline: "{totalRaise} Equity Investment Opportunity"
- Location: {propertyAddress|marketLocation}
- Add "CONFIDENTIAL" at bottom

## Slide 2: Executive Summary
Key Investment Highlights (bullet points):
- {facilityType} Development
- {bedCount} Licensed Beds
- Development timeline: {constructionTimeline}
- Projected {projectedIRR} IRR
- {preferredReturn} Preferred Return to LPs

Key Metrics Table:
| Metric | Value |
| Total Raise | {totalRaise} |
| Total Project Cost | {totalProjectCost} |
| Projected IRR | {projectedIRR} |
| Equity Multiple | {equityMultiple} |
| Cash-on-Cash | {cashOnCash} |
| Hold Period | {holdPeriod} |

## Slide 3: The Opportunity
Property Details:
- Address: {propertyAddress}
- Lot Size: {lotSize}
- Zoning: {zoning}
- Status: {zoningStatus}
- Land Basis: {purchasePrice}

Development Overview:
- Facility Type: {facilityType}
- Beds: {bedCount}
- Square Footage: {squareFootage}
- Timeline: {constructionTimeline}
- Total Cost: {totalProjectCost}

## Slide 4: Market Analysis
Create compelling data visualization showing:
- Population 65+: {population65Plus} in 10-mile radius
- Population Growth: {populationGrowth} projected over 10 years
- Competing Facilities: {competitorCount} in market
- Market Occupancy: {marketOccupancy}
- Average Daily Rate: {averageDailyRate}

Key Demand Drivers: {demandDrivers}

## Slide 5: Development Plan
Show a timeline with 4 phases:
1. Pre-Development (0-3 months): Permits, financing
2. Construction (3-18 months): Ground-up build
3. Licensing (18-21 months): State certification
4. Stabilization (21-30 months): Lease-up to 90%+ occupancy

Facility Specifications:
- {bedCount} beds
- {squareFootage} square feet
- General Contractor: {generalContractor}

Total Development Budget: {totalProjectCost}

## Slide 6: Team & Track Record
Sponsor Profile: {sponsorName}
- {sponsorExperience}
- {priorDeals} deals completed
- {assetsUnderManagement} AUM
- {priorReturns} average investor IRR
- {coInvestAmount} GP co-investment

Operator: {operator}

## Slide 7: Financial Projections
`

const promptReturns = `
Key Returns:
- Projected IRR: {projectedIRR}
- Equity Multiple: {equityMultiple}
- Cash-on-Cash: {cashOnCash}
- Going-In Cap: {goingInCapRate}
- Exit Cap: {exitCapRate}

## Slide 8: Deal Structure
Investment Terms:
| Term | Value |
| Total Raise | {totalRaise} |
| Minimum Investment | {minimumInvestment} |
| Preferred Return | {preferredReturn} |
| Distributions | {distributionFrequency} |
| Hold Period | {holdPeriod} |
| GP Co-Invest | {coInvestAmount} |

Waterfall Structure:
- Tier 1: Return of Capital → 100% to LP
- Tier 2: {preferredReturn} Preferred Return → 100% to LP
- Tier 3: Up to 12% IRR → 80% LP / 20% GP
- Tier 4: Above 12% IRR → 70% LP / 30% GP

Fees: Acquisition {acquisitionFee}, Management {managementFee}, Disposition {dispositionFee}

## Slide 9: Use of Funds
`

const promptExit = `
## Slide 10: Exit Strategy & Next Steps
Exit Scenarios:
1. Sale to REIT/PE (Year 5-7)
2. Refinance & Hold (Year 4-5)
3. Portfolio Sale (Year 6-8)

Target Hold Period: {holdPeriod}
Primary Strategy: {exitStrategy}

Next Steps:
1. Schedule a call to discuss the opportunity
2. Review the Private Placement Memorandum
3. Complete subscription documents

Contact: {sponsorName|companyName}

# STYLE INSTRUCTIONS
- Use a professional, clean design suitable for institutional investors
- Color scheme should be corporate blue/navy with accent colors
- Include relevant stock images of healthcare facilities, seniors, and medical settings
- Charts should be clean and easy to read
- Make it look like a top-tier investment bank pitch deck`

// BuildPrompt renders the markdown brief sent to the generator. It shares
// the field fallback rules with the slide catalog and takes the chart
// numbers from figs.
func BuildPrompt(data domain.ProjectData, companyName string, figs catalog.Figures) string {
	v := fields.NewValues(data, companyName)

	var b strings.Builder
	b.WriteString(fields.Expand(promptOverview, v))

	fmt.Fprintf(&b, "Create a bar chart showing NOI growth over %d years:\n", len(figs.NOI.Values))
	points := make([]string, 0, len(figs.NOI.Values))
	for i, val := range figs.NOI.Values {
		label := fmt.Sprintf("Year %d", i+1)
		if i < len(figs.NOI.Labels) {
			label = figs.NOI.Labels[i]
		}
		points = append(points, fmt.Sprintf("%s: $%sK", label, formatNumber(val)))
	}
	b.WriteString(strings.Join(points, ", "))
	b.WriteString("\n")

	b.WriteString(fields.Expand(promptReturns, v))

	b.WriteString("Create a pie chart showing capital stack:\n")
	for i, val := range figs.CapitalStack.Values {
		if i >= len(figs.CapitalStack.Labels) {
			break
		}
		fmt.Fprintf(&b, "- %s: %s%%\n", figs.CapitalStack.Labels[i], formatNumber(val))
	}

	b.WriteString("\nUse of Proceeds breakdown:\n")
	for _, row := range figs.Proceeds {
		fmt.Fprintf(&b, "- %s: %s (%s%%)\n", row.Category, fields.Expand(row.Amount, v), formatNumber(row.Percent))
	}

	b.WriteString(fields.Expand(promptExit, v))
	return b.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
