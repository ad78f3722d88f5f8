package llm

import (
	"fmt"
	"strings"

	"github.com/realty-decks/deck-backend/internal/deck/domain"
)

const interviewPrompt = `You are an expert real estate investment analyst and pitch deck strategist specializing in healthcare real estate, particularly skilled nursing facilities (SNF), assisted living facilities (ALF), and residential care facilities for the elderly (RCFE).

Your role is to gather comprehensive information from a real estate developer to create a professional investor deck for raising capital from Limited Partners (LPs).

## Your Approach

1. Ask questions ONE CATEGORY AT A TIME in a conversational, professional manner
2. Start with the most important questions first, then gather supporting details
3. Validate responses - if something seems unrealistic (e.g., 50% IRR), politely ask for clarification
4. Explain WHY you're asking when it helps the user understand what investors look for
5. Be encouraging but professional - this is a serious capital raise

## Categories (in order)

### 1. SITE & PROPERTY (site)
Essential: Property address, lot size, zoning classification, entitlement status
Important: Is land owned or under contract? Purchase price or current basis

### 2. DEVELOPMENT PLAN (development)
Essential: Facility type (SNF/ALF/RCFE), bed count, total project cost
Important: Construction timeline, contractor identified, license status

### 3. MARKET ANALYSIS (market)
Essential: Target market demographics (65+ population), competitor analysis
Important: Market occupancy rates, average daily rates, demand drivers

### 4. FINANCIALS (financials)
Essential: Total raise amount, projected NOI, IRR, equity multiple
Important: Cap rates (going-in vs exit), cash-on-cash, hold period

### 5. TEAM & TRACK RECORD (team)
Essential: Sponsor name, healthcare RE experience, prior deal returns
Important: AUM, co-investment amount, operator/management

### 6. DEAL TERMS (terms)
Essential: Minimum investment, preferred return, waterfall structure
Important: Fees, distribution frequency, exit strategy

## Response Format

When gathering information:
- Ask 2-4 related questions at once (not overwhelming)
- Use bullet points for clarity
- Acknowledge answers before moving to next topic
- If user says "I don't know" or seems unsure, offer industry benchmarks

Always answer with a single JSON object and nothing else:
{"reply": "<your message to the user, markdown allowed>", "categoryComplete": "<category key or empty>", "allComplete": false}

Set "categoryComplete" to the key in parentheses above (site, development, market, financials, team, terms) in the message where you finish that category.
Set "allComplete" to true once every category is complete, and tell the user they are ready to generate their investor deck.

## Key Metrics to Validate

- IRR: 12-25% is realistic for development; flag if claiming 30%+
- Preferred Return: 6-10% is standard; flag if outside this range
- Cap Rates: SNF typically 10-14%; flag if claiming sub-8%
- Hold Period: 3-7 years is typical; flag if under 2 years
- GP Co-invest: 3-10% shows skin in game; note if lower

## Tone

Professional but warm. You're helping them create something that will secure millions in capital. Be thorough but not tedious. Move efficiently through the questions while ensuring you capture everything investors need to see.`

// InitialMessage greets the user before the first model call.
const InitialMessage = `Welcome! I'm here to help you create a professional investor deck for your real estate development project.

I'll walk you through a series of questions to gather everything investors need to see. The whole process takes about 10-15 minutes, and you'll get a polished, professional PowerPoint deck at the end.

**Before we start, please make sure you've uploaded your company logo and selected your brand colors in the panel on the right.**

Let's begin with the basics about your property.

• What is the **property address** or location for this development?
• What is the **lot size** (in acres or square feet)?
• What is the current **zoning classification**, and is the property already entitled for healthcare/residential care use?`

// SystemPrompt appends the data collected so far, in field order, to the
// interviewer persona.
func SystemPrompt(data domain.ProjectData) string {
	var lines []string
	for _, f := range domain.Fields() {
		if v := strings.TrimSpace(data.Get(f)); v != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", f, v))
		}
	}
	if len(lines) == 0 {
		return interviewPrompt
	}
	return interviewPrompt + "\n\n## Data Collected So Far\n" + strings.Join(lines, "\n")
}

var fieldHints = map[domain.Field]string{
	domain.FieldProjectName:            "project or company name",
	domain.FieldPropertyAddress:        "full address",
	domain.FieldLotSize:                "size with units",
	domain.FieldZoning:                 "zoning classification",
	domain.FieldZoningStatus:           "entitled/pending/needs variance",
	domain.FieldPurchasePrice:          "land price with $",
	domain.FieldLandOwnership:          "owned/under contract",
	domain.FieldFacilityType:           "SNF/ALF/RCFE",
	domain.FieldBedCount:               "number",
	domain.FieldSquareFootage:          "sq ft",
	domain.FieldConstructionTimeline:   "months/timeline",
	domain.FieldTotalProjectCost:       "with $",
	domain.FieldConstructionCostPerBed: "cost per bed with $",
	domain.FieldLicenseType:            "license type",
	domain.FieldGeneralContractor:      "contractor name",
	domain.FieldMarketLocation:         "market/area name",
	domain.FieldPopulation65Plus:       "population number",
	domain.FieldPopulation85Plus:       "population number",
	domain.FieldPopulationGrowth:       "growth %",
	domain.FieldCompetitorCount:        "number",
	domain.FieldMarketOccupancy:        "occupancy %",
	domain.FieldAverageDailyRate:       "rate with $",
	domain.FieldDemandDrivers:          "comma separated list",
	domain.FieldTotalRaise:             "equity raise with $",
	domain.FieldEquityStructure:        "LP/GP split",
	domain.FieldDebtFinancing:          "debt amount and terms",
	domain.FieldProjectedNOI:           "NOI with $",
	domain.FieldProjectedIRR:           "IRR %",
	domain.FieldCashOnCash:             "CoC %",
	domain.FieldEquityMultiple:         "multiple like 2.1x",
	domain.FieldGoingInCapRate:         "cap rate %",
	domain.FieldExitCapRate:            "exit cap %",
	domain.FieldHoldPeriod:             "years",
	domain.FieldSponsorName:            "sponsor/company name",
	domain.FieldSponsorExperience:      "years/description",
	domain.FieldPriorDeals:             "number of deals",
	domain.FieldPriorReturns:           "average returns",
	domain.FieldAssetsUnderManagement:  "AUM with $",
	domain.FieldCoInvestAmount:         "GP co-invest amount or %",
	domain.FieldOperator:               "operator name",
	domain.FieldManagementTeam:         "team description",
	domain.FieldMinimumInvestment:      "minimum with $",
	domain.FieldPreferredReturn:        "pref return %",
	domain.FieldWaterfallStructure:     "waterfall description",
	domain.FieldManagementFee:          "fee %",
	domain.FieldAcquisitionFee:         "fee %",
	domain.FieldDispositionFee:         "fee %",
	domain.FieldDistributionFrequency:  "quarterly/monthly/etc",
	domain.FieldExitStrategy:           "exit plan",
}

// ExtractionPrompt asks the model to turn a transcript into ProjectData JSON.
func ExtractionPrompt(messages []Message) string {
	turns := make([]string, 0, len(messages))
	for _, m := range messages {
		turns = append(turns, fmt.Sprintf("%s: %s", m.Role, m.Content))
	}

	var schema strings.Builder
	schema.WriteString("{\n")
	all := domain.Fields()
	for i, f := range all {
		hint := fieldHints[f]
		if hint == "" {
			hint = f.Label()
		}
		fmt.Fprintf(&schema, "  %q: \"string - %s\"", string(f), hint)
		if i < len(all)-1 {
			schema.WriteString(",")
		}
		schema.WriteString("\n")
	}
	schema.WriteString("}")

	return "Extract all project data from this conversation into a structured JSON format. " +
		"Only include fields that have actual values mentioned - don't guess or make up data.\n\n" +
		"CONVERSATION:\n" + strings.Join(turns, "\n\n") + "\n\n" +
		"Return ONLY valid JSON (no markdown, no explanation) with these fields (include only fields that have values):\n" +
		schema.String()
}
