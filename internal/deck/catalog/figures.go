package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/realty-decks/deck-backend/internal/deck/fields"
)

// Figures are the illustrative numbers shown on the financial visuals.
// They are placeholders, not derived from ProjectData; operators can
// replace them with a YAML file.
type Figures struct {
	NOI          Series        `yaml:"noi" json:"noi"`
	CapitalStack Series        `yaml:"capital_stack" json:"capitalStack"`
	Proceeds     []ProceedsRow `yaml:"proceeds" json:"proceeds"`
	Assumptions  []string      `yaml:"assumptions" json:"assumptions"`
}

type Series struct {
	Name   string    `yaml:"name" json:"name"`
	Labels []string  `yaml:"labels" json:"labels"`
	Values []float64 `yaml:"values" json:"values"`
}

// ProceedsRow is one use-of-proceeds line. Amount is a template, so a row
// may bind to a field such as purchasePrice.
type ProceedsRow struct {
	Category string  `yaml:"category" json:"category"`
	Amount   string  `yaml:"amount" json:"amount"`
	Percent  float64 `yaml:"percent" json:"percent"`
}

var ErrInvalidFigures = errors.New("invalid figures")

func DefaultFigures() Figures {
	return Figures{
		NOI: Series{
			Name:   "NOI ($K)",
			Labels: []string{"Year 1", "Year 2", "Year 3", "Year 4", "Year 5"},
			Values: []float64{200, 450, 650, 750, 800},
		},
		CapitalStack: Series{
			Name:   "Capital Stack",
			Labels: []string{"LP Equity", "GP Equity", "Debt"},
			Values: []float64{60, 10, 30},
		},
		Proceeds: []ProceedsRow{
			{Category: "Land Acquisition", Amount: "{purchasePrice}", Percent: 14},
			{Category: "Hard Construction Costs", Amount: "$5.5M", Percent: 65},
			{Category: "Soft Costs & Permits", Amount: "$800K", Percent: 9},
			{Category: "Financing Costs", Amount: "$400K", Percent: 5},
			{Category: "Operating Reserve", Amount: "$350K", Percent: 4},
			{Category: "Developer Fee", Amount: "$250K", Percent: 3},
		},
		Assumptions: []string{
			"24-month stabilization period",
			"3% annual rent growth",
			"25 bps exit cap expansion",
		},
	}
}

// LoadFigures reads a YAML file. Sections missing from the file keep their
// default values.
func LoadFigures(path string) (Figures, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Figures{}, fmt.Errorf("read figures: %w", err)
	}
	return ParseFigures(raw)
}

func ParseFigures(raw []byte) (Figures, error) {
	var in Figures
	if err := yaml.Unmarshal(raw, &in); err != nil {
		return Figures{}, fmt.Errorf("parse figures: %w", err)
	}

	f := DefaultFigures()
	if len(in.NOI.Values) > 0 {
		f.NOI = in.NOI
	}
	if len(in.CapitalStack.Values) > 0 {
		f.CapitalStack = in.CapitalStack
	}
	if len(in.Proceeds) > 0 {
		f.Proceeds = in.Proceeds
	}
	if len(in.Assumptions) > 0 {
		f.Assumptions = in.Assumptions
	}
	if err := f.Validate(); err != nil {
		return Figures{}, err
	}
	return f, nil
}

func (f Figures) Validate() error {
	for name, s := range map[string]Series{"noi": f.NOI, "capital_stack": f.CapitalStack} {
		if len(s.Labels) != len(s.Values) {
			return fmt.Errorf("%w: %s has %d labels and %d values", ErrInvalidFigures, name, len(s.Labels), len(s.Values))
		}
		for _, v := range s.Values {
			if v < 0 {
				return fmt.Errorf("%w: %s has a negative value", ErrInvalidFigures, name)
			}
		}
	}
	if len(f.Proceeds) > maxProceedsRows {
		return fmt.Errorf("%w: at most %d proceeds rows fit the slide", ErrInvalidFigures, maxProceedsRows)
	}
	for _, p := range f.Proceeds {
		if p.Percent < 0 || p.Percent > 100 {
			return fmt.Errorf("%w: proceeds %q percent %.1f out of range", ErrInvalidFigures, p.Category, p.Percent)
		}
		if err := fields.CheckTemplate(p.Amount); err != nil {
			return fmt.Errorf("%w: proceeds %q amount: %v", ErrInvalidFigures, p.Category, err)
		}
	}
	if len(f.Assumptions) > maxAssumptions {
		return fmt.Errorf("%w: at most %d assumptions fit the slide", ErrInvalidFigures, maxAssumptions)
	}
	for _, a := range f.Assumptions {
		if err := fields.CheckTemplate(a); err != nil {
			return fmt.Errorf("%w: assumption: %v", ErrInvalidFigures, err)
		}
	}
	return nil
}
