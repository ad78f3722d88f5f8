// Package cli implements the deckgen command line tool.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/realty-decks/deck-backend/internal/deck/catalog"
	"github.com/realty-decks/deck-backend/internal/deck/domain"
)

// NewRootCmd creates the top-level "deckgen" command. now pins generated
// dates; nil means time.Now.
func NewRootCmd(now func() time.Time) *cobra.Command {
	if now == nil {
		now = time.Now
	}
	root := &cobra.Command{
		Use:           "deckgen",
		Short:         "Build investor decks from collected project data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRenderCmd(now),
		newPromptCmd(),
		newCatalogCmd(),
	)
	return root
}

// inputs are the files shared by render and prompt.
type inputs struct {
	dataPath    string
	brandPath   string
	figuresPath string
}

func (in *inputs) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&in.dataPath, "data", "d", "", "project data JSON file")
	cmd.Flags().StringVarP(&in.brandPath, "brand", "b", "", "brand config JSON file")
	cmd.Flags().StringVarP(&in.figuresPath, "figures", "f", "", "illustrative figures YAML file")
}

func (in *inputs) load() (domain.ProjectData, domain.BrandConfig, catalog.Figures, error) {
	var (
		data  domain.ProjectData
		brand domain.BrandConfig
	)
	figures := catalog.DefaultFigures()

	if in.dataPath != "" {
		var raw map[string]string
		if err := readJSON(in.dataPath, &raw); err != nil {
			return data, brand, figures, fmt.Errorf("read project data: %w", err)
		}
		data = domain.FromMap(raw)
	}
	if in.brandPath != "" {
		if err := readJSON(in.brandPath, &brand); err != nil {
			return data, brand, figures, fmt.Errorf("read brand: %w", err)
		}
	}
	if in.figuresPath != "" {
		f, err := catalog.LoadFigures(in.figuresPath)
		if err != nil {
			return data, brand, figures, err
		}
		figures = f
	}
	return data, brand, figures, nil
}

func readJSON(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
