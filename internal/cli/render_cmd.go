package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/realty-decks/deck-backend/internal/deck/assembler"
	"github.com/realty-decks/deck-backend/internal/deck/render"
)

func newRenderCmd(now func() time.Time) *cobra.Command {
	var (
		in  inputs
		out string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a .pptx deck from project data",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, brand, figures, err := in.load()
			if err != nil {
				return err
			}

			t := now()
			pptx, err := render.PPTX(assembler.Assemble(brand, data, assembler.Options{Figures: &figures, Now: t}))
			if err != nil {
				return err
			}

			if out == "" {
				out = render.FileName(data.ProjectName, t)
			}
			if err := os.WriteFile(out, pptx, 0o644); err != nil {
				return fmt.Errorf("write deck: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", out, len(pptx))
			return nil
		},
	}
	in.bind(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default {projectName}-{date}.pptx)")
	return cmd
}
