package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/realty-decks/deck-backend/internal/gamma"
)

func newPromptCmd() *cobra.Command {
	var (
		in      inputs
		company string
	)
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the Gamma generation prompt for project data",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, brand, figures, err := in.load()
			if err != nil {
				return err
			}
			if company == "" {
				company = brand.CompanyName
			}
			fmt.Fprintln(cmd.OutOrStdout(), gamma.BuildPrompt(data, company, figures))
			return nil
		},
	}
	in.bind(cmd)
	cmd.Flags().StringVarP(&company, "company", "c", "", "company name (defaults to the brand's)")
	return cmd
}
