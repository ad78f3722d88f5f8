package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/realty-decks/deck-backend/internal/deck/catalog"
)

func newCatalogCmd() *cobra.Command {
	var regions bool
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the slides of the deck layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tSLIDE\tMASTER\tTITLE\tREGIONS")
			for i, s := range catalog.Slides() {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n", i+1, s.Name, s.Master, s.Title, len(s.Regions))
				if !regions {
					continue
				}
				for _, r := range s.Regions {
					cond := ""
					if len(r.When) > 0 {
						cond = "when " + strings.Join(r.When, ",")
					}
					fmt.Fprintf(w, "\t  %s\t%s\t%s\t\n", r.ID, r.Kind, cond)
				}
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVarP(&regions, "regions", "r", false, "also list each slide's regions")
	return cmd
}
