package commands

import (
	"fmt"
	"strings"

	"github.com/de-tools/sales-atlas/pkg/services/report"
	"github.com/spf13/cobra"
)

func NewFormulasCmd(service report.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "formulas",
		Short: "List registered revenue and bonus formulas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			revenue, bonus := service.Formulas()
			fmt.Fprintf(cmd.OutOrStdout(), "Revenue formulas:\n  %s\nBonus formulas:\n  %s\n",
				strings.Join(revenue, "\n  "),
				strings.Join(bonus, "\n  "))
			return nil
		},
	}
}
