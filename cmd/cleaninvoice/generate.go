package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jvaldeza/cleaninvoice/internal/service"
)

func newGenerateCmd(invoiceService *service.InvoiceService) *cobra.Command {
	var fromDate, toDate string
	var kitchen, night bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate recurring cleaning items for a date range",
		Long: `Set the draft's billing period and reseed its auto-generated line items for
every Monday-Thursday in the range, using the enabled cleaning types.
Manually added items are kept.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// Flags override the stored cleaning selections before
			// generating, like the toggles on the home screen.
			var kitchenToggle, nightToggle *bool
			if cmd.Flags().Changed("kitchen") {
				kitchenToggle = &kitchen
			}
			if cmd.Flags().Changed("night") {
				nightToggle = &night
			}
			if kitchenToggle != nil || nightToggle != nil {
				if _, err := invoiceService.UpdateSelections(ctx, kitchenToggle, nightToggle); err != nil {
					return err
				}
			}

			d, err := invoiceService.GenerateDraft(ctx, fromDate, toDate)
			if err != nil {
				return err
			}

			fmt.Printf("Generated invoice #%d with %d items\n", d.InvoiceNumber, len(d.Items))
			invoiceService.DisplayDraft(d)
			return nil
		},
	}

	cmd.Flags().StringVarP(&fromDate, "from", "f", "", "Start of the billing period (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&toDate, "to", "t", "", "End of the billing period (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&kitchen, "kitchen", false, "Enable kitchen cleaning items")
	cmd.Flags().BoolVar(&night, "night", false, "Enable night cleaning items")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")

	return cmd
}
