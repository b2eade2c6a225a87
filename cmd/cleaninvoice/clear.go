package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jvaldeza/cleaninvoice/internal/service"
)

func newClearCmd(invoiceService *service.InvoiceService) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear the working draft",
		Long:  "Reset the working draft to its empty state, discarding its line items. Saved invoices are not touched.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if !force {
				ok, err := confirm("This will discard the current draft. Are you sure? (y/N): ")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println("Operation cancelled.")
					return nil
				}
			}

			if err := invoiceService.ClearDraft(ctx); err != nil {
				return err
			}

			fmt.Println("Current invoice cleared")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")

	return cmd
}
