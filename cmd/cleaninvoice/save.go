package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jvaldeza/cleaninvoice/internal/service"
)

func newSaveCmd(invoiceService *service.InvoiceService) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save the draft as an immutable invoice",
		Long: `Snapshot the working draft together with the employee and company profiles
into the saved-invoice history, then clear the draft. Saved invoices can be
exported or deleted but never edited.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			invoice, savedTitle, err := invoiceService.SaveInvoice(ctx, title)
			if err != nil {
				return err
			}

			fmt.Printf("Saved invoice \"%s\" (ID: %s, Total: %s)\n",
				savedTitle, invoice.ID, invoiceService.FormatAmount(invoice.TotalAmount))
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Invoice title (default: derived from employee name and period)")

	return cmd
}
