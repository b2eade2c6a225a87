package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jvaldeza/cleaninvoice/internal/service"
)

func newStatusCmd(invoiceService *service.InvoiceService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show what is currently stored",
		Long:  "Display the working draft size, the saved-invoice history and the configured profiles.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			info, err := invoiceService.GetStorageInfo(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("Draft items: %d\n", info.DraftItems)
			fmt.Printf("Saved invoices: %d\n", info.SavedInvoices)
			fmt.Printf("Total invoiced: %s\n", invoiceService.FormatAmount(info.TotalValue))
			fmt.Printf("Employee: %s\n", info.EmployeeName)
			fmt.Printf("Company: %s\n", info.CompanyName)
			return nil
		},
	}

	return cmd
}
