package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jvaldeza/cleaninvoice/internal/export"
	"github.com/jvaldeza/cleaninvoice/internal/service"
)

func newExportCmd(invoiceService *service.InvoiceService) *cobra.Command {
	var id, format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export an invoice as a spreadsheet, CSV or PDF",
		Long: `Render the working draft (default) or a saved invoice (--id) to a file.
The layout carries the employee header, the recipient block, one table row
per item and a trailing total.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			parsed, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			file, err := invoiceService.ExportInvoice(ctx, id, parsed, output)
			if err != nil {
				return err
			}

			fmt.Printf("Exported invoice to %s\n", file)
			return nil
		},
	}

	cmd.Flags().StringVarP(&id, "id", "i", "", "Saved invoice id (default: working draft)")
	cmd.Flags().StringVarP(&format, "format", "F", "xlsx", "Output format: xlsx, csv or pdf")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: derived from the invoice title)")

	return cmd
}
