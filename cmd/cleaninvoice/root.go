package main

import (
	"github.com/spf13/cobra"

	"github.com/jvaldeza/cleaninvoice/internal/logger"
	"github.com/jvaldeza/cleaninvoice/internal/service"
)

func newRootCmd(invoiceService *service.InvoiceService) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "cleaninvoice",
		Short: "Invoice generator for recurring cleaning work",
		Long: `Build fortnightly cleaning invoices: auto-generate line items for a date
range, edit them, save immutable snapshots and export them as a spreadsheet.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.Setup("debug")
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newGenerateCmd(invoiceService),
		newItemCmd(invoiceService),
		newSaveCmd(invoiceService),
		newExportCmd(invoiceService),
		newHistoryCmd(invoiceService),
		newSettingsCmd(invoiceService),
		newStatusCmd(invoiceService),
		newClearCmd(invoiceService),
	)

	return rootCmd
}
