package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jvaldeza/cleaninvoice/internal/service"
)

func newHistoryCmd(invoiceService *service.InvoiceService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage saved invoices",
		Long:  "List, inspect and delete invoices in the saved history.",
	}

	cmd.AddCommand(
		newHistoryListCmd(invoiceService),
		newHistoryShowCmd(invoiceService),
		newHistoryDeleteCmd(invoiceService),
	)

	return cmd
}

func newHistoryListCmd(invoiceService *service.InvoiceService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved invoices",
		RunE: func(cmd *cobra.Command, args []string) error {
			invoices, err := invoiceService.ListInvoices(cmd.Context())
			if err != nil {
				return err
			}

			if len(invoices) == 0 {
				fmt.Println("No saved invoices.")
				return nil
			}

			for _, invoice := range invoices {
				invoiceService.DisplayInvoice(invoice, false)
			}
			return nil
		},
	}

	return cmd
}

func newHistoryShowCmd(invoiceService *service.InvoiceService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a saved invoice with its line items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invoice, err := invoiceService.GetInvoice(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			invoiceService.DisplayInvoice(invoice, true)
			return nil
		},
	}

	return cmd
}

func newHistoryDeleteCmd(invoiceService *service.InvoiceService) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved invoice",
		Long:  "Delete a saved invoice from history. Use with caution - this action cannot be undone.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if !force {
				ok, err := confirm(fmt.Sprintf("This will permanently delete invoice %s. Are you sure? (y/N): ", args[0]))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println("Operation cancelled.")
					return nil
				}
			}

			if err := invoiceService.DeleteInvoice(ctx, args[0]); err != nil {
				return err
			}

			fmt.Printf("Deleted invoice %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")

	return cmd
}
