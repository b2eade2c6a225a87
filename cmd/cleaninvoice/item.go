package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jvaldeza/cleaninvoice/internal/models"
	"github.com/jvaldeza/cleaninvoice/internal/service"
	"github.com/jvaldeza/cleaninvoice/internal/utils"
)

func newItemCmd(invoiceService *service.InvoiceService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage draft line items",
		Long:  "Add, update, remove and list the line items of the working draft.",
	}

	cmd.AddCommand(
		newItemAddCmd(invoiceService),
		newItemUpdateCmd(invoiceService),
		newItemRemoveCmd(invoiceService),
		newItemListCmd(invoiceService),
	)

	return cmd
}

func newItemAddCmd(invoiceService *service.InvoiceService) *cobra.Command {
	var date, room, description, timeOfDay string
	var amount float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a manual line item to the draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			item, err := invoiceService.UpsertItem(ctx, models.InvoiceItem{
				Date:        date,
				Room:        room,
				Type:        models.ItemTypeManual,
				Description: description,
				Time:        timeOfDay,
				Amount:      models.Amount(amount),
			})
			if err != nil {
				return err
			}

			fmt.Println("Added item:")
			invoiceService.DisplayItem(item)
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Service date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&room, "room", "r", "", "Room or site label")
	cmd.Flags().StringVar(&description, "description", "", "Work description")
	cmd.Flags().StringVar(&timeOfDay, "time", "", "Time of service (optional)")
	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "Amount in dollars")
	cmd.MarkFlagRequired("date")
	cmd.MarkFlagRequired("description")

	return cmd
}

func newItemUpdateCmd(invoiceService *service.InvoiceService) *cobra.Command {
	var id int
	var date, room, description, timeOfDay string
	var amount float64

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update an existing line item",
		Long:  "Update fields of an existing line item. Only the given flags change; other fields are kept.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			d, err := invoiceService.GetDraft(ctx)
			if err != nil {
				return err
			}

			var current *models.InvoiceItem
			for i := range d.Items {
				if d.Items[i].ID != nil && *d.Items[i].ID == id {
					current = &d.Items[i]
					break
				}
			}
			if current == nil {
				return fmt.Errorf("no item with id %d", id)
			}

			updated := current.Clone()
			updated.ID = utils.ToPtr(id)
			if cmd.Flags().Changed("date") {
				updated.Date = date
			}
			if cmd.Flags().Changed("room") {
				updated.Room = room
			}
			if cmd.Flags().Changed("description") {
				updated.Description = description
			}
			if cmd.Flags().Changed("time") {
				updated.Time = timeOfDay
			}
			if cmd.Flags().Changed("amount") {
				updated.Amount = models.Amount(amount)
			}

			item, err := invoiceService.UpsertItem(ctx, updated)
			if err != nil {
				return err
			}

			fmt.Println("Updated item:")
			invoiceService.DisplayItem(item)
			return nil
		},
	}

	cmd.Flags().IntVarP(&id, "id", "i", 0, "Id of the item to update")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Service date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&room, "room", "r", "", "Room or site label")
	cmd.Flags().StringVar(&description, "description", "", "Work description")
	cmd.Flags().StringVar(&timeOfDay, "time", "", "Time of service")
	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "Amount in dollars")
	cmd.MarkFlagRequired("id")

	return cmd
}

func newItemRemoveCmd(invoiceService *service.InvoiceService) *cobra.Command {
	var id int

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a line item from the draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if err := invoiceService.RemoveItem(ctx, id); err != nil {
				return err
			}

			fmt.Printf("Removed item %d\n", id)
			return nil
		},
	}

	cmd.Flags().IntVarP(&id, "id", "i", 0, "Id of the item to remove")
	cmd.MarkFlagRequired("id")

	return cmd
}

func newItemListCmd(invoiceService *service.InvoiceService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the draft's line items",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := invoiceService.GetDraft(cmd.Context())
			if err != nil {
				return err
			}

			invoiceService.DisplayDraft(d)
			return nil
		},
	}

	return cmd
}
