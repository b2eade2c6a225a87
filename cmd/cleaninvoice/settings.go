package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jvaldeza/cleaninvoice/internal/service"
	"github.com/jvaldeza/cleaninvoice/internal/utils"
)

func newSettingsCmd(invoiceService *service.InvoiceService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage profiles and preferences",
		Long:  "Edit the employee and company profiles, toggle cleaning types, and wipe stored data.",
	}

	cmd.AddCommand(
		newSettingsEmployeeCmd(invoiceService),
		newSettingsCompanyCmd(invoiceService),
		newSettingsCleaningCmd(invoiceService),
		newSettingsWipeCmd(invoiceService),
	)

	return cmd
}

func newSettingsEmployeeCmd(invoiceService *service.InvoiceService) *cobra.Command {
	var email, name, lastname, birthdate, address, phone, abn, tax, bsb, acc string

	cmd := &cobra.Command{
		Use:   "employee",
		Short: "Show or update the employee profile",
		Long:  "With no flags, prints the stored employee profile. Flags update only the fields they name.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if cmd.Flags().NFlag() == 0 {
				employee, err := invoiceService.GetEmployee(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("Name: %s %s\n", employee.Name, employee.Lastname)
				fmt.Printf("Email: %s\n", employee.Email)
				fmt.Printf("Address: %s\n", employee.Address)
				fmt.Printf("Phone: %s\n", employee.Phone)
				fmt.Printf("ABN: %s\n", employee.ABN)
				fmt.Printf("BSB: %s | ACC: %s\n", employee.BSB, employee.ACC)
				return nil
			}

			patch := service.EmployeePatch{}
			if cmd.Flags().Changed("email") {
				patch.Email = utils.ToPtr(email)
			}
			if cmd.Flags().Changed("name") {
				patch.Name = utils.ToPtr(name)
			}
			if cmd.Flags().Changed("lastname") {
				patch.Lastname = utils.ToPtr(lastname)
			}
			if cmd.Flags().Changed("birthdate") {
				patch.Birthdate = utils.ToPtr(birthdate)
			}
			if cmd.Flags().Changed("address") {
				patch.Address = utils.ToPtr(address)
			}
			if cmd.Flags().Changed("phone") {
				patch.Phone = utils.ToPtr(phone)
			}
			if cmd.Flags().Changed("abn") {
				patch.ABN = utils.ToPtr(abn)
			}
			if cmd.Flags().Changed("tax") {
				patch.Tax = utils.ToPtr(tax)
			}
			if cmd.Flags().Changed("bsb") {
				patch.BSB = utils.ToPtr(bsb)
			}
			if cmd.Flags().Changed("acc") {
				patch.ACC = utils.ToPtr(acc)
			}

			employee, err := invoiceService.UpdateEmployee(ctx, patch)
			if err != nil {
				return err
			}

			fmt.Printf("Employee data saved: %s %s\n", employee.Name, employee.Lastname)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&name, "name", "", "First name")
	cmd.Flags().StringVar(&lastname, "lastname", "", "Last name")
	cmd.Flags().StringVar(&birthdate, "birthdate", "", "Birth date")
	cmd.Flags().StringVar(&address, "address", "", "Street address")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&abn, "abn", "", "ABN")
	cmd.Flags().StringVar(&tax, "tax", "", "Tax file number")
	cmd.Flags().StringVar(&bsb, "bsb", "", "Bank BSB")
	cmd.Flags().StringVar(&acc, "acc", "", "Bank account number")

	return cmd
}

func newSettingsCompanyCmd(invoiceService *service.InvoiceService) *cobra.Command {
	var name, address, phone, postcode, city, state string

	cmd := &cobra.Command{
		Use:   "company",
		Short: "Show or update the billed company profile",
		Long:  "With no flags, prints the stored company profile. Flags update only the fields they name.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if cmd.Flags().NFlag() == 0 {
				company, err := invoiceService.GetCompany(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("Name: %s\n", company.Name)
				fmt.Printf("Address: %s\n", company.Address)
				fmt.Printf("City: %s %s %s\n", company.City, company.StateA, company.Postcode)
				fmt.Printf("Phone: %s\n", company.Phone)
				return nil
			}

			patch := service.CompanyPatch{}
			if cmd.Flags().Changed("name") {
				patch.Name = utils.ToPtr(name)
			}
			if cmd.Flags().Changed("address") {
				patch.Address = utils.ToPtr(address)
			}
			if cmd.Flags().Changed("phone") {
				patch.Phone = utils.ToPtr(phone)
			}
			if cmd.Flags().Changed("postcode") {
				patch.Postcode = utils.ToPtr(postcode)
			}
			if cmd.Flags().Changed("city") {
				patch.City = utils.ToPtr(city)
			}
			if cmd.Flags().Changed("state") {
				patch.StateA = utils.ToPtr(state)
			}

			company, err := invoiceService.UpdateCompany(ctx, patch)
			if err != nil {
				return err
			}

			fmt.Printf("Company data saved: %s\n", company.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Company name")
	cmd.Flags().StringVar(&address, "address", "", "Street address")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&postcode, "postcode", "", "Postal code")
	cmd.Flags().StringVar(&city, "city", "", "City")
	cmd.Flags().StringVar(&state, "state", "", "State")

	return cmd
}

func newSettingsCleaningCmd(invoiceService *service.InvoiceService) *cobra.Command {
	var kitchen, night bool

	cmd := &cobra.Command{
		Use:   "cleaning",
		Short: "Show or toggle the cleaning types used by generate",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var kitchenToggle, nightToggle *bool
			if cmd.Flags().Changed("kitchen") {
				kitchenToggle = &kitchen
			}
			if cmd.Flags().Changed("night") {
				nightToggle = &night
			}

			selections, err := invoiceService.UpdateSelections(ctx, kitchenToggle, nightToggle)
			if err != nil {
				return err
			}

			fmt.Printf("Kitchen cleaning: %v\n", selections.Kitchen)
			fmt.Printf("Night cleaning: %v\n", selections.Night)
			return nil
		},
	}

	cmd.Flags().BoolVar(&kitchen, "kitchen", false, "Enable or disable kitchen cleaning")
	cmd.Flags().BoolVar(&night, "night", false, "Enable or disable night cleaning")

	return cmd
}

func newSettingsWipeCmd(invoiceService *service.InvoiceService) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Delete all stored data",
		Long:  "Remove the employee and company profiles, the saved-invoice history, the cleaning selections and the working draft. This action cannot be undone.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if !force {
				ok, err := confirm("This will permanently delete all stored data. Are you sure? (y/N): ")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println("Operation cancelled.")
					return nil
				}
			}

			if err := invoiceService.WipeAll(ctx); err != nil {
				return err
			}

			fmt.Println("All stored data has been removed")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")

	return cmd
}
