package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jvaldeza/cleaninvoice/internal/models"
)

// EmployeePatch is a merge-patch over the employee profile: nil fields are
// left untouched. Profile edits go through typed fields, never string-keyed
// access.
type EmployeePatch struct {
	Email     *string
	Name      *string
	Lastname  *string
	Birthdate *string
	Address   *string
	Phone     *string
	ABN       *string
	Tax       *string
	BSB       *string
	ACC       *string
}

type CompanyPatch struct {
	Name     *string
	Address  *string
	Phone    *string
	Postcode *string
	City     *string
	StateA   *string
}

func (s *InvoiceService) GetEmployee(ctx context.Context) (models.Employee, error) {
	return s.db.GetEmployee(ctx)
}

func (s *InvoiceService) UpdateEmployee(ctx context.Context, patch EmployeePatch) (models.Employee, error) {
	employee, err := s.db.GetEmployee(ctx)
	if err != nil {
		return employee, fmt.Errorf("failed to load employee data: %w", err)
	}

	applyString(&employee.Email, patch.Email)
	applyString(&employee.Name, patch.Name)
	applyString(&employee.Lastname, patch.Lastname)
	applyString(&employee.Birthdate, patch.Birthdate)
	applyString(&employee.Address, patch.Address)
	applyString(&employee.Phone, patch.Phone)
	applyString(&employee.ABN, patch.ABN)
	applyString(&employee.Tax, patch.Tax)
	applyString(&employee.BSB, patch.BSB)
	applyString(&employee.ACC, patch.ACC)

	if err := s.db.SetEmployee(ctx, employee); err != nil {
		return employee, fmt.Errorf("failed to save employee data: %w", err)
	}
	return employee, nil
}

func (s *InvoiceService) GetCompany(ctx context.Context) (models.Company, error) {
	return s.db.GetCompany(ctx)
}

func (s *InvoiceService) UpdateCompany(ctx context.Context, patch CompanyPatch) (models.Company, error) {
	company, err := s.db.GetCompany(ctx)
	if err != nil {
		return company, fmt.Errorf("failed to load company data: %w", err)
	}

	applyString(&company.Name, patch.Name)
	applyString(&company.Address, patch.Address)
	applyString(&company.Phone, patch.Phone)
	applyString(&company.Postcode, patch.Postcode)
	applyString(&company.City, patch.City)
	applyString(&company.StateA, patch.StateA)

	if err := s.db.SetCompany(ctx, company); err != nil {
		return company, fmt.Errorf("failed to save company data: %w", err)
	}
	return company, nil
}

func (s *InvoiceService) GetSelections(ctx context.Context) (models.CleaningSelections, error) {
	return s.db.GetSelections(ctx)
}

// UpdateSelections toggles the cleaning types used by draft generation. Nil
// toggles keep the stored value.
func (s *InvoiceService) UpdateSelections(ctx context.Context, kitchen, night *bool) (models.CleaningSelections, error) {
	selections, err := s.db.GetSelections(ctx)
	if err != nil {
		return selections, fmt.Errorf("failed to load cleaning selections: %w", err)
	}

	if kitchen != nil {
		selections.Kitchen = *kitchen
	}
	if night != nil {
		selections.Night = *night
	}

	if err := s.db.SetSelections(ctx, selections); err != nil {
		return selections, fmt.Errorf("failed to save cleaning selections: %w", err)
	}
	return selections, nil
}

// WipeAll removes every stored record: profiles, saved invoices, selections
// and the working draft.
func (s *InvoiceService) WipeAll(ctx context.Context) error {
	if err := s.db.Wipe(ctx); err != nil {
		return fmt.Errorf("failed to clear stored data: %w", err)
	}
	log.Info().Msg("all stored data cleared")
	return nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
