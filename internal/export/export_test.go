package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/jvaldeza/cleaninvoice/internal/models"
	"github.com/jvaldeza/cleaninvoice/internal/utils"
)

func sampleInvoice() models.Invoice {
	return models.Invoice{
		ID:            "1736112000000-abc123def-1",
		InvoiceNumber: 1,
		Employee: models.Employee{
			Name:     "Jane",
			Lastname: "Doe",
			ABN:      "12345678901",
			BSB:      "123456",
			ACC:      "123456789",
			Address:  "123 Main Street, Sydney NSW 2000",
		},
		Company: models.Company{
			Name:     "Example Cleaning Pty Ltd",
			Address:  "456 Business Street",
			City:     "Sydney",
			StateA:   "NSW",
			Postcode: "2000",
		},
		StartDate: "2025-01-06",
		EndDate:   "2025-01-09",
		Items: []models.InvoiceItem{
			{ID: utils.ToPtr(1), Date: "2025/01/06", Room: "floor 1, 2, 3, 4 (128 Waymouth St)", Type: models.ItemTypeGenerated, Description: "Kitchen cleaning", Amount: 120},
			{ID: utils.ToPtr(2), Date: "2025/01/07", Room: "Night Clean (Y-Suite city Gardens)", Type: models.ItemTypeGenerated, Description: "Night cleaning", Time: "22:00", Amount: 90},
		},
		TotalAmount: 210,
		CreatedAt:   "2025-01-10T09:30:00Z",
	}
}

func TestFileName(t *testing.T) {
	got := FileName("Invoice Jane Doe Jan 6 to January 17", FormatXLSX)
	want := "Invoice_Jane_Doe_Jan_6_to_January_17.xlsx"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	if got := FileName("a/b:c?", FormatCSV); got != "abc.csv" {
		t.Errorf("Expected unsafe characters stripped, got %q", got)
	}
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"xlsx", "csv", "pdf"} {
		if _, err := ParseFormat(valid); err != nil {
			t.Errorf("ParseFormat(%q) failed: %v", valid, err)
		}
	}
	if _, err := ParseFormat("docx"); err == nil {
		t.Error("Expected error for an unsupported format")
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleInvoice()); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		"Invoice,1",
		"Name,Jane Doe",
		"ABN,12345678901",
		"Period,2025-01-06 to 2025-01-09",
		"Bill To,Example Cleaning Pty Ltd",
		"Date,Room,Description,Time,Amount",
		`2025/01/06,"floor 1, 2, 3, 4 (128 Waymouth St)",Kitchen cleaning,,120.00`,
		"2025/01/07,Night Clean (Y-Suite city Gardens),Night cleaning,22:00,90.00",
		",,,Total,210.00",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in CSV output, got:\n%s", want, output)
		}
	}
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice.xlsx")
	invoice := sampleInvoice()

	if err := WriteXLSX(path, invoice); err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to reopen spreadsheet: %v", err)
	}
	defer f.Close()

	sheet := "Invoice 1"
	checks := map[string]string{
		"A1":  "Name: Jane Doe",
		"H1":  "Invoice: 1",
		"H2":  "Date: 2025-01-06 to 2025-01-09",
		"F6":  "Tax Invoice",
		"A10": "Example Cleaning Pty Ltd",
		"A16": "DATE",
		"M16": "AMOUNT",
		"A17": "2025/01/06",
		"H18": "Night cleaning",
		"L18": "22:00",
		"L19": "Total",
	}
	for ref, want := range checks {
		got, err := f.GetCellValue(sheet, ref)
		if err != nil {
			t.Fatalf("GetCellValue(%s) failed: %v", ref, err)
		}
		if got != want {
			t.Errorf("Cell %s: expected %q, got %q", ref, want, got)
		}
	}

	total, err := f.GetCellValue(sheet, "M19")
	if err != nil {
		t.Fatalf("GetCellValue(M19) failed: %v", err)
	}
	if total != "210" {
		t.Errorf("Expected total 210 in M19, got %q", total)
	}
}

func TestWritePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice.pdf")

	if err := WritePDF(path, sampleInvoice()); err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Expected PDF file to exist: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected a non-empty PDF file")
	}
}

func TestWriteXLSXNoItems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	invoice := sampleInvoice()
	invoice.Items = nil
	invoice.TotalAmount = 0

	if err := WriteXLSX(path, invoice); err != nil {
		t.Fatalf("WriteXLSX with no items failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to reopen spreadsheet: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Invoice 1", cell("L", tableBodyRow))
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if got != "Total" {
		t.Errorf("Expected total row immediately after header, got %q", got)
	}
}
