package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestAmountUnmarshal(t *testing.T) {
	cases := []struct {
		input string
		want  Amount
	}{
		{`120`, 120},
		{`90.5`, 90.5},
		{`"45.25"`, 45.25},
		{`" 12 "`, 12},
		{`"abc"`, 0},
		{`null`, 0},
		{`{}`, 0},
	}

	for _, tc := range cases {
		var got Amount
		if err := json.Unmarshal([]byte(tc.input), &got); err != nil {
			t.Errorf("Unmarshal(%s) returned error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Unmarshal(%s): expected %v, got %v", tc.input, tc.want, got)
		}
	}
}

func TestItemWithMalformedAmountStillLoads(t *testing.T) {
	record := `{"id":3,"date":"2025/01/06","room":"floor 1, 2, 3, 4 (128 Waymouth St)","type":"1","description":"Kitchen cleaning","time":"","amount":"abc"}`

	var item InvoiceItem
	if err := json.Unmarshal([]byte(record), &item); err != nil {
		t.Fatalf("Expected malformed amount to degrade, got error: %v", err)
	}

	if item.Amount != 0 {
		t.Errorf("Expected amount coerced to 0, got %v", item.Amount)
	}
	if item.Description != "Kitchen cleaning" {
		t.Errorf("Expected the rest of the record intact, got %+v", item)
	}
}

func TestAmountMarshalsAsNumber(t *testing.T) {
	data, err := json.Marshal(InvoiceItem{Amount: 120})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"amount":120`) {
		t.Errorf("Expected numeric amount in JSON, got %s", data)
	}
}

func TestNewInvoiceIDUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewInvoiceID(7)
		if seen[id] {
			t.Fatalf("Duplicate invoice id generated: %s", id)
		}
		seen[id] = true

		if !strings.HasSuffix(id, "-7") {
			t.Fatalf("Expected invoice number suffix in id, got %s", id)
		}
	}
}

func TestCloneItemsSharesNoPointers(t *testing.T) {
	id := 1
	original := []InvoiceItem{{ID: &id, Date: "2025/01/06", Amount: 120}}

	cloned := CloneItems(original)
	*original[0].ID = 99

	if *cloned[0].ID != 1 {
		t.Errorf("Expected cloned item id unaffected by mutation, got %d", *cloned[0].ID)
	}
}

func TestCompanyClone(t *testing.T) {
	id := 5
	company := Company{ID: &id, Name: "Example Cleaning"}

	cloned := company.Clone()
	*company.ID = 6

	if *cloned.ID != 5 {
		t.Errorf("Expected cloned company id unaffected by mutation, got %d", *cloned.ID)
	}
}
