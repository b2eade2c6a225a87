package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Item type tags. Auto-generated cleaning rows are tagged "1" so they can be
// cleared and regenerated in bulk; manually entered rows are tagged "2" and
// survive regeneration.
const (
	ItemTypeGenerated = "1"
	ItemTypeManual    = "2"
)

// Amount is a currency value that tolerates malformed stored data. Older
// records occasionally contain amounts as quoted strings or garbage; those
// decode as 0 instead of failing the whole record.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*a = Amount(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*a = Amount(parsed)
			return nil
		}
	}

	*a = 0
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(a))
}

type Employee struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Lastname  string `json:"lastname"`
	Birthdate string `json:"birthdate"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	ABN       string `json:"abn"`
	Tax       string `json:"tax"`
	BSB       string `json:"bsb"`
	ACC       string `json:"acc"`
}

type Company struct {
	ID       *int   `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Postcode string `json:"postcode"`
	City     string `json:"city"`
	StateA   string `json:"stateA"`
}

func (c Company) Clone() Company {
	out := c
	if c.ID != nil {
		id := *c.ID
		out.ID = &id
	}
	return out
}

type InvoiceItem struct {
	ID          *int   `json:"id"`
	Date        string `json:"date"`
	Room        string `json:"room"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Time        string `json:"time"`
	Amount      Amount `json:"amount"`
}

// Clone returns a copy that shares no pointers with the original.
func (i InvoiceItem) Clone() InvoiceItem {
	out := i
	if i.ID != nil {
		id := *i.ID
		out.ID = &id
	}
	return out
}

func CloneItems(items []InvoiceItem) []InvoiceItem {
	out := make([]InvoiceItem, len(items))
	for n, item := range items {
		out[n] = item.Clone()
	}
	return out
}

// InvoiceDraft is the in-progress invoice being built. TotalAmount is only
// updated by an explicit recompute, never as a side effect of item mutation.
type InvoiceDraft struct {
	InvoiceNumber int           `json:"invoiceNumber"`
	StartDate     string        `json:"startDate"`
	EndDate       string        `json:"endDate"`
	Items         []InvoiceItem `json:"items"`
	TotalAmount   Amount        `json:"totalAmount"`
	LastID        int           `json:"lastId"`
}

// Invoice is an immutable saved snapshot of a completed draft. Snapshots are
// never updated in place; history edits are delete-only.
type Invoice struct {
	ID            string        `json:"id"`
	InvoiceNumber int           `json:"invoiceNumber"`
	Employee      Employee      `json:"employee"`
	Company       Company       `json:"company"`
	StartDate     string        `json:"startDate"`
	EndDate       string        `json:"endDate"`
	Items         []InvoiceItem `json:"items"`
	TotalAmount   Amount        `json:"totalAmount"`
	CreatedAt     string        `json:"createdAt"`
}

type CleaningSelections struct {
	Kitchen bool `json:"kitchen"`
	Night   bool `json:"night"`
}

// NewInvoiceID builds a collision-resistant id for a saved invoice. A bare
// timestamp is not unique under rapid successive saves, so the millisecond
// clock is combined with a random component and the invoice number.
func NewInvoiceID(invoiceNumber int) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%d-%s-%d", time.Now().UnixMilli(), random, invoiceNumber)
}
