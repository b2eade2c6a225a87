// Package schedule generates the recurring cleaning entries for a billing
// period and derives fortnightly invoice numbers from the calendar.
package schedule

import (
	"fmt"
	"time"
)

type CleaningKind string

const (
	KindKitchen CleaningKind = "kitchen"
	KindNight   CleaningKind = "night"
)

// Fixed per-visit rates in whole dollars.
const (
	KitchenRate = 120
	NightRate   = 90
)

const nightRoom = "Night Clean (Y-Suite city Gardens)"

// Kitchen work rotates through the building's floors, one group per weekday.
var kitchenRooms = map[time.Weekday]string{
	time.Monday:    "floor 1, 2, 3, 4 (128 Waymouth St)",
	time.Tuesday:   "floor 5, 6, 7, 8 (128 Waymouth St)",
	time.Wednesday: "floor 9, 10, 11, 12 (128 Waymouth St)",
	time.Thursday:  "floor 13, 14, 15, 16 (128 Waymouth St)",
}

// ServiceEntry is one generated cleaning visit, before it is given an item id
// and type tag by the draft.
type ServiceEntry struct {
	Date        string
	Room        string
	Description string
	Amount      float64
}

// RecurringItems returns one entry per qualifying weekday (Monday through
// Thursday) in the inclusive range [start, end], in ascending date order.
// An exhausted range yields no entries; ordering of start and end is the
// caller's responsibility. Days are advanced with calendar arithmetic so DST
// transitions and year boundaries never skip or duplicate a day.
func RecurringItems(kind CleaningKind, start, end time.Time) []ServiceEntry {
	var entries []ServiceEntry

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		room, ok := roomFor(kind, d.Weekday())
		if !ok {
			continue
		}

		entry := ServiceEntry{
			Date: d.Format("2006/01/02"),
			Room: room,
		}
		switch kind {
		case KindNight:
			entry.Description = "Night cleaning"
			entry.Amount = NightRate
		default:
			entry.Description = "Kitchen cleaning"
			entry.Amount = KitchenRate
		}

		entries = append(entries, entry)
	}

	return entries
}

func roomFor(kind CleaningKind, weekday time.Weekday) (string, bool) {
	room, ok := kitchenRooms[weekday]
	if !ok {
		return "", false
	}
	if kind == KindNight {
		return nightRoom, true
	}
	return room, true
}

// InvoiceNumberFor maps a date to its fortnightly invoice number, anchored to
// the first Monday of the date's calendar year: that Monday starts invoice 1
// and the number increments every 14 days. Dates before the first Monday fall
// through the floor division and produce a non-positive number rather than an
// error.
func InvoiceNumberFor(date time.Time) int {
	firstMonday := time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	for firstMonday.Weekday() != time.Monday {
		firstMonday = firstMonday.AddDate(0, 0, 1)
	}

	// Normalizing both ends to UTC midnight keeps the day count exact
	// across DST transitions.
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	days := int(day.Sub(firstMonday).Hours() / 24)

	return floorDiv(days, 14) + 1
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// ParseDate accepts the two date spellings used across stored records and
// user input.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", "2006/01/02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
}

// FormatDisplayDate renders a stored date for humans, substituting a
// placeholder when the stored value cannot be parsed.
func FormatDisplayDate(s string) string {
	if t, err := ParseDate(s); err == nil {
		return t.Format("Jan 2, 2006")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format("Jan 2, 2006")
	}
	return "Invalid date"
}

// InvoiceTitle builds the default title for a saved or exported invoice,
// e.g. "Invoice Jane Doe Jan 6 to January 17".
func InvoiceTitle(name, lastname string, start, end time.Time) string {
	return fmt.Sprintf("Invoice %s %s %s to %s",
		name, lastname, start.Format("Jan 2"), end.Format("January 2"))
}
