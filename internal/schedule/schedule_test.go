package schedule

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRecurringItemsKitchenWeek(t *testing.T) {
	// 2025-01-06 is a Monday, 2025-01-09 a Thursday.
	entries := RecurringItems(KindKitchen, date(2025, time.January, 6), date(2025, time.January, 9))

	if len(entries) != 4 {
		t.Fatalf("Expected 4 entries, got %d", len(entries))
	}

	expected := []struct {
		date string
		room string
	}{
		{"2025/01/06", "floor 1, 2, 3, 4 (128 Waymouth St)"},
		{"2025/01/07", "floor 5, 6, 7, 8 (128 Waymouth St)"},
		{"2025/01/08", "floor 9, 10, 11, 12 (128 Waymouth St)"},
		{"2025/01/09", "floor 13, 14, 15, 16 (128 Waymouth St)"},
	}

	for i, want := range expected {
		got := entries[i]
		if got.Date != want.date {
			t.Errorf("Entry %d: expected date %s, got %s", i, want.date, got.Date)
		}
		if got.Room != want.room {
			t.Errorf("Entry %d: expected room %q, got %q", i, want.room, got.Room)
		}
		if got.Description != "Kitchen cleaning" {
			t.Errorf("Entry %d: unexpected description %q", i, got.Description)
		}
		if got.Amount != KitchenRate {
			t.Errorf("Entry %d: expected amount %d, got %v", i, KitchenRate, got.Amount)
		}
	}
}

func TestRecurringItemsNight(t *testing.T) {
	// Full week Monday to Sunday: only Monday-Thursday qualify.
	entries := RecurringItems(KindNight, date(2025, time.January, 6), date(2025, time.January, 12))

	if len(entries) != 4 {
		t.Fatalf("Expected 4 entries for a full week, got %d", len(entries))
	}

	for i, entry := range entries {
		if entry.Room != "Night Clean (Y-Suite city Gardens)" {
			t.Errorf("Entry %d: unexpected room %q", i, entry.Room)
		}
		if entry.Description != "Night cleaning" {
			t.Errorf("Entry %d: unexpected description %q", i, entry.Description)
		}
		if entry.Amount != NightRate {
			t.Errorf("Entry %d: expected amount %d, got %v", i, NightRate, entry.Amount)
		}
	}
}

func TestRecurringItemsSingleDay(t *testing.T) {
	monday := date(2025, time.January, 6)
	if got := RecurringItems(KindKitchen, monday, monday); len(got) != 1 {
		t.Errorf("Expected 1 entry for a single Monday, got %d", len(got))
	}

	saturday := date(2025, time.January, 11)
	if got := RecurringItems(KindKitchen, saturday, saturday); len(got) != 0 {
		t.Errorf("Expected no entries for a single Saturday, got %d", len(got))
	}
}

func TestRecurringItemsExhaustedRange(t *testing.T) {
	entries := RecurringItems(KindNight, date(2025, time.January, 9), date(2025, time.January, 6))
	if len(entries) != 0 {
		t.Errorf("Expected no entries for an exhausted range, got %d", len(entries))
	}
}

func TestRecurringItemsYearBoundary(t *testing.T) {
	// 2024-12-30 is a Monday; the range crosses into 2025.
	entries := RecurringItems(KindKitchen, date(2024, time.December, 30), date(2025, time.January, 2))

	if len(entries) != 4 {
		t.Fatalf("Expected 4 entries across the year boundary, got %d", len(entries))
	}

	prev := ""
	for _, entry := range entries {
		if entry.Date <= prev {
			t.Errorf("Entries not in ascending date order: %s after %s", entry.Date, prev)
		}
		prev = entry.Date
	}
	if entries[0].Date != "2024/12/30" || entries[3].Date != "2025/01/02" {
		t.Errorf("Unexpected boundary dates: %s .. %s", entries[0].Date, entries[3].Date)
	}
}

func TestInvoiceNumberFor(t *testing.T) {
	// 2025-01-06 is the first Monday of 2025.
	cases := []struct {
		date time.Time
		want int
	}{
		{date(2025, time.January, 6), 1},
		{date(2025, time.January, 19), 1},
		{date(2025, time.January, 20), 2},
		{date(2025, time.February, 3), 3},
		{date(2025, time.January, 1), 0}, // before the first Monday
	}

	for _, tc := range cases {
		if got := InvoiceNumberFor(tc.date); got != tc.want {
			t.Errorf("InvoiceNumberFor(%s): expected %d, got %d", tc.date.Format("2006-01-02"), tc.want, got)
		}
	}
}

func TestInvoiceNumberMonotonic(t *testing.T) {
	prev := InvoiceNumberFor(date(2025, time.January, 6))
	for d := date(2025, time.January, 7); d.Year() == 2025; d = d.AddDate(0, 0, 1) {
		n := InvoiceNumberFor(d)
		if n < prev {
			t.Fatalf("Invoice number decreased at %s: %d -> %d", d.Format("2006-01-02"), prev, n)
		}
		if n > prev+1 {
			t.Fatalf("Invoice number jumped at %s: %d -> %d", d.Format("2006-01-02"), prev, n)
		}
		prev = n
	}

	// A fortnight apart differs by exactly 1, as long as both dates fall in
	// the same year. Numbering re-anchors at each new year.
	for d := date(2025, time.January, 6); d.AddDate(0, 0, 14).Year() == 2025; d = d.AddDate(0, 0, 14) {
		a := InvoiceNumberFor(d)
		b := InvoiceNumberFor(d.AddDate(0, 0, 14))
		if b != a+1 {
			t.Errorf("Expected +1 per fortnight at %s, got %d -> %d", d.Format("2006-01-02"), a, b)
		}
	}
}

func TestParseDate(t *testing.T) {
	for _, input := range []string{"2025-01-06", "2025/01/06"} {
		got, err := ParseDate(input)
		if err != nil {
			t.Fatalf("ParseDate(%q) failed: %v", input, err)
		}
		if got.Day() != 6 || got.Month() != time.January || got.Year() != 2025 {
			t.Errorf("ParseDate(%q) returned %v", input, got)
		}
	}

	if _, err := ParseDate("06/01/2025"); err == nil {
		t.Error("Expected error for a day-first date")
	}
}

func TestFormatDisplayDate(t *testing.T) {
	if got := FormatDisplayDate("2025-01-06"); got != "Jan 6, 2025" {
		t.Errorf("Expected 'Jan 6, 2025', got %q", got)
	}
	if got := FormatDisplayDate("not-a-date"); got != "Invalid date" {
		t.Errorf("Expected 'Invalid date' fallback, got %q", got)
	}
}

func TestInvoiceTitle(t *testing.T) {
	got := InvoiceTitle("Jane", "Doe", date(2025, time.January, 6), date(2025, time.January, 17))
	want := "Invoice Jane Doe Jan 6 to January 17"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
