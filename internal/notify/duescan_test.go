package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/gags88/reminder-pwa/internal/models"
)

func TestDaysUntil(t *testing.T) {
	today := time.Date(2025, 1, 7, 15, 30, 0, 0, time.Local)

	tests := []struct {
		name string
		due  time.Time
		want int
	}{
		{"same day", time.Date(2025, 1, 7, 0, 0, 0, 0, time.Local), 0},
		{"three days out", time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local), 3},
		{"two days out", time.Date(2025, 1, 9, 0, 0, 0, 0, time.Local), 2},
		{"four days out", time.Date(2025, 1, 11, 0, 0, 0, 0, time.Local), 4},
		{"yesterday", time.Date(2025, 1, 6, 23, 59, 0, 0, time.Local), -1},
		{"three days past", time.Date(2025, 1, 4, 0, 0, 0, 0, time.Local), -3},
		{"across month boundary", time.Date(2025, 2, 6, 0, 0, 0, 0, time.Local), 30},
		{"clock time ignored", time.Date(2025, 1, 10, 23, 59, 59, 0, time.Local), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysUntil(tt.due, today); got != tt.want {
				t.Errorf("DaysUntil() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScanDueExactEquality(t *testing.T) {
	today := time.Date(2025, 1, 7, 9, 0, 0, 0, time.Local)

	reminders := []models.Reminder{
		{ID: "a", Title: "Too close", Date: "2025-01-09"},
		{ID: "b", Title: "Pay rent", Date: "2025-01-10"},
		{ID: "c", Title: "Too far", Date: "2025-01-11"},
		{ID: "d", Title: "Long gone", Date: "2025-01-04"},
	}

	notices := ScanDue(reminders, today)
	if len(notices) != 1 {
		t.Fatalf("ScanDue() returned %d notices, want 1", len(notices))
	}

	n := notices[0]
	if n.Title != "Reminder due soon" {
		t.Errorf("notice title = %q", n.Title)
	}
	if !strings.Contains(n.Body, "Pay rent") || !strings.Contains(n.Body, "is due in 3 days!") {
		t.Errorf("notice body = %q, want title and due-in-3 message", n.Body)
	}
}

func TestScanDueMultipleMatches(t *testing.T) {
	today := time.Date(2025, 1, 7, 9, 0, 0, 0, time.Local)

	reminders := []models.Reminder{
		{ID: "a", Title: "First", Date: "2025-01-10"},
		{ID: "b", Title: "Second", Date: "2025-01-10"},
	}

	notices := ScanDue(reminders, today)
	if len(notices) != 2 {
		t.Fatalf("ScanDue() returned %d notices, want 2", len(notices))
	}
}

func TestScanDueSkipsUnparseableDates(t *testing.T) {
	today := time.Date(2025, 1, 7, 9, 0, 0, 0, time.Local)

	reminders := []models.Reminder{
		{ID: "a", Title: "Broken", Date: "01/10/2025"},
		{ID: "b", Title: "Empty", Date: ""},
	}

	if notices := ScanDue(reminders, today); notices != nil {
		t.Fatalf("ScanDue() = %v, want nil", notices)
	}
}

func TestScanDueRefiresOnRescan(t *testing.T) {
	today := time.Date(2025, 1, 7, 9, 0, 0, 0, time.Local)
	reminders := []models.Reminder{
		{ID: "a", Title: "Pay rent", Date: "2025-01-10"},
	}

	// No already-notified memory: the same day scans the same notice again.
	first := ScanDue(reminders, today)
	second := ScanDue(reminders, today)
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("scans returned %d and %d notices, want 1 and 1", len(first), len(second))
	}
}
