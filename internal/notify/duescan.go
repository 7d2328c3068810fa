// Package notify holds the due-date scan and the audio cue. The scan is a
// linear pass over the in-memory list; it keeps no record of what it has
// already raised, so a reminder sitting exactly at the threshold fires again
// on every rescan during that day. Known limitation, kept on purpose.
package notify

import (
	"fmt"
	"math"
	"time"

	"github.com/gags88/reminder-pwa/internal/models"
)

// DueSoonDays is how many whole days out a reminder must be, exactly, for
// the due-soon notice to fire.
const DueSoonDays = 3

// Notice is one user-facing notification produced by a scan.
type Notice struct {
	Title string
	Body  string
}

// DaysUntil counts whole calendar days from today to due, negative when due
// is in the past. Both arguments are truncated to their calendar date in
// today's location, so clock times and DST shifts never skew the count.
func DaysUntil(due, today time.Time) int {
	loc := today.Location()
	d := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, loc)
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)
	return int(math.Round(d.Sub(t).Hours() / 24))
}

// ScanDue returns one notice per reminder whose due date is exactly
// DueSoonDays from today. Dates that fail to parse are skipped; the store
// never accepts them, so there is nothing useful to report.
func ScanDue(reminders []models.Reminder, today time.Time) []Notice {
	var notices []Notice
	for _, r := range reminders {
		due, err := time.ParseInLocation(models.DateLayout, r.Date, today.Location())
		if err != nil {
			continue
		}
		if DaysUntil(due, today) == DueSoonDays {
			notices = append(notices, Notice{
				Title: "Reminder due soon",
				Body:  fmt.Sprintf("%q is due in %d days!", r.Title, DueSoonDays),
			})
		}
	}
	return notices
}
