package register

import (
	"strings"
	"time"

	"github.com/harborline/freightdesk-backend/internal/domain"
)

// Filter returns the rows matching all set criteria, preserving relative
// order. The input collection is never mutated; unset criteria impose no
// constraint.
//
// Search matches case-insensitively against the concatenation of file
// reference, client name, and booking number. Status and carrier are exact
// matches. From/To are inclusive bounds on LastUpdatedRaw, with From
// normalized to start-of-day and To to end-of-day in local time.
func Filter(rows []domain.RegisterRow, criteria domain.RegisterFilter) []domain.RegisterRow {
	var from, to time.Time
	if criteria.From != nil {
		from = startOfDay(*criteria.From)
	}
	if criteria.To != nil {
		to = endOfDay(*criteria.To)
	}
	search := strings.ToLower(strings.TrimSpace(criteria.Search))

	out := make([]domain.RegisterRow, 0, len(rows))
	for _, row := range rows {
		if search != "" {
			haystack := strings.ToLower(row.FileReference + " " + row.ClientName + " " + row.BookingNumber)
			if !strings.Contains(haystack, search) {
				continue
			}
		}
		if criteria.Status != "" && string(row.OverallStatus) != criteria.Status {
			continue
		}
		if criteria.Carrier != "" && row.Carrier != criteria.Carrier {
			continue
		}
		if criteria.From != nil && row.LastUpdatedRaw.Before(from) {
			continue
		}
		if criteria.To != nil && row.LastUpdatedRaw.After(to) {
			continue
		}
		out = append(out, row)
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), time.Local)
}
