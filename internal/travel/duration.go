package travel

import (
	"fmt"
	"strings"
	"time"
)

// UnknownDuration is the sentinel label for malformed or missing dates.
const UnknownDuration = "unknown duration"

const dateLayout = "2006-01-02"

// TripLength buckets the span between two yyyy-mm-dd dates into a coarse
// human-readable label: "1 day", "N days", then ceiling-rounded weeks,
// months and years. It never fails; bad input yields UnknownDuration.
func TripLength(startDate, endDate string) string {
	startDate = strings.TrimSpace(startDate)
	endDate = strings.TrimSpace(endDate)
	if startDate == "" || endDate == "" {
		return UnknownDuration
	}

	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return UnknownDuration
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return UnknownDuration
	}

	days := int64(end.Sub(start).Hours() / 24)
	switch {
	case days <= 1:
		return "1 day"
	case days < 7:
		return fmt.Sprintf("%d days", days)
	case days < 30:
		return pluralize(ceilDiv(days, 7), "week")
	case days < 365:
		return pluralize(ceilDiv(days, 30), "month")
	default:
		return pluralize(ceilDiv(days, 365), "year")
	}
}

func ceilDiv(n, d int64) int64 {
	return (n + d - 1) / d
}

func pluralize(n int64, unit string) string {
	if n > 1 {
		return fmt.Sprintf("%d %ss", n, unit)
	}
	return fmt.Sprintf("%d %s", n, unit)
}
