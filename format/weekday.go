package format

import "time"

const (
	today      = "Today"
	dateLayout = "2006-01-02"
)

// Weekdays labels an ordered series of ISO dates. The first label is always
// "Today"; the rest are three letter weekday names. Dates that do not parse
// get an empty label.
func Weekdays(dates []string) []string {
	labels := make([]string, len(dates))

	for i, date := range dates {
		if i == 0 {
			labels[i] = today
			continue
		}

		t, err := time.Parse(dateLayout, date)
		if err != nil {
			continue
		}
		labels[i] = t.Weekday().String()[:3]
	}

	return labels
}
