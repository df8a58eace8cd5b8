package formatter

import "time"

// TruncID shortens a UUID for display, keeping the first 8 characters.
func TruncID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// HumanTimestamp renders a timestamp compactly, dropping the date for today.
func HumanTimestamp(t time.Time) string {
	local := t.Local()
	now := time.Now()
	if local.Year() == now.Year() && local.YearDay() == now.YearDay() {
		return local.Format("15:04")
	}
	return local.Format("Jan 2 15:04")
}
