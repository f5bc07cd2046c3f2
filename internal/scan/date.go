package scan

import (
	"fmt"
	"time"
)

// DateLayout is the canonical date format used by every downstream lookup.
const DateLayout = "2006-01-02"

// TestDate is the slate checked in test mode: Luka's 73-point game
// (DAL @ ATL, 2024-01-26).
const TestDate = "2024-01-26"

// ResolveDate turns an optional explicit date into the canonical date to
// scan. Test mode wins over an explicit date; with neither, the previous
// calendar day relative to now is used. A malformed explicit date is a
// fatal, pre-flight error — nothing has touched the network yet.
func ResolveDate(explicit string, test bool, now func() time.Time) (string, error) {
	if test {
		return TestDate, nil
	}
	if explicit != "" {
		if _, err := time.Parse(DateLayout, explicit); err != nil {
			return "", fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", explicit, err)
		}
		return explicit, nil
	}
	if now == nil {
		now = time.Now
	}
	return now().AddDate(0, 0, -1).Format(DateLayout), nil
}
