package mock

import (
	"strconv"
	"time"
)

// FrozenDay is the fixed "today" every scenario runs against.
var FrozenDay = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

// Clock returns a now func pinned to FrozenDay.
func Clock() func() time.Time {
	return func() time.Time { return FrozenDay }
}

// Day resolves a relative day expression against FrozenDay.
// "D" is today, "D+3" three days ahead, "D-1" yesterday. Anything else is
// returned verbatim so features can also use literal or invalid dates.
func Day(expr string) string {
	if expr == "D" {
		return FrozenDay.Format("2006-01-02")
	}
	if len(expr) < 2 || expr[0] != 'D' {
		return expr
	}
	offset, err := strconv.Atoi(expr[1:])
	if err != nil {
		return expr
	}
	return FrozenDay.AddDate(0, 0, offset).Format("2006-01-02")
}
