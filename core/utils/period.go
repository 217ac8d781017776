package utils

import (
	"fmt"
	"time"
)

// reportZone is a fixed UTC-5 offset. Delivery counters and report periods
// follow the recipients' day, not the server's, and must not shift when the
// service is deployed in another timezone.
var reportZone = time.FixedZone("UTC-5", -5*60*60)

// ReportTime returns the current time in the reporting timezone.
func ReportTime() time.Time {
	return time.Now().In(reportZone)
}

// CurrentPeriod returns the month name and year of the current reporting period.
func CurrentPeriod() (string, int) {
	t := ReportTime()
	return t.Month().String(), t.Year()
}

// PeriodLabel formats a (month, year) pair for display, e.g. "March 2026".
func PeriodLabel(month string, year int) string {
	return fmt.Sprintf("%s %d", month, year)
}
