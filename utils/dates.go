// utils/dates.go
package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// LastNDays returns the start of each of the n trailing days ending today.
func LastNDays(n int, from time.Time) []time.Time {
	start := BeginningOfDay(from).AddDate(0, 0, -(n - 1))
	days := make([]time.Time, n)
	for i := 0; i < n; i++ {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}
