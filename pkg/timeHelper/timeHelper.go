package timehelper

import "time"

func GetTodaysDateString() string {
	// Get the current date
	currentTime := time.Now()

	// Format the date to 'YYYY-MM-DD'
	return currentTime.Format("2006-01-02")
}

// NowString returns the current instant in UTC, RFC3339. Every timestamp
// stored on an event record goes through this so records compare cleanly.
func NowString() string {
	return time.Now().UTC().Format(time.RFC3339)
}
