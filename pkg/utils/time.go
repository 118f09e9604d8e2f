package utils

import "time"

// NowRFC3339 returns the current time in RFC3339 format
func NowRFC3339() string {
	return time.Now().Format(time.RFC3339)
}

// DateStamp returns the current date as YYYY-MM-DD, used to name export
// artifacts.
func DateStamp() string {
	return time.Now().Format("2006-01-02")
}
