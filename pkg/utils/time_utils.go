// utils/timeutil.go
package utils

import "time"

// Use explicit "seconds" variant for DB storage (recommended)
func NowUnixSeconds() int64 { return time.Now().Unix() }

// FormatUnixSeconds renders an epoch value in **seconds** for
// human-facing documents. Returns an empty string if t<=0 to let
// callers decide how to render.
func FormatUnixSeconds(t int64) string {
	if t <= 0 {
		return ""
	}
	return time.Unix(t, 0).UTC().Format("2006-01-02 15:04:05 MST")
}
