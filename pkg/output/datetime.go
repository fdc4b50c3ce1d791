package output

import "time"

// FormatDate formats an epoch-millisecond timestamp as YYYY-MM-DD (UTC).
func FormatDate(timestampMs int64) string {
	if timestampMs <= 0 {
		return "-"
	}
	return time.UnixMilli(timestampMs).UTC().Format("2006-01-02")
}

// FormatDateTime formats an epoch-millisecond timestamp as a full datetime
// string (UTC).
func FormatDateTime(timestampMs int64) string {
	if timestampMs <= 0 {
		return "-"
	}
	return time.UnixMilli(timestampMs).UTC().Format("2006-01-02 15:04:05 UTC")
}
