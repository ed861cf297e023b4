package pinboard

import (
	"net/url"
	"strings"
	"time"
)

const (
	defaultCount = 25

	maxBookmarksCount = 1000
	maxNotesCount     = 100

	// maxBatchSize caps batch bookmark and tag deletion.
	maxBatchSize = 100

	timestampLayout      = "2006-01-02T15:04:05-07:00"
	timestampMicroLayout = "2006-01-02T15:04:05.000000-07:00"
)

// String returns a pointer to s, for update fields.
func String(s string) *string { return &s }

// Bool returns a pointer to b, for update fields.
func Bool(b bool) *bool { return &b }

// Time returns a pointer to t, for update fields.
func Time(t time.Time) *time.Time { return &t }

// resourcePath builds the path of a single bookmark or note. The id is
// escaped as one segment; empty and dot ids would resolve to another
// endpoint and are rejected.
func resourcePath(collection, id string) (string, error) {
	switch id {
	case "", ".", "..":
		return "", invalidArgument("invalid id %q", id)
	}
	return collection + "/" + url.PathEscape(id), nil
}

func joinList(items []string) string {
	return strings.Join(items, ",")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// formatTimestamp renders t as ISO-8601 in its own offset. Fractional
// seconds appear only when non-zero, at microsecond precision.
func formatTimestamp(t time.Time) string {
	if t.Nanosecond()/int(time.Microsecond) != 0 {
		return t.Format(timestampMicroLayout)
	}
	return t.Format(timestampLayout)
}

// clampCount applies an upper bound only. Zero and negative values pass
// through for the service to judge.
func clampCount(n, limit int) int {
	return min(n, limit)
}
