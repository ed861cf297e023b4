package pinboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"utc", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), "2023-01-01T00:00:00+00:00"},
		{"positive offset kept", time.Date(2023, 7, 4, 9, 15, 0, 0, time.FixedZone("", 5*3600+1800)), "2023-07-04T09:15:00+05:30"},
		{"negative offset kept", time.Date(2023, 7, 4, 9, 15, 0, 0, time.FixedZone("", -8*3600)), "2023-07-04T09:15:00-08:00"},
		{"microseconds", time.Date(2023, 1, 1, 0, 0, 0, 123456000, time.UTC), "2023-01-01T00:00:00.123456+00:00"},
		{"sub-microsecond dropped", time.Date(2023, 1, 1, 0, 0, 0, 999, time.UTC), "2023-01-01T00:00:00+00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatTimestamp(tt.in))
		})
	}
}

func TestYesNo(t *testing.T) {
	assert.Equal(t, "yes", yesNo(true))
	assert.Equal(t, "no", yesNo(false))
}

func TestClampCount(t *testing.T) {
	assert.Equal(t, 1000, clampCount(2000, maxBookmarksCount))
	assert.Equal(t, 25, clampCount(25, maxBookmarksCount))
	assert.Equal(t, 100, clampCount(200, maxNotesCount))
	assert.Equal(t, 0, clampCount(0, maxNotesCount))
	assert.Equal(t, -3, clampCount(-3, maxNotesCount))
}

func TestJoinList(t *testing.T) {
	assert.Equal(t, "a,b,c", joinList([]string{"a", "b", "c"}))
	assert.Equal(t, "", joinList(nil))
}

func TestPointerHelpers(t *testing.T) {
	ts := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "x", *String("x"))
	assert.False(t, *Bool(false))
	assert.Equal(t, ts, *Time(ts))
}

func TestResourcePath(t *testing.T) {
	got, err := resourcePath("bookmarks", "abc123")
	assert.NoError(t, err)
	assert.Equal(t, "bookmarks/abc123", got)

	got, err = resourcePath("notes", "../x")
	assert.NoError(t, err)
	assert.Equal(t, "notes/..%2Fx", got)

	for _, id := range []string{"", ".", ".."} {
		_, err := resourcePath("notes", id)
		assert.ErrorIs(t, err, ErrInvalidArgument, "id %q", id)
	}
}
