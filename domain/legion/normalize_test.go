package legion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanHour(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"suffix marker", "9H", "09:00"},
		{"padded token", "09H", "09:00"},
		{"bare digit", "9", "09:00"},
		{"lowercase marker", "14h", "14:00"},
		{"marker with spaces", " 14 H ", "14:00"},
		{"already normalized", "14:00", "14:00"},
		{"free text", "matin", "matin"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanHour(tt.in))
		})
	}
}

func TestCleanHourIdempotent(t *testing.T) {
	for _, in := range []string{"9H", "09H", "9", "14:00", "matin", ""} {
		once := CleanHour(in)
		assert.Equal(t, once, CleanHour(once), "input %q", in)
	}
}

func TestParseDateDayFirst(t *testing.T) {
	d, err := ParseDate("13/02/2024")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 13, 0, 0, 0, 0, time.UTC), d)

	// Ambiguous day/month resolves day-first.
	d, err = ParseDate("03/04/2024")
	require.NoError(t, err)
	assert.Equal(t, time.April, d.Month())
	assert.Equal(t, 3, d.Day())

	// ISO dates are unambiguous and accepted.
	d, err = ParseDate("2024-04-03")
	require.NoError(t, err)
	assert.Equal(t, time.April, d.Month())
	assert.Equal(t, 3, d.Day())
}

func TestParseDateMalformed(t *testing.T) {
	for _, in := range []string{"", "not a date", "99/99/2024"} {
		_, err := ParseDate(in)
		require.Error(t, err, "input %q", in)
		assert.ErrorIs(t, err, ErrMalformedDate)
	}
}

func TestCleanScore(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1,000", 1000},
		{"1.234", 1234},
		{"1 000", 1000},
		{"12", 12},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"-5", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanScore(tt.in), "input %q", tt.in)
	}
}
