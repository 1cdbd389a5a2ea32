package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateDayFirstSeparators(t *testing.T) {
	for _, raw := range []string{"19-11-2025", "19/11/2025", "19.11.2025"} {
		got := Date(raw)
		require.NotNil(t, got, raw)
		assert.Equal(t, "2025-11-19", *got, raw)
	}
}

func TestDateFormats(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"iso date", "2025-11-19", "2025-11-19"},
		{"iso datetime", "2025-11-19T10:30:00Z", "2025-11-19"},
		{"iso datetime with space", "2025-11-19 10:30:00", "2025-11-19"},
		{"single digit day and month", "7-3-2024", "2024-03-07"},
		{"two digit year", "05-01-24", "2024-01-05"},
		{"numeric with time", "07-11-2024 12:30 PM", "2024-11-07"},
		{"ordinal textual", "7th November 2025", "2025-11-07"},
		{"ordinal abbreviation", "1st Sept 2025", "2025-09-01"},
		{"dashed abbreviation", "07-Nov-2025", "2025-11-07"},
		{"abbreviation with dot", "21 Dec. 2023", "2023-12-21"},
		{"lower case month", "2nd june 2022", "2022-06-02"},
		{"month first textual", "November 7, 2025", "2025-11-07"},
		{"month first ordinal", "November 7th, 2025", "2025-11-07"},
		{"weekday prefix", "Monday, 17 November 2025", "2025-11-17"},
		{"slashed iso", "2025/11/19", "2025-11-19"},
		{"compact", "20251119", "2025-11-19"},
		{"padded", "  19-11-2025  ", "2025-11-19"},
		{"non-breaking space", "7th\u00a0November\u00a02025", "2025-11-07"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Date(tt.raw)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestDateNullTokens(t *testing.T) {
	for _, raw := range []string{"", "-", "--", "—", "#", "n/a", "N/A", "na", "nil", "NULL", "undefined", "   "} {
		assert.Nil(t, Date(raw), "%q", raw)
	}
}

func TestDateRejectsGarbage(t *testing.T) {
	tests := []string{
		"31-02-2025",
		"2025-13-01",
		"00-10-2025",
		"19-11-1850",
		"7th Smarch 2025",
		"next week",
		"Pending",
		"12345",
	}
	for _, raw := range tests {
		assert.Nil(t, Date(raw), raw)
	}
}

func TestDateNeverMonthFirst(t *testing.T) {
	got := Date("03/04/2025")
	require.NotNil(t, got)
	assert.Equal(t, "2025-04-03", *got)

	assert.Nil(t, Date("11/19/2025"))
}

func TestParseAnyReadsAmbiguousDayFirst(t *testing.T) {
	got := parseAny("03/04/2024")
	require.NotNil(t, got)
	assert.Equal(t, "2024-04-03", *got)

	got = parseAny("Mar 4, 2024")
	require.NotNil(t, got)
	assert.Equal(t, "2024-03-04", *got)

	assert.Nil(t, parseAny("1700000000"))
	assert.Nil(t, parseAny("Pending"))
}
