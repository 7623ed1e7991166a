package validation

import (
	"testing"
	"time"

	"gamerental/internal/app/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)

func TestParseBirthDateAccepted(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"05/11/2003", time.Date(2003, time.November, 5, 0, 0, 0, 0, time.UTC)},
		{"2003-11-05", time.Date(2003, time.November, 5, 0, 0, 0, 0, time.UTC)},
		{"01/01/1900", time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{"29/02/2000", time.Date(2000, time.February, 29, 0, 0, 0, 0, time.UTC)},
		{" 13/05/1982 ", time.Date(1982, time.May, 13, 0, 0, 0, 0, time.UTC)},
		{"31/12/2026", time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBirthDate(tt.in, fixedNow)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestParseBirthDateRejected(t *testing.T) {
	tests := []string{
		"",
		"00/10/2000",
		"10/00/2000",
		"10/10/0000",
		"31/02/2001",
		"31/12/1899",
		"01/01/2027",
		"1899-12-31",
		"2030-01-01",
		"hello",
		"10/10",
		"aa/bb/cccc",
		"2000-13-01",
		"1/2/3/4",
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := ParseBirthDate(in, fixedNow)
			require.Error(t, err)
			e, ok := apperr.From(err)
			require.True(t, ok, "expected typed error, got %v", err)
			assert.Equal(t, apperr.KindInvalid, e.Kind)
		})
	}
}

func TestParseBirthDateRoundTrip(t *testing.T) {
	for d := time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC); d.Year() <= fixedNow.Year(); d = d.AddDate(0, 0, 97) {
		s := FormatBirthDate(d)
		got, err := ParseBirthDate(s, fixedNow)
		require.NoError(t, err, s)
		assert.Equal(t, s, FormatBirthDate(got))
	}
}

func TestFormatBirthDateZero(t *testing.T) {
	assert.Equal(t, "", FormatBirthDate(time.Time{}))
}
