package validation

import (
	"strconv"
	"strings"
	"time"

	"gamerental/internal/app/apperr"
)

const (
	// BirthDateLayout is the DD/MM/YYYY layout used for input and output.
	BirthDateLayout = "02/01/2006"
	isoDateLayout   = "2006-01-02"
	minBirthYear    = 1900
)

// ParseBirthDate accepts DD/MM/YYYY or YYYY-MM-DD. Zero components, dates that do not
// exist on the calendar and years outside [1900, now.Year()] are rejected.
func ParseBirthDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, apperr.Invalid("birth date is required")
	}

	var day, month, year int
	if strings.Contains(s, "/") {
		parts := strings.Split(s, "/")
		if len(parts) != 3 {
			return time.Time{}, invalidFormat()
		}
		nums := make([]int, 3)
		for i, p := range parts {
			n, err := strconv.Atoi(p)
			if err != nil {
				return time.Time{}, invalidFormat()
			}
			nums[i] = n
		}
		day, month, year = nums[0], nums[1], nums[2]
	} else {
		t, err := time.Parse(isoDateLayout, s)
		if err != nil {
			return time.Time{}, invalidFormat()
		}
		var m time.Month
		year, m, day = t.Date()
		month = int(m)
	}

	if day == 0 || month == 0 || year == 0 {
		return time.Time{}, apperr.Invalid("invalid birth date: day, month and year cannot be zero")
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return time.Time{}, invalidFormat()
	}

	if year < minBirthYear || year > now.Year() {
		return time.Time{}, apperr.Invalid("birth year must be between %d and %d", minBirthYear, now.Year())
	}

	return t, nil
}

// FormatBirthDate renders t as DD/MM/YYYY, or "" for the zero time.
func FormatBirthDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(BirthDateLayout)
}

func invalidFormat() error {
	return apperr.Invalid("invalid birth date: use DD/MM/YYYY (e.g. 05/11/2003) or YYYY-MM-DD (e.g. 2003-11-05)")
}
