package insurance

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/xuri/excelize/v2"
)

const (
	// maxExcelSerial is 9999-12-31 as an Excel serial date.
	maxExcelSerial = 2958465
	// twoDigitPivot splits two digit years between 19xx and 20xx.
	twoDigitPivot = 70
)

// parseDate reads the date formats found in insurer sheets: Excel serial
// numbers, dd/mm/yyyy with '/', '-' or '.' separators, yyyy-mm-dd and two
// digit years. A trailing time part is ignored.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if serial < 1 || serial > maxExcelSerial {
			return time.Time{}, fmt.Errorf("date serial %q out of range", s)
		}
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date serial %q: %w", s, err)
		}
		y, m, d := t.Date()

		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}

	if i := strings.IndexAny(s, " T"); i > 0 {
		s = s[:i]
	}
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '/' || r == '-' || r == '.' })
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("unrecognised date %q", s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, fmt.Errorf("unrecognised date %q", s)
		}
		nums[i] = n
	}

	day, month, year := nums[0], nums[1], nums[2]
	if len(parts[0]) == 4 {
		year, month, day = nums[0], nums[1], nums[2]
	}
	if year < 100 {
		if year < twoDigitPivot {
			year += 2000
		} else {
			year += 1900
		}
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}

	return t, nil
}

// parseCellAmount reads an amount from an xlsx cell. Numeric cells hold plain
// decimals such as "1234.567"; text cells go through parseAmount.
func parseCellAmount(s string) (int64, error) {
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return int64(math.Round(f * 100)), nil
	}

	return parseAmount(s)
}

// parseAmount reads a euro amount written either way round ("1.234,56",
// "1,234.56", "1234,56") with optional currency marks, and returns cents.
func parseAmount(s string) (int64, error) {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) || r == ',' || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if clean == "" {
		return 0, nil
	}

	lastComma := strings.LastIndexByte(clean, ',')
	lastDot := strings.LastIndexByte(clean, '.')
	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			clean = strings.ReplaceAll(clean, ".", "")
			clean = strings.Replace(clean, ",", ".", 1)
		} else {
			clean = strings.ReplaceAll(clean, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(clean, ",") == 1 && len(clean)-lastComma-1 <= 2 {
			clean = strings.Replace(clean, ",", ".", 1)
		} else {
			clean = strings.ReplaceAll(clean, ",", "")
		}
	case lastDot >= 0:
		if strings.Count(clean, ".") > 1 || len(clean)-lastDot-1 == 3 {
			clean = strings.ReplaceAll(clean, ".", "")
		}
	}

	f, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	return int64(math.Round(f * 100)), nil
}
