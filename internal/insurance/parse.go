package insurance

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"midcar/pkg/domain"
	"midcar/pkg/serrors"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

// MaxImportBytes is the largest spreadsheet accepted by the importer.
const MaxImportBytes = 20 << 20

// ParsedPolicy is a policy read from a spreadsheet row.
type ParsedPolicy struct {
	// Line is the 1-based row number in the sheet.
	Line   int
	Policy domain.InsurancePolicy
}

// Sheet is the outcome of parsing an insurer spreadsheet.
type Sheet struct {
	// Columns maps each recognised field to its header text.
	Columns map[Field]string
	Rows    []ParsedPolicy
	Skipped []SkippedRow
}

// ParseSpreadsheet reads the policies of an .xlsx (first sheet) or .csv file.
// The file type is taken from the extension of name.
func ParseSpreadsheet(name string, r io.Reader) (*Sheet, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImportBytes+1))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not read spreadsheet")
	}
	if len(data) > MaxImportBytes {
		return nil, serrors.With(serrors.ErrBadRequest, "spreadsheet exceeds %d bytes", MaxImportBytes)
	}

	var t *table
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".xlsx":
		t, err = readXLSX(data)
	case ".csv":
		t, err = readCSV(data)
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "unsupported spreadsheet type %q", ext)
	}
	if err != nil {
		return nil, err
	}

	return parseTable(t)
}

// table holds the cells of a sheet and the 1-based line of every row.
type table struct {
	rows  [][]string
	lines []int
	// raw marks xlsx cells, where numbers are plain decimals without grouping
	raw bool
}

func readXLSX(data []byte) (*table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not open xlsx")
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "xlsx has no sheets")
	}
	// raw values keep dates as serial numbers instead of locale formatted text
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not read sheet %q", sheets[0])
	}

	t := &table{rows: rows, lines: make([]int, len(rows)), raw: true}
	for i := range rows {
		t.lines[i] = i + 1
	}

	return t, nil
}

func readCSV(data []byte) (*table, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if !utf8.Valid(data) {
		// spreadsheet programs on Windows export CSV as cp1252
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not decode csv")
		}
		data = decoded
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = detectDelimiter(data)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	t := &table{}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not parse csv")
		}
		// empty lines are dropped by the reader, so keep the source line
		line, _ := cr.FieldPos(0)
		t.rows = append(t.rows, record)
		t.lines = append(t.lines, line)
	}

	return t, nil
}

// detectDelimiter picks ';', tab or ',' by counting them on the leading
// non-blank lines, where the header is looked for.
func detectDelimiter(data []byte) rune {
	var semicolons, tabs, commas, seen int
	for _, l := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(l) == "" {
			continue
		}
		semicolons += strings.Count(l, ";")
		tabs += strings.Count(l, "\t")
		commas += strings.Count(l, ",")
		seen++
		if seen == headerScanRows {
			break
		}
	}

	switch {
	case semicolons > commas && semicolons >= tabs:
		return ';'
	case tabs > commas:
		return '\t'
	default:
		return ','
	}
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}

func parseTable(t *table) (*Sheet, error) {
	rows := t.rows
	hi, cols, ok := findHeader(rows)
	if !ok {
		return nil, serrors.With(serrors.ErrBadRequest,
			"no header row found in the first %d rows", headerScanRows)
	}
	if _, ok := cols[FieldPolicyNumber]; !ok {
		return nil, serrors.With(serrors.ErrBadRequest, "no policy number column found")
	}

	sheet := &Sheet{Columns: make(map[Field]string, len(cols))}
	for f, i := range cols {
		sheet.Columns[f] = strings.TrimSpace(rows[hi][i])
	}

	amount := parseAmount
	if t.raw {
		amount = parseCellAmount
	}
	for i := hi + 1; i < len(rows); i++ {
		if blank(rows[i]) {
			continue
		}
		line := t.lines[i]
		p, reason := parsePolicy(rows[i], cols, amount)
		if reason != "" {
			sheet.Skipped = append(sheet.Skipped, SkippedRow{Line: line, Reason: reason})
			continue
		}
		sheet.Rows = append(sheet.Rows, ParsedPolicy{Line: line, Policy: p})
	}

	return sheet, nil
}

// parsePolicy builds a policy from a data row. A non-empty reason means the
// row must be skipped.
func parsePolicy(row []string,
	cols map[Field]int,
	amount func(string) (int64, error)) (domain.InsurancePolicy, string) {
	cell := func(f Field) string {
		i, ok := cols[f]
		if !ok || i >= len(row) {
			return ""
		}

		return strings.TrimSpace(row[i])
	}

	p := domain.InsurancePolicy{
		PolicyNumber:     cell(FieldPolicyNumber),
		Insurer:          cell(FieldInsurer),
		HolderName:       strings.Join(strings.Fields(cell(FieldHolderName)), " "),
		HolderNationalID: domain.NormalizeNationalID(cell(FieldHolderNationalID)),
		LicensePlate:     domain.NormalizePlate(cell(FieldLicensePlate)),
		Coverage:         cell(FieldCoverage),
	}
	if p.PolicyNumber == "" {
		return p, "missing policy number"
	}
	if p.LicensePlate == "" && p.HolderName == "" {
		return p, "missing plate and holder"
	}

	premium, err := amount(cell(FieldPremium))
	if err != nil {
		return p, err.Error()
	}
	if premium < 0 {
		return p, fmt.Sprintf("negative premium %s", cell(FieldPremium))
	}
	p.Premium = domain.Money(premium)

	dates := []struct {
		field Field
		dst   *time.Time
	}{
		{FieldStartDate, &p.StartDate},
		{FieldEndDate, &p.EndDate},
	}
	for _, d := range dates {
		t, err := parseDate(cell(d.field))
		if err != nil {
			return p, fmt.Sprintf("%s: %s", d.field, err)
		}
		*d.dst = t
	}
	if !p.StartDate.IsZero() && !p.EndDate.IsZero() && p.EndDate.Before(p.StartDate) {
		return p, "end date is before start date"
	}

	return p, ""
}
