package insurance_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"midcar/internal/insurance"
	"midcar/pkg/domain"
	"midcar/pkg/serrors"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func TestParseSpreadsheet_csvSemicolon(t *testing.T) {
	data := "Listado de pólizas - enero\n" +
		"\n" +
		"Nº Póliza;Compañía;Tomador;DNI Tomador;Matrícula;Prima Total;Fecha Efecto;Fecha Vencimiento\n" +
		"P-001;Mapfre;Ana  García;12345678-z;1234 ABC;1.234,56 €;15/01/2024;14/01/2025\n" +
		";;;;;;;\n" +
		";Mapfre;Luis;;;100;01/01/2024;31/12/2024\n" +
		"P-003;Mapfre;;;;100;01/01/2024;31/12/2024\n" +
		"P-004;Allianz;Eva;;9999-XYZ;50;31/02/2024;\n"

	sheet, err := insurance.ParseSpreadsheet("enero.CSV", strings.NewReader(data))
	require.NoError(t, err)

	wantRows := []insurance.ParsedPolicy{{
		Line: 4,
		Policy: domain.InsurancePolicy{
			PolicyNumber:     "P-001",
			Insurer:          "Mapfre",
			HolderName:       "Ana García",
			HolderNationalID: "12345678Z",
			LicensePlate:     "1234ABC",
			Premium:          123456,
			StartDate:        day(2024, time.January, 15),
			EndDate:          day(2025, time.January, 14),
		},
	}}
	if diff := cmp.Diff(wantRows, sheet.Rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}

	wantSkipped := []insurance.SkippedRow{
		{Line: 6, Reason: "missing policy number"},
		{Line: 7, Reason: "missing plate and holder"},
		{Line: 8, Reason: `start_date: invalid date "31/02/2024"`},
	}
	if diff := cmp.Diff(wantSkipped, sheet.Skipped); diff != "" {
		t.Fatalf("skipped mismatch (-want +got):\n%s", diff)
	}

	require.Equal(t, "Nº Póliza", sheet.Columns[insurance.FieldPolicyNumber])
	require.Equal(t, "DNI Tomador", sheet.Columns[insurance.FieldHolderNationalID])
	require.Equal(t, "Tomador", sheet.Columns[insurance.FieldHolderName])
	require.Equal(t, "Prima Total", sheet.Columns[insurance.FieldPremium])
	require.NotContains(t, sheet.Columns, insurance.FieldCoverage)
}

func TestParseSpreadsheet_csvCommaWindows1252(t *testing.T) {
	utf := "policy number,plate,holder,premium,end date\r\n" +
		"\"A,1\",5555-BCD,José Núñez,\"1,050.00\",2025-06-30\r\n"
	data, err := charmap.Windows1252.NewEncoder().String(utf)
	require.NoError(t, err)

	sheet, err := insurance.ParseSpreadsheet("export.csv", strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, sheet.Rows, 1)

	p := sheet.Rows[0].Policy
	require.Equal(t, "A,1", p.PolicyNumber)
	require.Equal(t, "José Núñez", p.HolderName)
	require.Equal(t, domain.Money(105000), p.Premium)
	require.Equal(t, day(2025, time.June, 30), p.EndDate)
	require.True(t, p.StartDate.IsZero())
}

func TestParseSpreadsheet_xlsx(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Aseguradora", "Número de póliza", "Matrícula", "Prima", "Vencimiento", "Modalidad"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Mutua", 98765, "0001-bbb", 345.67, 45671, "Todo riesgo"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"Mutua", "98766", "", 120, "14/01/2025", "Terceros"}))
	require.NoError(t, f.SetSheetRow(sheet, "A4", &[]any{"Mutua", "98767", "0002 ccc", 1234.567, "14/01/2025", "Terceros"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	parsed, err := insurance.ParseSpreadsheet("polizas.xlsx", bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	want := []insurance.ParsedPolicy{
		{Line: 2, Policy: domain.InsurancePolicy{
			PolicyNumber: "98765", Insurer: "Mutua", LicensePlate: "0001BBB", Coverage: "Todo riesgo",
			Premium: 34567, EndDate: day(2025, time.January, 14),
		}},
		{Line: 4, Policy: domain.InsurancePolicy{
			PolicyNumber: "98767", Insurer: "Mutua", LicensePlate: "0002CCC", Coverage: "Terceros",
			Premium: 123457, EndDate: day(2025, time.January, 14),
		}},
	}
	if diff := cmp.Diff(want, parsed.Rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, []insurance.SkippedRow{{Line: 3, Reason: "missing plate and holder"}}, parsed.Skipped)
}

func TestParseSpreadsheet_errors(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
	}{
		{"unsupported type", "policies.pdf", "%PDF"},
		{"no header", "a.csv", "foo;bar\n1;2\n"},
		{"no policy number column", "a.csv", "matricula;tomador;prima\n1234ABC;Ana;10\n"},
		{"broken xlsx", "a.xlsx", "not a zip"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := insurance.ParseSpreadsheet(tt.file, strings.NewReader(tt.data))
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		})
	}
}
