package insurance

import (
	"midcar/pkg/textfold"
	"slices"
	"strings"
)

// Field is a policy attribute that can be read from a spreadsheet column.
type Field string

const (
	FieldPolicyNumber     Field = "policy_number"
	FieldInsurer          Field = "insurer"
	FieldHolderName       Field = "holder_name"
	FieldHolderNationalID Field = "holder_national_id"
	FieldLicensePlate     Field = "license_plate"
	FieldCoverage         Field = "coverage"
	FieldPremium          Field = "premium"
	FieldStartDate        Field = "start_date"
	FieldEndDate          Field = "end_date"
)

const (
	// headerScanRows is how many leading rows are searched for the header.
	headerScanRows = 10
	shortSynonym   = 3
)

// synonyms lists, per field, the folded header names that identify it, most
// specific first. Fields are matched in this order so that specific headers
// ("dni tomador") are claimed before generic ones ("tomador").
//
//nolint: gochecknoglobals
var synonyms = []struct {
	field Field
	names []string
}{
	{FieldPolicyNumber, []string{"numeropoliza", "npoliza", "nopoliza", "numpoliza", "policynumber", "poliza", "policy", "contrato"}},
	{FieldHolderNationalID, []string{"dni", "nif", "nie", "cif", "documento", "nationalid"}},
	{FieldLicensePlate, []string{"matricula", "placa", "plate"}},
	{FieldInsurer, []string{"aseguradora", "compania", "insurer", "entidad", "cia"}},
	{FieldStartDate, []string{"fechaefecto", "efecto", "fechainicio", "inicio", "fechaalta", "startdate"}},
	{FieldEndDate, []string{"fechavencimiento", "vencimiento", "fechafin", "caducidad", "renovacion", "enddate", "fin"}},
	{FieldPremium, []string{"primatotal", "primaneta", "prima", "importe", "premium", "precio"}},
	{FieldCoverage, []string{"cobertura", "modalidad", "garantias", "coverage", "tipo"}},
	{FieldHolderName, []string{"tomador", "titular", "asegurado", "nombre", "cliente", "holder"}},
}

// matchColumns assigns header columns to fields and returns field -> column
// index. For every field, synonyms are tried in order and the first header
// equal to or containing the synonym wins; exact matches beat containment.
// Synonyms of up to shortSynonym letters must be a whole word of the header,
// so "cia" matches "Cía. aseguradora" but not "Referencia". A column serves
// at most one field.
func matchColumns(header []string) map[Field]int {
	keys := make([]string, len(header))
	words := make([][]string, len(header))
	for i, h := range header {
		keys[i] = textfold.Key(h)
		words[i] = strings.Split(textfold.Slug(h), "-")
	}

	taken := make(map[int]bool, len(header))
	out := make(map[Field]int)
	find := func(syn string, exact bool) int {
		for i, k := range keys {
			if k == "" || taken[i] {
				continue
			}
			switch {
			case k == syn:
				return i
			case exact:
			case len(syn) <= shortSynonym:
				if slices.Contains(words[i], syn) {
					return i
				}
			case strings.Contains(k, syn):
				return i
			}
		}

		return -1
	}

	for _, s := range synonyms {
	names:
		for _, syn := range s.names {
			for _, exact := range []bool{true, false} {
				if i := find(syn, exact); i >= 0 {
					out[s.field] = i
					taken[i] = true

					break names
				}
			}
		}
	}

	return out
}

// findHeader returns the index of the first row among the leading rows that
// maps at least two columns, with its column mapping.
func findHeader(rows [][]string) (int, map[Field]int, bool) {
	for i := 0; i < len(rows) && i < headerScanRows; i++ {
		if cols := matchColumns(rows[i]); len(cols) >= 2 {
			return i, cols, true
		}
	}

	return 0, nil, false
}
