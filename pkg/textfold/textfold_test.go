package textfold_test

import (
	"strings"
	"testing"

	"midcar/pkg/textfold"

	"github.com/stretchr/testify/require"
)

func TestFold(t *testing.T) {
	require.Equal(t, "compania aseguradora", textfold.Fold("Compañía Aseguradora"))
	require.Equal(t, "diesel", textfold.Fold("DIÉSEL"))
}

func TestKey(t *testing.T) {
	tests := map[string]string{
		"Nº Póliza":         "npoliza",
		" Fecha de Efecto ": "fechadeefecto",
		"Matrícula":         "matricula",
		"D.N.I./N.I.F.":     "dninif",
		"":                  "",
	}
	for in, want := range tests {
		require.Equal(t, want, textfold.Key(in), in)
	}
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"¿Diésel o híbrido? Guía 2025":    "diesel-o-hibrido-guia-2025",
		"  --Ofertas de  Año Nuevo!!  ":   "ofertas-de-ano-nuevo",
		"Cómo pasar la ITV: 5 consejos": "como-pasar-la-itv-5-consejos",
		"¡¡¡":                             "",
	}
	for in, want := range tests {
		require.Equal(t, want, textfold.Slug(in), in)
	}

	long := textfold.Slug(strings.Repeat("palabra ", 30))
	require.LessOrEqual(t, len(long), textfold.MaxSlugLength)
	require.False(t, strings.HasSuffix(long, "-"))
}
