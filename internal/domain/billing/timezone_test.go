package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estibas-api/internal/domain/billing"
)

func TestResolveTimezone_PaisesConocidos(t *testing.T) {
	cases := map[string]string{
		"CO": "America/Bogota",
		"MX": "America/Mexico_City",
		"ES": "Europe/Madrid",
		"AR": "America/Argentina/Buenos_Aires",
	}
	for code, want := range cases {
		loc := billing.ResolveTimezone(strPtr(code))
		require.NotNil(t, loc)
		assert.Equal(t, want, loc.String())
	}
}

// El código se canonicaliza: minúsculas, espacios y alfa-3 resuelven igual.
func TestResolveTimezone_NormalizaCodigo(t *testing.T) {
	for _, code := range []string{"co", " CO ", "col", "Col"} {
		loc := billing.ResolveTimezone(strPtr(code))
		assert.Equal(t, "America/Bogota", loc.String(), "código %q debe resolver a Bogotá", code)
	}
}

// Nulo, vacío o desconocido: UTC, jamás error ni panic.
func TestResolveTimezone_DegradaAUTC(t *testing.T) {
	for _, cc := range []*string{nil, strPtr(""), strPtr("   "), strPtr("ZZ"), strPtr("XYZ"), strPtr("123!")} {
		loc := billing.ResolveTimezone(cc)
		require.NotNil(t, loc)
		assert.Equal(t, "UTC", loc.String())
	}
}
