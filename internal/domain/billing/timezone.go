package billing

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

// countryTimezones mapea código ISO 3166-1 alfa-2 → zona IANA representativa.
// Para países con varias zonas horarias se usa la de la capital (criterio
// comercial: los pagos se pactan contra horario de oficina central).
var countryTimezones = map[string]string{
	"AR": "America/Argentina/Buenos_Aires",
	"AU": "Australia/Sydney",
	"BO": "America/La_Paz",
	"BR": "America/Sao_Paulo",
	"CA": "America/Toronto",
	"CH": "Europe/Zurich",
	"CL": "America/Santiago",
	"CN": "Asia/Shanghai",
	"CO": "America/Bogota",
	"CR": "America/Costa_Rica",
	"CU": "America/Havana",
	"DE": "Europe/Berlin",
	"DO": "America/Santo_Domingo",
	"EC": "America/Guayaquil",
	"ES": "Europe/Madrid",
	"FR": "Europe/Paris",
	"GB": "Europe/London",
	"GT": "America/Guatemala",
	"HN": "America/Tegucigalpa",
	"IN": "Asia/Kolkata",
	"IT": "Europe/Rome",
	"JP": "Asia/Tokyo",
	"MX": "America/Mexico_City",
	"NI": "America/Managua",
	"NL": "Europe/Amsterdam",
	"PA": "America/Panama",
	"PE": "America/Lima",
	"PR": "America/Puerto_Rico",
	"PT": "Europe/Lisbon",
	"PY": "America/Asuncion",
	"SV": "America/El_Salvador",
	"US": "America/New_York",
	"UY": "America/Montevideo",
	"VE": "America/Caracas",
}

// ResolveTimezone devuelve la zona horaria de referencia para una empresa a
// partir de su código de país. Nunca falla: código nulo, desconocido o zona
// no cargable degradan a UTC, porque el cálculo de facturación no debe
// romperse por metadata geográfica incompleta.
func ResolveTimezone(countryCode *string) *time.Location {
	if countryCode == nil {
		return time.UTC
	}
	code := strings.ToUpper(strings.TrimSpace(*countryCode))
	if code == "" {
		return time.UTC
	}
	// Canonicaliza variantes (minúsculas, alfa-3 tipo "COL") a alfa-2.
	if region, err := language.ParseRegion(code); err == nil {
		code = region.String()
	}
	name, ok := countryTimezones[code]
	if !ok {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
