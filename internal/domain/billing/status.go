// Package billing implementa el cálculo del ciclo de facturación por empresa:
// dada la frecuencia de pago y la fecha del último pago registrado, determina
// cuándo vence el siguiente pago y si el acceso del tenant debe estar
// bloqueado en este instante. Es un servicio de dominio puro: sin I/O, sin
// estado y seguro para llamadas concurrentes.
package billing

import (
	"fmt"
	"time"

	"github.com/jhoicas/Estibas-api/internal/domain"
)

// Frequency frecuencia de pago de una empresa.
type Frequency string

// Frecuencias reconocidas. "permanent" significa que la empresa no vuelve a
// pagar después de su primer pago.
const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyYearly    Frequency = "yearly"
	FrequencyPermanent Frequency = "permanent"
)

// Valid informa si la frecuencia es una de las reconocidas.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyMonthly, FrequencyYearly, FrequencyPermanent:
		return true
	}
	return false
}

// DateLayout formato de las fechas de pago (solo fecha, sin hora ni zona).
const DateLayout = "2006-01-02"

// Status estado de facturación derivado de una empresa. Nunca se persiste:
// se recalcula en cada lectura porque el paso del tiempo lo cambia sin que
// haya escrituras.
type Status struct {
	LastPaymentDate *string
	NextPaymentDate *string
	IsBlocked       bool
}

// ComputeStatus calcula el estado de facturación de una empresa.
//
// Reglas:
//   - Sin pago registrado (lastPaymentDate nil): bloqueada siempre, sin
//     importar la frecuencia.
//   - permanent: con al menos un pago nunca vuelve a bloquearse.
//   - monthly/yearly: el vencimiento es un mes/año calendario después del
//     último pago, evaluado en la zona horaria de la empresa. Si el mes
//     destino es más corto, el día se ancla al último día válido. El bloqueo
//     aplica desde el primer instante del día de vencimiento (inclusive).
//   - Frecuencia no reconocida: bloqueada sin próxima fecha. Todo caso
//     ambiguo resuelve hacia bloquear, nunca hacia permitir.
//
// El único error posible es una fecha de pago mal formada: indica corrupción
// de datos aguas arriba y debe llegar al caller en vez de coaccionarse.
func ComputeStatus(freq Frequency, lastPaymentDate *string, countryCode *string, now time.Time) (Status, error) {
	if lastPaymentDate == nil {
		return Status{IsBlocked: true}, nil
	}
	last := *lastPaymentDate

	if freq == FrequencyPermanent {
		return Status{LastPaymentDate: &last}, nil
	}

	var months int
	switch freq {
	case FrequencyMonthly:
		months = 1
	case FrequencyYearly:
		months = 12
	default:
		return Status{LastPaymentDate: &last, IsBlocked: true}, nil
	}

	loc := ResolveTimezone(countryCode)

	// Ancla la fecha (sin zona implícita) al inicio de ese día calendario en
	// la zona de la empresa; ese es el instante de referencia del ciclo.
	anchor, err := time.ParseInLocation(DateLayout, last, loc)
	if err != nil {
		return Status{}, fmt.Errorf("%w: %q: %v", domain.ErrInvalidPaymentDate, last, err)
	}

	// El instante de bloqueo es el inicio del día de vencimiento en la zona
	// de la empresa, con el offset real de esa fecha (incluye DST).
	due := addMonthsClamped(anchor, months, loc)
	next := due.Format(DateLayout)

	return Status{
		LastPaymentDate: &last,
		NextPaymentDate: &next,
		IsBlocked:       !now.Before(due), // inclusivo: bloquea desde el primer instante del día
	}, nil
}

// addMonthsClamped avanza months meses calendario preservando el día cuando
// existe en el mes destino; si no existe, ancla al último día válido
// (31 ene + 1 mes → 28/29 feb, nunca 2/3 mar). No se usa time.AddDate porque
// normaliza el desborde hacia el mes siguiente.
func addMonthsClamped(t time.Time, months int, loc *time.Location) time.Time {
	year, month, day := t.Date()
	m := int(month) - 1 + months
	year += m / 12
	month = time.Month(m%12 + 1)
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// daysInMonth devuelve cuántos días tiene el mes: el día 0 del mes siguiente
// normaliza al último día del mes pedido.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
