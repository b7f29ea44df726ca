package entity

import (
	"time"

	"github.com/jhoicas/Estibas-api/internal/domain/billing"
)

// BaseCompanyID identifica la empresa base del sistema. Invariante: siempre
// frecuencia permanent y siempre activa; los casos de uso rechazan cualquier
// actualización que lo viole antes de tocar el calculador.
const BaseCompanyID int64 = 1

// Company representa una organización/tenant del sistema (multi-tenant).
type Company struct {
	ID               int64
	Name             string
	NIT              string // NIT colombiano (con o sin dígito de verificación)
	BillingFrequency billing.Frequency
	CountryCode      *string // ISO 3166-1 alfa-2; nil si no se conoce
	Address          string
	Phone            string
	Email            string
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
