package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados.
const (
	PaymentMethodTransferencia = "transferencia"
	PaymentMethodEfectivo      = "efectivo"
	PaymentMethodTarjeta       = "tarjeta"
	PaymentMethodOtro          = "otro"
)

// Payment registro de un pago de una empresa. Es append-only salvo
// correcciones de amount/method/notes; la fecha de pago nunca se muta.
// Para el cálculo de facturación solo importa el MAX(payment_date) de la
// empresa: no hay "crédito" acumulado por pagos anteriores.
type Payment struct {
	ID          string
	CompanyID   int64
	PaymentDate string // YYYY-MM-DD, sin hora ni zona
	Amount      decimal.Decimal
	Method      string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
