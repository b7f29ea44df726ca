package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest entrada para registrar un pago de una empresa.
type CreatePaymentRequest struct {
	CompanyID   int64           `json:"company_id"`
	PaymentDate string          `json:"payment_date"` // YYYY-MM-DD
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"` // transferencia, efectivo, tarjeta, otro
	Notes       string          `json:"notes"`
}

// UpdatePaymentRequest corrección de un pago. La fecha no es corregible por
// esta vía: cambiaría el ciclo de facturación ya derivado.
type UpdatePaymentRequest struct {
	Amount *decimal.Decimal `json:"amount"`
	Method *string          `json:"method"`
	Notes  *string          `json:"notes"`
}

// PaymentResponse salida de un pago.
type PaymentResponse struct {
	ID          string          `json:"id"`
	CompanyID   int64           `json:"company_id"`
	PaymentDate string          `json:"payment_date"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// PaymentListResponse lista paginada de pagos de una empresa.
type PaymentListResponse struct {
	Items []PaymentResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
