package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name             string  `json:"name"`
	NIT              string  `json:"nit"`
	BillingFrequency string  `json:"billing_frequency"` // monthly, yearly, permanent
	CountryCode      *string `json:"country_code"`      // ISO 3166-1 alfa-2, opcional
	Address          string  `json:"address"`
	Phone            string  `json:"phone"`
	Email            string  `json:"email"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales).
type UpdateCompanyRequest struct {
	Name             *string `json:"name"`
	BillingFrequency *string `json:"billing_frequency"`
	CountryCode      *string `json:"country_code"`
	Address          *string `json:"address"`
	Phone            *string `json:"phone"`
	Email            *string `json:"email"`
}

// BillingStatusResponse estado de facturación derivado; se calcula en cada
// lectura, nunca se persiste.
type BillingStatusResponse struct {
	LastPaymentDate *string `json:"last_payment_date"`
	NextPaymentDate *string `json:"next_payment_date"`
	IsBlocked       bool    `json:"is_blocked"`
}

// CompanyResponse salida de una empresa con su estado de facturación.
type CompanyResponse struct {
	ID               int64                 `json:"id"`
	Name             string                `json:"name"`
	NIT              string                `json:"nit"`
	BillingFrequency string                `json:"billing_frequency"`
	CountryCode      *string               `json:"country_code"`
	Address          string                `json:"address"`
	Phone            string                `json:"phone"`
	Email            string                `json:"email"`
	Active           bool                  `json:"active"`
	Billing          BillingStatusResponse `json:"billing"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
