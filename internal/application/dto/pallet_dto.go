package dto

import "time"

// CreatePalletRequest entrada para registrar una estiba.
type CreatePalletRequest struct {
	Code     string `json:"code"`
	Location string `json:"location"`
	Material string `json:"material"`
}

// UpdatePalletRequest actualización parcial de una estiba.
type UpdatePalletRequest struct {
	Location *string `json:"location"`
	Status   *string `json:"status"` // disponible, en_uso, mantenimiento, baja
	Material *string `json:"material"`
}

// PalletResponse salida de una estiba.
type PalletResponse struct {
	ID        string    `json:"id"`
	CompanyID int64     `json:"company_id"`
	Code      string    `json:"code"`
	Location  string    `json:"location"`
	Status    string    `json:"status"`
	Material  string    `json:"material"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PalletListResponse lista paginada de estibas.
type PalletListResponse struct {
	Items []PalletResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
