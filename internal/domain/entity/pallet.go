package entity

import "time"

// Estados válidos de una estiba.
const (
	PalletDisponible    = "disponible"
	PalletEnUso         = "en_uso"
	PalletMantenimiento = "mantenimiento"
	PalletBaja          = "baja"
)

// Materiales comunes (informativo, no restringido por CHECK).
const (
	MaterialMadera   = "madera"
	MaterialPlastico = "plastico"
	MaterialMetal    = "metal"
)

// Pallet representa una estiba rastreada en bodega (pertenece a una Company).
// Code es único por empresa.
type Pallet struct {
	ID        string
	CompanyID int64
	Code      string
	Location  string // bodega o ubicación física
	Status    string // ver constantes Pallet*
	Material  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
