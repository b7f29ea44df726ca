package repository

import "github.com/jhoicas/Estibas-api/internal/domain/entity"

// PalletRepository define el puerto de persistencia para Pallet (DIP).
type PalletRepository interface {
	Create(pallet *entity.Pallet) error
	GetByID(id string) (*entity.Pallet, error)
	GetByCode(companyID int64, code string) (*entity.Pallet, error)
	Update(pallet *entity.Pallet) error
	ListByCompany(companyID int64, limit, offset int) ([]*entity.Pallet, error)
}
