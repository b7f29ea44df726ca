package repository

import "github.com/jhoicas/Estibas-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	// Create persiste la empresa y devuelve el ID asignado por la DB.
	Create(company *entity.Company) (int64, error)
	GetByID(id int64) (*entity.Company, error)
	GetByNIT(nit string) (*entity.Company, error)
	Update(company *entity.Company) error
	List(limit, offset int) ([]*entity.Company, error)
}
