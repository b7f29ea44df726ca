package repository

import "github.com/jhoicas/Estibas-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
	GetByEmailAndCompany(email string, companyID int64) (*entity.User, error)
}
