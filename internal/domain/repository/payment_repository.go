package repository

import (
	"context"

	"github.com/jhoicas/Estibas-api/internal/domain/entity"
)

// PaymentRepository define el puerto de persistencia para Payment (DIP).
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	// Update solo corrige amount/method/notes; la fecha de pago no se toca.
	Update(payment *entity.Payment) error
	ListByCompany(companyID int64, limit, offset int) ([]*entity.Payment, error)
	// LatestPaymentDate devuelve MAX(payment_date) como YYYY-MM-DD, o nil si
	// la empresa no tiene pagos. Solo lee pagos confirmados (committed).
	LatestPaymentDate(ctx context.Context, companyID int64) (*string, error)
}
