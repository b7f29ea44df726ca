package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Estibas-api/internal/application/dto"
	"github.com/jhoicas/Estibas-api/internal/domain/billing"
	"github.com/jhoicas/Estibas-api/internal/domain/entity"
	"github.com/jhoicas/Estibas-api/internal/domain/repository"
)

// BillingService deriva el estado de facturación de una empresa combinando su
// configuración con el último pago registrado. No persiste nada: el estado se
// recalcula en cada lectura porque "now" cambia su verdad sin escrituras.
type BillingService struct {
	companies repository.CompanyRepository
	payments  repository.PaymentRepository
	now       func() time.Time // inyectable en tests
}

// NewBillingService construye el servicio con los puertos de lectura.
func NewBillingService(companies repository.CompanyRepository, payments repository.PaymentRepository) *BillingService {
	return &BillingService{companies: companies, payments: payments, now: time.Now}
}

// StatusFor calcula el BillingStatus para una empresa ya cargada.
func (s *BillingService) StatusFor(ctx context.Context, company *entity.Company) (*dto.BillingStatusResponse, error) {
	last, err := s.payments.LatestPaymentDate(ctx, company.ID)
	if err != nil {
		return nil, err
	}
	st, err := billing.ComputeStatus(company.BillingFrequency, last, company.CountryCode, s.now())
	if err != nil {
		return nil, err
	}
	return &dto.BillingStatusResponse{
		LastPaymentDate: st.LastPaymentDate,
		NextPaymentDate: st.NextPaymentDate,
		IsBlocked:       st.IsBlocked,
	}, nil
}

// IsBlocked informa si la empresa debe tener el acceso bloqueado en este
// instante. Empresa inexistente o desactivada cuenta como bloqueada: todo
// caso ambiguo resuelve hacia bloquear.
func (s *BillingService) IsBlocked(ctx context.Context, companyID int64) (bool, error) {
	company, err := s.companies.GetByID(companyID)
	if err != nil {
		return true, err
	}
	if company == nil || !company.Active {
		return true, nil
	}
	st, err := s.StatusFor(ctx, company)
	if err != nil {
		return true, err
	}
	return st.IsBlocked, nil
}
