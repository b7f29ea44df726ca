package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estibas-api/internal/application/dto"
	"github.com/jhoicas/Estibas-api/internal/domain"
	"github.com/jhoicas/Estibas-api/internal/domain/billing"
	"github.com/jhoicas/Estibas-api/internal/domain/entity"
	"github.com/jhoicas/Estibas-api/internal/domain/repository"
)

// PaymentUseCase casos de uso del libro de pagos: registrar, corregir, listar.
type PaymentUseCase struct {
	payments  repository.PaymentRepository
	companies repository.CompanyRepository
}

// NewPaymentUseCase construye el caso de uso con sus puertos.
func NewPaymentUseCase(payments repository.PaymentRepository, companies repository.CompanyRepository) *PaymentUseCase {
	return &PaymentUseCase{payments: payments, companies: companies}
}

// Register registra un pago para una empresa. Valida fecha (YYYY-MM-DD),
// método y monto positivo. La inserción cambia el MAX(payment_date) efectivo
// y con eso el estado de facturación en la próxima lectura; no hay paso de
// transición explícito.
func (uc *PaymentUseCase) Register(in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	company, err := uc.companies.GetByID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := time.Parse(billing.DateLayout, in.PaymentDate); err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPaymentDate, in.PaymentDate)
	}
	if !validMethod(in.Method) {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	payment := &entity.Payment{
		ID:          uuid.New().String(),
		CompanyID:   in.CompanyID,
		PaymentDate: in.PaymentDate,
		Amount:      in.Amount,
		Method:      in.Method,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.payments.Create(payment); err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// Correct corrige amount/method/notes de un pago existente. La fecha de pago
// queda fuera a propósito: mutarla reescribiría el ciclo de facturación.
func (uc *PaymentUseCase) Correct(id string, in dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	payment, err := uc.payments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}
	if in.Amount != nil {
		if !in.Amount.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		payment.Amount = *in.Amount
	}
	if in.Method != nil {
		if !validMethod(*in.Method) {
			return nil, domain.ErrInvalidInput
		}
		payment.Method = *in.Method
	}
	if in.Notes != nil {
		payment.Notes = *in.Notes
	}
	payment.UpdatedAt = time.Now()
	if err := uc.payments.Update(payment); err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// GetByID obtiene un pago por ID.
func (uc *PaymentUseCase) GetByID(id string) (*dto.PaymentResponse, error) {
	payment, err := uc.payments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, nil
	}
	return toPaymentResponse(payment), nil
}

// ListByCompany lista los pagos de una empresa con paginación.
func (uc *PaymentUseCase) ListByCompany(companyID int64, limit, offset int) (*dto.PaymentListResponse, error) {
	list, err := uc.payments.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPaymentResponse(p))
	}
	return &dto.PaymentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func validMethod(m string) bool {
	switch m {
	case entity.PaymentMethodTransferencia, entity.PaymentMethodEfectivo,
		entity.PaymentMethodTarjeta, entity.PaymentMethodOtro:
		return true
	}
	return false
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	if p == nil {
		return nil
	}
	return &dto.PaymentResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		PaymentDate: p.PaymentDate,
		Amount:      p.Amount,
		Method:      p.Method,
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
