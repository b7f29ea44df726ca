package usecase

import (
	"context"

	"github.com/jhoicas/Estibas-api/internal/domain"
	"github.com/jhoicas/Estibas-api/internal/domain/entity"
	"github.com/jhoicas/Estibas-api/internal/domain/repository"
)

// ReceiptPDFGenerator puerto para la representación gráfica del recibo de pago.
// La implementación (Maroto) vive en infrastructure/pdf.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, payment *entity.Payment, company *entity.Company) ([]byte, error)
}

// ReceiptUseCase genera el PDF del recibo de un pago.
type ReceiptUseCase struct {
	payments  repository.PaymentRepository
	companies repository.CompanyRepository
	pdf       ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso del recibo.
func NewReceiptUseCase(payments repository.PaymentRepository, companies repository.CompanyRepository, pdf ReceiptPDFGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{payments: payments, companies: companies, pdf: pdf}
}

// Generate busca pago y empresa y produce los bytes del PDF.
func (uc *ReceiptUseCase) Generate(ctx context.Context, paymentID string) ([]byte, error) {
	payment, err := uc.payments.GetByID(paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companies.GetByID(payment.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdf.GenerateReceiptPDF(ctx, payment, company)
}
