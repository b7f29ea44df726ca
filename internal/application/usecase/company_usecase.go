package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Estibas-api/internal/application/dto"
	"github.com/jhoicas/Estibas-api/internal/domain"
	"github.com/jhoicas/Estibas-api/internal/domain/billing"
	"github.com/jhoicas/Estibas-api/internal/domain/entity"
	"github.com/jhoicas/Estibas-api/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
// Toda respuesta de lectura viene enriquecida con el estado de facturación
// recalculado contra el último pago.
type CompanyUseCase struct {
	repo    repository.CompanyRepository
	billing *BillingService
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia y
// el servicio de facturación.
func NewCompanyUseCase(repo repository.CompanyRepository, billingSvc *BillingService) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, billing: billingSvc}
}

// Create crea una nueva empresa. Devuelve domain.ErrDuplicate si el NIT ya
// existe y domain.ErrInvalidInput si la frecuencia no es reconocida.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	freq := billing.Frequency(in.BillingFrequency)
	if !freq.Valid() {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByNIT(in.NIT)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	company := &entity.Company{
		Name:             in.Name,
		NIT:              in.NIT,
		BillingFrequency: freq,
		CountryCode:      normalizeCountry(in.CountryCode),
		Address:          in.Address,
		Phone:            in.Phone,
		Email:            in.Email,
		Active:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	id, err := uc.repo.Create(company)
	if err != nil {
		return nil, err
	}
	company.ID = id
	return uc.toResponse(ctx, company)
}

// GetByID obtiene una empresa por ID con su estado de facturación.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id int64) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return uc.toResponse(ctx, company)
}

// List lista empresas con paginación, cada una con su estado de facturación
// calculado fresco (nunca cacheado).
func (uc *CompanyUseCase) List(ctx context.Context, limit, offset int) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		resp, err := uc.toResponse(ctx, c)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update aplica cambios parciales. La empresa base (ID 1) no puede dejar de
// ser permanent: domain.ErrBaseCompanyProtected.
func (uc *CompanyUseCase) Update(ctx context.Context, id int64, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if in.BillingFrequency != nil {
		freq := billing.Frequency(*in.BillingFrequency)
		if !freq.Valid() {
			return nil, domain.ErrInvalidInput
		}
		if id == entity.BaseCompanyID && freq != billing.FrequencyPermanent {
			return nil, domain.ErrBaseCompanyProtected
		}
		company.BillingFrequency = freq
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.CountryCode != nil {
		company.CountryCode = normalizeCountry(in.CountryCode)
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	if in.Email != nil {
		company.Email = *in.Email
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, company)
}

// Deactivate marca la empresa como inactiva. La empresa base nunca se
// desactiva: domain.ErrBaseCompanyProtected.
func (uc *CompanyUseCase) Deactivate(ctx context.Context, id int64) (*dto.CompanyResponse, error) {
	if id == entity.BaseCompanyID {
		return nil, domain.ErrBaseCompanyProtected
	}
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	company.Active = false
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, company)
}

func (uc *CompanyUseCase) toResponse(ctx context.Context, c *entity.Company) (*dto.CompanyResponse, error) {
	status, err := uc.billing.StatusFor(ctx, c)
	if err != nil {
		return nil, err
	}
	return &dto.CompanyResponse{
		ID:               c.ID,
		Name:             c.Name,
		NIT:              c.NIT,
		BillingFrequency: string(c.BillingFrequency),
		CountryCode:      c.CountryCode,
		Address:          c.Address,
		Phone:            c.Phone,
		Email:            c.Email,
		Active:           c.Active,
		Billing:          *status,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}, nil
}

// normalizeCountry convierte "" en nil para que el país ausente viaje como
// NULL y el resolver degrade a UTC.
func normalizeCountry(cc *string) *string {
	if cc == nil || *cc == "" {
		return nil
	}
	v := *cc
	return &v
}
