package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Estibas-api/internal/application/dto"
	"github.com/jhoicas/Estibas-api/internal/domain"
	"github.com/jhoicas/Estibas-api/internal/domain/entity"
	"github.com/jhoicas/Estibas-api/internal/domain/repository"
)

// PalletUseCase casos de uso de estibas, siempre acotados a la empresa del
// token (multi-tenant).
type PalletUseCase struct {
	repo repository.PalletRepository
}

// NewPalletUseCase construye el caso de uso con el puerto de persistencia.
func NewPalletUseCase(repo repository.PalletRepository) *PalletUseCase {
	return &PalletUseCase{repo: repo}
}

// Create registra una estiba. Devuelve domain.ErrDuplicate si el código ya
// existe en la empresa.
func (uc *PalletUseCase) Create(companyID int64, in dto.CreatePalletRequest) (*dto.PalletResponse, error) {
	if in.Code == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCode(companyID, in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	pallet := &entity.Pallet{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Code:      in.Code,
		Location:  in.Location,
		Status:    entity.PalletDisponible,
		Material:  in.Material,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(pallet); err != nil {
		return nil, err
	}
	return toPalletResponse(pallet), nil
}

// GetByID obtiene una estiba; domain.ErrForbidden si pertenece a otra empresa.
func (uc *PalletUseCase) GetByID(companyID int64, id string) (*dto.PalletResponse, error) {
	pallet, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pallet == nil {
		return nil, nil
	}
	if pallet.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return toPalletResponse(pallet), nil
}

// Update actualiza ubicación/estado/material de una estiba de la empresa.
func (uc *PalletUseCase) Update(companyID int64, id string, in dto.UpdatePalletRequest) (*dto.PalletResponse, error) {
	pallet, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pallet == nil {
		return nil, domain.ErrNotFound
	}
	if pallet.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if in.Status != nil {
		if !validPalletStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		pallet.Status = *in.Status
	}
	if in.Location != nil {
		pallet.Location = *in.Location
	}
	if in.Material != nil {
		pallet.Material = *in.Material
	}
	pallet.UpdatedAt = time.Now()
	if err := uc.repo.Update(pallet); err != nil {
		return nil, err
	}
	return toPalletResponse(pallet), nil
}

// ListByCompany lista las estibas de la empresa con paginación.
func (uc *PalletUseCase) ListByCompany(companyID int64, limit, offset int) (*dto.PalletListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PalletResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPalletResponse(p))
	}
	return &dto.PalletListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func validPalletStatus(s string) bool {
	switch s {
	case entity.PalletDisponible, entity.PalletEnUso, entity.PalletMantenimiento, entity.PalletBaja:
		return true
	}
	return false
}

func toPalletResponse(p *entity.Pallet) *dto.PalletResponse {
	if p == nil {
		return nil
	}
	return &dto.PalletResponse{
		ID:        p.ID,
		CompanyID: p.CompanyID,
		Code:      p.Code,
		Location:  p.Location,
		Status:    p.Status,
		Material:  p.Material,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
