package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Estibas-api/internal/domain"
	"github.com/jhoicas/Estibas-api/internal/domain/entity"
	"github.com/jhoicas/Estibas-api/internal/domain/repository"
)

// Asegura que PalletRepo implementa repository.PalletRepository.
var _ repository.PalletRepository = (*PalletRepo)(nil)

// PalletRepo implementación del puerto PalletRepository sobre PostgreSQL.
type PalletRepo struct {
	pool *pgxpool.Pool
}

// NewPalletRepository construye el adaptador de persistencia para estibas.
func NewPalletRepository(pool *pgxpool.Pool) *PalletRepo {
	return &PalletRepo{pool: pool}
}

// Create persiste una nueva estiba. Devuelve domain.ErrDuplicate si el código
// ya existe en la empresa (constraint único company_id+code).
func (r *PalletRepo) Create(pallet *entity.Pallet) error {
	query := `
		INSERT INTO pallets (id, company_id, code, location, status, material, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		pallet.ID, pallet.CompanyID, pallet.Code, pallet.Location,
		pallet.Status, pallet.Material, pallet.CreatedAt, pallet.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert pallet: %w", err)
	}
	return nil
}

// GetByID obtiene una estiba por ID. Devuelve (nil, nil) si no existe.
func (r *PalletRepo) GetByID(id string) (*entity.Pallet, error) {
	query := `
		SELECT id, company_id, code, location, status, material, created_at, updated_at
		FROM pallets WHERE id = $1`
	var p entity.Pallet
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CompanyID, &p.Code, &p.Location, &p.Status, &p.Material,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pallet: %w", err)
	}
	return &p, nil
}

// GetByCode obtiene una estiba por código dentro de una empresa.
func (r *PalletRepo) GetByCode(companyID int64, code string) (*entity.Pallet, error) {
	query := `
		SELECT id, company_id, code, location, status, material, created_at, updated_at
		FROM pallets WHERE company_id = $1 AND code = $2`
	var p entity.Pallet
	err := r.pool.QueryRow(context.Background(), query, companyID, code).Scan(
		&p.ID, &p.CompanyID, &p.Code, &p.Location, &p.Status, &p.Material,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pallet by code: %w", err)
	}
	return &p, nil
}

// Update actualiza ubicación, estado y material.
func (r *PalletRepo) Update(pallet *entity.Pallet) error {
	query := `
		UPDATE pallets SET location = $2, status = $3, material = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		pallet.ID, pallet.Location, pallet.Status, pallet.Material, pallet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update pallet: %w", err)
	}
	return nil
}

// ListByCompany devuelve las estibas de una empresa ordenadas por código.
func (r *PalletRepo) ListByCompany(companyID int64, limit, offset int) ([]*entity.Pallet, error) {
	query := `
		SELECT id, company_id, code, location, status, material, created_at, updated_at
		FROM pallets WHERE company_id = $1
		ORDER BY code LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pallets: %w", err)
	}
	defer rows.Close()

	var list []*entity.Pallet
	for rows.Next() {
		var p entity.Pallet
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.Code, &p.Location, &p.Status, &p.Material, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pallet: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
