package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Estibas-api/internal/domain/billing"
	"github.com/jhoicas/Estibas-api/internal/domain/entity"
	"github.com/jhoicas/Estibas-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

// Create persiste una nueva empresa y devuelve el ID serial asignado.
func (r *CompanyRepo) Create(company *entity.Company) (int64, error) {
	query := `
		INSERT INTO companies (name, nit, billing_frequency, country_code, address, phone, email, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	var id int64
	err := r.pool.QueryRow(context.Background(), query,
		company.Name, company.NIT, string(company.BillingFrequency), company.CountryCode,
		company.Address, company.Phone, company.Email, company.Active,
		company.CreatedAt, company.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert company: %w", err)
	}
	return id, nil
}

// GetByID obtiene una empresa por ID. Devuelve (nil, nil) si no existe.
func (r *CompanyRepo) GetByID(id int64) (*entity.Company, error) {
	query := `
		SELECT id, name, nit, billing_frequency, country_code, address, phone, email, active, created_at, updated_at
		FROM companies WHERE id = $1`
	c, err := scanCompany(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// GetByNIT obtiene una empresa por NIT.
func (r *CompanyRepo) GetByNIT(nit string) (*entity.Company, error) {
	query := `
		SELECT id, name, nit, billing_frequency, country_code, address, phone, email, active, created_at, updated_at
		FROM companies WHERE nit = $1`
	c, err := scanCompany(r.pool.QueryRow(context.Background(), query, nit))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by NIT: %w", err)
	}
	return c, nil
}

// Update actualiza una empresa existente.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies
		SET name = $2, nit = $3, billing_frequency = $4, country_code = $5,
		    address = $6, phone = $7, email = $8, active = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		company.ID, company.Name, company.NIT, string(company.BillingFrequency),
		company.CountryCode, company.Address, company.Phone, company.Email,
		company.Active, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// List devuelve empresas con paginación.
func (r *CompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	query := `
		SELECT id, name, nit, billing_frequency, country_code, address, phone, email, active, created_at, updated_at
		FROM companies ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// rowScanner cubre pgx.Row y pgx.Rows para compartir el scan.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCompany(row rowScanner) (*entity.Company, error) {
	var c entity.Company
	var freq string
	if err := row.Scan(
		&c.ID, &c.Name, &c.NIT, &freq, &c.CountryCode,
		&c.Address, &c.Phone, &c.Email, &c.Active,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	c.BillingFrequency = billing.Frequency(freq)
	return &c, nil
}
