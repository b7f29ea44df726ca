package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Estibas-api/internal/domain/entity"
	"github.com/jhoicas/Estibas-api/internal/domain/repository"
)

// Asegura que PaymentRepo implementa repository.PaymentRepository.
var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación del puerto PaymentRepository sobre PostgreSQL.
// payment_date se guarda como DATE y viaja como texto YYYY-MM-DD: el
// calculador valida el formato y así la corrupción aguas arriba se ve.
type PaymentRepo struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository construye el adaptador de persistencia para pagos.
func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

// Create persiste un nuevo pago.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, company_id, payment_date, amount, method, notes, created_at, updated_at)
		VALUES ($1, $2, $3::date, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		payment.ID, payment.CompanyID, payment.PaymentDate, payment.Amount,
		payment.Method, payment.Notes, payment.CreatedAt, payment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID obtiene un pago por ID. Devuelve (nil, nil) si no existe.
func (r *PaymentRepo) GetByID(id string) (*entity.Payment, error) {
	query := `
		SELECT id, company_id, to_char(payment_date, 'YYYY-MM-DD'), amount, method, notes, created_at, updated_at
		FROM payments WHERE id = $1`
	var p entity.Payment
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CompanyID, &p.PaymentDate, &p.Amount, &p.Method, &p.Notes,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// Update corrige amount/method/notes. payment_date queda fuera del SET a
// propósito.
func (r *PaymentRepo) Update(payment *entity.Payment) error {
	query := `
		UPDATE payments SET amount = $2, method = $3, notes = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		payment.ID, payment.Amount, payment.Method, payment.Notes, payment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	return nil
}

// ListByCompany devuelve los pagos de una empresa, más recientes primero.
func (r *PaymentRepo) ListByCompany(companyID int64, limit, offset int) ([]*entity.Payment, error) {
	query := `
		SELECT id, company_id, to_char(payment_date, 'YYYY-MM-DD'), amount, method, notes, created_at, updated_at
		FROM payments WHERE company_id = $1
		ORDER BY payment_date DESC, created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.PaymentDate, &p.Amount, &p.Method, &p.Notes, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// LatestPaymentDate devuelve MAX(payment_date) de la empresa como YYYY-MM-DD,
// o nil si no tiene pagos. Lee solo filas confirmadas (READ COMMITTED).
func (r *PaymentRepo) LatestPaymentDate(ctx context.Context, companyID int64) (*string, error) {
	const query = `
		SELECT to_char(MAX(payment_date), 'YYYY-MM-DD')
		FROM payments WHERE company_id = $1`
	var last *string
	if err := r.pool.QueryRow(ctx, query, companyID).Scan(&last); err != nil {
		return nil, fmt.Errorf("latest payment date: %w", err)
	}
	return last, nil
}
