package usecase

import (
	"context"
	"sort"

	"github.com/jhoicas/Estibas-api/internal/domain/entity"
	"github.com/jhoicas/Estibas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	companies map[int64]*entity.Company
	nextID    int64
}

var _ repository.CompanyRepository = (*fakeCompanyRepo)(nil)

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[int64]*entity.Company), nextID: 1}
}

func (r *fakeCompanyRepo) Create(company *entity.Company) (int64, error) {
	id := r.nextID
	r.nextID++
	cp := *company
	cp.ID = id
	r.companies[id] = &cp
	return id, nil
}

func (r *fakeCompanyRepo) GetByID(id int64) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCompanyRepo) GetByNIT(nit string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.NIT == nit {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) Update(company *entity.Company) error {
	cp := *company
	r.companies[company.ID] = &cp
	return nil
}

func (r *fakeCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	ids := make([]int64, 0, len(r.companies))
	for id := range r.companies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*entity.Company, 0, limit)
	for i, id := range ids {
		if i < offset {
			continue
		}
		if len(out) == limit {
			break
		}
		cp := *r.companies[id]
		out = append(out, &cp)
	}
	return out, nil
}

type fakePaymentRepo struct {
	payments map[string]*entity.Payment
}

var _ repository.PaymentRepository = (*fakePaymentRepo)(nil)

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*entity.Payment)}
}

func (r *fakePaymentRepo) Create(payment *entity.Payment) error {
	cp := *payment
	r.payments[payment.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) GetByID(id string) (*entity.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePaymentRepo) Update(payment *entity.Payment) error {
	cp := *payment
	r.payments[payment.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) ListByCompany(companyID int64, limit, offset int) ([]*entity.Payment, error) {
	all := make([]*entity.Payment, 0)
	for _, p := range r.payments {
		if p.CompanyID == companyID {
			cp := *p
			all = append(all, &cp)
		}
	}
	// orden estable: fecha descendente, como el SQL real
	sort.Slice(all, func(i, j int) bool { return all[i].PaymentDate > all[j].PaymentDate })
	if offset >= len(all) {
		return []*entity.Payment{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

// LatestPaymentDate emula MAX(payment_date): las fechas YYYY-MM-DD ordenan
// lexicográficamente igual que cronológicamente.
func (r *fakePaymentRepo) LatestPaymentDate(_ context.Context, companyID int64) (*string, error) {
	var max *string
	for _, p := range r.payments {
		if p.CompanyID != companyID {
			continue
		}
		d := p.PaymentDate
		if max == nil || d > *max {
			max = &d
		}
	}
	return max, nil
}
