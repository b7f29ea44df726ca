package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estibas-api/internal/domain/billing"
	"github.com/jhoicas/Estibas-api/internal/domain/entity"
)

func buildBillingSvc() (*BillingService, *fakeCompanyRepo, *fakePaymentRepo) {
	companies := newFakeCompanyRepo()
	payments := newFakePaymentRepo()
	svc := NewBillingService(companies, payments)
	svc.now = func() time.Time { return testNow }
	return svc, companies, payments
}

// Todo caso ambiguo resuelve hacia bloquear: empresa inexistente o
// desactivada cuentan como bloqueadas.
func TestBillingIsBlocked_EmpresaInexistente_Bloqueada(t *testing.T) {
	svc, _, _ := buildBillingSvc()

	blocked, err := svc.IsBlocked(context.Background(), 404)
	require.NoError(t, err)
	assert.True(t, blocked)
}

func TestBillingIsBlocked_EmpresaDesactivada_Bloqueada(t *testing.T) {
	svc, companies, payments := buildBillingSvc()
	c := seedCompany(t, companies, billing.FrequencyMonthly)
	require.NoError(t, payments.Create(&entity.Payment{
		ID: "pay-1", CompanyID: c.ID, PaymentDate: "2024-06-10",
	}))
	c.Active = false
	require.NoError(t, companies.Update(c))

	// Aunque el pago esté vigente, la desactivación manda.
	blocked, err := svc.IsBlocked(context.Background(), c.ID)
	require.NoError(t, err)
	assert.True(t, blocked)
}

func TestBillingIsBlocked_PermanentSinPagos_Bloqueada(t *testing.T) {
	svc, companies, _ := buildBillingSvc()
	c := seedCompany(t, companies, billing.FrequencyPermanent)

	blocked, err := svc.IsBlocked(context.Background(), c.ID)
	require.NoError(t, err)
	assert.True(t, blocked, "permanent exige al menos un pago registrado")
}

func TestBillingIsBlocked_PermanentConUnPago_NuncaVence(t *testing.T) {
	svc, companies, payments := buildBillingSvc()
	c := seedCompany(t, companies, billing.FrequencyPermanent)
	require.NoError(t, payments.Create(&entity.Payment{
		ID: "pay-1", CompanyID: c.ID, PaymentDate: "1999-01-01",
	}))

	blocked, err := svc.IsBlocked(context.Background(), c.ID)
	require.NoError(t, err)
	assert.False(t, blocked)
}

// StatusFor usa siempre el MAX(payment_date): un pago viejo adicional no
// cambia el resultado.
func TestBillingStatusFor_UsaElUltimoPago(t *testing.T) {
	svc, companies, payments := buildBillingSvc()
	c := seedCompany(t, companies, billing.FrequencyMonthly)
	require.NoError(t, payments.Create(&entity.Payment{
		ID: "pay-viejo", CompanyID: c.ID, PaymentDate: "2024-01-15",
	}))
	require.NoError(t, payments.Create(&entity.Payment{
		ID: "pay-nuevo", CompanyID: c.ID, PaymentDate: "2024-06-05",
	}))

	st, err := svc.StatusFor(context.Background(), c)
	require.NoError(t, err)
	require.NotNil(t, st.LastPaymentDate)
	assert.Equal(t, "2024-06-05", *st.LastPaymentDate)
	require.NotNil(t, st.NextPaymentDate)
	assert.Equal(t, "2024-07-05", *st.NextPaymentDate)
	assert.False(t, st.IsBlocked)
}
