package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estibas-api/internal/application/usecase"
	"github.com/jhoicas/Estibas-api/internal/domain/entity"
	"github.com/jhoicas/Estibas-api/internal/domain/repository"
	apphttp "github.com/jhoicas/Estibas-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

var _ repository.PaymentRepository = (*stubPaymentRepo)(nil)

type stubPaymentRepo struct {
	payment *entity.Payment
	gotID   string // último id consultado, para verificar que llega canónico
}

func (r *stubPaymentRepo) Create(*entity.Payment) error { return nil }
func (r *stubPaymentRepo) GetByID(id string) (*entity.Payment, error) {
	r.gotID = id
	if r.payment != nil && r.payment.ID == id {
		cp := *r.payment
		return &cp, nil
	}
	return nil, nil
}
func (r *stubPaymentRepo) Update(*entity.Payment) error { return nil }
func (r *stubPaymentRepo) ListByCompany(int64, int, int) ([]*entity.Payment, error) {
	return nil, nil
}
func (r *stubPaymentRepo) LatestPaymentDate(context.Context, int64) (*string, error) {
	return nil, nil
}

var _ repository.CompanyRepository = (*stubCompanyRepo)(nil)

type stubCompanyRepo struct {
	company *entity.Company
}

func (r *stubCompanyRepo) Create(*entity.Company) (int64, error) { return 0, nil }
func (r *stubCompanyRepo) GetByID(id int64) (*entity.Company, error) {
	if r.company != nil && r.company.ID == id {
		cp := *r.company
		return &cp, nil
	}
	return nil, nil
}
func (r *stubCompanyRepo) GetByNIT(string) (*entity.Company, error) { return nil, nil }
func (r *stubCompanyRepo) Update(*entity.Company) error             { return nil }
func (r *stubCompanyRepo) List(int, int) ([]*entity.Company, error) { return nil, nil }

type stubPDFGenerator struct{}

func (stubPDFGenerator) GenerateReceiptPDF(context.Context, *entity.Payment, *entity.Company) ([]byte, error) {
	return []byte("%PDF-1.7 stub"), nil
}

// buildPaymentApp arma una app Fiber con las rutas de pagos que reciben :id.
func buildPaymentApp(payments *stubPaymentRepo, companies *stubCompanyRepo) *fiber.App {
	paymentUC := usecase.NewPaymentUseCase(payments, companies)
	receiptUC := usecase.NewReceiptUseCase(payments, companies, stubPDFGenerator{})
	h := apphttp.NewPaymentHandler(paymentUC, receiptUC)

	app := fiber.New()
	app.Patch("/payments/:id", h.Correct)
	app.Get("/payments/:id/receipt", h.Receipt)
	return app
}

const testPaymentID = "6f1e8e0a-8f2d-4c43-9a2b-3d5e7f901234"

// ──────────────────────────────────────────────────────────────────────────────
// Validación del path param :id
// ──────────────────────────────────────────────────────────────────────────────

// Un :id que no es UUID no puede existir en la tabla: debe cortarse en el
// handler con 400, sin llegar nunca a la consulta (el encode del parámetro
// uuid fallaría y se vería como 500).
func TestPaymentCorrect_IDNoUUID_Retorna400(t *testing.T) {
	payments := &stubPaymentRepo{}
	app := buildPaymentApp(payments, &stubCompanyRepo{})

	req := httptest.NewRequest(http.MethodPatch, "/payments/no-es-un-uuid", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_ID")
	assert.Empty(t, payments.gotID, "el repositorio no debe consultarse con un id inválido")
}

func TestPaymentReceipt_IDNoUUID_Retorna400(t *testing.T) {
	payments := &stubPaymentRepo{}
	app := buildPaymentApp(payments, &stubCompanyRepo{})

	req := httptest.NewRequest(http.MethodGet, "/payments/12345/receipt", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_ID")
	assert.Empty(t, payments.gotID)
}

// UUID válido pero sin pago: 404, no 500.
func TestPaymentReceipt_UUIDSinPago_Retorna404(t *testing.T) {
	app := buildPaymentApp(&stubPaymentRepo{}, &stubCompanyRepo{})

	req := httptest.NewRequest(http.MethodGet, "/payments/"+testPaymentID+"/receipt", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// El id llega en mayúsculas: la consulta y el filename del Content-Disposition
// usan la forma canónica en minúsculas, nunca el texto crudo de la URL.
func TestPaymentReceipt_IDCanonizado(t *testing.T) {
	payments := &stubPaymentRepo{payment: &entity.Payment{
		ID:          testPaymentID,
		CompanyID:   7,
		PaymentDate: "2024-06-01",
		Method:      entity.PaymentMethodTransferencia,
	}}
	companies := &stubCompanyRepo{company: &entity.Company{
		ID:   7,
		Name: "Logística Andina SAS",
		NIT:  "900123456-7",
	}}
	app := buildPaymentApp(payments, companies)

	upper := "6F1E8E0A-8F2D-4C43-9A2B-3D5E7F901234"
	req := httptest.NewRequest(http.MethodGet, "/payments/"+upper+"/receipt", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="recibo-`+testPaymentID+`.pdf"`,
		resp.Header.Get(fiber.HeaderContentDisposition))
	assert.Equal(t, testPaymentID, payments.gotID, "la consulta debe usar el UUID canónico")
}
