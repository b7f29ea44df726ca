package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/Estibas-api/internal/application/dto"
	"github.com/jhoicas/Estibas-api/internal/application/usecase"
	"github.com/jhoicas/Estibas-api/internal/domain"
)

// PaymentHandler maneja las peticiones HTTP para el libro de pagos.
type PaymentHandler struct {
	uc      *usecase.PaymentUseCase
	receipt *usecase.ReceiptUseCase
}

// NewPaymentHandler construye el handler inyectando los casos de uso.
func NewPaymentHandler(uc *usecase.PaymentUseCase, receipt *usecase.ReceiptUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc, receipt: receipt}
}

// Create godoc
// @Summary      Registrar pago de una empresa
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaymentRequest  true  "company_id, payment_date (YYYY-MM-DD), amount, method"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/payments [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CompanyID == 0 || in.PaymentDate == "" || in.Method == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_id, payment_date y method son requeridos"})
	}
	out, err := h.uc.Register(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "COMPANY_NOT_FOUND", Message: "la empresa no existe"})
		case errors.Is(err, domain.ErrInvalidPaymentDate):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "payment_date debe ser una fecha válida YYYY-MM-DD"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "method o amount inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Correct godoc
// @Summary      Corregir un pago (amount/method/notes; la fecha no se corrige)
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pago"
// @Param        body  body  dto.UpdatePaymentRequest  true  "Campos a corregir"
// @Success      200   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/payments/{id} [patch]
func (h *PaymentHandler) Correct(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un UUID"})
	}
	var in dto.UpdatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Correct(id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pago no encontrado"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "method o amount inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListByCompany godoc
// @Summary      Listar pagos de una empresa
// @Tags         payments
// @Produce      json
// @Param        company_id  query  int  true   "ID de la empresa"
// @Param        limit       query  int  false  "Límite"   default(20)
// @Param        offset      query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.PaymentListResponse
// @Router       /api/payments [get]
func (h *PaymentHandler) ListByCompany(c *fiber.Ctx) error {
	companyID, err := strconv.ParseInt(c.Query("company_id"), 10, 64)
	if err != nil || companyID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_id debe ser un entero positivo"})
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Descargar recibo de pago en PDF
// @Tags         payments
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del pago"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payments/{id}/receipt [get]
func (h *PaymentHandler) Receipt(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un UUID"})
	}
	pdfBytes, err := h.receipt.Generate(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pago no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="recibo-`+id+`.pdf"`)
	return c.Send(pdfBytes)
}

// parseUUIDParam valida que :id sea un UUID y lo devuelve en forma canónica
// (minúsculas, sin llaves ni prefijo urn). Un id con otra forma no puede
// existir en la tabla y rompería el encode del parámetro en pgx.
func parseUUIDParam(c *fiber.Ctx) (string, error) {
	u, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
