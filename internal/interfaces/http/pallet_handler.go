package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estibas-api/internal/application/dto"
	"github.com/jhoicas/Estibas-api/internal/application/usecase"
	"github.com/jhoicas/Estibas-api/internal/domain"
)

// PalletHandler maneja las peticiones HTTP para estibas. Siempre opera sobre
// la empresa del token.
type PalletHandler struct {
	uc *usecase.PalletUseCase
}

// NewPalletHandler construye el handler inyectando el caso de uso.
func NewPalletHandler(uc *usecase.PalletUseCase) *PalletHandler {
	return &PalletHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar estiba
// @Tags         pallets
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePalletRequest  true  "code, location, material"
// @Success      201   {object}  dto.PalletResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pallets [post]
func (h *PalletHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePalletRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code es requerido"})
	}
	out, err := h.uc.Create(GetCompanyID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una estiba con ese código"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar estibas de la empresa del token
// @Tags         pallets
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.PalletListResponse
// @Router       /api/pallets [get]
func (h *PalletHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.ListByCompany(GetCompanyID(c), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener estiba por ID
// @Tags         pallets
// @Produce      json
// @Param        id   path  string  true  "ID de la estiba"
// @Success      200  {object}  dto.PalletResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pallets/{id} [get]
func (h *PalletHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un UUID"})
	}
	out, err := h.uc.GetByID(GetCompanyID(c), id)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la estiba pertenece a otra empresa"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estiba no encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar estiba (ubicación, estado, material)
// @Tags         pallets
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la estiba"
// @Param        body  body  dto.UpdatePalletRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.PalletResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pallets/{id} [put]
func (h *PalletHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un UUID"})
	}
	var in dto.UpdatePalletRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetCompanyID(c), id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estiba no encontrada"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la estiba pertenece a otra empresa"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status debe ser disponible, en_uso, mantenimiento o baja"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
