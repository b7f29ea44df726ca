package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estibas-api/internal/application/dto"
)

// billingChecker es el contrato mínimo que necesita el middleware para
// consultar el estado de facturación. Lo implementa *usecase.BillingService;
// el uso de interfaz evita el import circular.
type billingChecker interface {
	IsBlocked(ctx context.Context, companyID int64) (bool, error)
}

// RequireBillingCurrent devuelve un middleware Fiber que recalcula en cada
// petición el estado de facturación de la empresa del token y corta el acceso
// cuando está bloqueada. Debe usarse DESPUÉS de AuthMiddleware (necesita
// LocalCompanyID). No se cachea: el paso del tiempo solo puede bloquear, y un
// estado guardado se quedaría obsoleto sin ninguna escritura.
//
// Comportamiento:
//   - 402 Payment Required → facturación vencida o empresa sin pagos.
//   - 503 Service Unavailable → fallo de infraestructura al consultar.
//   - 401 → sin company_id en el contexto (el AuthMiddleware debería haberlo puesto).
func RequireBillingCurrent(checker billingChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		companyID := GetCompanyID(c)
		if companyID == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "company_id no encontrado en el token",
			})
		}

		blocked, err := checker.IsBlocked(c.Context(), companyID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "BILLING_CHECK_FAILED",
				Message: "no se pudo verificar la facturación, intente más tarde",
			})
		}

		if blocked {
			return c.Status(fiber.StatusPaymentRequired).JSON(dto.ErrorResponse{
				Code:    "BILLING_BLOCKED",
				Message: "la empresa tiene la facturación vencida; registre el pago para continuar",
			})
		}

		return c.Next()
	}
}
