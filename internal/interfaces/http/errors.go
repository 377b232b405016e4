package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-oracle-api/internal/application/dto"
	"github.com/jhoicas/inventario-oracle-api/internal/domain"
	"github.com/jhoicas/inventario-oracle-api/pkg/logger"
)

// statusFor traduce el tipo de error de dominio a código HTTP.
func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation:
		return fiber.StatusBadRequest
	case domain.KindDatabase:
		return fiber.StatusInternalServerError
	case domain.KindMethodNotAllowed:
		return fiber.StatusMethodNotAllowed
	case domain.KindInternal:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError registra el error una sola vez y responde {"error": ...} con el código correspondiente.
func respondError(c *fiber.Ctx, log *logger.Logger, err error, fields map[string]any) error {
	de := domain.AsError(err)
	status := statusFor(de.Kind)

	ev := log.Error()
	if de.Kind == domain.KindValidation || de.Kind == domain.KindMethodNotAllowed {
		ev = log.Warn()
	}
	if fields != nil {
		ev = ev.Fields(fields)
	}
	ev.Err(err).Str("kind", de.Kind.String()).Int("status", status).Msg(de.Message)

	return c.Status(status).JSON(dto.ErrorResponse{Error: de.Message})
}

// ErrorHandler para fiber.Config: pánicos recuperados y errores de ruteo salen con el mismo formato JSON.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			reqLog := log.WithRequestID(requestID(c))
			ev := reqLog.Warn()
			if fe.Code >= fiber.StatusInternalServerError {
				ev = reqLog.Error()
			}
			ev.Int("status", fe.Code).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg(fe.Message)
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Error: fe.Message})
		}
		return respondError(c, log.WithRequestID(requestID(c)), domain.NewInternalError(err), map[string]any{
			"method": c.Method(),
			"path":   c.Path(),
		})
	}
}
