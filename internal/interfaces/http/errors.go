package http

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/khohang-api/internal/application/dto"
	"github.com/jhoicas/khohang-api/internal/domain"
)

var validate = validator.New()

// requestError cuerpo o query que no pasa el parseo o las reglas de validación.
type requestError struct {
	code    string
	message string
	fields  map[string]string
}

func (e *requestError) Error() string { return e.message }

// bind parsea el cuerpo JSON en out y aplica las etiquetas validate.
func bind(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return &requestError{code: "INVALID_BODY", message: "cuerpo inválido"}
	}
	return check(out)
}

// bindQuery igual que bind pero sobre los parámetros de la URL.
func bindQuery(c *fiber.Ctx, out any) error {
	if err := c.QueryParser(out); err != nil {
		return &requestError{code: "INVALID_QUERY", message: "parámetros inválidos"}
	}
	return check(out)
}

func check(out any) error {
	err := validate.Struct(out)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &requestError{code: "VALIDATION", message: err.Error()}
	}
	fields := make(map[string]string, len(verrs))
	names := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		fields[name] = fe.Tag()
		names = append(names, name)
	}
	return &requestError{
		code:    "VALIDATION",
		message: "campos inválidos: " + strings.Join(names, ", "),
		fields:  fields,
	}
}

// writeError traduce un error de aplicación a su respuesta HTTP.
func writeError(c *fiber.Ctx, err error) error {
	var rerr *requestError
	if errors.As(err, &rerr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: rerr.code, Message: rerr.message, Fields: rerr.fields})
	}

	status, code := fiber.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrMissingSelection):
		status, code = fiber.StatusBadRequest, "MISSING_SELECTION"
	case errors.Is(err, domain.ErrInvalidQuantity):
		status, code = fiber.StatusBadRequest, "INVALID_QUANTITY"
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrDuplicateCombination):
		status, code = fiber.StatusConflict, "DUPLICATE_COMBINATION"
	case errors.Is(err, domain.ErrLocked):
		status, code = fiber.StatusConflict, "DOCUMENT_BUSY"
	case errors.Is(err, domain.ErrDuplicate):
		status, code = fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		status, code = fiber.StatusConflict, "EMAIL_EXISTS"
	case errors.Is(err, domain.ErrConflict):
		status, code = fiber.StatusConflict, "CONFLICT"
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrUnauthorized):
		status, code = fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		status, code = fiber.StatusForbidden, "FORBIDDEN"
	}

	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no controlado")
	}
	msg := err.Error()
	if msg == "" {
		msg = "error interno, intente de nuevo"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}
