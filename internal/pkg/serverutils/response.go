package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"plant-hub-be/internal/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

type APIError struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Kind    string   `json:"kind"`
	Allowed []string `json:"allowed,omitempty"`
}

func SuccessResponse[T any](message string, data T) APIResponse[T] {
	return APIResponse[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// ValidateRequest runs struct-tag validation on a request DTO and converts
// the first failure into a validation-kind app error.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return apperror.Validation(fmt.Sprintf("%s failed on the '%s' rule", strings.ToLower(f.Field()), f.Tag()))
		}
		return apperror.Validation(err.Error())
	}
	return nil
}

// ErrorHandlerMiddleware converts app errors escaping controllers into the
// JSON error envelope. Unknown errors are reported as internal.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			return ctx.Status(statusForKind(appErr.Kind)).JSON(APIError{
				Success: false,
				Error:   appErr.Message,
				Kind:    string(appErr.Kind),
				Allowed: appErr.Allowed,
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(APIError{
				Success: false,
				Error:   fiberErr.Message,
				Kind:    string(apperror.KindInternal),
			})
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(APIError{
			Success: false,
			Error:   "internal server error",
			Kind:    string(apperror.KindInternal),
		})
	}
}

func statusForKind(kind apperror.Kind) int {
	switch kind {
	case apperror.KindNotFound:
		return fiber.StatusNotFound
	case apperror.KindValidation, apperror.KindInvalidFileType:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
