package e

import (
	"fmt"
	"strings"
)

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrInvalidJSON          = fmt.Errorf("invalid json body")
	ErrInvalidID            = fmt.Errorf("invalid id")
	ErrInvalidDate          = fmt.Errorf("date must be in YYYY-MM-DD format")
	ErrInvalidDateRange     = fmt.Errorf("end date is before start date")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrNoImages             = fmt.Errorf("no images provided")
	ErrTooManyImages        = fmt.Errorf("too many images")
	ErrFileTooLarge         = fmt.Errorf("file too large")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")
	ErrEmptyCart            = fmt.Errorf("cart is empty")
	ErrProductUnavailable   = fmt.Errorf("product is unavailable")

	// 401 Unauthorized
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")

	// 404 Not Found
	ErrProductNotFound   = fmt.Errorf("product not found")
	ErrPromotionNotFound = fmt.Errorf("promotion not found")

	// 409 Conflict
	ErrProductHasSales = fmt.Errorf("product has recorded sales")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// FieldError описывает одно нарушенное правило валидации.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// ValidationError — ошибка валидации тела запроса (400).
type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (v *ValidationError) Error() string {
	parts := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		parts = append(parts, f.Field+": "+f.Rule)
	}

	return "validation failed: " + strings.Join(parts, ", ")
}

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
