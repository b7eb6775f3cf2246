package validate

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Gunvolt24/tg_store/internal/domain"
	"github.com/Gunvolt24/tg_store/internal/ports"
	"github.com/go-playground/validator/v10"
)

// Проверка, что OrderValidator удовлетворяет интерфейсу OrderValidator.
var _ ports.OrderValidator = (*OrderValidator)(nil)

var (
	// ErrInvalidOrder — базовая (sentinel error) ошибка валидации заказа.
	ErrInvalidOrder = errors.New("order validation failed")
	// ErrInvalidPayment — некорректный запрос на оплату.
	ErrInvalidPayment = errors.New("payment validation failed")
)

// ValidationError — ошибка конкретного поля. Текст пригоден для ответа клиенту,
// errors.Is сравнивает с ErrInvalidOrder / ErrInvalidPayment.
type ValidationError struct {
	Field  string
	Reason string
	kind   error
}

func (e *ValidationError) Error() string { return e.Reason }
func (e *ValidationError) Unwrap() error { return e.kind }

// OrderValidator — проверка заказа и запроса на оплату по тегам validate.
type OrderValidator struct {
	engine *validator.Validate
}

// NewOrderValidator — конструктор OrderValidator.
// Имена полей в ошибках берутся из json-тегов: customer.name, items[0].quantity.
func NewOrderValidator() *OrderValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &OrderValidator{engine: v}
}

// Validate — проверяет обязательные поля покупателя, непустую корзину и неотрицательные суммы.
func (v *OrderValidator) Validate(ctx context.Context, order *domain.OrderRequest) error {
	if order == nil {
		return &ValidationError{Reason: "order payload is empty", kind: ErrInvalidOrder}
	}
	return v.check(ctx, order, ErrInvalidOrder)
}

// ValidatePayment — order_id и amount обязательны, amount > 0.
func (v *OrderValidator) ValidatePayment(ctx context.Context, req *domain.PaymentRequest) error {
	if req == nil {
		return &ValidationError{Reason: "payment payload is empty", kind: ErrInvalidPayment}
	}
	return v.check(ctx, req, ErrInvalidPayment)
}

func (v *OrderValidator) check(ctx context.Context, s any, kind error) error {
	err := v.engine.StructCtx(ctx, s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", kind, err)
	}

	fe := fieldErrs[0]
	field := fieldPath(fe.Namespace())
	return &ValidationError{Field: field, Reason: reason(field, fe), kind: kind}
}

// fieldPath — "OrderRequest.customer.name" → "customer.name".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func reason(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if field == "items" {
			return "items must not be empty"
		}
		return "missing required field: " + field
	case "min":
		if field == "items" {
			return "items must not be empty"
		}
		return fmt.Sprintf("%s must have at least %s element(s)", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		if fe.Param() == "0" {
			return field + " must not be negative"
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("invalid field: %s", field)
	}
}
