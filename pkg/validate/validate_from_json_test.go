package validate

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestValidateOrderFromJSON_OK(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	order, err := ValidateOrderFromJSON(ctx, validator, []byte(minimalValidOrderJSON("Иван", "ivan@example.com")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Customer.Name != "Иван" {
		t.Fatalf("unexpected customer: %s", order.Customer.Name)
	}
	if got := order.ComputedTotal(); got != 12300 {
		t.Fatalf("computed total: got %v want 12300", got)
	}
}

func TestValidateOrderFromJSON_ClientFieldsIgnored(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	// order_id/timestamp от клиента допустимы во входе, но в модель не попадают
	raw := `{"order_id":1,"timestamp":"yesterday",` + minimalValidOrderJSON("Иван", "ivan@example.com")[1:]
	if _, err := ValidateOrderFromJSON(ctx, validator, []byte(raw)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateOrderFromJSON_TrailingData(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	raw := minimalValidOrderJSON("Иван", "ivan@example.com") + "{}"
	_, err := ValidateOrderFromJSON(ctx, validator, []byte(raw))
	if err == nil || !strings.Contains(err.Error(), "trailing data") {
		t.Fatalf("expected trailing data error, got: %v", err)
	}
	if !errors.Is(err, ErrMalformedJSON) {
		t.Fatalf("expected ErrMalformedJSON, got: %v", err)
	}
}

func TestValidateOrderFromJSON_NotJSON(t *testing.T) {
	_, err := ValidateOrderFromJSON(context.Background(), NewOrderValidator(), []byte("customer=ivan"))
	if !errors.Is(err, ErrMalformedJSON) {
		t.Fatalf("expected ErrMalformedJSON, got: %v", err)
	}
}

func TestValidateOrderFromJSON_DomainError(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	// Не валиден: пустой email
	_, err := ValidateOrderFromJSON(ctx, validator, []byte(minimalValidOrderJSON("Иван", "")))
	if !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("expected ErrInvalidOrder, got: %v", err)
	}
	if err.Error() != "missing required field: customer.email" {
		t.Fatalf("unexpected message: %v", err)
	}
}

// ---- helpers ----

func minimalValidOrderJSON(name, email string) string {
	return `{
  "customer": {
    "name": "` + name + `", "phone": "+79000000000", "email": "` + email + `",
    "address": {"city": "Москва", "address": "ул. Примерная, 1", "postalCode": "101000"}
  },
  "items": [{"title": "Hoodie", "size": "M", "quantity": 2, "price": 6000}],
  "delivery": {"method": "Courier", "price": 300}
}`
}
