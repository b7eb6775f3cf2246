package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Gunvolt24/tg_store/internal/domain"
	"github.com/Gunvolt24/tg_store/internal/ports"
)

// ErrMalformedJSON — тело не разбирается как один JSON-объект заказа.
var ErrMalformedJSON = errors.New("malformed json")

// DecodeOrderRequest — строгий разбор одного JSON-объекта: хвостовые данные запрещены.
// Неизвестные поля игнорируются (витрина присылает, например, собственные order_id/timestamp).
func DecodeOrderRequest(raw []byte) (*domain.OrderRequest, error) {
	var order domain.OrderRequest
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&order); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data", ErrMalformedJSON)
	}
	return &order, nil
}

// ValidateOrderFromJSON — разбор и валидация заказа из JSON.
func ValidateOrderFromJSON(ctx context.Context, validator ports.OrderValidator, raw []byte) (*domain.OrderRequest, error) {
	order, err := DecodeOrderRequest(raw)
	if err != nil {
		return nil, err
	}
	if err := validator.Validate(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}
