package domain

// Способы оплаты, которые понимает витрина.
const (
	PaymentMethodYooKassa = "yookassa"
	PaymentMethodCrypto   = "crypto"
)

// PaymentRequest — запрос на создание ссылки оплаты.
type PaymentRequest struct {
	OrderID       int64   `json:"order_id" validate:"required,gt=0"`
	Amount        float64 `json:"amount" validate:"gt=0"`
	PaymentMethod string  `json:"payment_method"`
}

// PaymentLink — ссылка на оплату заказа.
type PaymentLink struct {
	Success     bool    `json:"success"`
	PaymentURL  string  `json:"payment_url"`
	PaymentID   string  `json:"payment_id"`
	Discount    float64 `json:"discount,omitempty"`
	FinalAmount float64 `json:"final_amount,omitempty"`
}

// AddressSuggestion — вариант автодополнения адреса.
type AddressSuggestion struct {
	Value string `json:"value"`
}
