package domain_test

import (
	"testing"

	"github.com/Gunvolt24/tg_store/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func hoodieRequest() *domain.OrderRequest {
	return &domain.OrderRequest{
		Customer: &domain.CustomerRequest{
			Name: "Иван", Phone: "+79990000000", Email: "ivan@example.com",
			Address: &domain.Address{City: "Москва", Address: "Тверская 1", PostalCode: "125009"},
		},
		Items:    []domain.Item{{Title: "Hoodie", Size: "M", Quantity: 2, Price: 6000}},
		Delivery: &domain.Delivery{Method: "Courier", Price: 300},
	}
}

func TestComputedTotal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  *domain.OrderRequest
		want float64
	}{
		{"nil request", nil, 0},
		{"hoodie example", hoodieRequest(), 12300},
		{"with discount", func() *domain.OrderRequest {
			r := hoodieRequest()
			r.Discount = 200
			return r
		}(), 12100},
		{"several items", func() *domain.OrderRequest {
			r := hoodieRequest()
			r.Items = append(r.Items, domain.Item{Title: "Cap", Quantity: 3, Price: 999.99})
			return r
		}(), 15299.97},
		{"no delivery", func() *domain.OrderRequest {
			r := hoodieRequest()
			r.Delivery = nil
			return r
		}(), 12000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, tt.req.ComputedTotal(), 0.0001)
		})
	}
}

func TestOrder_TotalPolicy(t *testing.T) {
	t.Parallel()

	r := hoodieRequest()
	r.Total = floatPtr(1)

	kept := r.Order(false)
	assert.InDelta(t, 1, kept.Total, 0.0001, "client total kept when recompute is off")

	recomputed := r.Order(true)
	assert.InDelta(t, 12300, recomputed.Total, 0.0001)

	r.Total = nil
	computed := r.Order(false)
	assert.InDelta(t, 12300, computed.Total, 0.0001, "missing total is computed")
}

func TestOrder_CopiesFields(t *testing.T) {
	t.Parallel()

	r := hoodieRequest()
	r.Comments = "позвонить заранее"
	r.PaymentMethod = "crypto"

	o := r.Order(false)
	require.Len(t, o.Items, 1)
	assert.Equal(t, "Иван", o.Customer.Name)
	assert.Equal(t, "Москва", o.Customer.Address.City)
	assert.Equal(t, "Courier", o.Delivery.Method)
	assert.Equal(t, "позвонить заранее", o.Comments)
	assert.Equal(t, "crypto", o.PaymentMethod)

	// изменение исходного среза не влияет на заказ
	r.Items[0].Title = "changed"
	assert.Equal(t, "Hoodie", o.Items[0].Title)
}
