package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gunvolt24/tg_store/internal/usecase"
)

func TestSuggest(t *testing.T) {
	svc := usecase.NewAddressService()
	ctx := context.Background()

	short := svc.Suggest(ctx, "Мо")
	assert.NotNil(t, short)
	assert.Empty(t, short)

	got := svc.Suggest(ctx, " Москва ")
	if assert.Len(t, got, 3) {
		assert.Equal(t, "Москва, улица Примерная, дом 1", got[0].Value)
		assert.Equal(t, "Москва, проспект Тестовый, дом 15", got[1].Value)
		assert.Equal(t, "Москва, бульвар Демонстрационный, дом 25", got[2].Value)
	}
}
