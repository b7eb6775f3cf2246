package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/Gunvolt24/tg_store/internal/domain"
	"github.com/Gunvolt24/tg_store/internal/ports"
)

// minQueryRunes — короче этого подсказки не строятся.
const minQueryRunes = 3

var _ ports.AddressSuggester = (*AddressService)(nil)

// AddressService — автодополнение адреса. Внешнего геосервиса нет: варианты строятся из запроса.
type AddressService struct{}

func NewAddressService() *AddressService { return &AddressService{} }

// Suggest — всегда не-nil срез; для короткого запроса пустой.
func (s *AddressService) Suggest(_ context.Context, query string) []domain.AddressSuggestion {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minQueryRunes {
		return []domain.AddressSuggestion{}
	}
	return []domain.AddressSuggestion{
		{Value: query + ", улица Примерная, дом 1"},
		{Value: query + ", проспект Тестовый, дом 15"},
		{Value: query + ", бульвар Демонстрационный, дом 25"},
	}
}
