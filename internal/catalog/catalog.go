// Пакет catalog — каталог товаров витрины из YAML (встроенный или внешний файл).
package catalog

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/Gunvolt24/tg_store/internal/domain"
	"github.com/Gunvolt24/tg_store/internal/ports"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed products.yaml
var defaultCatalog []byte

// ErrInvalidCatalog — файл каталога не читается или содержит некорректные товары.
var ErrInvalidCatalog = errors.New("invalid catalog")

var _ ports.ProductCatalog = (*Catalog)(nil)

type catalogFile struct {
	Products []domain.Product `yaml:"products"`
}

// Catalog — неизменяемый после загрузки список товаров.
type Catalog struct {
	products []domain.Product
}

// Load — каталог из файла path; пустой path — встроенный каталог.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(defaultCatalog)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrInvalidCatalog, path, err)
	}
	return Parse(raw)
}

// Parse — разбор и проверка YAML: обязательные id/title, цена >= 0, id уникальны.
func Parse(raw []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if len(f.Products) == 0 {
		return nil, fmt.Errorf("%w: no products", ErrInvalidCatalog)
	}

	v := validator.New()
	seen := make(map[string]struct{}, len(f.Products))
	for i := range f.Products {
		p := &f.Products[i]
		if err := v.Struct(p); err != nil {
			return nil, fmt.Errorf("%w: product #%d: %v", ErrInvalidCatalog, i, err)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidCatalog, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return &Catalog{products: f.Products}, nil
}

// Products — страница каталога; limit <= 0 — без ограничения.
// Возвращается копия: вызывающая сторона не может изменить каталог.
func (c *Catalog) Products(_ context.Context, limit, offset int) []domain.Product {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(c.products) {
		return []domain.Product{}
	}
	end := len(c.products)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return append([]domain.Product(nil), c.products[offset:end]...)
}

// Len — количество товаров.
func (c *Catalog) Len() int { return len(c.products) }
