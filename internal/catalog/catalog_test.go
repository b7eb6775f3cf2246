package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Embedded(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	all := c.Products(context.Background(), 0, 0)
	assert.Equal(t, "dark", all[0].ID)
	assert.Equal(t, "Gray Zip Hoodie", all[1].Title)
	assert.Equal(t, 6000.0, all[0].Price)
	assert.Equal(t, "100% Cotton, 470 g/m³", all[0].Description)
	assert.NotEmpty(t, all[1].Images.Back)
}

func TestProducts_Paging(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	ctx := context.Background()

	assert.Len(t, c.Products(ctx, 1, 0), 1)
	assert.Equal(t, "gray", c.Products(ctx, 1, 1)[0].ID)
	assert.Len(t, c.Products(ctx, 10, 1), 1)

	empty := c.Products(ctx, 10, 5)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestProducts_ReturnsCopy(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	got := c.Products(context.Background(), 0, 0)
	got[0].Title = "changed"

	assert.Equal(t, "Dark Zip Hoodie", c.Products(context.Background(), 0, 0)[0].Title)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
products:
  - id: cap
    title: Cap
    price: 1500
`), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not yaml", "products: [::"},
		{"empty", "products: []"},
		{"missing title", "products:\n  - id: a\n    price: 1\n"},
		{"negative price", "products:\n  - id: a\n    title: A\n    price: -1\n"},
		{"duplicate id", "products:\n  - id: a\n    title: A\n  - id: a\n    title: B\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}
