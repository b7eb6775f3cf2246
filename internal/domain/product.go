package domain

// ProductImages — ссылки на фото товара.
type ProductImages struct {
	Front string `json:"front" yaml:"front"`
	Back  string `json:"back" yaml:"back"`
}

// Product — карточка товара в каталоге витрины.
type Product struct {
	ID          string        `json:"id" yaml:"id" validate:"required"`
	Title       string        `json:"title" yaml:"title" validate:"required"`
	Price       float64       `json:"price" yaml:"price" validate:"gte=0"`
	Description string        `json:"description" yaml:"description"`
	Images      ProductImages `json:"images" yaml:"images"`
}
