package domain

// DefaultMinStock — порог «мало на складе» по умолчанию.
const DefaultMinStock = 5

// Product описывает товар каталога
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       int64 // Цена хранится в сентаво
	Category    string
	Image       string
	Badge       *string // LIMITADO, BESTSELLER и т.п.
	Available   bool
	Stock       int
	MinStock    int
}

func NewProduct(name, description string, price int64, category, image string) *Product {
	return &Product{
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		Image:       image,
		Available:   true,
		MinStock:    DefaultMinStock,
	}
}

// IsLowStock — остаток на уровне порога или ниже.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// ProductPatch — частичное обновление товара; nil означает «не менять».
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *int64
	Category    *string
	Image       *string
	Badge       *string
	Available   *bool
	Stock       *int
	MinStock    *int
}

// Apply возвращает копию товара с применёнными изменениями.
func (p Product) Apply(patch ProductPatch) Product {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Badge != nil {
		badge := *patch.Badge
		p.Badge = &badge
	}
	if patch.Available != nil {
		p.Available = *patch.Available
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.MinStock != nil {
		p.MinStock = *patch.MinStock
	}
	return p
}
