package converter

import "github.com/DRSN-tech/soares-modas/internal/domain"

// ProductRedisModel — представление товара в кэше.
type ProductRedisModel struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       int64   `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Badge       *string `json:"badge,omitempty"`
	Available   bool    `json:"available"`
	Stock       int     `json:"stock"`
	MinStock    int     `json:"min_stock"`
}

type ProductConverter interface {
	ToRedisModel(entity *domain.Product) *ProductRedisModel
	ToEntity(model *ProductRedisModel) *domain.Product
	ToArrRedisModel(entities []domain.Product) []ProductRedisModel
}

type ProductConv struct{}

func (ProductConv) ToRedisModel(entity *domain.Product) *ProductRedisModel {
	return &ProductRedisModel{
		ID:          entity.ID,
		Name:        entity.Name,
		Description: entity.Description,
		Price:       entity.Price,
		Category:    entity.Category,
		Image:       entity.Image,
		Badge:       entity.Badge,
		Available:   entity.Available,
		Stock:       entity.Stock,
		MinStock:    entity.MinStock,
	}
}

func (ProductConv) ToEntity(model *ProductRedisModel) *domain.Product {
	return &domain.Product{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Price:       model.Price,
		Category:    model.Category,
		Image:       model.Image,
		Badge:       model.Badge,
		Available:   model.Available,
		Stock:       model.Stock,
		MinStock:    model.MinStock,
	}
}

func (c ProductConv) ToArrRedisModel(entities []domain.Product) []ProductRedisModel {
	result := make([]ProductRedisModel, 0, len(entities))
	for i := range entities {
		result = append(result, *c.ToRedisModel(&entities[i]))
	}
	return result
}
