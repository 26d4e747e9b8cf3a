package converter

import (
	"github.com/DRSN-tech/soares-modas/internal/domain"
	"github.com/DRSN-tech/soares-modas/internal/usecase"
)

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
	ToArrEntity(models []ProductModel) []domain.Product
}

// SaleConverter преобразует сущности Sale между domain и моделью PostgreSQL.
type SaleConverter interface {
	ToModel(entity *domain.Sale) *SaleModel
	ToEntity(model *SaleModel) *domain.Sale
	ToArrEntity(models []SaleModel) []domain.Sale
}

type SiteVisitConverter interface {
	ToModel(entity *domain.SiteVisit) *SiteVisitModel
	ToEntity(model *SiteVisitModel) *domain.SiteVisit
	ToArrEntity(models []SiteVisitModel) []domain.SiteVisit
}

type PromotionConverter interface {
	ToModel(entity *domain.Promotion) *PromotionModel
	ToEntity(model *PromotionModel) *domain.Promotion
	ToArrEntity(models []PromotionModel) []domain.Promotion
}

type StoreSettingsConverter interface {
	ToModel(entity *domain.StoreSettings) *StoreSettingsModel
	ToEntity(model *StoreSettingsModel) *domain.StoreSettings
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

type ProductConv struct{}

func (ProductConv) ToModel(entity *domain.Product) *ProductModel {
	if entity == nil {
		return nil
	}
	return &ProductModel{
		ID:          entity.ID,
		Name:        entity.Name,
		Description: entity.Description,
		Price:       entity.Price,
		Category:    entity.Category,
		Image:       entity.Image,
		Badge:       copyString(entity.Badge),
		Available:   entity.Available,
		Stock:       entity.Stock,
		MinStock:    entity.MinStock,
	}
}

func (ProductConv) ToEntity(model *ProductModel) *domain.Product {
	if model == nil {
		return nil
	}
	return &domain.Product{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Price:       model.Price,
		Category:    model.Category,
		Image:       model.Image,
		Badge:       copyString(model.Badge),
		Available:   model.Available,
		Stock:       model.Stock,
		MinStock:    model.MinStock,
	}
}

func (c ProductConv) ToArrEntity(models []ProductModel) []domain.Product {
	result := make([]domain.Product, 0, len(models))
	for i := range models {
		result = append(result, *c.ToEntity(&models[i]))
	}
	return result
}

type SaleConv struct{}

func (SaleConv) ToModel(entity *domain.Sale) *SaleModel {
	if entity == nil {
		return nil
	}
	return &SaleModel{
		ID:            entity.ID,
		ProductID:     entity.ProductID,
		Quantity:      entity.Quantity,
		TotalPrice:    entity.TotalPrice,
		CustomerName:  copyString(entity.CustomerName),
		CustomerPhone: copyString(entity.CustomerPhone),
		SaleDate:      entity.SaleDate,
	}
}

func (SaleConv) ToEntity(model *SaleModel) *domain.Sale {
	if model == nil {
		return nil
	}
	return &domain.Sale{
		ID:            model.ID,
		ProductID:     model.ProductID,
		Quantity:      model.Quantity,
		TotalPrice:    model.TotalPrice,
		CustomerName:  copyString(model.CustomerName),
		CustomerPhone: copyString(model.CustomerPhone),
		SaleDate:      model.SaleDate,
	}
}

func (c SaleConv) ToArrEntity(models []SaleModel) []domain.Sale {
	result := make([]domain.Sale, 0, len(models))
	for i := range models {
		result = append(result, *c.ToEntity(&models[i]))
	}
	return result
}

type SiteVisitConv struct{}

// ToModel сохраняет пустые ip и user agent как NULL.
func (SiteVisitConv) ToModel(entity *domain.SiteVisit) *SiteVisitModel {
	if entity == nil {
		return nil
	}
	return &SiteVisitModel{
		ID:         entity.ID,
		VisitDate:  entity.VisitDate,
		PageViewed: entity.PageViewed,
		IPAddress:  nullableString(entity.IPAddress),
		UserAgent:  nullableString(entity.UserAgent),
	}
}

func (SiteVisitConv) ToEntity(model *SiteVisitModel) *domain.SiteVisit {
	if model == nil {
		return nil
	}
	return &domain.SiteVisit{
		ID:         model.ID,
		VisitDate:  model.VisitDate,
		PageViewed: model.PageViewed,
		IPAddress:  derefString(model.IPAddress),
		UserAgent:  derefString(model.UserAgent),
	}
}

func (c SiteVisitConv) ToArrEntity(models []SiteVisitModel) []domain.SiteVisit {
	result := make([]domain.SiteVisit, 0, len(models))
	for i := range models {
		result = append(result, *c.ToEntity(&models[i]))
	}
	return result
}

type PromotionConv struct{}

func (PromotionConv) ToModel(entity *domain.Promotion) *PromotionModel {
	if entity == nil {
		return nil
	}
	return &PromotionModel{
		ID:                 entity.ID,
		Title:              entity.Title,
		Description:        entity.Description,
		DiscountPercentage: entity.DiscountPercentage,
		StartDate:          entity.StartDate.Time(),
		EndDate:            entity.EndDate.Time(),
		IsActive:           entity.IsActive,
		CreatedAt:          entity.CreatedAt,
	}
}

func (PromotionConv) ToEntity(model *PromotionModel) *domain.Promotion {
	if model == nil {
		return nil
	}
	return &domain.Promotion{
		ID:                 model.ID,
		Title:              model.Title,
		Description:        model.Description,
		DiscountPercentage: model.DiscountPercentage,
		StartDate:          domain.DateFromTime(model.StartDate),
		EndDate:            domain.DateFromTime(model.EndDate),
		IsActive:           model.IsActive,
		CreatedAt:          model.CreatedAt,
	}
}

func (c PromotionConv) ToArrEntity(models []PromotionModel) []domain.Promotion {
	result := make([]domain.Promotion, 0, len(models))
	for i := range models {
		result = append(result, *c.ToEntity(&models[i]))
	}
	return result
}

type StoreSettingsConv struct{}

func (StoreSettingsConv) ToModel(entity *domain.StoreSettings) *StoreSettingsModel {
	if entity == nil {
		return nil
	}
	return &StoreSettingsModel{
		ID:               entity.ID,
		LogoURL:          copyString(entity.LogoURL),
		IconURL:          copyString(entity.IconURL),
		StoreName:        entity.StoreName,
		StoreDescription: copyString(entity.StoreDescription),
		UpdatedAt:        entity.UpdatedAt,
	}
}

func (StoreSettingsConv) ToEntity(model *StoreSettingsModel) *domain.StoreSettings {
	if model == nil {
		return nil
	}
	return &domain.StoreSettings{
		ID:               model.ID,
		LogoURL:          copyString(model.LogoURL),
		IconURL:          copyString(model.IconURL),
		StoreName:        model.StoreName,
		StoreDescription: copyString(model.StoreDescription),
		UpdatedAt:        model.UpdatedAt,
	}
}

type OutboxEventConv struct{}

func (OutboxEventConv) ToModel(entity *usecase.OutboxEvent) *OutboxEventModel {
	if entity == nil {
		return nil
	}
	return &OutboxEventModel{
		ID:          entity.ID,
		EventID:     entity.EventID,
		EventType:   string(entity.EventType),
		ProductID:   entity.AggregateID,
		Payload:     entity.Payload,
		Status:      string(entity.Status),
		CreatedAt:   entity.CreatedAt,
		ProcessedAt: entity.ProcessedAt,
	}
}

func (OutboxEventConv) ToEntity(model *OutboxEventModel) *usecase.OutboxEvent {
	if model == nil {
		return nil
	}
	return &usecase.OutboxEvent{
		ID:          model.ID,
		EventID:     model.EventID,
		EventType:   usecase.OutboxEventType(model.EventType),
		AggregateID: model.ProductID,
		Payload:     model.Payload,
		Status:      usecase.OutboxStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		ProcessedAt: model.ProcessedAt,
	}
}

func (c OutboxEventConv) ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent {
	result := make([]*usecase.OutboxEvent, 0, len(models))
	for _, m := range models {
		result = append(result, c.ToEntity(m))
	}
	return result
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
