package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/soares-modas/internal/domain"
)

// ProductRepository — хранилище каталога.
// GetByID/UpdateStock/Update возвращают e.ErrProductNotFound для неизвестного id.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateStock(ctx context.Context, id int64, stock int) (*domain.Product, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type SaleRepository interface {
	Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	List(ctx context.Context) ([]domain.Sale, error)
	// ListBetween возвращает продажи с from <= sale_date < to.
	ListBetween(ctx context.Context, from, to time.Time) ([]domain.Sale, error)
}

type VisitRepository interface {
	Create(ctx context.Context, visit *domain.SiteVisit) (*domain.SiteVisit, error)
	List(ctx context.Context) ([]domain.SiteVisit, error)
}

type PromotionRepository interface {
	Create(ctx context.Context, promotion *domain.Promotion) (*domain.Promotion, error)
	// List возвращает акции по убыванию даты создания.
	List(ctx context.Context) ([]domain.Promotion, error)
	GetByID(ctx context.Context, id int64) (*domain.Promotion, error)
	Update(ctx context.Context, promotion *domain.Promotion) (*domain.Promotion, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// StoreSettingsRepository хранит единственную строку настроек.
// Get и GetForUpdate возвращают (nil, nil), если строки ещё нет.
type StoreSettingsRepository interface {
	Get(ctx context.Context) (*domain.StoreSettings, error)
	GetForUpdate(ctx context.Context) (*domain.StoreSettings, error)
	Save(ctx context.Context, settings *domain.StoreSettings) (*domain.StoreSettings, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type CacheRepository interface {
	GetProducts(ctx context.Context, ids []int64) (map[int64]domain.Product, error)
	SetProducts(ctx context.Context, products []domain.Product) error
	DeleteProducts(ctx context.Context, ids []int64) error
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}
