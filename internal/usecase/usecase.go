package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/soares-modas/internal/domain"
)

// Clock возвращает текущее время; подменяется в тестах.
type Clock func() time.Time

type ProductUC interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Product, error)
	ListLowStock(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	GetMany(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error)
	UpdateStock(ctx context.Context, id int64, stock int) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

type SaleUC interface {
	Create(ctx context.Context, req *CreateSaleReq) (*domain.Sale, error)
	List(ctx context.Context, req *ListSalesReq) ([]domain.Sale, error)
}

type VisitUC interface {
	Record(ctx context.Context, req *RecordVisitReq) (*domain.SiteVisit, error)
}

type AnalyticsUC interface {
	SalesAnalytics(ctx context.Context) (*SalesAnalytics, error)
	VisitsAnalytics(ctx context.Context) (*VisitsAnalytics, error)
}

type PromotionUC interface {
	Create(ctx context.Context, promotion *domain.Promotion) (*domain.Promotion, error)
	List(ctx context.Context) ([]domain.Promotion, error)
	ListActive(ctx context.Context) ([]domain.Promotion, error)
	Update(ctx context.Context, id int64, patch domain.PromotionPatch) (*domain.Promotion, error)
	Delete(ctx context.Context, id int64) error
}

type StoreUC interface {
	GetSettings(ctx context.Context) (*domain.StoreSettings, error)
	UpdateSettings(ctx context.Context, patch domain.StoreSettingsPatch) (*domain.StoreSettings, error)
}

type AuthUC interface {
	Login(ctx context.Context, req *LoginReq) (*LoginRes, error)
}

type CartUC interface {
	Checkout(ctx context.Context, req *CheckoutReq) (*CheckoutRes, error)
	ProductInquiry(ctx context.Context, productID int64) (*WhatsAppLink, error)
}

type ImageUC interface {
	UploadImages(ctx context.Context, req *UploadImagesReq) (*UploadImagesRes, error)
}
