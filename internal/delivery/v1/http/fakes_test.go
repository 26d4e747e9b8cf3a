package http

import (
	"context"

	"github.com/DRSN-tech/soares-modas/internal/domain"
	"github.com/DRSN-tech/soares-modas/internal/usecase"
	"github.com/DRSN-tech/soares-modas/pkg/e"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)        {}
func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}
func (nopLogger) Sync() error                  { return nil }

type fakeProductUC struct {
	usecase.ProductUC
	products map[int64]domain.Product
	created  *domain.Product
	patch    domain.ProductPatch
	err      error
}

func (f *fakeProductUC) List(context.Context) ([]domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	res := make([]domain.Product, 0, len(f.products))
	for _, p := range f.products {
		res = append(res, p)
	}
	return res, nil
}

func (f *fakeProductUC) Get(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, e.Wrap("fake", e.ErrProductNotFound)
	}
	return &p, nil
}

func (f *fakeProductUC) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	f.created = p
	out := *p
	out.ID = 42
	return &out, nil
}

func (f *fakeProductUC) Update(_ context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	f.patch = patch
	p, ok := f.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}
	out := p.Apply(patch)
	return &out, nil
}

func (f *fakeProductUC) UpdateStock(_ context.Context, id int64, stock int) (*domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}
	p.Stock = stock
	return &p, nil
}

func (f *fakeProductUC) Delete(context.Context, int64) error {
	return f.err
}

func (f *fakeProductUC) ListLowStock(context.Context) ([]domain.Product, error) {
	var res []domain.Product
	for _, p := range f.products {
		if p.IsLowStock() {
			res = append(res, p)
		}
	}
	return res, nil
}

func (f *fakeProductUC) ListByCategory(_ context.Context, category string) ([]domain.Product, error) {
	var res []domain.Product
	for _, p := range f.products {
		if p.Category == category {
			res = append(res, p)
		}
	}
	return res, nil
}

type fakeSaleUC struct {
	listReq *usecase.ListSalesReq
	created *usecase.CreateSaleReq
	err     error
}

func (f *fakeSaleUC) Create(_ context.Context, req *usecase.CreateSaleReq) (*domain.Sale, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = req
	s := domain.NewSale(req.ProductID, req.Quantity, req.TotalPrice, req.CustomerName, req.CustomerPhone, fixedNow)
	s.ID = 7
	return s, nil
}

func (f *fakeSaleUC) List(_ context.Context, req *usecase.ListSalesReq) ([]domain.Sale, error) {
	f.listReq = req
	return nil, f.err
}

type fakeVisitUC struct {
	req *usecase.RecordVisitReq
}

func (f *fakeVisitUC) Record(_ context.Context, req *usecase.RecordVisitReq) (*domain.SiteVisit, error) {
	f.req = req
	v := domain.NewSiteVisit(req.Page, req.IPAddress, req.UserAgent, fixedNow)
	v.ID = 1
	return v, nil
}

type fakeAnalyticsUC struct {
	sales  *usecase.SalesAnalytics
	visits *usecase.VisitsAnalytics
	err    error
}

func (f *fakeAnalyticsUC) SalesAnalytics(context.Context) (*usecase.SalesAnalytics, error) {
	return f.sales, f.err
}

func (f *fakeAnalyticsUC) VisitsAnalytics(context.Context) (*usecase.VisitsAnalytics, error) {
	return f.visits, f.err
}

type fakePromotionUC struct {
	usecase.PromotionUC
	created *domain.Promotion
	err     error
}

func (f *fakePromotionUC) Create(_ context.Context, p *domain.Promotion) (*domain.Promotion, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	f.created = p
	out := *p
	out.ID = 3
	out.CreatedAt = fixedNow
	return &out, nil
}

func (f *fakePromotionUC) Delete(context.Context, int64) error {
	return f.err
}

type fakeStoreUC struct {
	settings *domain.StoreSettings
	patch    domain.StoreSettingsPatch
}

func (f *fakeStoreUC) GetSettings(context.Context) (*domain.StoreSettings, error) {
	return f.settings, nil
}

func (f *fakeStoreUC) UpdateSettings(_ context.Context, patch domain.StoreSettingsPatch) (*domain.StoreSettings, error) {
	f.patch = patch
	base := domain.NewStoreSettings("")
	if f.settings != nil {
		base = f.settings
	}
	out := base.Apply(patch, fixedNow)
	f.settings = &out
	return &out, nil
}

type fakeAuthUC struct{}

func (fakeAuthUC) Login(_ context.Context, req *usecase.LoginReq) (*usecase.LoginRes, error) {
	if req.Username != "admin" || req.Password != "secret" {
		return nil, e.Wrap("fake", e.ErrInvalidCredentials)
	}
	return &usecase.LoginRes{Token: "admin-authenticated", User: domain.AdminUser{ID: 1, Username: req.Username}}, nil
}

type fakeCartUC struct {
	req *usecase.CheckoutReq
	err error
}

func (f *fakeCartUC) Checkout(_ context.Context, req *usecase.CheckoutReq) (*usecase.CheckoutRes, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.req = req
	return &usecase.CheckoutRes{
		Items:   []domain.CartItem{{ProductID: 1, Name: "Vestido", UnitPrice: 8990, Quantity: 2}},
		Total:   17980,
		Message: "msg",
		Link:    "https://wa.me/5571994040672?text=msg",
	}, nil
}

func (f *fakeCartUC) ProductInquiry(_ context.Context, id int64) (*usecase.WhatsAppLink, error) {
	if id != 1 {
		return nil, e.ErrProductNotFound
	}
	return &usecase.WhatsAppLink{Message: "oi", Link: "https://wa.me/1?text=oi"}, nil
}

type fakeImageUC struct {
	req *usecase.UploadImagesReq
}

func (f *fakeImageUC) UploadImages(_ context.Context, req *usecase.UploadImagesReq) (*usecase.UploadImagesRes, error) {
	f.req = req
	keys := make([]string, 0, len(req.Images))
	urls := make([]string, 0, len(req.Images))
	for _, img := range req.Images {
		keys = append(keys, "images/"+img.Name)
		urls = append(urls, "http://cdn.local/images/"+img.Name)
	}
	return usecase.NewUploadImagesRes(keys, urls), nil
}
