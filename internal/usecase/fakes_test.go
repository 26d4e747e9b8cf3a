package usecase_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/DRSN-tech/soares-modas/internal/domain"
	"github.com/DRSN-tech/soares-modas/internal/usecase"
	"github.com/DRSN-tech/soares-modas/pkg/e"
	"github.com/DRSN-tech/soares-modas/pkg/logger"
)

var nopLogger = logger.NewNopLogger()

func fixedClock(t time.Time) usecase.Clock {
	return func() time.Time { return t }
}

// fakeTx выполняет fn без транзакции; при ошибке откатывает снимки фейков.
type fakeTx struct {
	calls int
	onErr func()
}

func (f *fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	err := fn(ctx)
	if err != nil && f.onErr != nil {
		f.onErr()
	}
	return err
}

type fakeProductRepo struct {
	mu       sync.Mutex
	nextID   int64
	products map[int64]domain.Product
	withSale map[int64]bool
	getCalls int

	// afterGetByIDs вызывается после чтения, вне блокировки.
	afterGetByIDs func()
}

func newFakeProductRepo(products ...domain.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[int64]domain.Product{}, withSale: map[int64]bool{}}
	for _, p := range products {
		r.products[p.ID] = p
		if p.ID > r.nextID {
			r.nextID = p.ID
		}
	}
	return r
}

func (r *fakeProductRepo) sorted() []domain.Product {
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *fakeProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted(), nil
}

func (r *fakeProductRepo) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Product
	for _, p := range r.sorted() {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getCalls++
	p, ok := r.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}
	return &p, nil
}

func (r *fakeProductRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	r.mu.Lock()
	r.getCalls++
	var out []domain.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, p)
		}
	}
	hook := r.afterGetByIDs
	r.afterGetByIDs = nil
	r.mu.Unlock()

	if hook != nil {
		hook()
	}
	return out, nil
}

func (r *fakeProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	p := *product
	p.ID = r.nextID
	r.products[p.ID] = p
	return &p, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; !ok {
		return nil, e.ErrProductNotFound
	}
	r.products[product.ID] = *product
	p := *product
	return &p, nil
}

func (r *fakeProductRepo) UpdateStock(ctx context.Context, id int64, stock int) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}
	p.Stock = stock
	r.products[id] = p
	return &p, nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.withSale[id] {
		return false, e.ErrProductHasSales
	}
	if _, ok := r.products[id]; !ok {
		return false, nil
	}
	delete(r.products, id)
	return true, nil
}

type fakeSaleRepo struct {
	sales []domain.Sale
}

func (r *fakeSaleRepo) Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	s := *sale
	s.ID = int64(len(r.sales) + 1)
	r.sales = append(r.sales, s)
	return &s, nil
}

func (r *fakeSaleRepo) List(ctx context.Context) ([]domain.Sale, error) {
	out := append([]domain.Sale(nil), r.sales...)
	sort.Slice(out, func(i, j int) bool { return out[i].SaleDate.After(out[j].SaleDate) })
	return out, nil
}

func (r *fakeSaleRepo) ListBetween(ctx context.Context, from, to time.Time) ([]domain.Sale, error) {
	all, _ := r.List(ctx)
	var out []domain.Sale
	for _, s := range all {
		if !s.SaleDate.Before(from) && s.SaleDate.Before(to) {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeVisitRepo struct {
	visits []domain.SiteVisit
}

func (r *fakeVisitRepo) Create(ctx context.Context, visit *domain.SiteVisit) (*domain.SiteVisit, error) {
	v := *visit
	v.ID = int64(len(r.visits) + 1)
	r.visits = append(r.visits, v)
	return &v, nil
}

func (r *fakeVisitRepo) List(ctx context.Context) ([]domain.SiteVisit, error) {
	return append([]domain.SiteVisit(nil), r.visits...), nil
}

type fakePromotionRepo struct {
	nextID     int64
	promotions []domain.Promotion
}

func (r *fakePromotionRepo) Create(ctx context.Context, promotion *domain.Promotion) (*domain.Promotion, error) {
	r.nextID++
	p := *promotion
	p.ID = r.nextID
	r.promotions = append(r.promotions, p)
	return &p, nil
}

func (r *fakePromotionRepo) List(ctx context.Context) ([]domain.Promotion, error) {
	out := append([]domain.Promotion(nil), r.promotions...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakePromotionRepo) GetByID(ctx context.Context, id int64) (*domain.Promotion, error) {
	for _, p := range r.promotions {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, e.ErrPromotionNotFound
}

func (r *fakePromotionRepo) Update(ctx context.Context, promotion *domain.Promotion) (*domain.Promotion, error) {
	for i := range r.promotions {
		if r.promotions[i].ID == promotion.ID {
			r.promotions[i] = *promotion
			p := *promotion
			return &p, nil
		}
	}
	return nil, e.ErrPromotionNotFound
}

func (r *fakePromotionRepo) Delete(ctx context.Context, id int64) (bool, error) {
	for i := range r.promotions {
		if r.promotions[i].ID == id {
			r.promotions = append(r.promotions[:i], r.promotions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// fakeSettingsRepo хранит строки как таблица с уникальным singleton.
type fakeSettingsRepo struct {
	rows []domain.StoreSettings
}

func (r *fakeSettingsRepo) Get(ctx context.Context) (*domain.StoreSettings, error) {
	if len(r.rows) == 0 {
		return nil, nil
	}
	s := r.rows[0]
	return &s, nil
}

func (r *fakeSettingsRepo) GetForUpdate(ctx context.Context) (*domain.StoreSettings, error) {
	return r.Get(ctx)
}

func (r *fakeSettingsRepo) Save(ctx context.Context, settings *domain.StoreSettings) (*domain.StoreSettings, error) {
	s := *settings
	if len(r.rows) == 0 {
		s.ID = 1
		r.rows = append(r.rows, s)
	} else {
		s.ID = r.rows[0].ID
		r.rows[0] = s
	}
	return &s, nil
}

type fakeOutboxRepo struct {
	events []*usecase.OutboxEvent
	err    error
}

func (r *fakeOutboxRepo) Create(ctx context.Context, event *usecase.OutboxEvent) (*usecase.OutboxEvent, error) {
	if r.err != nil {
		return nil, r.err
	}
	event.ID = int64(len(r.events) + 1)
	r.events = append(r.events, event)
	return event, nil
}

func (r *fakeOutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*usecase.OutboxEvent, error) {
	var out []*usecase.OutboxEvent
	for _, ev := range r.events {
		if ev.Status == usecase.Pending && len(out) < limit {
			ev.Status = usecase.Processing
			out = append(out, ev)
		}
	}
	return out, nil
}

func (r *fakeOutboxRepo) MarkAsProcessed(ctx context.Context, id int64) error {
	for _, ev := range r.events {
		if ev.ID == id {
			ev.Status = usecase.Processed
		}
	}
	return nil
}

type fakeCache struct {
	mu       sync.Mutex
	products map[int64]domain.Product
	err      error
}

func newFakeCache() *fakeCache {
	return &fakeCache{products: map[int64]domain.Product{}}
}

func (c *fakeCache) GetProducts(ctx context.Context, ids []int64) (map[int64]domain.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	out := map[int64]domain.Product{}
	for _, id := range ids {
		if p, ok := c.products[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (c *fakeCache) SetProducts(ctx context.Context, products []domain.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	for _, p := range products {
		c.products[p.ID] = p
	}
	return nil
}

func (c *fakeCache) DeleteProducts(ctx context.Context, ids []int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range ids {
		delete(c.products, id)
	}
	return nil
}

type fakeImages struct {
	cleaned []string
	uploads []usecase.ProductImage
}

func (f *fakeImages) UploadImages(ctx context.Context, req *usecase.UploadImagesReq) (*usecase.UploadImagesRes, error) {
	keys := make([]string, 0, len(req.Images))
	for _, img := range req.Images {
		f.uploads = append(f.uploads, img)
		keys = append(keys, req.Prefix+"/"+img.Name)
	}
	return usecase.NewUploadImagesRes(keys, nil), nil
}

func (f *fakeImages) CleanupImages(keys []string) {
	f.cleaned = append(f.cleaned, keys...)
}

func (f *fakeImages) PublicURL(key string) string {
	return "http://cdn.local/soares-modas/" + key
}

func (f *fakeImages) KeyFromURL(url string) (string, bool) {
	const prefix = "http://cdn.local/soares-modas/"
	if len(url) > len(prefix) && url[:len(prefix)] == prefix {
		return url[len(prefix):], true
	}
	return "", false
}

type fakeCredentials struct {
	username, password string
}

func (f fakeCredentials) Verify(ctx context.Context, username, password string) (bool, error) {
	return username == f.username && password == f.password, nil
}
