package usecase

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/DRSN-tech/soares-modas/internal/domain"
	"github.com/DRSN-tech/soares-modas/pkg/e"
	"github.com/DRSN-tech/soares-modas/pkg/logger"
	"github.com/DRSN-tech/soares-modas/pkg/tr"
)

const cacheWriteTimeout = 500 * time.Millisecond

// ProductUseCase реализует бизнес-логику каталога.
type ProductUseCase struct {
	productRepo ProductRepository
	outboxRepo  OutboxRepository
	trManager   tr.Manager
	cacheRepo   CacheRepository
	imagesInfra ImagesInfra
	logger      logger.Logger
	now         Clock

	// generation растёт при каждой инвалидации кэша. Заполнение кэша по
	// чтению, начатому до инвалидации, отменяется.
	generation atomic.Uint64
}

func NewProductUC(
	productRepo ProductRepository,
	outboxRepo OutboxRepository,
	trManager tr.Manager,
	cacheRepo CacheRepository,
	imagesInfra ImagesInfra,
	logger logger.Logger,
	now Clock,
) *ProductUseCase {
	if now == nil {
		now = time.Now
	}

	return &ProductUseCase{
		productRepo: productRepo,
		outboxRepo:  outboxRepo,
		trManager:   trManager,
		cacheRepo:   cacheRepo,
		imagesInfra: imagesInfra,
		logger:      logger,
		now:         now,
	}
}

func (p *ProductUseCase) List(ctx context.Context) ([]domain.Product, error) {
	const op = "ProductUseCase.List"

	products, err := p.productRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return products, nil
}

func (p *ProductUseCase) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	const op = "ProductUseCase.ListByCategory"

	products, err := p.productRepo.ListByCategory(ctx, category)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return products, nil
}

// ListLowStock возвращает товары с остатком не выше порога.
func (p *ProductUseCase) ListLowStock(ctx context.Context) ([]domain.Product, error) {
	const op = "ProductUseCase.ListLowStock"

	products, err := p.productRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	low := make([]domain.Product, 0)
	for i := range products {
		if products[i].IsLowStock() {
			low = append(low, products[i])
		}
	}
	return low, nil
}

// Get возвращает товар, сначала заглядывая в кэш.
func (p *ProductUseCase) Get(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "ProductUseCase.Get"

	res, err := p.GetMany(ctx, NewGetProductsReq([]int64{id}))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(res.Products) == 0 {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	product := res.Products[0]
	return &product, nil
}

// GetMany возвращает продукты по идентификаторам: кэш, затем БД.
func (p *ProductUseCase) GetMany(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error) {
	const op = "ProductUseCase.GetMany"

	if len(req.IDs) == 0 {
		return NewGetProductsRes(nil, nil), nil
	}

	// Поиск продуктов в кэше
	cached, err := p.cacheRepo.GetProducts(ctx, req.IDs)
	if err != nil {
		p.logger.Warnf("Product cache unavailable: %v", e.Wrap(op, err))
		cached = nil
	}

	var nonCacheable []int64
	for _, id := range req.IDs {
		if _, ok := cached[id]; !ok {
			nonCacheable = append(nonCacheable, id)
		}
	}

	// Получение продуктов из БД
	fromDB := make(map[int64]domain.Product)
	if len(nonCacheable) > 0 {
		gen := p.generation.Load()
		products, err := p.productRepo.GetByIDs(ctx, nonCacheable)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		for _, pr := range products {
			fromDB[pr.ID] = pr
		}

		if len(products) > 0 {
			p.cacheProducts(ctx, products, gen)
		}
	}

	// Формирование результата в порядке запроса
	result := make([]domain.Product, 0, len(req.IDs))
	notFound := make([]int64, 0)
	for _, id := range req.IDs {
		if pr, ok := cached[id]; ok {
			result = append(result, pr)
		} else if pr, ok := fromDB[id]; ok {
			result = append(result, pr)
		} else {
			notFound = append(notFound, id)
		}
	}

	return NewGetProductsRes(result, notFound), nil
}

func (p *ProductUseCase) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	const op = "ProductUseCase.Create"

	if err := validateProduct(product); err != nil {
		return nil, e.Wrap(op, err)
	}

	created, err := p.productRepo.Create(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return created, nil
}

// Update применяет частичные изменения. Заменённое изображение из нашего бакета удаляется.
func (p *ProductUseCase) Update(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	const op = "ProductUseCase.Update"

	existing, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	merged := existing.Apply(patch)
	merged.ID = id
	if err := validateProduct(&merged); err != nil {
		return nil, e.Wrap(op, err)
	}

	updated, err := p.productRepo.Update(ctx, &merged)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.invalidate(ctx, id)
	if existing.Image != updated.Image {
		p.cleanupImage(existing.Image)
	}

	return updated, nil
}

// UpdateStock меняет остаток; если товар стал «мало на складе», в той же транзакции пишется событие stock.low.
func (p *ProductUseCase) UpdateStock(ctx context.Context, id int64, stock int) (*domain.Product, error) {
	const op = "ProductUseCase.UpdateStock"

	if stock < 0 {
		return nil, e.Wrap(op, e.NewValidationError(e.FieldError{Field: "stock", Rule: "gte", Param: "0"}))
	}

	var updated *domain.Product
	err := p.trManager.Do(ctx, func(ctx context.Context) error {
		var err error
		updated, err = p.productRepo.UpdateStock(ctx, id, stock)
		if err != nil {
			return err
		}

		if !updated.IsLowStock() {
			return nil
		}

		event, err := NewOutboxEvent(EventStockLow, updated.ID, map[string]any{
			"productId":   updated.ID,
			"productName": updated.Name,
			"stock":       updated.Stock,
			"minStock":    updated.MinStock,
		}, p.now())
		if err != nil {
			return err
		}

		_, err = p.outboxRepo.Create(ctx, event)
		return err
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.invalidate(ctx, id)

	return updated, nil
}

// Delete удаляет товар. Для неизвестного id возвращает e.ErrProductNotFound,
// для товара с продажами — e.ErrProductHasSales.
func (p *ProductUseCase) Delete(ctx context.Context, id int64) error {
	const op = "ProductUseCase.Delete"

	existing, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}

	deleted, err := p.productRepo.Delete(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}
	if !deleted {
		return e.Wrap(op, e.ErrProductNotFound)
	}

	p.invalidate(ctx, id)
	p.cleanupImage(existing.Image)

	return nil
}

// cacheProducts кладёт товары в кэш; ошибка кэша не влияет на ответ.
// gen — поколение на момент чтения из БД. Если с тех пор была инвалидация,
// данные могли устареть: запись пропускается, а уже сделанная удаляется.
func (p *ProductUseCase) cacheProducts(ctx context.Context, products []domain.Product, gen uint64) {
	if p.generation.Load() != gen {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cacheWriteTimeout)
	defer cancel()

	if err := p.cacheRepo.SetProducts(ctx, products); err != nil {
		p.logger.Warnf("Failed to cache products: %v", err)
		return
	}

	if p.generation.Load() != gen {
		ids := make([]int64, 0, len(products))
		for i := range products {
			ids = append(ids, products[i].ID)
		}
		if err := p.cacheRepo.DeleteProducts(ctx, ids); err != nil {
			p.logger.Warnf("Failed to delete stale products from cache: %v", err)
		}
	}
}

// invalidate удаляет из кэша старые данные товара.
// Поколение увеличивается до удаления ключа.
func (p *ProductUseCase) invalidate(ctx context.Context, id int64) {
	p.generation.Add(1)

	if err := p.cacheRepo.DeleteProducts(ctx, []int64{id}); err != nil {
		p.logger.Warnf("Failed to delete products from cache: %v", err)
	}
}

func (p *ProductUseCase) cleanupImage(url string) {
	if url == "" {
		return
	}
	if key, ok := p.imagesInfra.KeyFromURL(url); ok {
		p.imagesInfra.CleanupImages([]string{key})
	}
}

// validateProduct проверяет инварианты товара после слияния изменений.
func validateProduct(product *domain.Product) error {
	var fields []e.FieldError

	if strings.TrimSpace(product.Name) == "" {
		fields = append(fields, e.FieldError{Field: "name", Rule: "required"})
	}
	if strings.TrimSpace(product.Category) == "" {
		fields = append(fields, e.FieldError{Field: "category", Rule: "required"})
	}
	if product.Price < 0 {
		fields = append(fields, e.FieldError{Field: "price", Rule: "gte", Param: "0"})
	}
	if product.Stock < 0 {
		fields = append(fields, e.FieldError{Field: "stock", Rule: "gte", Param: "0"})
	}
	if product.MinStock < 0 {
		fields = append(fields, e.FieldError{Field: "minStock", Rule: "gte", Param: "0"})
	}

	if len(fields) > 0 {
		return e.NewValidationError(fields...)
	}
	return nil
}
