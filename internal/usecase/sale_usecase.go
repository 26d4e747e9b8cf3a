package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/soares-modas/internal/domain"
	"github.com/DRSN-tech/soares-modas/pkg/e"
	"github.com/DRSN-tech/soares-modas/pkg/tr"
)

// SaleUseCase фиксирует продажи и отдаёт их историю.
type SaleUseCase struct {
	saleRepo    SaleRepository
	productRepo ProductRepository
	outboxRepo  OutboxRepository
	trManager   tr.Manager
	loc         *time.Location
	now         Clock
}

func NewSaleUC(
	saleRepo SaleRepository,
	productRepo ProductRepository,
	outboxRepo OutboxRepository,
	trManager tr.Manager,
	loc *time.Location,
	now Clock,
) *SaleUseCase {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}

	return &SaleUseCase{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		outboxRepo:  outboxRepo,
		trManager:   trManager,
		loc:         loc,
		now:         now,
	}
}

// Create записывает продажу и событие sale.recorded в одной транзакции.
// Остаток товара не меняется.
func (s *SaleUseCase) Create(ctx context.Context, req *CreateSaleReq) (*domain.Sale, error) {
	const op = "SaleUseCase.Create"

	if err := validateSale(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	var created *domain.Sale
	err := s.trManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.productRepo.GetByID(ctx, req.ProductID); err != nil {
			return err
		}

		sale := domain.NewSale(req.ProductID, req.Quantity, req.TotalPrice, req.CustomerName, req.CustomerPhone, s.now())

		var err error
		created, err = s.saleRepo.Create(ctx, sale)
		if err != nil {
			return err
		}

		event, err := NewOutboxEvent(EventSaleRecorded, created.ProductID, map[string]any{
			"saleId":     created.ID,
			"productId":  created.ProductID,
			"quantity":   created.Quantity,
			"totalPrice": created.TotalPrice,
			"saleDate":   created.SaleDate.UTC().Format(time.RFC3339),
		}, s.now())
		if err != nil {
			return err
		}

		_, err = s.outboxRepo.Create(ctx, event)
		return err
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return created, nil
}

// List возвращает продажи по убыванию даты. Если задан хотя бы один предел,
// фильтрует по календарным датам магазина включительно.
func (s *SaleUseCase) List(ctx context.Context, req *ListSalesReq) ([]domain.Sale, error) {
	const op = "SaleUseCase.List"

	if req == nil || (req.From == nil && req.To == nil) {
		sales, err := s.saleRepo.List(ctx)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		return sales, nil
	}

	if req.From != nil && req.To != nil && req.To.Before(*req.From) {
		return nil, e.Wrap(op, e.ErrInvalidDateRange)
	}

	from, to := s.bounds(req)
	sales, err := s.saleRepo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return sales, nil
}

// bounds переводит [From, To] в полуинтервал моментов времени [from, to).
func (s *SaleUseCase) bounds(req *ListSalesReq) (time.Time, time.Time) {
	from := time.Unix(0, 0).UTC()
	if req.From != nil {
		from = req.From.StartIn(s.loc)
	}

	to := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
	if req.To != nil {
		to = req.To.AddDays(1).StartIn(s.loc)
	}

	return from, to
}

func validateSale(req *CreateSaleReq) error {
	var fields []e.FieldError

	if req.ProductID <= 0 {
		fields = append(fields, e.FieldError{Field: "productId", Rule: "required"})
	}
	if req.Quantity <= 0 {
		fields = append(fields, e.FieldError{Field: "quantity", Rule: "gt", Param: "0"})
	}
	if req.TotalPrice < 0 {
		fields = append(fields, e.FieldError{Field: "totalPrice", Rule: "gte", Param: "0"})
	}

	if len(fields) > 0 {
		return e.NewValidationError(fields...)
	}
	return nil
}
