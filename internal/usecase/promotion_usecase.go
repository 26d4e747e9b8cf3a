package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/DRSN-tech/soares-modas/internal/domain"
	"github.com/DRSN-tech/soares-modas/pkg/e"
)

const maxDiscountPercentage = 100

type PromotionUseCase struct {
	promotionRepo PromotionRepository
	loc           *time.Location
	now           Clock
}

func NewPromotionUC(promotionRepo PromotionRepository, loc *time.Location, now Clock) *PromotionUseCase {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}

	return &PromotionUseCase{
		promotionRepo: promotionRepo,
		loc:           loc,
		now:           now,
	}
}

func (p *PromotionUseCase) Create(ctx context.Context, promotion *domain.Promotion) (*domain.Promotion, error) {
	const op = "PromotionUseCase.Create"

	if err := validatePromotion(promotion); err != nil {
		return nil, e.Wrap(op, err)
	}

	promotion.CreatedAt = p.now()
	created, err := p.promotionRepo.Create(ctx, promotion)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return created, nil
}

func (p *PromotionUseCase) List(ctx context.Context) ([]domain.Promotion, error) {
	const op = "PromotionUseCase.List"

	promotions, err := p.promotionRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return promotions, nil
}

// ListActive возвращает акции, действующие сегодня по календарю магазина.
func (p *PromotionUseCase) ListActive(ctx context.Context) ([]domain.Promotion, error) {
	const op = "PromotionUseCase.ListActive"

	promotions, err := p.promotionRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	today := domain.DateOf(p.now(), p.loc)
	active := make([]domain.Promotion, 0)
	for i := range promotions {
		if promotions[i].IsActiveOn(today) {
			active = append(active, promotions[i])
		}
	}
	return active, nil
}

func (p *PromotionUseCase) Update(ctx context.Context, id int64, patch domain.PromotionPatch) (*domain.Promotion, error) {
	const op = "PromotionUseCase.Update"

	existing, err := p.promotionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	merged := existing.Apply(patch)
	merged.ID = id
	if err := validatePromotion(&merged); err != nil {
		return nil, e.Wrap(op, err)
	}

	updated, err := p.promotionRepo.Update(ctx, &merged)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return updated, nil
}

func (p *PromotionUseCase) Delete(ctx context.Context, id int64) error {
	const op = "PromotionUseCase.Delete"

	deleted, err := p.promotionRepo.Delete(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}
	if !deleted {
		return e.Wrap(op, e.ErrPromotionNotFound)
	}
	return nil
}

func validatePromotion(promotion *domain.Promotion) error {
	var fields []e.FieldError

	if strings.TrimSpace(promotion.Title) == "" {
		fields = append(fields, e.FieldError{Field: "title", Rule: "required"})
	}
	if promotion.DiscountPercentage < 0 || promotion.DiscountPercentage > maxDiscountPercentage {
		fields = append(fields, e.FieldError{Field: "discountPercentage", Rule: "max", Param: strconv.Itoa(maxDiscountPercentage)})
	}
	if promotion.StartDate.IsZero() {
		fields = append(fields, e.FieldError{Field: "startDate", Rule: "required"})
	}
	if promotion.EndDate.IsZero() {
		fields = append(fields, e.FieldError{Field: "endDate", Rule: "required"})
	}
	if len(fields) > 0 {
		return e.NewValidationError(fields...)
	}

	return promotion.Validate()
}
