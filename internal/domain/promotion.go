package domain

import (
	"time"

	"github.com/DRSN-tech/soares-modas/pkg/e"
)

// Promotion — скидочная кампания с ограниченным сроком.
type Promotion struct {
	ID                 int64
	Title              string
	Description        string
	DiscountPercentage int
	StartDate          Date
	EndDate            Date
	IsActive           bool
	CreatedAt          time.Time
}

// IsActiveOn — акция включена и today попадает в [StartDate, EndDate] включительно.
func (p *Promotion) IsActiveOn(today Date) bool {
	return p.IsActive && !today.Before(p.StartDate) && !today.After(p.EndDate)
}

// Validate проверяет согласованность окна действия.
func (p *Promotion) Validate() error {
	if p.EndDate.Before(p.StartDate) {
		return e.ErrInvalidDateRange
	}
	return nil
}

// PromotionPatch — частичное обновление акции.
type PromotionPatch struct {
	Title              *string
	Description        *string
	DiscountPercentage *int
	StartDate          *Date
	EndDate            *Date
	IsActive           *bool
}

func (p Promotion) Apply(patch PromotionPatch) Promotion {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.DiscountPercentage != nil {
		p.DiscountPercentage = *patch.DiscountPercentage
	}
	if patch.StartDate != nil {
		p.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		p.EndDate = *patch.EndDate
	}
	if patch.IsActive != nil {
		p.IsActive = *patch.IsActive
	}
	return p
}
