package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/DRSN-tech/soares-modas/internal/domain"
	"github.com/DRSN-tech/soares-modas/pkg/e"
)

type VisitUseCase struct {
	visitRepo VisitRepository
	now       Clock
}

func NewVisitUC(visitRepo VisitRepository, now Clock) *VisitUseCase {
	if now == nil {
		now = time.Now
	}
	return &VisitUseCase{visitRepo: visitRepo, now: now}
}

func (v *VisitUseCase) Record(ctx context.Context, req *RecordVisitReq) (*domain.SiteVisit, error) {
	const op = "VisitUseCase.Record"

	page := strings.TrimSpace(req.Page)
	if page == "" {
		return nil, e.Wrap(op, e.NewValidationError(e.FieldError{Field: "pageViewed", Rule: "required"}))
	}

	visit, err := v.visitRepo.Create(ctx, domain.NewSiteVisit(page, req.IPAddress, req.UserAgent, v.now()))
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return visit, nil
}
