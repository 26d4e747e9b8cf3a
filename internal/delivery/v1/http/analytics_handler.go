package http

import (
	"net/http"

	"github.com/DRSN-tech/soares-modas/internal/usecase"
	"github.com/DRSN-tech/soares-modas/pkg/logger"
)

type AnalyticsHandler struct {
	analyticsUsecase usecase.AnalyticsUC
	logger           logger.Logger
}

func NewAnalyticsHandler(analyticsUsecase usecase.AnalyticsUC, logger logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUsecase: analyticsUsecase, logger: logger}
}

// salesAnalytics
//
//	@Summary		Сводка продаж
//	@Description	Выручка, число заказов, средний чек и топ-5 товаров по выручке
//	@Tags			analytics
//	@Produce		json
//	@Success		200	{object}	salesAnalyticsResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/analytics/sales [get]
func (a *AnalyticsHandler) salesAnalytics(w http.ResponseWriter, r *http.Request) {
	res, err := a.analyticsUsecase.SalesAnalytics(r.Context())
	if err != nil {
		respondError(a.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newSalesAnalyticsResponse(res))
}

// visitsAnalytics
//
//	@Summary		Сводка посещений
//	@Description	Всего и уникальных (по IP) посещений, по дням за последние 30 дней и топ-10 страниц
//	@Tags			analytics
//	@Produce		json
//	@Success		200	{object}	visitsAnalyticsResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/analytics/visits [get]
func (a *AnalyticsHandler) visitsAnalytics(w http.ResponseWriter, r *http.Request) {
	res, err := a.analyticsUsecase.VisitsAnalytics(r.Context())
	if err != nil {
		respondError(a.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newVisitsAnalyticsResponse(res))
}
