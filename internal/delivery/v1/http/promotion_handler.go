package http

import (
	"net/http"

	"github.com/DRSN-tech/soares-modas/internal/usecase"
	"github.com/DRSN-tech/soares-modas/pkg/logger"
)

type PromotionHandler struct {
	promotionUsecase usecase.PromotionUC
	logger           logger.Logger
}

func NewPromotionHandler(promotionUsecase usecase.PromotionUC, logger logger.Logger) *PromotionHandler {
	return &PromotionHandler{promotionUsecase: promotionUsecase, logger: logger}
}

// createPromotion
//
//	@Summary		Создание акции
//	@Description	Даты в формате YYYY-MM-DD, endDate не раньше startDate
//	@Tags			promotions
//	@Accept			json
//	@Produce		json
//	@Param			promotion	body		promotionRequest	true	"Акция"
//	@Success		201			{object}	promotionResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/promotions [post]
func (p *PromotionHandler) createPromotion(w http.ResponseWriter, r *http.Request) {
	var req promotionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(p.logger, w, r, err)
		return
	}

	promotion, err := p.promotionUsecase.Create(r.Context(), req.toDomain())
	if err != nil {
		respondError(p.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newPromotionResponse(promotion))
}

// listPromotions
//
//	@Summary		Все акции
//	@Tags			promotions
//	@Produce		json
//	@Success		200	{array}	promotionResponse
//	@Router			/promotions [get]
func (p *PromotionHandler) listPromotions(w http.ResponseWriter, r *http.Request) {
	promotions, err := p.promotionUsecase.List(r.Context())
	if err != nil {
		respondError(p.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newPromotionsResponse(promotions))
}

// listActivePromotions
//
//	@Summary		Действующие сегодня акции
//	@Tags			promotions
//	@Produce		json
//	@Success		200	{array}	promotionResponse
//	@Router			/promotions/active [get]
func (p *PromotionHandler) listActivePromotions(w http.ResponseWriter, r *http.Request) {
	promotions, err := p.promotionUsecase.ListActive(r.Context())
	if err != nil {
		respondError(p.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newPromotionsResponse(promotions))
}

// updatePromotion
//
//	@Summary		Частичное обновление акции
//	@Tags			promotions
//	@Accept			json
//	@Produce		json
//	@Param			id			path		int						true	"ID акции"
//	@Param			promotion	body		promotionPatchRequest	true	"Изменяемые поля"
//	@Success		200			{object}	promotionResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/promotions/{id} [put]
func (p *PromotionHandler) updatePromotion(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondError(p.logger, w, r, err)
		return
	}

	var req promotionPatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(p.logger, w, r, err)
		return
	}

	promotion, err := p.promotionUsecase.Update(r.Context(), id, req.toDomain())
	if err != nil {
		respondError(p.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newPromotionResponse(promotion))
}

// deletePromotion
//
//	@Summary		Удаление акции
//	@Tags			promotions
//	@Produce		json
//	@Param			id	path		int	true	"ID акции"
//	@Success		200	{object}	messageResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/promotions/{id} [delete]
func (p *PromotionHandler) deletePromotion(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondError(p.logger, w, r, err)
		return
	}

	if err := p.promotionUsecase.Delete(r.Context(), id); err != nil {
		respondError(p.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, messageResponse{Message: "Promotion deleted successfully"})
}
