package http

import (
	"net/http"

	"github.com/DRSN-tech/soares-modas/internal/usecase"
	"github.com/DRSN-tech/soares-modas/pkg/logger"
)

type VisitHandler struct {
	visitUsecase usecase.VisitUC
	logger       logger.Logger
}

func NewVisitHandler(visitUsecase usecase.VisitUC, logger logger.Logger) *VisitHandler {
	return &VisitHandler{visitUsecase: visitUsecase, logger: logger}
}

// recordVisit
//
//	@Summary		Регистрация просмотра страницы
//	@Description	Если ipAddress/userAgent не переданы, берутся из запроса
//	@Tags			visits
//	@Accept			json
//	@Produce		json
//	@Param			visit	body		visitRequest	true	"Просмотр"
//	@Success		201		{object}	visitResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/visits [post]
func (v *VisitHandler) recordVisit(w http.ResponseWriter, r *http.Request) {
	var req visitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(v.logger, w, r, err)
		return
	}

	ip := clientIP(r)
	if req.IPAddress != nil {
		ip = *req.IPAddress
	}
	userAgent := r.UserAgent()
	if req.UserAgent != nil {
		userAgent = *req.UserAgent
	}

	visit, err := v.visitUsecase.Record(r.Context(), &usecase.RecordVisitReq{
		Page:      req.PageViewed,
		IPAddress: ip,
		UserAgent: userAgent,
	})
	if err != nil {
		respondError(v.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newVisitResponse(visit))
}
