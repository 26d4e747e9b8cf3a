package http

import (
	"net/http"

	"github.com/DRSN-tech/soares-modas/internal/usecase"
	"github.com/DRSN-tech/soares-modas/pkg/logger"
)

type StoreHandler struct {
	storeUsecase usecase.StoreUC
	logger       logger.Logger
}

func NewStoreHandler(storeUsecase usecase.StoreUC, logger logger.Logger) *StoreHandler {
	return &StoreHandler{storeUsecase: storeUsecase, logger: logger}
}

// getSettings
//
//	@Summary		Настройки магазина
//	@Description	Пока настройки не сохранялись, возвращается пустой объект
//	@Tags			store
//	@Produce		json
//	@Success		200	{object}	storeSettingsResponse
//	@Router			/store/settings [get]
func (s *StoreHandler) getSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.storeUsecase.GetSettings(r.Context())
	if err != nil {
		respondError(s.logger, w, r, err)
		return
	}

	if settings == nil {
		WriteSuccess(w, http.StatusOK, struct{}{})
		return
	}
	WriteSuccess(w, http.StatusOK, newStoreSettingsResponse(settings))
}

// updateSettings
//
//	@Summary		Обновление настроек магазина
//	@Description	Переданные поля объединяются с текущими настройками; при отсутствии строки она создаётся
//	@Tags			store
//	@Accept			json
//	@Produce		json
//	@Param			settings	body		storeSettingsRequest	true	"Изменяемые поля"
//	@Success		200			{object}	storeSettingsResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/store/settings [put]
func (s *StoreHandler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var req storeSettingsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(s.logger, w, r, err)
		return
	}

	settings, err := s.storeUsecase.UpdateSettings(r.Context(), req.toDomain())
	if err != nil {
		respondError(s.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newStoreSettingsResponse(settings))
}
