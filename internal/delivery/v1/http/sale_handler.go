package http

import (
	"net/http"

	"github.com/DRSN-tech/soares-modas/internal/domain"
	"github.com/DRSN-tech/soares-modas/internal/usecase"
	"github.com/DRSN-tech/soares-modas/pkg/e"
	"github.com/DRSN-tech/soares-modas/pkg/logger"
)

type SaleHandler struct {
	saleUsecase usecase.SaleUC
	logger      logger.Logger
}

func NewSaleHandler(saleUsecase usecase.SaleUC, logger logger.Logger) *SaleHandler {
	return &SaleHandler{saleUsecase: saleUsecase, logger: logger}
}

// createSale
//
//	@Summary		Регистрация продажи
//	@Tags			sales
//	@Accept			json
//	@Produce		json
//	@Param			sale	body		saleRequest	true	"Продажа"
//	@Success		201		{object}	saleResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse	"Товар не найден"
//	@Router			/sales [post]
func (s *SaleHandler) createSale(w http.ResponseWriter, r *http.Request) {
	var req saleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(s.logger, w, r, err)
		return
	}

	sale, err := s.saleUsecase.Create(r.Context(), req.toUseCase())
	if err != nil {
		respondError(s.logger, w, r, err)
		return
	}

	s.logger.Infof("sale %d recorded for product %d", sale.ID, sale.ProductID)
	WriteSuccess(w, http.StatusCreated, newSaleResponse(sale))
}

// listSales
//
//	@Summary		Список продаж
//	@Description	Без параметров возвращает все продажи; from/to включительно, в часовом поясе магазина
//	@Tags			sales
//	@Produce		json
//	@Param			from	query	string	false	"Начало периода (YYYY-MM-DD)"
//	@Param			to		query	string	false	"Конец периода (YYYY-MM-DD)"
//	@Success		200		{array}		saleResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/sales [get]
func (s *SaleHandler) listSales(w http.ResponseWriter, r *http.Request) {
	req, err := parseSalesQuery(r)
	if err != nil {
		respondError(s.logger, w, r, err)
		return
	}

	sales, err := s.saleUsecase.List(r.Context(), req)
	if err != nil {
		respondError(s.logger, w, r, err)
		return
	}

	res := make([]saleResponse, 0, len(sales))
	for i := range sales {
		res = append(res, newSaleResponse(&sales[i]))
	}
	WriteSuccess(w, http.StatusOK, res)
}

func parseSalesQuery(r *http.Request) (*usecase.ListSalesReq, error) {
	q := r.URL.Query()

	from, err := parseDateParam(q.Get("from"), "from")
	if err != nil {
		return nil, err
	}
	to, err := parseDateParam(q.Get("to"), "to")
	if err != nil {
		return nil, err
	}

	return &usecase.ListSalesReq{From: from, To: to}, nil
}

// parseDateParam разбирает необязательный параметр даты; пустая строка даёт nil.
func parseDateParam(raw, name string) (*domain.Date, error) {
	if raw == "" {
		return nil, nil
	}

	d, err := domain.ParseDate(raw)
	if err != nil {
		return nil, e.Wrap(name, err)
	}
	return &d, nil
}
