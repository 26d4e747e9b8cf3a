package http

import (
	"net/http"

	"github.com/DRSN-tech/soares-modas/internal/usecase"
	"github.com/DRSN-tech/soares-modas/pkg/logger"
)

type CartHandler struct {
	cartUsecase usecase.CartUC
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, logger: logger}
}

// checkout
//
//	@Summary		Оформление корзины через WhatsApp
//	@Description	Заказ не создаётся и остатки не резервируются: возвращается текст сообщения и ссылка wa.me
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			cart	body		checkoutRequest	true	"Строки корзины"
//	@Success		200		{object}	checkoutResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/cart/checkout [post]
func (c *CartHandler) checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(c.logger, w, r, err)
		return
	}

	res, err := c.cartUsecase.Checkout(r.Context(), req.toUseCase())
	if err != nil {
		respondError(c.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCheckoutResponse(res))
}
