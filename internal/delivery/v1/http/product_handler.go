package http

import (
	"net/http"

	"github.com/DRSN-tech/soares-modas/internal/usecase"
	"github.com/DRSN-tech/soares-modas/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	cartUsecase    usecase.CartUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, cartUsecase usecase.CartUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, cartUsecase: cartUsecase, logger: logger}
}

// listProducts
//
//	@Summary		Каталог товаров
//	@Tags			products
//	@Produce		json
//	@Success		200	{array}		productResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := p.productUsecase.List(r.Context())
	if err != nil {
		respondError(p.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductsResponse(products))
}

// getProduct
//
//	@Summary		Товар по идентификатору
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int	true	"ID товара"
//	@Success		200	{object}	productResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/products/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondError(p.logger, w, r, err)
		return
	}

	product, err := p.productUsecase.Get(r.Context(), id)
	if err != nil {
		respondError(p.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductResponse(product))
}

// createProduct
//
//	@Summary		Создание товара
//	@Description	Цена и остаток передаются целыми числами; цена в сентаво
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		productRequest	true	"Товар"
//	@Success		201		{object}	productResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/products [post]
func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(p.logger, w, r, err)
		return
	}

	product, err := p.productUsecase.Create(r.Context(), req.toDomain())
	if err != nil {
		respondError(p.logger, w, r, err)
		return
	}

	p.logger.Infof("product %d created", product.ID)
	WriteSuccess(w, http.StatusCreated, newProductResponse(product))
}

// updateProduct
//
//	@Summary		Частичное обновление товара
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"ID товара"
//	@Param			product	body		productPatchRequest	true	"Изменяемые поля"
//	@Success		200		{object}	productResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/products/{id} [put]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondError(p.logger, w, r, err)
		return
	}

	var req productPatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(p.logger, w, r, err)
		return
	}

	product, err := p.productUsecase.Update(r.Context(), id, req.toDomain())
	if err != nil {
		respondError(p.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductResponse(product))
}

// deleteProduct
//
//	@Summary		Удаление товара
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int	true	"ID товара"
//	@Success		200	{object}	messageResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse	"По товару есть продажи"
//	@Router			/products/{id} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondError(p.logger, w, r, err)
		return
	}

	if err := p.productUsecase.Delete(r.Context(), id); err != nil {
		respondError(p.logger, w, r, err)
		return
	}

	p.logger.Infof("product %d deleted", id)
	WriteSuccess(w, http.StatusOK, messageResponse{Message: "Product deleted successfully"})
}

// listByCategory
//
//	@Summary		Товары категории
//	@Tags			products
//	@Produce		json
//	@Param			category	path	string	true	"Категория"
//	@Success		200			{array}	productResponse
//	@Router			/products/category/{category} [get]
func (p *ProductHandler) listByCategory(w http.ResponseWriter, r *http.Request) {
	products, err := p.productUsecase.ListByCategory(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		respondError(p.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductsResponse(products))
}

// updateStock
//
//	@Summary		Обновление остатка
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int				true	"ID товара"
//	@Param			stock	body		stockRequest	true	"Новый остаток"
//	@Success		200		{object}	productResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/products/{id}/stock [put]
func (p *ProductHandler) updateStock(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondError(p.logger, w, r, err)
		return
	}

	var req stockRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(p.logger, w, r, err)
		return
	}

	product, err := p.productUsecase.UpdateStock(r.Context(), id, *req.Stock)
	if err != nil {
		respondError(p.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductResponse(product))
}

// listLowStock
//
//	@Summary		Товары с низким остатком
//	@Description	stock <= minStock
//	@Tags			products
//	@Produce		json
//	@Success		200	{array}	productResponse
//	@Router			/products/low-stock [get]
func (p *ProductHandler) listLowStock(w http.ResponseWriter, r *http.Request) {
	products, err := p.productUsecase.ListLowStock(r.Context())
	if err != nil {
		respondError(p.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductsResponse(products))
}

// productWhatsApp
//
//	@Summary		Ссылка WhatsApp для вопроса о товаре
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int	true	"ID товара"
//	@Success		200	{object}	whatsAppResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/products/{id}/whatsapp [get]
func (p *ProductHandler) productWhatsApp(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondError(p.logger, w, r, err)
		return
	}

	link, err := p.cartUsecase.ProductInquiry(r.Context(), id)
	if err != nil {
		respondError(p.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, whatsAppResponse(*link))
}
