package http

import (
	"net/http"

	_ "github.com/DRSN-tech/soares-modas/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/soares-modas/internal/usecase"
	"github.com/DRSN-tech/soares-modas/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// UseCases — набор сценариев, которые обслуживает HTTP API.
type UseCases struct {
	Product   usecase.ProductUC
	Sale      usecase.SaleUC
	Visit     usecase.VisitUC
	Analytics usecase.AnalyticsUC
	Promotion usecase.PromotionUC
	Store     usecase.StoreUC
	Auth      usecase.AuthUC
	Cart      usecase.CartUC
	Image     usecase.ImageUC
}

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(uc UseCases, swaggerURL string) {
	r.router.Use(
		middleware.RequestID,
		middleware.RealIP,
		accessLog(r.logger),
		middleware.Recoverer,
	)

	r.router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		WriteSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(swaggerURL), // ссылка на JSON
	))

	r.router.Route("/api", func(api chi.Router) {
		registerProductRoutes(api, NewProductHandler(uc.Product, uc.Cart, r.logger))
		registerSaleRoutes(api, NewSaleHandler(uc.Sale, r.logger))
		registerVisitRoutes(api, NewVisitHandler(uc.Visit, r.logger))
		registerAnalyticsRoutes(api, NewAnalyticsHandler(uc.Analytics, r.logger))
		registerAuthRoutes(api, NewAuthHandler(uc.Auth, r.logger))
		registerPromotionRoutes(api, NewPromotionHandler(uc.Promotion, r.logger))
		registerStoreRoutes(api, NewStoreHandler(uc.Store, r.logger))
		registerCartRoutes(api, NewCartHandler(uc.Cart, r.logger))
		registerUploadRoutes(api, NewUploadHandler(uc.Image, r.logger))
	})
}

func registerProductRoutes(router chi.Router, h *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.listProducts)
		pr.Post("/", h.createProduct)
		pr.Get("/low-stock", h.listLowStock)
		pr.Get("/category/{category}", h.listByCategory)
		pr.Get("/{id}", h.getProduct)
		pr.Put("/{id}", h.updateProduct)
		pr.Delete("/{id}", h.deleteProduct)
		pr.Put("/{id}/stock", h.updateStock)
		pr.Get("/{id}/whatsapp", h.productWhatsApp)
	})
}

func registerSaleRoutes(router chi.Router, h *SaleHandler) {
	router.Route("/sales", func(sr chi.Router) {
		sr.Get("/", h.listSales)
		sr.Post("/", h.createSale)
	})
}

func registerVisitRoutes(router chi.Router, h *VisitHandler) {
	router.Post("/visits", h.recordVisit)
}

func registerAnalyticsRoutes(router chi.Router, h *AnalyticsHandler) {
	router.Route("/analytics", func(ar chi.Router) {
		ar.Get("/sales", h.salesAnalytics)
		ar.Get("/visits", h.visitsAnalytics)
	})
}

func registerAuthRoutes(router chi.Router, h *AuthHandler) {
	router.Post("/auth/login", h.login)
}

func registerPromotionRoutes(router chi.Router, h *PromotionHandler) {
	router.Route("/promotions", func(pr chi.Router) {
		pr.Get("/", h.listPromotions)
		pr.Post("/", h.createPromotion)
		pr.Get("/active", h.listActivePromotions)
		pr.Put("/{id}", h.updatePromotion)
		pr.Delete("/{id}", h.deletePromotion)
	})
}

func registerStoreRoutes(router chi.Router, h *StoreHandler) {
	router.Route("/store/settings", func(sr chi.Router) {
		sr.Get("/", h.getSettings)
		sr.Put("/", h.updateSettings)
	})
}

func registerCartRoutes(router chi.Router, h *CartHandler) {
	router.Post("/cart/checkout", h.checkout)
}

func registerUploadRoutes(router chi.Router, h *UploadHandler) {
	router.Post("/uploads/images", h.uploadImages)
}
