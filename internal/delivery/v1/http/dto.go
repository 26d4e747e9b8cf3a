package http

import (
	"time"

	"github.com/DRSN-tech/soares-modas/internal/domain"
	"github.com/DRSN-tech/soares-modas/internal/usecase"
)

// PRODUCTS

type productRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description" validate:"max=5000"`
	Price       *int64  `json:"price" validate:"required,gte=0"`
	Category    string  `json:"category" validate:"required,max=100"`
	Image       string  `json:"image" validate:"max=2048"`
	Badge       *string `json:"badge" validate:"omitempty,max=50"`
	Available   *bool   `json:"available"`
	Stock       *int    `json:"stock" validate:"omitempty,gte=0"`
	MinStock    *int    `json:"minStock" validate:"omitempty,gte=0"`
}

func (r *productRequest) toDomain() *domain.Product {
	p := domain.NewProduct(r.Name, r.Description, *r.Price, r.Category, r.Image)
	p.Badge = r.Badge
	if r.Available != nil {
		p.Available = *r.Available
	}
	if r.Stock != nil {
		p.Stock = *r.Stock
	}
	if r.MinStock != nil {
		p.MinStock = *r.MinStock
	}
	return p
}

type productPatchRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	Price       *int64  `json:"price" validate:"omitempty,gte=0"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	Image       *string `json:"image" validate:"omitempty,max=2048"`
	Badge       *string `json:"badge" validate:"omitempty,max=50"`
	Available   *bool   `json:"available"`
	Stock       *int    `json:"stock" validate:"omitempty,gte=0"`
	MinStock    *int    `json:"minStock" validate:"omitempty,gte=0"`
}

func (r *productPatchRequest) toDomain() domain.ProductPatch {
	return domain.ProductPatch{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		Image:       r.Image,
		Badge:       r.Badge,
		Available:   r.Available,
		Stock:       r.Stock,
		MinStock:    r.MinStock,
	}
}

type stockRequest struct {
	Stock *int `json:"stock" validate:"required,gte=0"`
}

type productResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       int64   `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Badge       *string `json:"badge"`
	Available   bool    `json:"available"`
	Stock       int     `json:"stock"`
	MinStock    int     `json:"minStock"`
}

func newProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Image:       p.Image,
		Badge:       p.Badge,
		Available:   p.Available,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
	}
}

func newProductsResponse(products []domain.Product) []productResponse {
	res := make([]productResponse, 0, len(products))
	for i := range products {
		res = append(res, newProductResponse(&products[i]))
	}
	return res
}

// SALES

type saleRequest struct {
	ProductID     int64   `json:"productId" validate:"required,gt=0"`
	Quantity      int     `json:"quantity" validate:"required,gt=0"`
	TotalPrice    *int64  `json:"totalPrice" validate:"required,gte=0"`
	CustomerName  *string `json:"customerName" validate:"omitempty,max=200"`
	CustomerPhone *string `json:"customerPhone" validate:"omitempty,max=30"`
}

func (r *saleRequest) toUseCase() *usecase.CreateSaleReq {
	return &usecase.CreateSaleReq{
		ProductID:     r.ProductID,
		Quantity:      r.Quantity,
		TotalPrice:    *r.TotalPrice,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
	}
}

type saleResponse struct {
	ID            int64     `json:"id"`
	ProductID     int64     `json:"productId"`
	Quantity      int       `json:"quantity"`
	TotalPrice    int64     `json:"totalPrice"`
	CustomerName  *string   `json:"customerName"`
	CustomerPhone *string   `json:"customerPhone"`
	SaleDate      time.Time `json:"saleDate"`
}

func newSaleResponse(s *domain.Sale) saleResponse {
	return saleResponse{
		ID:            s.ID,
		ProductID:     s.ProductID,
		Quantity:      s.Quantity,
		TotalPrice:    s.TotalPrice,
		CustomerName:  s.CustomerName,
		CustomerPhone: s.CustomerPhone,
		SaleDate:      s.SaleDate,
	}
}

// VISITS

type visitRequest struct {
	PageViewed string  `json:"pageViewed" validate:"required,max=2048"`
	IPAddress  *string `json:"ipAddress" validate:"omitempty,max=64"`
	UserAgent  *string `json:"userAgent" validate:"omitempty,max=1024"`
}

type visitResponse struct {
	ID         int64     `json:"id"`
	VisitDate  time.Time `json:"visitDate"`
	PageViewed string    `json:"pageViewed"`
	IPAddress  string    `json:"ipAddress"`
	UserAgent  string    `json:"userAgent"`
}

func newVisitResponse(v *domain.SiteVisit) visitResponse {
	return visitResponse{
		ID:         v.ID,
		VisitDate:  v.VisitDate,
		PageViewed: v.PageViewed,
		IPAddress:  v.IPAddress,
		UserAgent:  v.UserAgent,
	}
}

// ANALYTICS

type topProductResponse struct {
	ProductID     int64  `json:"productId"`
	ProductName   string `json:"productName"`
	TotalQuantity int    `json:"totalQuantity"`
	TotalRevenue  int64  `json:"totalRevenue"`
}

type salesAnalyticsResponse struct {
	TotalRevenue  int64                `json:"totalRevenue"`
	TotalOrders   int                  `json:"totalOrders"`
	AvgOrderValue int64                `json:"avgOrderValue"`
	TopProducts   []topProductResponse `json:"topProducts"`
}

func newSalesAnalyticsResponse(a *usecase.SalesAnalytics) salesAnalyticsResponse {
	top := make([]topProductResponse, 0, len(a.TopProducts))
	for _, p := range a.TopProducts {
		top = append(top, topProductResponse(p))
	}
	return salesAnalyticsResponse{
		TotalRevenue:  a.TotalRevenue,
		TotalOrders:   a.TotalOrders,
		AvgOrderValue: a.AvgOrderValue,
		TopProducts:   top,
	}
}

type dailyVisitsResponse struct {
	Date   domain.Date `json:"date"`
	Visits int         `json:"visits"`
}

type pageVisitsResponse struct {
	Page   string `json:"page"`
	Visits int    `json:"visits"`
}

type visitsAnalyticsResponse struct {
	TotalVisits  int                   `json:"totalVisits"`
	UniqueVisits int                   `json:"uniqueVisits"`
	DailyVisits  []dailyVisitsResponse `json:"dailyVisits"`
	TopPages     []pageVisitsResponse  `json:"topPages"`
}

func newVisitsAnalyticsResponse(a *usecase.VisitsAnalytics) visitsAnalyticsResponse {
	daily := make([]dailyVisitsResponse, 0, len(a.DailyVisits))
	for _, d := range a.DailyVisits {
		daily = append(daily, dailyVisitsResponse(d))
	}
	pages := make([]pageVisitsResponse, 0, len(a.TopPages))
	for _, p := range a.TopPages {
		pages = append(pages, pageVisitsResponse(p))
	}
	return visitsAnalyticsResponse{
		TotalVisits:  a.TotalVisits,
		UniqueVisits: a.UniqueVisits,
		DailyVisits:  daily,
		TopPages:     pages,
	}
}

// AUTH

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type adminUserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type loginResponse struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	User    adminUserResponse `json:"user"`
}

// PROMOTIONS

type promotionRequest struct {
	Title              string       `json:"title" validate:"required,max=200"`
	Description        string       `json:"description" validate:"max=5000"`
	DiscountPercentage *int         `json:"discountPercentage" validate:"required,gte=0,lte=100"`
	StartDate          *domain.Date `json:"startDate" validate:"required"`
	EndDate            *domain.Date `json:"endDate" validate:"required"`
	IsActive           *bool        `json:"isActive"`
}

func (r *promotionRequest) toDomain() *domain.Promotion {
	p := &domain.Promotion{
		Title:              r.Title,
		Description:        r.Description,
		DiscountPercentage: *r.DiscountPercentage,
		StartDate:          *r.StartDate,
		EndDate:            *r.EndDate,
		IsActive:           true,
	}
	if r.IsActive != nil {
		p.IsActive = *r.IsActive
	}
	return p
}

type promotionPatchRequest struct {
	Title              *string      `json:"title" validate:"omitempty,max=200"`
	Description        *string      `json:"description" validate:"omitempty,max=5000"`
	DiscountPercentage *int         `json:"discountPercentage" validate:"omitempty,gte=0,lte=100"`
	StartDate          *domain.Date `json:"startDate"`
	EndDate            *domain.Date `json:"endDate"`
	IsActive           *bool        `json:"isActive"`
}

func (r *promotionPatchRequest) toDomain() domain.PromotionPatch {
	return domain.PromotionPatch{
		Title:              r.Title,
		Description:        r.Description,
		DiscountPercentage: r.DiscountPercentage,
		StartDate:          r.StartDate,
		EndDate:            r.EndDate,
		IsActive:           r.IsActive,
	}
}

type promotionResponse struct {
	ID                 int64       `json:"id"`
	Title              string      `json:"title"`
	Description        string      `json:"description"`
	DiscountPercentage int         `json:"discountPercentage"`
	StartDate          domain.Date `json:"startDate"`
	EndDate            domain.Date `json:"endDate"`
	IsActive           bool        `json:"isActive"`
	CreatedAt          time.Time   `json:"createdAt"`
}

func newPromotionResponse(p *domain.Promotion) promotionResponse {
	return promotionResponse{
		ID:                 p.ID,
		Title:              p.Title,
		Description:        p.Description,
		DiscountPercentage: p.DiscountPercentage,
		StartDate:          p.StartDate,
		EndDate:            p.EndDate,
		IsActive:           p.IsActive,
		CreatedAt:          p.CreatedAt,
	}
}

func newPromotionsResponse(promotions []domain.Promotion) []promotionResponse {
	res := make([]promotionResponse, 0, len(promotions))
	for i := range promotions {
		res = append(res, newPromotionResponse(&promotions[i]))
	}
	return res
}

// STORE

type storeSettingsRequest struct {
	LogoURL          *string `json:"logoUrl" validate:"omitempty,max=2048"`
	IconURL          *string `json:"iconUrl" validate:"omitempty,max=2048"`
	StoreName        *string `json:"storeName" validate:"omitempty,max=200"`
	StoreDescription *string `json:"storeDescription" validate:"omitempty,max=5000"`
}

func (r *storeSettingsRequest) toDomain() domain.StoreSettingsPatch {
	return domain.StoreSettingsPatch{
		LogoURL:          r.LogoURL,
		IconURL:          r.IconURL,
		StoreName:        r.StoreName,
		StoreDescription: r.StoreDescription,
	}
}

type storeSettingsResponse struct {
	ID               int64     `json:"id"`
	LogoURL          *string   `json:"logoUrl"`
	IconURL          *string   `json:"iconUrl"`
	StoreName        string    `json:"storeName"`
	StoreDescription *string   `json:"storeDescription"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func newStoreSettingsResponse(s *domain.StoreSettings) storeSettingsResponse {
	return storeSettingsResponse{
		ID:               s.ID,
		LogoURL:          s.LogoURL,
		IconURL:          s.IconURL,
		StoreName:        s.StoreName,
		StoreDescription: s.StoreDescription,
		UpdatedAt:        s.UpdatedAt,
	}
}

// CART

type checkoutItemRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0,lte=1000"`
}

type checkoutRequest struct {
	Items []checkoutItemRequest `json:"items" validate:"required,min=1,dive"`
}

func (r *checkoutRequest) toUseCase() *usecase.CheckoutReq {
	lines := make([]usecase.CheckoutLine, 0, len(r.Items))
	for _, it := range r.Items {
		lines = append(lines, usecase.CheckoutLine(it))
	}
	return &usecase.CheckoutReq{Lines: lines}
}

type cartItemResponse struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
}

type checkoutResponse struct {
	Items   []cartItemResponse `json:"items"`
	Total   int64              `json:"total"`
	Message string             `json:"message"`
	Link    string             `json:"link"`
}

func newCheckoutResponse(res *usecase.CheckoutRes) checkoutResponse {
	items := make([]cartItemResponse, 0, len(res.Items))
	for _, it := range res.Items {
		items = append(items, cartItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			Subtotal:  it.Subtotal(),
		})
	}
	return checkoutResponse{
		Items:   items,
		Total:   res.Total,
		Message: res.Message,
		Link:    res.Link,
	}
}

type whatsAppResponse struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}

// UPLOADS

type uploadImagesResponse struct {
	URLs []string `json:"urls"`
}

type messageResponse struct {
	Message string `json:"message"`
}
