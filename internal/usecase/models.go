package usecase

import (
	"github.com/DRSN-tech/soares-modas/internal/domain"
)

// PRODUCT USECASE

// GetProductsReq запрос информации о продуктах по их идентификаторам.
type GetProductsReq struct {
	IDs []int64
}

// GetProductsRes — найденные продукты в порядке запроса и ненайденные id.
type GetProductsRes struct {
	Products         []domain.Product
	NotFoundProducts []int64
}

// SALE USECASE

type CreateSaleReq struct {
	ProductID     int64
	Quantity      int
	TotalPrice    int64
	CustomerName  *string
	CustomerPhone *string
}

// ListSalesReq — необязательный фильтр по датам, границы включительно.
type ListSalesReq struct {
	From *domain.Date
	To   *domain.Date
}

// VISIT USECASE

type RecordVisitReq struct {
	Page      string
	IPAddress string
	UserAgent string
}

// ANALYTICS

// SalesAnalytics — сводка продаж; суммы в сентаво.
type SalesAnalytics struct {
	TotalRevenue  int64
	TotalOrders   int
	AvgOrderValue int64
	TopProducts   []TopProduct
}

type TopProduct struct {
	ProductID     int64
	ProductName   string
	TotalQuantity int
	TotalRevenue  int64
}

type VisitsAnalytics struct {
	TotalVisits  int
	UniqueVisits int
	DailyVisits  []DailyVisits
	TopPages     []PageVisits
}

type DailyVisits struct {
	Date   domain.Date
	Visits int
}

type PageVisits struct {
	Page   string
	Visits int
}

// AUTH

type LoginReq struct {
	Username string
	Password string
}

type LoginRes struct {
	Token string
	User  domain.AdminUser
}

// CART

type CheckoutLine struct {
	ProductID int64
	Quantity  int
}

type CheckoutReq struct {
	Lines []CheckoutLine
}

type CheckoutRes struct {
	Items   []domain.CartItem
	Total   int64
	Message string
	Link    string
}

// WhatsAppLink — текст сообщения и ссылка wa.me с ним.
type WhatsAppLink struct {
	Message string
	Link    string
}

// IMAGES

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // тип, определённый по содержимому (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// UploadImagesReq — запрос на загрузку изображений.
type UploadImagesReq struct {
	Prefix string
	Images []ProductImage
}

// UploadImagesRes — ключи объектов в MinIO и их публичные адреса.
type UploadImagesRes struct {
	ImagesKeys []string
	URLs       []string
}

// INFRASTUCTURE

type WriteRawMessageReq struct {
	Key       int64
	EventType OutboxEventType
	Payload   []byte
}

// MAPPERS

func NewGetProductsReq(ids []int64) *GetProductsReq {
	return &GetProductsReq{IDs: ids}
}

func NewGetProductsRes(pr []domain.Product, notFoundProducts []int64) *GetProductsRes {
	return &GetProductsRes{
		Products:         pr,
		NotFoundProducts: notFoundProducts,
	}
}

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewUploadImagesReq(prefix string, images []ProductImage) *UploadImagesReq {
	return &UploadImagesReq{
		Prefix: prefix,
		Images: images,
	}
}

func NewUploadImagesRes(imagesKeys, urls []string) *UploadImagesRes {
	return &UploadImagesRes{
		ImagesKeys: imagesKeys,
		URLs:       urls,
	}
}

func NewWriteRawMessageReq(key int64, eventType OutboxEventType, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		Key:       key,
		EventType: eventType,
		Payload:   payload,
	}
}
