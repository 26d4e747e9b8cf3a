package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID          int64      `db:"id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	Price       int64      `db:"price"`
	Category    string     `db:"category"`
	Image       string     `db:"image"`
	Badge       *string    `db:"badge"`
	Available   bool       `db:"available"`
	Stock       int        `db:"stock"`
	MinStock    int        `db:"min_stock"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
}

// SaleModel представляет запись таблицы sales.
type SaleModel struct {
	ID            int64     `db:"id"`
	ProductID     int64     `db:"product_id"`
	Quantity      int       `db:"quantity"`
	TotalPrice    int64     `db:"total_price"`
	CustomerName  *string   `db:"customer_name"`
	CustomerPhone *string   `db:"customer_phone"`
	SaleDate      time.Time `db:"sale_date"`
}

// SiteVisitModel представляет запись таблицы site_visits.
type SiteVisitModel struct {
	ID         int64     `db:"id"`
	VisitDate  time.Time `db:"visit_date"`
	PageViewed string    `db:"page_viewed"`
	IPAddress  *string   `db:"ip_address"`
	UserAgent  *string   `db:"user_agent"`
}

// PromotionModel представляет запись таблицы promotions.
// StartDate и EndDate — колонки типа date, pgx отдаёт их полночью UTC.
type PromotionModel struct {
	ID                 int64     `db:"id"`
	Title              string    `db:"title"`
	Description        string    `db:"description"`
	DiscountPercentage int       `db:"discount_percentage"`
	StartDate          time.Time `db:"start_date"`
	EndDate            time.Time `db:"end_date"`
	IsActive           bool      `db:"is_active"`
	CreatedAt          time.Time `db:"created_at"`
}

// StoreSettingsModel представляет единственную запись таблицы store_settings.
type StoreSettingsModel struct {
	ID               int64     `db:"id"`
	LogoURL          *string   `db:"logo_url"`
	IconURL          *string   `db:"icon_url"`
	StoreName        string    `db:"store_name"`
	StoreDescription *string   `db:"store_description"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	ProductID   int64      `db:"product_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
