package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/DRSN-tech/soares-modas/internal/domain"
	"github.com/DRSN-tech/soares-modas/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

const (
	topProductsLimit = 5
	topPagesLimit    = 10
	dailyVisitsDays  = 30
)

// AnalyticsUseCase пересчитывает статистику из сырых строк на каждый запрос.
type AnalyticsUseCase struct {
	saleRepo    SaleRepository
	visitRepo   VisitRepository
	productRepo ProductRepository
	loc         *time.Location
}

func NewAnalyticsUC(
	saleRepo SaleRepository,
	visitRepo VisitRepository,
	productRepo ProductRepository,
	loc *time.Location,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		saleRepo:    saleRepo,
		visitRepo:   visitRepo,
		productRepo: productRepo,
		loc:         loc,
	}
}

func (a *AnalyticsUseCase) SalesAnalytics(ctx context.Context) (*SalesAnalytics, error) {
	sales, err := a.saleRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	products, err := a.productRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	res := AggregateSales(sales, products)
	return &res, nil
}

func (a *AnalyticsUseCase) VisitsAnalytics(ctx context.Context) (*VisitsAnalytics, error) {
	visits, err := a.visitRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	res := AggregateVisits(visits, a.loc)
	return &res, nil
}

// AggregateSales считает выручку, число заказов, средний чек и топ-5 товаров по выручке.
// Средний чек округляется до сентаво вверх от половины. При равной выручке выше товар с меньшим id.
// Товар, которого нет в каталоге, попадает в топ с пустым названием.
func AggregateSales(sales []domain.Sale, products []domain.Product) SalesAnalytics {
	names := make(map[int64]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	var total int64
	byProduct := make(map[int64]*TopProduct)
	for _, s := range sales {
		total += s.TotalPrice

		tp, ok := byProduct[s.ProductID]
		if !ok {
			tp = &TopProduct{ProductID: s.ProductID, ProductName: names[s.ProductID]}
			byProduct[s.ProductID] = tp
		}
		tp.TotalQuantity += s.Quantity
		tp.TotalRevenue += s.TotalPrice
	}

	top := make([]TopProduct, 0, len(byProduct))
	for _, tp := range byProduct {
		top = append(top, *tp)
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].TotalRevenue != top[j].TotalRevenue {
			return top[i].TotalRevenue > top[j].TotalRevenue
		}
		return top[i].ProductID < top[j].ProductID
	})
	if len(top) > topProductsLimit {
		top = top[:topProductsLimit]
	}

	var avg int64
	if len(sales) > 0 {
		avg = decimal.NewFromInt(total).
			Div(decimal.NewFromInt(int64(len(sales)))).
			Round(0).
			IntPart()
	}

	return SalesAnalytics{
		TotalRevenue:  total,
		TotalOrders:   len(sales),
		AvgOrderValue: avg,
		TopProducts:   top,
	}
}

// AggregateVisits считает визиты, уникальные IP, визиты по дням за последние 30 дней с визитами
// (день определяется в часовом поясе магазина) и топ-10 страниц.
func AggregateVisits(visits []domain.SiteVisit, loc *time.Location) VisitsAnalytics {
	if loc == nil {
		loc = time.UTC
	}

	ips := make(map[string]struct{})
	days := make(map[domain.Date]int)
	pages := make(map[string]int)
	for _, v := range visits {
		if v.IPAddress != "" {
			ips[v.IPAddress] = struct{}{}
		}
		days[domain.DateOf(v.VisitDate, loc)]++
		pages[v.PageViewed]++
	}

	daily := make([]DailyVisits, 0, len(days))
	for d, n := range days {
		daily = append(daily, DailyVisits{Date: d, Visits: n})
	}
	sort.Slice(daily, func(i, j int) bool {
		return daily[i].Date.After(daily[j].Date)
	})
	if len(daily) > dailyVisitsDays {
		daily = daily[:dailyVisitsDays]
	}

	top := make([]PageVisits, 0, len(pages))
	for p, n := range pages {
		top = append(top, PageVisits{Page: p, Visits: n})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Visits != top[j].Visits {
			return top[i].Visits > top[j].Visits
		}
		return top[i].Page < top[j].Page
	})
	if len(top) > topPagesLimit {
		top = top[:topPagesLimit]
	}

	return VisitsAnalytics{
		TotalVisits:  len(visits),
		UniqueVisits: len(ips),
		DailyVisits:  daily,
		TopPages:     top,
	}
}
