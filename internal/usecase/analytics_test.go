package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DRSN-tech/soares-modas/internal/domain"
	"github.com/DRSN-tech/soares-modas/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sale(productID int64, qty int, total int64) domain.Sale {
	return domain.Sale{ProductID: productID, Quantity: qty, TotalPrice: total, SaleDate: time.Now()}
}

func TestAggregateSales_Empty(t *testing.T) {
	res := usecase.AggregateSales(nil, nil)

	assert.Equal(t, int64(0), res.TotalRevenue)
	assert.Equal(t, 0, res.TotalOrders)
	assert.Equal(t, int64(0), res.AvgOrderValue)
	assert.NotNil(t, res.TopProducts)
	assert.Empty(t, res.TopProducts)
}

func TestAggregateSales_TotalsAndAverage(t *testing.T) {
	products := []domain.Product{{ID: 1, Name: "Vestido"}, {ID: 2, Name: "Blusa"}}
	sales := []domain.Sale{sale(1, 1, 100), sale(2, 1, 101)}

	res := usecase.AggregateSales(sales, products)

	assert.Equal(t, int64(201), res.TotalRevenue)
	assert.Equal(t, 2, res.TotalOrders)
	// 100.5 округляется вверх
	assert.Equal(t, int64(101), res.AvgOrderValue)
}

func TestAggregateSales_TopProducts(t *testing.T) {
	var products []domain.Product
	var sales []domain.Sale
	for id := int64(1); id <= 8; id++ {
		products = append(products, domain.Product{ID: id, Name: fmt.Sprintf("P%d", id)})
		// выручка растёт с id, у 7 и 8 одинаковая
		rev := id * 1000
		if id == 8 {
			rev = 7000
		}
		sales = append(sales, sale(id, 1, rev/2), sale(id, 2, rev-rev/2))
	}

	res := usecase.AggregateSales(sales, products)

	require.Len(t, res.TopProducts, 5)
	for i := 1; i < len(res.TopProducts); i++ {
		assert.GreaterOrEqual(t, res.TopProducts[i-1].TotalRevenue, res.TopProducts[i].TotalRevenue)
	}

	assert.Equal(t, int64(7), res.TopProducts[0].ProductID)
	assert.Equal(t, int64(8), res.TopProducts[1].ProductID)
	assert.Equal(t, "P7", res.TopProducts[0].ProductName)
	assert.Equal(t, 3, res.TopProducts[0].TotalQuantity)
	assert.Equal(t, int64(7000), res.TopProducts[0].TotalRevenue)
}

func TestAggregateSales_UnknownProductHasEmptyName(t *testing.T) {
	res := usecase.AggregateSales([]domain.Sale{sale(42, 1, 500)}, nil)

	require.Len(t, res.TopProducts, 1)
	assert.Equal(t, "", res.TopProducts[0].ProductName)
}

func TestAggregateVisits(t *testing.T) {
	loc, err := time.LoadLocation("America/Bahia")
	require.NoError(t, err)

	visits := []domain.SiteVisit{
		// 01:00 UTC второго марта — ещё первое марта в Баии
		{PageViewed: "/", IPAddress: "10.0.0.1", VisitDate: time.Date(2024, 3, 2, 1, 0, 0, 0, time.UTC)},
		{PageViewed: "/", IPAddress: "10.0.0.1", VisitDate: time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC)},
		{PageViewed: "/produtos", IPAddress: "10.0.0.2", VisitDate: time.Date(2024, 3, 2, 15, 0, 0, 0, time.UTC)},
		{PageViewed: "/contato", IPAddress: "", VisitDate: time.Date(2024, 3, 2, 16, 0, 0, 0, time.UTC)},
	}

	res := usecase.AggregateVisits(visits, loc)

	assert.Equal(t, 4, res.TotalVisits)
	assert.Equal(t, 2, res.UniqueVisits)

	require.Len(t, res.DailyVisits, 2)
	assert.Equal(t, "2024-03-02", res.DailyVisits[0].Date.String())
	assert.Equal(t, 2, res.DailyVisits[0].Visits)
	assert.Equal(t, "2024-03-01", res.DailyVisits[1].Date.String())
	assert.Equal(t, 2, res.DailyVisits[1].Visits)

	require.Len(t, res.TopPages, 3)
	assert.Equal(t, usecase.PageVisits{Page: "/", Visits: 2}, res.TopPages[0])
	// при равенстве — по алфавиту
	assert.Equal(t, "/contato", res.TopPages[1].Page)
	assert.Equal(t, "/produtos", res.TopPages[2].Page)
}

func TestAggregateVisits_Limits(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	var visits []domain.SiteVisit
	for i := 0; i < 45; i++ {
		for j := 0; j <= i%12; j++ {
			visits = append(visits, domain.SiteVisit{
				PageViewed: fmt.Sprintf("/page/%d", i%15),
				VisitDate:  start.AddDate(0, 0, i),
			})
		}
	}

	res := usecase.AggregateVisits(visits, time.UTC)

	require.Len(t, res.DailyVisits, 30)
	assert.Equal(t, "2024-02-14", res.DailyVisits[0].Date.String())
	for i := 1; i < len(res.DailyVisits); i++ {
		assert.True(t, res.DailyVisits[i-1].Date.After(res.DailyVisits[i].Date))
	}

	require.Len(t, res.TopPages, 10)
	for i := 1; i < len(res.TopPages); i++ {
		assert.GreaterOrEqual(t, res.TopPages[i-1].Visits, res.TopPages[i].Visits)
	}
	assert.Equal(t, 0, res.UniqueVisits)
}

func TestAnalyticsUseCase(t *testing.T) {
	ctx := context.Background()

	products := newFakeProductRepo(domain.Product{ID: 1, Name: "Vestido Floral"})
	sales := &fakeSaleRepo{sales: []domain.Sale{sale(1, 2, 25000)}}
	visits := &fakeVisitRepo{visits: []domain.SiteVisit{{PageViewed: "/", IPAddress: "1.1.1.1", VisitDate: time.Now()}}}

	uc := usecase.NewAnalyticsUC(sales, visits, products, time.UTC)

	s, err := uc.SalesAnalytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(25000), s.TotalRevenue)
	require.Len(t, s.TopProducts, 1)
	assert.Equal(t, "Vestido Floral", s.TopProducts[0].ProductName)

	v, err := uc.VisitsAnalytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, v.TotalVisits)
	assert.Equal(t, 1, v.UniqueVisits)
}
