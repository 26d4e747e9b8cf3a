package usecase_test

import (
	"context"
	"errors"
	"math"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/DRSN-tech/soares-modas/internal/domain"
	"github.com/DRSN-tech/soares-modas/internal/usecase"
	"github.com/DRSN-tech/soares-modas/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPhone = "5571994040672"

func newCartUC(products ...domain.Product) *usecase.CartUseCase {
	f := newProductFixture(products...)
	return usecase.NewCartUC(f.uc, testPhone)
}

func TestCartUseCase_Checkout(t *testing.T) {
	uc := newCartUC(
		domain.Product{ID: 1, Name: "Vestido Floral", Price: 12990, Available: true},
		domain.Product{ID: 2, Name: "Blusa", Price: 4950, Available: true},
	)

	res, err := uc.Checkout(context.Background(), &usecase.CheckoutReq{Lines: []usecase.CheckoutLine{
		{ProductID: 1, Quantity: 1},
		{ProductID: 2, Quantity: 2},
		{ProductID: 1, Quantity: 1},
	}})
	require.NoError(t, err)

	expected := "Olá! Gostaria de fazer o seguinte pedido:\n\n" +
		"1. Vestido Floral - Quantidade: 2 - R$ 259,80\n" +
		"2. Blusa - Quantidade: 2 - R$ 99,00\n" +
		"\nTotal: R$ 358,80" +
		"\n\nPoderia me passar mais informações sobre entrega?"
	assert.Equal(t, expected, res.Message)
	assert.Equal(t, int64(35880), res.Total)
	assert.Len(t, res.Items, 2)

	require.True(t, strings.HasPrefix(res.Link, "https://wa.me/"+testPhone+"?text="))
	assert.NotContains(t, res.Link, "+")

	u, err := url.Parse(res.Link)
	require.NoError(t, err)
	assert.Equal(t, expected, u.Query().Get("text"))
}

func TestCartUseCase_CheckoutErrors(t *testing.T) {
	uc := newCartUC(
		domain.Product{ID: 1, Name: "Vestido", Price: 100, Available: true},
		domain.Product{ID: 2, Name: "Esgotado", Price: 100, Available: false},
	)
	ctx := context.Background()

	_, err := uc.Checkout(ctx, &usecase.CheckoutReq{})
	assert.ErrorIs(t, err, e.ErrEmptyCart)

	_, err = uc.Checkout(ctx, &usecase.CheckoutReq{Lines: []usecase.CheckoutLine{{ProductID: 9, Quantity: 1}}})
	assert.ErrorIs(t, err, e.ErrProductNotFound)

	_, err = uc.Checkout(ctx, &usecase.CheckoutReq{Lines: []usecase.CheckoutLine{{ProductID: 2, Quantity: 1}}})
	assert.ErrorIs(t, err, e.ErrProductUnavailable)

	_, err = uc.Checkout(ctx, &usecase.CheckoutReq{Lines: []usecase.CheckoutLine{{ProductID: 1, Quantity: 0}}})
	var vErr *e.ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestCartUseCase_CheckoutQuantityLimits(t *testing.T) {
	uc := newCartUC(
		domain.Product{ID: 1, Name: "Vestido", Price: 10000, Available: true},
		domain.Product{ID: 2, Name: "Joia", Price: math.MaxInt64 / 2, Available: true},
	)
	ctx := context.Background()

	fieldOf := func(t *testing.T, err error) e.FieldError {
		t.Helper()
		var vErr *e.ValidationError
		require.True(t, errors.As(err, &vErr), "expected validation error, got %v", err)
		require.Len(t, vErr.Fields, 1)
		return vErr.Fields[0]
	}

	_, err := uc.Checkout(ctx, &usecase.CheckoutReq{Lines: []usecase.CheckoutLine{{ProductID: 1, Quantity: 1 << 60}}})
	assert.Equal(t, e.FieldError{Field: "items[0].quantity", Rule: "lte", Param: "1000"}, fieldOf(t, err))

	_, err = uc.Checkout(ctx, &usecase.CheckoutReq{Lines: []usecase.CheckoutLine{
		{ProductID: 1, Quantity: 600},
		{ProductID: 1, Quantity: 600},
	}})
	assert.Equal(t, "items", fieldOf(t, err).Field)

	_, err = uc.Checkout(ctx, &usecase.CheckoutReq{Lines: []usecase.CheckoutLine{{ProductID: 2, Quantity: 3}}})
	assert.Equal(t, e.FieldError{Field: "total", Rule: "overflow"}, fieldOf(t, err))

	res, err := uc.Checkout(ctx, &usecase.CheckoutReq{Lines: []usecase.CheckoutLine{{ProductID: 1, Quantity: domain.MaxItemQuantity}}})
	require.NoError(t, err)
	assert.Equal(t, int64(10000*domain.MaxItemQuantity), res.Total)
	assert.Contains(t, res.Message, "Total: R$ 100.000,00")
}

func TestCartUseCase_ProductInquiry(t *testing.T) {
	uc := newCartUC(domain.Product{ID: 3, Name: "Saia Midi", Price: 8990, Available: true})

	res, err := uc.ProductInquiry(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Olá! Tenho interesse no produto: Saia Midi por R$ 89,90. Poderia me passar mais informações?", res.Message)
	assert.Contains(t, res.Link, "Saia%20Midi")

	_, err = uc.ProductInquiry(context.Background(), 4)
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestImageUseCase_UploadImages(t *testing.T) {
	images := &fakeImages{}
	uc := usecase.NewImageUC(images, 2)
	ctx := context.Background()

	res, err := uc.UploadImages(ctx, usecase.NewUploadImagesReq("", []usecase.ProductImage{
		*usecase.NewProductImage([]byte{1}, "image/png", 1, "a.png"),
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"images/a.png"}, res.ImagesKeys)
	assert.Equal(t, []string{"http://cdn.local/soares-modas/images/a.png"}, res.URLs)

	_, err = uc.UploadImages(ctx, usecase.NewUploadImagesReq("", nil))
	assert.ErrorIs(t, err, e.ErrNoImages)

	three := make([]usecase.ProductImage, 3)
	_, err = uc.UploadImages(ctx, usecase.NewUploadImagesReq("", three))
	assert.ErrorIs(t, err, e.ErrTooManyImages)

	_, err = uc.UploadImages(ctx, usecase.NewUploadImagesReq("../etc", []usecase.ProductImage{
		*usecase.NewProductImage([]byte{1}, "image/png", 1, "a.png"),
	}))
	var vErr *e.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "prefix", vErr.Fields[0].Field)
}

func TestNewOutboxEvent(t *testing.T) {
	now := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)

	ev, err := usecase.NewOutboxEvent(usecase.EventStockLow, 5, map[string]any{"stock": 2}, now)
	require.NoError(t, err)

	assert.NotEmpty(t, ev.EventID)
	assert.Equal(t, usecase.Pending, ev.Status)
	assert.Equal(t, now, ev.CreatedAt)

	payload, err := usecase.DecodeOutboxPayload(ev.Payload)
	require.NoError(t, err)
	assert.Equal(t, float64(2), payload["stock"])
	assert.Equal(t, "2024-07-01T09:00:00Z", payload["occurredAt"])
}
