package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/DRSN-tech/soares-modas/internal/domain"
	"github.com/DRSN-tech/soares-modas/pkg/e"
)

const (
	orderGreeting   = "Olá! Gostaria de fazer o seguinte pedido:\n\n"
	orderClosing    = "\n\nPoderia me passar mais informações sobre entrega?"
	inquiryTemplate = "Olá! Tenho interesse no produto: %s por %s. Poderia me passar mais informações?"
	whatsAppBaseURL = "https://wa.me/"
)

// CartUseCase собирает заказ из корзины в сообщение WhatsApp.
// Заказ не сохраняется, остатки не резервируются.
type CartUseCase struct {
	products ProductUC
	phone    string
}

func NewCartUC(products ProductUC, phone string) *CartUseCase {
	return &CartUseCase{
		products: products,
		phone:    phone,
	}
}

// Checkout берёт актуальные название и цену товаров из каталога.
func (c *CartUseCase) Checkout(ctx context.Context, req *CheckoutReq) (*CheckoutRes, error) {
	const op = "CartUseCase.Checkout"

	if len(req.Lines) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyCart)
	}

	ids := make([]int64, 0, len(req.Lines))
	for i, line := range req.Lines {
		if line.Quantity <= 0 {
			return nil, e.Wrap(op, e.NewValidationError(e.FieldError{
				Field: fmt.Sprintf("items[%d].quantity", i),
				Rule:  "gt",
				Param: "0",
			}))
		}
		if line.Quantity > domain.MaxItemQuantity {
			return nil, e.Wrap(op, e.NewValidationError(e.FieldError{
				Field: fmt.Sprintf("items[%d].quantity", i),
				Rule:  "lte",
				Param: strconv.Itoa(domain.MaxItemQuantity),
			}))
		}
		ids = append(ids, line.ProductID)
	}

	res, err := c.products.GetMany(ctx, NewGetProductsReq(ids))
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(res.NotFoundProducts) > 0 {
		return nil, e.Wrap(op, fmt.Errorf("%w: %v", e.ErrProductNotFound, res.NotFoundProducts))
	}

	byID := make(map[int64]domain.Product, len(res.Products))
	for _, p := range res.Products {
		byID[p.ID] = p
	}

	cart := domain.NewCart()
	for _, line := range req.Lines {
		p := byID[line.ProductID]
		if !p.Available {
			return nil, e.Wrap(op, fmt.Errorf("%w: %s", e.ErrProductUnavailable, p.Name))
		}
		cart = cart.Add(domain.CartItem{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  line.Quantity,
		})
	}

	// Строки одного товара суммируются, поэтому предел проверяется ещё раз.
	if cart.ExceedsQuantity(domain.MaxItemQuantity) {
		return nil, e.Wrap(op, e.NewValidationError(e.FieldError{
			Field: "items",
			Rule:  "quantity_lte",
			Param: strconv.Itoa(domain.MaxItemQuantity),
		}))
	}
	total, ok := cart.CheckedTotal()
	if !ok {
		return nil, e.Wrap(op, e.NewValidationError(e.FieldError{Field: "total", Rule: "overflow"}))
	}

	message := OrderMessage(cart)
	return &CheckoutRes{
		Items:   cart.Items(),
		Total:   total,
		Message: message,
		Link:    WhatsAppURL(c.phone, message),
	}, nil
}

// ProductInquiry формирует сообщение об интересе к одному товару.
func (c *CartUseCase) ProductInquiry(ctx context.Context, productID int64) (*WhatsAppLink, error) {
	const op = "CartUseCase.ProductInquiry"

	p, err := c.products.Get(ctx, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	message := fmt.Sprintf(inquiryTemplate, p.Name, domain.FormatBRL(p.Price))
	return &WhatsAppLink{
		Message: message,
		Link:    WhatsAppURL(c.phone, message),
	}, nil
}

// OrderMessage — текст заказа: пронумерованные строки и итог.
func OrderMessage(cart domain.Cart) string {
	var b strings.Builder

	b.WriteString(orderGreeting)
	for i, it := range cart.Items() {
		fmt.Fprintf(&b, "%d. %s - Quantidade: %d - %s\n", i+1, it.Name, it.Quantity, domain.FormatBRL(it.Subtotal()))
	}
	fmt.Fprintf(&b, "\nTotal: %s", domain.FormatBRL(cart.Total()))
	b.WriteString(orderClosing)

	return b.String()
}

// WhatsAppURL кодирует текст так же, как encodeURIComponent: пробел становится %20.
func WhatsAppURL(phone, message string) string {
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return whatsAppBaseURL + phone + "?text=" + text
}
