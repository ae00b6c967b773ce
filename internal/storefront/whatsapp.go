package storefront

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/feedstorehq/feedstore-backend/pkg/db/models"
)

type productLoader interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// LinkBuilder renders storefront contact links for catalog products.
type LinkBuilder struct {
	number   string
	products productLoader
}

// NewLinkBuilder builds a WhatsApp link builder for the configured number.
func NewLinkBuilder(number string, products productLoader) (*LinkBuilder, error) {
	if number == "" {
		return nil, fmt.Errorf("whatsapp number required")
	}
	if products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	return &LinkBuilder{number: number, products: products}, nil
}

// ProductLink builds the wa.me URL with a pre-filled inquiry message for the
// product. The kg price in the message is derived from the sack price so the
// quoted pair is always consistent.
func (b *LinkBuilder) ProductLink(ctx context.Context, productID uuid.UUID) (string, error) {
	product, err := b.products.Get(ctx, productID)
	if err != nil {
		return "", err
	}
	return b.link(messageFor(product)), nil
}

func (b *LinkBuilder) link(message string) string {
	return "https://wa.me/" + b.number + "?text=" + url.QueryEscape(message)
}

func messageFor(product *models.Product) string {
	perKg := product.PricePerKg
	if product.SackWeight > 0 && product.PricePerSack > 0 {
		perKg = product.PricePerSack / float64(product.SackWeight)
	}
	return fmt.Sprintf(
		"Olá, tenho interesse em %q - preço R$%.2f/kg e saca de R$%.2f",
		product.Name, perKg, product.PricePerSack,
	)
}
