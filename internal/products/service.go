package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/feedstorehq/feedstore-backend/internal/pricing"
	"github.com/feedstorehq/feedstore-backend/pkg/db/models"
	"github.com/feedstorehq/feedstore-backend/pkg/enums"
	pkgerrors "github.com/feedstorehq/feedstore-backend/pkg/errors"
	"github.com/feedstorehq/feedstore-backend/pkg/pagination"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service defines catalog management operations.
type Service interface {
	Create(ctx context.Context, input CreateProductInput) (*models.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Product, error)
	List(ctx context.Context, filter ListFilter, params pagination.Params) (*Page, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AdjustPrices(ctx context.Context, percent float64) (int, error)
}

// CreateProductInput carries the validated payload for catalog creation. At
// least one of PricePerKg and PricePerSack must be set; the other is derived
// from the sack weight.
type CreateProductInput struct {
	Name            string
	Description     string
	PricePerKg      float64
	PricePerSack    float64
	SackWeight      int
	Image           string
	AnimalTypes     []string
	SubTypes        []string
	Benefits        []string
	ShowAnimalNames bool
}

// UpdateProductInput carries a partial update. Nil fields are left untouched.
type UpdateProductInput struct {
	Name            *string
	Description     *string
	PricePerKg      *float64
	PricePerSack    *float64
	SackWeight      *int
	Image           *string
	AnimalTypes     []string
	SubTypes        []string
	Benefits        []string
	ShowAnimalNames *bool
}

// Page is one slice of the catalog listing.
type Page struct {
	Products   []models.Product
	NextCursor string
}

type service struct {
	repo Repository
	tx   txRunner
}

// NewService builds the catalog service with the required dependencies.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("products repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

func (s *service) Create(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	if input.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product name required")
	}
	if input.SackWeight < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "sack weight cannot be negative")
	}
	if input.PricePerKg < 0 || input.PricePerSack < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "prices cannot be negative")
	}
	if err := validateTaxonomy(input.AnimalTypes, input.SubTypes); err != nil {
		return nil, err
	}

	perKg, perSack := derivePrices(input.PricePerKg, input.PricePerSack, input.SackWeight)

	product := &models.Product{
		ID:              uuid.New(),
		Name:            input.Name,
		Description:     input.Description,
		PricePerKg:      perKg,
		PricePerSack:    perSack,
		SackWeight:      input.SackWeight,
		Image:           input.Image,
		AnimalTypes:     input.AnimalTypes,
		SubTypes:        input.SubTypes,
		Benefits:        input.Benefits,
		ShowAnimalNames: input.ShowAnimalNames,
	}
	if _, err := s.repo.Create(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert product")
	}
	return product, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return product, nil
}

func (s *service) List(ctx context.Context, filter ListFilter, params pagination.Params) (*Page, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid cursor")
	}

	limit := pagination.NormalizeLimit(params.Limit)
	rows, err := s.repo.List(ctx, filter, pagination.LimitWithBuffer(params.Limit), cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}

	page := &Page{Products: rows}
	if len(rows) > limit {
		page.Products = rows[:limit]
		last := page.Products[limit-1]
		page.NextCursor = pagination.EncodeCursor(pagination.Cursor{
			CreatedAt: last.CreatedAt,
			ID:        last.ID,
		})
	}
	return page, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*models.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "product name cannot be empty")
		}
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Image != nil {
		product.Image = *input.Image
	}
	if input.SackWeight != nil {
		if *input.SackWeight < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "sack weight cannot be negative")
		}
		product.SackWeight = *input.SackWeight
	}
	if input.AnimalTypes != nil || input.SubTypes != nil {
		animalTypes := []string(product.AnimalTypes)
		subTypes := []string(product.SubTypes)
		if input.AnimalTypes != nil {
			animalTypes = input.AnimalTypes
		}
		if input.SubTypes != nil {
			subTypes = input.SubTypes
		}
		if err := validateTaxonomy(animalTypes, subTypes); err != nil {
			return nil, err
		}
		product.AnimalTypes = animalTypes
		product.SubTypes = subTypes
	}
	if input.Benefits != nil {
		product.Benefits = input.Benefits
	}
	if input.ShowAnimalNames != nil {
		product.ShowAnimalNames = *input.ShowAnimalNames
	}

	// Price updates rederive the counterpart. A kg price wins when both come
	// in the same request.
	switch {
	case input.PricePerKg != nil:
		if *input.PricePerKg < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "prices cannot be negative")
		}
		perKg, perSack := derivePrices(*input.PricePerKg, 0, product.SackWeight)
		product.PricePerKg = perKg
		product.PricePerSack = perSack
	case input.PricePerSack != nil:
		if *input.PricePerSack < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "prices cannot be negative")
		}
		perKg, perSack := derivePrices(0, *input.PricePerSack, product.SackWeight)
		product.PricePerKg = perKg
		product.PricePerSack = perSack
	case input.SackWeight != nil:
		// Weight changed without a new price: keep the kg price as the
		// source of truth and rederive the sack price.
		perKg, perSack := derivePrices(product.PricePerKg, 0, product.SackWeight)
		product.PricePerKg = perKg
		product.PricePerSack = perSack
	}

	if _, err := s.repo.Update(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update product")
	}
	return product, nil
}

// Delete removes the catalog entry. Order items snapshot the product fields
// they need, so existing orders keep their figures.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete product")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return nil
}

// AdjustPrices multiplies every catalog price by the given percentage delta
// inside one transaction and returns how many products changed.
func (s *service) AdjustPrices(ctx context.Context, percent float64) (int, error) {
	if percent <= -100 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "adjustment would zero or invert prices")
	}

	factor := 1 + percent/100
	var adjusted int
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		rows, err := repo.ListAll(ctx)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
		}
		for i := range rows {
			product := &rows[i]
			product.PricePerKg = pricing.Round2(product.PricePerKg * factor)
			product.PricePerSack = pricing.Round2(product.PricePerSack * factor)
			if _, err := repo.Update(ctx, product); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update product price")
			}
			adjusted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return adjusted, nil
}

// derivePrices fills in whichever price is missing from the other one. The kg
// price is authoritative when both are present.
func derivePrices(perKg, perSack float64, sackWeight int) (float64, float64) {
	switch {
	case perKg > 0 && sackWeight > 0:
		return pricing.Round2(perKg), pricing.Round2(perKg * float64(sackWeight))
	case perSack > 0 && sackWeight > 0:
		return pricing.Round2(perSack / float64(sackWeight)), pricing.Round2(perSack)
	default:
		return pricing.Round2(perKg), pricing.Round2(perSack)
	}
}

func validateTaxonomy(animalTypes, subTypes []string) error {
	parsed := make([]enums.AnimalType, 0, len(animalTypes))
	for _, raw := range animalTypes {
		animalType, err := enums.ParseAnimalType(raw)
		if err != nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "unknown animal type").
				WithDetails(map[string]any{"animal_type": raw, "valid": enums.AnimalTypes()})
		}
		parsed = append(parsed, animalType)
	}

	for _, raw := range subTypes {
		subType, err := enums.ParseAnimalSubType(raw)
		if err != nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "unknown animal subtype").
				WithDetails(map[string]any{"sub_type": raw})
		}
		matches := false
		for _, animalType := range parsed {
			if subType.BelongsTo(animalType) {
				matches = true
				break
			}
		}
		if !matches {
			return pkgerrors.New(pkgerrors.CodeValidation, "subtype does not match any selected animal type").
				WithDetails(map[string]any{"sub_type": raw})
		}
	}
	return nil
}
