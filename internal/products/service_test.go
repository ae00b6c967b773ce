package products

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/feedstorehq/feedstore-backend/pkg/db/models"
	pkgerrors "github.com/feedstorehq/feedstore-backend/pkg/errors"
	"github.com/feedstorehq/feedstore-backend/pkg/pagination"
)

type stubProductsRepo struct {
	product        *models.Product
	all            []models.Product
	created        *models.Product
	updated        []*models.Product
	listRows       []models.Product
	deleteAffected int64
}

func (s *stubProductsRepo) WithTx(tx *gorm.DB) Repository {
	return s
}

func (s *stubProductsRepo) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	s.created = product
	return product, nil
}

func (s *stubProductsRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if s.product == nil || s.product.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return s.product, nil
}

func (s *stubProductsRepo) List(ctx context.Context, filter ListFilter, limit int, cursor *pagination.Cursor) ([]models.Product, error) {
	if limit < len(s.listRows) {
		return s.listRows[:limit], nil
	}
	return s.listRows, nil
}

func (s *stubProductsRepo) ListAll(ctx context.Context) ([]models.Product, error) {
	return s.all, nil
}

func (s *stubProductsRepo) Update(ctx context.Context, product *models.Product) (*models.Product, error) {
	s.updated = append(s.updated, product)
	return product, nil
}

func (s *stubProductsRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return s.deleteAffected, nil
}

type stubTxRunner struct{}

func (stubTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func newTestService(t *testing.T, repo Repository) Service {
	t.Helper()
	svc, err := NewService(repo, stubTxRunner{})
	require.NoError(t, err)
	return svc
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestServiceCreateDerivesSackPrice(t *testing.T) {
	repo := &stubProductsRepo{}
	svc := newTestService(t, repo)

	product, err := svc.Create(context.Background(), CreateProductInput{
		Name:        "Racao Premium Bovinos",
		PricePerKg:  2.30,
		SackWeight:  50,
		AnimalTypes: []string{"cattle"},
		SubTypes:    []string{"dairy_cattle"},
	})
	require.NoError(t, err)
	require.InDelta(t, 2.30, product.PricePerKg, 1e-9)
	require.InDelta(t, 115.0, product.PricePerSack, 1e-9)
	require.NotNil(t, repo.created)
}

func TestServiceCreateDerivesKgPrice(t *testing.T) {
	svc := newTestService(t, &stubProductsRepo{})

	product, err := svc.Create(context.Background(), CreateProductInput{
		Name:         "Nucleo Aves Postura",
		PricePerSack: 89.90,
		SackWeight:   40,
	})
	require.NoError(t, err)
	// 89.90 / 40 = 2.2475, half-up to 2.25
	require.InDelta(t, 2.25, product.PricePerKg, 1e-9)
	require.InDelta(t, 89.90, product.PricePerSack, 1e-9)
}

func TestServiceCreateRejectsBadTaxonomy(t *testing.T) {
	svc := newTestService(t, &stubProductsRepo{})

	tests := []struct {
		name  string
		input CreateProductInput
	}{
		{
			name:  "unknown animal type",
			input: CreateProductInput{Name: "Racao", AnimalTypes: []string{"dragon"}},
		},
		{
			name:  "subtype without matching type",
			input: CreateProductInput{Name: "Racao", AnimalTypes: []string{"poultry"}, SubTypes: []string{"dairy_cattle"}},
		},
		{
			name:  "missing name",
			input: CreateProductInput{PricePerKg: 2},
		},
		{
			name:  "negative price",
			input: CreateProductInput{Name: "Racao", PricePerKg: -1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)
			var appErr *pkgerrors.Error
			require.ErrorAs(t, err, &appErr)
			require.Equal(t, pkgerrors.CodeValidation, appErr.Code())
		})
	}
}

func TestServiceUpdateRederivesPrices(t *testing.T) {
	id := uuid.New()
	repo := &stubProductsRepo{product: &models.Product{
		ID:           id,
		Name:         "Racao Premium Bovinos",
		PricePerKg:   2.30,
		PricePerSack: 115,
		SackWeight:   50,
	}}
	svc := newTestService(t, repo)

	product, err := svc.Update(context.Background(), id, UpdateProductInput{
		PricePerSack: floatPtr(120),
	})
	require.NoError(t, err)
	require.InDelta(t, 2.40, product.PricePerKg, 1e-9)
	require.InDelta(t, 120.0, product.PricePerSack, 1e-9)
}

func TestServiceUpdateSackWeightKeepsKgPrice(t *testing.T) {
	id := uuid.New()
	repo := &stubProductsRepo{product: &models.Product{
		ID:           id,
		Name:         "Racao Premium Bovinos",
		PricePerKg:   2.30,
		PricePerSack: 115,
		SackWeight:   50,
	}}
	svc := newTestService(t, repo)

	product, err := svc.Update(context.Background(), id, UpdateProductInput{
		SackWeight: intPtr(25),
	})
	require.NoError(t, err)
	require.InDelta(t, 2.30, product.PricePerKg, 1e-9)
	require.InDelta(t, 57.50, product.PricePerSack, 1e-9)
}

func TestServiceListPaginates(t *testing.T) {
	rows := make([]models.Product, 0, 3)
	for i := 0; i < 3; i++ {
		rows = append(rows, models.Product{ID: uuid.New(), Name: "Racao"})
	}
	repo := &stubProductsRepo{listRows: rows}
	svc := newTestService(t, repo)

	page, err := svc.List(context.Background(), ListFilter{}, pagination.Params{Limit: 2})
	require.NoError(t, err)
	require.Len(t, page.Products, 2)
	require.NotEmpty(t, page.NextCursor)

	cursor, err := pagination.ParseCursor(page.NextCursor)
	require.NoError(t, err)
	require.Equal(t, rows[1].ID, cursor.ID)
}

func TestServiceListRejectsBadCursor(t *testing.T) {
	svc := newTestService(t, &stubProductsRepo{})

	_, err := svc.List(context.Background(), ListFilter{}, pagination.Params{Cursor: "garbage!"})
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestServiceAdjustPrices(t *testing.T) {
	repo := &stubProductsRepo{all: []models.Product{
		{ID: uuid.New(), Name: "A", PricePerKg: 2.00, PricePerSack: 100, SackWeight: 50},
		{ID: uuid.New(), Name: "B", PricePerKg: 1.50, PricePerSack: 60, SackWeight: 40},
	}}
	svc := newTestService(t, repo)

	adjusted, err := svc.AdjustPrices(context.Background(), 10)
	require.NoError(t, err)
	require.Equal(t, 2, adjusted)
	require.Len(t, repo.updated, 2)
	require.InDelta(t, 2.20, repo.updated[0].PricePerKg, 1e-9)
	require.InDelta(t, 110.0, repo.updated[0].PricePerSack, 1e-9)
	require.InDelta(t, 1.65, repo.updated[1].PricePerKg, 1e-9)
	require.InDelta(t, 66.0, repo.updated[1].PricePerSack, 1e-9)
}

func TestServiceAdjustPricesRejectsFullDiscount(t *testing.T) {
	svc := newTestService(t, &stubProductsRepo{})

	_, err := svc.AdjustPrices(context.Background(), -100)
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestServiceDeleteProduct(t *testing.T) {
	repo := &stubProductsRepo{deleteAffected: 1}
	svc := newTestService(t, repo)
	require.NoError(t, svc.Delete(context.Background(), uuid.New()))

	repo.deleteAffected = 0
	err := svc.Delete(context.Background(), uuid.New())
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}
