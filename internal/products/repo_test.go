package products

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/feedstorehq/feedstore-backend/pkg/db/models"
	"github.com/feedstorehq/feedstore-backend/pkg/pagination"
)

func setupProductsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	products := `
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT,
  price_per_kg REAL NOT NULL DEFAULT 0,
  price_per_sack REAL NOT NULL DEFAULT 0,
  sack_weight INTEGER NOT NULL DEFAULT 0,
  image TEXT,
  animal_types TEXT,
  sub_types TEXT,
  benefits TEXT,
  show_animal_names INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`
	orderItems := `
CREATE TABLE IF NOT EXISTS order_items (
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL,
  product_name TEXT NOT NULL,
  description TEXT,
  quantity INTEGER NOT NULL,
  sack_weight INTEGER NOT NULL DEFAULT 0,
  unit_price REAL NOT NULL DEFAULT 0,
  commission_type TEXT,
  commission_value REAL NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`

	for _, stmt := range []string{products, orderItems} {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, animalTypes []string, createdAt time.Time) *models.Product {
	t.Helper()

	repo := NewRepository(db)
	product := &models.Product{
		ID:          uuid.New(),
		Name:        name,
		PricePerKg:  2.30,
		SackWeight:  50,
		AnimalTypes: animalTypes,
		CreatedAt:   createdAt,
	}
	_, err := repo.Create(context.Background(), product)
	require.NoError(t, err)
	return product
}

func TestRepositoryCreateAndFindProduct(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)

	created := seedProduct(t, db, "Racao Premium Bovinos", []string{"cattle"}, time.Now())

	found, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Racao Premium Bovinos", found.Name)
	assert.Equal(t, []string{"cattle"}, []string(found.AnimalTypes))
}

func TestRepositoryListFiltersByAnimalType(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)

	seedProduct(t, db, "Racao Premium Bovinos", []string{"cattle"}, time.Now())
	seedProduct(t, db, "Nucleo Aves Postura", []string{"poultry"}, time.Now())

	rows, err := repo.List(context.Background(), ListFilter{AnimalType: "cattle"}, 10, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Racao Premium Bovinos", rows[0].Name)
}

func TestRepositoryListTextSearch(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)

	seedProduct(t, db, "Racao Premium Bovinos", nil, time.Now())
	seedProduct(t, db, "Sal Mineral", nil, time.Now())

	rows, err := repo.List(context.Background(), ListFilter{Query: "premium"}, 10, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Racao Premium Bovinos", rows[0].Name)
}

func TestRepositoryListCursorWalksPages(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)

	base := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	oldest := seedProduct(t, db, "A", nil, base)
	middle := seedProduct(t, db, "B", nil, base.Add(time.Hour))
	newest := seedProduct(t, db, "C", nil, base.Add(2*time.Hour))

	first, err := repo.List(context.Background(), ListFilter{}, 2, nil)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, newest.ID, first[0].ID)
	assert.Equal(t, middle.ID, first[1].ID)

	second, err := repo.List(context.Background(), ListFilter{}, 2, &pagination.Cursor{
		CreatedAt: first[1].CreatedAt,
		ID:        first[1].ID,
	})
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, oldest.ID, second[0].ID)
}

func TestRepositoryDeleteLeavesOrderItemSnapshots(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)

	product := seedProduct(t, db, "Racao Premium Bovinos", nil, time.Now())

	item := models.OrderItem{
		ID:          uuid.New(),
		OrderID:     uuid.New(),
		ProductName: product.Name,
		Quantity:    10,
		SackWeight:  product.SackWeight,
		UnitPrice:   product.PricePerKg,
	}
	require.NoError(t, db.Create(&item).Error)

	affected, err := repo.Delete(context.Background(), product.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	var kept models.OrderItem
	require.NoError(t, db.Where("id = ?", item.ID).First(&kept).Error)
	assert.Equal(t, "Racao Premium Bovinos", kept.ProductName)
	assert.InDelta(t, 2.30, kept.UnitPrice, 1e-9)
	assert.Equal(t, 50, kept.SackWeight)
}
