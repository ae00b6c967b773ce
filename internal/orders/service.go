package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/feedstorehq/feedstore-backend/internal/pricing"
	"github.com/feedstorehq/feedstore-backend/pkg/db/models"
	"github.com/feedstorehq/feedstore-backend/pkg/enums"
	pkgerrors "github.com/feedstorehq/feedstore-backend/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type clientLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Client, error)
}

// Service defines order workflow operations.
type Service interface {
	Create(ctx context.Context, input CreateOrderInput) (*models.Order, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]models.Order, error)
	SetStatus(ctx context.Context, id uuid.UUID, rawStatus string) (*models.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateOrderInput carries the validated payload for order creation.
type CreateOrderInput struct {
	ClientID    uuid.UUID
	OrderDate   time.Time
	Freight     float64
	Origin      *string
	Destination *string
	Notes       *string
	Items       []CreateOrderItemInput
}

// CreateOrderItemInput is one line of the order form. Product fields are
// snapshots taken at entry time, not live catalog references.
type CreateOrderItemInput struct {
	ProductName     string
	Description     *string
	Quantity        int
	SackWeight      int
	UnitPrice       float64
	CommissionType  *enums.CommissionType
	CommissionValue float64
}

type service struct {
	repo    Repository
	tx      txRunner
	clients clientLoader
	policy  StatusPolicy
}

// NewService builds the order service with the required dependencies.
func NewService(repo Repository, tx txRunner, clients clientLoader, policy StatusPolicy) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if clients == nil {
		return nil, fmt.Errorf("client loader required")
	}
	return &service{
		repo:    repo,
		tx:      tx,
		clients: clients,
		policy:  policy,
	}, nil
}

// Create persists the order header and its items atomically. The total is
// computed from the items plus freight before anything is written, so a
// failure never leaves a half-populated order behind.
func (s *service) Create(ctx context.Context, input CreateOrderInput) (*models.Order, error) {
	if input.ClientID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "client id required")
	}
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order requires at least one item")
	}
	for i, item := range input.Items {
		if item.ProductName == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item product name required").WithDetails(map[string]any{"index": i})
		}
		if item.Quantity < 1 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item quantity must be at least 1").WithDetails(map[string]any{"index": i})
		}
		if item.CommissionType != nil && !item.CommissionType.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown commission type").WithDetails(map[string]any{"index": i})
		}
	}

	if _, err := s.clients.FindByID(ctx, input.ClientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "client not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load client")
	}

	orderDate := input.OrderDate
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	orderID := uuid.New()
	items := make([]models.OrderItem, 0, len(input.Items))
	for _, in := range input.Items {
		items = append(items, models.OrderItem{
			ID:              uuid.New(),
			OrderID:         orderID,
			ProductName:     in.ProductName,
			Description:     in.Description,
			Quantity:        in.Quantity,
			SackWeight:      in.SackWeight,
			UnitPrice:       in.UnitPrice,
			CommissionType:  in.CommissionType,
			CommissionValue: in.CommissionValue,
		})
	}

	order := &models.Order{
		ID:          orderID,
		ClientID:    input.ClientID,
		OrderDate:   orderDate,
		Status:      enums.OrderStatusPending,
		Freight:     input.Freight,
		TotalAmount: pricing.OrderTotal(items, input.Freight),
		Origin:      input.Origin,
		Destination: input.Destination,
		Notes:       input.Notes,
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.CreateOrder(ctx, order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert order")
		}
		if err := repo.CreateOrderItems(ctx, items); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert order items")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	order.Items = items
	return order, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.repo.FindOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return order, nil
}

func (s *service) List(ctx context.Context) ([]models.Order, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return orders, nil
}

func (s *service) ListByClient(ctx context.Context, clientID uuid.UUID) ([]models.Order, error) {
	if clientID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "client id required")
	}
	orders, err := s.repo.ListOrdersByClient(ctx, clientID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list client orders")
	}
	return orders, nil
}

// SetStatus relabels the order within the bounds of the configured transition
// policy and returns the updated order. Status changes never touch totals or
// commissions.
func (s *service) SetStatus(ctx context.Context, id uuid.UUID, rawStatus string) (*models.Order, error) {
	status, err := enums.ParseOrderStatus(rawStatus)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidStatus, "unknown order status").
			WithDetails(map[string]any{"status": rawStatus, "valid": enums.OrderStatuses()})
	}

	order, err := s.repo.FindOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}

	if !s.policy.Allows(order.Status, status) {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidStatus, "transition not allowed").
			WithDetails(map[string]any{"from": order.Status, "to": status, "policy": s.policy.Name()})
	}

	if order.Status == status {
		return order, nil
	}

	affected, err := s.repo.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update order status")
	}
	if affected == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}

	order.Status = status
	return order, nil
}

// Delete removes the order and its items.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		affected, err := repo.DeleteOrder(ctx, id)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete order")
		}
		if affected == 0 {
			return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil
	})
}
