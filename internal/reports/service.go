package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/feedstorehq/feedstore-backend/internal/pricing"
	"github.com/feedstorehq/feedstore-backend/pkg/db/models"
	pkgerrors "github.com/feedstorehq/feedstore-backend/pkg/errors"
)

type orderLister interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
}

// Dashboard is the back-office landing snapshot.
type Dashboard struct {
	MonthlySales    int     `json:"monthly_sales"`
	GrossProfit     float64 `json:"gross_profit"`
	TotalCommission float64 `json:"total_commission"`
	OrderCount      int     `json:"order_count"`
	PendingCount    int     `json:"pending_count"`
}

// SalesReport aggregates a date range for the sales view. Gross here includes
// cancelled orders, unlike the dashboard figure.
type SalesReport struct {
	From            time.Time             `json:"from"`
	To              time.Time             `json:"to"`
	Gross           float64               `json:"gross"`
	TotalCommission float64               `json:"total_commission"`
	CommissionRate  float64               `json:"commission_rate"`
	OrderCount      int                   `json:"order_count"`
	DeliveredCount  int                   `json:"delivered_count"`
	Daily           []pricing.SeriesPoint `json:"daily"`
	Orders          []models.Order        `json:"-"`
}

// Service computes reporting aggregates over the order history.
type Service interface {
	Dashboard(ctx context.Context, month time.Time) (*Dashboard, error)
	SalesReport(ctx context.Context, from, to time.Time) (*SalesReport, error)
}

type service struct {
	orders orderLister
}

// NewService builds the reports service.
func NewService(orders orderLister) (Service, error) {
	if orders == nil {
		return nil, fmt.Errorf("order lister required")
	}
	return &service{orders: orders}, nil
}

// Dashboard aggregates the calendar month containing the reference time.
// Monthly sales counts delivered orders; gross profit skips cancelled ones.
func (s *service) Dashboard(ctx context.Context, month time.Time) (*Dashboard, error) {
	if month.IsZero() {
		month = time.Now()
	}
	from := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	to := from.AddDate(0, 1, 0)

	orders, err := s.listRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	var pending int
	for _, order := range orders {
		if !order.Status.IsTerminal() {
			pending++
		}
	}

	return &Dashboard{
		MonthlySales:    pricing.DeliveredCount(orders),
		GrossProfit:     pricing.GrossExcludingCancelled(orders),
		TotalCommission: pricing.TotalCommission(orders),
		OrderCount:      len(orders),
		PendingCount:    pending,
	}, nil
}

// SalesReport aggregates the half-open range [from, to). A zero `to` means
// "through now".
func (s *service) SalesReport(ctx context.Context, from, to time.Time) (*SalesReport, error) {
	if to.IsZero() {
		to = time.Now()
	}
	if !from.IsZero() && to.Before(from) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "report range ends before it starts")
	}

	orders, err := s.listRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &SalesReport{
		From:            from,
		To:              to,
		Gross:           pricing.Gross(orders),
		TotalCommission: pricing.TotalCommission(orders),
		CommissionRate:  pricing.Round1(pricing.CommissionRate(orders)),
		OrderCount:      len(orders),
		DeliveredCount:  pricing.DeliveredCount(orders),
		Daily:           pricing.DailySeries(orders),
		Orders:          orders,
	}, nil
}

func (s *service) listRange(ctx context.Context, from, to time.Time) ([]models.Order, error) {
	all, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}

	filtered := make([]models.Order, 0, len(all))
	for _, order := range all {
		if !from.IsZero() && order.OrderDate.Before(from) {
			continue
		}
		if !to.IsZero() && !order.OrderDate.Before(to) {
			continue
		}
		filtered = append(filtered, order)
	}
	return filtered, nil
}
