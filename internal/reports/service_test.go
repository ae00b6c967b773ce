package reports

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/feedstorehq/feedstore-backend/pkg/db/models"
	"github.com/feedstorehq/feedstore-backend/pkg/enums"
	pkgerrors "github.com/feedstorehq/feedstore-backend/pkg/errors"
)

type stubOrderLister struct {
	orders []models.Order
	err    error
}

func (s *stubOrderLister) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.orders, s.err
}

func fixedItem(value float64) []models.OrderItem {
	commissionType := enums.CommissionTypeFixed
	return []models.OrderItem{{
		ID:              uuid.New(),
		Quantity:        1,
		SackWeight:      1,
		UnitPrice:       0,
		CommissionType:  &commissionType,
		CommissionValue: value,
	}}
}

func marchOrders() []models.Order {
	day10 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	day12 := time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)
	return []models.Order{
		{ID: uuid.New(), OrderDate: day10, Status: enums.OrderStatusDelivered, TotalAmount: 100, Items: fixedItem(4)},
		{ID: uuid.New(), OrderDate: day10, Status: enums.OrderStatusPending, TotalAmount: 30},
		{ID: uuid.New(), OrderDate: day12, Status: enums.OrderStatusCancelled, TotalAmount: 70, Items: fixedItem(6)},
	}
}

func TestDashboardAggregates(t *testing.T) {
	svc, err := NewService(&stubOrderLister{orders: marchOrders()})
	require.NoError(t, err)

	dashboard, err := svc.Dashboard(context.Background(), time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Equal(t, 1, dashboard.MonthlySales)
	// cancelled order excluded from gross profit
	require.InDelta(t, 130.0, dashboard.GrossProfit, 1e-9)
	require.InDelta(t, 10.0, dashboard.TotalCommission, 1e-9)
	require.Equal(t, 3, dashboard.OrderCount)
	require.Equal(t, 1, dashboard.PendingCount)
}

func TestDashboardScopedToMonth(t *testing.T) {
	orders := append(marchOrders(), models.Order{
		ID:        uuid.New(),
		OrderDate: time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
		Status:    enums.OrderStatusDelivered,
		TotalAmount: 999,
	})
	svc, err := NewService(&stubOrderLister{orders: orders})
	require.NoError(t, err)

	dashboard, err := svc.Dashboard(context.Background(), time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, 3, dashboard.OrderCount)
	require.InDelta(t, 130.0, dashboard.GrossProfit, 1e-9)
}

func TestSalesReportIncludesCancelledGross(t *testing.T) {
	svc, err := NewService(&stubOrderLister{orders: marchOrders()})
	require.NoError(t, err)

	report, err := svc.SalesReport(
		context.Background(),
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	require.InDelta(t, 200.0, report.Gross, 1e-9)
	require.InDelta(t, 10.0, report.TotalCommission, 1e-9)
	// 10 / 200 * 100 = 5.0
	require.InDelta(t, 5.0, report.CommissionRate, 1e-9)
	require.Equal(t, 3, report.OrderCount)
	require.Equal(t, 1, report.DeliveredCount)

	require.Len(t, report.Daily, 2)
	require.Equal(t, "10/03/2025", report.Daily[0].Date)
	require.InDelta(t, 130.0, report.Daily[0].Gross, 1e-9)
	require.InDelta(t, 4.0, report.Daily[0].Commission, 1e-9)
	require.Equal(t, "12/03/2025", report.Daily[1].Date)
	require.InDelta(t, 70.0, report.Daily[1].Gross, 1e-9)
}

func TestSalesReportZeroGrossRate(t *testing.T) {
	svc, err := NewService(&stubOrderLister{})
	require.NoError(t, err)

	report, err := svc.SalesReport(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Zero(t, report.Gross)
	require.Zero(t, report.CommissionRate)
	require.Empty(t, report.Daily)
}

func TestSalesReportRejectsInvertedRange(t *testing.T) {
	svc, err := NewService(&stubOrderLister{})
	require.NoError(t, err)

	_, err = svc.SalesReport(
		context.Background(),
		time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	)
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}
