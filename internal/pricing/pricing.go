// Package pricing holds the money arithmetic for orders: line-item subtotals,
// sales commission, order totals and period aggregates. Every function here is
// total over its inputs; missing numeric fields behave as zero and nothing in
// this package touches storage.
package pricing

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/feedstorehq/feedstore-backend/pkg/db/models"
	"github.com/feedstorehq/feedstore-backend/pkg/enums"
)

// Subtotal converts a line item into its monetary subtotal. UnitPrice is the
// price per kilogram, so the sack weight scales the quantity into kilograms.
// A zero or missing sack weight yields zero; legacy rows carry that shape.
func Subtotal(item models.OrderItem) float64 {
	if item.Quantity <= 0 || item.SackWeight <= 0 {
		return 0
	}
	return float64(item.Quantity) * float64(item.SackWeight) * item.UnitPrice
}

// Commission computes the sales commission owed for a single line item.
// Unknown or absent commission types earn nothing. Negative commission values
// propagate as-is; sanitizing them is the input boundary's job.
func Commission(item models.OrderItem) float64 {
	if item.CommissionType == nil {
		return 0
	}
	switch *item.CommissionType {
	case enums.CommissionTypePercentage:
		return Subtotal(item) * item.CommissionValue / 100
	case enums.CommissionTypeFixed:
		return item.CommissionValue
	}
	return 0
}

// OrderCommission sums the commission across an order's items.
func OrderCommission(order models.Order) float64 {
	var total float64
	for _, item := range order.Items {
		total += Commission(item)
	}
	return total
}

// TotalCommission sums order commissions across a set of orders.
func TotalCommission(orders []models.Order) float64 {
	var total float64
	for _, order := range orders {
		total += OrderCommission(order)
	}
	return total
}

// OrderTotal rolls line items plus the freight charge into the order total.
// The result is persisted on the order at creation time.
func OrderTotal(items []models.OrderItem, freight float64) float64 {
	var total float64
	for _, item := range items {
		total += Subtotal(item)
	}
	return total + freight
}

// Gross sums persisted order totals across the set, regardless of status.
// This is the sales-report aggregate; it intentionally includes cancelled
// orders, matching the historical report figures.
func Gross(orders []models.Order) float64 {
	var total float64
	for _, order := range orders {
		total += order.TotalAmount
	}
	return total
}

// GrossExcludingCancelled sums order totals skipping cancelled orders. This is
// the dashboard's gross-profit figure; it and Gross are deliberately distinct
// aggregates.
func GrossExcludingCancelled(orders []models.Order) float64 {
	var total float64
	for _, order := range orders {
		if order.Status == enums.OrderStatusCancelled {
			continue
		}
		total += order.TotalAmount
	}
	return total
}

// CommissionRate expresses the period's total commission as a percentage of
// gross. Zero gross yields zero rather than a division error.
func CommissionRate(orders []models.Order) float64 {
	gross := Gross(orders)
	if gross <= 0 {
		return 0
	}
	return TotalCommission(orders) / gross * 100
}

// DeliveredCount counts orders in the Delivered state. The dashboard's
// "monthly sales" figure is this count, not a monetary sum.
func DeliveredCount(orders []models.Order) int {
	var count int
	for _, order := range orders {
		if order.Status == enums.OrderStatusDelivered {
			count++
		}
	}
	return count
}

// SeriesPoint is one calendar-date bucket of the gross/commission series.
type SeriesPoint struct {
	Date       string  `json:"date"`
	Gross      float64 `json:"gross"`
	Commission float64 `json:"commission"`
}

// seriesDateLayout mirrors the dd/mm/yyyy rendering the back office charts use.
const seriesDateLayout = "02/01/2006"

// DailySeries buckets orders by calendar date, summing order totals into the
// gross series and commissions into the commission series. Dates with no
// orders are absent from the result, not zero-filled.
func DailySeries(orders []models.Order) []SeriesPoint {
	type bucket struct {
		day        time.Time
		gross      float64
		commission float64
	}
	buckets := map[string]*bucket{}
	for _, order := range orders {
		day := order.OrderDate.Truncate(24 * time.Hour)
		key := day.Format(seriesDateLayout)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{day: day}
			buckets[key] = b
		}
		b.gross += order.TotalAmount
		b.commission += OrderCommission(order)
	}

	ordered := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].day.Before(ordered[j].day)
	})

	series := make([]SeriesPoint, 0, len(ordered))
	for _, b := range ordered {
		series = append(series, SeriesPoint{
			Date:       b.day.Format(seriesDateLayout),
			Gross:      b.gross,
			Commission: b.commission,
		})
	}
	return series
}

// Round2 applies half-up rounding to two decimal places, the denomination
// used when deriving sack prices from per-kg prices.
func Round2(value float64) float64 {
	rounded, _ := decimal.NewFromFloat(value).Round(2).Float64()
	return rounded
}

// Round1 applies half-up rounding to one decimal place, used when presenting
// commission rates.
func Round1(value float64) float64 {
	rounded, _ := decimal.NewFromFloat(value).Round(1).Float64()
	return rounded
}
