package documents

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/feedstorehq/feedstore-backend/internal/pricing"
	"github.com/feedstorehq/feedstore-backend/internal/reports"
)

const salesSheet = "Vendas"

// SalesReportXLSX renders the sales report as a spreadsheet: one summary
// block, then the daily series, then one row per order.
func SalesReportXLSX(report *reports.SalesReport, clientNames map[string]string) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("report required")
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(salesSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	summary := [][]any{
		{"Período", fmt.Sprintf("%s a %s", report.From.Format("02/01/2006"), report.To.Format("02/01/2006"))},
		{"Faturamento Bruto", pricing.Round2(report.Gross)},
		{"Comissão Total", pricing.Round2(report.TotalCommission)},
		{"Taxa de Comissão (%)", report.CommissionRate},
		{"Pedidos", report.OrderCount},
		{"Entregues", report.DeliveredCount},
	}
	row := 1
	for _, line := range summary {
		if err := setRow(f, row, line); err != nil {
			return nil, err
		}
		row++
	}

	row++
	if err := setRow(f, row, []any{"Data", "Faturamento", "Comissão"}); err != nil {
		return nil, err
	}
	row++
	for _, point := range report.Daily {
		if err := setRow(f, row, []any{point.Date, pricing.Round2(point.Gross), pricing.Round2(point.Commission)}); err != nil {
			return nil, err
		}
		row++
	}

	row++
	if err := setRow(f, row, []any{"Data", "Cliente", "Status", "Total", "Comissão"}); err != nil {
		return nil, err
	}
	row++
	for _, order := range report.Orders {
		clientName := clientNames[order.ClientID.String()]
		if clientName == "" {
			clientName = order.ClientID.String()
		}
		line := []any{
			order.OrderDate.Format("02/01/2006"),
			clientName,
			order.Status.Label(),
			pricing.Round2(order.TotalAmount),
			pricing.Round2(pricing.OrderCommission(order)),
		}
		if err := setRow(f, row, line); err != nil {
			return nil, err
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, row int, values []any) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(salesSheet, cell, value); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	return nil
}
