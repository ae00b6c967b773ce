package documents

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"github.com/feedstorehq/feedstore-backend/internal/orders"
	"github.com/feedstorehq/feedstore-backend/internal/pricing"
)

// OrderPDFInput carries everything the order document needs. Names come from
// the caller so this package stays free of storage lookups.
type OrderPDFInput struct {
	Order       orders.OrderDTO
	ClientName  string
	CompanyName string
}

// OrderPDF renders a printable order summary with one row per line item and
// the freight and commission figures at the bottom.
func OrderPDF(input OrderPDFInput) ([]byte, error) {
	if input.Order.ID == uuid.Nil {
		return nil, fmt.Errorf("order required")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Pedido %s", input.Order.ID), true)
	pdf.AddPage()
	translator := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	company := input.CompanyName
	if company == "" {
		company = "Pedido"
	}
	pdf.CellFormat(0, 10, translator(company), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, translator(fmt.Sprintf("Pedido: %s", input.Order.ID)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, translator(fmt.Sprintf("Data: %s", input.Order.OrderDate.Format("02/01/2006"))), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, translator(fmt.Sprintf("Cliente: %s", input.ClientName)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, translator(fmt.Sprintf("Status: %s", input.Order.StatusLabel)), "", 1, "L", false, 0, "")
	if input.Order.Origin != nil && input.Order.Destination != nil {
		route := fmt.Sprintf("Rota: %s -> %s", *input.Order.Origin, *input.Order.Destination)
		pdf.CellFormat(0, 6, translator(route), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	widths := []float64{70, 20, 25, 30, 35}
	headers := []string{"Produto", "Qtd", "Saca (kg)", "Preço/kg", "Subtotal"}
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, translator(header), "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range input.Order.Items {
		cells := []string{
			item.ProductName,
			fmt.Sprintf("%d", item.Quantity),
			fmt.Sprintf("%d", item.SackWeight),
			fmt.Sprintf("R$ %.2f", item.UnitPrice),
			fmt.Sprintf("R$ %.2f", pricing.Round2(item.Subtotal)),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 7, translator(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, translator(fmt.Sprintf("Frete: R$ %.2f", pricing.Round2(input.Order.Freight))), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 7, translator(fmt.Sprintf("Total: R$ %.2f", pricing.Round2(input.Order.TotalAmount))), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, translator(fmt.Sprintf("Comissão: R$ %.2f", pricing.Round2(input.Order.Commission))), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
