package controllers

import (
	"fmt"
	"net/http"

	"github.com/feedstorehq/feedstore-backend/api/responses"
	"github.com/feedstorehq/feedstore-backend/internal/clients"
	"github.com/feedstorehq/feedstore-backend/internal/documents"
	"github.com/feedstorehq/feedstore-backend/internal/orders"
	"github.com/feedstorehq/feedstore-backend/internal/reports"
	"github.com/feedstorehq/feedstore-backend/pkg/logger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// OrderPDF streams a printable summary of a single order.
func OrderPDF(ordersSvc orders.Service, clientsSvc clients.Service, companyName string, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "orderID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := ordersSvc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		clientName := ""
		if client, err := clientsSvc.Get(r.Context(), order.ClientID); err == nil {
			clientName = client.Name
		}

		pdf, err := documents.OrderPDF(documents.OrderPDFInput{
			Order:       orders.ToOrderDTO(*order),
			ClientName:  clientName,
			CompanyName: companyName,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteBinary(w, "application/pdf", fmt.Sprintf("pedido-%s.pdf", order.ID), pdf)
	}
}

// SalesReportXLSX streams the sales report for the requested range as a
// spreadsheet.
func SalesReportXLSX(reportsSvc reports.Service, clientsSvc clients.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from, to, err := reportRange(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		report, err := reportsSvc.SalesReport(r.Context(), from, to)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		clientNames := map[string]string{}
		if all, err := clientsSvc.List(r.Context()); err == nil {
			for _, client := range all {
				clientNames[client.ID.String()] = client.Name
			}
		}

		sheet, err := documents.SalesReportXLSX(report, clientNames)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filename := fmt.Sprintf("relatorio-vendas-%s.xlsx", report.From.Format("2006-01-02"))
		responses.WriteBinary(w, xlsxContentType, filename, sheet)
	}
}
