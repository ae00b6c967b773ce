package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/feedstorehq/feedstore-backend/api/controllers"
	"github.com/feedstorehq/feedstore-backend/api/middleware"
	"github.com/feedstorehq/feedstore-backend/internal/clients"
	"github.com/feedstorehq/feedstore-backend/internal/orders"
	"github.com/feedstorehq/feedstore-backend/internal/products"
	"github.com/feedstorehq/feedstore-backend/internal/reports"
	"github.com/feedstorehq/feedstore-backend/internal/storefront"
	"github.com/feedstorehq/feedstore-backend/pkg/config"
	"github.com/feedstorehq/feedstore-backend/pkg/db"
	"github.com/feedstorehq/feedstore-backend/pkg/logger"
	"github.com/feedstorehq/feedstore-backend/pkg/metrics"
	pkgredis "github.com/feedstorehq/feedstore-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	registry *prometheus.Registry,
	dbPinger db.Pinger,
	cachePinger pkgredis.Pinger,
	idemStore pkgredis.IdempotencyStore,
	productsSvc products.Service,
	clientsSvc clients.Service,
	ordersSvc orders.Service,
	reportsSvc reports.Service,
	links *storefront.LinkBuilder,
) http.Handler {
	r := chi.NewRouter()

	httpMetrics := metrics.NewHTTPMetrics(registry)

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbPinger, cachePinger, logg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	// Public storefront surface. Read-only: the catalog page and the
	// WhatsApp checkout hand-off need no credentials.
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(productsSvc, logg))
			r.Get("/{productID}", controllers.GetProduct(productsSvc, logg))
			r.Get("/{productID}/whatsapp-link", controllers.ProductWhatsAppLink(links, logg))
		})
		r.Get("/orders/statuses", controllers.OrderStatusTable())
	})

	// Back-office surface behind the shared admin token.
	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.AdminToken(cfg.Admin.Token, logg))
		r.Use(middleware.Idempotency(idemStore, logg))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(productsSvc, logg))
			r.Post("/", controllers.CreateProduct(productsSvc, logg))
			r.Post("/bulk-price", controllers.AdjustProductPrices(productsSvc, logg))
			r.Get("/{productID}", controllers.GetProduct(productsSvc, logg))
			r.Patch("/{productID}", controllers.UpdateProduct(productsSvc, logg))
			r.Delete("/{productID}", controllers.DeleteProduct(productsSvc, logg))
		})

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", controllers.ListClients(clientsSvc, logg))
			r.Post("/", controllers.CreateClient(clientsSvc, logg))
			r.Get("/{clientID}", controllers.GetClient(clientsSvc, logg))
			r.Patch("/{clientID}", controllers.UpdateClient(clientsSvc, logg))
			r.Delete("/{clientID}", controllers.DeleteClient(clientsSvc, logg))
			r.Get("/{clientID}/orders", controllers.ClientOrders(ordersSvc, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.ListOrders(ordersSvc, logg))
			r.Post("/", controllers.CreateOrder(ordersSvc, logg))
			r.Get("/{orderID}", controllers.GetOrder(ordersSvc, logg))
			r.Patch("/{orderID}/status", controllers.SetOrderStatus(ordersSvc, logg))
			r.Delete("/{orderID}", controllers.DeleteOrder(ordersSvc, logg))
			r.Get("/{orderID}/document", controllers.OrderPDF(ordersSvc, clientsSvc, cfg.Storefront.CompanyName, logg))
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/dashboard", controllers.Dashboard(reportsSvc, logg))
			r.Get("/sales", controllers.SalesReport(reportsSvc, logg))
			r.Get("/sales/export", controllers.SalesReportXLSX(reportsSvc, clientsSvc, logg))
		})
	})

	return r
}
