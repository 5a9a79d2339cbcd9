package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mfekete/backoffice-backend/api/controllers"
	"github.com/mfekete/backoffice-backend/api/middleware"
	"github.com/mfekete/backoffice-backend/internal/auth"
	"github.com/mfekete/backoffice-backend/internal/dashboard"
	"github.com/mfekete/backoffice-backend/internal/expenses"
	"github.com/mfekete/backoffice-backend/internal/incomes"
	"github.com/mfekete/backoffice-backend/internal/orders"
	"github.com/mfekete/backoffice-backend/internal/products"
	"github.com/mfekete/backoffice-backend/internal/shifts"
	"github.com/mfekete/backoffice-backend/internal/stores"
	"github.com/mfekete/backoffice-backend/internal/workers"
	"github.com/mfekete/backoffice-backend/pkg/config"
	"github.com/mfekete/backoffice-backend/pkg/logger"
	"github.com/mfekete/backoffice-backend/pkg/metrics"
	"github.com/mfekete/backoffice-backend/pkg/redis"
)

type Services struct {
	Auth      auth.Service
	Stores    stores.Service
	Products  products.Service
	Orders    orders.Service
	Workers   workers.Service
	Shifts    shifts.Service
	Incomes   incomes.Service
	Expenses  expenses.Service
	Dashboard dashboard.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP controllers.Pinger,
	redisClient *redis.Client,
	registry *prometheus.Registry,
	m *metrics.Metrics,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(nil),
		middleware.Metrics(m),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, map[string]controllers.Pinger{
			"database": dbP,
			"redis":    redisClient,
		}))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", controllers.AuthLogin(svcs.Auth, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Use(middleware.Idempotency(redisClient, logg))

		r.Route("/stores", func(r chi.Router) {
			r.Post("/", controllers.CreateStore(svcs.Stores, logg))
			r.Get("/", controllers.ListStores(svcs.Stores, logg))
			r.Delete("/{storeId}", controllers.DeleteStore(svcs.Stores, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", controllers.CreateProduct(svcs.Products, logg))
			r.Get("/", controllers.ListProducts(svcs.Products, logg))
			r.Put("/{productId}", controllers.UpdateProduct(svcs.Products, logg))
			r.Delete("/{productId}", controllers.DeleteProduct(svcs.Products, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", controllers.PlaceOrder(svcs.Orders, logg))
			r.Get("/", controllers.ListOrders(svcs.Orders, logg))
			r.Get("/revenue/today", controllers.RevenueToday(svcs.Orders, logg))
			r.Get("/{orderId}", controllers.GetOrder(svcs.Orders, logg))
		})

		r.Route("/workers", func(r chi.Router) {
			r.Post("/", controllers.CreateWorker(svcs.Workers, logg))
			r.Get("/", controllers.ListWorkers(svcs.Workers, logg))
			r.Get("/{workerId}", controllers.GetWorker(svcs.Workers, logg))
			r.Delete("/{workerId}", controllers.DeleteWorker(svcs.Workers, logg))
			r.Get("/{workerId}/wages", controllers.ListWages(svcs.Workers, logg))
		})

		r.Route("/shifts", func(r chi.Router) {
			r.Post("/", controllers.RecordShift(svcs.Shifts, logg))
			r.Get("/", controllers.ListShifts(svcs.Shifts, logg))
			r.Delete("/{shiftId}", controllers.DeleteShift(svcs.Shifts, logg))
		})

		r.Route("/incomes", func(r chi.Router) {
			r.Post("/", controllers.CreateIncome(svcs.Incomes, logg))
			r.Get("/", controllers.ListIncomes(svcs.Incomes, logg))
			r.Get("/summary", controllers.SummarizeIncomes(svcs.Incomes, logg))
			r.Put("/{incomeId}", controllers.UpdateIncome(svcs.Incomes, logg))
			r.Delete("/{incomeId}", controllers.DeleteIncome(svcs.Incomes, logg))
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Post("/", controllers.CreateExpense(svcs.Expenses, logg))
			r.Get("/", controllers.ListExpenses(svcs.Expenses, logg))
			r.Delete("/{expenseId}", controllers.DeleteExpense(svcs.Expenses, logg))
		})

		r.Get("/dashboard", controllers.GetDashboard(svcs.Dashboard, logg))
	})

	return r
}
