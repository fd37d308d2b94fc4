package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/pertashop/backoffice-go/internal/config"
	"github.com/pertashop/backoffice-go/internal/handler/http/middleware"
	"github.com/pertashop/backoffice-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Staff      StaffHandler
	Attendance AttendanceHandler
	Overtime   OvertimeHandler
	Payroll    PayrollHandler
	Deposit    DepositHandler
	Receivable ReceivableHandler
	Store      StoreHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "backoffice-go"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	allowedOrigins := cfg.App.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/auth/me", func(r chi.Router) {
				r.Get("/", h.Auth.Profile)
				r.Put("/password", h.Auth.ChangePassword)
			})

			r.Route("/staff", func(r chi.Router) {
				r.Get("/", h.Staff.List)
				r.Get("/{id}", h.Staff.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Staff.Create)
					r.Put("/{id}", h.Staff.Update)
					r.Post("/{id}/deactivate", h.Staff.Deactivate)
					r.Delete("/{id}", h.Staff.Delete)
				})
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Get("/summary", h.Attendance.MonthlySummary)
				r.Get("/{id}", h.Attendance.Get)
				r.Post("/", h.Attendance.Create)
				r.Put("/{id}", h.Attendance.Update)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Delete("/{id}", h.Attendance.Delete)
				})
			})

			r.Route("/overtime-requests", func(r chi.Router) {
				r.Get("/", h.Overtime.List)
				r.Get("/{id}", h.Overtime.Get)
				r.Post("/", h.Overtime.Create)
				r.Delete("/{id}", h.Overtime.Delete)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/{id}/approve", h.Overtime.Approve)
					r.Post("/{id}/reject", h.Overtime.Reject)
				})
			})

			r.Route("/payrolls", func(r chi.Router) {
				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/", h.Payroll.List)
					r.Get("/summary", h.Payroll.PeriodSummary)
					r.Get("/{id}", h.Payroll.Get)
					r.Post("/generate", h.Payroll.Generate)
					r.Put("/{id}", h.Payroll.Update)
					r.Delete("/{id}", h.Payroll.Delete)
				})

				// Owner only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireOwner)
					r.Post("/{id}/pay", h.Payroll.MarkPaid)
				})
			})

			r.Route("/deposits", func(r chi.Router) {
				r.Get("/", h.Deposit.List)
				r.Get("/{id}", h.Deposit.Get)
				r.Post("/", h.Deposit.Create)
				r.Post("/preview", h.Deposit.Preview)
				r.Put("/{id}", h.Deposit.Update)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Delete("/{id}", h.Deposit.Delete)
				})
			})

			r.Route("/customers", func(r chi.Router) {
				r.Get("/", h.Receivable.ListCustomers)
				r.Get("/{id}", h.Receivable.GetCustomer)
				r.Post("/", h.Receivable.CreateCustomer)
				r.Put("/{id}", h.Receivable.UpdateCustomer)
				r.Delete("/{id}", h.Receivable.DeleteCustomer)
			})

			r.Route("/receivables", func(r chi.Router) {
				r.Get("/", h.Receivable.List)
				r.Get("/aging", h.Receivable.Aging)
				r.Get("/{id}", h.Receivable.Get)
				r.Post("/", h.Receivable.Create)
				r.Post("/{id}/payments", h.Receivable.RecordPayment)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Delete("/{id}", h.Receivable.Delete)
				})
			})

			r.Route("/store", func(r chi.Router) {
				r.Get("/", h.Store.GetStore)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Put("/", h.Store.UpdateStore)
				})
			})

			r.Route("/products", func(r chi.Router) {
				r.Get("/", h.Store.ListProducts)
				r.Get("/{id}", h.Store.GetProduct)
				r.Get("/{id}/movements", h.Store.ListMovements)
				r.Post("/{id}/movements", h.Store.RecordMovement)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Store.CreateProduct)
					r.Put("/{id}", h.Store.UpdateProduct)
					r.Delete("/{id}", h.Store.DeleteProduct)
				})
			})
		})
	})

	return r
}
