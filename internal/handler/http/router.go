package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/wagetrack/labour-backend-go/internal/config"
	"github.com/wagetrack/labour-backend-go/internal/handler/http/middleware"
	"github.com/wagetrack/labour-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	userHandler UserHandler,
	masterHandler MasterHandler,
	settingHandler SettingHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "labour-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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
			r.Post("/login", authHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/me", authHandler.Me)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Any signed-in role can preview a pay calculation.
			r.Post("/payments/estimate", attendanceHandler.Estimate)

			// Labour self-service
			r.Route("/labour", func(r chi.Router) {
				r.Use(middleware.RequireLabour)
				r.Post("/attendance", attendanceHandler.CheckIn)
				r.Get("/attendance", attendanceHandler.MyAttendance)
				r.Get("/dashboard", attendanceHandler.MyDashboard)
			})

			// Manager surface (admins included)
			r.Route("/manager", func(r chi.Router) {
				r.Use(middleware.RequireManager)

				r.Route("/attendance", func(r chi.Router) {
					r.Get("/board", attendanceHandler.Board)
					r.Post("/mark-present", attendanceHandler.MarkPresent)
					r.Post("/mark-absent", attendanceHandler.MarkAbsent)
					r.Get("/{id}", attendanceHandler.Get)
					r.Put("/{id}", attendanceHandler.Update)
				})

				r.Get("/labours", userHandler.ListLabours)
				r.Get("/labours/{id}", userHandler.GetLabour)

				r.Get("/clients", masterHandler.ListClients)
				r.Get("/sites", masterHandler.ListSites)
				r.Get("/holidays", masterHandler.ListHolidays)

				r.Route("/reports", func(r chi.Router) {
					r.Get("/daily", reportHandler.Daily)
					r.Get("/monthly", reportHandler.Monthly)
					r.Get("/labours/{id}", reportHandler.LabourMonth)
					r.Get("/clients", reportHandler.Clients)
				})
			})

			// Admin surface
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Route("/attendance", func(r chi.Router) {
					r.Delete("/{id}", attendanceHandler.Delete)
					r.Post("/{id}/verify", attendanceHandler.Verify)
					r.Post("/verify-bulk", attendanceHandler.VerifyBulk)
				})

				r.Route("/labours", func(r chi.Router) {
					r.Post("/", userHandler.CreateLabour)
					r.Put("/{id}", userHandler.UpdateLabour)
					r.Delete("/{id}", userHandler.DeleteLabour)
					r.Post("/{id}/reset-pin", userHandler.ResetPIN)
				})

				r.Route("/managers", func(r chi.Router) {
					r.Get("/", userHandler.ListManagers)
					r.Post("/", userHandler.CreateManager)
					r.Put("/{id}", userHandler.UpdateManager)
					r.Delete("/{id}", userHandler.DeleteManager)
					r.Post("/{id}/reset-pin", userHandler.ResetPIN)
				})

				r.Route("/clients", func(r chi.Router) {
					r.Post("/", masterHandler.CreateClient)
					r.Put("/{id}", masterHandler.UpdateClient)
					r.Delete("/{id}", masterHandler.DeleteClient)
				})

				r.Route("/sites", func(r chi.Router) {
					r.Post("/", masterHandler.CreateSite)
					r.Put("/{id}", masterHandler.UpdateSite)
					r.Delete("/{id}", masterHandler.DeleteSite)
				})

				r.Route("/holidays", func(r chi.Router) {
					r.Post("/", masterHandler.CreateHoliday)
					r.Delete("/{id}", masterHandler.DeleteHoliday)
				})

				r.Route("/incentives", func(r chi.Router) {
					r.Get("/", masterHandler.ListIncentiveRules)
					r.Post("/", masterHandler.CreateIncentiveRule)
					r.Put("/{id}", masterHandler.UpdateIncentiveRule)
					r.Delete("/{id}", masterHandler.DeleteIncentiveRule)
				})

				r.Route("/settings", func(r chi.Router) {
					r.Get("/", settingHandler.List)
					r.Put("/", settingHandler.Update)
				})

				r.Route("/reports", func(r chi.Router) {
					r.Get("/monthly", reportHandler.Monthly)
					r.Get("/payroll", reportHandler.Payroll)
					r.Get("/payroll-incentives", reportHandler.PayrollWithIncentives)
					r.Get("/labours/{id}", reportHandler.LabourMonth)
					r.Get("/clients", reportHandler.Clients)
					r.Get("/sites", reportHandler.Sites)
					r.Get("/analytics", reportHandler.Analytics)
				})
			})
		})
	})

	return r
}
