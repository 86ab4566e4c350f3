package http

import (
	"log/slog"
	"os"
	"strings"

	"github.com/akachaad/office-pulse-2026/internal/config"
	"github.com/akachaad/office-pulse-2026/internal/handler/http/middleware"
	"github.com/akachaad/office-pulse-2026/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Person     PersonHandler
	Attendance AttendanceHandler
	Recurrent  RecurrentHandler
	Report     ReportHandler
	Setting    SettingHandler
	Desk       DeskHandler
	Calendar   CalendarHandler
}

func logLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func NewRouter(jwtService jwt.Service, h Handlers, app config.AppConfig) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "office-pulse"),
		slog.String("version", "v1.0.0"),
		slog.String("env", app.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{app.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  logLevel(app.LogLevel),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/people", func(r chi.Router) {
				r.Get("/", h.Person.List)
				r.Get("/{id}", h.Person.GetByID)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Person.Create)
					r.Put("/{id}/capacity", h.Person.UpdateCapacity)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.ListRecords)
				r.Get("/effective", h.Attendance.EffectiveMonth)
				r.Put("/", h.Attendance.SetPeriod)
				r.Post("/advance", h.Attendance.Advance)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/bulk", h.Attendance.Bulk)
				})
			})

			r.Route("/recurrent", func(r chi.Router) {
				r.Get("/", h.Recurrent.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/", h.Recurrent.Upsert)
					r.Delete("/", h.Recurrent.Clear)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/stats", h.Report.Stats)
				r.Get("/warnings", h.Report.Warnings)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/capacity-limit", h.Setting.GetCapacityLimit)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/capacity-limit", h.Setting.SetCapacityLimit)
				})
			})

			r.Get("/calendar", h.Calendar.Month)

			r.Route("/desks", func(r chi.Router) {
				r.Get("/", h.Desk.ListByDate)
				r.Post("/reservations", h.Desk.Reserve)
				r.Delete("/{deskID}/reservations", h.Desk.Cancel)
			})
		})
	})
	return r
}
