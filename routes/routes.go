package routes

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/fixture-system/handlers"
	"github.com/Dosada05/fixture-system/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Dosada05/fixture-system/docs" // регистрирует swagger-документ
)

type Handlers struct {
	Session   *handlers.SessionHandler
	Team      *handlers.TeamHandler
	Match     *handlers.MatchHandler
	Export    *handlers.ExportHandler
	WebSocket *handlers.WebSocketHandler
}

func SetupRoutes(router chi.Router, logger *slog.Logger, allowedOrigins []string, h Handlers) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.RequestLogger(logger))
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Get("/ws/sessions/{sessionID}", h.WebSocket.ServeWs)

	router.Route("/sessions", func(r chi.Router) {
		r.Post("/", h.Session.CreateSession)

		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", h.Session.GetSession)
			r.Delete("/", h.Session.DeleteSession)
			r.Put("/format", h.Session.SetFormat)
			r.Post("/export", h.Export.ExportSession)

			r.Route("/teams", func(r chi.Router) {
				r.Get("/", h.Team.ListTeams)
				r.Post("/", h.Team.AddTeam)
				r.Put("/{teamID}", h.Team.RenameTeam)
				r.Delete("/{teamID}", h.Team.RemoveTeam)
			})

			r.Route("/fixture", func(r chi.Router) {
				r.Post("/", h.Session.CreateFixture)
				r.Delete("/", h.Session.ResetFixture)
			})

			r.Route("/league", func(r chi.Router) {
				r.Get("/", h.Match.GetLeague)
				r.Put("/matches/{matchID}/result", h.Match.SubmitResult)
			})

			r.Route("/playoff", func(r chi.Router) {
				r.Get("/", h.Match.GetPlayoff)
				r.Put("/matches/{matchID}/winner", h.Match.PickWinner)
			})
		})
	})
}
