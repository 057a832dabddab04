package server

import (
	"github.com/bagdasarian/church-roster/internal/handler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(h *handler.Handler, log *zap.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(log))
	r.Use(middleware.Recoverer)

	SetupRoutes(r, h)
	return r
}

func SetupRoutes(r chi.Router, h *handler.Handler) {
	r.Get("/health", h.Health)

	r.Route("/members", func(r chi.Router) {
		r.Post("/", h.CreateMember)
		r.Get("/", h.ListMembers)
		r.Get("/{id}", h.GetMember)
		r.Post("/{id}/status", h.SetMemberStatus)
	})

	r.Route("/ministries", func(r chi.Router) {
		r.Post("/", h.CreateMinistry)
		r.Get("/", h.ListMinistries)
		r.Get("/{id}", h.GetMinistry)
		r.Post("/{id}/generate-rosters", h.GenerateRosters)
		r.Get("/{id}/rosters", h.ListRosters)
	})

	r.Get("/rosters/{id}", h.GetRoster)
	r.Delete("/rosters/{id}", h.DeleteRoster)

	r.Get("/stats/assignments", h.GetStats)
}
