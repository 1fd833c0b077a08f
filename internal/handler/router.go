package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ScienHAC/ventspace/internal/handler/chat"
	"github.com/ScienHAC/ventspace/internal/handler/emergency"
	"github.com/ScienHAC/ventspace/internal/handler/garden"
	"github.com/ScienHAC/ventspace/internal/handler/mood"
	middlewarePkg "github.com/ScienHAC/ventspace/internal/middleware"
	gardenModel "github.com/ScienHAC/ventspace/internal/model/garden"
	moodModel "github.com/ScienHAC/ventspace/internal/model/mood"
	"github.com/ScienHAC/ventspace/internal/observability"
	ventService "github.com/ScienHAC/ventspace/internal/service/vent"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(ventSvc *ventService.Service, gardenStore gardenModel.Store, moodStore *moodModel.Store) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	chatHandler := chat.New(ventSvc)
	moodHandler := mood.New(moodStore)
	gardenHandler := garden.New(gardenStore)
	emergencyHandler := emergency.New()

	r.Route("/api", func(api chi.Router) {
		chatHandler.RegisterRoutes(api)
		moodHandler.RegisterRoutes(api)
		gardenHandler.RegisterRoutes(api)
		emergencyHandler.RegisterRoutes(api)
	})

	r.Handle("/metrics", observability.MetricsHandler())

	return r
}
