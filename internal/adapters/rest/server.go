package rest_adapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/hendrikderyck/steven-car-company/internal/core/port"
	usecases_port "github.com/hendrikderyck/steven-car-company/internal/core/port/usecases"
)

// Server wires the HTTP surface onto the usecases.
type Server struct {
	router *chi.Mux

	fetchAllListings   usecases_port.FetchAllListingsPort
	buildCars          usecases_port.BuildCarsPort
	fetchListingDetail usecases_port.FetchListingDetailPort
	timeFetcher        port.TimeFetcherPort
}

func NewServer(
	logger port.LoggerPort,
	fetchAllListings usecases_port.FetchAllListingsPort,
	buildCars usecases_port.BuildCarsPort,
	fetchListingDetail usecases_port.FetchListingDetailPort,
	timeFetcher port.TimeFetcherPort,
) *Server {
	s := &Server{
		router:             chi.NewRouter(),
		fetchAllListings:   fetchAllListings,
		buildCars:          buildCars,
		fetchListingDetail: fetchListingDetail,
		timeFetcher:        timeFetcher,
	}

	s.router.Use(middleware.RealIP)
	s.router.Use(LoggerMiddleware(logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Trace-Id"},
		MaxAge:         300,
	}))

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.Get("/health", s.handleHealth)

	// Legacy endpoint kept for the static site build.
	s.router.Get("/api/listings.json", s.handleListingsJSON)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/cars", s.handleGetCars)
		r.Get("/cars/{id}/detail", s.handleGetCarDetail)
		r.Get("/time", s.handleGetTime)
	})
}

// Router exposes the configured mux so the app can mount it on an
// http.Server it owns.
func (s *Server) Router() http.Handler {
	return s.router
}
