package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/shikha-bhatt/ct-hackathon-2025/internal/config"
	"github.com/shikha-bhatt/ct-hackathon-2025/internal/travel"
)

type Server struct {
	cfg     config.ServerConfig
	server  *http.Server
	planner *travel.Planner
}

func New(cfg config.Config, planner *travel.Planner) *Server {
	s := &Server{
		cfg:     cfg.Server,
		planner: planner,
	}

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(cfg.Server.WriteTimeout))

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/forex", s.handleForex)
		r.Post("/cards", s.handleCards)
		r.Post("/visa", s.handleVisa)
		r.Post("/sim", s.handleSim)
		r.Post("/itinerary", s.handleItinerary)
		r.Get("/health", s.handleHealth)
	})

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s
}

func (s *Server) Run() error {
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("starting server", "address", s.server.Addr)
		serverErrors <- s.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		slog.Info("starting shutdown", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
	}

	return nil
}
