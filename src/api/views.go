package api

import (
	"net/http"
	"time"
	"whale/src/api/handlers"
	"whale/src/config"
	"whale/src/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router  *chi.Mux
	Handler handlers.Handler
	Logger  *logrus.Logger
}

func NewServer(cfg *config.Config, logger *logrus.Logger) (*Server, error) {
	handler, err := handlers.NewHandler(cfg)
	if err != nil {
		return nil, err
	}
	server := &Server{
		Router:  chi.NewRouter(),
		Handler: *handler,
		Logger:  logger,
	}
	server.InitRoutes()
	return server, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes() {
	s.Router.Use(middleware.RequestID)
	s.Router.Use(middleware.Recoverer)
	s.Router.Use(s.withLogger)

	s.Router.Get("/alive", handlers.Healthcheck)

	s.Router.Get("/GetTopCryptos", s.Handler.GetTopCryptos)
	s.Router.Post("/GetTopCryptos", s.Handler.GetTopCryptos)
	s.Router.Post("/ProcessTransaction", s.Handler.ProcessTransaction)
}

// withLogger attaches the process logger to every request context.
func (s *Server) withLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := utils.WithLogger(r.Context(), s.Logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func NewHTTPServer(server *Server, port string) *http.Server {
	httpServer := &http.Server{
		Addr:         ":" + port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Handler:      server,
	}
	return httpServer
}
