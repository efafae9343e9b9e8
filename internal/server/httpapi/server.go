// Package httpapi exposes the content collections and admin operations over a
// JSON HTTP API. Handlers are thin translators: bind the request, call the
// matching service, map the outcome to a status code.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/soniwriter/dreamdiary/internal/logging"
	"github.com/soniwriter/dreamdiary/internal/server/config"
	"github.com/soniwriter/dreamdiary/internal/server/services"
)

// Server wires the gin router and the underlying http.Server.
type Server struct {
	cfg    *config.Config
	logger logging.Logger

	poems    *services.PoemService
	movies   *services.MovieService
	books    *services.BookService
	personal *services.PersonalInfoService
	auth     *services.AuthService
	seeder   *services.SeedService

	httpServer *http.Server
}

func NewServer(cfg *config.Config, logger logging.Logger,
	poems *services.PoemService, movies *services.MovieService, books *services.BookService,
	personal *services.PersonalInfoService, auth *services.AuthService, seeder *services.SeedService,
) *Server {
	s := &Server{
		cfg:      cfg,
		logger:   logger,
		poems:    poems,
		movies:   movies,
		books:    books,
		personal: personal,
		auth:     auth,
		seeder:   seeder,
	}
	s.httpServer = &http.Server{
		Addr:    cfg.EndpointAddr,
		Handler: s.Router(),
	}
	return s
}

// Router builds the full route table. Mutating routes pass through the auth
// middleware, which only enforces tokens when RequireAuth is set.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(requestLogger(s.logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{s.cfg.CORSOrigin},
		AllowMethods:     []string{"POST", "GET", "OPTIONS", "PUT", "DELETE"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/health", s.healthCheck)

	api := r.Group("/api")

	api.GET("/poems", s.listPoems)
	api.GET("/poems/:id", s.getPoem)
	api.GET("/movies", s.listMovies)
	api.GET("/movies/:id", s.getMovie)
	api.GET("/books", s.listBooks)
	api.GET("/books/:id", s.getBook)
	api.GET("/personal", s.getPersonalInfo)

	api.POST("/auth/login", s.login)
	api.POST("/auth/refresh", s.refresh)
	api.POST("/auth/create-admin", s.createAdmin)
	api.POST("/create-admin", s.createAdmin)
	api.GET("/create-admin", s.adminStatus)

	mut := api.Group("")
	mut.Use(requireAuth(s.cfg, s.auth))

	mut.POST("/poems", s.createPoem)
	mut.PUT("/poems/:id", s.updatePoem)
	mut.DELETE("/poems/:id", s.deletePoem)
	mut.POST("/movies", s.createMovie)
	mut.PUT("/movies/:id", s.updateMovie)
	mut.DELETE("/movies/:id", s.deleteMovie)
	mut.POST("/books", s.createBook)
	mut.PUT("/books/:id", s.updateBook)
	mut.DELETE("/books/:id", s.deleteBook)
	mut.POST("/personal", s.setPersonalInfo)
	mut.POST("/seed", s.seed)

	return r
}

// Run serves until ListenAndServe returns. Closed-server errors after a
// graceful shutdown are not reported.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info(ctx, "http server starting", "addr", s.cfg.EndpointAddr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
