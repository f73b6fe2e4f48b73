package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Domenick1991/tripplanner/config"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const swaggerSpec = "/swagger/planner.swagger.json"

// Handler is implemented by every gin handler mounted under /api.
type Handler interface {
	Register(router *gin.RouterGroup)
}

type Servers struct {
	grpcServer *grpc.Server
	health     *health.Server
	httpServer *http.Server
}

// Run starts the HTTP API and, when an address is configured, the gRPC health
// server. It blocks until ctx is canceled or a server fails.
func Run(ctx context.Context, cfg *config.Config, handlers ...Handler) error {
	s := newServers(cfg, handlers...)

	errCh := make(chan error, 2)

	if s.grpcServer != nil {
		lis, err := net.Listen("tcp", cfg.GRPC.Address)
		if err != nil {
			return fmt.Errorf("listen gRPC %s: %w", cfg.GRPC.Address, err)
		}
		go func() { errCh <- s.grpcServer.Serve(lis) }()
		log.Info().Str("addr", cfg.GRPC.Address).Msg("gRPC health server started")
	}

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Address).Msg("HTTP server started")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if s.grpcServer != nil {
			s.health.Shutdown()
			s.grpcServer.GracefulStop()
		}
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		log.Info().Msg("Servers stopped")
		return nil
	}
}

func newServers(cfg *config.Config, handlers ...Handler) *Servers {
	s := &Servers{
		httpServer: &http.Server{
			Addr:    cfg.HTTP.Address,
			Handler: NewRouter(cfg, handlers...),
		},
	}

	if cfg.GRPC.Address != "" {
		s.grpcServer = grpc.NewServer()
		s.health = health.NewServer()
		s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
		healthpb.RegisterHealthServer(s.grpcServer, s.health)
	}
	return s
}

// NewRouter mounts handlers under /api and, when a swagger directory is
// configured, serves the API docs at /docs.
func NewRouter(cfg *config.Config, handlers ...Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	for _, h := range handlers {
		h.Register(api)
	}

	if cfg.HTTP.SwaggerDir != "" {
		router.Static("/swagger", cfg.HTTP.SwaggerDir)
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL(swaggerSpec))))
	}
	return router
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("HTTP request")
	}
}
