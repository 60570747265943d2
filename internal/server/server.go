// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/matrixgen/internal/config"
	"github.com/katalvlaran/matrixgen/internal/ops"
	"github.com/katalvlaran/matrixgen/internal/registry"
)

const (
	headerRequestID = "X-Request-ID"
	ctxRequestID    = "request_id"

	maxBodyBytes      = 4 << 20
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Server serves the HTTP API over one ops.Engine and its registry.
type Server struct {
	cfg     config.Config
	eng     *ops.Engine
	reg     *registry.Registry
	log     *slog.Logger
	metrics *metrics
	router  *gin.Engine
}

// New wires routes, middleware and metrics. eng must carry a registry.
func New(cfg config.Config, eng *ops.Engine, logger *slog.Logger) (*Server, error) {
	if eng == nil || eng.Registry() == nil {
		return nil, errors.New("server: engine with a registry is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg: cfg,
		eng: eng,
		reg: eng.Registry(),
		log: logger.With("component", "server"),
	}
	s.metrics = newMetrics(func() float64 { return float64(s.reg.Len()) })

	r := gin.New()
	r.Use(gin.Recovery(), s.observe(), limitBody(maxBodyBytes))
	r.GET("/healthz", s.handleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))
	RegisterRoutes(r.Group("/v1"), s)
	s.router = r

	return s, nil
}

// RegisterRoutes mounts the versioned API on rg.
func RegisterRoutes(rg *gin.RouterGroup, s *Server) {
	rg.POST("/ops/:op", s.handleOp(ops.Algebra))
	rg.POST("/linalg/:op", s.handleOp(ops.Linalg))
	rg.POST("/random", s.handleRandom)

	m := rg.Group("/matrices")
	m.GET("", s.handleList)
	m.PUT("/:name", s.handlePut)
	m.GET("/:name", s.handleGet)
	m.DELETE("/:name", s.handleDelete)

	rg.GET("/history", s.handleHistory)
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.router }

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.log.Info("listening", "addr", srv.Addr, "backend", s.eng.Backend().Name())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
		s.log.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
		return nil
	}
}

// observe tags the request with an id, then records metrics and a log line.
func (s *Server) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxRequestID, id)
		c.Header(headerRequestID, id)

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		took := time.Since(start)
		s.metrics.requests.WithLabelValues(route, c.Request.Method, strconv.Itoa(status)).Inc()
		s.metrics.latency.WithLabelValues(route).Observe(took.Seconds())

		lvl := slog.LevelDebug
		if status >= http.StatusInternalServerError {
			lvl = slog.LevelError
		} else if status >= http.StatusBadRequest {
			lvl = slog.LevelInfo
		}
		s.log.Log(c.Request.Context(), lvl, "request",
			"request_id", id, "method", c.Request.Method, "route", route,
			"status", status, "took", took)
	}
}

func limitBody(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		}
		c.Next()
	}
}

// fail writes the classified error response.
func (s *Server) fail(c *gin.Context, err error) {
	status, code := classify(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", "request_id", c.GetString(ctxRequestID), "error", err)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: err.Error(), Code: code})
}

func (s *Server) badBody(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Error:   "invalid request body",
		Code:    codeInvalidRequest,
		Details: err.Error(),
	})
}
