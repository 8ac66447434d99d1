package livehttp

import (
	"context"
	"errors"
	"net/http"
	"time"

	"okxpos/internal/logger"
	"okxpos/internal/visual"

	"github.com/gin-gonic/gin"
)

// Server serves the dashboard page, its JSON API and the live socket.
type Server struct {
	addr   string
	router *gin.Engine
	hub    *Hub
}

// ServerConfig describes the live HTTP server dependencies.
type ServerConfig struct {
	Addr       string
	Controller Controller
	Hub        *Hub
}

func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Controller == nil {
		return nil, errors.New("live http server requires a controller")
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.Hub == nil {
		cfg.Hub = NewHub()
	}
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	if err := registerDashboardRoutes(router); err != nil {
		return nil, err
	}
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "running": cfg.Controller.Running()})
	})
	router.GET("/chart", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		if err := visual.Render(c.Writer, cfg.Controller.Snapshot().Series); err != nil {
			logger.Errorf("render chart failed: %v", err)
			c.Status(http.StatusInternalServerError)
		}
	})
	router.GET("/ws", cfg.Hub.handle(cfg.Controller))
	NewRouter(cfg.Controller).Register(router.Group("/api"))

	return &Server{addr: cfg.Addr, router: router, hub: cfg.Hub}, nil
}

// requestLogger records API calls at debug level.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery
		client := c.ClientIP()
		c.Next()
		dur := time.Since(start)
		status := c.Writer.Status()
		fullPath := path
		if query != "" {
			fullPath = path + "?" + query
		}
		logger.Debugf("HTTP %s %s status=%d ip=%s dur=%s", method, fullPath, status, client, dur)
	}
}

func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.addr
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	if s == nil {
		return nil
	}
	srv := &http.Server{Addr: s.addr, Handler: s.router, ReadHeaderTimeout: 10 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	logger.Infof("dashboard listening on %s", s.addr)

	select {
	case <-ctx.Done():
		s.hub.Close()
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shCtx)
		return nil
	case err := <-errCh:
		return err
	}
}
