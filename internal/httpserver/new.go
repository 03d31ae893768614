package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	listHTTP "taskpilot/internal/list/delivery/http"
	"taskpilot/internal/middleware"
	taskHTTP "taskpilot/internal/task/delivery/http"
	"taskpilot/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Domains
	listHandler listHTTP.Handler
	taskHandler taskHTTP.Handler

	// Cross-cutting
	middleware middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	ListHandler listHTTP.Handler
	TaskHandler taskHTTP.Handler

	Middleware middleware.Middleware
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		listHandler: cfg.ListHandler,
		taskHandler: cfg.TaskHandler,
		middleware:  cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.listHandler == nil {
		return errors.New("list handler is required")
	}
	if srv.taskHandler == nil {
		return errors.New("task handler is required")
	}
	return nil
}
