package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"multi-agent-assistant/internal/agent/session"
	"multi-agent-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	origins     []string

	// Assistant
	sessions *session.Manager
	ready    func() error
	started  time.Time
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger         log.Logger
	Port           int
	Mode           string
	Environment    string
	AllowedOrigins []string

	Sessions *session.Manager

	// ReadyCheck reports whether shared backends can serve traffic.
	// Nil means always ready.
	ReadyCheck func() error
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		origins:     cfg.AllowedOrigins,
		sessions:    cfg.Sessions,
		ready:       cfg.ReadyCheck,
		started:     time.Now(),
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the engine, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
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
	if srv.sessions == nil {
		return errors.New("session manager is required")
	}
	return nil
}
