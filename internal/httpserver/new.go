package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"foodhub-support/internal/chat"
	"foodhub-support/internal/middleware"
	"foodhub-support/internal/order/repository"
	"foodhub-support/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw     *middleware.Middleware
	chatUC chat.UseCase

	// orderRepo backs the readiness probe.
	orderRepo repository.Repository
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware  *middleware.Middleware
	ChatUseCase chat.UseCase
	OrderRepo   repository.Repository
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
		mw:          cfg.Middleware,
		chatUC:      cfg.ChatUseCase,
		orderRepo:   cfg.OrderRepo,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat usecase is required")
	}
	if srv.mw == nil {
		return errors.New("middleware is required")
	}
	return nil
}
