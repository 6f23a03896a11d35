package httpserver

import (
	"context"
	"fmt"
)

// Run maps all handlers and starts serving on the configured port.
// It blocks until the listener fails.
func (srv *HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return fmt.Errorf("httpserver: map handlers: %w", err)
	}

	addr := fmt.Sprintf(":%d", srv.port)
	srv.l.Infof(context.Background(), "HTTP server listening on %s (env=%s)", addr, srv.environment)

	return srv.gin.Run(addr)
}
