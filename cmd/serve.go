package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"livetv/internal/server"
)

// Serve runs the HTTP API until the context is cancelled.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	if err := r.load(ctx); err != nil {
		return err
	}

	host := r.config.Server.Host
	if flag := cmd.String("host"); flag != "" {
		host = flag
	}
	port := r.config.Server.Port
	if flag := int(cmd.Int("port")); flag != 0 {
		port = flag
	}
	addr := fmt.Sprintf("%s:%d", host, port)

	router := server.NewBasicRouter()
	router.Use(
		server.Logging(r.logger),
		server.RateLimit(r.config.Server.RateLimit, r.config.Server.RateBurst),
	)
	router.Handler(server.NewChannelHandler(r.store, r.engine, r.logger))

	return server.Serve(ctx, addr, router, r.logger)
}
