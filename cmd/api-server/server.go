package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"
)

// serveHTTP listens on the configured address and serves until ctx is done.
func (app *application) serveHTTP(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmtHTTPAddr(app.config.http.host, app.config.http.port))
	if err != nil {
		return err
	}

	return app.serve(ctx, ln)
}

// serve runs the API on ln. Cancelling ctx drains in-flight requests for up
// to the configured shutdown period; serve then returns nil.
func (app *application) serve(ctx context.Context, ln net.Listener) error {
	app.configureSwagger()

	srv := &http.Server{
		Handler:      app.routes(),
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelWarn),
		IdleTimeout:  app.config.http.idleTimeout,
		ReadTimeout:  app.config.http.readTimeout,
		WriteTimeout: app.config.http.writeTimeout,
		BaseContext:  func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	addr := ln.Addr().String()
	log := app.serverLogger(slog.Group("server", "addr", addr))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting server")

		err := srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-gctx.Done()

		log.Info("shutting down server", "period", app.config.http.shutdownPeriod)

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), app.config.http.shutdownPeriod)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("stopped server")
	return nil
}

func (app *application) serverLogger(args ...any) *slog.Logger {
	args = append(args, "module", "server")
	return app.logger.With(args...)
}

func fmtHTTPAddr(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
