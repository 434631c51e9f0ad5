package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"gitlab.com/gitlab-org/shader-preview/internal/netutil"
)

func (a *theApp) newServer(handler http.Handler) *http.Server {
	return &http.Server{
		Handler:           handler,
		ReadTimeout:       a.config.Server.ReadTimeout,
		ReadHeaderTimeout: a.config.Server.ReadHeaderTimeout,
		WriteTimeout:      a.config.Server.WriteTimeout,
	}
}

// Run serves handler, and metrics when configured, until ctx is done or a
// listener fails. Open connections get the configured shutdown timeout to
// finish.
func (a *theApp) Run(ctx context.Context, handler http.Handler) error {
	servers, l, err := a.listen(handler)
	if err != nil {
		return err
	}

	a.logBanner(ctx, listenerPort(l))

	return a.serve(ctx, servers)
}

// listen binds every configured listener and returns them along with the
// listener for handler
func (a *theApp) listen(handler http.Handler) (map[*http.Server]net.Listener, net.Listener, error) {
	l, err := net.Listen("tcp", a.config.Listeners.HTTPAddress())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to listen on %s: %w", a.config.Listeners.HTTPAddress(), err)
	}

	log.WithField("listener", l.Addr().String()).Debug("Set up HTTP listener")

	if a.config.General.MaxConns > 0 {
		l = netutil.LimitListener(l, a.config.General.MaxConns)
	}

	servers := map[*http.Server]net.Listener{
		a.newServer(handler): l,
	}

	if a.config.Listeners.Metrics != "" {
		ml, err := net.Listen("tcp", a.config.Listeners.Metrics)
		if err != nil {
			l.Close()
			return nil, nil, fmt.Errorf("failed to listen on %s: %w", a.config.Listeners.Metrics, err)
		}

		log.WithField("listener", ml.Addr().String()).Debug("Set up metrics listener")
		servers[a.newServer(promhttp.Handler())] = ml
	}

	return servers, l, nil
}

func (a *theApp) serve(ctx context.Context, servers map[*http.Server]net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	for server, l := range servers {
		server, l := server, l

		g.Go(func() error {
			if err := server.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}

			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()

		log.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
		defer cancel()

		var result error
		for server := range servers {
			if err := server.Shutdown(shutdownCtx); err != nil {
				log.WithError(err).Error("Failed to shut down server gracefully")
				result = err
			}
		}

		return result
	})

	return g.Wait()
}

func listenerPort(l net.Listener) int {
	if addr, ok := l.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}

	return 0
}
