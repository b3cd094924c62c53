// Package web provides the plumbing for the emailaddr RESTful API.
package web

import (
	"context"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/inbucket/emailaddr/pkg/addrstore"
	"github.com/inbucket/emailaddr/pkg/config"
)

var (
	// Router sends incoming requests to the correct handler function.
	Router = mux.NewRouter()

	webConfig      config.Web
	store          *addrstore.Store
	server         *http.Server
	listener       net.Listener
	globalShutdown chan bool
)

// Initialize sets up things for unit tests or the Start() method.
func Initialize(cfg config.Web, shutdownChan chan bool, s *addrstore.Store) {
	webConfig = cfg
	globalShutdown = shutdownChan
	store = s
}

// Start begins listening for HTTP requests.
func Start(ctx context.Context) {
	server = &http.Server{
		Addr:         webConfig.Addr,
		Handler:      requestLoggingWrapper(Router),
		ReadTimeout:  webConfig.ReadTimeout,
		WriteTimeout: webConfig.WriteTimeout,
	}

	// We don't use ListenAndServe because it lacks a way to close the listener.
	log.Info().Str("module", "web").Str("addr", webConfig.Addr).Msg("HTTP listening")
	var err error
	listener, err = net.Listen("tcp", webConfig.Addr)
	if err != nil {
		log.Error().Str("module", "web").Err(err).Msg("HTTP failed to start TCP listener")
		emergencyShutdown()
		return
	}
	go serve()

	// Wait for shutdown.
	<-ctx.Done()
	log.Debug().Str("module", "web").Msg("HTTP server shutting down on request")

	// Closing the listener will cause the serve() go routine to exit.
	if err := listener.Close(); err != nil {
		log.Error().Str("module", "web").Err(err).Msg("Failed to close HTTP listener")
	}
}

// serve begins serving HTTP requests, blocking until the listener is closed.
func serve() {
	err := server.Serve(listener)
	if err != nil && err != http.ErrServerClosed {
		log.Error().Str("module", "web").Err(err).Msg("HTTP server failed")
		emergencyShutdown()
	}
}

func emergencyShutdown() {
	select {
	case <-globalShutdown:
	default:
		close(globalShutdown)
	}
}

// requestLoggingWrapper returns middleware that logs client requests.
func requestLoggingWrapper(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		log.Debug().Str("module", "web").Str("remote", req.RemoteAddr).
			Str("method", req.Method).Str("path", req.RequestURI).Msg("Request")
		next.ServeHTTP(w, req)
	})
}
