// Package httptransport builds the HTTP server hosting the activities
// API and the static signup site.
package httptransport

import (
	"net/http"
	"time"
)

// ServerConfig contains timeout tunables for the activities server.
// Values come from config.Load; zero values disable the timeout.
type ServerConfig struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// NewServer creates *http.Server with the provided handler chain.
func NewServer(cfg ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Address,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}
