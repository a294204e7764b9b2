package http

import (
	"net/http"
	"time"
)

// NewServer arma el *http.Server con timeouts razonables. El shutdown lo
// orquesta el main.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
