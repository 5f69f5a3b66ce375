package server

import (
	"fmt"
	"net"
	"net/http"
	"time"
)

// Run blocks serving handler on host:port.
func Run(host string, port int, handler http.Handler) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort(host, fmt.Sprintf("%d", port)),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}
