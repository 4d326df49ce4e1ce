package server

import (
	"github.com/bokysan/base57/internal/args"
	"github.com/bokysan/base57/internal/logging"
	"github.com/go-chi/chi/middleware"
	"net"
	"net/http"
)

type NextHandlerFunc func(next http.Handler) http.Handler

// GetRequestLogger returns the access log middleware matching the configured log format
func GetRequestLogger(address *net.TCPAddr) (logger NextHandlerFunc) {
	if args.General.LogFormat == "json" {
		logger = middleware.RequestLogger(
			&logging.JSONLogFormatter{
				ServerAddress: address,
			},
		)
	} else {
		logger = middleware.RequestLogger(
			&middleware.DefaultLogFormatter{
				Logger:  &logging.ChiLogWriter{},
				NoColor: logging.NoColors(),
			},
		)
	}

	return
}
