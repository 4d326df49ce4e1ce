package server

import (
	"context"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"net"
	"net/http"
	"time"
)

const (
	// DefaultAddress is where the server listens unless told otherwise
	DefaultAddress = ":8057"
	// DefaultMaxBodySize limits the size of request bodies, in bytes
	DefaultMaxBodySize = 10 << 20
	// ShutdownTimeout is how long in-flight requests are given to finish on shutdown
	ShutdownTimeout = 5 * time.Second
)

// HttpServer serves the encode and decode endpoints over HTTP
type HttpServer struct {
	Address     string
	MaxBodySize int64

	server   *http.Server
	listener net.Listener
	done     chan error
}

func NewHttpServer(address string, maxBodySize int64) *HttpServer {
	if address == "" {
		address = DefaultAddress
	}
	if maxBodySize <= 0 {
		maxBodySize = DefaultMaxBodySize
	}
	return &HttpServer{
		Address:     address,
		MaxBodySize: maxBodySize,
	}
}

func (ws *HttpServer) String() string {
	if ws.listener != nil {
		return "http://" + ws.listener.Addr().String()
	}
	return "http://" + ws.Address
}

// Router returns the handler of all the endpoints, wrapped in the middleware. The address is only used by
// the JSON access log.
func (ws *HttpServer) Router(address *net.TCPAddr) http.Handler {
	router := chi.NewRouter()
	router.Use(
		middleware.RequestID, // Set Request Id on all requests
		middleware.RealIP,    // Extract actual IP if running behind reverse proxy
		GetRequestLogger(address),
		middleware.Recoverer, // Recover from panics without crashing the server
	)

	router.Get("/healthz", handleHealth)
	router.Post("/encode", ws.handleEncode)
	router.Post("/decode", ws.handleDecode)

	return router
}

// Startup starts listening and serves requests in the background until Shutdown is called
func (ws *HttpServer) Startup() error {
	ln, err := net.Listen("tcp", ws.Address)
	if err != nil {
		return errors.Wrapf(err, "Could not listen on %v", ws.Address)
	}
	ws.listener = ln

	address, _ := ln.Addr().(*net.TCPAddr)
	ws.server = &http.Server{
		Handler: ws.Router(address),
	}
	ws.done = make(chan error, 1)

	go func() {
		log.Infof("Starting HTTP server at %v", ws)
		err := ws.server.Serve(ln)
		if err == http.ErrServerClosed {
			err = nil
		} else {
			err = errors.WithStack(err)
			log.WithError(err).Errorf("Could not start the server %v", err)
		}
		ws.done <- err
	}()

	return nil
}

// Addr returns the address the server listens on, once it has been started
func (ws *HttpServer) Addr() net.Addr {
	if ws.listener == nil {
		return nil
	}
	return ws.listener.Addr()
}

// Done is signalled with the serving error, or nil, once the server stops
func (ws *HttpServer) Done() <-chan error {
	return ws.done
}

// Shutdown stops the server, giving requests in progress ShutdownTimeout to finish
func (ws *HttpServer) Shutdown() error {
	if ws.server == nil {
		return nil
	}
	log.Infof("Shutting down HTTP server at %v", ws)

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return errors.WithStack(ws.server.Shutdown(ctx))
}
