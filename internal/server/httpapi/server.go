// Package httpapi exposes the moderation workflow over HTTP.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/dmitrijs2005/moviegate/internal/logging"
	"github.com/dmitrijs2005/moviegate/internal/server/movies"
)

const shutdownTimeout = 5 * time.Second

type HTTPServer struct {
	address string
	logger  logging.Logger
	movies  *movies.Service
}

func NewHTTPServer(a string, l logging.Logger, ms *movies.Service) (*HTTPServer, error) {
	return &HTTPServer{
		address: a,
		logger:  l.With("module", "http_server"),
		movies:  ms,
	}, nil
}

// Handler builds the full route table. Exposed so tests can drive the
// server through httptest without binding a port.
func (s *HTTPServer) Handler() http.Handler {
	router := httprouter.New()

	router.POST("/movies/", s.submitMovie)
	router.GET("/movies/", s.listMovies)
	router.POST("/approve_movie/:movie_id", s.approveMovie)
	router.GET("/ping", s.ping)

	return s.logRequests(router)
}

func (s *HTTPServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{Handler: s.Handler()}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
