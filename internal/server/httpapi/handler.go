package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/dmitrijs2005/moviegate/internal/common"
	"github.com/dmitrijs2005/moviegate/internal/server/movies"
)

// Response messages are fixed strings; clients match on them.
const (
	msgSubmitted = "Movie submitted for approval."
	msgApproved  = "Movie approved and moved to final bucket."
	msgNotFound  = "Movie not found or already approved."
	msgInternal  = "Internal server error."
)

type envelope map[string]any

func (s *HTTPServer) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error(context.Background(), "error writing response", "error", err.Error())
	}
}

// writeDetail reports a failure in a {"detail": ...} envelope.
func (s *HTTPServer) writeDetail(w http.ResponseWriter, status int, detail string) {
	s.writeJSON(w, status, envelope{"detail": detail})
}

func (s *HTTPServer) submitMovie(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {

	ctx := r.Context()

	var m movies.Movie
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		s.writeDetail(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	id, err := s.movies.Submit(ctx, m)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		s.writeDetail(w, http.StatusInternalServerError, msgInternal)
		return
	}

	s.logger.Info(ctx, "Movie submitted", "movie_id", id)
	s.writeJSON(w, http.StatusCreated, envelope{"message": msgSubmitted, "movie_id": id})
}

func (s *HTTPServer) listMovies(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {

	ctx := r.Context()

	listed, err := s.movies.ListFinal(ctx)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		s.writeDetail(w, http.StatusInternalServerError, msgInternal)
		return
	}

	s.writeJSON(w, http.StatusOK, listed)
}

func (s *HTTPServer) approveMovie(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {

	ctx := r.Context()
	id := ps.ByName("movie_id")

	err := s.movies.Approve(ctx, id)

	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.writeDetail(w, http.StatusBadRequest, msgNotFound)
			return
		}
		s.logger.Error(ctx, err.Error())
		s.writeDetail(w, http.StatusInternalServerError, msgInternal)
		return
	}

	s.logger.Info(ctx, "Movie approved", "movie_id", id)
	s.writeJSON(w, http.StatusOK, envelope{"message": msgApproved})
}

func (s *HTTPServer) ping(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.writeJSON(w, http.StatusOK, envelope{"status": "OK"})
}
