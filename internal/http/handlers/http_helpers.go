package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/db"
)

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any) {
	out, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(out); err != nil {
		logger.Error("failed to write response", "err", err)
	}
}

// idParam parses the {id} route parameter.
func idParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

// writeRepoError maps a data-access failure onto a status code. The
// distinction matters to the UI: a connection-kind error renders as
// "could not reach database", a statement-kind one as an internal error,
// and not-found sentinels as 404. "No data yet" is not an error here; it
// renders as a plain 200 with an empty list.
func writeRepoError(w http.ResponseWriter, err error, notFound error) {
	switch {
	case notFound != nil && errors.Is(err, notFound):
		http.Error(w, notFound.Error(), http.StatusNotFound)
	default:
		writeDBError(w, err)
	}
}

func writeDBError(w http.ResponseWriter, err error) {
	if kind, ok := db.KindOf(err); ok && kind == db.KindConnection {
		http.Error(w, "could not reach database", http.StatusServiceUnavailable)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}
