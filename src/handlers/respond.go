package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"fraudwatch-server/src/fraud"
	"fraudwatch-server/src/logger"
)

// errBadRequest marks query parameter problems.
var errBadRequest = errors.New("bad request")

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps core and storage errors to a status code and logs them on
// the request logger.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromContext(r.Context())

	var (
		empty   *fraud.EmptyInputError
		missing *fraud.MissingColumnError
		invalid *fraud.InvalidAmountError
	)
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errBadRequest), errors.Is(err, fraud.ErrUnknownMethod):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.As(err, &empty):
		status = http.StatusUnprocessableEntity
		msg = "no transactions match the selected filters"
	case errors.As(err, &missing), errors.As(err, &invalid):
		msg = "transaction data is malformed: " + err.Error()
	}

	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}
	writeJSON(w, status, map[string]string{"error": msg})
}
