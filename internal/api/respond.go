package api

import (
	"encoding/json"
	apperrors "dmv/internal/errors"
	"dmv/internal/logging"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error().Err(err).Msg("encoding response")
	}
}

// writeError maps err to a status code. Rule rejections carry a reason code.
func writeError(w http.ResponseWriter, err error) {
	httpErr := apperrors.FromError(err)
	if httpErr.Code >= http.StatusInternalServerError {
		logging.Error().Err(err).Msg("request failed")
	}
	writeJSON(w, httpErr.Code, ErrorResponse{Error: httpErr.Message, Reason: httpErr.Reason})
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, apperrors.ErrBadRequest("Invalid request"))
		return false
	}
	return true
}
