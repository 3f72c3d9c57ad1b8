package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"asthma-journal/internal/apperror"

	"go.uber.org/zap"
)

var errTrailingData = errors.New("unexpected data after JSON body")

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Error("unable to write response stream", zap.Error(err))
	}
}

// fail writes a client error as-is and hides everything else behind a 500.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if appErr, ok := apperror.As(err); ok {
		h.log.Warn("request rejected",
			zap.String("path", r.URL.Path),
			zap.String("reason", appErr.Message))
		h.writeJSON(w, appErr.Status, map[string]string{"error": appErr.Message})
		return
	}
	h.log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	h.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": "internal server error",
	})
}

// decodeFields reads the request body as a JSON object. An empty,
// malformed, non-object or oversized body, or one with anything after the
// object, yields no fields.
func decodeFields(log *zap.Logger, r *http.Request) map[string]json.RawMessage {
	if r.Body == nil {
		return nil
	}
	var fields map[string]json.RawMessage
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(&fields)
	if err == nil {
		if extra := dec.Decode(new(json.RawMessage)); !errors.Is(extra, io.EOF) {
			err = errTrailingData
		}
	}
	if err != nil {
		if !errors.Is(err, io.EOF) {
			log.Debug("ignoring undecodable body", zap.String("path", r.URL.Path), zap.Error(err))
		}
		return nil
	}
	return fields
}
