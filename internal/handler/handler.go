// Package handler contains HTTP handlers for the journal API.
package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"asthma-journal/internal/apperror"
	"asthma-journal/internal/codegen"
	"asthma-journal/internal/model"
	"asthma-journal/internal/store"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// maxCodeAttempts bounds regeneration when a fresh code collides with an issued one.
const maxCodeAttempts = 16

var errNoFreeCode = errors.New("no unused code found")

// Handler wraps HTTP handlers with logger, store and validator.
type Handler struct {
	log      *zap.Logger
	store    store.Store
	validate *validator.Validate
	newCode  codegen.Generator
	now      func() time.Time
}

// New creates a new Handler instance.
func New(log *zap.Logger, s store.Store, v *validator.Validate) *Handler {
	return &Handler{
		log:      log,
		store:    s,
		validate: v,
		newCode:  codegen.Generate,
		now:      time.Now,
	}
}

// Healthz is a simple health check endpoint.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// GenerateCode issues a new code and records it. The request body is ignored.
func (h *Handler) GenerateCode(w http.ResponseWriter, r *http.Request) {
	var code string
	err := h.store.Update(func(doc *model.Document) error {
		for attempt := 0; attempt < maxCodeAttempts; attempt++ {
			candidate, err := h.newCode()
			if err != nil {
				return fmt.Errorf("generate code: %w", err)
			}
			if doc.HasCode(candidate) {
				h.log.Debug("generated code already issued, retrying", zap.Int("attempt", attempt+1))
				continue
			}
			code = candidate
			doc.Codes = append(doc.Codes, model.CodeEntry{
				Code:      candidate,
				CreatedAt: model.Timestamp(h.now()),
			})
			return nil
		}
		return errNoFreeCode
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.log.Info("code issued")
	h.writeJSON(w, http.StatusOK, map[string]string{"code": code})
}

// Login accepts a previously issued code and stamps its last login time.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	req := model.NewLoginRequest(decodeFields(h.log, r))
	if err := h.validate.Struct(req); err != nil {
		h.fail(w, r, apperror.FromValidation(err))
		return
	}

	code, _ := req.CodeString()
	err := h.store.Update(func(doc *model.Document) error {
		entry := doc.FindCode(code)
		if entry == nil || code == "" {
			return apperror.InvalidCode
		}
		entry.LastLoginAt = model.Timestamp(h.now())
		return nil
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.log.Info("login succeeded")
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// SaveLog appends a journal entry under a known code. Shape is checked
// before the code lookup.
func (h *Handler) SaveLog(w http.ResponseWriter, r *http.Request) {
	req := model.NewLogRequest(decodeFields(h.log, r))
	if err := h.validate.Struct(req); err != nil {
		h.fail(w, r, apperror.FromValidation(err))
		return
	}

	code, _ := req.CodeString()
	var total int
	err := h.store.Update(func(doc *model.Document) error {
		if code == "" || !doc.HasCode(code) {
			return apperror.UnknownCode
		}
		doc.Logs = append(doc.Logs, model.LogEntry{
			Code:       code,
			Log:        req.Log,
			ReceivedAt: model.Timestamp(h.now()),
		})
		total = len(doc.Logs)
		return nil
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.log.Info("log saved", zap.Int("total_logs", total))
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}
