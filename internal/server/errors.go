package server

import (
	"encoding/json"
	"errors"
	"net/http"

	onboarding "github.com/goliatone/go-onboarding"
	"github.com/goliatone/go-onboarding/internal/logger"
	"github.com/goliatone/go-onboarding/pkg/model"
	"github.com/goliatone/go-onboarding/pkg/toast"
	"github.com/goliatone/go-onboarding/pkg/ui"
	"github.com/goliatone/go-onboarding/pkg/validation"
)

var (
	errMalformedBody = errors.New("malformed request body")
	errMissingTitle  = errors.New("toast title is required")
	errMissingInput  = errors.New("kind and value or personalInfo are required")
	errDurationRange = errors.New("toast durationMs is out of range")
)

var errorStatusMap = map[error]int{
	errMalformedBody:                  http.StatusBadRequest,
	errMissingTitle:                   http.StatusBadRequest,
	errMissingInput:                   http.StatusBadRequest,
	errDurationRange:                  http.StatusBadRequest,
	validation.ErrUnknownKind:         http.StatusBadRequest,
	ui.ErrUnknownAction:               http.StatusBadRequest,
	ui.ErrActionDisabled:              http.StatusConflict,
	onboarding.ErrUnknownStep:         http.StatusNotFound,
	onboarding.ErrStepLocked:          http.StatusForbidden,
	onboarding.ErrInvalidPersonalInfo: http.StatusUnprocessableEntity,
	toast.ErrClosed:                   http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}
	writeJSON(w, status, model.Fail[any](err))
}

func decodeJSON(w http.ResponseWriter, r *http.Request, target any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(target); err != nil {
		return errors.Join(errMalformedBody, err)
	}
	return nil
}
