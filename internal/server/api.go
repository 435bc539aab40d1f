package server

import (
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-onboarding/pkg/mask"
	"github.com/goliatone/go-onboarding/pkg/model"
	"github.com/goliatone/go-onboarding/pkg/toast"
	"github.com/goliatone/go-onboarding/pkg/validation"
)

type maskRequest struct {
	Spec  string `json:"spec"`
	Value string `json:"value"`
}

type maskResult struct {
	Masked string `json:"masked"`
	Raw    string `json:"raw"`
}

func (s *Server) applyMask(w http.ResponseWriter, r *http.Request) {
	var req maskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	spec := mask.Spec(strings.TrimSpace(req.Spec))
	if s.metrics != nil {
		label := string(spec)
		if !spec.Preset() && spec != "" {
			label = "pattern"
		}
		s.metrics.IncrementMask(label)
	}
	writeJSON(w, http.StatusOK, model.OK(maskResult{
		Masked: mask.Apply(spec, req.Value),
		Raw:    mask.Digits(req.Value),
	}))
}

type validateRequest struct {
	Kind         string              `json:"kind"`
	Value        string              `json:"value"`
	PersonalInfo *model.PersonalInfo `json:"personalInfo"`
}

type validateResult struct {
	Valid  bool                    `json:"valid"`
	Errors []model.ValidationError `json:"errors,omitempty"`
}

func (s *Server) validate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if req.PersonalInfo != nil {
		issues := validation.ValidatePersonalInfo(*req.PersonalInfo)
		s.recordIssues(issues)
		writeJSON(w, http.StatusOK, model.OK(validateResult{
			Valid:  issues.Valid(),
			Errors: []model.ValidationError(issues),
		}))
		return
	}

	if strings.TrimSpace(req.Kind) == "" {
		writeError(w, r, errMissingInput)
		return
	}
	ok, err := validation.Validate(validation.Kind(req.Kind), req.Value)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !ok && s.metrics != nil {
		s.metrics.IncrementValidationFailure(strings.ToLower(strings.TrimSpace(req.Kind)))
	}
	writeJSON(w, http.StatusOK, model.OK(validateResult{Valid: ok}))
}

func (s *Server) recordIssues(issues validation.Issues) {
	if s.metrics == nil {
		return
	}
	for field := range issues.ByField() {
		s.metrics.IncrementValidationFailure(field)
	}
}

type stepsResult struct {
	Steps       []model.OnboardingStep `json:"steps"`
	CurrentStep int                    `json:"currentStep"`
	Progress    int                    `json:"progress"`
	IsComplete  bool                   `json:"isComplete"`
}

func (s *Server) listSteps(w http.ResponseWriter, _ *http.Request) {
	status := s.flow.Status()
	writeJSON(w, http.StatusOK, model.OK(stepsResult{
		Steps:       s.flow.Steps(),
		CurrentStep: status.CurrentStep,
		Progress:    status.Progress(),
		IsComplete:  status.IsComplete,
	}))
}

// maxToastMillis is the largest durationMs that fits a time.Duration.
const maxToastMillis = math.MaxInt64 / int64(time.Millisecond)

type toastRequest struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Variant     toast.Variant `json:"variant"`
	DurationMS  *int64        `json:"durationMs"`
}

func (s *Server) listToasts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.OK(toast.FromContext(r.Context()).Toasts()))
}

func (s *Server) addToast(w http.ResponseWriter, r *http.Request) {
	var req toastRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, r, errMissingTitle)
		return
	}

	msg := toast.Message{
		Title:       req.Title,
		Description: req.Description,
		Variant:     req.Variant.Normalize(),
		Duration:    s.toastDuration(),
	}
	if req.DurationMS != nil {
		ms := *req.DurationMS
		if ms > maxToastMillis || ms < -maxToastMillis {
			writeError(w, r, errDurationRange)
			return
		}
		msg.Duration = toast.Duration(time.Duration(ms) * time.Millisecond)
	}

	added, err := toast.FromContext(r.Context()).Add(msg)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, model.OK(added))
}

func (s *Server) removeToast(w http.ResponseWriter, r *http.Request) {
	removed := toast.FromContext(r.Context()).Remove(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, model.OK(map[string]bool{"removed": removed}))
}

// toastDuration is the configured default, or nil for the provider default.
func (s *Server) toastDuration() *time.Duration {
	if s.cfg.App.ToastDuration <= 0 {
		return nil
	}
	return toast.Duration(s.cfg.App.ToastDuration)
}

func (s *Server) openAPI(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.spec)
}
