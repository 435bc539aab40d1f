package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	onboarding "github.com/goliatone/go-onboarding"
	"github.com/goliatone/go-onboarding/internal/logger"
	"github.com/goliatone/go-onboarding/pkg/model"
	"github.com/goliatone/go-onboarding/pkg/toast"
	"github.com/goliatone/go-onboarding/pkg/ui"
	"github.com/goliatone/go-onboarding/pkg/validation"
)

const pageTitle = "Agent Onboarding"

func stepURL(id int) string {
	return stepPathPrefix + strconv.Itoa(id)
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, stepURL(s.flow.Status().CurrentStep), http.StatusSeeOther)
}

// openStep resolves the {step} parameter. It writes the response and returns
// false when the step cannot be shown.
func (s *Server) openStep(w http.ResponseWriter, r *http.Request) (model.OnboardingStep, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "step"))
	if err != nil {
		http.NotFound(w, r)
		return model.OnboardingStep{}, false
	}
	step, err := s.flow.Open(id)
	switch {
	case err == nil:
		return step, true
	case errors.Is(err, onboarding.ErrStepLocked):
		http.Redirect(w, r, stepURL(s.flow.Status().CurrentStep), http.StatusSeeOther)
	default:
		http.Error(w, err.Error(), statusFromError(err))
	}
	return model.OnboardingStep{}, false
}

func (s *Server) showStep(w http.ResponseWriter, r *http.Request) {
	step, ok := s.openStep(w, r)
	if !ok {
		return
	}
	s.renderStep(w, r, step, s.flow.FormData().PersonalInfo, nil, http.StatusOK)
}

// stepOutcome collects what a navigation handler decided.
type stepOutcome struct {
	redirect string
	info     model.PersonalInfo
	issues   validation.Issues
}

func (s *Server) submitStep(w http.ResponseWriter, r *http.Request) {
	step, ok := s.openStep(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	action := ui.ActionNext
	if value := r.PostForm.Get("action"); value != "" {
		parsed, err := ui.ParseAction(value)
		if err != nil {
			http.Error(w, err.Error(), statusFromError(err))
			return
		}
		action = parsed
	}

	out := &stepOutcome{}
	nav := s.navigation(step, out, r)
	err := nav.Dispatch(r.Context(), action)

	log := logger.FromRequest(r)
	switch {
	case err == nil:
		log.Info().Int("step", step.ID).Str("action", string(action)).Str("redirect", out.redirect).Msg("step action handled")
		http.Redirect(w, r, out.redirect, http.StatusSeeOther)
	case errors.Is(err, onboarding.ErrInvalidPersonalInfo):
		s.recordIssues(out.issues)
		s.notify(r, toast.Message{
			Title:       "Please fix the highlighted fields",
			Description: strconv.Itoa(len(out.issues)) + " field(s) need attention.",
			Variant:     toast.VariantError,
		})
		s.renderStep(w, r, step, out.info, out.issues, http.StatusUnprocessableEntity)
	default:
		log.Debug().Err(err).Int("step", step.ID).Str("action", string(action)).Msg("step action rejected")
		http.Error(w, err.Error(), statusFromError(err))
	}
}

// navigation builds the step navigation with handlers that record their
// result into out.
func (s *Server) navigation(step model.OnboardingStep, out *stepOutcome, r *http.Request) ui.StepNavigation {
	nav := ui.StepNavigation{
		CurrentStep: step.ID,
		TotalSteps:  model.TotalSteps,
		OnBack: func(context.Context) error {
			out.redirect = stepURL(s.flow.Previous(step.ID))
			return nil
		},
		OnNext: func(context.Context) error {
			if step.ID == model.StepPersonalInfo {
				out.info = personalInfoFromForm(r.PostForm)
				out.issues = s.flow.SubmitPersonalInfo(out.info)
				if !out.issues.Valid() {
					return onboarding.ErrInvalidPersonalInfo
				}
			}
			next, err := s.flow.Complete(step.ID)
			if err != nil {
				return err
			}
			s.notify(r, toast.Message{
				Title:   step.Title + " complete",
				Variant: toast.VariantSuccess,
			})
			out.redirect = stepURL(next)
			return nil
		},
	}
	if step.ID == model.StepPersonalInfo {
		nav.OnSave = func(context.Context) error {
			s.flow.SavePersonalInfo(personalInfoFromForm(r.PostForm))
			s.notify(r, toast.Message{
				Title:       "Draft saved",
				Description: "Your progress has been saved.",
				Variant:     toast.VariantInfo,
			})
			out.redirect = stepURL(step.ID)
			return nil
		}
	}
	return nav
}

// notify posts a toast to the request provider with the configured duration.
func (s *Server) notify(r *http.Request, msg toast.Message) {
	if msg.Duration == nil {
		msg.Duration = s.toastDuration()
	}
	if _, err := toast.FromContext(r.Context()).Add(msg); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("toast dropped")
	}
}

func (s *Server) renderStep(w http.ResponseWriter, r *http.Request, step model.OnboardingStep, info model.PersonalInfo, issues validation.Issues, status int) {
	html, err := s.stepPage(r.Context(), step, info, issues)
	if err != nil {
		s.renderFailed(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(html))
}

// RenderStep renders the page for step id as the flow currently stands,
// without serving a request.
func (s *Server) RenderStep(ctx context.Context, id int) (string, error) {
	step, err := s.flow.Open(id)
	if err != nil {
		return "", err
	}
	return s.stepPage(toast.NewContext(ctx, s.toasts), step, s.flow.FormData().PersonalInfo, nil)
}

func (s *Server) stepPage(ctx context.Context, step model.OnboardingStep, info model.PersonalInfo, issues validation.Issues) (string, error) {
	panel := stepPanel{Step: step}
	if step.ID == model.StepPersonalInfo {
		panel.Fields = personalInfoFields(info, issues)
	}
	body, err := s.renderer.Render(panel)
	if err != nil {
		return "", err
	}

	// Handlers are never dispatched while rendering.
	nav := s.navigation(step, &stepOutcome{}, nil)
	return s.renderer.Render(ui.Page{
		Title:      pageTitle + " | " + step.Title,
		Header:     ui.Header{CurrentStep: step.ID, TotalSteps: model.TotalSteps},
		Body:       body,
		Navigation: &nav,
		Toasts:     ui.ViewportFor(toast.FromContext(ctx), toastsPath+"/"),
		FormAction: stepURL(step.ID),
	})
}

func (s *Server) renderFailed(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Error().Err(err).Msg("render failed")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
