package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	onboarding "github.com/goliatone/go-onboarding"
	"github.com/goliatone/go-onboarding/internal/config"
	"github.com/goliatone/go-onboarding/pkg/model"
	"github.com/goliatone/go-onboarding/pkg/testsupport"
	"github.com/goliatone/go-onboarding/pkg/toast"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	srv, err := New(context.Background(), config.Defaults())
	require.NoError(t, err)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func postForm(t *testing.T, srv *Server, target string, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var resp model.APIResponse[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success, "response: %s", rec.Body.String())
	require.NotNil(t, resp.Data)
	return *resp.Data
}

func personalInfoForm(info model.PersonalInfo) url.Values {
	values := url.Values{}
	for _, field := range personalFields {
		values.Set(field.name, field.get(&info))
	}
	return values
}

func TestIndexRedirectsToCurrentStep(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/onboarding/steps/1", rec.Header().Get("Location"))
}

func TestShowPersonalInfoStep(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/onboarding/steps/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, body, "Personal Information")
	assert.Contains(t, body, `name="firstName"`)
	assert.Contains(t, body, `data-mask="phone"`)
	assert.Contains(t, body, `action="/onboarding/steps/1"`)
	assert.Contains(t, body, "Step 1 of 10")
	assert.Contains(t, body, "Save Draft")
	assert.NotContains(t, body, "ob-step-nav__back")
}

func TestLockedStepRedirects(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/onboarding/steps/3", "")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/onboarding/steps/1", rec.Header().Get("Location"))
}

func TestUnknownStepIsNotFound(t *testing.T) {
	srv := newTestServer(t)

	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodGet, "/onboarding/steps/99", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodGet, "/onboarding/steps/abc", "").Code)
}

func TestSubmitInvalidPersonalInfo(t *testing.T) {
	srv := newTestServer(t)

	info := testsupport.SamplePersonalInfo()
	info.Email = "not-an-email"
	info.FirstName = ""
	rec := postForm(t, srv, "/onboarding/steps/1", personalInfoForm(info))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "First name is required")
	assert.Contains(t, body, "Enter a valid email address")
	assert.Contains(t, body, "Please fix the highlighted fields")

	assert.False(t, srv.Flow().Status().PersonalInfoComplete)
	require.Equal(t, 1, srv.Toasts().Len())
	assert.Equal(t, toast.VariantError, srv.Toasts().Toasts()[0].Variant)
}

func TestSubmitValidPersonalInfoAdvances(t *testing.T) {
	srv := newTestServer(t)

	form := personalInfoForm(testsupport.SamplePersonalInfo())
	form.Set("phone", "5551234567")
	form.Set("action", "next")
	rec := postForm(t, srv, "/onboarding/steps/1", form)

	require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())
	assert.Equal(t, "/onboarding/steps/2", rec.Header().Get("Location"))

	status := srv.Flow().Status()
	assert.True(t, status.PersonalInfoComplete)
	assert.Equal(t, 2, status.CurrentStep)
	assert.Equal(t, "(555) 123-4567", srv.Flow().FormData().PersonalInfo.Phone)
	assert.Equal(t, []string{"TX", "OK"}, srv.Flow().FormData().PersonalInfo.LicensedStates)

	toasts := srv.Toasts().Toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, toast.VariantSuccess, toasts[0].Variant)

	page := do(t, srv, http.MethodGet, "/onboarding/steps/2", "")
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "ob-step-nav__back")
	assert.Contains(t, page.Body.String(), toasts[0].ID)
}

func TestSubmitBackAndSave(t *testing.T) {
	srv := newTestServer(t)

	rec := postForm(t, srv, "/onboarding/steps/1", url.Values{"action": {"back"}})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = postForm(t, srv, "/onboarding/steps/1", url.Values{"action": {"dance"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postForm(t, srv, "/onboarding/steps/1", url.Values{"action": {"save"}, "firstName": {"Jane"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/onboarding/steps/1", rec.Header().Get("Location"))
	assert.Equal(t, "Jane", srv.Flow().FormData().PersonalInfo.FirstName)
	assert.False(t, srv.Flow().Status().PersonalInfoComplete)

	page := do(t, srv, http.MethodGet, "/onboarding/steps/1", "")
	assert.Contains(t, page.Body.String(), `value="Jane"`)
	assert.Contains(t, page.Body.String(), "Draft saved")
}

func TestMaskAPI(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/mask", `{"spec":"phone","value":"555.123.4567"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[maskResult](t, rec)
	assert.Equal(t, maskResult{Masked: "(555) 123-4567", Raw: "5551234567"}, got)

	rec = do(t, srv, http.MethodPost, "/api/mask", `{"spec":"XX/XX","value":"1225"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "12/25", decodeData[maskResult](t, rec).Masked)

	rec = do(t, srv, http.MethodPost, "/api/mask", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidateAPI(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/validate", `{"kind":"email","value":"nope"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decodeData[validateResult](t, rec).Valid)

	rec = do(t, srv, http.MethodPost, "/api/validate", `{"kind":"zipcode","value":"73301"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeData[validateResult](t, rec).Valid)

	rec = do(t, srv, http.MethodPost, "/api/validate", `{"kind":"color","value":"red"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, srv, http.MethodPost, "/api/validate", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	payload, err := json.Marshal(map[string]any{"personalInfo": testsupport.SamplePersonalInfo()})
	require.NoError(t, err)
	rec = do(t, srv, http.MethodPost, "/api/validate", string(payload))
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[validateResult](t, rec)
	assert.True(t, got.Valid)
	assert.Empty(t, got.Errors)
}

func TestStepsAPI(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/api/steps", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[stepsResult](t, rec)
	require.Len(t, got.Steps, model.TotalSteps)
	assert.Equal(t, 1, got.CurrentStep)
	assert.Equal(t, 0, got.Progress)
	assert.True(t, got.Steps[0].IsActive)
	assert.False(t, got.Steps[2].CanAccess)
}

func TestStatesAPI(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/api/states?q=tex", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"value":"TX"`)
	assert.Contains(t, rec.Body.String(), "Texas")
}

func TestToastsAPI(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/toasts", `{"title":"Saved","variant":"success","durationMs":0}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	added := decodeData[toast.Toast](t, rec)
	assert.Equal(t, "Saved", added.Title)
	assert.True(t, added.Persistent())

	rec = do(t, srv, http.MethodPost, "/api/toasts", `{"title":"Odd","variant":"sparkly"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, toast.VariantDefault, decodeData[toast.Toast](t, rec).Variant)

	rec = do(t, srv, http.MethodGet, "/api/toasts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	listed := decodeData[[]toast.Toast](t, rec)
	require.Len(t, listed, 2)
	assert.Equal(t, added.ID, listed[0].ID)

	rec = do(t, srv, http.MethodDelete, "/api/toasts/"+added.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]bool{"removed": true}, decodeData[map[string]bool](t, rec))

	rec = do(t, srv, http.MethodDelete, "/api/toasts/"+added.ID, "")
	assert.Equal(t, map[string]bool{"removed": false}, decodeData[map[string]bool](t, rec))

	rec = do(t, srv, http.MethodPost, "/api/toasts", `{"description":"no title"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToastDurationOutOfRange(t *testing.T) {
	srv := newTestServer(t)

	for _, ms := range []string{"288230376151711744", "9223372036854775807", "-9223372036854775808"} {
		rec := do(t, srv, http.MethodPost, "/api/toasts", `{"title":"Huge","durationMs":`+ms+`}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code, ms)
	}
	assert.Equal(t, 0, srv.Toasts().Len())

	rec := do(t, srv, http.MethodPost, "/api/toasts", `{"title":"Max","durationMs":9223372036854}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	added := decodeData[toast.Toast](t, rec)
	assert.Equal(t, time.Duration(maxToastMillis)*time.Millisecond, added.Duration)
	assert.False(t, added.Persistent())
}

func TestToastsAfterCloseAreRejected(t *testing.T) {
	srv := newTestServer(t)
	srv.Close()

	rec := do(t, srv, http.MethodPost, "/api/toasts", `{"title":"Late"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestTraceIDHeader(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/steps", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))

	rec = do(t, srv, http.MethodGet, "/api/steps", "")
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	do(t, srv, http.MethodPost, "/api/mask", `{"spec":"ssn","value":"123456789"}`)
	rec := do(t, srv, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `onboarding_mask_requests_total{spec="ssn"} 1`)
	assert.Contains(t, rec.Body.String(), "onboarding_http_request_duration_seconds")
}

func TestMetricsDisabled(t *testing.T) {
	cfg := config.Defaults()
	cfg.App.DisableMetrics = true
	srv, err := New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(srv.Close)

	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodGet, "/metrics", "").Code)
	assert.Equal(t, http.StatusOK, do(t, srv, http.MethodPost, "/api/mask", `{"spec":"zipcode","value":"123456"}`).Code)
}

func TestServesEmbeddedAssets(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/assets/onboarding.css", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, srv, http.MethodGet, "/assets/onboarding.js", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOpenAPIDocument(t *testing.T) {
	spec, err := LoadOpenAPI(context.Background())
	require.NoError(t, err)

	var routes []string
	for _, op := range Operations(spec) {
		routes = append(routes, op.Method+" "+op.Path)
	}
	assert.Equal(t, []string{
		"POST /api/mask",
		"GET /api/states",
		"GET /api/steps",
		"GET /api/toasts",
		"POST /api/toasts",
		"DELETE /api/toasts/{id}",
		"POST /api/validate",
	}, routes)

	srv := newTestServer(t)
	rec := do(t, srv, http.MethodGet, "/api/openapi.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"operationId":"applyMask"`)
}

func TestCheckDocumentedReportsMissingRoutes(t *testing.T) {
	spec, err := LoadOpenAPI(context.Background())
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Post("/api/mask", func(http.ResponseWriter, *http.Request) {})
	err = checkDocumented(spec, router)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GET /api/steps")
	assert.NotContains(t, err.Error(), "POST /api/mask")
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusServiceUnavailable, statusFromError(toast.ErrClosed))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(assert.AnError))
}

func TestRenderStep(t *testing.T) {
	srv := newTestServer(t)

	html, err := srv.RenderStep(context.Background(), 1)
	require.NoError(t, err)
	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "Personal Information")

	_, err = srv.RenderStep(context.Background(), 4)
	assert.ErrorIs(t, err, onboarding.ErrStepLocked)
}
