package model

import (
	"math"
	"slices"
	"time"
)

// TotalSteps is the length of the fixed onboarding sequence.
const TotalSteps = 10

// Step identifiers in onboarding order.
const (
	StepPersonalInfo        = 1
	StepDocuments           = 2
	StepGoHighLevel         = 3
	StepUplineNotification  = 4
	StepGoogleEmail         = 5
	StepPayroll             = 6
	StepGoogleSheet         = 7
	StepCompletionReview    = 8
	StepLicenseVerification = 9
	StepAHIPCertification   = 10
)

// OnboardingStatus tracks an agent's progress through the ten onboarding
// steps.
type OnboardingStatus struct {
	CurrentStep                 int       `json:"currentStep"`
	CompletedSteps              []int     `json:"completedSteps"`
	IsComplete                  bool      `json:"isComplete"`
	PersonalInfoComplete        bool      `json:"personalInfoComplete"`
	DocumentsComplete           bool      `json:"documentsComplete"`
	GoHighLevelComplete         bool      `json:"goHighLevelComplete"`
	UplineNotificationComplete  bool      `json:"uplineNotificationComplete"`
	GoogleEmailComplete         bool      `json:"googleEmailComplete"`
	PayrollComplete             bool      `json:"payrollComplete"`
	GoogleSheetComplete         bool      `json:"googleSheetComplete"`
	LicenseVerificationComplete bool      `json:"licenseVerificationComplete"`
	AHIPCertificationComplete   bool      `json:"ahipCertificationComplete"`
	LastActiveAt                time.Time `json:"lastActiveAt"`
}

// NewOnboardingStatus returns a status positioned on the first step.
func NewOnboardingStatus(now time.Time) OnboardingStatus {
	return OnboardingStatus{
		CurrentStep:    StepPersonalInfo,
		CompletedSteps: []int{},
		LastActiveAt:   now,
	}
}

// MarkStepComplete records step as done. Completing a step twice is a no-op
// apart from refreshing LastActiveAt. The current step advances past the
// completed one and IsComplete flips once every step is recorded. Steps
// outside 1..TotalSteps are ignored and reported as false.
func (s *OnboardingStatus) MarkStepComplete(step int, now time.Time) bool {
	if s == nil || step < 1 || step > TotalSteps {
		return false
	}
	s.LastActiveAt = now
	if !slices.Contains(s.CompletedSteps, step) {
		s.CompletedSteps = append(s.CompletedSteps, step)
		slices.Sort(s.CompletedSteps)
	}
	if flag := s.stepFlag(step); flag != nil {
		*flag = true
	}
	if s.CurrentStep <= step && step < TotalSteps {
		s.CurrentStep = step + 1
	}
	s.IsComplete = len(s.CompletedSteps) == TotalSteps
	return true
}

// IsStepComplete reports whether step has been recorded as done.
func (s OnboardingStatus) IsStepComplete(step int) bool {
	return slices.Contains(s.CompletedSteps, step)
}

// CanAccess reports whether the agent may open step: completed steps and the
// current step are reachable, later ones are not.
func (s OnboardingStatus) CanAccess(step int) bool {
	if step < 1 || step > TotalSteps {
		return false
	}
	return step <= s.CurrentStep || s.IsStepComplete(step)
}

// Progress returns the rounded share of completed steps as a percentage.
func (s OnboardingStatus) Progress() int {
	return int(math.Round(float64(len(s.CompletedSteps)) / TotalSteps * 100))
}

func (s *OnboardingStatus) stepFlag(step int) *bool {
	switch step {
	case StepPersonalInfo:
		return &s.PersonalInfoComplete
	case StepDocuments:
		return &s.DocumentsComplete
	case StepGoHighLevel:
		return &s.GoHighLevelComplete
	case StepUplineNotification:
		return &s.UplineNotificationComplete
	case StepGoogleEmail:
		return &s.GoogleEmailComplete
	case StepPayroll:
		return &s.PayrollComplete
	case StepGoogleSheet:
		return &s.GoogleSheetComplete
	case StepLicenseVerification:
		return &s.LicenseVerificationComplete
	case StepAHIPCertification:
		return &s.AHIPCertificationComplete
	default:
		return nil
	}
}
