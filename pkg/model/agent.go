package model

import "time"

// Agent is the onboarding record for a licensed insurance agent.
type Agent struct {
	ID               string           `json:"id,omitempty"`
	FirstName        string           `json:"firstName"`
	LastName         string           `json:"lastName"`
	DateOfBirth      string           `json:"dateOfBirth"`
	Phone            string           `json:"phone"`
	Email            string           `json:"email"`
	Address          Address          `json:"address"`
	SSN              string           `json:"ssn"`
	NPN              string           `json:"npn,omitempty"`
	BankDetails      BankDetails      `json:"bankDetails"`
	LicensedStates   []string         `json:"licensedStates"`
	Upline           Upline           `json:"upline"`
	OnboardingStatus OnboardingStatus `json:"onboardingStatus"`
	Documents        []DocumentStatus `json:"documents"`
	CreatedAt        *time.Time       `json:"createdAt,omitempty"`
	UpdatedAt        *time.Time       `json:"updatedAt,omitempty"`
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

type BankDetails struct {
	AccountNumber string `json:"accountNumber"`
	RoutingNumber string `json:"routingNumber"`
	BankName      string `json:"bankName"`
}

// Upline identifies the agent's sponsoring manager.
type Upline struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// FullName joins first and last name with a single space.
func (a Agent) FullName() string {
	switch {
	case a.FirstName == "":
		return a.LastName
	case a.LastName == "":
		return a.FirstName
	default:
		return a.FirstName + " " + a.LastName
	}
}
