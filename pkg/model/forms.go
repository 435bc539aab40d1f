package model

// FormData is the full payload collected across the onboarding forms.
type FormData struct {
	PersonalInfo PersonalInfo        `json:"personalInfo"`
	Documents    []DocumentSignature `json:"documents"`
	Signatures   map[string]string   `json:"signatures"`
}

// PersonalInfo is the flat form behind the first onboarding step. Phone, SSN
// and zip code hold their masked display values.
type PersonalInfo struct {
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	DateOfBirth    string   `json:"dateOfBirth"`
	Phone          string   `json:"phone"`
	Email          string   `json:"email"`
	Street         string   `json:"street"`
	City           string   `json:"city"`
	State          string   `json:"state"`
	ZipCode        string   `json:"zipCode"`
	SSN            string   `json:"ssn"`
	NPN            string   `json:"npn,omitempty"`
	AccountNumber  string   `json:"accountNumber"`
	RoutingNumber  string   `json:"routingNumber"`
	BankName       string   `json:"bankName"`
	LicensedStates []string `json:"licensedStates"`
	UplineName     string   `json:"uplineName"`
	UplineEmail    string   `json:"uplineEmail"`
}

// Agent projects the form onto a new Agent record. Status and documents are
// left for the caller to initialise.
func (p PersonalInfo) Agent() Agent {
	return Agent{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DateOfBirth: p.DateOfBirth,
		Phone:       p.Phone,
		Email:       p.Email,
		Address: Address{
			Street:  p.Street,
			City:    p.City,
			State:   p.State,
			ZipCode: p.ZipCode,
		},
		SSN: p.SSN,
		NPN: p.NPN,
		BankDetails: BankDetails{
			AccountNumber: p.AccountNumber,
			RoutingNumber: p.RoutingNumber,
			BankName:      p.BankName,
		},
		LicensedStates: append([]string(nil), p.LicensedStates...),
		Upline: Upline{
			Name:  p.UplineName,
			Email: p.UplineEmail,
		},
	}
}

// OnboardingStep is a step as presented to the agent, combining reference
// metadata with the agent's status.
type OnboardingStep struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Component   string `json:"component"`
	IsComplete  bool   `json:"isComplete"`
	IsActive    bool   `json:"isActive"`
	CanAccess   bool   `json:"canAccess"`
}

// ValidationError is a field-scoped validation message.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
