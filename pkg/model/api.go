package model

// APIResponse is the envelope returned by every API endpoint.
type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK wraps data in a successful envelope.
func OK[T any](data T) APIResponse[T] {
	return APIResponse[T]{Success: true, Data: &data}
}

// Fail builds an unsuccessful envelope carrying err's message.
func Fail[T any](err error) APIResponse[T] {
	resp := APIResponse[T]{Success: false}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}

type GoHighLevelResponse struct {
	Success   bool   `json:"success"`
	ContactID string `json:"contactId,omitempty"`
	Message   string `json:"message,omitempty"`
}

type GoogleEmailResponse struct {
	Success bool   `json:"success"`
	Email   string `json:"email,omitempty"`
	Message string `json:"message,omitempty"`
}

type PayrollResponse struct {
	Success    bool   `json:"success"`
	EmployeeID string `json:"employeeId,omitempty"`
	Message    string `json:"message,omitempty"`
}

// EmailTemplate describes a notification email with named variables.
type EmailTemplate struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Subject     string   `json:"subject"`
	HTMLContent string   `json:"htmlContent"`
	TextContent string   `json:"textContent"`
	Variables   []string `json:"variables"`
}
