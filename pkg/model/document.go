package model

import "time"

// DocumentType enumerates the onboarding paperwork.
type DocumentType string

const (
	DocumentW4                DocumentType = "w4"
	DocumentI9                DocumentType = "i9"
	DocumentEmployeeAgreement DocumentType = "employee_agreement"
	DocumentContract          DocumentType = "contract"
)

// DocumentState is the signing lifecycle of a document.
type DocumentState string

const (
	DocumentPending   DocumentState = "pending"
	DocumentSigned    DocumentState = "signed"
	DocumentCompleted DocumentState = "completed"
)

type DocumentStatus struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Type          DocumentType  `json:"type"`
	Status        DocumentState `json:"status"`
	SignedAt      *time.Time    `json:"signedAt,omitempty"`
	SignatureData string        `json:"signatureData,omitempty"`
	Required      bool          `json:"required"`
}

// DocumentSignature is a captured signature submitted with the form.
type DocumentSignature struct {
	DocumentID    string       `json:"documentId"`
	DocumentType  DocumentType `json:"documentType"`
	SignatureData string       `json:"signatureData"`
	SignedAt      time.Time    `json:"signedAt"`
}

// Sign applies sig to the document and moves it to the signed state.
func (d *DocumentStatus) Sign(sig DocumentSignature) {
	if d == nil {
		return
	}
	signedAt := sig.SignedAt
	d.SignedAt = &signedAt
	d.SignatureData = sig.SignatureData
	d.Status = DocumentSigned
}

// RequiredDocumentsSigned reports whether every required document is signed
// or completed.
func RequiredDocumentsSigned(docs []DocumentStatus) bool {
	for _, doc := range docs {
		if !doc.Required {
			continue
		}
		if doc.Status != DocumentSigned && doc.Status != DocumentCompleted {
			return false
		}
	}
	return true
}
