package ui

import "github.com/goliatone/go-onboarding/pkg/mask"

// Brand holds the company details printed in the header and footer.
type Brand struct {
	Name      string `json:"name"`
	Tagline   string `json:"tagline"`
	Blurb     string `json:"blurb"`
	Phone     string `json:"phone"`
	PhoneHref string `json:"phoneHref"`
	Email     string `json:"email"`
	Hours     string `json:"hours"`
}

// DefaultBrand returns the Health Insurance Bureau details.
func DefaultBrand() Brand {
	return Brand{
		Name:      "Health Insurance Bureau",
		Tagline:   "Agent Onboarding Portal",
		Blurb:     "Empowering insurance agents with comprehensive onboarding and support. Join our team of dedicated professionals serving clients nationwide.",
		Phone:     "(555) 123-4567",
		PhoneHref: "tel:+15551234567",
		Email:     "support@healthinsurancebureau.com",
		Hours:     "Mon-Fri 8AM-8PM EST",
	}
}

func (b Brand) withDefaults() Brand {
	def := DefaultBrand()
	if b.Name == "" {
		b.Name = def.Name
	}
	if b.Tagline == "" {
		b.Tagline = def.Tagline
	}
	if b.Blurb == "" {
		b.Blurb = def.Blurb
	}
	if b.Phone == "" {
		b.Phone = def.Phone
		b.PhoneHref = def.PhoneHref
	}
	if b.PhoneHref == "" {
		digits := mask.Digits(b.Phone)
		if len(digits) == 10 {
			digits = "1" + digits
		}
		b.PhoneHref = "tel:+" + digits
	}
	if b.Email == "" {
		b.Email = def.Email
	}
	if b.Hours == "" {
		b.Hours = def.Hours
	}
	return b
}

// Link is an anchor in the footer.
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
	Icon  string `json:"icon,omitempty"`
}
