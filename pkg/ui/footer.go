package ui

import "strconv"

// DefaultCopyrightYear is printed when Footer.Year is zero.
const DefaultCopyrightYear = 2024

// Footer is the page footer with company info, quick links, support contacts
// and legal links. Nil link slices fall back to the defaults.
type Footer struct {
	Brand      Brand
	QuickLinks []Link
	LegalLinks []Link
	Year       int
	Class      string
}

// DefaultQuickLinks returns the agent resource links.
func DefaultQuickLinks() []Link {
	return []Link{
		{Label: "Agent Portal", Href: "#"},
		{Label: "Training Resources", Href: "#"},
		{Label: "Commission Tracking", Href: "#"},
		{Label: "Marketing Materials", Href: "#"},
	}
}

// DefaultLegalLinks returns the bottom bar links.
func DefaultLegalLinks() []Link {
	return []Link{
		{Label: "Privacy Policy", Href: "#"},
		{Label: "Terms of Service", Href: "#"},
		{Label: "Compliance", Href: "#"},
	}
}

func (Footer) ComponentName() string { return ComponentFooter }

func (f Footer) View(*Renderer) (map[string]any, error) {
	brand := f.Brand.withDefaults()
	quick := f.QuickLinks
	if quick == nil {
		quick = DefaultQuickLinks()
	}
	legal := f.LegalLinks
	if legal == nil {
		legal = DefaultLegalLinks()
	}
	year := f.Year
	if year <= 0 {
		year = DefaultCopyrightYear
	}

	support := []map[string]string{
		{"label": "Help Center", "href": "#", "icon": Icon(IconHelpCircle)},
		{"label": brand.Phone, "href": brand.PhoneHref},
		{"label": brand.Email, "href": "mailto:" + brand.Email},
	}

	return map[string]any{
		"class":      ClassNames("ob-footer", f.Class),
		"brand":      brand,
		"logo":       Icon(IconBuilding),
		"shieldIcon": Icon(IconShield),
		"lockIcon":   Icon(IconLock),
		"quickLinks": quick,
		"support":    support,
		"legalLinks": legal,
		"copyright":  "© " + strconv.Itoa(year) + " " + brand.Name + ". All rights reserved.",
	}, nil
}
