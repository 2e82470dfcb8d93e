package settings

import (
	"slices"
	"strings"

	"github.com/BruksfildServices01/sling-library/internal/httperr"
	"github.com/BruksfildServices01/sling-library/internal/models"
	"github.com/BruksfildServices01/sling-library/internal/validators"
)

// Patch is a partial settings update. Nil fields are left as stored.
type Patch struct {
	LogoURL   *string `json:"logo_url"`
	BrandName *string `json:"brand_name"`
	Tagline   *string `json:"tagline"`

	PrimaryColor    *string `json:"primary_color"`
	SecondaryColor  *string `json:"secondary_color"`
	AccentColor     *string `json:"accent_color"`
	BackgroundColor *string `json:"background_color"`
	ForegroundColor *string `json:"foreground_color"`

	WhatsAppNumber  *string `json:"whatsapp_number"`
	WhatsAppMessage *string `json:"whatsapp_message"`
	Email           *string `json:"email"`
	InstagramURL    *string `json:"instagram_url"`

	HeroTitle    *string `json:"hero_title"`
	HeroSubtitle *string `json:"hero_subtitle"`
	HeroImageURL *string `json:"hero_image_url"`
	HeroCTAText  *string `json:"hero_cta_text"`
	HeroCTALink  *string `json:"hero_cta_link"`

	Features []models.SiteFeature `json:"features"`

	HowItWorksTitle *string                 `json:"how_it_works_title"`
	HowItWorksSteps []models.HowItWorksStep `json:"how_it_works_steps"`

	CategoriesTitle    *string `json:"categories_title"`
	CategoriesSubtitle *string `json:"categories_subtitle"`

	MenuItems []models.Link `json:"menu_items"`

	FooterDescription *string       `json:"footer_description"`
	FooterLinks       []models.Link `json:"footer_links"`

	PolicyContent *string `json:"policy_content"`
	SafetyContent *string `json:"safety_content"`

	MetaTitle       *string `json:"meta_title"`
	MetaDescription *string `json:"meta_description"`
}

func ValidateUpdate(p Patch) error {
	var ve httperr.ValidationError

	colors := []struct {
		field string
		value *string
	}{
		{"primary_color", p.PrimaryColor},
		{"secondary_color", p.SecondaryColor},
		{"accent_color", p.AccentColor},
		{"background_color", p.BackgroundColor},
		{"foreground_color", p.ForegroundColor},
	}
	for _, c := range colors {
		if c.value != nil && !validators.IsHSLTriple(*c.value) {
			ve.Add(c.field, `Use an HSL triple such as "25 95% 53%"`)
		}
	}

	if p.WhatsAppNumber != nil && !validators.IsDigits(strings.TrimSpace(*p.WhatsAppNumber)) {
		ve.Add("whatsapp_number", "Digits only, including country code")
	}
	if p.Email != nil {
		if e := strings.TrimSpace(*p.Email); e != "" && !validators.IsEmailFormat(e) {
			ve.Add("email", "Invalid email address")
		}
	}
	if p.HeroTitle != nil && strings.TrimSpace(*p.HeroTitle) == "" {
		ve.Add("hero_title", "Hero title cannot be empty")
	}
	for _, l := range slices.Concat(p.MenuItems, p.FooterLinks) {
		if strings.TrimSpace(l.Name) == "" || strings.TrimSpace(l.Href) == "" {
			ve.Add("links", "Every link needs a name and a path")
			break
		}
	}

	return ve.Err()
}

// ApplyTo writes the set fields onto s. Blank optional strings are stored as
// NULL.
func (p Patch) ApplyTo(s *models.SiteSettings) {
	setOptional(&s.LogoURL, p.LogoURL)
	setRequired(&s.BrandName, p.BrandName)
	setOptional(&s.Tagline, p.Tagline)

	setRequired(&s.PrimaryColor, p.PrimaryColor)
	setRequired(&s.SecondaryColor, p.SecondaryColor)
	setRequired(&s.AccentColor, p.AccentColor)
	setRequired(&s.BackgroundColor, p.BackgroundColor)
	setRequired(&s.ForegroundColor, p.ForegroundColor)

	setRequired(&s.WhatsAppNumber, p.WhatsAppNumber)
	setOptional(&s.WhatsAppMessage, p.WhatsAppMessage)
	setOptional(&s.Email, p.Email)
	setOptional(&s.InstagramURL, p.InstagramURL)

	setRequired(&s.HeroTitle, p.HeroTitle)
	setOptional(&s.HeroSubtitle, p.HeroSubtitle)
	setOptional(&s.HeroImageURL, p.HeroImageURL)
	setOptional(&s.HeroCTAText, p.HeroCTAText)
	setOptional(&s.HeroCTALink, p.HeroCTALink)

	if p.Features != nil {
		s.Features = p.Features
	}
	setOptional(&s.HowItWorksTitle, p.HowItWorksTitle)
	if p.HowItWorksSteps != nil {
		s.HowItWorksSteps = p.HowItWorksSteps
	}
	setOptional(&s.CategoriesTitle, p.CategoriesTitle)
	setOptional(&s.CategoriesSubtitle, p.CategoriesSubtitle)

	if p.MenuItems != nil {
		s.MenuItems = p.MenuItems
	}
	setOptional(&s.FooterDescription, p.FooterDescription)
	if p.FooterLinks != nil {
		s.FooterLinks = p.FooterLinks
	}

	setOptional(&s.PolicyContent, p.PolicyContent)
	setOptional(&s.SafetyContent, p.SafetyContent)
	setOptional(&s.MetaTitle, p.MetaTitle)
	setOptional(&s.MetaDescription, p.MetaDescription)
}

func setRequired(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func setOptional(dst **string, v *string) {
	if v == nil {
		return
	}
	if t := strings.TrimSpace(*v); t != "" {
		*dst = &t
		return
	}
	*dst = nil
}
