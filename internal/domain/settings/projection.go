package settings

import (
	"slices"
	"strings"

	"github.com/BruksfildServices01/sling-library/internal/models"
)

// View is the projected settings value handed to the storefront. It is
// always a copy; changing it never touches the stored record.
type View = models.SiteSettings

// Project merges a stored record over the defaults. A nil record yields the
// defaults, blank fields fall back to their default, and the header menu and
// branding (name, tagline, logo) always come from the defaults.
func Project(stored *models.SiteSettings) View {
	def := Defaults()
	if stored == nil {
		return def
	}

	v := *stored

	v.BrandName = def.BrandName
	v.Tagline = def.Tagline
	v.LogoURL = def.LogoURL
	v.MenuItems = def.MenuItems

	fill(&v.PrimaryColor, def.PrimaryColor)
	fill(&v.SecondaryColor, def.SecondaryColor)
	fill(&v.AccentColor, def.AccentColor)
	fill(&v.BackgroundColor, def.BackgroundColor)
	fill(&v.ForegroundColor, def.ForegroundColor)
	fill(&v.WhatsAppNumber, def.WhatsAppNumber)
	fill(&v.HeroTitle, def.HeroTitle)

	fillPtr(&v.WhatsAppMessage, def.WhatsAppMessage)
	fillPtr(&v.HeroSubtitle, def.HeroSubtitle)
	fillPtr(&v.HeroCTAText, def.HeroCTAText)
	fillPtr(&v.HeroCTALink, def.HeroCTALink)
	fillPtr(&v.HowItWorksTitle, def.HowItWorksTitle)
	fillPtr(&v.CategoriesTitle, def.CategoriesTitle)
	fillPtr(&v.CategoriesSubtitle, def.CategoriesSubtitle)
	fillPtr(&v.FooterDescription, def.FooterDescription)
	fillPtr(&v.MetaTitle, def.MetaTitle)
	fillPtr(&v.MetaDescription, def.MetaDescription)

	v.Features = orDefault(stored.Features, def.Features)
	v.HowItWorksSteps = orDefault(stored.HowItWorksSteps, def.HowItWorksSteps)
	v.FooterLinks = orDefault(stored.FooterLinks, def.FooterLinks)

	return v
}

func fill(field *string, def string) {
	if strings.TrimSpace(*field) == "" {
		*field = def
	}
}

func fillPtr(field **string, def *string) {
	if *field == nil || strings.TrimSpace(**field) == "" {
		*field = def
	}
}

func orDefault[T any](stored, def []T) []T {
	if len(stored) == 0 {
		return def
	}
	return slices.Clone(stored)
}
