package settings

import "github.com/BruksfildServices01/sling-library/internal/models"

func str(s string) *string { return &s }

// MenuItems is the fixed header navigation.
func MenuItems() []models.Link {
	return []models.Link{
		{Name: "Home", Href: "/"},
		{Name: "Policies", Href: "/policies"},
		{Name: "Safety", Href: "/safety"},
	}
}

// Defaults returns a fresh copy of the built-in settings. It is what the
// storefront shows before anything has been saved and what migrate seeds.
func Defaults() models.SiteSettings {
	return models.SiteSettings{
		LogoURL:   nil,
		BrandName: "Sheryl Slings",
		Tagline:   str("Sling Library"),

		PrimaryColor:    "25 95% 53%",
		SecondaryColor:  "30 60% 96%",
		AccentColor:     "25 90% 48%",
		BackgroundColor: "30 50% 98%",
		ForegroundColor: "25 40% 15%",

		WhatsAppNumber:  "919876543210",
		WhatsAppMessage: str("Hi! I am interested in renting a baby carrier."),

		HeroTitle:    "Sheryl Slings & Sling Library",
		HeroSubtitle: str("Try premium baby carriers before you buy. Rent weekly or monthly with free fit checks and sanitization included."),
		HeroCTAText:  str("Browse Collection"),
		HeroCTALink:  str("/"),

		Features: []models.SiteFeature{
			{Icon: "Award", Title: "Premium Brands", Description: "Curated collection of trusted carriers"},
			{Icon: "Shield", Title: "Sanitized", Description: "Deep cleaned between every rental"},
			{Icon: "Heart", Title: "Free Fit Checks", Description: "Virtual support for perfect fit"},
		},

		HowItWorksTitle: str("How It Works"),
		HowItWorksSteps: []models.HowItWorksStep{
			{Step: 1, Title: "Browse & Choose", Description: "Explore our curated collection of baby carriers"},
			{Step: 2, Title: "Book via WhatsApp", Description: "Send us a message to reserve your carrier"},
			{Step: 3, Title: "Receive & Try", Description: "Get your carrier delivered with fit support"},
			{Step: 4, Title: "Return or Buy", Description: "Return when done or buy if you love it"},
		},

		CategoriesTitle:    str("Browse by Category"),
		CategoriesSubtitle: str("Find the perfect carrier for your needs"),

		MenuItems: MenuItems(),

		FooterDescription: str("Making babywearing accessible for every family. Rent, try, and find your perfect carrier."),
		FooterLinks: []models.Link{
			{Name: "Rental Policy", Href: "/policies"},
			{Name: "Safety Tips", Href: "/safety"},
		},

		MetaTitle:       str("Baby Carrier Rental - Sling Library India"),
		MetaDescription: str("Rent premium baby carriers in India. Try before you buy with our curated collection of ring slings, wraps, and buckle carriers."),
	}
}
