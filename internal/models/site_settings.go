package models

type SiteFeature struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type HowItWorksStep struct {
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Link is a name/path pair used by the header menu and the footer.
type Link struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// SiteSettings is the single configuration row behind branding, theme and
// copy. Only one row is expected to exist.
type SiteSettings struct {
	BaseModel

	LogoURL   *string `gorm:"type:text" json:"logo_url"`
	BrandName string  `gorm:"size:100" json:"brand_name"`
	Tagline   *string `gorm:"size:255" json:"tagline"`

	// HSL triples such as "25 95% 53%".
	PrimaryColor    string `gorm:"size:40" json:"primary_color"`
	SecondaryColor  string `gorm:"size:40" json:"secondary_color"`
	AccentColor     string `gorm:"size:40" json:"accent_color"`
	BackgroundColor string `gorm:"size:40" json:"background_color"`
	ForegroundColor string `gorm:"size:40" json:"foreground_color"`

	WhatsAppNumber  string  `gorm:"column:whatsapp_number;size:20" json:"whatsapp_number"`
	WhatsAppMessage *string `gorm:"column:whatsapp_message;type:text" json:"whatsapp_message"`
	Email           *string `gorm:"size:100" json:"email"`
	InstagramURL    *string `gorm:"type:text" json:"instagram_url"`

	HeroTitle    string  `gorm:"type:text" json:"hero_title"`
	HeroSubtitle *string `gorm:"type:text" json:"hero_subtitle"`
	HeroImageURL *string `gorm:"type:text" json:"hero_image_url"`
	HeroCTAText  *string `gorm:"column:hero_cta_text;size:100" json:"hero_cta_text"`
	HeroCTALink  *string `gorm:"column:hero_cta_link;size:255" json:"hero_cta_link"`

	Features []SiteFeature `gorm:"type:jsonb;serializer:json" json:"features"`

	HowItWorksTitle *string          `gorm:"size:255" json:"how_it_works_title"`
	HowItWorksSteps []HowItWorksStep `gorm:"type:jsonb;serializer:json" json:"how_it_works_steps"`

	CategoriesTitle    *string `gorm:"size:255" json:"categories_title"`
	CategoriesSubtitle *string `gorm:"size:255" json:"categories_subtitle"`

	MenuItems []Link `gorm:"type:jsonb;serializer:json" json:"menu_items"`

	FooterDescription *string `gorm:"type:text" json:"footer_description"`
	FooterLinks       []Link  `gorm:"type:jsonb;serializer:json" json:"footer_links"`

	PolicyContent *string `gorm:"type:text" json:"policy_content"`
	SafetyContent *string `gorm:"type:text" json:"safety_content"`

	MetaTitle       *string `gorm:"size:255" json:"meta_title"`
	MetaDescription *string `gorm:"type:text" json:"meta_description"`
}

func (SiteSettings) TableName() string {
	return "site_settings"
}
