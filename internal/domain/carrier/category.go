package carrier

type Category string

const (
	CategoryRingSlings     Category = "ring-slings"
	CategoryWraps          Category = "wraps"
	CategoryBuckleCarriers Category = "buckle-carriers"
	CategoryOnbuhimo       Category = "onbuhimo"
)

type CategoryInfo struct {
	Slug        Category `json:"slug"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
}

var Categories = []CategoryInfo{
	{
		Slug:        CategoryRingSlings,
		Name:        "Ring Slings",
		Description: "Perfect for quick ups and nursing, ideal for newborns to toddlers",
		Image:       "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=600&h=400&fit=crop",
	},
	{
		Slug:        CategoryWraps,
		Name:        "Wraps",
		Description: "Versatile and cozy, offering multiple carrying positions",
		Image:       "https://images.unsplash.com/photo-1555252333-9f8e92e65df9?w=600&h=400&fit=crop",
	},
	{
		Slug:        CategoryBuckleCarriers,
		Name:        "Buckle Carriers",
		Description: "Easy to use with adjustable buckles, great for beginners",
		Image:       "https://images.unsplash.com/photo-1544376798-89aa6b82c6cd?w=600&h=400&fit=crop",
	},
	{
		Slug:        CategoryOnbuhimo,
		Name:        "Onbuhimo",
		Description: "Traditional Japanese style, perfect for back carries",
		Image:       "https://images.unsplash.com/photo-1492725764893-90b379c2b6e7?w=600&h=400&fit=crop",
	},
}

func IsCategory(v string) bool {
	_, ok := LookupCategory(v)
	return ok
}

func LookupCategory(v string) (CategoryInfo, bool) {
	for _, c := range Categories {
		if string(c.Slug) == v {
			return c, true
		}
	}
	return CategoryInfo{}, false
}

// CategoryName falls back to the slug for unknown categories.
func CategoryName(v string) string {
	if c, ok := LookupCategory(v); ok {
		return c.Name
	}
	return v
}
