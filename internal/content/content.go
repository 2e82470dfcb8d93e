// Package content serves the two static storefront pages. An admin can
// replace either page with raw HTML through the settings record; otherwise
// the built-in Markdown is rendered.
package content

import (
	"bytes"
	"embed"
	"strings"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"github.com/BruksfildServices01/sling-library/internal/contact"
	"github.com/BruksfildServices01/sling-library/internal/httperr"
	"github.com/BruksfildServices01/sling-library/internal/models"
)

//go:embed pages/*.md
var pagesFS embed.FS

const (
	SlugPolicies = "policies"
	SlugSafety   = "safety"

	fitHelpMessage = "Hi! I need help with my carrier fit."
)

var ErrPageNotFound = httperr.ErrBusiness("page_not_found")

// Raw HTML in the built-in pages is escaped since WithUnsafe is not set.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

type Page struct {
	Slug   string `json:"slug"`
	Title  string `json:"title"`
	HTML   string `json:"html"`
	Custom bool   `json:"custom"`
}

var titles = map[string]string{
	SlugPolicies: "Rental Policy & Terms",
	SlugSafety:   "Babywearing Safety Tips",
}

// Render returns the page for slug using the projected settings s.
func Render(slug string, s models.SiteSettings) (Page, error) {
	title, ok := titles[slug]
	if !ok {
		return Page{}, ErrPageNotFound
	}
	page := Page{Slug: slug, Title: title}

	if custom := customHTML(slug, s); custom != "" {
		page.HTML = custom
		page.Custom = true
		return page, nil
	}

	md, err := pagesFS.ReadFile("pages/" + slug + ".md")
	if err != nil {
		return Page{}, err
	}
	src := strings.ReplaceAll(string(md), "{{help_link}}", contact.CustomerChatLink(s, fitHelpMessage))

	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
		return Page{}, err
	}
	page.HTML = buf.String()
	return page, nil
}

func customHTML(slug string, s models.SiteSettings) string {
	var v *string
	switch slug {
	case SlugPolicies:
		v = s.PolicyContent
	case SlugSafety:
		v = s.SafetyContent
	}
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}
