package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/sling-library/internal/httperr"
	"github.com/BruksfildServices01/sling-library/internal/models"
)

func TestRenderDefaultPolicies(t *testing.T) {
	page, err := Render(SlugPolicies, models.SiteSettings{})
	require.NoError(t, err)

	assert.False(t, page.Custom)
	assert.Equal(t, "Rental Policy & Terms", page.Title)
	assert.Contains(t, page.HTML, "<h2>Refundable Security Deposit</h2>")
	assert.Contains(t, page.HTML, "<strong>₹100 per day</strong>")
}

func TestRenderSafetyLinksToWhatsApp(t *testing.T) {
	page, err := Render(SlugSafety, models.SiteSettings{WhatsAppNumber: "919876543210"})
	require.NoError(t, err)

	assert.Contains(t, page.HTML, "T.I.C.K.S.")
	assert.Contains(t, page.HTML, `href="https://wa.me/919876543210?text=`)
	assert.Contains(t, page.HTML, ">reach out</a>")
}

func TestRenderCustomHTML(t *testing.T) {
	custom := "<h2>Our own rules</h2>"
	page, err := Render(SlugPolicies, models.SiteSettings{PolicyContent: &custom})
	require.NoError(t, err)

	assert.True(t, page.Custom)
	assert.Equal(t, custom, page.HTML)
}

func TestRenderUnknownSlug(t *testing.T) {
	_, err := Render("faq", models.SiteSettings{})
	assert.True(t, httperr.IsBusiness(err, "page_not_found"))
}
