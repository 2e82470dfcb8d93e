package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/sling-library/internal/contact"
	domain "github.com/BruksfildServices01/sling-library/internal/domain/carrier"
	"github.com/BruksfildServices01/sling-library/internal/httperr"
	"github.com/BruksfildServices01/sling-library/internal/httpresp"
	ucCarrier "github.com/BruksfildServices01/sling-library/internal/usecase/carrier"
	ucSettings "github.com/BruksfildServices01/sling-library/internal/usecase/settings"
)

// ======================================================
// HANDLER
// ======================================================

type CatalogHandler struct {
	browse   *ucCarrier.BrowseCarriers
	featured *ucCarrier.FeaturedCarriers
	reader   *ucCarrier.Reader
	settings *ucSettings.GetSettings
}

func NewCatalogHandler(
	browse *ucCarrier.BrowseCarriers,
	featured *ucCarrier.FeaturedCarriers,
	reader *ucCarrier.Reader,
	settings *ucSettings.GetSettings,
) *CatalogHandler {
	return &CatalogHandler{
		browse:   browse,
		featured: featured,
		reader:   reader,
		settings: settings,
	}
}

func browseQuery(c *gin.Context) domain.Query {
	return domain.Query{
		Search:        c.Query("q"),
		Categories:    queryList(c, "category"),
		Brands:        queryList(c, "brand"),
		AgeRanges:     queryList(c, "age_range"),
		AvailableOnly: c.Query("available") == "true",
		Sort:          domain.ParseSortKey(c.Query("sort")),
	}
}

// ======================================================
// BROWSE
// ======================================================

func (h *CatalogHandler) Browse(c *gin.Context) {
	res, err := h.browse.Execute(c.Request.Context(), "", browseQuery(c))
	if err != nil {
		httperr.FromError(c, err, "carriers_load_failed")
		return
	}
	httpresp.OK(c, res)
}

func (h *CatalogHandler) CategoryCarriers(c *gin.Context) {
	slug := c.Param("slug")
	if !domain.IsCategory(slug) {
		httperr.NotFound(c, "category_not_found", "Category not found.")
		return
	}

	res, err := h.browse.Execute(c.Request.Context(), slug, browseQuery(c))
	if err != nil {
		httperr.FromError(c, err, "carriers_load_failed")
		return
	}

	info, _ := domain.LookupCategory(slug)
	httpresp.OK(c, gin.H{
		"category": info,
		"data":     res.Data,
		"total":    res.Total,
		"active":   res.Active,
		"filters":  res.Filters,
		"facets":   res.Facets,
	})
}

func (h *CatalogHandler) Featured(c *gin.Context) {
	limit := queryInt(c, "limit", 3, 24)

	carriers, err := h.featured.Execute(c.Request.Context(), limit)
	if err != nil {
		httperr.FromError(c, err, "carriers_load_failed")
		return
	}
	httpresp.List(c, carriers)
}

func (h *CatalogHandler) Categories(c *gin.Context) {
	httpresp.List(c, domain.Categories)
}

// ======================================================
// DETAIL
// ======================================================

func (h *CatalogHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	carrier, err := h.reader.Get(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err, "carrier_load_failed")
		return
	}
	httpresp.OK(c, carrier)
}

func (h *CatalogHandler) WhatsApp(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	carrier, err := h.reader.Get(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err, "carrier_load_failed")
		return
	}

	s := h.settings.Execute(c.Request.Context())
	httpresp.OK(c, gin.H{
		"message": contact.CarrierInterestMessage(*carrier),
		"url":     contact.CarrierInterestLink(s, *carrier),
	})
}
