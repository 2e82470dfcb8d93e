package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/sling-library/internal/domain/carrier"
	"github.com/BruksfildServices01/sling-library/internal/httperr"
	"github.com/BruksfildServices01/sling-library/internal/httpresp"
	"github.com/BruksfildServices01/sling-library/internal/middleware"
	ucCarrier "github.com/BruksfildServices01/sling-library/internal/usecase/carrier"
)

const maxImageUpload = 10 << 20

// ======================================================
// HANDLER
// ======================================================

type CarrierAdminHandler struct {
	list   *ucCarrier.ListCarriers
	create *ucCarrier.CreateCarrier
	update *ucCarrier.UpdateCarrier
	remove *ucCarrier.DeleteCarrier
	image  *ucCarrier.AddCarrierImage
}

func NewCarrierAdminHandler(
	list *ucCarrier.ListCarriers,
	create *ucCarrier.CreateCarrier,
	update *ucCarrier.UpdateCarrier,
	remove *ucCarrier.DeleteCarrier,
	image *ucCarrier.AddCarrierImage,
) *CarrierAdminHandler {
	return &CarrierAdminHandler{
		list:   list,
		create: create,
		update: update,
		remove: remove,
		image:  image,
	}
}

// ======================================================
// CRUD
// ======================================================

func (h *CarrierAdminHandler) List(c *gin.Context) {
	carriers, err := h.list.Execute(c.Request.Context(), c.Query("category"))
	if err != nil {
		httperr.FromError(c, err, "carrier_list_failed")
		return
	}
	httpresp.List(c, carriers)
}

func (h *CarrierAdminHandler) Create(c *gin.Context) {
	var in domain.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid carrier payload.")
		return
	}

	carrier, err := h.create.Execute(c.Request.Context(), middleware.ActorID(c), in)
	if err != nil {
		httperr.FromError(c, err, "carrier_create_failed")
		return
	}
	httpresp.Created(c, carrier)
}

func (h *CarrierAdminHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var in domain.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid carrier payload.")
		return
	}

	carrier, err := h.update.Execute(c.Request.Context(), middleware.ActorID(c), id, in)
	if err != nil {
		httperr.FromError(c, err, "carrier_update_failed")
		return
	}
	httpresp.OK(c, carrier)
}

func (h *CarrierAdminHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), middleware.ActorID(c), id); err != nil {
		httperr.FromError(c, err, "carrier_delete_failed")
		return
	}
	httpresp.OK(c, gin.H{"deleted": true})
}

// ======================================================
// IMAGES
// ======================================================

// UploadImage takes a multipart "image" file. ?primary=true puts it first.
func (h *CarrierAdminHandler) UploadImage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "image_required", "Attach an image file.")
		return
	}
	if fh.Size > maxImageUpload {
		httperr.BadRequest(c, "image_too_large", "Images must be 10 MB or smaller.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Internal(c, "image_read_failed", "Could not read the upload.")
		return
	}
	defer f.Close()

	carrier, err := h.image.Execute(
		c.Request.Context(),
		middleware.ActorID(c),
		id,
		f,
		c.Query("primary") == "true",
	)
	if err != nil {
		httperr.FromError(c, err, "image_upload_failed")
		return
	}
	httpresp.OK(c, carrier)
}
