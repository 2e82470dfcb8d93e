package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/sling-library/internal/domain/booking"
	"github.com/BruksfildServices01/sling-library/internal/dto"
	"github.com/BruksfildServices01/sling-library/internal/httperr"
	"github.com/BruksfildServices01/sling-library/internal/httpresp"
	"github.com/BruksfildServices01/sling-library/internal/middleware"
	ucBooking "github.com/BruksfildServices01/sling-library/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create   *ucBooking.CreateBookingRequest
	list     *ucBooking.ListBookingRequests
	approve  *ucBooking.ApproveBookingRequest
	reject   *ucBooking.RejectBookingRequest
	complete *ucBooking.CompleteBookingRequest
	contact  *ucBooking.ContactCustomer
}

func NewBookingHandler(
	create *ucBooking.CreateBookingRequest,
	list *ucBooking.ListBookingRequests,
	approve *ucBooking.ApproveBookingRequest,
	reject *ucBooking.RejectBookingRequest,
	complete *ucBooking.CompleteBookingRequest,
	contact *ucBooking.ContactCustomer,
) *BookingHandler {
	return &BookingHandler{
		create:   create,
		list:     list,
		approve:  approve,
		reject:   reject,
		complete: complete,
		contact:  contact,
	}
}

// ======================================================
// PUBLIC
// ======================================================

// Create accepts the public booking form. The stored record is not echoed
// back.
func (h *BookingHandler) Create(c *gin.Context) {
	var in domain.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking request.")
		return
	}

	if err := h.create.Execute(c.Request.Context(), in); err != nil {
		httperr.FromError(c, err, "booking_create_failed")
		return
	}

	httpresp.Created(c, gin.H{
		"status":  domain.StatusPending,
		"message": "Request sent! We'll reach out on WhatsApp to confirm your booking.",
	})
}

// ======================================================
// ADMIN
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	rows, err := h.list.Execute(c.Request.Context(), c.Query("status"))
	if err != nil {
		httperr.FromError(c, err, "booking_list_failed")
		return
	}
	httpresp.List(c, dto.BookingList(rows))
}

func (h *BookingHandler) Approve(c *gin.Context) {
	h.transition(c, h.approve.Execute, "booking_approve_failed")
}

func (h *BookingHandler) Reject(c *gin.Context) {
	h.transition(c, h.reject.Execute, "booking_reject_failed")
}

func (h *BookingHandler) Complete(c *gin.Context) {
	h.transition(c, h.complete.Execute, "booking_complete_failed")
}

type transitionFunc = func(ctx context.Context, actorID *uuid.UUID, id uuid.UUID) (*ucBooking.Result, error)

func (h *BookingHandler) transition(c *gin.Context, run transitionFunc, fallback string) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	res, err := run(c.Request.Context(), middleware.ActorID(c), id)
	if err != nil {
		httperr.FromError(c, err, fallback)
		return
	}
	httpresp.OK(c, res)
}

func (h *BookingHandler) Contact(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	link, err := h.contact.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err, "booking_load_failed")
		return
	}
	httpresp.OK(c, link)
}
