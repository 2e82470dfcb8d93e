package httperr

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string            `json:"error_code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Validation(c *gin.Context, ve *ValidationError) {
	c.JSON(http.StatusBadRequest, HTTPError{
		Code:    "validation_failed",
		Message: "Please correct the highlighted fields.",
		Fields:  ve.Fields,
	})
}

var businessMessages = map[string]struct {
	status  int
	message string
}{
	"carrier_not_found":      {http.StatusNotFound, "Carrier not found."},
	"booking_not_found":      {http.StatusNotFound, "Booking request not found."},
	"user_not_found":         {http.StatusNotFound, "User not found."},
	"page_not_found":         {http.StatusNotFound, "Page not found."},
	"invalid_state":          {http.StatusConflict, "This booking cannot make that transition."},
	"carrier_already_rented": {http.StatusConflict, "The carrier is already rented."},
	"email_taken":            {http.StatusConflict, "An account with this email already exists."},
	"invalid_credentials":    {http.StatusUnauthorized, "Invalid email or password."},
	"invalid_email_domain":   {http.StatusBadRequest, "The email domain does not look valid."},
	"invalid_image":          {http.StatusBadRequest, "The uploaded file is not a supported image."},
	"invalid_role":           {http.StatusBadRequest, "Unknown role."},
	"storage_disabled":       {http.StatusServiceUnavailable, "Image storage is not configured."},
}

// FromError writes the response matching err: field errors as 400, known
// business codes through the table above, anything else as a 500 carrying
// fallbackCode.
func FromError(c *gin.Context, err error, fallbackCode string) {
	if ve, ok := AsValidation(err); ok {
		Validation(c, ve)
		return
	}

	code := BusinessCode(err)
	if m, ok := businessMessages[code]; ok {
		Write(c, m.status, code, m.message)
		return
	}
	if strings.HasPrefix(code, "invalid_") {
		BadRequest(c, code, "Invalid request.")
		return
	}

	Internal(c, fallbackCode, "Something went wrong. Please try again.")
}
