package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/sling-library/internal/httperr"
	"github.com/BruksfildServices01/sling-library/internal/httpresp"
	"github.com/BruksfildServices01/sling-library/internal/middleware"
	ucAuth "github.com/BruksfildServices01/sling-library/internal/usecase/auth"
)

type AuthHandler struct {
	auth *ucAuth.Service
}

func NewAuthHandler(auth *ucAuth.Service) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// --------- Requests ---------

type SignUpRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email and password are required.")
		return
	}

	session, err := h.auth.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.FromError(c, err, "sign_up_failed")
		return
	}
	httpresp.Created(c, session)
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email and password are required.")
		return
	}

	session, err := h.auth.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.FromError(c, err, "sign_in_failed")
		return
	}
	httpresp.OK(c, session)
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	if err := h.auth.SignOut(c.Request.Context(), middleware.ClaimsFrom(c)); err != nil {
		httperr.Internal(c, "sign_out_failed", "Could not sign out. Please try again.")
		return
	}
	httpresp.OK(c, gin.H{"signed_out": true})
}

func (h *AuthHandler) Session(c *gin.Context) {
	user, err := h.auth.CurrentSession(c.Request.Context(), middleware.ClaimsFrom(c))
	if err != nil {
		httperr.FromError(c, err, "session_load_failed")
		return
	}
	httpresp.OK(c, gin.H{"user": user})
}
