package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitalsync/backend/internal/apierror"
	"github.com/vitalsync/backend/internal/logger"
	"github.com/vitalsync/backend/internal/models"
	"github.com/vitalsync/backend/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup handles POST /api/v1/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.authService.Signup(c.Request.Context(), &req)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			apierror.WriteProblem(c, apierror.NewConflictError(requestID, "Email is already registered"))
		case errors.Is(err, service.ErrPasswordTooLong):
			apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error()))
		default:
			logger.Ctx(c.Request.Context()).Error("signup failed", logger.Err(err))
			apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		if errors.Is(err, service.ErrInvalidCredentials) {
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID, "Invalid email or password"))
			return
		}
		logger.Ctx(c.Request.Context()).Error("login failed", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, resp)
}
