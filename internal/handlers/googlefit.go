package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vitalsync/backend/internal/apierror"
	"github.com/vitalsync/backend/internal/logger"
	"github.com/vitalsync/backend/internal/service"
)

type GoogleFitHandler struct {
	googleFitService service.GoogleFitService
}

// NewGoogleFitHandler creates a new Google Fit handler
func NewGoogleFitHandler(googleFitService service.GoogleFitService) *GoogleFitHandler {
	return &GoogleFitHandler{googleFitService: googleFitService}
}

type connectRequest struct {
	UserID int64  `json:"user_id" binding:"required"`
	Code   string `json:"code" binding:"required"`
}

// Connect handles POST /api/v1/google-fit/connect
func (h *GoogleFitHandler) Connect(c *gin.Context) {
	var req connectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	status, err := h.googleFitService.Connect(c.Request.Context(), req.UserID, req.Code)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		if errors.Is(err, service.ErrGoogleFitDisabled) {
			apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, "Google Fit integration is not configured"))
			return
		}
		logger.Ctx(c.Request.Context()).Error("google fit connect failed", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, "Could not exchange the authorization code"))
		return
	}

	c.JSON(http.StatusOK, status)
}

// Steps handles GET /api/v1/google-fit/steps/:user_id
func (h *GoogleFitHandler) Steps(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 90 {
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, "days must be between 1 and 90"))
			return
		}
		days = parsed
	}

	steps, err := h.googleFitService.Steps(c.Request.Context(), userID, days)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		switch {
		case errors.Is(err, service.ErrGoogleFitDisabled):
			apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, "Google Fit integration is not configured"))
		case errors.Is(err, service.ErrNotConnected):
			apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Google Fit connection", strconv.FormatInt(userID, 10)))
		default:
			logger.Ctx(c.Request.Context()).Error("google fit steps failed", logger.Err(err))
			apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		}
		return
	}

	c.JSON(http.StatusOK, steps)
}
