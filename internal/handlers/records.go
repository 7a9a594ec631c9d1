package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitalsync/backend/internal/apierror"
	"github.com/vitalsync/backend/internal/logger"
	"github.com/vitalsync/backend/internal/models"
	"github.com/vitalsync/backend/internal/service"
)

type RecordHandler struct {
	recordService service.RecordService
}

// NewRecordHandler creates a new record handler
func NewRecordHandler(recordService service.RecordService) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

// CreatePhysical handles POST /api/v1/physical-health
func (h *RecordHandler) CreatePhysical(c *gin.Context) {
	var req models.CreatePhysicalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	record, err := h.recordService.AddPhysical(c.Request.Context(), &req)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to create physical record", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusCreated, models.CreateRecordResponse{
		Message:  "Physical health data recorded successfully",
		RecordID: record.ID,
		UserID:   record.UserID,
	})
}

// GetPhysical handles GET /api/v1/physical-health/:user_id
func (h *RecordHandler) GetPhysical(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	records, err := h.recordService.GetPhysical(c.Request.Context(), userID)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to get physical records", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}
	if records == nil {
		records = []models.PhysicalRecord{}
	}

	c.JSON(http.StatusOK, gin.H{"user_id": userID, "records": records})
}

// CreateMental handles POST /api/v1/mental-health
func (h *RecordHandler) CreateMental(c *gin.Context) {
	var req models.CreateMentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	record, err := h.recordService.AddMental(c.Request.Context(), &req)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to create mental record", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusCreated, models.CreateRecordResponse{
		Message:  "Mental health data recorded successfully",
		RecordID: record.ID,
		UserID:   record.UserID,
	})
}

// GetMental handles GET /api/v1/mental-health/:user_id
func (h *RecordHandler) GetMental(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	records, err := h.recordService.GetMental(c.Request.Context(), userID)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to get mental records", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}
	if records == nil {
		records = []models.MentalRecord{}
	}

	c.JSON(http.StatusOK, gin.H{"user_id": userID, "records": records})
}

// CreateSleep handles POST /api/v1/sleep
func (h *RecordHandler) CreateSleep(c *gin.Context) {
	var req models.CreateSleepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	record, err := h.recordService.AddSleep(c.Request.Context(), &req)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to create sleep record", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusCreated, models.CreateRecordResponse{
		Message:  "Sleep data recorded successfully",
		RecordID: record.ID,
		UserID:   record.UserID,
	})
}
