package api

import (
	"errors"
	"fmt"
	"net/http"

	"alcyxob/fitstack/internal/domain"
	"alcyxob/fitstack/internal/service"

	"github.com/gin-gonic/gin"
)

// RecordHandler holds the record service dependency.
type RecordHandler struct {
	recordService service.RecordService
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(recordService service.RecordService) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

// --- Request/Response Structs ---

type LogEntryRequest struct {
	ExerciseID int `json:"exerciseId" binding:"required"`
	Sets       int `json:"sets" binding:"required,min=1,max=5"`
}

type CreateRecordRequest struct {
	Logs      []LogEntryRequest `json:"logs" binding:"required,min=1,dive"`
	ImagePath string            `json:"imagePath,omitempty"`
}

type PhotoUploadRequest struct {
	ContentType string `json:"contentType,omitempty"`
}

type RecordResponse struct {
	ID        string               `json:"id"`
	Date      string               `json:"date"`
	Logs      []domain.ExerciseLog `json:"logs"`
	ImagePath string               `json:"imagePath,omitempty"`
	PhotoURL  string               `json:"photoUrl,omitempty"`
	Timestamp int64                `json:"timestamp"`
}

// --- Handler Methods ---

// CreateRecord saves today's workout session for the authenticated user.
func (h *RecordHandler) CreateRecord(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	entries := make([]service.LogEntry, 0, len(req.Logs))
	for _, l := range req.Logs {
		entries = append(entries, service.LogEntry{ExerciseID: l.ExerciseID, Sets: l.Sets})
	}

	record, err := h.recordService.CreateRecord(c.Request.Context(), userID, entries, req.ImagePath)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoExercisesSelected),
			errors.Is(err, service.ErrUnknownExercise),
			errors.Is(err, service.ErrInvalidSetCount):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to save workout record")
		}
		return
	}

	c.JSON(http.StatusCreated, mapRecordToResponse(record, ""))
}

// ListRecords returns the authenticated user's records, oldest first.
func (h *RecordHandler) ListRecords(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	records, err := h.recordService.ListRecords(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load workout records")
		return
	}

	out := make([]RecordResponse, 0, len(records))
	for i := range records {
		// the gallery view wants viewable photo URLs, not object keys
		url, err := h.recordService.PhotoDownloadURL(c.Request.Context(), &records[i])
		if err != nil {
			abortWithError(c, http.StatusInternalServerError, "Failed to resolve photo URL")
			return
		}
		out = append(out, mapRecordToResponse(&records[i], url))
	}
	c.JSON(http.StatusOK, out)
}

// RequestPhotoUpload presigns a photo upload slot for the user.
func (h *RecordHandler) RequestPhotoUpload(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	// body is optional; an absent or empty one means the jpeg default
	var req PhotoUploadRequest
	_ = c.ShouldBindJSON(&req)

	upload, err := h.recordService.RequestPhotoUpload(c.Request.Context(), userID, req.ContentType)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to prepare photo upload")
		return
	}
	c.JSON(http.StatusOK, upload)
}

func mapRecordToResponse(record *domain.WorkoutRecord, photoURL string) RecordResponse {
	return RecordResponse{
		ID:        record.ID,
		Date:      record.Date,
		Logs:      record.Logs,
		ImagePath: record.ImagePath,
		PhotoURL:  photoURL,
		Timestamp: record.Timestamp,
	}
}
