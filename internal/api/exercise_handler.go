package api

import (
	"net/http"

	"alcyxob/fitstack/internal/domain"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler serves the fixed exercise catalog the client builds its
// selection UI from.
type ExerciseHandler struct{}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler() *ExerciseHandler {
	return &ExerciseHandler{}
}

// GetCatalog returns the exercise catalog, optionally filtered to one body
// part via ?part=.
func (h *ExerciseHandler) GetCatalog(c *gin.Context) {
	part := c.Query("part")
	if part == "" {
		c.JSON(http.StatusOK, domain.Catalog())
		return
	}

	known := false
	for _, p := range domain.Parts() {
		if p == part {
			known = true
			break
		}
	}
	if !known {
		abortWithError(c, http.StatusBadRequest, "unknown body part")
		return
	}

	exercises := domain.CatalogByPart(part)
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	c.JSON(http.StatusOK, exercises)
}

// GetParts returns the body part vocabulary in display order.
func (h *ExerciseHandler) GetParts(c *gin.Context) {
	c.JSON(http.StatusOK, domain.Parts())
}
