package handlers

import (
	"net/http"

	"scouting-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AppearanceHandler handles HTTP requests for the site appearance record
type AppearanceHandler struct {
	appearanceService service.AppearanceServiceInterface
}

// NewAppearanceHandler creates a new appearance handler
func NewAppearanceHandler(appearanceService service.AppearanceServiceInterface) *AppearanceHandler {
	return &AppearanceHandler{appearanceService: appearanceService}
}

// GetAppearance handles GET /appearance
// @Summary Get the site appearance
// @Description Public. Returns an empty cover URL when none has been set.
// @Tags appearance
// @Produce json
// @Success 200 {object} models.Appearance
// @Router /appearance [get]
func (h *AppearanceHandler) GetAppearance(c *gin.Context) {
	appearance, err := h.appearanceService.Get()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appearance)
}

// UpdateAppearance handles PUT /appearance
// @Summary Replace the site cover image
// @Description Administrator-only. The new cover overwrites the previous
// one under the same URL.
// @Tags appearance
// @Accept multipart/form-data
// @Produce json
// @Param portada formData file true "Cover image"
// @Success 200 {object} models.Appearance
// @Failure 400 {object} map[string]interface{} "Missing cover file"
// @Security BearerAuth
// @Router /appearance [put]
func (h *AppearanceHandler) UpdateAppearance(c *gin.Context) {
	cover, err := c.FormFile("portada")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cover file is required"})
		return
	}

	appearance, err := h.appearanceService.UpdateCover(cover)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appearance)
}
