package handlers

import (
	"net/http"

	"scouting-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ScoutGroupHandler handles HTTP requests for scout group operations
type ScoutGroupHandler struct {
	groupService service.ScoutGroupServiceInterface
}

// NewScoutGroupHandler creates a new scout group handler
func NewScoutGroupHandler(groupService service.ScoutGroupServiceInterface) *ScoutGroupHandler {
	return &ScoutGroupHandler{groupService: groupService}
}

// ListScoutGroups handles GET /scout-groups
// @Summary List all scout groups
// @Tags scout-groups
// @Produce json
// @Success 200 {array} models.ScoutGroup
// @Security BearerAuth
// @Router /scout-groups [get]
func (h *ScoutGroupHandler) ListScoutGroups(c *gin.Context) {
	groups, err := h.groupService.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// GetScoutGroup handles GET /scout-groups/:id
// @Summary Get a scout group by ID
// @Tags scout-groups
// @Produce json
// @Param id path string true "Scout group ID (UUID)"
// @Success 200 {object} models.ScoutGroup
// @Failure 404 {object} map[string]interface{} "Scout group not found"
// @Security BearerAuth
// @Router /scout-groups/{id} [get]
func (h *ScoutGroupHandler) GetScoutGroup(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scout group ID"})
		return
	}

	group, err := h.groupService.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

// CreateScoutGroup handles POST /scout-groups
// @Summary Create a scout group
// @Tags scout-groups
// @Accept json
// @Produce json
// @Param group body service.CreateScoutGroupRequest true "Scout group data"
// @Success 201 {object} models.ScoutGroup
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Security BearerAuth
// @Router /scout-groups [post]
func (h *ScoutGroupHandler) CreateScoutGroup(c *gin.Context) {
	var req service.CreateScoutGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.groupService.Create(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, group)
}

// UpdateScoutGroup handles PUT /scout-groups/:id
// @Summary Update a scout group
// @Tags scout-groups
// @Accept json
// @Produce json
// @Param id path string true "Scout group ID (UUID)"
// @Param group body service.UpdateScoutGroupRequest true "Fields to update"
// @Success 200 {object} models.ScoutGroup
// @Failure 404 {object} map[string]interface{} "Scout group not found"
// @Security BearerAuth
// @Router /scout-groups/{id} [put]
func (h *ScoutGroupHandler) UpdateScoutGroup(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scout group ID"})
		return
	}

	var req service.UpdateScoutGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.groupService.Update(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

// DeleteScoutGroup handles DELETE /scout-groups/:id
// @Summary Delete a scout group
// @Tags scout-groups
// @Produce json
// @Param id path string true "Scout group ID (UUID)"
// @Success 200 {object} map[string]interface{} "ok"
// @Failure 404 {object} map[string]interface{} "Scout group not found"
// @Security BearerAuth
// @Router /scout-groups/{id} [delete]
func (h *ScoutGroupHandler) DeleteScoutGroup(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scout group ID"})
		return
	}

	if err := h.groupService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
