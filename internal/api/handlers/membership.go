package handlers

import (
	"net/http"

	"scouting-planner-backend/internal/auth"
	"scouting-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MembershipHandler handles HTTP requests for membership operations
type MembershipHandler struct {
	membershipService service.MembershipServiceInterface
}

// NewMembershipHandler creates a new membership handler
func NewMembershipHandler(membershipService service.MembershipServiceInterface) *MembershipHandler {
	return &MembershipHandler{membershipService: membershipService}
}

// ListMemberships handles GET /memberships
// @Summary List memberships visible to the caller
// @Description Administrators see every membership; other callers see the
// memberships of teams they coordinate.
// @Tags memberships
// @Produce json
// @Success 200 {array} models.Membership
// @Security BearerAuth
// @Router /memberships [get]
func (h *MembershipHandler) ListMemberships(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	memberships, err := h.membershipService.ListForCaller(user)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, memberships)
}

// CreateMembership handles POST /memberships
// @Summary Add a profile to a team
// @Description Only the coordinator of the target team may add members.
// @Tags memberships
// @Accept json
// @Produce json
// @Param membership body service.CreateMembershipRequest true "Membership data"
// @Success 201 {object} models.Membership
// @Failure 403 {object} map[string]interface{} "Caller does not coordinate the team"
// @Security BearerAuth
// @Router /memberships [post]
func (h *MembershipHandler) CreateMembership(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req service.CreateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	membership, err := h.membershipService.Create(user, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, membership)
}

// DeleteMembership handles DELETE /memberships/:id
// @Summary Remove a membership
// @Tags memberships
// @Produce json
// @Param id path string true "Membership ID (UUID)"
// @Success 200 {object} map[string]interface{} "ok"
// @Failure 404 {object} map[string]interface{} "Membership not found"
// @Failure 403 {object} map[string]interface{} "Caller may not remove this membership"
// @Security BearerAuth
// @Router /memberships/{id} [delete]
func (h *MembershipHandler) DeleteMembership(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid membership ID"})
		return
	}

	if err := h.membershipService.Delete(user, id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
