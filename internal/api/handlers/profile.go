package handlers

import (
	"net/http"

	"scouting-planner-backend/internal/auth"
	"scouting-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler handles HTTP requests for the caller's own profile
type ProfileHandler struct {
	profileService service.ProfileServiceInterface
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService service.ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetMyProfile handles GET /users/me/profile
// @Summary Get the caller's profile
// @Tags profile
// @Produce json
// @Success 200 {object} models.Profile
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Security BearerAuth
// @Router /users/me/profile [get]
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	profile, err := h.profileService.GetByUserID(user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpsertMyProfile handles PUT /users/me/profile
// @Summary Create or update the caller's profile
// @Description Multipart form upsert. Fields absent from the form keep
// their stored values; an optional foto file replaces the profile photo.
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Param nombre formData string true "First name"
// @Param apellido formData string true "Last name"
// @Param fecha_nac formData string true "Birth date (YYYY-MM-DD)"
// @Param departamento formData string true "Department"
// @Param distrito formData string true "District"
// @Param telefono formData string false "Phone"
// @Param grupo_scout formData string false "Scout group name"
// @Param comunidad formData string false "Community"
// @Param direccion formData string false "Address"
// @Param redes_sociales formData string false "Social media"
// @Param foto formData file false "Profile photo"
// @Success 200 {object} models.Profile
// @Failure 400 {object} map[string]interface{} "Invalid form data"
// @Security BearerAuth
// @Router /users/me/profile [put]
func (h *ProfileHandler) UpsertMyProfile(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	req := service.UpsertProfileRequest{
		Nombre:       c.PostForm("nombre"),
		Apellido:     c.PostForm("apellido"),
		FechaNac:     c.PostForm("fecha_nac"),
		Departamento: c.PostForm("departamento"),
		Distrito:     c.PostForm("distrito"),
	}
	req.Telefono = optionalFormField(c, "telefono")
	req.GrupoScout = optionalFormField(c, "grupo_scout")
	req.Comunidad = optionalFormField(c, "comunidad")
	req.Direccion = optionalFormField(c, "direccion")
	req.RedesSociales = optionalFormField(c, "redes_sociales")

	// Photo is optional; any other form-file error is a bad request.
	photo, err := c.FormFile("foto")
	if err != nil && err != http.ErrMissingFile {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileService.Upsert(user.ID, &req, photo)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// optionalFormField distinguishes an absent form field from an empty one
func optionalFormField(c *gin.Context, name string) *string {
	if value, ok := c.GetPostForm(name); ok {
		return &value
	}
	return nil
}
