package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jacksonlmp/taskflow/internal/http/dto"
	"github.com/jacksonlmp/taskflow/internal/http/middleware"
	"github.com/jacksonlmp/taskflow/internal/model"
	"github.com/jacksonlmp/taskflow/internal/service"
)

type ProfileHandler struct {
	profileService service.ProfileService
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	details, err := h.profileService.List(c.Request.Context(), user.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponses(details))
}

func (h *ProfileHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req dto.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	detail, err := h.profileService.Create(c.Request.Context(), user.ID, req.OrganizationID, model.Role(req.Role))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToProfileResponse(detail))
}

func (h *ProfileHandler) Get(c *gin.Context) {
	user := middleware.CurrentUser(c)

	profileID, ok := pathID(c)
	if !ok {
		return
	}

	detail, err := h.profileService.Get(c.Request.Context(), profileID, user.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(detail))
}

func (h *ProfileHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)

	profileID, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	detail, err := h.profileService.UpdateRole(c.Request.Context(), profileID, user.ID, model.Role(req.Role))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(detail))
}

func (h *ProfileHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	profileID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.profileService.Delete(c.Request.Context(), profileID, user.ID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
