package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jacksonlmp/taskflow/internal/http/dto"
	"github.com/jacksonlmp/taskflow/internal/http/middleware"
	"github.com/jacksonlmp/taskflow/internal/service"
)

type OrganizationHandler struct {
	orgService service.OrganizationService
}

func NewOrganizationHandler(orgService service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService}
}

func (h *OrganizationHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	details, err := h.orgService.List(c.Request.Context(), user.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrganizationResponses(details))
}

func (h *OrganizationHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	detail, err := h.orgService.Create(c.Request.Context(), user.ID, req.Name, req.Description)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToOrganizationResponse(&detail.Organization, detail.MemberCount))
}

func (h *OrganizationHandler) Get(c *gin.Context) {
	user := middleware.CurrentUser(c)

	orgID, ok := pathID(c)
	if !ok {
		return
	}

	detail, err := h.orgService.Get(c.Request.Context(), orgID, user.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrganizationResponse(&detail.Organization, detail.MemberCount))
}

func (h *OrganizationHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)

	orgID, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	detail, err := h.orgService.Update(c.Request.Context(), orgID, user.ID, service.UpdateOrganizationParams{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrganizationResponse(&detail.Organization, detail.MemberCount))
}

func (h *OrganizationHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	orgID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.orgService.Delete(c.Request.Context(), orgID, user.ID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrganizationHandler) Members(c *gin.Context) {
	user := middleware.CurrentUser(c)

	orgID, ok := pathID(c)
	if !ok {
		return
	}

	details, err := h.orgService.Members(c.Request.Context(), orgID, user.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponses(details))
}

// Current resolves the caller's default organization; a caller with no
// profile anywhere gets the distinguished 404 body.
func (h *OrganizationHandler) Current(c *gin.Context) {
	user := middleware.CurrentUser(c)

	detail, err := h.orgService.Current(c.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, service.ErrNoOrganization) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "No organization found for user"})
			return
		}
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrganizationResponse(&detail.Organization, detail.MemberCount))
}
