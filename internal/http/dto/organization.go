package dto

import (
	"time"

	"github.com/jacksonlmp/taskflow/internal/model"
	"github.com/jacksonlmp/taskflow/internal/service"
)

// Slug, timestamps and ids are server-assigned; the request shapes simply
// have no fields for them.
type CreateOrganizationRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description"`
}

type UpdateOrganizationRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description"`
}

type OrganizationResponse struct {
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	ID          int64     `json:"id,string"`
	MemberCount int64     `json:"member_count"`
}

func ToOrganizationResponse(org *model.Organization, memberCount int64) *OrganizationResponse {
	if org == nil {
		return nil
	}
	return &OrganizationResponse{
		ID:          org.ID,
		Name:        org.Name,
		Slug:        org.Slug,
		Description: org.Description,
		MemberCount: memberCount,
		CreatedAt:   org.CreatedAt,
		UpdatedAt:   org.UpdatedAt,
	}
}

func ToOrganizationResponses(details []service.OrganizationDetail) []OrganizationResponse {
	result := make([]OrganizationResponse, len(details))
	for i, d := range details {
		result[i] = *ToOrganizationResponse(&d.Organization, d.MemberCount)
	}
	return result
}
