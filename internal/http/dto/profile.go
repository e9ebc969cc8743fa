package dto

import (
	"time"

	"github.com/jacksonlmp/taskflow/internal/service"
)

type CreateProfileRequest struct {
	OrganizationID int64  `json:"organization_id,string" binding:"required"`
	Role           string `json:"role" binding:"omitempty,oneof=owner admin member viewer"`
}

type UpdateProfileRequest struct {
	Role string `json:"role" binding:"required,oneof=owner admin member viewer"`
}

type ProfileResponse struct {
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
	User         *UserResponse         `json:"user"`
	Organization *OrganizationResponse `json:"organization"`
	Role         string                `json:"role"`
	ID           int64                 `json:"id,string"`
}

func ToProfileResponse(d *service.ProfileDetail) *ProfileResponse {
	return &ProfileResponse{
		ID:           d.Profile.ID,
		User:         ToUserResponse(&d.User),
		Organization: ToOrganizationResponse(&d.Organization, d.OrgMemberCount),
		Role:         string(d.Profile.Role),
		CreatedAt:    d.Profile.CreatedAt,
		UpdatedAt:    d.Profile.UpdatedAt,
	}
}

func ToProfileResponses(details []service.ProfileDetail) []ProfileResponse {
	result := make([]ProfileResponse, len(details))
	for i := range details {
		result[i] = *ToProfileResponse(&details[i])
	}
	return result
}
