package dto

import "github.com/cargoplus/collections_backend/internal/core/domain"

// GuardStatusResponse is the sequencing guard's answer for one collector.
type GuardStatusResponse struct {
	Allow               bool   `json:"allow"`
	RequiredClosureDate string `json:"requiredClosureDate,omitempty"`
	Message             string `json:"message,omitempty"`
}

// ToGuardStatusResponse converts a domain.GuardStatus to its DTO.
func ToGuardStatusResponse(status *domain.GuardStatus) GuardStatusResponse {
	resp := GuardStatusResponse{Allow: status.Allow}
	if !status.Allow && status.RequiredClosureDate != nil {
		resp.RequiredClosureDate = status.RequiredClosureDate.Format(ClosureDateFormat)
		resp.Message = "A cash closure for " + resp.RequiredClosureDate + " must be created before recording new payments."
	}
	return resp
}
