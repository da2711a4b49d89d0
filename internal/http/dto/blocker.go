package dto

import (
	"time"

	"github.com/mcandidier/workflow/internal/model"
)

type BlockerResponse struct {
	CreatedAt   time.Time `json:"created_at"`
	Description string    `json:"description"`
	ProjectID   *int64    `json:"project_id,omitempty"`
	ID          int64     `json:"id,string"`
	ReportID    int64     `json:"report_id,string"`
	IsFixed     bool      `json:"is_fixed"`
}

func ToBlockerResponses(blockers []model.Blocker) []BlockerResponse {
	result := make([]BlockerResponse, len(blockers))
	for i, b := range blockers {
		result[i] = BlockerResponse{
			ID:          b.ID,
			ReportID:    b.ReportID,
			ProjectID:   b.ProjectID,
			Description: b.Description,
			IsFixed:     b.IsFixed,
			CreatedAt:   b.CreatedAt,
		}
	}
	return result
}

type PendingIssueGroupResponse struct {
	BlockerIDs []int64 `json:"blocker_ids"`
	ProjectID  int64   `json:"project_id,string"`
}

func ToPendingIssueGroupResponses(groups []model.PendingIssueGroup) []PendingIssueGroupResponse {
	result := make([]PendingIssueGroupResponse, len(groups))
	for i, g := range groups {
		result[i] = PendingIssueGroupResponse{
			ProjectID:  g.ProjectID,
			BlockerIDs: g.BlockerIDs,
		}
	}
	return result
}
