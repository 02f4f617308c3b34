package moderation

type ApproveRequest struct {
	ReviewID string `json:"review_id" binding:"required"`
	Approved bool   `json:"approved"`
}
