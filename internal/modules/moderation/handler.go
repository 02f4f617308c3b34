package moderation

import (
	"net/http"
	"strconv"

	"grahini/internal/modules/review"
	"grahini/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes wires the admin surface; the group is expected to carry
// the token auth middleware.
func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/reviews", h.List)
	admin.POST("/reviews/approve", h.Approve)
}

func (h *Handler) List(c *gin.Context) {
	includeAll, _ := strconv.ParseBool(c.Query("include_all"))

	items, err := h.svc.List(c.Request.Context(), includeAll)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}

	response.Success(c, http.StatusOK, review.ToResponseList(items))
}

func (h *Handler) Approve(c *gin.Context) {
	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	id, err := strconv.ParseInt(req.ReviewID, 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid review ID")
		return
	}

	if err := h.svc.SetApproval(c.Request.Context(), id, req.Approved); err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"approved": req.Approved})
}
