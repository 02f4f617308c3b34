package review

import (
	"errors"
	"net/http"
	"strconv"

	"grahini/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public *gin.RouterGroup) {
	public.GET("/reviews", h.ListApproved)
	public.POST("/reviews", h.Submit)
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	_, err := h.svc.Submit(c.Request.Context(), req)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid review", ve.Fields)
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}

	// The new identifier is intentionally not returned: the review is not
	// visible until a moderator approves it.
	response.Success(c, http.StatusCreated, gin.H{
		"message": "Review submitted for approval",
	})
}

func (h *Handler) ListApproved(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	items, err := h.svc.ListApproved(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}

	response.Success(c, http.StatusOK, ToResponseList(items))
}
