package health

import (
	"net/http"
	"time"

	"grahini/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// pingRecord is a throwaway row used to confirm store connectivity.
type pingRecord struct {
	ID        int64     `gorm:"primaryKey"`
	Nonce     string    `gorm:"size:36;not null"`
	CreatedAt time.Time
}

func (pingRecord) TableName() string { return "ping" }

// Models returns the tables this module migrates.
func Models() []any {
	return []any{&pingRecord{}}
}

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

func (h *Handler) RegisterRoutes(public *gin.RouterGroup) {
	public.GET("/", h.Root)
	public.GET("/test", h.TestStore)
}

func (h *Handler) Root(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"message": "Grahini Ghee API running",
	})
}

// TestStore writes a throwaway record and reads it back. Diagnostics only;
// its failures are reported but nothing depends on them.
func (h *Handler) TestStore(c *gin.Context) {
	ctx := c.Request.Context()
	nonce := uuid.NewString()

	if err := h.db.WithContext(ctx).Create(&pingRecord{Nonce: nonce}).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_UNAVAILABLE", "Store write failed")
		return
	}

	var count int64
	if err := h.db.WithContext(ctx).Model(&pingRecord{}).Where("nonce = ?", nonce).Count(&count).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_UNAVAILABLE", "Store read failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"ok":    true,
		"count": count,
	})
}
