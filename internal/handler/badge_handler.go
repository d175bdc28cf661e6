package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/questlog-api/internal/service"
)

// BadgeHandler обрабатывает запросы к каталогу бейджей
type BadgeHandler struct {
	badgeService *service.BadgeService
}

// NewBadgeHandler создает новый обработчик каталога бейджей
func NewBadgeHandler(badgeService *service.BadgeService) *BadgeHandler {
	return &BadgeHandler{
		badgeService: badgeService,
	}
}

// GetCatalog обрабатывает запрос на получение каталога бейджей
func (h *BadgeHandler) GetCatalog(c *gin.Context) {
	catalog, err := h.badgeService.GetCatalog()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error getting badge catalog"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"badges": catalog})
}
