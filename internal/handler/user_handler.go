package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/questlog-api/internal/handler/dto"
	apperrors "github.com/yourusername/questlog-api/internal/pkg/errors"
	"github.com/yourusername/questlog-api/internal/service"
)

// UserHandler обрабатывает запросы, связанные с прогрессией пользователей
type UserHandler struct {
	progressionService *service.ProgressionService
	activityService    *service.ActivityService
	badgeService       *service.BadgeService
}

// NewUserHandler создает новый обработчик пользователей
func NewUserHandler(
	progressionService *service.ProgressionService,
	activityService *service.ActivityService,
	badgeService *service.BadgeService,
) *UserHandler {
	return &UserHandler{
		progressionService: progressionService,
		activityService:    activityService,
		badgeService:       badgeService,
	}
}

// GetProgression обрабатывает запрос на получение прогрессии пользователя:
// уровень, титул и прогресс к следующему уровню
func (h *UserHandler) GetProgression(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	progression, err := h.progressionService.GetUserProgression(userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error getting progression"})
		return
	}

	c.JSON(http.StatusOK, progression)
}

// GetStreak обрабатывает запрос на получение стрика пользователя
func (h *UserHandler) GetStreak(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	streak, err := h.activityService.GetUserStreak(userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error getting streak"})
		return
	}

	c.JSON(http.StatusOK, streak)
}

// GetBadges обрабатывает запрос на получение бейджей пользователя
func (h *UserHandler) GetBadges(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	badges, err := h.badgeService.GetUserBadges(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error getting badges"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_id": userID, "badges": badges})
}

// RecordActivity обрабатывает запрос на фиксацию активности пользователя
func (h *UserHandler) RecordActivity(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var req dto.RecordActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.activityService.RecordActivity(userID, time.Now().UTC(), req.XPEarned, req.QuestCompleted)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error recording activity"})
		return
	}

	c.JSON(http.StatusOK, result)
}
