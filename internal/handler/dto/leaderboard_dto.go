package dto

import (
	"time"

	"github.com/yourusername/questlog-api/internal/gamification"
)

// PaginatedLeaderboardResponse представляет пагинированный ответ для лидерборда
type PaginatedLeaderboardResponse struct {
	Window  gamification.Window             `json:"window"`   // Запрошенное окно
	Entries []gamification.LeaderboardEntry `json:"entries"`  // Позиции на странице
	Total   int                             `json:"total"`    // Общее количество участников
	Page    int                             `json:"page"`     // Текущая страница
	PerPage int                             `json:"per_page"` // Количество позиций на странице
}

// BadgeDTO — бейдж каталога для отображения
type BadgeDTO struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
}

// UserBadgeDTO — выданный пользователю бейдж
type UserBadgeDTO struct {
	BadgeDTO
	EarnedAt time.Time `json:"earned_at"`
}
