package dto

import (
	"github.com/yourusername/questlog-api/internal/gamification"
)

// ProgressionResponse — прогрессия пользователя для отображения.
// Уровень и прогресс всегда пересчитаны из авторитетного TotalXP.
type ProgressionResponse struct {
	UserID   uint                       `json:"user_id"`
	Username string                     `json:"username"`
	TotalXP  int64                      `json:"total_xp"`
	Level    int                        `json:"level"`
	Title    string                     `json:"title"`
	MaxLevel int                        `json:"max_level"`
	Progress gamification.LevelProgress `json:"progress"`
}

// StreakResponse — состояние стрика пользователя.
type StreakResponse struct {
	UserID        uint `json:"user_id"`
	CurrentStreak int  `json:"current_streak"`
	LongestStreak int  `json:"longest_streak"`
}

// RecordActivityRequest — запрос на фиксацию активности пользователя.
type RecordActivityRequest struct {
	// XPEarned — XP за действие. Отрицательные значения приводятся к 0.
	XPEarned int64 `json:"xp_earned"`
	// QuestCompleted — действие завершило квест (влияет на счётчик квестов).
	QuestCompleted bool `json:"quest_completed"`
}

// RecordActivityResponse — результат фиксации активности.
type RecordActivityResponse struct {
	UserID        uint     `json:"user_id"`
	TotalXP       int64    `json:"total_xp"`
	Level         int      `json:"level"`
	Title         string   `json:"title"`
	CurrentStreak int      `json:"current_streak"`
	LongestStreak int      `json:"longest_streak"`
	NewBadges     []string `json:"new_badges"`
}
