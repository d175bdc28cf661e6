package entity

import (
	"time"
)

// Категории бейджей
const (
	BadgeCategoryQuest     = "quest"
	BadgeCategoryStreak    = "streak"
	BadgeCategoryLevel     = "level"
	BadgeCategoryMilestone = "milestone"
)

// Badge — элемент каталога бейджей. Каталог статичен: загружается миграцией
// и не изменяется во время работы приложения.
type Badge struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Code        string `gorm:"size:50;not null;uniqueIndex" json:"code"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255;not null;default:''" json:"description"`
	Icon        string `gorm:"size:16;not null;default:''" json:"icon"`
	Category    string `gorm:"size:20;not null" json:"category"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (Badge) TableName() string {
	return "badges"
}

// UserBadge — факт получения бейджа пользователем.
// Пара (user_id, badge_id) уникальна: бейдж выдаётся один раз.
type UserBadge struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"not null;index;uniqueIndex:idx_user_badge" json:"user_id"`
	BadgeID  uint      `gorm:"not null;uniqueIndex:idx_user_badge" json:"badge_id"`
	EarnedAt time.Time `gorm:"not null" json:"earned_at"`

	Badge Badge `gorm:"foreignKey:BadgeID" json:"badge"`
}

// TableName определяет имя таблицы для GORM
func (UserBadge) TableName() string {
	return "user_badges"
}
