package entity

import (
	"strings"
	"time"
)

// User представляет пользователя обучающей платформы.
//
// TotalXP — авторитетное значение прогрессии. Уровень НЕ хранится:
// он всегда пересчитывается из TotalXP по таблице уровней, чтобы
// исключить расхождение между сохранённым и фактическим уровнем.
type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Username       string `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Email          string `gorm:"size:100;not null;uniqueIndex" json:"email"`
	ProfilePicture string `gorm:"size:255;not null;default:''" json:"profile_picture"`

	TotalXP         int64 `gorm:"not null;default:0;index:idx_users_total_xp" json:"total_xp"`
	QuestsCompleted int64 `gorm:"not null;default:0" json:"quests_completed"`

	// CurrentStreak — волатильное значение, пересчитывается при записи активности.
	CurrentStreak int `gorm:"not null;default:0" json:"current_streak"`
	// LongestStreak — исторический максимум, обновляется только в большую сторону.
	LongestStreak int `gorm:"not null;default:0" json:"longest_streak"`

	IsActive bool `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (User) TableName() string {
	return "users"
}

// DisplayName возвращает имя для отображения в лидерборде.
func (u *User) DisplayName() string {
	if name := strings.TrimSpace(u.Username); name != "" {
		return name
	}
	return "anonymous"
}
