package entity

import (
	"time"
)

// ActivityLog — запись активности пользователя за один календарный день.
//
// Семантика множества: несколько действий за день схлопываются в одну
// запись (уникальный индекс user_id + activity_date), XPEarned и
// ActionCount при этом накапливаются. Именно эти записи служат входом
// для расчёта стриков и оконного XP лидерборда.
type ActivityLog struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index;uniqueIndex:idx_user_activity_day" json:"user_id"`

	// ActivityDate — календарный день активности (полночь UTC, без времени суток).
	ActivityDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_user_activity_day;index:idx_activity_date" json:"activity_date"`

	// XPEarned — суммарный XP, заработанный за этот день.
	XPEarned int64 `gorm:"not null;default:0" json:"xp_earned"`
	// ActionCount — число засчитанных действий за день.
	ActionCount int `gorm:"not null;default:1" json:"action_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (ActivityLog) TableName() string {
	return "activity_logs"
}
