package repository

import (
	"time"
)

// ActivityRepository определяет методы для работы с журналом активности
type ActivityRepository interface {
	// RecordDay фиксирует активность пользователя за календарный день.
	// Повторные действия за тот же день накапливают XP и счётчик действий
	// в одной записи (семантика множества по дням).
	RecordDay(userID uint, day time.Time, xpEarned int64) error

	// GetActivityDays возвращает календарные дни активности пользователя.
	GetActivityDays(userID uint) ([]time.Time, error)
}
