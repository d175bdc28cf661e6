package postgres

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yourusername/questlog-api/internal/domain/entity"
)

// ActivityRepo реализует repository.ActivityRepository
type ActivityRepo struct {
	db *gorm.DB
}

// NewActivityRepo создает новый репозиторий журнала активности
func NewActivityRepo(db *gorm.DB) *ActivityRepo {
	return &ActivityRepo{db: db}
}

// RecordDay фиксирует активность пользователя за календарный день.
// Upsert по уникальной паре (user_id, activity_date): повторные действия
// за день накапливают XP и счётчик действий в существующей записи.
func (r *ActivityRepo) RecordDay(userID uint, day time.Time, xpEarned int64) error {
	record := entity.ActivityLog{
		UserID:       userID,
		ActivityDate: day,
		XPEarned:     xpEarned,
		ActionCount:  1,
	}

	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "activity_date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"xp_earned":    gorm.Expr("activity_logs.xp_earned + ?", xpEarned),
			"action_count": gorm.Expr("activity_logs.action_count + 1"),
			"updated_at":   gorm.Expr("NOW()"),
		}),
	}).Create(&record).Error
}

// GetActivityDays возвращает календарные дни активности пользователя,
// по убыванию (самый свежий первым).
func (r *ActivityRepo) GetActivityDays(userID uint) ([]time.Time, error) {
	var days []time.Time
	err := r.db.Model(&entity.ActivityLog{}).
		Where("user_id = ?", userID).
		Order("activity_date DESC").
		Pluck("activity_date", &days).Error
	return days, err
}
