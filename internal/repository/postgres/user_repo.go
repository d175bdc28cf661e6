package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/yourusername/questlog-api/internal/domain/entity"
	"github.com/yourusername/questlog-api/internal/domain/repository"
	apperrors "github.com/yourusername/questlog-api/internal/pkg/errors"
)

// UserRepo реализует repository.UserRepository
type UserRepo struct {
	db *gorm.DB
}

// NewUserRepo создает новый репозиторий пользователей
func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// GetByID возвращает пользователя по ID
func (r *UserRepo) GetByID(id uint) (*entity.User, error) {
	var user entity.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByUsername возвращает пользователя по имени
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	var user entity.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Create создает нового пользователя
func (r *UserRepo) Create(user *entity.User) error {
	return r.db.Create(user).Error
}

// Update обновляет данные пользователя
func (r *UserRepo) Update(user *entity.User) error {
	return r.db.Save(user).Error
}

// AddXP атомарно увеличивает суммарный XP пользователя
func (r *UserRepo) AddXP(userID uint, amount int64) error {
	result := r.db.Model(&entity.User{}).
		Where("id = ?", userID).
		UpdateColumn("total_xp", gorm.Expr("total_xp + ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateStreaks сохраняет пересчитанные стрики пользователя.
// longest_streak обновляется только в большую сторону — исторический
// максимум не должен уменьшаться даже при некорректном входе.
func (r *UserRepo) UpdateStreaks(userID uint, current, longest int) error {
	result := r.db.Model(&entity.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"current_streak": current,
			"longest_streak": gorm.Expr("GREATEST(longest_streak, ?)", longest),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// GetLeaderboardRows возвращает агрегаты активных пользователей для лидерборда.
// since == nil — окно all_time: берём авторитетный total_xp из профиля.
// Иначе XP суммируется по журналу активности начиная с указанного дня.
// Сортировку и назначение рангов репозиторий НЕ делает — это работа
// движка ранжирования.
func (r *UserRepo) GetLeaderboardRows(since *time.Time) ([]repository.LeaderboardRow, error) {
	var rows []repository.LeaderboardRow

	if since == nil {
		err := r.db.Raw(`
			SELECT u.id AS user_id,
			       u.username,
			       u.total_xp,
			       (SELECT COUNT(*) FROM user_badges ub WHERE ub.user_id = u.id) AS badge_count,
			       u.current_streak
			FROM users u
			WHERE u.is_active = true`).Scan(&rows).Error
		return rows, err
	}

	err := r.db.Raw(`
		SELECT u.id AS user_id,
		       u.username,
		       COALESCE(SUM(a.xp_earned), 0) AS total_xp,
		       (SELECT COUNT(*) FROM user_badges ub WHERE ub.user_id = u.id) AS badge_count,
		       u.current_streak
		FROM users u
		LEFT JOIN activity_logs a
		       ON a.user_id = u.id AND a.activity_date >= ?
		WHERE u.is_active = true
		GROUP BY u.id, u.username, u.current_streak`, *since).Scan(&rows).Error
	return rows, err
}
