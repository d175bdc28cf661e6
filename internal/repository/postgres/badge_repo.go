package postgres

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/yourusername/questlog-api/internal/domain/entity"
	apperrors "github.com/yourusername/questlog-api/internal/pkg/errors"
)

// BadgeRepo реализует repository.BadgeRepository
type BadgeRepo struct {
	db *gorm.DB
}

// NewBadgeRepo создает новый репозиторий бейджей
func NewBadgeRepo(db *gorm.DB) *BadgeRepo {
	return &BadgeRepo{db: db}
}

// ListCatalog возвращает весь каталог бейджей
func (r *BadgeRepo) ListCatalog() ([]entity.Badge, error) {
	var badges []entity.Badge
	err := r.db.Order("id ASC").Find(&badges).Error
	return badges, err
}

// GetByCode возвращает бейдж каталога по коду
func (r *BadgeRepo) GetByCode(code string) (*entity.Badge, error) {
	var badge entity.Badge
	err := r.db.Where("code = ?", code).First(&badge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &badge, nil
}

// GetUserBadges возвращает бейджи пользователя вместе с данными каталога
func (r *BadgeRepo) GetUserBadges(userID uint) ([]entity.UserBadge, error) {
	var userBadges []entity.UserBadge
	err := r.db.Preload("Badge").
		Where("user_id = ?", userID).
		Order("earned_at DESC").
		Find(&userBadges).Error
	return userBadges, err
}

// GetUserBadgeCodes возвращает коды уже выданных пользователю бейджей
func (r *BadgeRepo) GetUserBadgeCodes(userID uint) ([]string, error) {
	var codes []string
	err := r.db.Model(&entity.UserBadge{}).
		Joins("JOIN badges ON badges.id = user_badges.badge_id").
		Where("user_badges.user_id = ?", userID).
		Pluck("badges.code", &codes).Error
	return codes, err
}

// Award выдаёт бейдж пользователю.
// Дубликат по паре (user_id, badge_id) транслируется в ErrConflict.
func (r *BadgeRepo) Award(userBadge *entity.UserBadge) error {
	err := r.db.Create(userBadge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) ||
			strings.Contains(err.Error(), "duplicate key") {
			return apperrors.ErrConflict
		}
		return err
	}
	return nil
}
