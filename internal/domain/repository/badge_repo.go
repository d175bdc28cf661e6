package repository

import (
	"github.com/yourusername/questlog-api/internal/domain/entity"
)

// BadgeRepository определяет методы для работы с каталогом бейджей
// и выданными бейджами
type BadgeRepository interface {
	// ListCatalog возвращает весь каталог бейджей.
	ListCatalog() ([]entity.Badge, error)

	// GetByCode возвращает бейдж каталога по коду.
	GetByCode(code string) (*entity.Badge, error)

	// GetUserBadges возвращает бейджи пользователя вместе с данными каталога.
	GetUserBadges(userID uint) ([]entity.UserBadge, error)

	// GetUserBadgeCodes возвращает коды уже выданных пользователю бейджей.
	GetUserBadgeCodes(userID uint) ([]string, error)

	// Award выдаёт бейдж. Повторная выдача того же бейджа возвращает ErrConflict.
	Award(userBadge *entity.UserBadge) error
}
