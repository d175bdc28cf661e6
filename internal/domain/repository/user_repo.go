package repository

import (
	"time"

	"github.com/yourusername/questlog-api/internal/domain/entity"
)

// LeaderboardRow — сырая строка для движка ранжирования: агрегаты одного
// пользователя в запрошенном окне. Уровень здесь не вычисляется — его
// разрешает сервис по таблице уровней.
type LeaderboardRow struct {
	UserID        uint
	Username      string
	TotalXP       int64
	BadgeCount    int
	CurrentStreak int
}

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	GetByID(id uint) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Create(user *entity.User) error
	Update(user *entity.User) error

	// AddXP атомарно увеличивает суммарный XP пользователя.
	AddXP(userID uint, amount int64) error

	// UpdateStreaks сохраняет пересчитанные стрики. LongestStreak в базе
	// обновляется только в большую сторону.
	UpdateStreaks(userID uint, current, longest int) error

	// GetLeaderboardRows возвращает агрегаты активных пользователей для
	// лидерборда. since == nil означает окно all_time (суммарный XP из
	// профиля); иначе XP суммируется по activity_logs начиная с since.
	GetLeaderboardRows(since *time.Time) ([]LeaderboardRow, error)
}
