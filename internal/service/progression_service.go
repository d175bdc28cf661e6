package service

import (
	"log"

	"github.com/yourusername/questlog-api/internal/domain/repository"
	"github.com/yourusername/questlog-api/internal/gamification"
	"github.com/yourusername/questlog-api/internal/handler/dto"
)

// ProgressionService предоставляет методы для расчёта прогрессии пользователя.
// Уровень и прогресс никогда не читаются из хранилища: они всегда
// пересчитываются из авторитетного TotalXP по таблице уровней.
type ProgressionService struct {
	userRepo repository.UserRepository
	table    gamification.Table
}

// NewProgressionService создает новый сервис прогрессии.
// Таблица уровней передаётся явно (она провалидирована при старте).
func NewProgressionService(userRepo repository.UserRepository, table gamification.Table) *ProgressionService {
	return &ProgressionService{
		userRepo: userRepo,
		table:    table,
	}
}

// GetUserProgression возвращает уровень, титул и прогресс пользователя.
func (s *ProgressionService) GetUserProgression(userID uint) (*dto.ProgressionResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		log.Printf("[ProgressionService] Ошибка при получении пользователя %d: %v", userID, err)
		return nil, err
	}

	info := gamification.Resolve(user.TotalXP, s.table)
	progress := gamification.Progress(user.TotalXP, info.Level, s.table)

	return &dto.ProgressionResponse{
		UserID:   user.ID,
		Username: user.DisplayName(),
		TotalXP:  user.TotalXP,
		Level:    info.Level,
		Title:    info.Title,
		MaxLevel: s.table.MaxLevel(),
		Progress: progress,
	}, nil
}
