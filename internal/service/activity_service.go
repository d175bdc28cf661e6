package service

import (
	"log"
	"time"

	"github.com/yourusername/questlog-api/internal/domain/repository"
	"github.com/yourusername/questlog-api/internal/gamification"
	"github.com/yourusername/questlog-api/internal/handler/dto"
)

// ActivityService фиксирует активность пользователей и поддерживает
// актуальность производных значений: XP, стриков, бейджей.
type ActivityService struct {
	userRepo     repository.UserRepository
	activityRepo repository.ActivityRepository
	badgeService *BadgeService
	leaderboard  *LeaderboardService
	table        gamification.Table
}

// NewActivityService создает новый сервис активности
func NewActivityService(
	userRepo repository.UserRepository,
	activityRepo repository.ActivityRepository,
	badgeService *BadgeService,
	leaderboard *LeaderboardService,
	table gamification.Table,
) *ActivityService {
	return &ActivityService{
		userRepo:     userRepo,
		activityRepo: activityRepo,
		badgeService: badgeService,
		leaderboard:  leaderboard,
		table:        table,
	}
}

// RecordActivity фиксирует засчитываемое действие пользователя.
//
// Последовательность: запись дня в журнал (upsert), начисление XP,
// полный пересчёт стрика по истории, проверка критериев бейджей.
// Ошибки выдачи бейджей и инвалидации кеша не фатальны для запроса:
// активность уже зафиксирована, остальное — производные значения.
func (s *ActivityService) RecordActivity(userID uint, occurredAt time.Time, xpEarned int64, questCompleted bool) (*dto.RecordActivityResponse, error) {
	// Отрицательный XP — некорректный ввод коллаборатора: приводим к 0,
	// а не отклоняем запрос.
	if xpEarned < 0 {
		log.Printf("[ActivityService] Отрицательный XP (%d) от пользователя %d приведён к 0", xpEarned, userID)
		xpEarned = 0
	}
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	if err := s.activityRepo.RecordDay(userID, dayOf(occurredAt), xpEarned); err != nil {
		log.Printf("[ActivityService] Ошибка записи активности пользователя %d: %v", userID, err)
		return nil, err
	}

	if xpEarned > 0 {
		if err := s.userRepo.AddXP(userID, xpEarned); err != nil {
			log.Printf("[ActivityService] Ошибка начисления XP пользователю %d: %v", userID, err)
			return nil, err
		}
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if questCompleted {
		user.QuestsCompleted++
		if err := s.userRepo.Update(user); err != nil {
			log.Printf("[ActivityService] Ошибка обновления счётчика квестов пользователя %d: %v", userID, err)
			return nil, err
		}
	}

	// Стрик пересчитывается с нуля по всей истории, а не инкрементально.
	streak, err := s.recomputeStreak(userID, occurredAt, user.LongestStreak)
	if err != nil {
		return nil, err
	}
	user.CurrentStreak = streak.CurrentStreak
	user.LongestStreak = streak.LongestStreak

	// Проверка бейджей: ошибка не роняет запрос.
	var newBadges []string
	awarded, err := s.badgeService.CheckAndAward(user)
	if err != nil {
		log.Printf("[ActivityService] Ошибка проверки бейджей пользователя %d: %v", userID, err)
	} else {
		newBadges = awarded
	}

	// XP изменился — кешированные окна лидерборда устарели.
	if s.leaderboard != nil {
		s.leaderboard.InvalidateCache()
	}

	info := gamification.Resolve(user.TotalXP, s.table)

	return &dto.RecordActivityResponse{
		UserID:        user.ID,
		TotalXP:       user.TotalXP,
		Level:         info.Level,
		Title:         info.Title,
		CurrentStreak: streak.CurrentStreak,
		LongestStreak: streak.LongestStreak,
		NewBadges:     newBadges,
	}, nil
}

// GetUserStreak возвращает состояние стрика пользователя, пересчитанное
// по полной истории активности на текущий момент.
func (s *ActivityService) GetUserStreak(userID uint) (*dto.StreakResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	streak, err := s.recomputeStreak(userID, time.Now().UTC(), user.LongestStreak)
	if err != nil {
		return nil, err
	}

	return &dto.StreakResponse{
		UserID:        userID,
		CurrentStreak: streak.CurrentStreak,
		LongestStreak: streak.LongestStreak,
	}, nil
}

// recomputeStreak пересчитывает стрик по журналу активности и сохраняет его.
// Исторический максимум не уменьшается: берётся максимум рассчитанного
// значения и уже сохранённого.
func (s *ActivityService) recomputeStreak(userID uint, referenceDate time.Time, storedLongest int) (gamification.StreakState, error) {
	days, err := s.activityRepo.GetActivityDays(userID)
	if err != nil {
		log.Printf("[ActivityService] Ошибка чтения журнала активности пользователя %d: %v", userID, err)
		return gamification.StreakState{}, err
	}

	streak := gamification.ComputeStreak(days, referenceDate)
	if streak.LongestStreak < storedLongest {
		streak.LongestStreak = storedLongest
	}

	if err := s.userRepo.UpdateStreaks(userID, streak.CurrentStreak, streak.LongestStreak); err != nil {
		log.Printf("[ActivityService] Ошибка сохранения стрика пользователя %d: %v", userID, err)
		return gamification.StreakState{}, err
	}

	return streak, nil
}

// dayOf отбрасывает время суток, оставляя календарный день в UTC.
func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
