package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/questlog-api/internal/domain/entity"
	"github.com/yourusername/questlog-api/internal/domain/repository"
	"github.com/yourusername/questlog-api/internal/gamification"
	"github.com/yourusername/questlog-api/internal/handler/dto"
	apperrors "github.com/yourusername/questlog-api/internal/pkg/errors"
)

// Коды бейджей каталога. Должны совпадать с сидом миграции.
const (
	BadgeFirstQuest = "first_quest"
	BadgeThreeQuest = "three_quests"
	BadgeTenQuests  = "ten_quests"
	BadgeThousandXP = "thousand_xp"
	BadgeLevelFive  = "level_5"
	BadgeLevelTen   = "level_10"
	BadgeStreak3    = "streak_3"
	BadgeStreak7    = "streak_7"
	BadgeStreak30   = "streak_30"
)

// BadgeService выдаёт бейджи по достижению критериев и отдаёт каталог.
type BadgeService struct {
	badgeRepo    repository.BadgeRepository
	emailService EmailService
	table        gamification.Table
}

// NewBadgeService создает новый сервис бейджей
func NewBadgeService(badgeRepo repository.BadgeRepository, emailService EmailService, table gamification.Table) *BadgeService {
	return &BadgeService{
		badgeRepo:    badgeRepo,
		emailService: emailService,
		table:        table,
	}
}

// GetCatalog возвращает каталог бейджей
func (s *BadgeService) GetCatalog() ([]dto.BadgeDTO, error) {
	badges, err := s.badgeRepo.ListCatalog()
	if err != nil {
		log.Printf("[BadgeService] Ошибка чтения каталога бейджей: %v", err)
		return nil, err
	}

	result := make([]dto.BadgeDTO, len(badges))
	for i, b := range badges {
		result[i] = toBadgeDTO(b)
	}
	return result, nil
}

// GetUserBadges возвращает бейджи пользователя
func (s *BadgeService) GetUserBadges(userID uint) ([]dto.UserBadgeDTO, error) {
	userBadges, err := s.badgeRepo.GetUserBadges(userID)
	if err != nil {
		log.Printf("[BadgeService] Ошибка чтения бейджей пользователя %d: %v", userID, err)
		return nil, err
	}

	result := make([]dto.UserBadgeDTO, len(userBadges))
	for i, ub := range userBadges {
		result[i] = dto.UserBadgeDTO{
			BadgeDTO: toBadgeDTO(ub.Badge),
			EarnedAt: ub.EarnedAt,
		}
	}
	return result, nil
}

// CheckAndAward проверяет критерии всех бейджей для пользователя и выдаёт
// ещё не полученные. Возвращает коды выданных бейджей.
//
// Пользователь передаётся уже загруженным со свежими счётчиками: проверка
// выполняется после фиксации активности, когда XP и стрики актуальны.
func (s *BadgeService) CheckAndAward(user *entity.User) ([]string, error) {
	earnedCodes, err := s.badgeRepo.GetUserBadgeCodes(user.ID)
	if err != nil {
		return nil, err
	}

	earned := make(map[string]bool, len(earnedCodes))
	for _, code := range earnedCodes {
		earned[code] = true
	}

	level := gamification.Resolve(user.TotalXP, s.table).Level

	// Критерии по данным пользователя
	criteria := map[string]bool{
		BadgeFirstQuest: user.QuestsCompleted >= 1,
		BadgeThreeQuest: user.QuestsCompleted >= 3,
		BadgeTenQuests:  user.QuestsCompleted >= 10,
		BadgeThousandXP: user.TotalXP >= 1000,
		BadgeLevelFive:  level >= 5,
		BadgeLevelTen:   level >= 10,
		BadgeStreak3:    user.CurrentStreak >= 3,
		BadgeStreak7:    user.CurrentStreak >= 7,
		BadgeStreak30:   user.CurrentStreak >= 30,
	}

	var awarded []string
	for code, met := range criteria {
		if !met || earned[code] {
			continue
		}

		badge, err := s.badgeRepo.GetByCode(code)
		if err != nil {
			// Каталог отстаёт от кода — логируем и продолжаем с остальными
			log.Printf("[BadgeService] Бейдж %q отсутствует в каталоге: %v", code, err)
			continue
		}

		err = s.badgeRepo.Award(&entity.UserBadge{
			UserID:   user.ID,
			BadgeID:  badge.ID,
			EarnedAt: time.Now().UTC(),
		})
		if err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				// Гонка с параллельной выдачей — бейдж уже есть, не ошибка
				continue
			}
			log.Printf("[BadgeService] Ошибка выдачи бейджа %q пользователю %d: %v", code, user.ID, err)
			continue
		}

		awarded = append(awarded, code)
		s.notify(user, badge)
	}

	return awarded, nil
}

// notify отправляет уведомление о бейдже. Отправка асинхронная:
// письмо не должно задерживать ответ на запрос активности.
func (s *BadgeService) notify(user *entity.User, badge *entity.Badge) {
	if s.emailService == nil || user.Email == "" {
		return
	}

	idempotencyKey := uuid.NewString()
	email := user.Email
	name, icon := badge.Name, badge.Icon

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.emailService.SendBadgeAwarded(ctx, email, name, icon, idempotencyKey); err != nil {
			log.Printf("[BadgeService] Не удалось отправить уведомление о бейдже %q: %v", name, err)
		}
	}()
}

func toBadgeDTO(b entity.Badge) dto.BadgeDTO {
	return dto.BadgeDTO{
		Code:        b.Code,
		Name:        b.Name,
		Description: b.Description,
		Icon:        b.Icon,
		Category:    b.Category,
	}
}
