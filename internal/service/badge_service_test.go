package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/questlog-api/internal/domain/entity"
	"github.com/yourusername/questlog-api/internal/gamification"
	apperrors "github.com/yourusername/questlog-api/internal/pkg/errors"
)

func TestBadgeService_CheckAndAward_SkipsAlreadyEarned(t *testing.T) {
	// Arrange: first_quest уже выдан, three_quests — нет
	mockBadgeRepo := new(MockBadgeRepo)

	user := &entity.User{ID: 1, QuestsCompleted: 3}
	badge := &entity.Badge{ID: 2, Code: BadgeThreeQuest, Name: "Три квеста"}

	mockBadgeRepo.On("GetUserBadgeCodes", uint(1)).Return([]string{BadgeFirstQuest}, nil)
	mockBadgeRepo.On("GetByCode", BadgeThreeQuest).Return(badge, nil)
	mockBadgeRepo.On("Award", mock.MatchedBy(func(ub *entity.UserBadge) bool {
		return ub.UserID == 1 && ub.BadgeID == 2
	})).Return(nil)

	svc := NewBadgeService(mockBadgeRepo, &NoopEmailService{}, gamification.DefaultTable())

	// Act
	awarded, err := svc.CheckAndAward(user)

	// Assert: выдан только three_quests, повторной выдачи first_quest нет
	require.NoError(t, err)
	assert.Equal(t, []string{BadgeThreeQuest}, awarded)
	mockBadgeRepo.AssertExpectations(t)
}

func TestBadgeService_CheckAndAward_ConflictTreatedAsAlreadyEarned(t *testing.T) {
	// Arrange: параллельный запрос успел выдать бейдж первым
	mockBadgeRepo := new(MockBadgeRepo)

	user := &entity.User{ID: 2, QuestsCompleted: 1}
	badge := &entity.Badge{ID: 1, Code: BadgeFirstQuest}

	mockBadgeRepo.On("GetUserBadgeCodes", uint(2)).Return([]string{}, nil)
	mockBadgeRepo.On("GetByCode", BadgeFirstQuest).Return(badge, nil)
	mockBadgeRepo.On("Award", mock.Anything).Return(apperrors.ErrConflict)

	svc := NewBadgeService(mockBadgeRepo, &NoopEmailService{}, gamification.DefaultTable())

	// Act
	awarded, err := svc.CheckAndAward(user)

	// Assert: конфликт — не ошибка, но и не новый бейдж
	require.NoError(t, err)
	assert.Empty(t, awarded)
}

func TestBadgeService_CheckAndAward_LevelBadges(t *testing.T) {
	// Arrange: 1200 XP — уровень 5 по таблице по умолчанию
	mockBadgeRepo := new(MockBadgeRepo)

	user := &entity.User{ID: 3, TotalXP: 1200}
	levelBadge := &entity.Badge{ID: 5, Code: BadgeLevelFive, Name: "Пятый уровень"}
	xpBadge := &entity.Badge{ID: 4, Code: BadgeThousandXP, Name: "Тысяча XP"}

	mockBadgeRepo.On("GetUserBadgeCodes", uint(3)).Return([]string{}, nil)
	mockBadgeRepo.On("GetByCode", BadgeLevelFive).Return(levelBadge, nil)
	mockBadgeRepo.On("GetByCode", BadgeThousandXP).Return(xpBadge, nil)
	mockBadgeRepo.On("Award", mock.Anything).Return(nil)

	svc := NewBadgeService(mockBadgeRepo, &NoopEmailService{}, gamification.DefaultTable())

	// Act
	awarded, err := svc.CheckAndAward(user)

	// Assert: уровень разрешён из XP, выданы оба бейджа
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{BadgeLevelFive, BadgeThousandXP}, awarded)
	mockBadgeRepo.AssertNotCalled(t, "GetByCode", BadgeLevelTen)
}

func TestBadgeService_GetUserBadges(t *testing.T) {
	// Arrange
	mockBadgeRepo := new(MockBadgeRepo)

	earnedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	mockBadgeRepo.On("GetUserBadges", uint(4)).Return([]entity.UserBadge{
		{
			UserID:   4,
			BadgeID:  1,
			EarnedAt: earnedAt,
			Badge:    entity.Badge{ID: 1, Code: BadgeFirstQuest, Name: "Первый квест", Category: entity.BadgeCategoryQuest},
		},
	}, nil)

	svc := NewBadgeService(mockBadgeRepo, &NoopEmailService{}, gamification.DefaultTable())

	// Act
	badges, err := svc.GetUserBadges(4)

	// Assert
	require.NoError(t, err)
	require.Len(t, badges, 1)
	assert.Equal(t, BadgeFirstQuest, badges[0].Code)
	assert.Equal(t, earnedAt, badges[0].EarnedAt)
}
