package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/questlog-api/internal/domain/entity"
	"github.com/yourusername/questlog-api/internal/gamification"
)

// ============================================================================
// Моки для ActivityService
// ============================================================================

// MockActivityRepo реализует repository.ActivityRepository
type MockActivityRepo struct {
	mock.Mock
}

func (m *MockActivityRepo) RecordDay(userID uint, day time.Time, xpEarned int64) error {
	args := m.Called(userID, day, xpEarned)
	return args.Error(0)
}

func (m *MockActivityRepo) GetActivityDays(userID uint) ([]time.Time, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

// MockBadgeRepo реализует repository.BadgeRepository
type MockBadgeRepo struct {
	mock.Mock
}

func (m *MockBadgeRepo) ListCatalog() ([]entity.Badge, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Badge), args.Error(1)
}

func (m *MockBadgeRepo) GetByCode(code string) (*entity.Badge, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Badge), args.Error(1)
}

func (m *MockBadgeRepo) GetUserBadges(userID uint) ([]entity.UserBadge, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.UserBadge), args.Error(1)
}

func (m *MockBadgeRepo) GetUserBadgeCodes(userID uint) ([]string, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBadgeRepo) Award(userBadge *entity.UserBadge) error {
	args := m.Called(userBadge)
	return args.Error(0)
}

// newTestActivityService собирает ActivityService на моках без лидерборда.
func newTestActivityService(userRepo *MockUserRepo, activityRepo *MockActivityRepo, badgeRepo *MockBadgeRepo) *ActivityService {
	table := gamification.DefaultTable()
	badgeService := NewBadgeService(badgeRepo, &NoopEmailService{}, table)
	return NewActivityService(userRepo, activityRepo, badgeService, nil, table)
}

// ============================================================================
// Тесты для ActivityService
// ============================================================================

func TestActivityService_RecordActivity_Success(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepo)
	mockActivityRepo := new(MockActivityRepo)
	mockBadgeRepo := new(MockBadgeRepo)

	occurredAt := time.Date(2026, 8, 29, 15, 42, 0, 0, time.UTC)
	expectedDay := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	user := &entity.User{ID: 1, Username: "alice", TotalXP: 350, LongestStreak: 1}

	mockActivityRepo.On("RecordDay", uint(1), expectedDay, int64(50)).Return(nil)
	mockUserRepo.On("AddXP", uint(1), int64(50)).Return(nil)
	mockUserRepo.On("GetByID", uint(1)).Return(user, nil)
	mockActivityRepo.On("GetActivityDays", uint(1)).Return([]time.Time{expectedDay, expectedDay.AddDate(0, 0, -1)}, nil)
	mockUserRepo.On("UpdateStreaks", uint(1), 2, 2).Return(nil)
	mockBadgeRepo.On("GetUserBadgeCodes", uint(1)).Return([]string{}, nil)

	svc := newTestActivityService(mockUserRepo, mockActivityRepo, mockBadgeRepo)

	// Act
	resp, err := svc.RecordActivity(1, occurredAt, 50, false)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(350), resp.TotalXP)
	assert.Equal(t, 3, resp.Level, "350 XP — уровень 3 по таблице по умолчанию")
	assert.Equal(t, 2, resp.CurrentStreak, "Два подряд дня активности")
	assert.Equal(t, 2, resp.LongestStreak)

	mockActivityRepo.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestActivityService_RecordActivity_NegativeXPClamped(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepo)
	mockActivityRepo := new(MockActivityRepo)
	mockBadgeRepo := new(MockBadgeRepo)

	occurredAt := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	user := &entity.User{ID: 2, TotalXP: 0}

	// День фиксируется с нулевым XP, AddXP не вызывается вовсе
	mockActivityRepo.On("RecordDay", uint(2), day, int64(0)).Return(nil)
	mockUserRepo.On("GetByID", uint(2)).Return(user, nil)
	mockActivityRepo.On("GetActivityDays", uint(2)).Return([]time.Time{day}, nil)
	mockUserRepo.On("UpdateStreaks", uint(2), 1, 1).Return(nil)
	mockBadgeRepo.On("GetUserBadgeCodes", uint(2)).Return([]string{}, nil)

	svc := newTestActivityService(mockUserRepo, mockActivityRepo, mockBadgeRepo)

	// Act
	resp, err := svc.RecordActivity(2, occurredAt, -100, false)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.TotalXP)
	mockUserRepo.AssertNotCalled(t, "AddXP", mock.Anything, mock.Anything)
}

func TestActivityService_RecordActivity_QuestIncrementsCounter(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepo)
	mockActivityRepo := new(MockActivityRepo)
	mockBadgeRepo := new(MockBadgeRepo)

	occurredAt := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	user := &entity.User{ID: 3, Email: "", TotalXP: 20, QuestsCompleted: 0}

	badge := &entity.Badge{ID: 1, Code: BadgeFirstQuest, Name: "Первый квест"}

	mockActivityRepo.On("RecordDay", uint(3), day, int64(20)).Return(nil)
	mockUserRepo.On("AddXP", uint(3), int64(20)).Return(nil)
	mockUserRepo.On("GetByID", uint(3)).Return(user, nil)
	mockUserRepo.On("Update", mock.MatchedBy(func(u *entity.User) bool {
		return u.QuestsCompleted == 1
	})).Return(nil)
	mockActivityRepo.On("GetActivityDays", uint(3)).Return([]time.Time{day}, nil)
	mockUserRepo.On("UpdateStreaks", uint(3), 1, 1).Return(nil)
	mockBadgeRepo.On("GetUserBadgeCodes", uint(3)).Return([]string{}, nil)
	mockBadgeRepo.On("GetByCode", BadgeFirstQuest).Return(badge, nil)
	mockBadgeRepo.On("Award", mock.MatchedBy(func(ub *entity.UserBadge) bool {
		return ub.UserID == 3 && ub.BadgeID == 1
	})).Return(nil)

	svc := newTestActivityService(mockUserRepo, mockActivityRepo, mockBadgeRepo)

	// Act
	resp, err := svc.RecordActivity(3, occurredAt, 20, true)

	// Assert: счётчик квестов увеличен, выдан бейдж первого квеста
	require.NoError(t, err)
	assert.Equal(t, []string{BadgeFirstQuest}, resp.NewBadges)
	mockUserRepo.AssertExpectations(t)
	mockBadgeRepo.AssertExpectations(t)
}

func TestActivityService_RecordActivity_LongestStreakNeverShrinks(t *testing.T) {
	// Arrange: исторический максимум 10, текущая история даёт всего 1
	mockUserRepo := new(MockUserRepo)
	mockActivityRepo := new(MockActivityRepo)
	mockBadgeRepo := new(MockBadgeRepo)

	occurredAt := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	user := &entity.User{ID: 4, TotalXP: 100, LongestStreak: 10}

	mockActivityRepo.On("RecordDay", uint(4), day, int64(10)).Return(nil)
	mockUserRepo.On("AddXP", uint(4), int64(10)).Return(nil)
	mockUserRepo.On("GetByID", uint(4)).Return(user, nil)
	mockActivityRepo.On("GetActivityDays", uint(4)).Return([]time.Time{day}, nil)
	mockUserRepo.On("UpdateStreaks", uint(4), 1, 10).Return(nil)
	mockBadgeRepo.On("GetUserBadgeCodes", uint(4)).Return([]string{}, nil)

	svc := newTestActivityService(mockUserRepo, mockActivityRepo, mockBadgeRepo)

	// Act
	resp, err := svc.RecordActivity(4, occurredAt, 10, false)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, resp.CurrentStreak)
	assert.Equal(t, 10, resp.LongestStreak, "Сохранённый максимум не уменьшается")
	mockUserRepo.AssertExpectations(t)
}

func TestActivityService_RecordActivity_BadgeErrorNotFatal(t *testing.T) {
	// Arrange: проверка бейджей падает, но активность уже зафиксирована
	mockUserRepo := new(MockUserRepo)
	mockActivityRepo := new(MockActivityRepo)
	mockBadgeRepo := new(MockBadgeRepo)

	occurredAt := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	user := &entity.User{ID: 5, TotalXP: 30}

	mockActivityRepo.On("RecordDay", uint(5), day, int64(30)).Return(nil)
	mockUserRepo.On("AddXP", uint(5), int64(30)).Return(nil)
	mockUserRepo.On("GetByID", uint(5)).Return(user, nil)
	mockActivityRepo.On("GetActivityDays", uint(5)).Return([]time.Time{day}, nil)
	mockUserRepo.On("UpdateStreaks", uint(5), 1, 1).Return(nil)
	mockBadgeRepo.On("GetUserBadgeCodes", uint(5)).Return(nil, assert.AnError)

	svc := newTestActivityService(mockUserRepo, mockActivityRepo, mockBadgeRepo)

	// Act
	resp, err := svc.RecordActivity(5, occurredAt, 30, false)

	// Assert
	require.NoError(t, err, "Ошибка выдачи бейджей не должна ронять запрос")
	assert.Empty(t, resp.NewBadges)
}

func TestActivityService_GetUserStreak(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepo)
	mockActivityRepo := new(MockActivityRepo)
	mockBadgeRepo := new(MockBadgeRepo)

	today := dayOf(time.Now().UTC())
	days := []time.Time{today, today.AddDate(0, 0, -1), today.AddDate(0, 0, -2)}
	user := &entity.User{ID: 6, LongestStreak: 3}

	mockUserRepo.On("GetByID", uint(6)).Return(user, nil)
	mockActivityRepo.On("GetActivityDays", uint(6)).Return(days, nil)
	mockUserRepo.On("UpdateStreaks", uint(6), 3, 3).Return(nil)

	svc := newTestActivityService(mockUserRepo, mockActivityRepo, mockBadgeRepo)

	// Act
	resp, err := svc.GetUserStreak(6)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, resp.CurrentStreak)
	assert.Equal(t, 3, resp.LongestStreak)
}
