package service

import (
	"log"
	"time"

	"github.com/yourusername/questlog-api/internal/config"
	"github.com/yourusername/questlog-api/internal/domain/repository"
	"github.com/yourusername/questlog-api/internal/gamification"
	"github.com/yourusername/questlog-api/internal/handler/dto"
)

// Окна лидерборда как скользящие интервалы от текущего момента.
const (
	weeklyWindowDays  = 7
	monthlyWindowDays = 30
)

// LeaderboardService строит ранжированные лидерборды по окнам.
// Упорядочивание и назначение рангов делает движок gamification.Rank;
// сервис отвечает за выборку агрегатов, кеширование и пагинацию.
type LeaderboardService struct {
	userRepo  repository.UserRepository
	cacheRepo repository.CacheRepository
	table     gamification.Table
	cfg       config.LeaderboardConfig
}

// NewLeaderboardService создает новый сервис лидерборда
func NewLeaderboardService(
	userRepo repository.UserRepository,
	cacheRepo repository.CacheRepository,
	table gamification.Table,
	cfg config.LeaderboardConfig,
) *LeaderboardService {
	return &LeaderboardService{
		userRepo:  userRepo,
		cacheRepo: cacheRepo,
		table:     table,
		cfg:       cfg,
	}
}

// GetLeaderboard возвращает пагинированную страницу ранжирования окна.
//
// Весь набор сортируется и ранжируется целиком, страница вырезается из
// готового результата — пагинация не может исказить порядок или ранги.
func (s *LeaderboardService) GetLeaderboard(window gamification.Window, page, pageSize int) (*dto.PaginatedLeaderboardResponse, error) {
	if !window.IsValid() {
		window = gamification.WindowAllTime
	}

	// Валидация параметров пагинации
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = s.cfg.DefaultPageSize
	} else if pageSize > s.cfg.MaxPageSize {
		pageSize = s.cfg.MaxPageSize
	}

	entries, err := s.rankedEntries(window)
	if err != nil {
		return nil, err
	}

	total := len(entries)
	offset := (page - 1) * pageSize
	if offset > total {
		offset = total
	}
	end := offset + pageSize
	if end > total {
		end = total
	}

	return &dto.PaginatedLeaderboardResponse{
		Window:  window,
		Entries: entries[offset:end],
		Total:   total,
		Page:    page,
		PerPage: pageSize,
	}, nil
}

// GetFullRanking возвращает полное ранжирование окна (для экспорта).
func (s *LeaderboardService) GetFullRanking(window gamification.Window) ([]gamification.LeaderboardEntry, error) {
	if !window.IsValid() {
		window = gamification.WindowAllTime
	}
	return s.rankedEntries(window)
}

// rankedEntries возвращает полное ранжирование окна, из кеша или пересчётом.
// Кеш — чистая оптимизация: промах или ошибка Redis приводят к пересчёту
// из авторитетных данных, а не к ошибке для вызывающего.
func (s *LeaderboardService) rankedEntries(window gamification.Window) ([]gamification.LeaderboardEntry, error) {
	cacheKey := leaderboardCacheKey(window)

	if s.cacheRepo != nil {
		var cached []gamification.LeaderboardEntry
		if err := s.cacheRepo.GetJSON(cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	rows, err := s.userRepo.GetLeaderboardRows(windowCutoff(window, time.Now().UTC()))
	if err != nil {
		log.Printf("[LeaderboardService] Ошибка выборки агрегатов окна %s: %v", window, err)
		return nil, err
	}

	summaries := make([]gamification.UserSummary, len(rows))
	for i, row := range rows {
		summaries[i] = gamification.UserSummary{
			UserID:        row.UserID,
			Username:      row.Username,
			TotalXP:       row.TotalXP,
			Level:         gamification.Resolve(row.TotalXP, s.table).Level,
			BadgeCount:    row.BadgeCount,
			CurrentStreak: row.CurrentStreak,
		}
	}

	entries := gamification.Rank(summaries, window)

	if s.cacheRepo != nil {
		ttl := time.Duration(s.cfg.CacheTTLSeconds) * time.Second
		if err := s.cacheRepo.SetJSON(cacheKey, entries, ttl); err != nil {
			log.Printf("[LeaderboardService] Не удалось закешировать окно %s: %v", window, err)
		}
	}

	return entries, nil
}

// InvalidateCache сбрасывает кешированные ранжирования всех окон.
// Вызывается после любого изменения, влияющего на XP.
func (s *LeaderboardService) InvalidateCache() {
	if s.cacheRepo == nil {
		return
	}
	for _, w := range []gamification.Window{gamification.WindowWeekly, gamification.WindowMonthly, gamification.WindowAllTime} {
		if err := s.cacheRepo.Delete(leaderboardCacheKey(w)); err != nil {
			log.Printf("[LeaderboardService] Не удалось сбросить кеш окна %s: %v", w, err)
		}
	}
}

// windowCutoff возвращает нижнюю границу окна или nil для all_time.
func windowCutoff(window gamification.Window, now time.Time) *time.Time {
	var days int
	switch window {
	case gamification.WindowWeekly:
		days = weeklyWindowDays
	case gamification.WindowMonthly:
		days = monthlyWindowDays
	default:
		return nil
	}

	cutoff := now.AddDate(0, 0, -days)
	cutoff = time.Date(cutoff.Year(), cutoff.Month(), cutoff.Day(), 0, 0, 0, 0, time.UTC)
	return &cutoff
}

func leaderboardCacheKey(window gamification.Window) string {
	return "leaderboard:" + string(window)
}
