package gamification

import "sort"

// Window — временное окно лидерборда. XP внутри окна считает внешний
// коллаборатор (репозиторий); движок ранжирования только упорядочивает
// и назначает позиции.
type Window string

const (
	WindowWeekly  Window = "weekly"
	WindowMonthly Window = "monthly"
	WindowAllTime Window = "all_time"
)

// IsValid проверяет, что окно — одно из поддерживаемых.
func (w Window) IsValid() bool {
	switch w {
	case WindowWeekly, WindowMonthly, WindowAllTime:
		return true
	}
	return false
}

// UserSummary — сводка пользователя на входе движка ранжирования.
// TotalXP уже ограничен запрошенным окном.
type UserSummary struct {
	UserID        uint   `json:"user_id"`
	Username      string `json:"username"`
	TotalXP       int64  `json:"total_xp"`
	Level         int    `json:"level"`
	BadgeCount    int    `json:"badge_count"`
	CurrentStreak int    `json:"current_streak"`
}

// LeaderboardEntry — позиция пользователя в лидерборде.
// Rank назначается движком и никогда не приходит от вызывающего.
type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	UserID        uint   `json:"user_id"`
	Username      string `json:"username"`
	TotalXP       int64  `json:"total_xp"`
	Level         int    `json:"level"`
	BadgeCount    int    `json:"badge_count"`
	CurrentStreak int    `json:"current_streak"`
}

// Rank упорядочивает сводки пользователей и назначает плотные позиционные
// ранги (1, 2, 3, ... без пропусков и без разделяемых мест).
//
// Порядок сортировки: TotalXP по убыванию, при равенстве — CurrentStreak по
// убыванию, затем BadgeCount по убыванию, и финально UserID по возрастанию.
// Цепочка тай-брейков делает результат детерминированным: повторный вызов на
// тех же данных всегда даёт тот же порядок независимо от порядка на входе.
// Равенства по XP — обычное дело (нулевой XP, круглые рубежи), поэтому
// полагаться на порядок, который вернул бэкенд, нельзя.
//
// Вход не модифицируется: сортируется копия.
func Rank(summaries []UserSummary, window Window) []LeaderboardEntry {
	if !window.IsValid() {
		window = WindowAllTime
	}
	_ = window // окно не влияет на порядок: XP уже ограничен окном вызывающим

	sorted := make([]UserSummary, len(summaries))
	copy(sorted, summaries)

	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.TotalXP != b.TotalXP {
			return a.TotalXP > b.TotalXP
		}
		if a.CurrentStreak != b.CurrentStreak {
			return a.CurrentStreak > b.CurrentStreak
		}
		if a.BadgeCount != b.BadgeCount {
			return a.BadgeCount > b.BadgeCount
		}
		return a.UserID < b.UserID
	})

	entries := make([]LeaderboardEntry, len(sorted))
	for i, s := range sorted {
		entries[i] = LeaderboardEntry{
			Rank:          i + 1,
			UserID:        s.UserID,
			Username:      s.Username,
			TotalXP:       s.TotalXP,
			Level:         s.Level,
			BadgeCount:    s.BadgeCount,
			CurrentStreak: s.CurrentStreak,
		}
	}

	return entries
}

// RankTop возвращает первые n позиций полного ранжирования.
// Сначала сортируется весь набор, потом берётся срез: усечение не может
// повлиять на корректность порядка оставшихся записей.
func RankTop(summaries []UserSummary, window Window, n int) []LeaderboardEntry {
	entries := Rank(summaries, window)
	if n < 0 {
		n = 0
	}
	if n > len(entries) {
		n = len(entries)
	}
	return entries[:n]
}
