package gamification

import (
	"log"
	"sort"
	"time"
)

// StreakState — рассчитанное состояние стрика пользователя.
type StreakState struct {
	// CurrentStreak — текущая серия дней подряд с активностью. Волатильна:
	// обнуляется, как только пропущено больше одного дня.
	CurrentStreak int `json:"current_streak"`
	// LongestStreak — исторический максимум серии. Однажды достигнутое
	// значение никогда не уменьшается.
	LongestStreak int `json:"longest_streak"`
}

const day = 24 * time.Hour

// ComputeStreak вычисляет текущий и самый длинный стрик по датам активности.
//
// Каждая дата нормализуется до календарного дня (время суток отбрасывается),
// дубликаты схлопываются. referenceDate передаётся явно, а не читается из
// системных часов, чтобы расчёт был детерминированным и тестируемым.
//
// Правило выживания стрика жёсткое: серия засчитывается, только если последняя
// активность была в referenceDate или накануне (один день отсрочки на
// «сегодня ещё не успел»); два пропущенных дня подряд обнуляют текущий стрик.
//
// LongestStreak считается независимым полным проходом по всей истории,
// а не инкрементально — так расчёт не может «уехать» от частичных обновлений.
func ComputeStreak(activityDates []time.Time, referenceDate time.Time) StreakState {
	days := normalizeDays(activityDates)
	if len(days) == 0 {
		return StreakState{}
	}

	ref := toDay(referenceDate)

	// Текущий стрик: идём от самой свежей даты и считаем подряд идущие дни.
	current := 0
	if days[0].Equal(ref) || days[0].Equal(ref.Add(-day)) {
		current = 1
		for i := 1; i < len(days); i++ {
			if days[i-1].Sub(days[i]) != day {
				break
			}
			current++
		}
	}

	// Самый длинный стрик: максимум длины непрерывной серии по всей истории.
	longest := 1
	run := 1
	for i := 1; i < len(days); i++ {
		if days[i-1].Sub(days[i]) == day {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}

	return StreakState{CurrentStreak: current, LongestStreak: longest}
}

// normalizeDays приводит метки времени к календарным дням (UTC), удаляет
// дубликаты и сортирует по убыванию (самая свежая дата первой).
// Нулевые метки — некорректный ввод; они отбрасываются с предупреждением,
// а не превращаются в ошибку.
func normalizeDays(dates []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(dates))
	days := make([]time.Time, 0, len(dates))

	dropped := 0
	for _, d := range dates {
		if d.IsZero() {
			dropped++
			continue
		}
		nd := toDay(d)
		if _, ok := seen[nd]; ok {
			continue
		}
		seen[nd] = struct{}{}
		days = append(days, nd)
	}

	if dropped > 0 {
		log.Printf("[Gamification] Отброшено %d пустых дат активности при расчёте стрика", dropped)
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].After(days[j])
	})

	return days
}

// toDay отбрасывает время суток, оставляя календарный день в UTC.
func toDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
