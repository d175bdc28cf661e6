package gamification

// LevelProgress — прогресс пользователя внутри текущего уровня.
// Значение эфемерное: пересчитывается на каждый запрос и нигде не хранится.
type LevelProgress struct {
	// CurrentInLevelXP — XP, набранный внутри текущего уровня.
	CurrentInLevelXP int64 `json:"current_in_level_xp"`
	// XPNeededForLevel — ширина текущего уровня (XP от его начала до следующего порога).
	XPNeededForLevel int64 `json:"xp_needed_for_level"`
	// Percentage — прогресс к следующему уровню в диапазоне [0, 100].
	Percentage float64 `json:"percentage"`
	// XPToNextLevel — сколько XP осталось до следующего порога (>= 0).
	XPToNextLevel int64 `json:"xp_to_next_level"`
}

// Progress вычисляет прогресс к следующему уровню.
//
// Для максимального уровня возвращается терминальное состояние
// {0, 0, 100, 0} — это определённый результат, а не ошибка.
//
// Процент ограничен сверху 100: totalXP и currentLevel приходят от
// коллаборатора раздельно и могут быть кратковременно рассогласованы
// (например, устаревшее значение уровня при свежем XP).
func Progress(totalXP int64, currentLevel int, table Table) LevelProgress {
	current := table.threshold(currentLevel)
	if current == nil {
		// Неизвестный уровень — некорректный ввод; отдаём нулевой прогресс.
		return LevelProgress{}
	}

	next := table.threshold(currentLevel + 1)
	if next == nil {
		// Максимальный уровень достигнут.
		return LevelProgress{Percentage: 100}
	}

	if totalXP < 0 {
		totalXP = 0
	}

	inLevel := totalXP - current.XPRequired
	if inLevel < 0 {
		inLevel = 0
	}
	needed := next.XPRequired - current.XPRequired

	percentage := float64(inLevel) / float64(needed) * 100
	if percentage > 100 {
		percentage = 100
	}

	toNext := next.XPRequired - totalXP
	if toNext < 0 {
		toNext = 0
	}

	return LevelProgress{
		CurrentInLevelXP: inLevel,
		XPNeededForLevel: needed,
		Percentage:       percentage,
		XPToNextLevel:    toNext,
	}
}
