package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress_MidLevel(t *testing.T) {
	// Arrange
	table := DefaultTable()

	// Act: уровень 3 занимает [250, 500), XP=375 — ровно середина
	progress := Progress(375, 3, table)

	// Assert
	assert.Equal(t, int64(125), progress.CurrentInLevelXP, "XP внутри уровня")
	assert.Equal(t, int64(250), progress.XPNeededForLevel, "Ширина уровня")
	assert.InDelta(t, 50.0, progress.Percentage, 0.0001, "Прогресс должен быть 50%")
	assert.Equal(t, int64(125), progress.XPToNextLevel, "До следующего уровня осталось 125 XP")
}

func TestProgress_LevelStart(t *testing.T) {
	table := DefaultTable()

	// XP ровно на пороге уровня — нулевой прогресс внутри него
	progress := Progress(250, 3, table)

	assert.Equal(t, int64(0), progress.CurrentInLevelXP)
	assert.Equal(t, float64(0), progress.Percentage)
	assert.Equal(t, int64(250), progress.XPToNextLevel)
}

func TestProgress_MaxLevel(t *testing.T) {
	// Arrange
	table := DefaultTable()

	// Act: максимальный уровень — определённое терминальное состояние
	progress := Progress(50000, 10, table)

	// Assert
	assert.Equal(t, int64(0), progress.CurrentInLevelXP, "На максимальном уровне XP внутри уровня не считается")
	assert.Equal(t, int64(0), progress.XPNeededForLevel, "На максимальном уровне нечего набирать")
	assert.Equal(t, float64(100), progress.Percentage, "На максимальном уровне прогресс 100%")
	assert.Equal(t, int64(0), progress.XPToNextLevel, "Следующего уровня нет")
}

func TestProgress_StaleLevelCapped(t *testing.T) {
	// Arrange
	table := DefaultTable()

	// Act: XP уже соответствует уровню 5, но вызывающий передал
	// устаревший уровень 2 — процент ограничивается сверху
	progress := Progress(1500, 2, table)

	// Assert
	assert.Equal(t, float64(100), progress.Percentage, "Процент должен быть ограничен 100")
	assert.Equal(t, int64(0), progress.XPToNextLevel, "Оставшийся XP не может быть отрицательным")
}

func TestProgress_XPBelowLevelClamped(t *testing.T) {
	table := DefaultTable()

	// Рассогласование в обратную сторону: XP меньше порога переданного уровня
	progress := Progress(100, 3, table)

	assert.Equal(t, int64(0), progress.CurrentInLevelXP, "XP внутри уровня не может быть отрицательным")
	assert.Equal(t, float64(0), progress.Percentage)
}

func TestProgress_UnknownLevel(t *testing.T) {
	table := DefaultTable()

	assert.Equal(t, LevelProgress{}, Progress(500, 0, table), "Уровень 0 — некорректный ввод")
	assert.Equal(t, LevelProgress{}, Progress(500, 11, table), "Уровня 11 в таблице нет")
}

func TestProgress_PercentageAlwaysInRange(t *testing.T) {
	// Arrange
	table := DefaultTable()

	// Act & Assert: для согласованных пар (XP, уровень) процент в [0, 100]
	for xp := int64(0); xp <= 13000; xp += 13 {
		level := Resolve(xp, table).Level
		progress := Progress(xp, level, table)
		assert.GreaterOrEqual(t, progress.Percentage, float64(0), "Процент ниже 0 при xp=%d", xp)
		assert.LessOrEqual(t, progress.Percentage, float64(100), "Процент выше 100 при xp=%d", xp)
		assert.GreaterOrEqual(t, progress.XPToNextLevel, int64(0), "XPToNextLevel отрицателен при xp=%d", xp)
	}
}
