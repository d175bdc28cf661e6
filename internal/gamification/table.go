package gamification

import (
	"fmt"

	apperrors "github.com/yourusername/questlog-api/internal/pkg/errors"
)

// LevelThreshold описывает один уровень прогрессии: минимальный суммарный XP,
// необходимый для его достижения, и отображаемый титул.
type LevelThreshold struct {
	Level      int    `json:"level" mapstructure:"level"`
	XPRequired int64  `json:"xp_required" mapstructure:"xp_required"`
	Title      string `json:"title" mapstructure:"title"`
}

// Table — упорядоченная таблица порогов уровней. Загружается один раз как
// статическая конфигурация и не изменяется во время работы приложения.
type Table []LevelThreshold

// DefaultTable возвращает таблицу уровней платформы по умолчанию.
// Используется, если таблица не переопределена в конфигурации.
func DefaultTable() Table {
	return Table{
		{Level: 1, XPRequired: 0, Title: "Newbie"},
		{Level: 2, XPRequired: 100, Title: "Beginner"},
		{Level: 3, XPRequired: 250, Title: "Apprentice"},
		{Level: 4, XPRequired: 500, Title: "Intermediate"},
		{Level: 5, XPRequired: 1000, Title: "Advanced"},
		{Level: 6, XPRequired: 2000, Title: "Expert"},
		{Level: 7, XPRequired: 3500, Title: "Master"},
		{Level: 8, XPRequired: 5500, Title: "Grandmaster"},
		{Level: 9, XPRequired: 8000, Title: "Legend"},
		{Level: 10, XPRequired: 12000, Title: "Mythical"},
	}
}

// Validate проверяет инварианты таблицы уровней:
//  1. таблица не пуста;
//  2. уровни идут подряд, начиная с 1;
//  3. пороги XP строго возрастают;
//  4. первый порог равен 0 (любой неотрицательный XP разрешается в уровень).
//
// Вызывается один раз при старте приложения. Resolve и Progress рассчитаны
// на уже провалидированную таблицу и повторных проверок не делают.
func (t Table) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: level table is empty", apperrors.ErrConfiguration)
	}

	if t[0].Level != 1 {
		return fmt.Errorf("%w: level table must start at level 1, got %d", apperrors.ErrConfiguration, t[0].Level)
	}
	if t[0].XPRequired != 0 {
		return fmt.Errorf("%w: first threshold must require 0 XP, got %d", apperrors.ErrConfiguration, t[0].XPRequired)
	}

	for i := 1; i < len(t); i++ {
		if t[i].Level != t[i-1].Level+1 {
			return fmt.Errorf("%w: levels must be contiguous, got %d after %d",
				apperrors.ErrConfiguration, t[i].Level, t[i-1].Level)
		}
		if t[i].XPRequired <= t[i-1].XPRequired {
			return fmt.Errorf("%w: XP thresholds must strictly increase, got %d after %d at level %d",
				apperrors.ErrConfiguration, t[i].XPRequired, t[i-1].XPRequired, t[i].Level)
		}
	}

	return nil
}

// MaxLevel возвращает максимальный уровень таблицы.
func (t Table) MaxLevel() int {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].Level
}

// threshold возвращает порог для уровня или nil, если такого уровня нет.
// Уровни идут подряд с 1, поэтому поиск по индексу.
func (t Table) threshold(level int) *LevelThreshold {
	idx := level - 1
	if idx < 0 || idx >= len(t) {
		return nil
	}
	return &t[idx]
}
