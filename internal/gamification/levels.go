package gamification

// LevelInfo — результат разрешения уровня по суммарному XP.
type LevelInfo struct {
	Level int    `json:"level"`
	Title string `json:"title"`
}

// Resolve определяет текущий уровень и титул по суммарному XP.
//
// Выбирается наибольший уровень таблицы, чей порог не превышает totalXP.
// Пороги — включающие нижние границы: XP, равный порогу, уже даёт этот уровень.
// Таблица начинается с порога 0, поэтому для любого неотрицательного XP
// результат определён; XP выше последнего порога даёт максимальный уровень.
//
// Отрицательный XP — некорректный ввод от коллаборатора; он приводится к 0,
// а не превращается в ошибку: логика отображения не должна ронять UI.
func Resolve(totalXP int64, table Table) LevelInfo {
	if len(table) == 0 {
		// Таблица валидируется при старте; сюда попадать не должны.
		return LevelInfo{Level: 1}
	}

	if totalXP < 0 {
		totalXP = 0
	}

	current := table[0]
	for _, th := range table[1:] {
		if totalXP < th.XPRequired {
			break
		}
		current = th
	}

	return LevelInfo{Level: current.Level, Title: current.Title}
}
