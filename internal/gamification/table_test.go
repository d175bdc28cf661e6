package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yourusername/questlog-api/internal/pkg/errors"
)

func TestTable_Validate_DefaultTable(t *testing.T) {
	// Arrange
	table := DefaultTable()

	// Act & Assert
	require.NoError(t, table.Validate(), "Таблица по умолчанию должна быть валидной")
	assert.Equal(t, 10, table.MaxLevel(), "Максимальный уровень таблицы по умолчанию — 10")
}

func TestTable_Validate_Invalid(t *testing.T) {
	testCases := []struct {
		name  string
		table Table
	}{
		{"пустая таблица", Table{}},
		{"nil таблица", nil},
		{"первый уровень не 1", Table{
			{Level: 2, XPRequired: 0, Title: "A"},
		}},
		{"первый порог не 0", Table{
			{Level: 1, XPRequired: 50, Title: "A"},
		}},
		{"разрыв в уровнях", Table{
			{Level: 1, XPRequired: 0, Title: "A"},
			{Level: 3, XPRequired: 100, Title: "B"},
		}},
		{"неубывающий порог", Table{
			{Level: 1, XPRequired: 0, Title: "A"},
			{Level: 2, XPRequired: 100, Title: "B"},
			{Level: 3, XPRequired: 100, Title: "C"},
		}},
		{"убывающий порог", Table{
			{Level: 1, XPRequired: 0, Title: "A"},
			{Level: 2, XPRequired: 100, Title: "B"},
			{Level: 3, XPRequired: 50, Title: "C"},
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.table.Validate()
			require.Error(t, err, "Validate должен вернуть ошибку")
			assert.ErrorIs(t, err, apperrors.ErrConfiguration, "Ошибка должна быть ErrConfiguration")
		})
	}
}

func TestTable_MaxLevel_Empty(t *testing.T) {
	var table Table
	assert.Equal(t, 0, table.MaxLevel(), "Пустая таблица не имеет уровней")
}
