package handler

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/questlog-api/internal/gamification"
	"github.com/yourusername/questlog-api/internal/service"
)

// LeaderboardHandler обрабатывает запросы, связанные с лидербордом
type LeaderboardHandler struct {
	leaderboardService *service.LeaderboardService
}

// NewLeaderboardHandler создает новый обработчик лидерборда
func NewLeaderboardHandler(leaderboardService *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

// GetLeaderboard обрабатывает запрос на получение лидерборда
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	window := gamification.Window(c.DefaultQuery("window", string(gamification.WindowAllTime)))

	// Получаем параметры пагинации из query
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("page_size", "10")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil {
		pageSize = 0 // Сервис подставит значение по умолчанию
	}

	// Вызываем сервис
	leaderboard, err := h.leaderboardService.GetLeaderboard(window, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error getting leaderboard"})
		return
	}

	c.JSON(http.StatusOK, leaderboard)
}

// ExportLeaderboard выгружает полное ранжирование окна в XLSX
func (h *LeaderboardHandler) ExportLeaderboard(c *gin.Context) {
	window := gamification.Window(c.DefaultQuery("window", string(gamification.WindowAllTime)))

	entries, err := h.leaderboardService.GetFullRanking(window)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error exporting leaderboard"})
		return
	}

	filename := fmt.Sprintf("leaderboard_%s_%s", window, time.Now().UTC().Format("2006-01-02"))
	h.exportXLSX(c, entries, filename)
}

// exportXLSX экспортирует ранжирование в Excel с использованием StreamWriter
func (h *LeaderboardHandler) exportXLSX(c *gin.Context, entries []gamification.LeaderboardEntry, filename string) {
	// Используем StreamWriter для эффективной работы с большими файлами
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Лидерборд"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[LeaderboardHandler] Ошибка создания StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel file"})
		return
	}

	// Заголовки
	headers := []interface{}{"Место", "Пользователь", "XP", "Уровень", "Бейджи", "Стрик"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[LeaderboardHandler] Ошибка записи заголовков: %v", err)
	}

	// Данные
	for i, e := range entries {
		rowNum := i + 2 // Начинаем со 2 строки (1 — заголовки)
		cell := fmt.Sprintf("A%d", rowNum)

		row := []interface{}{e.Rank, e.Username, e.TotalXP, e.Level, e.BadgeCount, e.CurrentStreak}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[LeaderboardHandler] Ошибка записи строки %d: %v", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[LeaderboardHandler] Ошибка завершения StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to finalize Excel file"})
		return
	}

	if err := f.Write(c.Writer); err != nil {
		log.Printf("[LeaderboardHandler] Ошибка отправки файла: %v", err)
	}
}
