package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/airport-catalog/internal/pkg/utils"
	"github.com/airport-catalog/internal/usecase"
)

// StatsHandler - обработчик статистики каталога и readiness проверки
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

// NewStatsHandler - создание нового StatsHandler
func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetStatistics godoc
// @Summary Статистика каталога
// @Description Возвращает количество аэродромов по категориям и покрытие каталога
// @Tags Stats
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.Statistics}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stats [get]
func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	stats, err := h.statsUC.GetStatistics(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, nil)
}

// Ready godoc
// @Summary Readiness проверка
// @Description Проверяет доступность каталога; 503, если хранилище недоступно
// @Tags Stats
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/ready [get]
func (h *StatsHandler) Ready(c *fiber.Ctx) error {
	count, err := h.statsUC.CatalogSize(c.Context())
	if err != nil {
		h.logger.Error("Readiness check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
		})
	}

	return c.JSON(fiber.Map{
		"status":   "ready",
		"airports": count,
	})
}
