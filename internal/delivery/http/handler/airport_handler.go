package handler

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/airport-catalog/internal/pkg/errors"
	"github.com/airport-catalog/internal/pkg/utils"
	"github.com/airport-catalog/internal/pkg/validator"
	"github.com/airport-catalog/internal/usecase"
	"github.com/airport-catalog/internal/usecase/dto"
)

// AirportHandler - обработчик гео-запросов к каталогу аэродромов
type AirportHandler struct {
	nearestUC *usecase.NearestUseCase
	logger    *zap.Logger
}

// NewAirportHandler - создание нового AirportHandler
func NewAirportHandler(nearestUC *usecase.NearestUseCase, logger *zap.Logger) *AirportHandler {
	return &AirportHandler{
		nearestUC: nearestUC,
		logger:    logger,
	}
}

// Nearest godoc
// @Summary Ближайший аэродром к точке
// @Description Возвращает один ближайший аэродром к координате с опциональным ограничением радиуса и фильтром по категориям
// @Tags Airports
// @Produce json
// @Param lat query number true "Широта точки запроса"
// @Param lon query number true "Долгота точки запроса"
// @Param max_distance_km query number false "Максимальное расстояние в километрах"
// @Param categories query string false "Категории через запятую (large_airport,heliport,...)"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/airports/nearest [get]
func (h *AirportHandler) Nearest(c *fiber.Ctx) error {
	req, err := parseNearestRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.nearestUC.FindNearest(c.Context(), *req)
	if err != nil {
		return utils.SendError(c, err)
	}

	view := *result
	view.DistanceKm = roundDistance(view.DistanceKm)

	return utils.SendSuccess(c, view, nil)
}

// Nearby godoc
// @Summary K ближайших аэродромов к точке
// @Description Возвращает до limit аэродромов, отсортированных по возрастанию расстояния
// @Tags Airports
// @Produce json
// @Param lat query number true "Широта точки запроса"
// @Param lon query number true "Долгота точки запроса"
// @Param limit query int false "Максимальное количество результатов" default(10)
// @Param max_distance_km query number false "Максимальное расстояние в километрах"
// @Param categories query string false "Категории через запятую"
// @Success 200 {object} utils.SuccessResponse{data=dto.NearestResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/airports/nearby [get]
func (h *AirportHandler) Nearby(c *fiber.Ctx) error {
	nearest, err := parseNearestRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	req := dto.NearbyRequest{
		Lat:           nearest.Lat,
		Lon:           nearest.Lon,
		Limit:         c.QueryInt("limit", 10),
		MaxDistanceKm: nearest.MaxDistanceKm,
		Categories:    nearest.Categories,
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.nearestUC.FindNearestK(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	// Distance is rounded to one decimal for display only
	for i := range result.Airports {
		result.Airports[i].DistanceKm = roundDistance(result.Airports[i].DistanceKm)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// parseNearestRequest разбирает общие query-параметры гео-запросов
func parseNearestRequest(c *fiber.Ctx) (*dto.NearestRequest, error) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		return nil, errors.ErrInvalidCoordinates
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		return nil, errors.ErrInvalidCoordinates
	}

	req := &dto.NearestRequest{
		Lat: lat,
		Lon: lon,
	}

	if raw := c.Query("max_distance_km"); raw != "" {
		maxDistance, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.ErrInvalidRadius
		}
		req.MaxDistanceKm = &maxDistance
	}

	if raw := c.Query("categories"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				req.Categories = append(req.Categories, trimmed)
			}
		}
	}

	return req, nil
}

func roundDistance(distanceKm float64) float64 {
	return math.Round(distanceKm*10) / 10
}
