package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/airport-catalog/internal/pkg/errors"
	"github.com/airport-catalog/internal/pkg/utils"
	"github.com/airport-catalog/internal/pkg/validator"
	"github.com/airport-catalog/internal/usecase"
	"github.com/airport-catalog/internal/usecase/dto"
)

// SearchHandler - обработчик текстового поиска и поиска по идентификатору
type SearchHandler struct {
	searchUC *usecase.SearchUseCase
	logger   *zap.Logger
}

// NewSearchHandler - создание нового SearchHandler
func NewSearchHandler(searchUC *usecase.SearchUseCase, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchUC: searchUC,
		logger:   logger,
	}
}

// Search godoc
// @Summary Текстовый поиск аэродромов
// @Description Ищет аэродромы по подстроке имени или муниципалитета; префиксные совпадения имени ранжируются выше
// @Tags Search
// @Produce json
// @Param q query string true "Поисковый запрос"
// @Param limit query int false "Максимальное количество результатов" default(10)
// @Success 200 {object} utils.SuccessResponse{data=dto.SearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/airports/search [get]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	var req dto.SearchRequest
	req.Query = c.Query("q")
	req.Limit = c.QueryInt("limit", 10)

	if strings.TrimSpace(req.Query) == "" {
		return utils.SendError(c, errors.ErrEmptySearchQuery)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.searchUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// GetByIdent godoc
// @Summary Аэродром по идентификатору
// @Description Возвращает запись каталога по короткому идентификатору без учёта регистра
// @Tags Search
// @Produce json
// @Param ident path string true "Идентификатор аэродрома (например LFPG)"
// @Success 200 {object} utils.SuccessResponse{data=dto.AirportDTO}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/airports/{ident} [get]
func (h *SearchHandler) GetByIdent(c *fiber.Ctx) error {
	ident := c.Params("ident")
	if ident == "" {
		return utils.SendError(c, errors.ErrInvalidIdent)
	}

	result, err := h.searchUC.GetByIdent(c.Context(), ident)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
