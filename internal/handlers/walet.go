package handlers

import (
	"errors"
	"strconv"
	"strings"

	apperrors "walet/internal/errors"
	"walet/internal/models"
	"walet/internal/services/walet"
	"walet/internal/utils"
	"walet/internal/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// WaletHandler exposes the walet resource under /api/walets.
type WaletHandler struct {
	waletService walet.Service
	appName      string
	logger       *zap.Logger
}

func NewWaletHandler(waletService walet.Service, appName string, logger *zap.Logger) *WaletHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WaletHandler{
		waletService: waletService,
		appName:      appName,
		logger:       logger,
	}
}

// CreateWalet handles POST /api/walets.
func (h *WaletHandler) CreateWalet(c *fiber.Ctx) error {
	var input models.Walet
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	h.logger.Debug("REST request to save Walet", zap.Stringer("walet", &input))

	result, err := h.waletService.Create(c.UserContext(), &input)
	if err != nil {
		return h.handleError(c, err)
	}

	id := strconv.FormatInt(*result.ID, 10)
	utils.EntityCreationAlert(c, h.appName, apperrors.WaletEntityName, id)
	return utils.Created(c, "/api/walets/"+id, result)
}

// UpdateWalet handles PUT /api/walets/:id.
func (h *WaletHandler) UpdateWalet(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequest(c, "Invalid id")
	}

	var input models.Walet
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	h.logger.Debug("REST request to update Walet", zap.Int64("id", id), zap.Stringer("walet", &input))

	result, err := h.waletService.Update(c.UserContext(), id, &input)
	if err != nil {
		return h.handleError(c, err)
	}

	utils.EntityUpdateAlert(c, h.appName, apperrors.WaletEntityName, strconv.FormatInt(id, 10))
	return utils.Success(c, result)
}

// PartialUpdateWalet handles PATCH /api/walets/:id. Only non-null body
// fields overwrite the stored walet.
func (h *WaletHandler) PartialUpdateWalet(c *fiber.Ctx) error {
	if !isPatchContentType(string(c.Request().Header.ContentType())) {
		return utils.Empty(c, fiber.StatusUnsupportedMediaType)
	}

	id, err := pathID(c)
	if err != nil {
		return utils.BadRequest(c, "Invalid id")
	}

	var input models.Walet
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	h.logger.Debug("REST request to partial update Walet", zap.Int64("id", id), zap.Stringer("walet", &input))

	result, err := h.waletService.PartialUpdate(c.UserContext(), id, &input)
	if err != nil {
		return h.handleError(c, err)
	}

	utils.EntityUpdateAlert(c, h.appName, apperrors.WaletEntityName, strconv.FormatInt(id, 10))
	return utils.Success(c, result)
}

// GetAllWalets handles GET /api/walets?sort=field,dir.
func (h *WaletHandler) GetAllWalets(c *fiber.Ctx) error {
	h.logger.Debug("REST request to get all Walets")

	walets, err := h.waletService.GetAll(c.UserContext(), pagination.ParseSortFromRequest(c))
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.Success(c, walets)
}

// GetWalet handles GET /api/walets/:id.
func (h *WaletHandler) GetWalet(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequest(c, "Invalid id")
	}
	h.logger.Debug("REST request to get Walet", zap.Int64("id", id))

	result, err := h.waletService.Get(c.UserContext(), id)
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.Success(c, result)
}

// DeleteWalet handles DELETE /api/walets/:id. A missing id still answers 204.
func (h *WaletHandler) DeleteWalet(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequest(c, "Invalid id")
	}
	h.logger.Debug("REST request to delete Walet", zap.Int64("id", id))

	if err := h.waletService.Delete(c.UserContext(), id); err != nil {
		return h.handleError(c, err)
	}

	utils.EntityDeletionAlert(c, h.appName, apperrors.WaletEntityName, strconv.FormatInt(id, 10))
	return utils.NoContent(c)
}

// MethodNotAllowed answers PUT/PATCH on the collection path.
func (h *WaletHandler) MethodNotAllowed(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAllow, "GET, POST")
	return utils.Empty(c, fiber.StatusMethodNotAllowed)
}

func (h *WaletHandler) handleError(c *fiber.Ctx, err error) error {
	var alert *apperrors.BadRequestAlertError
	switch {
	case errors.As(err, &alert):
		return utils.BadRequestAlert(c, h.appName, alert)
	case errors.Is(err, apperrors.ErrWaletNotFound):
		return utils.Empty(c, fiber.StatusNotFound)
	default:
		h.logger.Error("walet request failed", zap.String("path", c.Path()), zap.Error(err))
		return utils.InternalError(c, "Internal server error")
	}
}

func pathID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func isPatchContentType(contentType string) bool {
	mediaType := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	return mediaType == fiber.MIMEApplicationJSON || mediaType == utils.MIMEMergePatchJSON
}
