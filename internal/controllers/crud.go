package controllers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
	"inventory-system/pkg/utils"
)

// crudService - общий вид сервисов справочников: E - сущность, C и U - DTO создания и обновления.
type crudService[E, C, U any] interface {
	GetAll(ctx context.Context, filter types.Filter) ([]E, uint64, error)
	FindByID(ctx context.Context, id uint64) (*E, error)
	Create(ctx context.Context, d C) (*E, error)
	Update(ctx context.Context, id uint64, d U) (*E, error)
	Delete(ctx context.Context, id uint64) error
}

// CRUDMessages - тексты ответов для конкретной сущности.
type CRUDMessages struct {
	List    string
	Found   string
	Created string
	Updated string
	Deleted string
}

type CRUDController[E, C, U any] struct {
	service  crudService[E, C, U]
	messages CRUDMessages
	logger   *zap.Logger
}

func newCRUDController[E, C, U any](service crudService[E, C, U], messages CRUDMessages, logger *zap.Logger) *CRUDController[E, C, U] {
	return &CRUDController[E, C, U]{service: service, messages: messages, logger: logger}
}

func (c *CRUDController[E, C, U]) GetAll(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	list, total, err := c.service.GetAll(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, list, c.messages.List, http.StatusOK, total)
}

func (c *CRUDController[E, C, U]) FindByID(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	item, err := c.service.FindByID(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, item, c.messages.Found, http.StatusOK)
}

func (c *CRUDController[E, C, U]) Create(ctx echo.Context) error {
	var d C
	if err := ctx.Bind(&d); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверные данные", err, nil), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	item, err := c.service.Create(ctx.Request().Context(), d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, item, c.messages.Created, http.StatusCreated)
}

func (c *CRUDController[E, C, U]) Update(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var d U
	if err := ctx.Bind(&d); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверные данные", err, nil), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	item, err := c.service.Update(ctx.Request().Context(), id, d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, item, c.messages.Updated, http.StatusOK)
}

func (c *CRUDController[E, C, U]) Delete(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.service.Delete(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, c.messages.Deleted, http.StatusOK)
}

func parseID(ctx echo.Context) (uint64, error) {
	return parseUintParam(ctx, "id")
}

func parseUintParam(ctx echo.Context, name string) (uint64, error) {
	id, err := utils.ParseIDParam(ctx.Param(name))
	if err != nil {
		return 0, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат ID", err, map[string]interface{}{name: ctx.Param(name)})
	}
	return id, nil
}
