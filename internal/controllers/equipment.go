package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/reports/form8"
	"inventory-system/internal/services"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"
	"inventory-system/pkg/validation"
)

const equipmentImportContext = "equipment_import"

type EquipmentController struct {
	*CRUDController[entities.Equipment, dto.CreateEquipmentDTO, dto.UpdateEquipmentDTO]
	importer services.EquipmentImportServiceInterface
	exporter services.EquipmentExportServiceInterface
	logger   *zap.Logger
}

func NewEquipmentController(
	service services.EquipmentServiceInterface,
	importer services.EquipmentImportServiceInterface,
	exporter services.EquipmentExportServiceInterface,
	logger *zap.Logger,
) *EquipmentController {
	crud := newCRUDController[entities.Equipment, dto.CreateEquipmentDTO, dto.UpdateEquipmentDTO](service, CRUDMessages{
		List:    "Список оборудования",
		Found:   "Оборудование найдено",
		Created: "Оборудование создано",
		Updated: "Оборудование обновлено",
		Deleted: "Оборудование удалено",
	}, logger)
	return &EquipmentController{CRUDController: crud, importer: importer, exporter: exporter, logger: logger}
}

// Export отдает xlsx со всем оборудованием под фильтром запроса.
func (c *EquipmentController) Export(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	data, err := c.exporter.Export(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	name := fmt.Sprintf("equipment_%s.xlsx", time.Now().Format("20060102_150405"))
	ctx.Response().Header().Set(echo.HeaderContentDisposition, form8.ContentDisposition(name))
	return ctx.Blob(http.StatusOK, form8.MIMEXLSX, data)
}

// Import принимает multipart-поле file; department_id в query привязывает записи к подразделению.
func (c *EquipmentController) Import(ctx echo.Context) error {
	var departmentID *uint64
	if raw := ctx.QueryParam("department_id"); raw != "" {
		id, err := utils.ParseIDParam(raw)
		if err != nil {
			return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверный department_id", err, nil), c.logger)
		}
		departmentID = &id
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Файл не был передан", apperrors.ErrBadRequest, nil), c.logger)
	}
	src, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusInternalServerError, "Ошибка обработки файла", err, nil), c.logger)
	}
	defer src.Close()

	if err := validation.ValidateFile(fileHeader, src, equipmentImportContext); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, err.Error(), nil, nil), c.logger)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(src); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusInternalServerError, "Ошибка чтения файла", err, nil), c.logger)
	}

	result, err := c.importer.Import(ctx.Request().Context(), &buf, departmentID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	c.logger.Info("Импорт оборудования", zap.String("file", fileHeader.Filename), zap.Int("created", result.Created), zap.Int("updated", result.Updated))
	return utils.SuccessResponse(ctx, result, "Импорт завершен", http.StatusOK)
}
