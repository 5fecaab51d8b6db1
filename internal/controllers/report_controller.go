package controllers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/reports/form8"
	"inventory-system/internal/services"
	"inventory-system/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// Form8 - GET /reports/form8/:department_id?format=pdf|xlsx|json.
// Заголовки файла пишутся только после успешного рендеринга.
func (c *ReportController) Form8(ctx echo.Context) error {
	departmentID, err := parseUintParam(ctx, "department_id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	format := strings.ToLower(ctx.QueryParam("format"))
	c.logger.Debug("Запрос формы 8", zap.Uint64("department_id", departmentID), zap.String("format", format))

	if format == services.FormatJSON {
		data, err := c.reportService.Form8Data(ctx.Request().Context(), departmentID)
		if err != nil {
			return utils.ErrorResponse(ctx, err, c.logger)
		}
		return utils.SuccessResponse(ctx, data, "Форма 8 сформирована", http.StatusOK)
	}

	file, err := c.reportService.Form8File(ctx.Request().Context(), departmentID, format)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, form8.ContentDisposition(file.Name))
	return ctx.Blob(http.StatusOK, file.ContentType, file.Data)
}
