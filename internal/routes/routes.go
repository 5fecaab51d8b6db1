package routes

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"inventory-system/internal/controllers"
	"inventory-system/internal/reports/form8"
	"inventory-system/internal/repositories"
	"inventory-system/internal/services"
	"inventory-system/pkg/config"
	"inventory-system/pkg/metrics"
)

type Loggers struct {
	Main   *zap.Logger
	Report *zap.Logger
}

// Deps - то, что создается один раз в main и дальше только читается.
type Deps struct {
	DB       *pgxpool.Pool
	Fonts    form8.FontSet
	Registry *prometheus.Registry
	Config   *config.Config
	Loggers  *Loggers
}

func InitRouter(e *echo.Echo, deps Deps) {
	loggers := deps.Loggers
	dbConn := deps.DB
	loggers.Main.Info("InitRouter: Начало создания маршрутов")

	api := e.Group("/api")
	txManager := repositories.NewTxManager(dbConn)

	// --- 1. РЕПОЗИТОРИИ ---
	organizationRepo := repositories.NewOrganizationRepository(dbConn, loggers.Main)
	departmentRepo := repositories.NewDepartmentRepository(dbConn, loggers.Main)
	placeRepo := repositories.NewPlaceRepository(dbConn, loggers.Main)
	userRepo := repositories.NewUserRepository(dbConn, loggers.Main)
	vendorRepo := repositories.NewVendorRepository(dbConn, loggers.Main)
	nomenclatureRepo := repositories.NewNomenclatureRepository(dbConn, loggers.Main)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn, loggers.Main)
	invoiceRepo := repositories.NewInvoiceRepository(dbConn, loggers.Main)

	// --- 2. СЕРВИСЫ ---
	var reportMetrics *metrics.ReportMetrics
	if deps.Config.Metrics.Enabled && deps.Registry != nil {
		reportMetrics = metrics.NewReportMetrics(deps.Registry)
	}
	reportLookup := services.NewReportLookup(nomenclatureRepo, vendorRepo, placeRepo, userRepo, invoiceRepo)
	reportService := services.NewReportService(
		departmentRepo, organizationRepo, userRepo, equipmentRepo, reportLookup,
		deps.Fonts, reportMetrics, deps.Config.Report.Location, loggers.Report,
	)
	equipmentController := controllers.NewEquipmentController(
		services.NewEquipmentService(equipmentRepo, loggers.Main),
		services.NewEquipmentImportService(txManager, equipmentRepo, nomenclatureRepo, placeRepo, loggers.Main),
		services.NewEquipmentExportService(equipmentRepo, nomenclatureRepo, placeRepo, loggers.Main),
		loggers.Main,
	)

	// --- 3. РОУТЕРЫ ---
	runCRUDRouter(api, "/organizations", controllers.NewOrganizationController(services.NewOrganizationService(organizationRepo, loggers.Main), loggers.Main))
	runCRUDRouter(api, "/departments", controllers.NewDepartmentController(services.NewDepartmentService(departmentRepo, loggers.Main), loggers.Main))
	runCRUDRouter(api, "/places", controllers.NewPlaceController(services.NewPlaceService(placeRepo, loggers.Main), loggers.Main))
	runCRUDRouter(api, "/users", controllers.NewUserController(services.NewUserService(userRepo, loggers.Main), loggers.Main))
	runCRUDRouter(api, "/vendors", controllers.NewVendorController(services.NewVendorService(vendorRepo, loggers.Main), loggers.Main))
	runCRUDRouter(api, "/nomenclatures", controllers.NewNomenclatureController(services.NewNomenclatureService(nomenclatureRepo, loggers.Main), loggers.Main))
	runCRUDRouter(api, "/invoices", controllers.NewInvoiceController(services.NewInvoiceService(txManager, invoiceRepo, loggers.Main), loggers.Main))
	runEquipmentRouter(api, equipmentController)
	runReportRouter(api, controllers.NewReportController(reportService, loggers.Report))
	runSystemRouter(e, deps)

	loggers.Main.Info("INIT_ROUTER: Создание маршрутов завершено")
}

type crudHandlers interface {
	GetAll(ctx echo.Context) error
	FindByID(ctx echo.Context) error
	Create(ctx echo.Context) error
	Update(ctx echo.Context) error
	Delete(ctx echo.Context) error
}

func runCRUDRouter(group *echo.Group, path string, ctrl crudHandlers) {
	group.GET(path, ctrl.GetAll)
	group.GET(path+"/:id", ctrl.FindByID)
	group.POST(path, ctrl.Create)
	group.PUT(path+"/:id", ctrl.Update)
	group.DELETE(path+"/:id", ctrl.Delete)
}

func runEquipmentRouter(group *echo.Group, ctrl *controllers.EquipmentController) {
	// статические пути раньше /:id
	group.GET("/equipment/export", ctrl.Export)
	group.POST("/equipment/import", ctrl.Import)
	runCRUDRouter(group, "/equipment", ctrl)
}

func runReportRouter(group *echo.Group, ctrl *controllers.ReportController) {
	group.GET("/reports/form8/:department_id", ctrl.Form8)
}

func runSystemRouter(e *echo.Echo, deps Deps) {
	e.GET("/health", func(c echo.Context) error {
		if err := deps.DB.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "db unavailable"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	if deps.Config.Metrics.Enabled && deps.Registry != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}
}
