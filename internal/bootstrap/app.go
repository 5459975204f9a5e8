package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/hrsight/employees-api/internal/analytics"
	"github.com/hrsight/employees-api/internal/config"
	"github.com/hrsight/employees-api/internal/database"
	"github.com/hrsight/employees-api/internal/handler"
	"github.com/hrsight/employees-api/internal/logger"
	"github.com/hrsight/employees-api/internal/repository"
)

type App struct {
	Echo *echo.Echo
	DB   *sql.DB
}

func NewApp() *App {
	return &App{
		Echo: echo.New(),
	}
}

func (a *App) Initialize(ctx context.Context) error {
	// Load environment configuration
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}

	// Initialize logging
	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH, config.DefaultEnvConfig.LOG_LEVEL)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	// Initialize database connection
	dbConfig := database.Config{
		Host:            config.DefaultEnvConfig.DB_HOST,
		Port:            config.DefaultEnvConfig.DB_PORT,
		User:            config.DefaultEnvConfig.DB_USER,
		Password:        config.DefaultEnvConfig.DB_PASSWORD,
		DBName:          config.DefaultEnvConfig.DB_NAME,
		SSLMode:         config.DefaultEnvConfig.DB_SSL_MODE,
		MaxOpenConns:    config.DefaultEnvConfig.DB_MAX_OPEN_CONNS,
		MaxIdleConns:    config.DefaultEnvConfig.DB_MAX_IDLE_CONNS,
		ConnMaxLifetime: config.DefaultEnvConfig.DB_CONN_MAX_LIFETIME,
	}

	db, err := database.NewPostgresDB(ctx, dbConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	a.DB = db

	if config.DefaultEnvConfig.DB_AUTO_MIGRATE {
		if err := database.RunMigrations(ctx, db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	// Initialize dependencies
	engine := analytics.NewJoinEngine(db)
	employeeHandler := handler.NewEmployeeHandler(repository.NewEmployeeRepository(db), engine)
	departmentHandler := handler.NewDepartmentHandler(repository.NewDepartmentRepository(db))
	titleHandler := handler.NewTitleHandler(repository.NewTitleRepository(db))
	salaryHandler := handler.NewSalaryHandler(repository.NewSalaryRepository(db))
	deptEmpHandler := handler.NewDeptEmpHandler(repository.NewDeptEmpRepository(db))
	deptManagerHandler := handler.NewDeptManagerHandler(repository.NewDeptManagerRepository(db))
	analyticsHandler := handler.NewAnalyticsHandler(engine)

	a.Echo.Validator = handler.NewRequestValidator()

	// Register Middlewares
	a.RegisterMiddlewares()

	// Register Routes
	a.RegisterRoutes(employeeHandler, departmentHandler, titleHandler,
		salaryHandler, deptEmpHandler, deptManagerHandler, analyticsHandler)

	return nil
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.Logger())
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.CORS())
}

func (a *App) RegisterRoutes(
	employeeHandler *handler.EmployeeHandler,
	departmentHandler *handler.DepartmentHandler,
	titleHandler *handler.TitleHandler,
	salaryHandler *handler.SalaryHandler,
	deptEmpHandler *handler.DeptEmpHandler,
	deptManagerHandler *handler.DeptManagerHandler,
	analyticsHandler *handler.AnalyticsHandler,
) {
	a.Echo.GET("/employees/list", employeeHandler.ListHandler)
	a.Echo.POST("/employees/addition", employeeHandler.AddHandler)
	a.Echo.PUT("/employees/update", employeeHandler.UpdateHandler)
	a.Echo.DELETE("/employees/deletion", employeeHandler.DeleteHandler)
	a.Echo.GET("/employees/view", employeeHandler.ViewHandler)
	a.Echo.GET("/employees/view/export", employeeHandler.ViewExportHandler)

	a.Echo.GET("/dept/list", departmentHandler.ListHandler)
	a.Echo.POST("/departments/addition", departmentHandler.AddHandler)
	a.Echo.PUT("/departments/update", departmentHandler.UpdateHandler)
	a.Echo.DELETE("/departments/deletion", departmentHandler.DeleteHandler)

	a.Echo.GET("/titles/list", titleHandler.ListHandler)
	a.Echo.POST("/titles/addition", titleHandler.AddHandler)
	a.Echo.PUT("/titles/update", titleHandler.UpdateHandler)
	a.Echo.DELETE("/titles/deletion", titleHandler.DeleteHandler)
	a.Echo.POST("/titles/reassignment", titleHandler.ReassignHandler)

	a.Echo.GET("/salary/list", salaryHandler.ListHandler)
	a.Echo.POST("/salary/addition", salaryHandler.AddHandler)
	a.Echo.PUT("/salary/update", salaryHandler.UpdateHandler)
	a.Echo.DELETE("/salary/deletion", salaryHandler.DeleteHandler)
	a.Echo.POST("/salary/reassignment", salaryHandler.ReassignHandler)

	a.Echo.GET("/dept_emp/list", deptEmpHandler.ListHandler)
	a.Echo.POST("/dept_emp/addition", deptEmpHandler.AddHandler)
	a.Echo.PUT("/dept_emp/update", deptEmpHandler.UpdateHandler)
	a.Echo.DELETE("/dept_emp/deletion", deptEmpHandler.DeleteHandler)
	a.Echo.POST("/dept_emp/reassignment", deptEmpHandler.ReassignHandler)

	a.Echo.GET("/dept_manager/list", deptManagerHandler.ListHandler)
	a.Echo.POST("/dept_manager/addition", deptManagerHandler.AddHandler)
	a.Echo.PUT("/dept_manager/update", deptManagerHandler.UpdateHandler)
	a.Echo.DELETE("/dept_manager/deletion", deptManagerHandler.DeleteHandler)
	a.Echo.POST("/dept_manager/reassignment", deptManagerHandler.ReassignHandler)

	a.Echo.GET("/org_chart/full", analyticsHandler.OrgChartHandler)
	a.Echo.GET("/retirement/age", analyticsHandler.RetirementHandler)
	a.Echo.GET("/headcount/changes", analyticsHandler.HeadcountHandler)
	a.Echo.GET("/promotion/internal_mobility", analyticsHandler.MobilityHandler)
	a.Echo.GET("/promotion/recent", analyticsHandler.PromotionsHandler)
	a.Echo.GET("/transfer/list", analyticsHandler.TransfersHandler)
	a.Echo.GET("/long_single_role/candidates", analyticsHandler.TenureHandler)
}

func (a *App) Run() error {
	defer a.DB.Close()
	return a.Echo.Start(fmt.Sprintf(":%d", config.DefaultEnvConfig.APP_PORT))
}
