package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/fieldtrack-io/fieldtrack/docs"
	"github.com/fieldtrack-io/fieldtrack/internal/config"
	"github.com/fieldtrack-io/fieldtrack/internal/middleware"
	"github.com/fieldtrack-io/fieldtrack/internal/modules/handler"
	"github.com/fieldtrack-io/fieldtrack/internal/modules/serializer"
	"github.com/fieldtrack-io/fieldtrack/internal/modules/service"
	"github.com/fieldtrack-io/fieldtrack/internal/telemetry"
)

type RouterDeps struct {
	Config               *config.Config
	Log                  *zap.Logger
	AuthService          service.AuthService
	AuthHandler          *handler.AuthHandler
	ProjectHandler       *handler.ProjectHandler
	InputDataHandler     *handler.InputDataHandler
	DailyLogHandler      *handler.DailyLogHandler
	DefaultValuesHandler *handler.DefaultValuesHandler
	TrackingSheetHandler *handler.TrackingSheetHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	// Initialize logger for serializer package
	serializer.SetLogger(d.Log)
	handler.RegisterValidations()

	r := gin.New()
	r.Use(gin.Recovery())

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(telemetry.GinMiddleware(d.Config.App.Name))
		r.Use(telemetry.TraceIDMiddleware())
	}

	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, serializer.OK("ok", nil))
	})

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		// login is the only unauthenticated endpoint
		api.POST("/auth", d.AuthHandler.Login)

		authed := api.Group("")
		authed.Use(middleware.TokenAuth(d.AuthService))

		authed.GET("/auth", d.AuthHandler.Me)

		project := authed.Group("/project")
		{
			project.POST("", d.ProjectHandler.CreateProject)
			project.GET("/list", d.ProjectHandler.ListProjects)
			project.GET("/:project_id", d.ProjectHandler.GetProject)
		}

		authed.POST("/input-data", d.InputDataHandler.UploadInputData)
		authed.GET("/input-data", d.InputDataHandler.GetInputData)

		authed.POST("/daily-log/:well_id", d.DailyLogHandler.CreateDailyLogs)
		authed.GET("/daily-log/:well_id", d.DailyLogHandler.ListDailyLogs)

		authed.GET("/default-values/:well_id", d.DefaultValuesHandler.GetDefaultValues)
		authed.POST("/default-values/:well_id", d.DefaultValuesHandler.SetDefaultValues)

		sheet := authed.Group("/tracking-sheet")
		{
			sheet.POST("/create/:well_id", d.TrackingSheetHandler.CreateTrackingSheet)
			sheet.GET("/stage_list/:well_uuid", d.TrackingSheetHandler.ListStages)
			sheet.GET("/:sheet_id", d.TrackingSheetHandler.GetStage)
		}
	}
	return r
}
