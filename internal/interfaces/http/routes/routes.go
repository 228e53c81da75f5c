package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/easayliu/yadisk-relay/internal/application/container"
	"github.com/easayliu/yadisk-relay/internal/infrastructure/config"
	"github.com/easayliu/yadisk-relay/internal/interfaces/http/handlers"
	"github.com/easayliu/yadisk-relay/internal/interfaces/http/middleware"
	"github.com/easayliu/yadisk-relay/web"
)

// RoutesConfig 路由配置
type RoutesConfig struct {
	config    *config.Config
	container *container.ServiceContainer
}

// NewRoutesConfig 创建路由配置
func NewRoutesConfig(cfg *config.Config, serviceContainer *container.ServiceContainer) *RoutesConfig {
	return &RoutesConfig{
		config:    cfg,
		container: serviceContainer,
	}
}

// SetupMiddlewares 设置全局中间件，顺序即执行顺序
func (rc *RoutesConfig) SetupMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.RecoverMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.BodyLimitMiddleware(rc.config.Server.BodyLimit()))
	router.Use(middleware.ErrorHandlerMiddleware())
}

// SetupRoutes 设置路由
func (rc *RoutesConfig) SetupRoutes(router *gin.Engine) {
	fileHandler := handlers.NewFileHandler(rc.container.GetFileService())
	downloadHandler := handlers.NewDownloadHandler(rc.container.GetDownloadService())
	fileAPIHandler := handlers.NewFileAPIHandler(rc.container.GetFileService())

	// 页面与表单，错误以纯文本返回
	router.GET("/", fileHandler.Index)
	router.POST("/list_files", fileHandler.ListFiles)
	router.GET("/download_file", downloadHandler.DownloadFile)
	router.POST("/download_multiple_files", downloadHandler.DownloadMultipleFiles)

	// Swagger文档路由
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1", middleware.JSONErrors())
	{
		api.GET("/health", handlers.HealthCheck)

		files := api.Group("/files")
		{
			files.POST("/list", fileAPIHandler.ListFiles)
			files.POST("/archive", downloadHandler.ArchiveFiles)
		}
	}
}

// SetupRoutesWithContainer 创建gin引擎并挂载全部路由
func SetupRoutesWithContainer(cfg *config.Config, serviceContainer *container.ServiceContainer) (*gin.Engine, error) {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	router := gin.New()

	tmpl, err := web.ParseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	rc := NewRoutesConfig(cfg, serviceContainer)
	rc.SetupMiddlewares(router)
	rc.SetupRoutes(router)

	return router, nil
}
