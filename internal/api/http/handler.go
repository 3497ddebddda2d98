package apiHttp

import (
	"net/http"
	"time"

	"github.com/gin-contrib/gzip"
	ginzap "github.com/gin-contrib/zap"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/vibe-gaming/cities/contract"
	"github.com/vibe-gaming/cities/pkg/limiter"
	"github.com/vibe-gaming/cities/pkg/logger"
	"github.com/vibe-gaming/cities/pkg/openapi"
	"github.com/vibe-gaming/cities/pkg/schema"
	"github.com/vibe-gaming/cities/pkg/validator"

	internalV1 "github.com/vibe-gaming/cities/internal/api/http/internal/v1"
	"github.com/vibe-gaming/cities/internal/config"
	"github.com/vibe-gaming/cities/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	schemaPrefix  = "/schema"
	swaggerPrefix = "/swagger"
)

type Handler struct {
	services   *service.Services
	config     *config.Config
	contract   *openapi.Validator
	citySchema *schema.Validator
}

func NewHandlers(
	services *service.Services,
	cfg *config.Config,
	contractValidator *openapi.Validator,
	citySchema *schema.Validator,
) *Handler {
	return &Handler{
		services:   services,
		config:     cfg,
		contract:   contractValidator,
		citySchema: citySchema,
	}
}

func (h *Handler) Init(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	// Trailing slash variants are undeclared routes and must reach the
	// contract check instead of being redirected.
	router.RedirectTrailingSlash = false

	validator.RegisterGinValidator()

	router.Use(
		ginzap.Ginzap(logger.Logger(), time.RFC3339, true),
		ginzap.RecoveryWithZap(logger.Logger(), true),
		gzip.Gzip(gzip.DefaultCompression),
		limiter.Limit(cfg.Limiter.RPS, cfg.Limiter.Burst, cfg.Limiter.TTL),
		corsMiddleware(cfg.HttpServer.AllowedOrigins),
		internalV1.ContractMiddleware(h.contract, schemaPrefix+"/", swaggerPrefix+"/"),
	)

	router.StaticFS(schemaPrefix, http.FS(contract.FS))

	if cfg.HttpServer.SwaggerEnabled {
		router.GET(swaggerPrefix+"/*any", ginSwagger.WrapHandler(
			swaggerFiles.NewHandler(),
			ginSwagger.URL(schemaPrefix+"/"+contract.CityAPIFile),
		))
	}

	h.initAPI(router)

	return router
}

func (h *Handler) initAPI(router *gin.Engine) {
	internalHandlersV1 := internalV1.NewHandler(h.services, h.config, h.citySchema)
	api := router.Group("/api")
	internalHandlersV1.Init(api)
}
