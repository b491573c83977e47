package routes

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	_ "pix_storefront/docs" // registers the swagger spec
	"pix_storefront/internal/adapter/http/handlers"
	response "pix_storefront/internal/adapter/http/dto/response"
	"pix_storefront/internal/domain/entities"
	"pix_storefront/internal/infrastructure/logging"
	"pix_storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	DefaultPort     = 3000
	HeaderRequestID = "X-Request-ID"
	shutdownTimeout = 5 * time.Second
)

// NewRouter builds the auxiliary HTTP API.
func NewRouter(catalog *entities.Catalog, pix usecase.IPixPaymentUseCase) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	pixHandler := handlers.NewPixHandler(pix)
	catalogHandler := handlers.NewCatalogHandler(catalog)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, catalogHandler)
	addPixRoutes(v1, pixHandler)
	addLegacyRoutes(router, pixHandler)
	return router
}

// Run serves router on port until ctx is cancelled.
func Run(ctx context.Context, router http.Handler, port int) error {
	if port <= 0 {
		port = DefaultPort
	}
	logger := logging.Component("http")
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Int("port", port).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info().Msg("http server stopped")
	return nil
}

func setMiddlewares(router *gin.Engine) {
	logger := logging.Component("http")
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(requestID())
	router.Use(cors())
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, "+HeaderRequestID)
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// ping godoc
// @Summary  Health check
// @Tags     health
// @Produce  json
// @Success  200  {object}  response.PingResponse
// @Router   /ping [get]
func ping(c *gin.Context) {
	c.JSON(http.StatusOK, response.PingResponse{Message: "pong"})
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", ping)
}
