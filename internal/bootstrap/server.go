package bootstrap

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	app "github.com/mohammadpnp/user-ingest/internal/application/user"
	"github.com/mohammadpnp/user-ingest/internal/infrastructure/repository"
	httpecho "github.com/mohammadpnp/user-ingest/internal/interfaces/http/echo"
)

type ServerConfig struct {
	ChunkSize int
	BodyLimit string
}

func NewHTTPServer(db *gorm.DB, queue *app.WorkQueue, cfg ServerConfig, logger *zap.Logger) *echo.Echo {
	if cfg.BodyLimit == "" {
		cfg.BodyLimit = "50M"
	}

	server := echo.New()
	server.HideBanner = true

	server.Use(middleware.Recover())
	server.Use(middleware.RequestID())
	server.Use(middleware.BodyLimit(cfg.BodyLimit))

	producer := app.NewCSVProducer(queue, cfg.ChunkSize, logger)
	uploadUsers := app.NewUploadUsersFromCSV(producer, logger)
	uploadHandler := httpecho.NewUploadHandler(uploadUsers)

	userQueryRepo := repository.NewUserQueryRepository(db)
	listUsers := app.NewListUsers(userQueryRepo)
	getUserByID := app.NewGetUserByID(userQueryRepo)
	userHandler := httpecho.NewUserHandler(listUsers, getUserByID)

	httpecho.RegisterRoutes(server, uploadHandler, userHandler)

	server.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	server.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return server
}
