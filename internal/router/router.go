package router

import (
	"fmt"

	"github.com/codersbay-nikhil/json-test/internal/handlers"
	"github.com/codersbay-nikhil/json-test/internal/repositories"
	"github.com/codersbay-nikhil/json-test/pkg/config"
	"github.com/codersbay-nikhil/json-test/validators"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// New builds the echo instance with middleware, error handling and routes
func New(cfg *config.Config, recordRepo repositories.RecordRepository, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validators.NewValidator()
	e.HTTPErrorHandler = handlers.ErrorHandler(log)

	config.SetupMiddleware(e, cfg, log)
	SetupRoutes(e, recordRepo)
	return e
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, recordRepo repositories.RecordRepository) {
	e.GET("/", handlers.Root)

	api := e.Group("/api")
	api.GET("/health", handlers.HealthCheck)

	saveHandler := handlers.NewSaveHandler(recordRepo)
	saveHandler.RegisterSaveRoutes(api)
}

// NewRecordRepository picks the repository for the configured store driver.
// A mongo driver without a client yields a repository that fails every write.
func NewRecordRepository(cfg *config.Config, db *config.DB, connectErr error) (repositories.RecordRepository, error) {
	switch cfg.StoreDriver {
	case config.StoreMemory:
		return repositories.NewMemoryRecordRepository(), nil
	case config.StoreMongo:
		if db == nil || db.Mongo == nil {
			return repositories.NewUnavailableRecordRepository(connectErr), nil
		}
		return repositories.NewMongoRecordRepository(db.Collection()), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
