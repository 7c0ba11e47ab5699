package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/codersbay-nikhil/json-test/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const (
	msgEmptyBody      = "Request body cannot be empty"
	msgInvalidJSON    = "Invalid JSON payload"
	msgNotContainer   = "Request body must be a JSON object or array"
	msgInternalServer = "Internal server error"
)

// ValidationError rejects a request body. Message is returned to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StorageError is a failed write. The cause is echoed to the caller.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ErrorHandler renders every error returned by a handler or middleware as an Envelope
func ErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		env := models.Envelope{Message: msgInternalServer}

		var (
			validationErr *ValidationError
			storageErr    *StorageError
			httpErr       *echo.HTTPError
		)
		switch {
		case errors.As(err, &validationErr):
			code = http.StatusBadRequest
			env.Message = validationErr.Message
		case errors.As(err, &storageErr):
			log.Error().Err(storageErr.Err).Msg("Error saving data")
			env.Error = storageErr.Err.Error()
		case errors.As(err, &httpErr):
			code = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok {
				env.Message = msg
			} else {
				env.Message = fmt.Sprint(httpErr.Message)
			}
		default:
			log.Error().Err(err).Msg("unhandled error")
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(code)
		} else {
			werr = c.JSON(code, env)
		}
		if werr != nil {
			log.Error().Err(werr).Msg("failed to write error response")
		}
	}
}
