package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/codersbay-nikhil/json-test/internal/models"
	"github.com/codersbay-nikhil/json-test/internal/repositories"
	"github.com/labstack/echo/v4"
)

const msgSaved = "Data saved successfully in datasave model"

// SaveHandler persists arbitrary JSON payloads
type SaveHandler struct {
	recordRepository repositories.RecordRepository
}

// NewSaveHandler creates a new SaveHandler
func NewSaveHandler(recordRepo repositories.RecordRepository) *SaveHandler {
	return &SaveHandler{recordRepository: recordRepo}
}

// RegisterSaveRoutes registers the save route on the /api group
func (h *SaveHandler) RegisterSaveRoutes(g *echo.Group) {
	g.POST("/save", h.Save)
}

// Save stores the request body verbatim as a new record
func (h *SaveHandler) Save(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}
		return echo.NewHTTPError(http.StatusBadRequest, "Unable to read request body").SetInternal(err)
	}

	payload, err := decodePayload(body)
	if err != nil {
		return err
	}

	record := &models.DataSave{Data: payload}
	if err := c.Validate(record); err != nil {
		return &ValidationError{Message: err.Error()}
	}

	if err := h.recordRepository.CreateRecord(c.Request().Context(), record); err != nil {
		return &StorageError{Err: err}
	}

	return c.JSON(http.StatusCreated, models.Envelope{
		Success: true,
		Message: msgSaved,
		Data:    models.NewSaveResult(record),
	})
}
