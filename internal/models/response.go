package models

import "time"

// ISOLayout renders instants the way the API has always exposed them:
// UTC with millisecond precision.
const ISOLayout = "2006-01-02T15:04:05.000Z"

// FormatISO formats t with ISOLayout
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// Envelope wraps every JSON response
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SaveResult is returned in Envelope.Data after a successful save
type SaveResult struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	CreatedAt string `json:"createdAt"`
}

// NewSaveResult describes a persisted record
func NewSaveResult(record *DataSave) SaveResult {
	return SaveResult{
		ID:        record.ID.Hex(),
		Timestamp: FormatISO(record.Timestamp),
		CreatedAt: FormatISO(record.CreatedAt),
	}
}

type HealthResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type RootResponse struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}
