package dto

import (
	"time"

	"expense-manager/internal/models"
)

type ExtractStatementResponse struct {
	FileName string `json:"file_name"`
	Text     string `json:"text"`
}

type ExtractionStatusResponse struct {
	State      string `json:"state"`
	FileName   string `json:"file_name,omitempty"`
	TextLength int    `json:"text_length"`
	Error      string `json:"error,omitempty"`
	UpdatedAt  string `json:"updated_at"`
}

func NewExtractionStatusResponse(status models.ExtractionStatus) ExtractionStatusResponse {
	return ExtractionStatusResponse{
		State:      string(status.State),
		FileName:   status.FileName,
		TextLength: status.TextLength,
		Error:      status.Error,
		UpdatedAt:  status.UpdatedAt.Format(time.RFC3339),
	}
}
