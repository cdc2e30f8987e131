package models

import "time"

type ExtractionState string

const (
	ExtractionStateIdle       ExtractionState = "idle"
	ExtractionStateExtracting ExtractionState = "extracting"
	ExtractionStateSucceeded  ExtractionState = "succeeded"
	ExtractionStateFailed     ExtractionState = "failed"
)

// StatementUpload is a file submitted for text extraction. ContentType is the
// declared media type, not a sniffed one.
type StatementUpload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// ExtractionStatus is a snapshot of the most recent extraction.
type ExtractionStatus struct {
	State      ExtractionState
	FileName   string
	TextLength int
	Error      string
	UpdatedAt  time.Time
}
