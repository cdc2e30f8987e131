package handlers

import (
	"errors"
	"io"

	"expense-manager/internal/dto"
	"expense-manager/internal/models"
	"expense-manager/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type StatementHandler struct {
	statementService *service.StatementService
	logger           *zap.Logger
}

func NewStatementHandler(statementService *service.StatementService, logger *zap.Logger) *StatementHandler {
	return &StatementHandler{
		statementService: statementService,
		logger:           logger,
	}
}

// ExtractStatement godoc
// @Summary Extract statement text
// @Description Upload a bank statement PDF and get its raw text, one paragraph per page
// @Tags statements
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Statement (PDF)"
// @Success 200 {object} dto.ExtractStatementResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 415 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/v1/statements/extract [post]
func (h *StatementHandler) ExtractStatement(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": service.UserMessage(service.ErrInvalidDocument),
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open file",
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		h.logger.Error("Failed to read upload", zap.String("file", file.Filename), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to read file",
		})
	}

	text, err := h.statementService.Extract(c.UserContext(), models.StatementUpload{
		FileName:    file.Filename,
		ContentType: file.Header.Get(fiber.HeaderContentType),
		Data:        data,
	})
	if err != nil {
		return c.Status(statementErrorStatus(err)).JSON(fiber.Map{
			"error": service.UserMessage(err),
		})
	}

	return c.JSON(dto.ExtractStatementResponse{
		FileName: file.Filename,
		Text:     text,
	})
}

// GetStatus godoc
// @Summary Extraction status
// @Description State of the most recent statement extraction: idle, extracting, succeeded or failed
// @Tags statements
// @Produce json
// @Success 200 {object} dto.ExtractionStatusResponse
// @Router /api/v1/statements/status [get]
func (h *StatementHandler) GetStatus(c *fiber.Ctx) error {
	return c.JSON(dto.NewExtractionStatusResponse(h.statementService.Status()))
}

func statementErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrUnsupportedFileType):
		return fiber.StatusUnsupportedMediaType
	case errors.Is(err, service.ErrInvalidDocument):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrExtractionInProgress):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrUnreadableDocument):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}
