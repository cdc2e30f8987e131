package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"expense-manager/internal/models"
)

type CreateTransactionRequest struct {
	Type        string     `json:"type" form:"type" example:"expense"`
	Amount      AmountText `json:"amount" form:"amount" swaggertype:"string" example:"200.50"`
	Description string     `json:"description" form:"description" example:"Weekly groceries"`
	Category    string     `json:"category,omitempty" form:"category" example:"Groceries"`
	Date        string     `json:"date,omitempty" form:"date" example:"2024-03-15"`
}

// AmountText is the amount exactly as the client sent it. JSON strings are
// unquoted; numbers and any other token are kept verbatim so the ledger can
// report them as invalid amounts.
type AmountText string

func (a *AmountText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*a = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = AmountText(s)
	default:
		*a = AmountText(b)
	}
	return nil
}

func (a *AmountText) UnmarshalText(b []byte) error {
	*a = AmountText(b)
	return nil
}

func (r CreateTransactionRequest) ToInput() models.TransactionInput {
	return models.TransactionInput{
		Type:        r.Type,
		Amount:      string(r.Amount),
		Description: r.Description,
		Category:    r.Category,
		Date:        r.Date,
	}
}

type TransactionResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
	Date        string `json:"date"`
	CreatedAt   string `json:"created_at"`
}

func NewTransactionResponse(tx models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID.String(),
		Type:        string(tx.Type),
		Amount:      tx.Amount.String(),
		Description: tx.Description,
		Category:    string(tx.Category),
		Date:        tx.Date.String(),
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
}

func NewTransactionListResponse(txs []models.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, NewTransactionResponse(tx))
	}
	return out
}

type ValidationErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field"`
}
