package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/transaction-server/internal/handlers/envelope"
	"github.com/carson-networks/transaction-server/internal/service"
)

// UpdateTransactionInput is the Huma input for replacing a transaction.
type UpdateTransactionInput struct {
	ID   string `path:"id" doc:"Transaction UUID"`
	Body TransactionBody
}

// UpdateTransactionOutput is the Huma output for replacing a transaction.
type UpdateTransactionOutput struct {
	Body TransactionEnvelope
}

type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, id uuid.UUID, tx service.Transaction) (service.Transaction, error)
}

// UpdateTransactionHandler handles PUT /transactions/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/transactions/{id}",
		Summary:     "Update transaction",
		Description: "Replaces every field of an existing transaction. The id in the body, if any, is ignored.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	id, err := parseID(input.ID)
	if err != nil {
		return nil, envelope.FromError(ctx, err)
	}

	input.Body.ID = ""
	tx, err := parseTransactionBody(&input.Body)
	if err != nil {
		return nil, envelope.FromError(ctx, err)
	}

	updated, err := h.TransactionService.UpdateTransaction(ctx, id, tx)
	if err != nil {
		return nil, envelope.FromError(ctx, err)
	}

	return &UpdateTransactionOutput{Body: successEnvelope(updated)}, nil
}
