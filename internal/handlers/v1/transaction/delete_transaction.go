package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/transaction-server/internal/errcode"
	"github.com/carson-networks/transaction-server/internal/handlers/envelope"
)

// DeleteTransactionInput is the Huma input for deleting a transaction.
type DeleteTransactionInput struct {
	ID string `path:"id" doc:"Transaction UUID"`
}

// DeleteEnvelope reports a successful delete.
type DeleteEnvelope struct {
	Code int    `json:"code" doc:"0 on success"`
	Msg  string `json:"msg" doc:"Result message"`
	Data bool   `json:"data" doc:"Always true on success"`
}

// DeleteTransactionOutput is the Huma output for deleting a transaction.
type DeleteTransactionOutput struct {
	Body DeleteEnvelope
}

type transactionDeleter interface {
	DeleteTransaction(ctx context.Context, id uuid.UUID) (bool, error)
}

// DeleteTransactionHandler handles DELETE /transactions/{id}.
type DeleteTransactionHandler struct {
	TransactionService transactionDeleter
}

// NewDeleteTransactionHandler creates a new DeleteTransactionHandler.
func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc}
}

// Register registers the delete transaction endpoint with the Huma API.
func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodDelete,
		Path:        "/transactions/{id}",
		Summary:     "Delete transaction",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	id, err := parseID(input.ID)
	if err != nil {
		return nil, envelope.FromError(ctx, err)
	}

	deleted, err := h.TransactionService.DeleteTransaction(ctx, id)
	if err != nil {
		return nil, envelope.FromError(ctx, err)
	}

	return &DeleteTransactionOutput{Body: DeleteEnvelope{
		Code: int(errcode.Success),
		Msg:  errcode.Success.Message(),
		Data: deleted,
	}}, nil
}
