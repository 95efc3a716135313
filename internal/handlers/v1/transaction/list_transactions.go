package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/transaction-server/internal/errcode"
	"github.com/carson-networks/transaction-server/internal/handlers/envelope"
	"github.com/carson-networks/transaction-server/internal/logging"
	"github.com/carson-networks/transaction-server/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions. Bounds
// are checked by the service so that bad values share the parameter error code.
type ListTransactionsInput struct {
	Page int `query:"page" default:"1" doc:"Page number, starting at 1"`
	Size int `query:"size" default:"10" doc:"Page size"`
}

// TransactionListEnvelope wraps a page of transactions.
type TransactionListEnvelope struct {
	Code int           `json:"code" doc:"0 on success"`
	Msg  string        `json:"msg" doc:"Result message"`
	Data []Transaction `json:"data" doc:"Most recently updated first"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body TransactionListEnvelope
}

type transactionLister interface {
	ListTransactions(ctx context.Context, page, size int) ([]service.Transaction, error)
}

// ListTransactionsHandler handles GET /transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/transactions",
		Summary:     "List transactions",
		Description: "Returns one page of transactions ordered by last update, newest first.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, err := h.TransactionService.ListTransactions(ctx, input.Page, input.Size)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, envelope.FromError(ctx, err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := TransactionListEnvelope{
		Code: int(errcode.Success),
		Msg:  errcode.Success.Message(),
		Data: make([]Transaction, len(transactions)),
	}
	for i, tx := range transactions {
		resp.Data[i] = transactionToAPI(tx)
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
