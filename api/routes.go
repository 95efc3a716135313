package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/transaction-server/internal/handlers/envelope"
	"github.com/carson-networks/transaction-server/internal/handlers/v1/status"
	"github.com/carson-networks/transaction-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/transaction-server/internal/logging"
	"github.com/carson-networks/transaction-server/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

// Handler builds the full route table. Every response allows any origin.
func (r *Rest) Handler() http.Handler {
	envelope.Install()

	mux := http.NewServeMux()
	api := humago.New(mux, huma.DefaultConfig("Transaction Server", "1.0.0"))
	api.UseMiddleware(logging.Middleware(r.Logger))

	txService := r.Service.Transaction
	transaction.NewCreateTransactionHandler(txService).Register(api)
	transaction.NewListTransactionsHandler(txService).Register(api)
	transaction.NewGetTransactionHandler(txService).Register(api)
	transaction.NewUpdateTransactionHandler(txService).Register(api)
	transaction.NewDeleteTransactionHandler(txService).Register(api)

	statusHandler := status.NewHandler(r.Service.Guards)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	return allowAnyOrigin(mux)
}

// Serve blocks until ctx is cancelled or the listener fails.
func (r *Rest) Serve(ctx context.Context) {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

func allowAnyOrigin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		header := w.Header()
		header.Set("Access-Control-Allow-Origin", "*")
		if req.Method == http.MethodOptions && req.Header.Get("Access-Control-Request-Method") != "" {
			header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			header.Set("Access-Control-Allow-Headers", "Content-Type")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, req)
	})
}
