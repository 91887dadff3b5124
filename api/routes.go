package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bankbuddy/internal/handlers/v1/account"
	"github.com/carson-networks/bankbuddy/internal/handlers/v1/status"
	"github.com/carson-networks/bankbuddy/internal/handlers/v1/summary"
	"github.com/carson-networks/bankbuddy/internal/handlers/v1/transaction"
	"github.com/carson-networks/bankbuddy/internal/logging"
	"github.com/carson-networks/bankbuddy/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("BankBuddy API", "1.0.0"))
	humaAPI.UseMiddleware(logging.Middleware(r.Logger))

	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewUpdateTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewDeleteTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(humaAPI)
	account.NewListAccountsHandler(r.Service.Account).Register(humaAPI)
	account.NewCreateAccountHandler(r.Service.Account).Register(humaAPI)
	summary.NewFinancialSummaryHandler(r.Service.Summary).Register(humaAPI)
	summary.NewCategorySpendHandler(r.Service.Summary).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
