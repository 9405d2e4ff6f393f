package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/budget-insights/internal/handlers/v1/budget"
	"github.com/carson-networks/budget-insights/internal/handlers/v1/dashboard"
	"github.com/carson-networks/budget-insights/internal/handlers/v1/kpi"
	"github.com/carson-networks/budget-insights/internal/handlers/v1/status"
	"github.com/carson-networks/budget-insights/internal/handlers/v1/transaction"
	"github.com/carson-networks/budget-insights/internal/logging"
	"github.com/carson-networks/budget-insights/internal/service"
)

const shutdownTimeout = 30 * time.Second

// Pinger reports whether the database is reachable. *sql.DB implements it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	DB      Pinger
	Service *service.Service
}

// registerOperations adds every v1 operation to the Huma API.
func registerOperations(api huma.API, svc *service.Service) {
	transaction.NewCreateTransactionHandler(svc.Transaction).Register(api)
	transaction.NewListTransactionsHandler(svc.Transaction).Register(api)
	kpi.NewAnalyzeHandler(svc.Analysis).Register(api)
	dashboard.NewOverviewHandler(svc.Dashboard).Register(api)
	budget.NewCreateBudgetHandler(svc.Budget).Register(api)
	budget.NewListBudgetsHandler(svc.Budget).Register(api)
}

func (r *Rest) mux() *http.ServeMux {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.DB)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("Budget Insights API", "1.0.0"))
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))
	registerOperations(api, r.Service)

	return mux
}

// Serve listens until ctx is cancelled, then shuts the server down gracefully.
func (r *Rest) Serve(ctx context.Context) error {
	server := &http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.mux(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		r.Logger.Info("HttpServer.Serve.shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	err := group.Wait()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.error")
	}
	return err
}
