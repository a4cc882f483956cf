package jobs

import (
	"context"
	"log/slog"

	"github.com/ericks0nmartinez/burger/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// CashRegisterJob recomputes the current day's cash register totals every
// minute and logs a summary.
type CashRegisterJob struct {
	handler queries.GetCashRegisterReportQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCashRegisterJob creates the cash register refresh job.
func NewCashRegisterJob(handler queries.GetCashRegisterReportQueryHandler, logger *slog.Logger) *CashRegisterJob {
	return &CashRegisterJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "cash_register_job"),
	}
}

// Start begins the job, running once per minute.
func (j *CashRegisterJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		report, err := j.handler.Handle(ctx, queries.NewGetCashRegisterReportQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Cash register refresh failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Cash register totals",
			"orders", report.OrderCount,
			"cash", report.Cash,
			"pix", report.Pix,
			"debitCard", report.DebitCard,
			"creditCard", report.CreditCard,
			"deliveryFees", report.DeliveryFees,
			"overall", report.OverallTotal,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cash register job started (running every minute)")
	return nil
}

// Stop stops the job.
func (j *CashRegisterJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cash register job stopped")
}
