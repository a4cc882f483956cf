package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ericks0nmartinez/burger/internal/core/application/usecases/queries"
	"github.com/ericks0nmartinez/burger/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	cashRegisterJob  *CashRegisterJob
	deliveryBoardJob *DeliveryBoardJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	cashRegisterHandler queries.GetCashRegisterReportQueryHandler,
	publisher ports.EventPublisher,
	logger *slog.Logger,
	now func() time.Time,
) *JobManager {
	return &JobManager{
		cashRegisterJob:  NewCashRegisterJob(cashRegisterHandler, logger),
		deliveryBoardJob: NewDeliveryBoardJob(publisher, logger, now),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.cashRegisterJob.Start(); err != nil {
		return fmt.Errorf("failed to start cash register job: %w", err)
	}

	if err := jm.deliveryBoardJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.cashRegisterJob.Stop()
		return fmt.Errorf("failed to start delivery board job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.cashRegisterJob.Stop()
	jm.deliveryBoardJob.Stop()
}
