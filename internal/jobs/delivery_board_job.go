package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/ericks0nmartinez/burger/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DeliveryBoardJob publishes a periodic refresh event so the delivery board
// re-fetches the orders currently out for delivery.
type DeliveryBoardJob struct {
	publisher ports.EventPublisher
	cron      *cron.Cron
	logger    *slog.Logger
	now       func() time.Time
}

// NewDeliveryBoardJob creates the delivery board refresh job.
func NewDeliveryBoardJob(publisher ports.EventPublisher, logger *slog.Logger, now func() time.Time) *DeliveryBoardJob {
	return &DeliveryBoardJob{
		publisher: publisher,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "delivery_board_job"),
		now:       now,
	}
}

// Start begins the job, publishing every 30 seconds.
func (j *DeliveryBoardJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		event := ports.NewOrderEvent(ports.BoardRefreshEvent, 0, "", j.now())
		if err := j.publisher.Publish(ctx, event); err != nil {
			j.logger.WarnContext(ctx, "Delivery board refresh publish failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery board job started (publishing every 30 seconds)")
	return nil
}

// Stop stops the job.
func (j *DeliveryBoardJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery board job stopped")
}
