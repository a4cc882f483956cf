// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the kitchen and delivery boards.
//
// # Available Jobs
//
// 1. CashRegisterJob - Runs every minute to recompute and log the day's cash
// register totals so the admin board stays warm.
// 2. DeliveryBoardJob - Runs every 30 seconds to publish a refresh event for
// the delivery board.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(cashRegisterHandler, publisher, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job failures are logged and never abort the schedule; the next tick runs
// regardless. Failed job starts stop any already running jobs.
package jobs
