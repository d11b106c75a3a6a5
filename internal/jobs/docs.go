// Package jobs provides scheduled background tasks for the back office.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// 1. StockAlertJob - scans the inventory ledger for critical and out of stock
// items and logs a warning for each one. Runs every five minutes unless
// STOCK_ALERT_SCHEDULE says otherwise.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(inventoryRepo, cfg.StockAlertSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed scan is logged and retried on the next tick. Jobs never write to
// the ledger, so they cannot interfere with order transactions.
package jobs
