// Package jobs provides scheduled background tasks for kitchenpos.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules
// (cron.WithSeconds), so expressions have six fields.
//
// # Available Jobs
//
// MenuAuditJob runs HideMispricedMenusCommand on MENU_AUDIT_SCHEDULE
// (default "0 * * * * *", once a minute). It hides every displayed menu whose
// price exceeds the sum of its products at their current prices, which
// catches menus left inconsistent by price changes made outside the API.
//
// # Usage
//
//	audit := jobs.NewMenuAuditJob(hideMispricedHandler, cfg.MenuAuditSchedule, logger)
//	jobManager := jobs.NewJobManager(logger, audit)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
//   - A failed audit is logged and retried on the next tick
//   - Failed job starts stop any already running jobs
package jobs
