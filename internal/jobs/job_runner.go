package jobs

import (
	"database/sql"

	"gearshare-backend/internal/config"
	"gearshare-backend/internal/logger"
	"gearshare-backend/internal/service"
)

// JobRunner holds the dependencies shared by the scheduled jobs.
type JobRunner struct {
	db       *sql.DB
	cfg      *config.Config
	emailSvc service.EmailService
}

func NewJobRunner(db *sql.DB, cfg *config.Config, emailSvc service.EmailService) *JobRunner {
	return &JobRunner{db: db, cfg: cfg, emailSvc: emailSvc}
}

// Config exposes the configuration to the scheduler for cron expressions.
func (jr *JobRunner) Config() *config.Config {
	return jr.cfg
}

func (jr *JobRunner) runWithRecovery(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", name, "panic", r)
		}
	}()
	logger.Info("Running job", "job", name)
	fn()
}
