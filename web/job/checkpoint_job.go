package job

import (
	"tbs-api/database"
	"tbs-api/logger"
)

type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

// Run is an interface method of the cron Job interface. It flushes the
// sqlite WAL into the main database file.
func (j *CheckpointJob) Run() {
	if err := database.Checkpoint(); err != nil {
		logger.Warning("checkpoint job err:", err)
	}
}
