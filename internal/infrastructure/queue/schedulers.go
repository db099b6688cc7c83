package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"reviewcard-backend/internal/config"
	exportModel "reviewcard-backend/internal/domains/export/model"
	"reviewcard-backend/internal/shared"
	"reviewcard-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
	jobConfig config.JobConfig
}

func NewScheduler(redisAddress string, jobConfig config.JobConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler: scheduler,
		jobConfig: jobConfig,
	}
}

func (s *Scheduler) RegisterCleanupJobs() error {
	return s.registerCleanupExportsJob()
}

// ================================================
// JOB: Cleanup Expired Export Artifacts (Daily at 3 AM)
// ================================================
// Exported PNG/PDF files chỉ sống đến khi user tải về; artifacts cũ hơn
// retention window bị reap khỏi MinIO.
func (s *Scheduler) registerCleanupExportsJob() error {
	payload, err := json.Marshal(exportModel.CleanupPayload{
		OlderThanDays: s.jobConfig.CleanupRetentionDays,
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeCleanupExports, payload)

	_, err = s.scheduler.Register(
		"0 3 * * *", // Daily at 3 AM
		task,
		asynq.Queue(shared.QueueMaintenance),
		asynq.MaxRetry(2),
		asynq.Timeout(10*time.Minute),
	)

	if err != nil {
		logger.Error("Failed to register CleanupExports job", err)
		return err
	}

	logger.Info("✓ Registered CleanupExports: daily at 3 AM", map[string]interface{}{
		"retention_days": s.jobConfig.CleanupRetentionDays,
	})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
