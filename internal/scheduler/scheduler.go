package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

type StatsService interface {
	UpdateStorageMetrics(ctx context.Context) error
}

// Scheduler периодически обновляет метрики размеров хранилища.
type Scheduler struct {
	scheduler    *gocron.Scheduler
	statsService StatsService
	logger       *slog.Logger
	interval     time.Duration
}

func NewScheduler(statsService StatsService, interval time.Duration, logger *slog.Logger) *Scheduler {
	scheduler := gocron.NewScheduler(time.UTC)

	return &Scheduler{
		scheduler:    scheduler,
		statsService: statsService,
		logger:       logger,
		interval:     interval,
	}
}

func (s *Scheduler) Start() {
	s.logger.Info("Запуск планировщика",
		"interval", s.interval.String(),
	)

	_, err := s.scheduler.Every(s.interval).Do(func() {
		ctx := context.Background()
		if err := s.statsService.UpdateStorageMetrics(ctx); err != nil {
			s.logger.Error("Ошибка при обновлении метрик хранилища",
				"error", err,
			)
		}
	})

	if err != nil {
		s.logger.Error("Ошибка при настройке планировщика",
			"error", err,
		)

		return
	}

	s.scheduler.StartAsync()
}

func (s *Scheduler) Stop() {
	s.logger.Info("Остановка планировщика")
	s.scheduler.Stop()
}
