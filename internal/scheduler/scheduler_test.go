package scheduler_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/central-university-dev/go-message-sender/internal/scheduler"
	"github.com/central-university-dev/go-message-sender/internal/scheduler/mocks"
)

func TestScheduler_Start(t *testing.T) {
	mockStatsService := new(mocks.StatsService)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	interval := 100 * time.Millisecond

	mockStatsService.On("UpdateStorageMetrics", mock.MatchedBy(func(_ context.Context) bool {
		return true
	})).Return(nil)

	s := scheduler.NewScheduler(mockStatsService, interval, logger)
	s.Start()

	time.Sleep(150 * time.Millisecond)
	s.Stop()

	mockStatsService.AssertExpectations(t)
}

func TestScheduler_Stop(t *testing.T) {
	mockStatsService := new(mocks.StatsService)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	interval := 1 * time.Second

	s := scheduler.NewScheduler(mockStatsService, interval, logger)

	s.Start()
	s.Stop()

	mockStatsService.AssertNotCalled(t, "UpdateStorageMetrics", mock.Anything)
}

func TestScheduler_UpdateError(t *testing.T) {
	mockStatsService := new(mocks.StatsService)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	interval := 100 * time.Millisecond

	mockStatsService.On("UpdateStorageMetrics", mock.MatchedBy(func(_ context.Context) bool {
		return true
	})).Return(assert.AnError)

	s := scheduler.NewScheduler(mockStatsService, interval, logger)
	s.Start()

	time.Sleep(150 * time.Millisecond)
	s.Stop()

	mockStatsService.AssertExpectations(t)
}
