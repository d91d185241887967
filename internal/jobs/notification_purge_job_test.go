package jobs

import (
	"context"
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type MockPurgeHandler struct {
	mock.Mock
}

func (m *MockPurgeHandler) Handle(ctx context.Context, cmd commands.PurgeReadNotificationsCommand) (int64, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(int64), args.Error(1)
}

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.InfoLevel)
	return zap.New(core), logs
}

func TestNotificationPurgeJob_Run(t *testing.T) {
	retention := 30 * 24 * time.Hour

	t.Run("passes the retention to the handler", func(t *testing.T) {
		handler := &MockPurgeHandler{}
		handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.PurgeReadNotificationsCommand) bool {
			return cmd.Retention() == retention
		})).Return(int64(5), nil).Once()
		logger, logs := newObservedLogger()

		NewNotificationPurgeJob(handler, "0 0 3 * * *", retention, logger).run()

		handler.AssertExpectations(t)
		entries := logs.FilterMessage("read notifications purged").All()
		require.Len(t, entries, 1)
		assert.Equal(t, int64(5), entries[0].ContextMap()["count"])
	})

	t.Run("logs handler failures", func(t *testing.T) {
		handler := &MockPurgeHandler{}
		handler.On("Handle", mock.Anything, mock.Anything).Return(int64(0), assert.AnError).Once()
		logger, logs := newObservedLogger()

		NewNotificationPurgeJob(handler, "0 0 3 * * *", retention, logger).run()

		assert.Equal(t, 1, logs.FilterMessage("notification purge job failed").Len())
	})

	t.Run("zero retention never reaches the handler", func(t *testing.T) {
		handler := &MockPurgeHandler{}
		logger, logs := newObservedLogger()

		NewNotificationPurgeJob(handler, "0 0 3 * * *", 0, logger).run()

		handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		assert.Equal(t, 1, logs.FilterMessage("notification purge job misconfigured").Len())
	})
}

func TestJobManager_StartAll(t *testing.T) {
	t.Run("starts and stops", func(t *testing.T) {
		manager := NewJobManager(&MockPurgeHandler{}, PurgeSettings{
			Schedule:  "0 0 3 * * *",
			Retention: time.Hour,
		}, zap.NewNop())

		require.NoError(t, manager.StartAll())
		manager.StopAll()
	})

	t.Run("invalid schedule", func(t *testing.T) {
		manager := NewJobManager(&MockPurgeHandler{}, PurgeSettings{
			Schedule:  "every day",
			Retention: time.Hour,
		}, zap.NewNop())

		err := manager.StartAll()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "notification purge job")
	})
}
