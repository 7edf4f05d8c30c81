package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type releaserMock struct {
	mock.Mock
}

func (m *releaserMock) Handle(ctx context.Context, cmd commands.ReleaseTablesCommand) (int64, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(int64), args.Error(1)
}

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestTableReleaseJob_RunOnce(t *testing.T) {
	t.Run("logs released tables", func(t *testing.T) {
		var buf bytes.Buffer
		releaser := &releaserMock{}
		releaser.On("Handle", mock.Anything, mock.AnythingOfType("commands.ReleaseTablesCommand")).
			Return(int64(3), nil).Once()

		jobs.NewTableReleaseJob(releaser, "", newLogger(&buf)).RunOnce(context.Background())

		releaser.AssertExpectations(t)
		assert.Contains(t, buf.String(), "Released tables")
		assert.Contains(t, buf.String(), "count=3")
		assert.Contains(t, buf.String(), "component=table_release_job")
	})

	t.Run("stays quiet when nothing was released", func(t *testing.T) {
		var buf bytes.Buffer
		releaser := &releaserMock{}
		releaser.On("Handle", mock.Anything, mock.Anything).Return(int64(0), nil).Once()

		jobs.NewTableReleaseJob(releaser, "", newLogger(&buf)).RunOnce(context.Background())

		assert.Empty(t, buf.String())
	})

	t.Run("logs failures", func(t *testing.T) {
		var buf bytes.Buffer
		releaser := &releaserMock{}
		releaser.On("Handle", mock.Anything, mock.Anything).Return(int64(0), errors.New("boom")).Once()

		jobs.NewTableReleaseJob(releaser, "", newLogger(&buf)).RunOnce(context.Background())

		assert.Contains(t, buf.String(), "Table release job failed")
		assert.Contains(t, buf.String(), "boom")
	})
}

func TestTableReleaseJob_StartRejectsBadSchedule(t *testing.T) {
	var buf bytes.Buffer
	job := jobs.NewTableReleaseJob(&releaserMock{}, "every minute", newLogger(&buf))
	require.Error(t, job.Start())
}

func TestJobManager_StartAndStop(t *testing.T) {
	var buf bytes.Buffer
	manager := jobs.NewJobManager(&releaserMock{}, "0 0 0 1 1 *", newLogger(&buf))

	require.NoError(t, manager.StartAll())
	manager.StopAll()

	assert.Contains(t, buf.String(), "Table release job started")
	assert.Contains(t, buf.String(), "Table release job stopped")
}

func TestValidateSchedule(t *testing.T) {
	require.NoError(t, jobs.ValidateSchedule(jobs.DefaultTableReleaseSchedule))
	require.NoError(t, jobs.ValidateSchedule("@every 30s"))
	require.Error(t, jobs.ValidateSchedule("* * * * *"))
	require.Error(t, jobs.ValidateSchedule(""))
}
