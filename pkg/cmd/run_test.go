package cmd_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/simctl/pkg/cmd"
	"github.com/klwxsrx/simctl/pkg/log"
)

func TestRun_FirstCompletedJobStopsOthers(t *testing.T) {
	blockedCancelled := false
	err := cmd.Run(context.Background(), log.New(log.LevelDisabled),
		func(ctx context.Context) error {
			<-ctx.Done()
			blockedCancelled = true
			return ctx.Err()
		},
		func(context.Context) error { return nil },
	)

	assert.NoError(t, err)
	assert.True(t, blockedCancelled)
}

func TestRun_ReturnsJobError(t *testing.T) {
	errJob := errors.New("broken")
	err := cmd.Run(context.Background(), log.New(log.LevelDisabled),
		func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
		func(context.Context) error { return errJob },
	)

	assert.ErrorIs(t, err, errJob)
}

func TestHandleAppPanic_LogsRecoveredPanic(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := log.New(log.LevelError, log.WithOutput(buf))

	assert.NotPanics(t, func() {
		defer cmd.HandleAppPanic(context.Background(), logger)
		panic("boom")
	})
	assert.Contains(t, buf.String(), "app failed with panic")
	assert.Contains(t, buf.String(), "boom")
}
