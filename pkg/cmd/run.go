package cmd

import (
	"context"
	"errors"

	"github.com/klwxsrx/simctl/pkg/log"
	"github.com/klwxsrx/simctl/pkg/worker"
)

// Run runs jobs until the first of them completes, then cancels the rest.
// A job completing without error, or by context cancellation, is not an error.
func Run(ctx context.Context, logger log.Logger, job ...worker.ErrorJob) error {
	errCompleted := errors.New("job completed")
	loggingAdapter := func(job worker.ErrorJob) worker.ErrorJob {
		return func(ctx context.Context) error {
			err := job(ctx)
			if err == nil || errors.Is(err, context.Canceled) {
				return errCompleted
			}

			logger.WithError(err).Error(ctx, "running job completed with error")
			return err
		}
	}

	_, group := worker.NewFailFastGroup(ctx)
	for _, j := range job {
		group.Do(loggingAdapter(j))
	}

	err := group.Wait()
	if !errors.Is(err, errCompleted) {
		return err
	}

	return nil
}
