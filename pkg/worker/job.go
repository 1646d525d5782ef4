package worker

import (
	"context"
	"time"

	"github.com/klwxsrx/simctl/pkg/log"
)

// UntilDone repeats job every period until it reports done or ctx is cancelled.
func UntilDone(job func(context.Context) (done bool, err error), every time.Duration, logger log.Logger) ErrorJob {
	return func(ctx context.Context) error {
		ticker := time.NewTicker(every)
		defer ticker.Stop()

		for {
			done, err := job(ctx)
			if err != nil {
				logger.WithError(err).Error(ctx, "periodical job completed with error")
				return err
			}
			if done {
				return nil
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
