package worker

import (
	"context"
	"sync"
)

type ErrorJob func(context.Context) error

type Group interface {
	Do(ErrorJob)
	Wait() error
}

// group cancels its context after the first job error, Wait returns that error.
type group struct {
	ctx       context.Context
	ctxCancel context.CancelFunc
	wg        sync.WaitGroup

	errOnce sync.Once
	err     error
}

func NewFailFastGroup(ctx context.Context) (context.Context, Group) {
	ctx, cancel := context.WithCancel(ctx)
	g := &group{
		ctx:       ctx,
		ctxCancel: cancel,
	}

	return ctx, g
}

func (g *group) Do(job ErrorJob) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()

		if err := job(g.ctx); err != nil {
			g.errOnce.Do(func() {
				g.err = err
				g.ctxCancel()
			})
		}
	}()
}

func (g *group) Wait() error {
	g.wg.Wait()
	g.ctxCancel()

	return g.err
}
