package cmd

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/klwxsrx/simctl/pkg/log"
)

// HandleAppPanic must be deferred directly, recover has no effect otherwise.
func HandleAppPanic(ctx context.Context, logger log.Logger) (panicCaught bool) {
	msg := recover()
	if msg == nil {
		return false
	}

	logger.WithField("panic", log.Fields{
		"message": fmt.Sprintf("%v", msg),
		"stack":   string(debug.Stack()),
	}).Error(ctx, "app failed with panic")
	return true
}
