package console

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/klwxsrx/simctl/internal/session/app/service"
)

var entryPoints = map[string]string{
	service.LoginPath: "simctl login",
}

// Navigator tells the user where to go next, a terminal has nothing to redirect.
type Navigator struct {
	mu  sync.Mutex
	out io.Writer
}

func NewNavigator(out io.Writer) *Navigator {
	return &Navigator{out: out}
}

func (n *Navigator) Redirect(_ context.Context, path string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	command, ok := entryPoints[path]
	if !ok {
		_, _ = fmt.Fprintf(n.out, "Continue at %s\n", path)
		return
	}

	_, _ = fmt.Fprintf(n.out, "Please log in first: %s\n", command)
}
