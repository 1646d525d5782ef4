package lazy

import (
	"fmt"
	"sync"
)

type Loader[T any] interface {
	MustLoad() T
	Load() (T, error)
	IfLoaded(func(T))
}

// loader calls provider until it succeeds once, then caches the value.
type loader[T any] struct {
	provider func() (T, error)

	mu       sync.Mutex
	isLoaded bool
	value    T
}

func New[T any](provider func() (T, error)) Loader[T] {
	return &loader[T]{provider: provider}
}

func (l *loader[T]) MustLoad() T {
	value, err := l.Load()
	if err != nil {
		panic(err)
	}

	return value
}

func (l *loader[T]) Load() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.isLoaded {
		return l.value, nil
	}

	value, err := l.provider()
	if err != nil {
		var blank T
		return blank, fmt.Errorf("load value of %T: %w", blank, err)
	}

	l.isLoaded = true
	l.value = value
	return value, nil
}

func (l *loader[T]) IfLoaded(f func(T)) {
	l.mu.Lock()
	loaded, value := l.isLoaded, l.value
	l.mu.Unlock()

	if loaded {
		f(value)
	}
}
