package lease

import (
	"context"
	"sync"
	"time"
)

// LocalLease only excludes holders inside this process. The ttl is ignored.
type LocalLease struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewLocalLease() *LocalLease {
	return &LocalLease{held: make(map[string]struct{})}
}

func (l *LocalLease) Acquire(_ context.Context, key string, _ time.Duration) (func(context.Context), bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.held[key]; ok {
		return nil, false, nil
	}
	l.held[key] = struct{}{}

	var once sync.Once
	release := func(context.Context) {
		once.Do(func() {
			l.mu.Lock()
			delete(l.held, key)
			l.mu.Unlock()
		})
	}
	return release, true, nil
}
