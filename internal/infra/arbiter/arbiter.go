package arbiter

import (
	"log/slog"
	"sync"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/usecase/commands"
)

// Arbiter tracks in-flight admissions by exact key. Acquire never waits: a key
// that is already held fails immediately with a busy error.
type Arbiter struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
	logger   *slog.Logger
}

func NewArbiter(logger *slog.Logger) *Arbiter {
	return &Arbiter{
		inFlight: make(map[string]struct{}),
		logger:   logger,
	}
}

func (a *Arbiter) Acquire(key string) (commands.Releaser, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, held := a.inFlight[key]; held {
		return nil, infra.WrapRepoErr(a.logger, infra.KindBusy, "admission already in flight for "+key, nil)
	}
	a.inFlight[key] = struct{}{}
	return &Guard{arbiter: a, key: key}, nil
}

// InFlight reports whether key is currently held.
func (a *Arbiter) InFlight(key string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, held := a.inFlight[key]
	return held
}

func (a *Arbiter) release(key string) {
	a.mu.Lock()
	delete(a.inFlight, key)
	a.mu.Unlock()
}

type Guard struct {
	arbiter *Arbiter
	key     string
	once    sync.Once
}

// Release frees the key. Calls after the first are no-ops.
func (g *Guard) Release() {
	g.once.Do(func() {
		g.arbiter.release(g.key)
	})
}
