package arbiter

import (
	"sync"

	"github.com/google/uuid"
)

type roomLock struct {
	mu   sync.Mutex
	refs int
}

// RoomGate is a keyed mutex over room ids. Entries are dropped once no caller
// holds or waits on them.
type RoomGate struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*roomLock
}

func NewRoomGate() *RoomGate {
	return &RoomGate{locks: make(map[uuid.UUID]*roomLock)}
}

func (g *RoomGate) Lock(roomID uuid.UUID) func() {
	g.mu.Lock()
	l, ok := g.locks[roomID]
	if !ok {
		l = &roomLock{}
		g.locks[roomID] = l
	}
	l.refs++
	g.mu.Unlock()

	l.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Unlock()

			g.mu.Lock()
			l.refs--
			if l.refs == 0 {
				delete(g.locks, roomID)
			}
			g.mu.Unlock()
		})
	}
}

func (g *RoomGate) size() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.locks)
}
