//go:build unit

package arbiter

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRoomGate(t *testing.T) {
	t.Run("serializes holders of the same room", func(t *testing.T) {
		g := NewRoomGate()
		room := uuid.New()

		unlock := g.Lock(room)

		acquired := make(chan struct{})
		go func() {
			u := g.Lock(room)
			close(acquired)
			u()
		}()

		select {
		case <-acquired:
			t.Fatal("second holder entered while the room was locked")
		case <-time.After(50 * time.Millisecond):
		}

		unlock()
		select {
		case <-acquired:
		case <-time.After(time.Second):
			t.Fatal("second holder never entered")
		}
	})

	t.Run("rooms are independent", func(t *testing.T) {
		g := NewRoomGate()
		u1 := g.Lock(uuid.New())
		done := make(chan struct{})
		go func() {
			g.Lock(uuid.New())()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("unrelated room blocked")
		}
		u1()
	})

	t.Run("entries are dropped after the last unlock", func(t *testing.T) {
		g := NewRoomGate()
		room := uuid.New()

		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock := g.Lock(room)
				unlock()
				unlock()
			}()
		}
		wg.Wait()
		assert.Equal(t, 0, g.size())
	})
}
