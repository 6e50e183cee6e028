package ws

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

// exclusiveWriter fails the test when two writes overlap.
type exclusiveWriter struct {
	t       *testing.T
	writing atomic.Bool
	writes  atomic.Int64
}

func (w *exclusiveWriter) WriteJSON(v interface{}) error {
	if !w.writing.CompareAndSwap(false, true) {
		w.t.Errorf("concurrent write")
		return nil
	}
	runtime.Gosched()
	w.writes.Add(1)
	w.writing.Store(false)
	return nil
}

func TestConnSerializesWrites(t *testing.T) {
	w := &exclusiveWriter{t: t}
	conn := NewConn(w)

	state, err := NewMessage(MessageTypeGameState, map[string]string{"toMove": "white"})
	if err != nil {
		t.Fatalf("new message: %v", err)
	}
	hint, err := NewMessage(MessageTypeLegalMoves, LegalMovesResponse{Square: "b1", Destinations: []string{"a3", "c3"}})
	if err != nil {
		t.Fatalf("new message: %v", err)
	}

	const writers, perWriter = 8, 200
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		msg := state
		if i%2 == 0 {
			msg = hint
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				conn.WriteJSON(msg)
			}
		}()
	}
	wg.Wait()

	if got := w.writes.Load(); got != writers*perWriter {
		t.Fatalf("%d writes, want %d", got, writers*perWriter)
	}
}
