package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type writeOp struct {
	store   RepositoryI
	key     string
	payload []byte
	del     bool
}

// writer applies persistence operations in order on its own goroutine.
// Callers never wait for a write; a full queue drops the write.
type writer struct {
	mu      sync.Mutex
	closed  bool
	ops     chan writeOp
	done    chan struct{}
	timeout time.Duration
	log     *zap.Logger
}

func newWriter(buffer int, timeout time.Duration, log *zap.Logger) *writer {
	if buffer < 1 {
		buffer = 1
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	w := &writer{
		ops:     make(chan writeOp, buffer),
		done:    make(chan struct{}),
		timeout: timeout,
		log:     log,
	}
	go w.run()
	return w
}

func (w *writer) run() {
	defer close(w.done)
	for op := range w.ops {
		w.apply(op)
	}
}

func (w *writer) apply(op writeOp) {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	var err error
	if op.del {
		err = op.store.Delete(ctx, op.key)
	} else {
		err = op.store.Save(ctx, op.key, op.payload)
	}
	if err != nil {
		w.log.Error("failed to persist state", zap.String("key", op.key), zap.Bool("delete", op.del), zap.Error(err))
	}
}

// enqueue reports whether op was queued.
func (w *writer) enqueue(op writeOp) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		w.log.Warn("write after close dropped", zap.String("key", op.key), zap.Bool("delete", op.del))
		return false
	}

	select {
	case w.ops <- op:
		return true
	default:
		w.log.Warn("write queue full, dropping write", zap.String("key", op.key), zap.Bool("delete", op.del))
		return false
	}
}

// close stops accepting writes and waits for queued ones until ctx ends.
func (w *writer) close(ctx context.Context) error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.ops)
	}
	w.mu.Unlock()

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
