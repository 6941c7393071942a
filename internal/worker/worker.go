package worker

import (
	"context"
	"errors"
	"sync"
)

// ErrStopped 表示 pool 已停止，不再接受工作
var ErrStopped = errors.New("worker pool stopped")

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a simple worker pool.
type Pool interface {
	Submit(Task)
	TrySubmit(ctx context.Context, t Task) error
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
// Submit blocks until a worker picks the task up.
func NewPool(n int) Pool {
	return NewQueuedPool(n, 0)
}

// NewQueuedPool creates a pool with n workers and room for queue pending
// tasks, so Submit only blocks once the queue is full.
func NewQueuedPool(n, queue int) Pool {
	if n <= 0 {
		n = 1
	}
	if queue < 0 {
		queue = 0
	}
	p := &pool{jobs: make(chan Task, queue)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup

	// mu 保護 stopped，並避免 Stop 關閉 jobs 時仍有送出中的工作
	mu      sync.RWMutex
	stopped bool
}

// Submit 等到工作進入佇列為止，pool 停止後的工作直接丟棄
func (p *pool) Submit(t Task) {
	_ = p.TrySubmit(context.Background(), t)
}

// TrySubmit 在 ctx 結束前把工作放進佇列，
// 逾時回傳 ctx.Err()，pool 已停止時回傳 ErrStopped。
func (p *pool) TrySubmit(ctx context.Context, t Task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrStopped
	}
	// 佇列有空位時即使 ctx 已結束也照樣收下
	select {
	case p.jobs <- t:
		return nil
	default:
	}
	select {
	case p.jobs <- t:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop drains queued tasks and waits for the workers to exit. It is safe to
// call more than once.
func (p *pool) Stop() {
	p.mu.Lock()
	if !p.stopped {
		p.stopped = true
		close(p.jobs)
	}
	p.mu.Unlock()
	p.wg.Wait()
}
