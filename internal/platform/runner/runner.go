package runner

import (
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/courtside/internal/platform/logging"
)

// Runner executes fire-and-forget work such as Data Access Port calls.
type Runner interface {
	Go(task func()) error
}

// Pool runs tasks on a bounded ants goroutine pool.
type Pool struct {
	pool   *ants.Pool
	logger *logging.Logger
	wg     sync.WaitGroup
}

func NewPool(size int, logger *logging.Logger) (*Pool, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if size <= 0 {
		size = 64
	}

	p := &Pool{logger: logger}
	pool, err := ants.NewPool(size, ants.WithPanicHandler(func(rec any) {
		p.logger.Error("runner task panicked", "panic", fmt.Sprint(rec))
	}))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	p.pool = pool
	return p, nil
}

func (p *Pool) Go(task func()) error {
	p.wg.Add(1)
	if err := p.pool.Submit(func() {
		defer p.wg.Done()
		task()
	}); err != nil {
		p.wg.Done()
		return fmt.Errorf("submit task to worker pool: %w", err)
	}
	return nil
}

// Wait blocks until every submitted task has finished.
func (p *Pool) Wait() {
	p.wg.Wait()
}

func (p *Pool) Release() {
	p.wg.Wait()
	p.pool.Release()
}

// Inline runs tasks on the caller goroutine. Tests use it to make async flows deterministic.
type Inline struct{}

func (Inline) Go(task func()) error {
	task()
	return nil
}
