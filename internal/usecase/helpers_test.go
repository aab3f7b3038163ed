package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/riskibarqy/courtside/internal/platform/logging"
	"github.com/riskibarqy/courtside/internal/platform/runner"
)

var testNow = time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)

func testDeps(port DataPort) PageDeps {
	return PageDeps{
		Port:   port,
		Runner: runner.Inline{},
		Logger: logging.NewNop(),
		Now:    func() time.Time { return testNow },
	}
}

// queueRunner holds tasks until the test releases them, in any order.
type queueRunner struct {
	mu    sync.Mutex
	tasks []func()
}

func (q *queueRunner) Go(task func()) error {
	q.mu.Lock()
	q.tasks = append(q.tasks, task)
	q.mu.Unlock()
	return nil
}

func (q *queueRunner) run(i int) {
	q.mu.Lock()
	task := q.tasks[i]
	q.mu.Unlock()
	task()
}

func (q *queueRunner) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

type busyRunner struct{}

func (busyRunner) Go(func()) error { return errPoolOverloaded }

var errPoolOverloaded = errors.New("pool overloaded")

// memoryRecentStore is a recent.Store kept in a map.
type memoryRecentStore struct {
	mu    sync.Mutex
	lists map[string][]string
	saves int
}

func newMemoryRecentStore() *memoryRecentStore {
	return &memoryRecentStore{lists: make(map[string][]string)}
}

func (m *memoryRecentStore) Load(_ context.Context, owner string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.lists[owner]...), nil
}

func (m *memoryRecentStore) Save(_ context.Context, owner string, list []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists[owner] = append([]string(nil), list...)
	m.saves++
	return nil
}
