package service

import (
	"sync"

	"github.com/google/uuid"
)

// userLocks serializes profile and session mutations per user. The stores
// assume a single writer per user; the HTTP layer does not guarantee that,
// so the services take the user's lock around read-modify-write cycles.
type userLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[uuid.UUID]*sync.Mutex)}
}

func (l *userLocks) get(userID uuid.UUID) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	return m
}

func (l *userLocks) Lock(userID uuid.UUID) func() {
	m := l.get(userID)
	m.Lock()
	return m.Unlock
}
