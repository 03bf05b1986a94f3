package services

import (
	"context"
	"sync"
)

// userLocks serialises work per user. Entries are dropped once nobody holds or waits on them.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*userLock
}

type userLock struct {
	sem  chan struct{}
	refs int
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[string]*userLock)}
}

// lock blocks until userID's lock is held or ctx is done. The returned func releases it.
func (l *userLocks) lock(ctx context.Context, userID string) (func(), error) {
	l.mu.Lock()
	ul, ok := l.locks[userID]
	if !ok {
		ul = &userLock{sem: make(chan struct{}, 1)}
		l.locks[userID] = ul
	}
	ul.refs++
	l.mu.Unlock()

	select {
	case ul.sem <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() {
				<-ul.sem
				l.release(userID, ul)
			})
		}, nil
	case <-ctx.Done():
		l.release(userID, ul)
		return nil, ctx.Err()
	}
}

func (l *userLocks) release(userID string, ul *userLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	ul.refs--
	if ul.refs == 0 {
		delete(l.locks, userID)
	}
}
