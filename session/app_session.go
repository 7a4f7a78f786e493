package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// AdminSession 只存在于进程内存里，重启或登出即失效；没有 TTL
type AdminSession struct {
	ID       string
	IssuedAt time.Time
}

type AdminSessionStore struct {
	mu   sync.RWMutex
	sess map[string]AdminSession
}

func NewAdminSessionStore() *AdminSessionStore {
	return &AdminSessionStore{sess: make(map[string]AdminSession)}
}

func (s *AdminSessionStore) Create() AdminSession {
	as := AdminSession{ID: uuid.NewString(), IssuedAt: time.Now()}
	s.mu.Lock()
	s.sess[as.ID] = as
	s.mu.Unlock()
	return as
}

func (s *AdminSessionStore) Valid(id string) bool {
	if id == "" {
		return false
	}
	s.mu.RLock()
	_, ok := s.sess[id]
	s.mu.RUnlock()
	return ok
}

func (s *AdminSessionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.sess, id)
	s.mu.Unlock()
}
