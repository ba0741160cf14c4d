package server

import (
	"sort"
	"sync"
)

// Registry ведет учет живых сессий.
// Нужен debug-ручкам и аккуратному завершению сервера.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
	}
}

// Add регистрирует сессию. Повторный ID перезаписывает старую запись:
// генератор ID криптослучайный, коллизия означает переподключение.
func (r *Registry) Add(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
}

// Remove снимает сессию с учета.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Get возвращает сессию по ID.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Len возвращает количество активных сессий.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Summaries собирает сводки всех сессий, отсортированные по ID.
func (r *Registry) Summaries() []Summary {
	r.mu.RLock()
	list := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		list = append(list, s)
	}
	r.mu.RUnlock()

	// Сводки собираются вне блокировки реестра: Summarize берет мьютекс сессии
	out := make([]Summary, 0, len(list))
	for _, s := range list {
		out = append(out, s.Summarize())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
