package session

import (
	"sync"
	"time"
)

// Manager раздаёт сессии по ключу клиента (cookie, выданная транспортом).
// Сессии живут в памяти процесса; просроченные вычищаются лениво при обращении.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*entry
	opts     Options
	ttl      time.Duration
	now      func() time.Time
}

type entry struct {
	session  *Session
	lastSeen time.Time
}

// NewManager создаёт менеджер сессий с общими для всех сессий зависимостями.
// ttl ограничивает время жизни бездействующей сессии.
func NewManager(opts Options, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Manager{
		sessions: make(map[string]*entry),
		opts:     opts,
		ttl:      ttl,
		now:      now,
	}
}

// Session возвращает сессию по ключу, создавая её при первом обращении.
func (m *Manager) Session(key string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.evictLocked(now)

	e, ok := m.sessions[key]
	if !ok {
		e = &entry{session: New(m.opts)}
		m.sessions[key] = e
	}
	e.lastSeen = now

	return e.session
}

// evictLocked удаляет сессии, к которым не обращались дольше ttl.
func (m *Manager) evictLocked(now time.Time) {
	for key, e := range m.sessions {
		if now.Sub(e.lastSeen) > m.ttl {
			delete(m.sessions, key)
		}
	}
}
