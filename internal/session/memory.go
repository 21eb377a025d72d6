package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"agent-discovery/internal/model"
	"agent-discovery/pkg/log"
	"agent-discovery/pkg/metrics"
)

// entry guards one session. Lock order is entry before registry.
type entry struct {
	mu      sync.Mutex
	s       model.Session
	evicted bool
}

// MemoryStore keeps sessions in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*entry

	l   log.Logger
	m   *metrics.Metrics
	now func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store. m may be nil.
func NewMemoryStore(l log.Logger, m *metrics.Metrics) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*entry),
		l:       l,
		m:       m,
		now:     time.Now,
	}
}

func (st *MemoryStore) lookup(id string) *entry {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.entries[id]
}

// GetOrCreate implements Store
func (st *MemoryStore) GetOrCreate(ctx context.Context, sessionID, ownerID string) (model.Session, bool, error) {
	if sessionID == "" {
		if ownerID == "" {
			return model.Session{}, false, ErrOwnerRequired
		}
		sessionID = uuid.NewString()
	}

	// An entry evicted between lookup and lock is replaced on the next pass.
	for attempt := 0; attempt < 2; attempt++ {
		if e := st.lookup(sessionID); e != nil {
			e.mu.Lock()
			if !e.evicted {
				s := e.s
				e.mu.Unlock()
				if ownerID != "" && s.OwnerID != ownerID {
					return model.Session{}, false, ErrOwnerMismatch
				}
				return s.Clone(), false, nil
			}
			e.mu.Unlock()
		}

		if ownerID == "" {
			return model.Session{}, false, ErrSessionNotFound
		}

		st.mu.Lock()
		if cur, ok := st.entries[sessionID]; ok && cur != nil {
			st.mu.Unlock()
			continue
		}
		s := model.NewSession(sessionID, ownerID, st.now())
		st.entries[sessionID] = &entry{s: s}
		st.mu.Unlock()

		st.m.SessionEvent(metrics.EventCreated)
		st.l.Debug(ctx, LogMsgSessionCreated, "session_id", sessionID, "owner_id", ownerID)
		return s.Clone(), true, nil
	}

	return model.Session{}, false, ErrSessionNotFound
}

// Get implements Store
func (st *MemoryStore) Get(ctx context.Context, sessionID string) (model.Session, error) {
	e := st.lookup(sessionID)
	if e == nil {
		return model.Session{}, ErrSessionNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.evicted {
		return model.Session{}, ErrSessionNotFound
	}
	return e.s.Clone(), nil
}

// Update implements Store
func (st *MemoryStore) Update(ctx context.Context, sessionID string, fn func(s *model.Session) error) (model.Session, error) {
	e := st.lookup(sessionID)
	if e == nil {
		return model.Session{}, ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.evicted {
		return model.Session{}, ErrSessionNotFound
	}

	next := e.s.Clone()
	if err := fn(&next); err != nil {
		return model.Session{}, err
	}
	if err := ctx.Err(); err != nil {
		return model.Session{}, err
	}

	next.ID = e.s.ID
	next.OwnerID = e.s.OwnerID
	next.CreatedAt = e.s.CreatedAt
	next.Version = e.s.Version + 1
	next.LastActivity = st.now()
	if n := len(next.Turns); n > MaxTurns {
		next.Turns = append([]model.Turn(nil), next.Turns[n-MaxTurns:]...)
	}

	e.s = next
	return next.Clone(), nil
}

// AppendTurn implements Store
func (st *MemoryStore) AppendTurn(ctx context.Context, sessionID string, role model.Role, text string) error {
	_, err := st.Update(ctx, sessionID, func(s *model.Session) error {
		s.AppendTurn(role, text, st.now())
		return nil
	})
	return err
}

// MergeRequirements implements Store
func (st *MemoryStore) MergeRequirements(ctx context.Context, sessionID string, partial model.Requirements, isCorrection bool) (model.Requirements, error) {
	s, err := st.Update(ctx, sessionID, func(s *model.Session) error {
		s.Requirements = model.Merge(s.Requirements, partial, isCorrection)
		return nil
	})
	if err != nil {
		return model.Requirements{}, err
	}
	return s.Requirements, nil
}

// BindAgent implements Store
func (st *MemoryStore) BindAgent(ctx context.Context, sessionID, agentID string) (string, error) {
	s, err := st.Update(ctx, sessionID, func(s *model.Session) error {
		if s.AgentID == "" {
			s.AgentID = agentID
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return s.AgentID, nil
}

// Reset implements Store. Identity and owner survive; everything else is
// cleared and the session returns to the discovery phase.
func (st *MemoryStore) Reset(ctx context.Context, sessionID string, fn func(s *model.Session)) (model.Session, error) {
	s, err := st.Update(ctx, sessionID, func(s *model.Session) error {
		fresh := model.NewSession(s.ID, s.OwnerID, s.CreatedAt)
		fresh.Version = s.Version
		*s = fresh
		if fn != nil {
			fn(s)
		}
		return nil
	})
	if err != nil {
		return model.Session{}, err
	}
	st.m.SessionEvent(metrics.EventReset)
	return s, nil
}

// EvictInactive removes sessions idle for longer than maxAge and returns how
// many were removed.
func (st *MemoryStore) EvictInactive(ctx context.Context, maxAge time.Duration) int {
	st.mu.RLock()
	candidates := make([]*entry, 0, len(st.entries))
	for _, e := range st.entries {
		candidates = append(candidates, e)
	}
	st.mu.RUnlock()

	cutoff := st.now().Add(-maxAge)
	evicted := 0
	for _, e := range candidates {
		e.mu.Lock()
		if !e.evicted && e.s.LastActivity.Before(cutoff) {
			e.evicted = true
			st.mu.Lock()
			if st.entries[e.s.ID] == e {
				delete(st.entries, e.s.ID)
			}
			st.mu.Unlock()
			evicted++
		}
		e.mu.Unlock()
	}

	if evicted > 0 {
		st.m.SessionsEvicted(evicted)
		st.l.Infof(ctx, "%s: "+LogMsgSessionsEvicted, LogPrefixEvictInactive, evicted)
	}
	return evicted
}

// Len returns the number of live sessions.
func (st *MemoryStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.entries)
}
