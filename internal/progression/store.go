package progression

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var ErrVisitNotFound = errors.New("module visit not found")

// VisitKey 访客 + 模块唯一确定一次访问
type VisitKey struct {
	Visitor  string
	ModuleID uint
}

func (k VisitKey) String() string {
	return fmt.Sprintf("visit:%s:%d", k.Visitor, k.ModuleID)
}

// VisitStore 保存访问快照。Save 只有在 snap.Revision 与已存版本一致时才成功，
// 否则返回 ErrStaleVisit，成功后 snap.Revision 自增。
// 已过期或不存在的访问不算冲突：Leave 只写新快照不删除，缺失只可能是过期
type VisitStore interface {
	Get(ctx context.Context, key VisitKey) (*Snapshot, error)
	Save(ctx context.Context, key VisitKey, snap *Snapshot) error
	Delete(ctx context.Context, key VisitKey) error
}

type memoryEntry struct {
	snap    Snapshot
	expires time.Time
}

type MemoryVisitStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[VisitKey]memoryEntry
	now     func() time.Time
}

func NewMemoryVisitStore(ttl time.Duration) *MemoryVisitStore {
	return &MemoryVisitStore{
		ttl:     ttl,
		entries: make(map[VisitKey]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryVisitStore) lookup(key VisitKey) (memoryEntry, bool) {
	e, ok := s.entries[key]
	if ok && s.ttl > 0 && s.now().After(e.expires) {
		delete(s.entries, key)
		return memoryEntry{}, false
	}
	return e, ok
}

func (s *MemoryVisitStore) Get(ctx context.Context, key VisitKey) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.lookup(key)
	if !ok {
		return nil, ErrVisitNotFound
	}
	snap := e.snap
	return &snap, nil
}

func (s *MemoryVisitStore) Save(ctx context.Context, key VisitKey, snap *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.lookup(key); ok && e.snap.Revision != snap.Revision {
		return ErrStaleVisit
	}
	snap.Revision++
	s.entries[key] = memoryEntry{snap: *snap, expires: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryVisitStore) Delete(ctx context.Context, key VisitKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// Sweep 清理过期访问
func (s *MemoryVisitStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for k := range s.entries {
		if _, ok := s.lookup(k); !ok {
			n++
		}
	}
	return n
}
