package progression

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryVisitStore_CompareAndSet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryVisitStore(time.Hour)
	key := VisitKey{Visitor: "v1", ModuleID: 1}

	_, err := s.Get(ctx, key)
	assert.ErrorIs(t, err, ErrVisitNotFound)

	first := &Snapshot{ModuleID: 1, State: StateContentReady}
	require.NoError(t, s.Save(ctx, key, first))
	assert.Equal(t, int64(1), first.Revision)

	stale := &Snapshot{ModuleID: 1, State: StateQuizInProgress}
	assert.ErrorIs(t, s.Save(ctx, key, stale), ErrStaleVisit)

	got, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, StateContentReady, got.State)

	got.State = StateQuizInProgress
	require.NoError(t, s.Save(ctx, key, got))
	assert.Equal(t, int64(2), got.Revision)

	require.NoError(t, s.Delete(ctx, key))
	_, err = s.Get(ctx, key)
	assert.ErrorIs(t, err, ErrVisitNotFound)
}

func TestMemoryVisitStore_Expiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryVisitStore(time.Minute)
	now := time.Now()
	s.now = func() time.Time { return now }

	key := VisitKey{Visitor: "v1", ModuleID: 1}
	require.NoError(t, s.Save(ctx, key, &Snapshot{ModuleID: 1}))
	require.NoError(t, s.Save(ctx, VisitKey{Visitor: "v2", ModuleID: 1}, &Snapshot{ModuleID: 1}))

	now = now.Add(2 * time.Minute)
	_, err := s.Get(ctx, key)
	assert.ErrorIs(t, err, ErrVisitNotFound)
	assert.Equal(t, 1, s.Sweep())

	// 过期后按新访问处理
	require.NoError(t, s.Save(ctx, key, &Snapshot{ModuleID: 1}))
}

func TestMemoryVisitStore_SaveAfterExpiryKeepsResult(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryVisitStore(time.Minute)
	now := time.Now()
	s.now = func() time.Time { return now }
	key := VisitKey{Visitor: "v1", ModuleID: 1}

	require.NoError(t, s.Save(ctx, key, &Snapshot{ModuleID: 1, State: StateContentReady}))
	snap, err := s.Get(ctx, key)
	require.NoError(t, err)

	// 动作执行期间访问过期
	now = now.Add(2 * time.Minute)
	snap.State = StateQuizInProgress
	require.NoError(t, s.Save(ctx, key, snap))
	assert.Equal(t, int64(2), snap.Revision)

	got, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, StateQuizInProgress, got.State)
}

func TestVisitKey_String(t *testing.T) {
	assert.Equal(t, "visit:abc:7", VisitKey{Visitor: "abc", ModuleID: 7}.String())
}

func TestVisits_RunPersistsAcrossRequests(t *testing.T) {
	ctx := context.Background()
	b := newFakeBackend()
	visits := NewVisits(NewMemoryVisitStore(time.Hour))
	key := VisitKey{Visitor: "v1", ModuleID: 1}

	v, err := visits.Run(ctx, key, b, student, nil)
	require.NoError(t, err)
	assert.Equal(t, StateContentReady, v.State)
	assert.Equal(t, 1, b.moduleCalls)

	v, err = visits.Run(ctx, key, b, student, func(ctx context.Context, e *Engine) error {
		return e.StartQuiz(ctx)
	})
	require.NoError(t, err)
	assert.Equal(t, StateQuizInProgress, v.State)
	assert.Equal(t, 1, b.moduleCalls, "restored visit must not reload")

	v, err = visits.Run(ctx, key, b, student, func(ctx context.Context, e *Engine) error {
		return e.Select(102)
	})
	require.NoError(t, err)
	require.NotNil(t, v.Quiz.Selection)
	assert.Equal(t, uint(102), *v.Quiz.Selection)

	v, err = visits.Run(ctx, key, b, student, func(ctx context.Context, e *Engine) error {
		_, err := e.Advance(ctx)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, v.Quiz.Index)
	assert.Equal(t, 1, v.Quiz.Answered)
}

func TestVisits_ActionErrorStillSaved(t *testing.T) {
	ctx := context.Background()
	b := newFakeBackend()
	visits := NewVisits(NewMemoryVisitStore(time.Hour))
	key := VisitKey{Visitor: "v1", ModuleID: 1}

	_, err := visits.Run(ctx, key, b, student, func(ctx context.Context, e *Engine) error {
		return e.Select(101)
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	v, err := visits.Run(ctx, key, b, student, nil)
	require.NoError(t, err)
	assert.Equal(t, StateContentReady, v.State)
}

func TestVisits_LeaveResetsVisit(t *testing.T) {
	ctx := context.Background()
	b := newFakeBackend()
	store := NewMemoryVisitStore(time.Hour)
	visits := NewVisits(store)
	key := VisitKey{Visitor: "v1", ModuleID: 1}

	_, err := visits.Run(ctx, key, b, student, func(ctx context.Context, e *Engine) error {
		return e.StartQuiz(ctx)
	})
	require.NoError(t, err)

	require.NoError(t, visits.Leave(ctx, key))
	snap, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, StateLoading, snap.State)
	assert.Equal(t, uint64(1), snap.Epoch)
	assert.Nil(t, snap.Quiz)

	// 重新进入时从头加载
	v, err := visits.Run(ctx, key, b, student, nil)
	require.NoError(t, err)
	assert.Equal(t, StateContentReady, v.State)
	assert.Nil(t, v.Quiz)
	assert.Equal(t, 2, b.moduleCalls)

	assert.NoError(t, visits.Leave(ctx, VisitKey{Visitor: "unknown", ModuleID: 1}))
}

func TestVisits_LeaveDiscardsInFlightAction(t *testing.T) {
	ctx := context.Background()
	b := newFakeBackend()
	store := NewMemoryVisitStore(time.Hour)
	visits := NewVisits(store)
	key := VisitKey{Visitor: "v1", ModuleID: 1}

	_, err := visits.Run(ctx, key, b, student, nil)
	require.NoError(t, err)

	b.mu.Lock()
	b.block = make(chan struct{})
	b.mu.Unlock()

	done := make(chan error, 1)
	go func() {
		_, err := visits.Run(ctx, key, b, student, func(ctx context.Context, e *Engine) error {
			return e.refresh(ctx)
		})
		done <- err
	}()
	require.Eventually(t, func() bool {
		b.mu.Lock()
		defer b.mu.Unlock()
		return b.moduleCalls >= 2
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, visits.Leave(ctx, key))
	assert.ErrorIs(t, <-done, ErrStaleVisit)

	snap, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, StateLoading, snap.State)
	assert.Nil(t, snap.Module)
}
