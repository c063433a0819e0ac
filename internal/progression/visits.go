package progression

import (
	"coder_edu_frontend/internal/model"
	"context"
	"errors"
	"sync"
)

const leaveRetries = 3

// Visits 把 VisitStore 和引擎串起来：恢复 -> 执行动作 -> 保存。
// 同一实例内同一访问的动作串行执行；Leave 不排队，它取消进行中的动作并抢先写入新 epoch，
// 旧动作随后保存时因版本不符被丢弃
type Visits struct {
	store VisitStore

	mu      sync.Mutex
	locks   map[VisitKey]*visitLock
	running map[VisitKey]*runningAction
}

type runningAction struct {
	cancel context.CancelFunc
	left   bool
}

type visitLock struct {
	mu   sync.Mutex
	refs int
}

func NewVisits(store VisitStore) *Visits {
	return &Visits{
		store:   store,
		locks:   make(map[VisitKey]*visitLock),
		running: make(map[VisitKey]*runningAction),
	}
}

func (v *Visits) lock(key VisitKey) func() {
	v.mu.Lock()
	l, ok := v.locks[key]
	if !ok {
		l = &visitLock{}
		v.locks[key] = l
	}
	l.refs++
	v.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		v.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(v.locks, key)
		}
		v.mu.Unlock()
	}
}

func (v *Visits) track(key VisitKey, cancel context.CancelFunc) (*runningAction, func()) {
	r := &runningAction{cancel: cancel}
	v.mu.Lock()
	v.running[key] = r
	v.mu.Unlock()
	return r, func() {
		v.mu.Lock()
		if v.running[key] == r {
			delete(v.running, key)
		}
		v.mu.Unlock()
		cancel()
	}
}

func (v *Visits) abandoned(r *runningAction) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return r.left
}

func (v *Visits) restore(ctx context.Context, key VisitKey) (*Snapshot, error) {
	snap, err := v.store.Get(ctx, key)
	if errors.Is(err, ErrVisitNotFound) {
		return &Snapshot{ModuleID: key.ModuleID, State: StateLoading}, nil
	}
	return snap, err
}

// Run 执行一个动作并保存结果，动作本身的错误和视图一起返回。
// 新访问或离开后再进入时先 Load。保存时发现访问已被替换则返回 ErrStaleVisit
func (v *Visits) Run(ctx context.Context, key VisitKey, backend Backend, viewer *model.User, action func(context.Context, *Engine) error) (View, error) {
	unlock := v.lock(key)
	defer unlock()

	ctx, cancel := context.WithCancel(ctx)
	running, untrack := v.track(key, cancel)
	defer untrack()

	snap, err := v.restore(ctx, key)
	if err != nil {
		return View{}, err
	}
	revision := snap.Revision

	e := RestoreEngine(backend, snap, viewer)
	var actionErr error
	if snap.NeedsLoad() {
		actionErr = e.Load(ctx)
	}
	if actionErr == nil && action != nil {
		actionErr = action(ctx, e)
	}
	if errors.Is(actionErr, ErrStaleVisit) || v.abandoned(running) {
		return View{}, ErrStaleVisit
	}

	next := e.Snapshot()
	next.Revision = revision
	// 取消后仍要保存，用独立的 context
	if err := v.store.Save(context.WithoutCancel(ctx), key, next); err != nil {
		return View{}, err
	}
	return e.View(), actionErr
}

// Leave 结束访问：取消进行中的动作，写入 epoch+1 的空快照
func (v *Visits) Leave(ctx context.Context, key VisitKey) error {
	v.mu.Lock()
	if r, ok := v.running[key]; ok {
		r.left = true
		r.cancel()
	}
	v.mu.Unlock()

	for i := 0; i < leaveRetries; i++ {
		snap, err := v.store.Get(ctx, key)
		if errors.Is(err, ErrVisitNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		e := RestoreEngine(nil, snap, nil)
		e.Leave()
		next := e.Snapshot()
		next.Revision = snap.Revision
		err = v.store.Save(ctx, key, next)
		if !errors.Is(err, ErrStaleVisit) {
			return err
		}
	}
	return ErrStaleVisit
}
