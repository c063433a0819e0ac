package progression

import "coder_edu_frontend/internal/model"

// Snapshot 引擎在两次 HTTP 请求之间的持久化形态。
// Revision 由 VisitStore 维护，用于乐观并发控制
type Snapshot struct {
	ModuleID uint              `json:"module_id"`
	Epoch    uint64            `json:"epoch"`
	Revision int64             `json:"revision"`
	State    State             `json:"state"`
	Module   *model.Module     `json:"module,omitempty"`
	Course   *model.Course     `json:"course,omitempty"`
	Quiz     *QuizSession      `json:"quiz,omitempty"`
	Access   *model.QuizAccess `json:"access,omitempty"`
	Result   *model.QuizResult `json:"result,omitempty"`
	LastErr  string            `json:"last_error,omitempty"`
}

func (e *Engine) Snapshot() *Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := &Snapshot{
		ModuleID: e.moduleID,
		Epoch:    e.epoch,
		State:    e.state,
		Module:   e.module,
		Course:   e.course,
		Access:   e.access,
		Result:   e.result,
		LastErr:  e.lastErr,
	}
	if e.quiz != nil {
		s.Quiz = e.quiz.Clone()
	}
	return s
}

// RestoreEngine 从快照恢复；viewer 每次请求重新提供，不进快照
func RestoreEngine(backend Backend, snap *Snapshot, viewer *model.User) *Engine {
	e := NewEngine(backend, snap.ModuleID, viewer)
	e.epoch = snap.Epoch
	e.state = snap.State
	e.module = snap.Module
	e.course = snap.Course
	e.access = snap.Access
	e.result = snap.Result
	e.lastErr = snap.LastErr
	if snap.Quiz != nil {
		e.quiz = snap.Quiz.Clone()
	}
	if e.state == "" {
		e.state = StateLoading
	}
	return e
}

// NeedsLoad 新访问或离开后重新进入时需要先 Load
func (s *Snapshot) NeedsLoad() bool {
	return s.State == StateLoading || s.State == StateLoadFailed || s.Module == nil
}
