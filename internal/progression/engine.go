package progression

import (
	"coder_edu_frontend/internal/model"
	"coder_edu_frontend/pkg/logger"
	"coder_edu_frontend/pkg/monitoring"
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type State string

const (
	StateLoading        State = "loading_module"
	StateLoadFailed     State = "load_failed"
	StateContentMissing State = "content_missing"
	StateContentReady   State = "content_ready"
	StateQuizInProgress State = "quiz_in_progress"
	StateQuizGraded     State = "quiz_graded"
)

var (
	ErrStaleVisit           = errors.New("module visit is no longer active")
	ErrBusy                 = errors.New("another action is still in progress")
	ErrInvalidTransition    = errors.New("action not available in the current state")
	ErrGenerationNotAllowed = errors.New("content generation is not available for this module")
	ErrNotStudent           = errors.New("only students can take quizzes")
)

// AttemptsExhaustedError 服务端报告不可再答题
type AttemptsExhaustedError struct {
	MaxAttempts int
}

func (e *AttemptsExhaustedError) Error() string {
	return fmt.Sprintf("You have used all %d attempts allowed for this quiz.", e.MaxAttempts)
}

// Backend 引擎需要的服务端能力，服务端是内容和解锁状态的唯一权威
type Backend interface {
	Module(ctx context.Context, id uint) (*model.Module, error)
	Course(ctx context.Context, id uint) (*model.Course, error)
	GenerateContent(ctx context.Context, moduleID uint) error
	Quiz(ctx context.Context, moduleID uint) (*model.Quiz, error)
	QuizAccess(ctx context.Context, moduleID uint) (*model.QuizAccess, error)
	SubmitQuiz(ctx context.Context, moduleID uint, answers model.QuizAttempt) (*model.QuizResult, error)
}

// Engine 单次模块访问的状态机。
// 上游调用期间不持锁：调用前记下 epoch，返回后 epoch 变了（Leave 过）就丢弃结果。
// 调用失败时保持调用前的状态，只记录 LastError，不自动重试
type Engine struct {
	mu       sync.Mutex
	backend  Backend
	viewer   *model.User
	moduleID uint

	epoch    uint64
	inFlight bool
	state    State
	module   *model.Module
	course   *model.Course
	quiz     *QuizSession
	access   *model.QuizAccess
	result   *model.QuizResult
	lastErr  string
}

func NewEngine(backend Backend, moduleID uint, viewer *model.User) *Engine {
	return &Engine{
		backend:  backend,
		viewer:   viewer,
		moduleID: moduleID,
		state:    StateLoading,
	}
}

// begin 检查前置状态并占用引擎，返回本次调用的 epoch
func (e *Engine) begin(allowed ...State) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.inFlight {
		return 0, ErrBusy
	}
	if len(allowed) > 0 && !stateIn(e.state, allowed) {
		return 0, ErrInvalidTransition
	}
	e.inFlight = true
	return e.epoch, nil
}

// finish 在持锁状态下调用 apply；epoch 已变化时丢弃结果
func (e *Engine) finish(epoch uint64, apply func()) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.epoch != epoch {
		return ErrStaleVisit
	}
	e.inFlight = false
	apply()
	return nil
}

func stateIn(s State, set []State) bool {
	for _, x := range set {
		if s == x {
			return true
		}
	}
	return false
}

func (e *Engine) fetch(ctx context.Context) (*model.Module, *model.Course, error) {
	module, err := e.backend.Module(ctx, e.moduleID)
	if err != nil {
		return nil, nil, err
	}
	course, err := e.backend.Course(ctx, module.CourseID)
	if err != nil {
		return nil, nil, err
	}
	return module, course, nil
}

// contentState 按内容是否存在分支
func contentState(m *model.Module) State {
	if m.HasContent() {
		return StateContentReady
	}
	return StateContentMissing
}

// Load LoadingModule -> LoadFailed | ContentMissing | ContentReady
func (e *Engine) Load(ctx context.Context) error {
	epoch, err := e.begin()
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.state = StateLoading
	e.mu.Unlock()

	module, course, err := e.fetch(ctx)
	return e.finish(epoch, func() {
		if err != nil {
			e.state = StateLoadFailed
			e.lastErr = err.Error()
			return
		}
		e.module, e.course = module, course
		e.state = contentState(module)
		e.quiz, e.result, e.access = nil, nil, nil
		e.lastErr = ""
	})
}

// Generate 请求服务端生成内容后重新获取模块，不做乐观更新
func (e *Engine) Generate(ctx context.Context) error {
	epoch, err := e.begin(StateContentMissing)
	if err != nil {
		return err
	}

	e.mu.Lock()
	d := Derive(e.course, e.module, e.viewer)
	e.mu.Unlock()
	if !d.CanGenerate {
		e.release(epoch)
		return ErrGenerationNotAllowed
	}

	var module *model.Module
	var course *model.Course
	err = e.backend.GenerateContent(ctx, e.moduleID)
	if err == nil {
		module, course, err = e.fetch(ctx)
	}

	if ferr := e.finish(epoch, func() {
		if err != nil {
			e.lastErr = err.Error()
			return
		}
		e.module, e.course = module, course
		e.state = contentState(module)
		e.lastErr = ""
	}); ferr != nil {
		return ferr
	}
	if err != nil {
		logger.Log.Warn("Module generation failed", zap.Uint("module_id", e.moduleID), zap.Error(err))
	}
	return err
}

func (e *Engine) release(epoch uint64) {
	e.mu.Lock()
	if e.epoch == epoch {
		e.inFlight = false
	}
	e.mu.Unlock()
}

// StartQuiz 每次进入（包括重试）都重新向服务端确认可答题次数
func (e *Engine) StartQuiz(ctx context.Context) error {
	epoch, err := e.begin(StateContentReady, StateQuizGraded)
	if err != nil {
		return err
	}

	e.mu.Lock()
	isStudent := e.viewer != nil && e.viewer.Role == model.Student
	retryBlocked := e.state == StateQuizGraded && e.result != nil && e.result.Passed
	e.mu.Unlock()
	if !isStudent {
		e.release(epoch)
		return ErrNotStudent
	}
	if retryBlocked {
		e.release(epoch)
		return ErrInvalidTransition
	}

	var quiz *model.Quiz
	var session *QuizSession
	access, err := e.backend.QuizAccess(ctx, e.moduleID)
	if err == nil && !access.CanAttempt {
		err = &AttemptsExhaustedError{MaxAttempts: access.MaxAttempts}
	}
	if err == nil {
		quiz, err = e.backend.Quiz(ctx, e.moduleID)
	}
	if err == nil {
		session, err = NewQuizSession(*quiz)
	}

	if ferr := e.finish(epoch, func() {
		if access != nil {
			e.access = access
		}
		if err != nil {
			e.lastErr = err.Error()
			return
		}
		e.quiz = session
		e.result = nil
		e.state = StateQuizInProgress
		e.lastErr = ""
	}); ferr != nil {
		return ferr
	}
	return err
}

// Retry 未通过时重新进入测验，同样要先确认可答题次数
func (e *Engine) Retry(ctx context.Context) error {
	e.mu.Lock()
	graded := e.state == StateQuizGraded
	e.mu.Unlock()
	if !graded {
		return ErrInvalidTransition
	}
	return e.StartQuiz(ctx)
}

// Select 只记录临时选择，不涉及 I/O
func (e *Engine) Select(optionID uint) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.inFlight {
		return ErrBusy
	}
	if e.state != StateQuizInProgress || e.quiz == nil {
		return ErrInvalidTransition
	}
	return e.quiz.Select(optionID)
}

// Advance 提交当前选择；最后一题时把完整答案交给服务端评分。
// 评分失败时答题器回到调用前的状态
func (e *Engine) Advance(ctx context.Context) (*model.QuizResult, error) {
	epoch, err := e.begin(StateQuizInProgress)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	next := e.quiz.Clone()
	e.mu.Unlock()

	complete, err := next.Advance()
	if err != nil || !complete {
		ferr := e.finish(epoch, func() {
			if err == nil {
				e.quiz = next
			}
		})
		if ferr != nil {
			return nil, ferr
		}
		return nil, err
	}

	result, err := e.backend.SubmitQuiz(ctx, e.moduleID, next.Answers)
	if ferr := e.finish(epoch, func() {
		if err != nil {
			e.lastErr = err.Error()
			return
		}
		e.quiz = nil
		e.result = result
		e.state = StateQuizGraded
		e.lastErr = ""
	}); ferr != nil {
		return nil, ferr
	}
	if err != nil {
		logger.Log.Warn("Quiz submission failed", zap.Uint("module_id", e.moduleID), zap.Error(err))
		return nil, err
	}

	monitoring.ObserveQuizResult(result.Passed)
	if result.Passed {
		// 通过后刷新模块数据以反映新解锁的模块；刷新失败不影响成绩展示
		if rerr := e.refresh(ctx); rerr != nil && !errors.Is(rerr, ErrStaleVisit) {
			logger.Log.Warn("Module refresh after quiz failed", zap.Uint("module_id", e.moduleID), zap.Error(rerr))
		}
	}
	return result, nil
}

func (e *Engine) refresh(ctx context.Context) error {
	epoch, err := e.begin()
	if err != nil {
		return err
	}
	module, course, err := e.fetch(ctx)
	return e.finish(epoch, func() {
		if err != nil {
			e.lastErr = err.Error()
			return
		}
		e.module, e.course = module, course
	})
}

// Dismiss 关闭成绩页回到内容
func (e *Engine) Dismiss() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.inFlight {
		return ErrBusy
	}
	if e.state != StateQuizGraded {
		return ErrInvalidTransition
	}
	e.result = nil
	e.state = contentState(e.module)
	return nil
}

// Leave 结束本次访问，进行中的请求结果会被丢弃
func (e *Engine) Leave() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.epoch++
	e.inFlight = false
	e.state = StateLoading
	e.module, e.course = nil, nil
	e.quiz, e.access, e.result = nil, nil, nil
	e.lastErr = ""
}

func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// View 当前状态的只读投影
type View struct {
	State      State             `json:"state"`
	Module     *model.Module     `json:"module,omitempty"`
	Course     *model.Course     `json:"course,omitempty"`
	Derived    Derived           `json:"derived"`
	Quiz       *QuizView         `json:"quiz,omitempty"`
	Access     *model.QuizAccess `json:"access,omitempty"`
	Result     *model.QuizResult `json:"result,omitempty"`
	CanTake    bool              `json:"can_take_quiz"`
	Error      string            `json:"error,omitempty"`
	InProgress bool              `json:"in_progress"`
}

func (e *Engine) View() View {
	e.mu.Lock()
	defer e.mu.Unlock()
	v := View{
		State:      e.state,
		Module:     e.module,
		Course:     e.course,
		Access:     e.access,
		Result:     e.result,
		Error:      e.lastErr,
		InProgress: e.inFlight,
	}
	if e.module != nil {
		v.Derived = Derive(e.course, e.module, e.viewer)
	}
	if e.quiz != nil {
		v.Quiz = e.quiz.View()
	}
	isStudent := e.viewer != nil && e.viewer.Role == model.Student
	switch e.state {
	case StateContentReady:
		v.CanTake = isStudent
	case StateQuizGraded:
		v.CanTake = isStudent && e.result != nil && !e.result.Passed
	}
	return v
}
