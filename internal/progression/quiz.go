package progression

import (
	"coder_edu_frontend/internal/model"
	"errors"
	"fmt"
)

var (
	ErrEmptyQuiz     = errors.New("quiz has no questions")
	ErrNoSelection   = errors.New("select an answer before continuing")
	ErrUnknownOption = errors.New("option does not belong to the current question")
	ErrQuizComplete  = errors.New("all questions have been answered")
	ErrMalformedQuiz = errors.New("quiz contains duplicate questions")
)

// QuizSession 线性答题器：索引只增不减，每题恰好提交一个答案
type QuizSession struct {
	Quiz      model.Quiz        `json:"quiz"`
	Index     int               `json:"index"`
	Answers   model.QuizAttempt `json:"answers"`
	Selection *uint             `json:"selection,omitempty"`
	Complete  bool              `json:"complete"`
}

func NewQuizSession(q model.Quiz) (*QuizSession, error) {
	if len(q.Questions) == 0 {
		return nil, ErrEmptyQuiz
	}
	// 答案按题目 id 记录，重复 id 会互相覆盖
	seen := make(map[uint]bool, len(q.Questions))
	for _, question := range q.Questions {
		if seen[question.ID] {
			return nil, fmt.Errorf("%w: question %d", ErrMalformedQuiz, question.ID)
		}
		seen[question.ID] = true
	}
	return &QuizSession{Quiz: q, Answers: model.QuizAttempt{}}, nil
}

func (s *QuizSession) Current() *model.Question {
	if s.Complete || s.Index >= len(s.Quiz.Questions) {
		return nil
	}
	return &s.Quiz.Questions[s.Index]
}

func (s *QuizSession) Total() int {
	return len(s.Quiz.Questions)
}

// Select 记录临时选择，尚未写入答案
func (s *QuizSession) Select(optionID uint) error {
	q := s.Current()
	if q == nil {
		return ErrQuizComplete
	}
	if !q.HasOption(optionID) {
		return ErrUnknownOption
	}
	s.Selection = &optionID
	return nil
}

// Advance 提交当前选择。没有选择时不改变任何状态；
// 最后一题提交后返回 true，表示可以整体提交
func (s *QuizSession) Advance() (bool, error) {
	q := s.Current()
	if q == nil {
		return false, ErrQuizComplete
	}
	if s.Selection == nil {
		return false, ErrNoSelection
	}

	s.Answers[q.ID] = *s.Selection
	s.Selection = nil

	if s.Index < len(s.Quiz.Questions)-1 {
		s.Index++
		return false, nil
	}
	s.Complete = true
	return true, nil
}

func (s *QuizSession) Clone() *QuizSession {
	c := *s
	c.Answers = make(model.QuizAttempt, len(s.Answers))
	for k, v := range s.Answers {
		c.Answers[k] = v
	}
	if s.Selection != nil {
		sel := *s.Selection
		c.Selection = &sel
	}
	return &c
}

// QuizView 给前端展示用，不包含已选答案以外的内部状态
type QuizView struct {
	Index     int             `json:"index"`
	Total     int             `json:"total"`
	Question  *model.Question `json:"question"`
	Selection *uint           `json:"selection,omitempty"`
	Answered  int             `json:"answered"`
}

func (s *QuizSession) View() *QuizView {
	return &QuizView{
		Index:     s.Index,
		Total:     s.Total(),
		Question:  s.Current(),
		Selection: s.Selection,
		Answered:  len(s.Answers),
	}
}
