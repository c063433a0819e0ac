package model

type Option struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

type Question struct {
	ID      uint     `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

func (q *Question) HasOption(id uint) bool {
	for _, o := range q.Options {
		if o.ID == id {
			return true
		}
	}
	return false
}

// swagger:model Quiz
type Quiz struct {
	ID        uint       `json:"id"`
	ModuleID  uint       `json:"module_id"`
	Questions []Question `json:"questions"`
}

// QuizAccess 由服务端在每次进入测验前返回
type QuizAccess struct {
	CanAttempt   bool `json:"can_attempt"`
	MaxAttempts  int  `json:"max_attempts"`
	AttemptsUsed int  `json:"attempts_used"`
}

// QuizAttempt 题目 ID -> 选项 ID
type QuizAttempt map[uint]uint

type QuizSubmission struct {
	Answers QuizAttempt `json:"answers"`
}

// swagger:model QuizResult
type QuizResult struct {
	Passed      bool    `json:"passed"`
	Score       float64 `json:"score"`
	Message     string  `json:"message"`
	StarsEarned int     `json:"stars_earned"`
	StarsTotal  int     `json:"stars_total"`
}
