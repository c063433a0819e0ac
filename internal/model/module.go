package model

type ModuleStatus string

const (
	ModuleLocked    ModuleStatus = "locked"
	ModuleAvailable ModuleStatus = "available"
	ModuleCompleted ModuleStatus = "completed"
)

// swagger:model Module
type Module struct {
	ID          uint         `json:"id"`
	CourseID    uint         `json:"course_id"`
	Order       int          `json:"order"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Content     *string      `json:"content"`
	AudioURL    string       `json:"audio_url,omitempty"`
	Status      ModuleStatus `json:"status"`
	IsLocked    bool         `json:"is_locked"`
}

// HasContent 内容为空字符串也视为未生成
func (m *Module) HasContent() bool {
	return m.Content != nil && *m.Content != ""
}

func (m *Module) IsCompleted() bool {
	return m.Status == ModuleCompleted
}
