package model

type CourseLevel string

const (
	LevelBasic        CourseLevel = "basic"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

func (l CourseLevel) Valid() bool {
	switch l {
	case LevelBasic, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// swagger:model Category
type Category struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// swagger:model Course
type Course struct {
	ID           uint        `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Level        CourseLevel `json:"level"`
	Price        float64     `json:"price"`
	CategoryID   uint        `json:"category_id"`
	CategoryName string      `json:"category_name,omitempty"`
	Modules      []Module    `json:"modules"`
	CreatorID    uint        `json:"creator_id"`
	IsEnrolled   bool        `json:"is_enrolled"`
}

func (c *Course) IsFree() bool {
	return c.Price == 0
}

type Enrollment struct {
	CourseID uint   `json:"course_id"`
	Status   string `json:"status"`
	Detail   string `json:"detail,omitempty"`
}
