package model

// Room 教师管理的学员分组，通过分享码加入
type Room struct {
	ID           uint     `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Code         string   `json:"code,omitempty"`
	InstructorID uint     `json:"instructor_id"`
	Students     []User   `json:"students,omitempty"`
	Courses      []Course `json:"courses,omitempty"`
}

type JoinRoomRequest struct {
	Code string `json:"code"`
}
