package model

// StarRating 服务端计算的掌握度 earned/total
type StarRating struct {
	Earned int `json:"earned"`
	Total  int `json:"total"`
}

type CourseProgress struct {
	Course           Course     `json:"course"`
	CompletedModules int        `json:"completed_modules"`
	TotalModules     int        `json:"total_modules"`
	Stars            StarRating `json:"stars"`
}

type StudentDashboard struct {
	EnrolledCourses []CourseProgress `json:"enrolled_courses"`
	Stars           StarRating       `json:"stars"`
	Rooms           []Room           `json:"rooms"`
	LearningPaths   []LearningPath   `json:"learning_paths"`
}

type InstructorDashboard struct {
	Courses       []Course `json:"courses"`
	Rooms         []Room   `json:"rooms"`
	TotalStudents int      `json:"total_students"`
	AverageScore  float64  `json:"average_score"`
}

type AdminDashboard struct {
	TotalUsers       int     `json:"total_users"`
	TotalCourses     int     `json:"total_courses"`
	TotalEnrollments int     `json:"total_enrollments"`
	Revenue          float64 `json:"revenue"`
	RecentUsers      []User  `json:"recent_users"`
}
