package model

import "strings"

type UserRole string

const (
	Student    UserRole = "student"
	Instructor UserRole = "instructor"
	Admin      UserRole = "admin"
)

// Valid 角色是闭集，未知字符串一律视为无效
func (r UserRole) Valid() bool {
	switch r {
	case Student, Instructor, Admin:
		return true
	}
	return false
}

type PlanTier string

const (
	PlanFree    PlanTier = "free"
	PlanPremium PlanTier = "premium"
)

type Profile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
}

// swagger:model User
type User struct {
	ID       uint     `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email,omitempty"`
	Role     UserRole `json:"role"`
	Profile  Profile  `json:"profile"`
	Plan     PlanTier `json:"plan"`
}

func (u *User) DisplayName() string {
	name := strings.TrimSpace(u.Profile.FirstName + " " + u.Profile.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

func (u *User) IsStaff() bool {
	return u.Role == Instructor || u.Role == Admin
}

// TokenResponse 登录接口返回
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
