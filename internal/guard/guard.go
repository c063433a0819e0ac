// Package guard decides per navigation whether a view may render for the
// current identity. It performs no I/O.
package guard

import (
	"coder_edu_frontend/internal/model"
	"coder_edu_frontend/internal/util"
)

type Policy int

const (
	// Authenticated 任意已登录用户
	Authenticated Policy = iota
	// Staff 教师或管理员
	Staff
	// AdminOnly 仅管理员
	AdminOnly
)

func (p Policy) String() string {
	switch p {
	case Authenticated:
		return "authenticated"
	case Staff:
		return "staff"
	case AdminOnly:
		return "admin"
	}
	return "unknown"
}

var policyTable = map[Policy]map[model.UserRole]bool{
	Authenticated: {model.Student: true, model.Instructor: true, model.Admin: true},
	Staff:         {model.Instructor: true, model.Admin: true},
	AdminOnly:     {model.Admin: true},
}

// Allows 未知角色或未知策略一律拒绝
func Allows(role model.UserRole, p Policy) bool {
	return policyTable[p][role]
}

type Decision struct {
	Allow    bool
	Redirect string
}

// Decide user 为 nil 表示匿名。拒绝时统一回到首页，不强制跳登录
func Decide(user *model.User, p Policy) Decision {
	if user == nil || !Allows(user.Role, p) {
		return Decision{Redirect: util.HomePath}
	}
	return Decision{Allow: true}
}
