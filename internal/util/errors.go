package util

import "errors"

var (
	// ErrResourceIDInvalid 缺失或非数字的 ID，在发请求前就拦截
	ErrResourceIDInvalid = errors.New("resource id is missing or invalid")
	ErrPermissionDenied  = errors.New("permission denied")
)
