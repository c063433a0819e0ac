package util

import (
	"strconv"
	"strings"
)

// ParseID 解析路径中的资源 ID，0、负数和非数字都返回 ErrResourceIDInvalid
func ParseID(s string) (uint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrResourceIDInvalid
	}
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, ErrResourceIDInvalid
	}
	return uint(id), nil
}

// ParseIDs 逗号分隔的 ID 列表，忽略空项，遇到非法项返回错误
func ParseIDs(s string) ([]uint, error) {
	var ids []uint
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		id, err := ParseID(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
