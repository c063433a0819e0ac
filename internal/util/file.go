package util

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

// ValidateMimeType 按内容嗅探 MIME 类型
// allowedTypes: 允许的 MIME 前缀或完整类型，如 "application/pdf"
func ValidateMimeType(data []byte, allowedTypes []string) (string, error) {
	n := len(data)
	if n > 512 {
		n = 512
	}
	mimeType := http.DetectContentType(data[:n])

	for _, allowed := range allowedTypes {
		if strings.HasPrefix(mimeType, allowed) || mimeType == allowed {
			return mimeType, nil
		}
	}

	return mimeType, errors.New("invalid file type: " + mimeType)
}

// FilenameFromDisposition 从 Content-Disposition 取文件名，取不到时返回空串
func FilenameFromDisposition(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	name := params["filename"]
	if name == "" {
		return ""
	}
	// 只保留文件名，防止路径穿越
	name = filepath.Base(filepath.Clean("/" + name))
	if name == "/" || name == "." {
		return ""
	}
	return name
}

// ModuleFallbackFilename 没有 Content-Disposition 时使用的确定性文件名
func ModuleFallbackFilename(moduleID uint) string {
	return fmt.Sprintf("module-%d.pdf", moduleID)
}
