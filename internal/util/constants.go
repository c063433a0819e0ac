package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const (
	MimePDF         = "application/pdf"
	MimeOctetStream = "application/octet-stream"
	MimeJSON        = "application/json"
)

// HomePath 未登录或权限不足时的回退地址
const HomePath = "/"
