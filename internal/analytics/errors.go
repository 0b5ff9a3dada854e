package analytics

import "errors"

// 仅用于请求参数解析；聚合计算本身不返回错误
var (
	ErrUnknownDimension = errors.New("unknown filter dimension")
	ErrUnknownViewMode  = errors.New("unknown view mode")
)
