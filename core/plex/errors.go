package plex

import (
	"errors"
	"fmt"
)

// ErrMissingArgument 调用方未提供必需的查找参数
var ErrMissingArgument = errors.New("缺少参数: 需要提供标题，或曲目序号")

// ErrUnregistered 注册表中没有匹配的实体类型
var ErrUnregistered = errors.New("未注册的实体类型")

// errNotFound 内部哨兵: 单条资源不存在。对调用方表现为缺失值而非错误。
var errNotFound = errors.New("资源不存在")

// IntegrityError 局部实体升级为完整实体时，规范资源与存根不一致。
// 这说明 ratingKey/key/type 的稳定性约束被破坏，属于致命数据错误。
type IntegrityError struct {
	Field     string
	Stub      string
	Canonical string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("实体升级数据不一致: %s 存根值=%q 规范值=%q", e.Field, e.Stub, e.Canonical)
}
