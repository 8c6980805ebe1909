// pkg/portfolio/resolver.go
package portfolio

import (
	"strconv"
	"strings"
)

// Key 持仓查找键
// 路径参数在HTTP边界处一次性解析为ID或符号，之后的读取、
// 更新、删除都复用同一个键，保证三种操作的解析行为一致
type Key struct {
	ID     uint
	Symbol string
	ByID   bool
}

// ParseKey 解析路径参数
// 能完整解析为整数的按ID查找，否则按符号（不区分大小写）查找。
// 已知限制：纯数字符号（如"123"）永远会被当作ID，无法按符号命中
func ParseKey(token string) Key {
	if id, err := strconv.ParseUint(token, 10, 32); err == nil {
		return Key{ID: uint(id), ByID: true}
	}
	return Key{Symbol: strings.ToUpper(token)}
}

// String 返回键的原始表示，用于日志和错误信息
func (k Key) String() string {
	if k.ByID {
		return strconv.FormatUint(uint64(k.ID), 10)
	}
	return k.Symbol
}
