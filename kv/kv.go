// kv/kv.go
package kv

import (
	"context"
	"errors"
)

// ErrNotFound key 不存在
var ErrNotFound = errors.New("kv: key not found")

// Store 是最小的持久化能力：按 key 读写一段字节
// 内存实现给测试用，Redis / SQL 实现给线上用
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// Lister 可选能力：列出已写入的 key
type Lister interface {
	Keys(ctx context.Context) ([]string, error)
}
