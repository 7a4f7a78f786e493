// Package store 把一个 kv.Store 里的 key 当作有序记录集合来用。
//
// 所有操作都是 fail-soft：读写出错只记日志，读返回空集合，写当作没发生。
package store

import (
	"context"
	"dressa_storefront/kv"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
)

// Record 任何带 id 的扁平 JSON 结构
type Record interface {
	RecordID() string
}

type Collection[T Record] struct {
	kv  kv.Store
	key string
	max int // 0 = 不限

	// 同一进程内串行化读-改-写；跨进程仍是后写者胜
	mu  sync.Mutex
	log *log.Logger
}

func New[T Record](s kv.Store, key string) *Collection[T] {
	return &Collection[T]{kv: s, key: key, log: log.Default()}
}

// NewCapped 只保留最近 max 条
func NewCapped[T Record](s kv.Store, key string, max int) *Collection[T] {
	c := New[T](s, key)
	c.max = max
	return c
}

// WithLogger 替换诊断输出
func (c *Collection[T]) WithLogger(l *log.Logger) *Collection[T] {
	c.log = l
	return c
}

func (c *Collection[T]) Key() string { return c.key }

func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	b, err := c.kv.Load(ctx, c.key)
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, kv.ErrNotFound
	}
	var items []T
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return items, nil
}

func (c *Collection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return c.kv.Save(ctx, c.key, b)
}

// list 读失败（含 key 不存在）都当空集合
func (c *Collection[T]) list(ctx context.Context, op string) []T {
	items, err := c.load(ctx)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			c.log.Printf("%s %s: %v", op, c.key, err)
		}
		return []T{}
	}
	return items
}

func (c *Collection[T]) List(ctx context.Context) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list(ctx, "list")
}

func (c *Collection[T]) Find(ctx context.Context, id string) (T, bool) {
	for _, it := range c.List(ctx) {
		if it.RecordID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Append 追加到末尾；有上限时挤掉最旧的
func (c *Collection[T]) Append(ctx context.Context, rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.list(ctx, "append")
	if c.max > 0 {
		ring := NewRing[T](c.max)
		for _, it := range items {
			ring.Push(it)
		}
		ring.Push(rec)
		items = ring.Items()
	} else {
		items = append(items, rec)
	}
	if err := c.save(ctx, items); err != nil {
		c.log.Printf("append %s: %v", c.key, err)
	}
}

// DeleteByID 找不到时什么也不做（仍会写回同样的内容）
func (c *Collection[T]) DeleteByID(ctx context.Context, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.list(ctx, "delete")
	kept := make([]T, 0, len(items))
	for _, it := range items {
		if it.RecordID() != id {
			kept = append(kept, it)
		}
	}
	if err := c.save(ctx, kept); err != nil {
		c.log.Printf("delete %s: %v", c.key, err)
	}
}

// UpdatePartial 浅合并 patch 到匹配的记录；patch 里的 "id" 会被忽略
func (c *Collection[T]) UpdatePartial(ctx context.Context, id string, patch map[string]any) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	items := c.list(ctx, "update")
	idx := -1
	for i, it := range items {
		if it.RecordID() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return zero, false
	}

	merged, err := mergeJSON(items[idx], patch)
	if err != nil {
		c.log.Printf("update %s: %v", c.key, err)
		return zero, false
	}
	items[idx] = merged
	if err := c.save(ctx, items); err != nil {
		c.log.Printf("update %s: %v", c.key, err)
		return zero, false
	}
	return merged, true
}

// SeedIfAbsent key 还不存在时写入初始数据；返回是否写入
// 已存在（哪怕内容损坏）就不动
func (c *Collection[T]) SeedIfAbsent(ctx context.Context, items []T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, err := c.kv.Load(ctx, c.key)
	switch {
	case err == nil && len(b) > 0:
		return false
	case err != nil && !errors.Is(err, kv.ErrNotFound):
		c.log.Printf("seed %s: %v", c.key, err)
		return false
	}
	seed := make([]T, len(items))
	copy(seed, items)
	if err := c.save(ctx, seed); err != nil {
		c.log.Printf("seed %s: %v", c.key, err)
		return false
	}
	return true
}

func mergeJSON[T any](rec T, patch map[string]any) (T, error) {
	var out T
	b, err := json.Marshal(rec)
	if err != nil {
		return out, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(b, &fields); err != nil {
		return out, err
	}
	for k, v := range patch {
		if k == "id" {
			continue
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return out, fmt.Errorf("patch field %s: %w", k, err)
		}
		fields[k] = raw
	}
	b, err = json.Marshal(fields)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, err
	}
	return out, nil
}

// PatchOf 把带 omitempty 指针字段的结构体转成 patch map
func PatchOf(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	m := map[string]any{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
