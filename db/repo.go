package db

import (
	"context"
	"dressa_storefront/kv"
	"dressa_storefront/models"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repo 把一张 key/value 表当作 kv.Store 使用
type Repo struct{ DB *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{DB: db} }

var (
	_ kv.Store  = (*Repo)(nil)
	_ kv.Lister = (*Repo)(nil)
)

func (r *Repo) Load(ctx context.Context, key string) ([]byte, error) {
	var e models.KVEntry
	err := r.DB.WithContext(ctx).First(&e, "store_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, kv.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	return []byte(e.Value), nil
}

// Save 整行覆盖（upsert），并发写入时后写者胜
func (r *Repo) Save(ctx context.Context, key string, data []byte) error {
	e := &models.KVEntry{Key: key, Value: data}
	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "store_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(e).Error
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys 列出已存在的集合，启动摘要里打印
func (r *Repo) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	err := r.DB.WithContext(ctx).Model(&models.KVEntry{}).Order("store_key").Pluck("store_key", &keys).Error
	return keys, err
}
