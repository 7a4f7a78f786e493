// models/kv_entry.go
package models

import (
	"time"

	"gorm.io/datatypes"
)

const KVTable = "dressa_kv_entries"

// KVEntry 每个集合一行：key -> 整个 JSON 数组
type KVEntry struct {
	Key       string         `gorm:"column:store_key;primaryKey;size:120" json:"key"`
	Value     datatypes.JSON `gorm:"not null" json:"value"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func (KVEntry) TableName() string { return KVTable }
