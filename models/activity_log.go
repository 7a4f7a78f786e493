// models/activity_log.go
package models

// ActivityLog 记录前台的一次操作（页面加载、点击、提交等）
type ActivityLog struct {
	ID        string         `json:"id"`
	Action    string         `json:"action"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Timestamp string         `json:"timestamp"`
	UserAgent string         `json:"userAgent"`
}

func (l ActivityLog) RecordID() string { return l.ID }
