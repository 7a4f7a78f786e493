package activity

import (
	"context"
	"dressa_storefront/kv"
	"dressa_storefront/models"
	"dressa_storefront/store"
)

const (
	Key     = "activityLog"
	MaxLogs = 100
)

const (
	PageLoad      = "page_load"
	ButtonClick   = "button_click"
	FormOpen      = "form_open"
	FormSubmit    = "form_submit"
	SectionView   = "section_view"
	WhatsAppClick = "whatsapp_click"
	DressView     = "dress_view"
)

var known = map[string]bool{
	PageLoad: true, ButtonClick: true, FormOpen: true, FormSubmit: true,
	SectionView: true, WhatsAppClick: true, DressView: true,
}

func Known(action string) bool { return known[action] }

// Logger 写入上限 MaxLogs 的 activityLog 集合，满了丢最旧的
type Logger struct {
	logs *store.Collection[models.ActivityLog]
}

func NewLogger(s kv.Store) *Logger {
	return &Logger{logs: store.NewCapped[models.ActivityLog](s, Key, MaxLogs)}
}

func (l *Logger) Log(ctx context.Context, action string, metadata map[string]any, userAgent string) models.ActivityLog {
	entry := models.ActivityLog{
		ID:        store.NewID("log"),
		Action:    action,
		Metadata:  metadata,
		Timestamp: store.Timestamp(),
		UserAgent: userAgent,
	}
	l.logs.Append(ctx, entry)
	return entry
}

func (l *Logger) List(ctx context.Context) []models.ActivityLog { return l.logs.List(ctx) }
