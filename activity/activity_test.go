package activity

import (
	"context"
	"dressa_storefront/kv"
	"testing"
)

func TestLogger_CapsAtMax(t *testing.T) {
	ctx := context.Background()
	l := NewLogger(kv.NewMemoryStore())

	var ids []string
	for i := 0; i < MaxLogs+1; i++ {
		e := l.Log(ctx, PageLoad, map[string]any{"n": i}, "test-agent")
		ids = append(ids, e.ID)
	}

	got := l.List(ctx)
	if len(got) != MaxLogs {
		t.Fatalf("len = %d, want %d", len(got), MaxLogs)
	}
	for _, e := range got {
		if e.ID == ids[0] {
			t.Fatal("first entry still present after overflow")
		}
	}
	for i, e := range got {
		if e.ID != ids[i+1] {
			t.Fatalf("got[%d].ID = %s, want %s", i, e.ID, ids[i+1])
		}
	}
}

func TestLogger_EntryFields(t *testing.T) {
	ctx := context.Background()
	l := NewLogger(kv.NewMemoryStore())
	e := l.Log(ctx, WhatsAppClick, nil, "Mozilla/5.0")

	got := l.List(ctx)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Action != WhatsAppClick || got[0].UserAgent != "Mozilla/5.0" || got[0].ID != e.ID {
		t.Errorf("stored = %+v", got[0])
	}
	if got[0].Metadata != nil {
		t.Errorf("Metadata = %v, want nil", got[0].Metadata)
	}
}

func TestKnown(t *testing.T) {
	if !Known(DressView) {
		t.Error("Known(dress_view) = false")
	}
	if Known("drop_tables") {
		t.Error("Known(drop_tables) = true")
	}
}
