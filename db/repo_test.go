package db

import (
	"context"
	"dressa_storefront/kv"
	"errors"
	"testing"
)

func setupTestRepo(t *testing.T) *Repo {
	t.Helper()
	conn, err := Open(Options{Type: "sqlite", Name: ":memory:"})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = Close(conn) })
	return NewRepo(conn)
}

func TestRepo_LoadMissing(t *testing.T) {
	r := setupTestRepo(t)
	if _, err := r.Load(context.Background(), "adminDresses"); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("Load missing: err = %v, want kv.ErrNotFound", err)
	}
}

func TestRepo_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	r := setupTestRepo(t)

	if err := r.Save(ctx, "contactSubmissions", []byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if err := r.Save(ctx, "contactSubmissions", []byte(`[]`)); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	got, err := r.Load(ctx, "contactSubmissions")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != `[]` {
		t.Errorf("Load = %q, want []", got)
	}

	keys, err := r.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	if len(keys) != 1 || keys[0] != "contactSubmissions" {
		t.Errorf("Keys = %v, want [contactSubmissions]", keys)
	}
}

func TestOpen_UnsupportedType(t *testing.T) {
	if _, err := Open(Options{Type: "oracle"}); err == nil {
		t.Fatal("Open(oracle) succeeded, want error")
	}
}
