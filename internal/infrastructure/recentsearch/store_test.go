package recentsearch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/riskibarqy/courtside/internal/controller/recent"
)

var (
	_ recent.Store = (*MemoryStore)(nil)
	_ recent.Store = (*FileStore)(nil)
	_ recent.Store = (*PostgresStore)(nil)
)

func TestFileStore_RoundTripAcrossInstances(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state", "recent.json")
	ctx := context.Background()

	first, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	if list, err := first.Load(ctx, "default"); err != nil || len(list) != 0 {
		t.Fatalf("missing file should load empty, got %v err=%v", list, err)
	}
	if err := first.Save(ctx, "default", []string{"lebron james", "curry"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := first.Save(ctx, "tablet", []string{"jokic"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	second, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	list, err := second.Load(ctx, "default")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(list) != 2 || list[0] != "lebron james" {
		t.Fatalf("unexpected list: %v", list)
	}

	if err := second.Save(ctx, "default", nil); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if list, _ := second.Load(ctx, "default"); len(list) != 0 {
		t.Fatalf("expected cleared list, got %v", list)
	}
	if list, _ := second.Load(ctx, "tablet"); len(list) != 1 {
		t.Fatalf("other owners must survive a clear, got %v", list)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("temp files left behind: %d entries", len(entries))
	}
}

func TestFileStore_CorruptFileIsAnError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "recent.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	if _, err := store.Load(context.Background(), "default"); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()
	in := []string{"a", "b"}
	if err := store.Save(ctx, "o", in); err != nil {
		t.Fatalf("save: %v", err)
	}
	in[0] = "mutated"

	out, _ := store.Load(ctx, "o")
	if out[0] != "a" {
		t.Fatalf("store kept caller slice: %v", out)
	}
	out[1] = "mutated"
	again, _ := store.Load(ctx, "o")
	if again[1] != "b" {
		t.Fatalf("load returned internal slice: %v", again)
	}
}
