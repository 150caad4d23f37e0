package storage

import (
	"path/filepath"
	"testing"
)

func openTestKV(t *testing.T) *SQLiteKV {
	t.Helper()

	kv, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestSQLiteKV(t *testing.T) {
	t.Run("get on absent key", func(t *testing.T) {
		kv := openTestKV(t)

		value, ok, err := kv.Get("channels")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if ok || value != "" {
			t.Errorf("Get() = (%q, %v), want absent", value, ok)
		}
	})

	t.Run("set then get", func(t *testing.T) {
		kv := openTestKV(t)

		if err := kv.Set("channels", `[{"id":1}]`); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		value, ok, err := kv.Get("channels")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if !ok || value != `[{"id":1}]` {
			t.Errorf("Get() = (%q, %v), want the stored value", value, ok)
		}
	})

	t.Run("set overwrites", func(t *testing.T) {
		kv := openTestKV(t)

		kv.Set("adminActivity", "[]")
		if err := kv.Set("adminActivity", `[{"title":"x"}]`); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		value, ok, _ := kv.Get("adminActivity")
		if !ok || value != `[{"title":"x"}]` {
			t.Errorf("Get() = (%q, %v), want the overwritten value", value, ok)
		}
	})

	t.Run("delete", func(t *testing.T) {
		kv := openTestKV(t)

		kv.Set("channelBackup", "{}")
		if err := kv.Delete("channelBackup"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}

		if _, ok, _ := kv.Get("channelBackup"); ok {
			t.Error("Get() after Delete() reports the key as present")
		}
	})

	t.Run("delete on absent key is a no-op", func(t *testing.T) {
		kv := openTestKV(t)

		if err := kv.Delete("never-set"); err != nil {
			t.Errorf("Delete() error = %v, want nil", err)
		}
	})
}

func TestMemoryKV(t *testing.T) {
	kv := NewMemoryKV()

	if _, ok, _ := kv.Get("channels"); ok {
		t.Error("Get() on a fresh store reports a key as present")
	}

	kv.Set("channels", "[]")
	value, ok, err := kv.Get("channels")
	if err != nil || !ok || value != "[]" {
		t.Errorf("Get() = (%q, %v, %v), want the stored value", value, ok, err)
	}
	if kv.Len() != 1 {
		t.Errorf("Len() = %d, want 1", kv.Len())
	}

	kv.Delete("channels")
	if kv.Len() != 0 {
		t.Errorf("Len() after Delete() = %d, want 0", kv.Len())
	}
}
