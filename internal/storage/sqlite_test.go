package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

func newTestSQLiteKV(t *testing.T) *SQLiteKV {
	t.Helper()
	kv, err := NewSQLiteKV(filepath.Join(t.TempDir(), "zenith.db"))
	if err != nil {
		t.Fatalf("NewSQLiteKV() error = %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestSQLiteKVRoundTrip(t *testing.T) {
	kv := newTestSQLiteKV(t)

	if err := kv.Write("habits", []byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	got, err := kv.Read("habits")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(got) != `[{"id":"a"}]` {
		t.Errorf("Read() = %s", got)
	}
}

func TestSQLiteKVWriteReplaces(t *testing.T) {
	kv := newTestSQLiteKV(t)

	if err := kv.Write("habits", []byte("first")); err != nil {
		t.Fatal(err)
	}
	if err := kv.Write("habits", []byte("second")); err != nil {
		t.Fatal(err)
	}
	got, err := kv.Read("habits")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second" {
		t.Errorf("Read() after overwrite = %s, want second", got)
	}
}

func TestSQLiteKVMissingKey(t *testing.T) {
	kv := newTestSQLiteKV(t)
	_, err := kv.Read("absent")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Read() of missing key error = %v, want ErrKeyNotFound", err)
	}
}

func TestSQLiteKVErase(t *testing.T) {
	kv := newTestSQLiteKV(t)
	if err := kv.Write("habits", []byte("x")); err != nil {
		t.Fatal(err)
	}
	if err := kv.Erase("habits"); err != nil {
		t.Fatalf("Erase() error = %v", err)
	}
	if _, err := kv.Read("habits"); !errors.Is(err, ErrKeyNotFound) {
		t.Error("value survived Erase()")
	}
	if err := kv.Erase("never-there"); err != nil {
		t.Errorf("Erase() of absent key error = %v, want nil", err)
	}
}
