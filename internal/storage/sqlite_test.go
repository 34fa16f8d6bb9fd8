package storage

import (
	"path/filepath"
	"testing"
)

func TestSQLiteKVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	kv, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer kv.Close()

	if _, ok, err := kv.Get("userSession"); err != nil || ok {
		t.Fatalf("Get on empty db: ok=%v err=%v, want absent", ok, err)
	}

	if err := kv.Set("userSession", []byte(`{"phoneNumber":"9876543210"}`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, ok, err := kv.Get("userSession")
	if err != nil || !ok {
		t.Fatalf("Get after Set: ok=%v err=%v", ok, err)
	}
	if string(got) != `{"phoneNumber":"9876543210"}` {
		t.Errorf("value = %s, want the stored record", got)
	}

	// Overwrite replaces.
	if err := kv.Set("userSession", []byte(`{}`)); err != nil {
		t.Fatalf("second Set failed: %v", err)
	}
	got, _, _ = kv.Get("userSession")
	if string(got) != `{}` {
		t.Errorf("value after overwrite = %s, want {}", got)
	}

	if err := kv.Delete("userSession"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := kv.Get("userSession"); ok {
		t.Error("value still present after Delete")
	}

	// Deleting an absent key is fine.
	if err := kv.Delete("userSession"); err != nil {
		t.Errorf("Delete on absent key: %v", err)
	}
}

func TestSQLiteKVSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	kv, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	if err := kv.Set("k", []byte("v")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	got, ok, err := reopened.Get("k")
	if err != nil || !ok {
		t.Fatalf("Get after reopen: ok=%v err=%v", ok, err)
	}
	if string(got) != "v" {
		t.Errorf("value = %s, want v", got)
	}
}

func TestMemoryKV(t *testing.T) {
	kv := NewMemoryKV()

	if err := kv.Set("k", []byte("v")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, ok, err := kv.Get("k")
	if err != nil || !ok || string(got) != "v" {
		t.Fatalf("Get = %s ok=%v err=%v, want v", got, ok, err)
	}

	// The returned slice is a copy.
	got[0] = 'x'
	again, _, _ := kv.Get("k")
	if string(again) != "v" {
		t.Error("mutating a returned value must not reach the store")
	}

	if err := kv.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := kv.Get("k"); ok {
		t.Error("value still present after Delete")
	}
}
