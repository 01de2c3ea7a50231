package tui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPrefs_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")

	want := Prefs{ServerURL: "http://example.com:9090", Mode: "supabase"}
	if err := savePrefsTo(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := loadPrefsFrom(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestPrefs_MissingFileReturnsDefaults(t *testing.T) {
	got, err := loadPrefsFrom(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != DefaultPrefs() {
		t.Errorf("got %+v, want defaults", got)
	}
}

func TestPrefs_CorruptFileFailsWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := loadPrefsFrom(path)
	if err == nil {
		t.Fatal("expected error for corrupt file")
	}
	if got != DefaultPrefs() {
		t.Errorf("expected defaults on error, got %+v", got)
	}
}
