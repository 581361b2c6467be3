package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// backends opens one of each engine in a fresh temp directory.
func backends(t *testing.T) map[string]Backend {
	t.Helper()
	tmpDir := t.TempDir()

	sqlite, err := OpenSQLite(filepath.Join(tmpDir, "fruithunt.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	jsonFile, err := OpenJSON(filepath.Join(tmpDir, "fruithunt.json"))
	if err != nil {
		t.Fatalf("OpenJSON() failed: %v", err)
	}

	all := map[string]Backend{
		EngineSQLite: sqlite,
		EngineJSON:   jsonFile,
		EngineMemory: NewMemory(),
	}
	t.Cleanup(func() {
		for _, b := range all {
			b.Close()
		}
	})
	return all
}

func TestBackendPutGet(t *testing.T) {
	ctx := context.Background()

	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := b.Get(ctx, "sam", "playerName"); err != nil || ok {
				t.Fatalf("Get() on empty backend = ok %v, err %v", ok, err)
			}

			if err := b.Put(ctx, "sam", "playerName", []byte("Sam")); err != nil {
				t.Fatalf("Put() failed: %v", err)
			}
			if err := b.Put(ctx, "sam", "playerName", []byte("Samira")); err != nil {
				t.Fatalf("Put() overwrite failed: %v", err)
			}

			got, ok, err := b.Get(ctx, "sam", "playerName")
			if err != nil || !ok {
				t.Fatalf("Get() = ok %v, err %v", ok, err)
			}
			if string(got) != "Samira" {
				t.Errorf("Get() = %q, want %q", got, "Samira")
			}
		})
	}
}

func TestBackendProfilesAreIsolated(t *testing.T) {
	ctx := context.Background()

	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			b.Put(ctx, "maya", "settings", []byte(`{"soundEffects":false}`))
			b.Put(ctx, "arjun", "settings", []byte(`{"soundEffects":true}`))

			got, _, _ := b.Get(ctx, "maya", "settings")
			if string(got) != `{"soundEffects":false}` {
				t.Errorf("maya settings = %s", got)
			}

			profiles, err := b.Profiles(ctx)
			if err != nil {
				t.Fatalf("Profiles() failed: %v", err)
			}
			if len(profiles) != 2 || profiles[0] != "arjun" || profiles[1] != "maya" {
				t.Errorf("Profiles() = %v, want [arjun maya]", profiles)
			}
		})
	}
}

func TestBackendDelete(t *testing.T) {
	ctx := context.Background()

	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			b.Put(ctx, "sam", "fruitProgress", []byte(`{}`))

			if err := b.Delete(ctx, "sam", "fruitProgress"); err != nil {
				t.Fatalf("Delete() failed: %v", err)
			}
			if _, ok, _ := b.Get(ctx, "sam", "fruitProgress"); ok {
				t.Error("record still present after Delete()")
			}

			// Deleting again is fine
			if err := b.Delete(ctx, "sam", "fruitProgress"); err != nil {
				t.Errorf("second Delete() failed: %v", err)
			}
			if err := b.Delete(ctx, "nobody", "fruitProgress"); err != nil {
				t.Errorf("Delete() for unknown profile failed: %v", err)
			}
		})
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "nested", "deep", "fruithunt.db")

	s, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() with nested path failed: %v", err)
	}
	if err := s.Put(ctx, "local", "playerName", []byte("Sam")); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	s.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("database file was not created")
	}

	s, err = OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s.Close()

	got, ok, err := s.Get(ctx, "local", "playerName")
	if err != nil || !ok || string(got) != "Sam" {
		t.Errorf("Get() after reopen = %q, %v, %v", got, ok, err)
	}
}

func TestJSONPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "fruithunt.json")

	s, err := OpenJSON(path)
	if err != nil {
		t.Fatalf("OpenJSON() failed: %v", err)
	}
	if err := s.Put(ctx, "local", "fruitProgress", []byte(`{"mango":{"collected":true}}`)); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	s, err = OpenJSON(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	got, ok, _ := s.Get(ctx, "local", "fruitProgress")
	if !ok || string(got) != `{"mango":{"collected":true}}` {
		t.Errorf("Get() after reopen = %s, %v", got, ok)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind")
	}
}

func TestJSONRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fruithunt.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := OpenJSON(path); err == nil {
		t.Error("OpenJSON() should fail on a corrupt file")
	}
}

func TestOpenByEngine(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		engine  string
		path    string
		wantErr bool
	}{
		{engine: "", path: filepath.Join(tmpDir, "default.db")},
		{engine: "SQLite", path: filepath.Join(tmpDir, "upper.db")},
		{engine: "json", path: filepath.Join(tmpDir, "records.json")},
		{engine: "memory"},
		{engine: "postgres", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.engine, func(t *testing.T) {
			b, err := Open(tt.engine, tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownEngine) {
					t.Errorf("Open(%q) error = %v, want ErrUnknownEngine", tt.engine, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Open(%q) failed: %v", tt.engine, err)
			}
			b.Close()
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandPath("~/.fruithunt/progress.db")
	if err != nil {
		t.Fatalf("ExpandPath() failed: %v", err)
	}
	if want := filepath.Join(home, ".fruithunt", "progress.db"); got != want {
		t.Errorf("ExpandPath() = %q, want %q", got, want)
	}

	if got, _ := ExpandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed: %q", got)
	}
}
