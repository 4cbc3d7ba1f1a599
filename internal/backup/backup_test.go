package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "mindlog.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	defer db.Close()

	stmts := []string{
		"CREATE TABLE entries (id TEXT PRIMARY KEY, user_name TEXT, focus INTEGER)",
		"INSERT INTO entries VALUES ('e1', 'ana', 6)",
		"INSERT INTO entries VALUES ('e2', 'ana', 4)",
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatalf("setup %q failed: %v", s, err)
		}
	}
	return dbPath
}

func countEntries(t *testing.T, path string) int {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&n); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return n
}

// fixedClock makes successive calls advance by one minute
func fixedClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		t := current
		current = current.Add(time.Minute)
		return t
	}
}

func TestCreateBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	path, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if filepath.Dir(path) != mgr.Dir() {
		t.Errorf("backup written to %s, want inside %s", path, mgr.Dir())
	}
	if got := countEntries(t, path); got != 2 {
		t.Errorf("backup holds %d entries, want 2", got)
	}
}

func TestCreateBackupMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "absent.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("CreateBackup should fail without a database")
	}
}

func TestUniqueBackupNames(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	frozen := time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)
	mgr.now = func() time.Time { return frozen }

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		p, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup %d failed: %v", i, err)
		}
		if seen[p] {
			t.Fatalf("duplicate backup path %s", p)
		}
		seen[p] = true
	}

	backups, err := mgr.ListBackups()
	if err != nil || len(backups) != 3 {
		t.Fatalf("ListBackups() = %d, %v", len(backups), err)
	}
	if filepath.Base(backups[0].Path) != "mindlog-20240102-030405-2.db" {
		t.Errorf("newest backup = %s, want the highest sequence", filepath.Base(backups[0].Path))
	}
}

func TestBackupRotation(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	mgr.keep = 3
	mgr.now = fixedClock(time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local))

	for i := 0; i < 5; i++ {
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup %d failed: %v", i, err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 3 {
		t.Fatalf("expected 3 backups after rotation, got %d", len(backups))
	}
	if want := "mindlog-20240101-080400.db"; filepath.Base(backups[0].Path) != want {
		t.Errorf("newest = %s, want %s", filepath.Base(backups[0].Path), want)
	}
	if want := "mindlog-20240101-080200.db"; filepath.Base(backups[2].Path) != want {
		t.Errorf("oldest kept = %s, want %s", filepath.Base(backups[2].Path), want)
	}
}

func TestListBackupsIgnoresForeignFiles(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	if backups, err := mgr.ListBackups(); err != nil || len(backups) != 0 {
		t.Fatalf("ListBackups() without dir = %v, %v", backups, err)
	}

	if err := os.MkdirAll(mgr.Dir(), 0700); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"notes.txt", "mindlog-latest.db", "mindlog-20240101.db", "other-20240101-080000.db"} {
		if err := os.WriteFile(filepath.Join(mgr.Dir(), name), []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatal(err)
	}

	backups, err := mgr.ListBackups()
	if err != nil || len(backups) != 1 {
		t.Errorf("ListBackups() = %v, %v, want exactly the real backup", backups, err)
	}

	latest, ok, err := mgr.Latest()
	if err != nil || !ok || latest.Path != backups[0].Path {
		t.Errorf("Latest() = %+v, %v, %v", latest, ok, err)
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	mgr.now = fixedClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local))

	snapshot, err := mgr.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("INSERT INTO entries VALUES ('e3', 'ben', 2)"); err != nil {
		t.Fatal(err)
	}
	db.Close()

	safety, err := mgr.RestoreBackup(snapshot)
	if err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}
	if got := countEntries(t, dbPath); got != 2 {
		t.Errorf("restored database holds %d entries, want 2", got)
	}
	if safety == "" {
		t.Fatal("RestoreBackup should keep a safety copy of the replaced database")
	}
	if got := countEntries(t, safety); got != 3 {
		t.Errorf("safety copy holds %d entries, want 3", got)
	}
}

func TestRestoreRejectsInvalidBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	if _, err := mgr.RestoreBackup(filepath.Join(t.TempDir(), "missing.db")); err == nil {
		t.Error("restoring a missing file should fail")
	}

	bogus := filepath.Join(t.TempDir(), "bogus.db")
	if err := os.WriteFile(bogus, []byte("this is not a sqlite database, just some text padding it out"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.RestoreBackup(bogus); err == nil {
		t.Error("restoring a corrupted file should fail")
	}
	if got := countEntries(t, dbPath); got != 2 {
		t.Errorf("database changed after failed restore: %d entries", got)
	}
}
