package notes

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestStore(t *testing.T, maxNotes int) *Store {
	t.Helper()
	s := NewStore(t.TempDir(), "2006-01-02_15-04-05", maxNotes)
	if err := s.Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return s
}

// setClock pins the store clock; each call to the returned advance func
// moves it forward one second so filenames stay unique.
func setClock(s *Store, start time.Time) func() {
	current := start
	s.now = func() time.Time { return current }
	return func() { current = current.Add(time.Second) }
}

func TestInitializeIdempotent(t *testing.T) {
	root := t.TempDir()
	s := NewStore(root, "2006-01-02_15-04-05", 100)

	for i := 0; i < 2; i++ {
		if err := s.Initialize(); err != nil {
			t.Fatalf("initialize pass %d: %v", i, err)
		}
	}

	for _, name := range []string{"index.json", "TEMPLATE.md"} {
		if _, err := os.Stat(filepath.Join(root, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
}

func TestCreateAndList(t *testing.T) {
	s := newTestStore(t, 100)
	setClock(s, time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC))

	filename, err := s.CreateNote("Groceries", "weekly list")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if filename != "2026-03-14_09-26-53.md" {
		t.Errorf("unexpected filename %q", filename)
	}

	records, err := s.ListNotes()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Title != "Groceries" {
		t.Errorf("expected title Groceries, got %q", records[0].Title)
	}
	if records[0].Filename != filename {
		t.Errorf("expected filename %q, got %q", filename, records[0].Filename)
	}

	body, err := s.ReadNoteBody(filename)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(body, "Groceries") || !strings.Contains(body, "weekly list") {
		t.Errorf("body missing substituted fields:\n%s", body)
	}
}

func TestListNewestFirst(t *testing.T) {
	s := newTestStore(t, 100)
	advance := setClock(s, time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))

	groceries, err := s.CreateNote("Groceries", "weekly list")
	if err != nil {
		t.Fatalf("create groceries: %v", err)
	}
	advance()
	if _, err := s.CreateNote("Recipe", "dinner"); err != nil {
		t.Fatalf("create recipe: %v", err)
	}

	records, err := s.ListNotes()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Title != "Recipe" || records[1].Title != "Groceries" {
		t.Errorf("expected newest-first [Recipe Groceries], got [%s %s]",
			records[0].Title, records[1].Title)
	}

	if err := s.DeleteNote(groceries); err != nil {
		t.Fatalf("delete: %v", err)
	}
	records, err = s.ListNotes()
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(records) != 1 || records[0].Title != "Recipe" {
		t.Errorf("expected only Recipe to remain, got %v", records)
	}
}

func TestCreateDuplicateTimestamp(t *testing.T) {
	s := newTestStore(t, 100)
	setClock(s, time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC))

	if _, err := s.CreateNote("First", "one"); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Same second, same formatted timestamp: creation must fail rather
	// than overwrite.
	_, err := s.CreateNote("Second", "two")
	if !errors.Is(err, ErrDuplicateNote) {
		t.Fatalf("expected ErrDuplicateNote, got %v", err)
	}

	records, err := s.ListNotes()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 || records[0].Title != "First" {
		t.Errorf("store changed by failed create: %v", records)
	}
}

func TestCreateAtCapacity(t *testing.T) {
	s := newTestStore(t, 1)
	advance := setClock(s, time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))

	if _, err := s.CreateNote("First", "one"); err != nil {
		t.Fatalf("create: %v", err)
	}
	advance()

	_, err := s.CreateNote("Second", "two")
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}

	// Index and filesystem unchanged.
	records, err := s.ListNotes()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected 1 record after failed create, got %d", len(records))
	}
	count, err := s.countNoteFiles()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 note file after failed create, got %d", count)
	}
}

func TestCreateRejectsEmptyInput(t *testing.T) {
	s := newTestStore(t, 100)
	setClock(s, time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))

	tests := []struct {
		name        string
		title, desc string
	}{
		{"empty title", "", "desc"},
		{"whitespace title", "   ", "desc"},
		{"empty description", "title", ""},
		{"whitespace description", "title", " \t "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateNote(tt.title, tt.desc)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}

	// Validation failures must not touch storage.
	count, err := s.countNoteFiles()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no note files, got %d", count)
	}
}

func TestDeleteIdempotent(t *testing.T) {
	s := newTestStore(t, 100)
	setClock(s, time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))

	filename, err := s.CreateNote("Doomed", "to go")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := s.DeleteNote(filename); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := s.DeleteNote(filename); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if err := s.DeleteNote("never-existed.md"); err != nil {
		t.Fatalf("delete of unknown file: %v", err)
	}

	records, err := s.ListNotes()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty index, got %v", records)
	}
}

func TestCorruptIndexIsStorageUnavailable(t *testing.T) {
	s := newTestStore(t, 100)
	if err := os.WriteFile(filepath.Join(s.root, indexFile), []byte("{not json"), 0644); err != nil {
		t.Fatalf("corrupt index: %v", err)
	}

	_, err := s.ListNotes()
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestReadNoteBodyNotFound(t *testing.T) {
	s := newTestStore(t, 100)

	_, err := s.ReadNoteBody("missing.md")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRefreshMetadata(t *testing.T) {
	s := newTestStore(t, 100)
	setClock(s, time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))

	filename, err := s.CreateNote("Old Title", "desc")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	edited := "---\ntitle: New Title\n---\n\nbody\n"
	if err := os.WriteFile(s.NotePath(filename), []byte(edited), 0644); err != nil {
		t.Fatalf("rewrite note: %v", err)
	}

	if err := s.RefreshMetadata(filename); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	records, err := s.ListNotes()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if records[0].Title != "New Title" {
		t.Errorf("expected refreshed title, got %q", records[0].Title)
	}
}

func TestRefreshMetadataHeadingFallback(t *testing.T) {
	s := newTestStore(t, 100)
	setClock(s, time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))

	filename, err := s.CreateNote("Old Title", "desc")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	edited := "# Heading Title\n\nno frontmatter here\n"
	if err := os.WriteFile(s.NotePath(filename), []byte(edited), 0644); err != nil {
		t.Fatalf("rewrite note: %v", err)
	}

	if err := s.RefreshMetadata(filename); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	records, err := s.ListNotes()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if records[0].Title != "Heading Title" {
		t.Errorf("expected heading fallback title, got %q", records[0].Title)
	}
}

func TestRefreshMetadataMissingFileIsNoop(t *testing.T) {
	s := newTestStore(t, 100)

	if err := s.RefreshMetadata("gone.md"); err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
}
