package notes

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"tnotes/internal/logs"
)

const indexFile = "index.json"

// Store owns the storage directory: one markdown file per note plus
// index.json mapping filename to title/creation metadata. All mutating
// operations persist the index before returning.
type Store struct {
	root       string
	dateFormat string
	maxNotes   int
	tmpl       Template

	// now is swapped out by tests to pin the filename timestamp.
	now func() time.Time
}

// NewStore creates a Store for the given storage directory. dateFormat is
// a Go time layout used both for filenames and the created metadata.
func NewStore(root, dateFormat string, maxNotes int) *Store {
	return &Store{
		root:       root,
		dateFormat: dateFormat,
		maxNotes:   maxNotes,
		tmpl:       DefaultTemplate(),
		now:        time.Now,
	}
}

// Initialize idempotently ensures the storage directory, an empty index
// file, and the template file exist, then loads the template. Writes only
// happen on first run.
func (s *Store) Initialize() error {
	if err := os.MkdirAll(s.root, 0755); err != nil {
		return fmt.Errorf("creating storage directory: %w", err)
	}

	indexPath := filepath.Join(s.root, indexFile)
	if _, err := os.Stat(indexPath); os.IsNotExist(err) {
		if err := os.WriteFile(indexPath, []byte("{}\n"), 0644); err != nil {
			return fmt.Errorf("writing empty index: %w", err)
		}
	}

	tmplPath := filepath.Join(s.root, TemplateFile)
	if _, err := os.Stat(tmplPath); os.IsNotExist(err) {
		if err := os.WriteFile(tmplPath, []byte(defaultTemplate), 0644); err != nil {
			return fmt.Errorf("writing default template: %w", err)
		}
	}

	s.tmpl = LoadTemplate(tmplPath)
	return nil
}

// NotePath returns the absolute path of a note file.
func (s *Store) NotePath(filename string) string {
	return filepath.Join(s.root, filename)
}

// ListNotes loads the index and returns its entries newest-created-first.
// Never mutates storage.
func (s *Store) ListNotes() ([]NoteRecord, error) {
	index, err := s.loadIndex()
	if err != nil {
		return nil, err
	}

	records := make([]NoteRecord, 0, len(index))
	for filename, entry := range index {
		records = append(records, NoteRecord{
			Filename: filename,
			Title:    entry.Title,
			Created:  entry.Created,
		})
	}

	// Filenames are formatted creation timestamps, so sorting them
	// descending yields newest-first.
	sort.Slice(records, func(i, j int) bool {
		return records[i].Filename > records[j].Filename
	})

	return records, nil
}

// CreateNote validates the inputs, renders the template, writes the note
// file and then the index entry, in that order. A crash between the two
// writes leaves an orphan file, never a dangling index entry.
func (s *Store) CreateNote(title, description string) (string, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" {
		return "", ErrInvalidInput
	}

	count, err := s.countNoteFiles()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if count >= s.maxNotes {
		return "", fmt.Errorf("%w (limit %d)", ErrCapacityExceeded, s.maxNotes)
	}

	timestamp := s.now().Format(s.dateFormat)
	filename := timestamp + ".md"
	path := s.NotePath(filename)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%w: %s", ErrDuplicateNote, filename)
	}

	index, err := s.loadIndex()
	if err != nil {
		return "", err
	}

	body := s.tmpl.Render(title, description, timestamp, timestamp)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		return "", fmt.Errorf("writing note file: %w", err)
	}

	index[filename] = indexEntry{Title: title, Created: timestamp}
	if err := s.saveIndex(index); err != nil {
		return "", err
	}

	logs.Logger.Printf("created note %s (%q)", filename, title)
	return filename, nil
}

// DeleteNote removes the note file and its index entry. Idempotent: a
// missing file or index entry is not an error, so the operation can be
// safely retried.
func (s *Store) DeleteNote(filename string) error {
	if err := os.Remove(s.NotePath(filename)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing note file: %w", err)
	}

	index, err := s.loadIndex()
	if err != nil {
		return err
	}
	if _, ok := index[filename]; ok {
		delete(index, filename)
		if err := s.saveIndex(index); err != nil {
			return err
		}
	}

	logs.Logger.Printf("deleted note %s", filename)
	return nil
}

// ReadNoteBody returns the raw contents of a note file.
func (s *Store) ReadNoteBody(filename string) (string, error) {
	data, err := os.ReadFile(s.NotePath(filename))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, filename)
		}
		return "", err
	}
	return string(data), nil
}

// RefreshMetadata re-reads a note's title after an external edit and folds
// a changed title back into the index. No-op when the note has no
// recognizable title or is gone.
func (s *Store) RefreshMetadata(filename string) error {
	body, err := s.ReadNoteBody(filename)
	if err != nil {
		return nil
	}

	title := ExtractTitle([]byte(body))
	if title == "" {
		return nil
	}

	index, err := s.loadIndex()
	if err != nil {
		return err
	}
	entry, ok := index[filename]
	if !ok || entry.Title == title {
		return nil
	}

	entry.Title = title
	index[filename] = entry
	logs.Logger.Printf("refreshed title of %s to %q", filename, title)
	return s.saveIndex(index)
}

func (s *Store) loadIndex() (map[string]indexEntry, error) {
	data, err := os.ReadFile(filepath.Join(s.root, indexFile))
	if err != nil {
		return nil, fmt.Errorf("%w: reading index: %v", ErrStorageUnavailable, err)
	}
	index := make(map[string]indexEntry)
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("%w: corrupt index: %v", ErrStorageUnavailable, err)
	}
	return index, nil
}

func (s *Store) saveIndex(index map[string]indexEntry) error {
	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding index: %v", ErrStorageUnavailable, err)
	}
	if err := os.WriteFile(filepath.Join(s.root, indexFile), data, 0644); err != nil {
		return fmt.Errorf("%w: writing index: %v", ErrStorageUnavailable, err)
	}
	return nil
}

// countNoteFiles counts the markdown note files on disk. The template and
// the index do not count against the limit.
func (s *Store) countNoteFiles() (int, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) == ".md" && name != TemplateFile {
			count++
		}
	}
	return count, nil
}
