package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"tasklog/internal/domain"
)

// header is the fixed four-column schema of the log file.
var header = []string{"timestamp", "date", "task", "hours"}

// timestampLayouts accepted when reading back rows. Rows are written with
// RFC 3339; the zoneless layout keeps logs written by other tools readable.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
}

// Store is an append-only task log backed by a single CSV file. It holds
// no open file handle; each call opens, uses, and closes the file.
type Store struct {
	path     string
	observer Observer
}

// NewStore creates a Store over the given file path. The file is created
// lazily on first append. A nil observer discards skip events.
func NewStore(path string, observer Observer) *Store {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Store{path: path, observer: observer}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Append writes one record to the end of the log, creating the file with
// a header row if it does not exist yet. The write is flushed and synced
// before returning.
func (s *Store) Append(rec domain.Record) error {
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: opening %s: %v", ErrStorage, s.path, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return fmt.Errorf("%w: stat %s: %v", ErrStorage, s.path, err)
	}

	w := csv.NewWriter(f)
	if stat.Size() == 0 {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("%w: writing header: %v", ErrStorage, err)
		}
	}

	row := []string{
		rec.Timestamp.Format(time.RFC3339),
		rec.Date,
		rec.Task,
		domain.FormatHours(rec.Hours),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("%w: writing row: %v", ErrStorage, err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: flushing %s: %v", ErrStorage, s.path, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("%w: syncing %s: %v", ErrStorage, s.path, err)
	}
	return nil
}

// ReadAll returns every record in the log in insertion order. A missing
// file yields an empty result. Malformed rows are skipped and reported
// through the Observer, never failing the whole read.
func (s *Store) ReadAll() ([]domain.Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: opening %s: %v", ErrStorage, s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var records []domain.Record
	line := 0
	for {
		line++
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				s.observer.OnRowSkipped(parseErr.Line, err)
				continue
			}
			return nil, fmt.Errorf("%w: reading %s: %v", ErrStorage, s.path, err)
		}
		if line == 1 {
			continue // header
		}

		rec, err := parseRow(row)
		if err != nil {
			s.observer.OnRowSkipped(line, err)
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

func parseRow(row []string) (domain.Record, error) {
	if len(row) != len(header) {
		return domain.Record{}, fmt.Errorf("expected %d fields, got %d", len(header), len(row))
	}

	ts, err := parseTimestamp(row[0])
	if err != nil {
		return domain.Record{}, fmt.Errorf("bad timestamp %q: %v", row[0], err)
	}

	hours, err := strconv.ParseFloat(row[3], 64)
	if err != nil {
		return domain.Record{}, fmt.Errorf("bad hours %q: %v", row[3], err)
	}

	rec := domain.Record{
		Timestamp: ts,
		Date:      row[1],
		Task:      row[2],
		Hours:     hours,
	}
	if err := rec.Validate(); err != nil {
		return domain.Record{}, err
	}
	return rec, nil
}

func parseTimestamp(v string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		ts, err := time.Parse(layout, v)
		if err == nil {
			return ts, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
