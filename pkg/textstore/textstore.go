// Package textstore implements the line-oriented flat-file stores that back
// every entity in the application: one file per entity kind, one record per
// line, fields joined by a fixed delimiter.
//
// A missing backing file is never an error on the read path — it reads as an
// empty store. Writes report I/O failures to the caller and leave error
// handling (and any in-memory state) to it.
package textstore

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
)

// Delimiter separates fields of user and history records. It is a
// multi-character sequence chosen to be implausible inside field values;
// no escaping is performed, so a field containing it corrupts its record.
const Delimiter = "````"

// Store is a line-oriented flat file on fs. All operations are synchronous
// and unlocked: concurrent writers are out of contract.
type Store struct {
	fs   afero.Fs
	path string
}

// New returns a Store over path on fs.
func New(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Lines reads every line of the store, trimmed of the trailing newline.
// Blank lines are dropped. A missing file yields (nil, nil).
func (s *Store) Lines() ([]string, error) {
	f, err := s.fs.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("textstore: open %s: %w", s.path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("textstore: read %s: %w", s.path, err)
	}
	return lines, nil
}

// Overwrite replaces the whole store with the given lines (wholesale
// rewrite). The file is created if absent.
func (s *Store) Overwrite(lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := afero.WriteFile(s.fs, s.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("textstore: write %s: %w", s.path, err)
	}
	return nil
}

// Append adds one record line to the end of the store, creating the file if
// it does not exist yet.
func (s *Store) Append(line string) error {
	f, err := s.fs.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("textstore: open %s: %w", s.path, err)
	}
	defer f.Close()

	if _, err := f.Write([]byte(line + "\n")); err != nil {
		return fmt.Errorf("textstore: append %s: %w", s.path, err)
	}
	return nil
}

// Join encodes fields into one record line. Field values must not contain
// delim; that constraint is documented, not enforced.
func Join(fields []string, delim string) string {
	return strings.Join(fields, delim)
}

// Split decodes a record line into exactly arity fields. It reports ok=false
// when the field count does not match, which callers treat as a malformed
// record to skip, never an error.
func Split(line, delim string, arity int) ([]string, bool) {
	fields := strings.Split(line, delim)
	if len(fields) != arity {
		return nil, false
	}
	return fields, true
}
