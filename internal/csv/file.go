package csv

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"shoestock/internal/models"

	"github.com/jszwec/csvutil"
	"github.com/rs/zerolog/log"
)

var (
	// ErrFileNotFound is returned when the inventory file does not exist.
	ErrFileNotFound = fmt.Errorf("inventory file not found: %w", os.ErrNotExist)
	// ErrMalformedRecord is returned when a line cannot be decoded into a Shoe.
	ErrMalformedRecord = errors.New("malformed inventory record")
)

// File is the comma separated inventory file. It is opened and closed
// within each call and never held open.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Path() string {
	return f.path
}

// Exists reports whether the inventory file is present.
func (f *File) Exists() bool {
	info, err := os.Stat(f.path)
	return err == nil && !info.IsDir()
}

// Load decodes every line after the first. The first line is the header
// whatever it holds, even when blank. Blank lines after it are skipped.
// Any bad line fails the whole load and no records are returned.
func (f *File) Load() ([]models.Shoe, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, f.path)
		}
		return nil, fmt.Errorf("failed to open inventory file: %w", err)
	}
	defer file.Close()

	reader := newLineReader(file)
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read inventory header: %w", err)
	}

	decoder, err := csvutil.NewDecoder(reader, models.Header...)
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory decoder: %w", err)
	}

	var shoes []models.Shoe
	for {
		var shoe models.Shoe
		err := decoder.Decode(&shoe)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %v", ErrMalformedRecord, filepath.Base(f.path), reader.line, err)
		}
		shoes = append(shoes, shoe)
	}

	log.Debug().Str("file", f.path).Int("records", len(shoes)).Msg("inventory file loaded")
	return shoes, nil
}

// Append writes one record to the end of the file. The file must exist.
func (f *File) Append(shoe models.Shoe) error {
	if !f.Exists() {
		return fmt.Errorf("%w: %s", ErrFileNotFound, f.path)
	}

	file, err := os.OpenFile(f.path, os.O_RDWR|os.O_APPEND, 0)
	if err != nil {
		return fmt.Errorf("failed to open inventory file: %w", err)
	}
	defer file.Close()

	open, err := endsOpen(file)
	if err != nil {
		return fmt.Errorf("failed to inspect inventory file: %w", err)
	}
	if open {
		if _, err := file.WriteString("\n"); err != nil {
			return fmt.Errorf("failed to write inventory file: %w", err)
		}
	}

	if err := writeRecords(file, false, []models.Shoe{shoe}); err != nil {
		return err
	}

	log.Debug().Str("file", f.path).Str("code", shoe.Code).Msg("record appended")
	return nil
}

// Rewrite replaces the whole file with a header and the given records.
// Content goes to a temp file in the same directory which is then renamed
// over the original.
func (f *File) Rewrite(shoes []models.Shoe) error {
	info, err := os.Stat(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, f.path)
		}
		return fmt.Errorf("failed to stat inventory file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".inventory-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := writeRecords(tmp, true, shoes); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, info.Mode().Perm()); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace inventory file: %w", err)
	}

	log.Debug().Str("file", f.path).Int("records", len(shoes)).Msg("inventory file rewritten")
	return nil
}

// Create writes a new file holding only the header. It fails if the file exists.
func (f *File) Create() error {
	file, err := os.OpenFile(f.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create inventory file: %w", err)
	}
	defer file.Close()

	return writeRecords(file, true, nil)
}

func writeRecords(w io.Writer, header bool, shoes []models.Shoe) error {
	writer := &lineWriter{w: bufio.NewWriter(w)}
	if header {
		if err := writer.Write(models.Header); err != nil {
			return fmt.Errorf("failed to write inventory header: %w", err)
		}
	}

	encoder := csvutil.NewEncoder(writer)
	encoder.AutoHeader = false
	for i := range shoes {
		if err := encoder.Encode(&shoes[i]); err != nil {
			return fmt.Errorf("failed to encode record %s: %w", shoes[i].Code, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to write inventory file: %w", err)
	}
	return nil
}

// endsOpen reports whether a non-empty file lacks a trailing newline.
func endsOpen(file *os.File) (bool, error) {
	info, err := file.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return false, nil
	}

	last := make([]byte, 1)
	if _, err := file.ReadAt(last, info.Size()-1); err != nil {
		return false, err
	}
	return last[0] != '\n', nil
}

// lineReader splits each line on commas with no quoting, so quotes in a
// product name are plain text. Only the first five fields are kept and the
// cost and quantity fields are trimmed before decoding.
type lineReader struct {
	scanner *bufio.Scanner
	line    int
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{scanner: bufio.NewScanner(r)}
}

func (l *lineReader) Read() ([]string, error) {
	for l.scanner.Scan() {
		l.line++
		text := l.scanner.Text()
		if l.line == 1 {
			return []string{text}, nil
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		fields := strings.Split(text, ",")
		if len(fields) > len(models.Header) {
			fields = fields[:len(models.Header)]
		}
		for _, i := range []int{3, 4} {
			if i < len(fields) {
				fields[i] = strings.TrimSpace(fields[i])
			}
		}
		return fields, nil
	}
	if err := l.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

// lineWriter writes each record as its fields joined by commas.
type lineWriter struct {
	w   *bufio.Writer
	err error
}

func (l *lineWriter) Write(record []string) error {
	if l.err != nil {
		return l.err
	}
	if _, err := l.w.WriteString(strings.Join(record, ",") + "\n"); err != nil {
		l.err = err
	}
	return l.err
}

func (l *lineWriter) Flush() {
	if l.err == nil {
		l.err = l.w.Flush()
	}
}

func (l *lineWriter) Error() error {
	return l.err
}
