// Package store persists the birthday and the "last shown" marker.
//
// Both live in a single text file: the first non-comment line holds the
// birthday as YYYY-MM-DD, and the file's modification time records when the
// greeting was last displayed.
package store

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmylchreest/memento/internal/model"
)

// Errors returned by BirthdayFile.
var (
	// ErrNoBirthday means the file exists but holds no data line.
	ErrNoBirthday = errors.New("no birthday stored")

	// ErrMalformed means the data line is not a YYYY-MM-DD date, or is a
	// date after today.
	ErrMalformed = errors.New("malformed birthday")
)

// fileHeader is written above the date line when the file is created.
const fileHeader = `# Config file for the memento daily greeting.
# In addition to the birthday below, the modify time is significant
# as it is used to show the greeting only once per day.
#
# Delete this file to enter a different birthday.
`

// Remediation returns the advice printed when the birthday file at path
// cannot be read.
func Remediation(path string) string {
	return fmt.Sprintf("Error reading the memento config file (%s).\nTry deleting this file to start fresh.\n", path)
}

// FileError describes a failure on the birthday file.
type FileError struct {
	Path string
	Op   string
	Err  error
}

func (e *FileError) Error() string {
	return "birthday file " + e.Path + ": " + e.Op + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// BirthdayFile manages the birthday file at a fixed path.
type BirthdayFile struct {
	path string
}

// NewBirthdayFile creates a BirthdayFile for path.
func NewBirthdayFile(path string) *BirthdayFile {
	return &BirthdayFile{path: path}
}

// Path returns the file path.
func (f *BirthdayFile) Path() string {
	return f.path
}

// Load reads the birthday from the first non-comment line.
// Returns ErrNoBirthday if there is no data line and ErrMalformed if the
// line does not parse; OS errors are returned wrapped in a FileError.
func (f *BirthdayFile) Load() (model.Date, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return model.Date{}, &FileError{Path: f.path, Op: "open", Err: err}
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		d, err := model.ParseDate(line, model.StoredLayout)
		if err != nil {
			return model.Date{}, &FileError{
				Path: f.path,
				Op:   "parse",
				Err:  fmt.Errorf("%w: %w", ErrMalformed, err),
			}
		}
		return d, nil
	}

	if err := scanner.Err(); err != nil {
		return model.Date{}, &FileError{Path: f.path, Op: "read", Err: err}
	}

	return model.Date{}, &FileError{Path: f.path, Op: "parse", Err: ErrNoBirthday}
}

// LoadAsOf is Load, additionally rejecting a birthday after today as
// ErrMalformed.
func (f *BirthdayFile) LoadAsOf(today model.Date) (model.Date, error) {
	d, err := f.Load()
	if err != nil {
		return model.Date{}, err
	}
	if d.After(today) {
		return model.Date{}, &FileError{
			Path: f.path,
			Op:   "parse",
			Err:  fmt.Errorf("%w: %s is in the future", ErrMalformed, d),
		}
	}
	return d, nil
}

// LastShown returns the file's modification time.
func (f *BirthdayFile) LastShown() (time.Time, error) {
	info, err := os.Stat(f.path)
	if err != nil {
		return time.Time{}, &FileError{Path: f.path, Op: "stat", Err: err}
	}
	return info.ModTime(), nil
}

// Touch sets the file's access and modification times to t.
func (f *BirthdayFile) Touch(t time.Time) error {
	if err := os.Chtimes(f.path, t, t); err != nil {
		return &FileError{Path: f.path, Op: "touch", Err: err}
	}
	return nil
}

// Create writes a new file holding the comment header and birthday,
// replacing any existing file. Parent directories are created as needed.
func (f *BirthdayFile) Create(birthday model.Date) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return &FileError{Path: f.path, Op: "create", Err: err}
	}

	data := fileHeader + birthday.String() + "\n"
	if err := writeAtomic(f.path, []byte(data), 0644); err != nil {
		return &FileError{Path: f.path, Op: "create", Err: err}
	}
	return nil
}
