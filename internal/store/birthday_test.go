package store

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/memento/internal/model"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mortality")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestBirthdayFile_Load(t *testing.T) {
	path := writeFile(t, "# a comment\n\n   # indented comment\n1990-05-15\n1999-01-01\n")

	got, err := NewBirthdayFile(path).Load()
	require.NoError(t, err)
	assert.Equal(t, model.Date{Year: 1990, Month: time.May, Day: 15}, got)
}

func TestBirthdayFile_LoadWithoutTrailingNewline(t *testing.T) {
	path := writeFile(t, "1990-05-15")

	got, err := NewBirthdayFile(path).Load()
	require.NoError(t, err)
	assert.Equal(t, 1990, got.Year)
}

func TestBirthdayFile_LoadMalformed(t *testing.T) {
	path := writeFile(t, "# header\nnot-a-date\n")

	_, err := NewBirthdayFile(path).Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)

	var fe *FileError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, path, fe.Path)
	assert.Contains(t, err.Error(), "not-a-date")
}

func TestBirthdayFile_LoadAsOf(t *testing.T) {
	today := model.Date{Year: 2026, Month: time.October, Day: 18}

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"past", "1990-05-15\n", nil},
		{"born today", "2026-10-18\n", nil},
		{"tomorrow", "2026-10-19\n", ErrMalformed},
		{"far future", "2030-01-01\n", ErrMalformed},
		{"unparseable", "not-a-date\n", ErrMalformed},
		{"no data line", "# only a comment\n", ErrNoBirthday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBirthdayFile(writeFile(t, tt.content)).LoadAsOf(today)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRemediation(t *testing.T) {
	msg := Remediation("/home/u/.config/mortality")

	assert.Contains(t, msg, "(/home/u/.config/mortality)")
	assert.True(t, strings.HasSuffix(msg, "Try deleting this file to start fresh.\n"))
}

func TestBirthdayFile_LoadEmpty(t *testing.T) {
	for name, content := range map[string]string{
		"empty":         "",
		"only comments": "# nothing here\n#\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewBirthdayFile(writeFile(t, content)).Load()
			assert.ErrorIs(t, err, ErrNoBirthday)
			assert.NotErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestBirthdayFile_LoadMissing(t *testing.T) {
	f := NewBirthdayFile(filepath.Join(t.TempDir(), "missing"))

	_, err := f.Load()
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = f.LastShown()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBirthdayFile_Create(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config", "mortality")
	f := NewBirthdayFile(path)

	birthday := model.Date{Year: 1985, Month: time.July, Day: 4}
	require.NoError(t, f.Create(birthday))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "1985-07-04", lines[len(lines)-1])
	for _, line := range lines[:len(lines)-1] {
		assert.True(t, strings.HasPrefix(line, "#"), "header line %q", line)
	}

	loaded, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, birthday, loaded)

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files left behind")
}

func TestBirthdayFile_CreateReplacesEmptyFile(t *testing.T) {
	path := writeFile(t, "")
	f := NewBirthdayFile(path)

	require.NoError(t, f.Create(model.Date{Year: 2000, Month: time.March, Day: 1}))

	got, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, "2000-03-01", got.String())
}

func TestBirthdayFile_TouchAndLastShown(t *testing.T) {
	f := NewBirthdayFile(writeFile(t, "1990-05-15\n"))

	past := time.Date(2026, time.October, 17, 21, 0, 0, 0, time.Local)
	require.NoError(t, f.Touch(past))

	got, err := f.LastShown()
	require.NoError(t, err)
	assert.True(t, got.Equal(past), "got %v want %v", got, past)

	now := past.Add(12 * time.Hour)
	require.NoError(t, f.Touch(now))

	got, err = f.LastShown()
	require.NoError(t, err)
	assert.True(t, got.Equal(now))
}

func TestBirthdayFile_TouchMissing(t *testing.T) {
	err := NewBirthdayFile(filepath.Join(t.TempDir(), "missing")).Touch(time.Now())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteAtomic_CleansUpOnFailure(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")

	// Renaming a file over a non-empty directory fails on every platform.
	require.NoError(t, os.MkdirAll(filepath.Join(target, "child"), 0755))

	err := writeAtomic(target, []byte("data"), 0644)
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "target", entries[0].Name())
}
