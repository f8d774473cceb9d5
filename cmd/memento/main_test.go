package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/memento/internal/store"
)

func writeBirthday(t *testing.T, content string, mtime time.Time) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mortality")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

func TestWriteStatus_Table(t *testing.T) {
	now := time.Date(2026, time.October, 18, 9, 0, 0, 0, time.Local)
	path := writeBirthday(t, "1990-05-15\n", now.Add(-2*time.Hour))

	var buf bytes.Buffer
	require.NoError(t, writeStatus(&buf, io.Discard, store.NewBirthdayFile(path), now, false))

	out := buf.String()
	assert.Contains(t, out, path)
	assert.Contains(t, out, "1990-05-15")
	assert.Contains(t, out, "36 years, 165 days (13,305 days)")
	assert.Contains(t, out, "2027-05-15, your 37th (in 209 days)")
	assert.Contains(t, out, "2 hours ago")
	assert.Contains(t, out, "no, already shown today")
}

func TestWriteStatus_JSON(t *testing.T) {
	now := time.Date(2026, time.October, 18, 9, 0, 0, 0, time.Local)
	lastShown := now.AddDate(0, 0, -3)
	path := writeBirthday(t, "1990-05-15\n", lastShown)

	var buf bytes.Buffer
	require.NoError(t, writeStatus(&buf, io.Discard, store.NewBirthdayFile(path), now, true))

	var report StatusReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.Equal(t, path, report.Path)
	assert.Equal(t, "1990-05-15", report.Birthday.String())
	assert.True(t, report.Due)
	assert.True(t, report.LastShown.Equal(lastShown))
	require.NotNil(t, report.Greeting)
	assert.Equal(t, 209, report.Greeting.DaysUntilBirthday)
}

func TestWriteStatus_DoesNotTouch(t *testing.T) {
	lastShown := time.Date(2026, time.October, 1, 12, 0, 0, 0, time.Local)
	path := writeBirthday(t, "1990-05-15\n", lastShown)

	require.NoError(t, writeStatus(&bytes.Buffer{}, io.Discard, store.NewBirthdayFile(path), time.Now(), false))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(lastShown))
}

func TestWriteStatus_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mortality")

	var buf bytes.Buffer
	require.NoError(t, writeStatus(&buf, io.Discard, store.NewBirthdayFile(path), time.Now(), false))
	assert.Contains(t, buf.String(), "No birthday stored")
}

func TestWriteStatus_Malformed(t *testing.T) {
	now := time.Date(2026, time.October, 18, 9, 0, 0, 0, time.Local)

	for name, content := range map[string]string{
		"unparseable": "not-a-date\n",
		"future":      "2030-01-01\n",
	} {
		t.Run(name, func(t *testing.T) {
			path := writeBirthday(t, content, now)

			var out, errOut bytes.Buffer
			err := writeStatus(&out, &errOut, store.NewBirthdayFile(path), now, false)
			assert.ErrorIs(t, err, store.ErrMalformed)
			assert.Empty(t, out.String())
			assert.Contains(t, errOut.String(), path)
			assert.Contains(t, errOut.String(), "Try deleting this file to start fresh.")
		})
	}
}

func TestRootCommand_TouchesBirthdayFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	yesterday := time.Now().AddDate(0, 0, -1)
	path := writeBirthday(t, "1990-05-15\n", yesterday)

	rootCmd.SetArgs([]string{"--birthday-file", path, "--format", "json", "--force=false"})
	require.NoError(t, rootCmd.Execute())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.ModTime().After(yesterday))
}

func TestRootCommand_MalformedFails(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := writeBirthday(t, "not-a-date\n", time.Now().AddDate(0, 0, -1))

	rootCmd.SetArgs([]string{"--birthday-file", path, "--format", "plain", "--force=false"})
	err := rootCmd.Execute()
	assert.ErrorIs(t, err, store.ErrMalformed)
}

func TestRootCommand_InvalidFormat(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := writeBirthday(t, "1990-05-15\n", time.Now())

	rootCmd.SetArgs([]string{"--birthday-file", path, "--format", "xml"})
	assert.Error(t, rootCmd.Execute())
}
