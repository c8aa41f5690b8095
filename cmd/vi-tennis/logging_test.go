package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

var rotatedLogName = regexp.MustCompile(`^vi-tennis-\d{8}-\d{6}\.log$`)

// inTempDir runs the test from an empty directory and restores the standard logger afterwards
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	flags := log.Flags()
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
	})
	return dir
}

func TestSetupLoggingDisabledLeavesNoTrace(t *testing.T) {
	dir := inTempDir(t)

	if f := setupLogging(false); f != nil {
		f.Close()
		t.Fatal("Expected no log file without debug")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected log output discarded, got %T", log.Writer())
	}
	if _, err := os.Stat(filepath.Join(dir, logDir)); !os.IsNotExist(err) {
		t.Errorf("Expected no %s directory without debug, stat err %v", logDir, err)
	}
}

func TestSetupLoggingWritesStartupLine(t *testing.T) {
	inTempDir(t)

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected a log file with debug")
	}
	log.Printf("match %s started", "abc")
	f.Close()

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Read log: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "vi-tennis starting (pid") {
		t.Errorf("Expected startup line, got %q", text)
	}
	if !strings.Contains(text, "match abc started") {
		t.Errorf("Expected game log line, got %q", text)
	}
	if w := log.Writer(); w == os.Stdout || w == os.Stderr {
		t.Error("Log output must not share the terminal")
	}
}

func TestSetupLoggingAppendsBelowLimit(t *testing.T) {
	inTempDir(t)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(path, []byte("previous session\n"), 0644); err != nil {
		t.Fatal(err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected a log file")
	}
	f.Close()

	data, _ := os.ReadFile(path)
	if !strings.HasPrefix(string(data), "previous session\n") {
		t.Errorf("Expected earlier content kept, got %q", data)
	}
	entries, _ := os.ReadDir(logDir)
	if len(entries) != 1 {
		t.Errorf("Expected no rotation below %d bytes, found %d files", maxLogSize, len(entries))
	}
}

func TestSetupLoggingRotatesOversizedFile(t *testing.T) {
	inTempDir(t)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(path, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatal(err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected a log file")
	}
	f.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatal(err)
	}
	var rotated []string
	for _, e := range entries {
		if e.Name() != logFileName {
			rotated = append(rotated, e.Name())
		}
	}
	if len(rotated) != 1 || !rotatedLogName.MatchString(rotated[0]) {
		t.Fatalf("Expected one vi-tennis-YYYYMMDD-HHMMSS.log, got %v", rotated)
	}
	if info, err := os.Stat(filepath.Join(logDir, rotated[0])); err != nil || info.Size() != maxLogSize+1 {
		t.Errorf("Expected rotated file to hold the old contents, stat %v err %v", info, err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() > maxLogSize {
		t.Errorf("Expected a fresh log file, stat %v err %v", info, err)
	}
}
