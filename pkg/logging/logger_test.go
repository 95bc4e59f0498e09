package logging

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// setupTestDir points the package at a temp log directory and resets the
// session state, restoring everything on cleanup.
func setupTestDir(t *testing.T) {
	t.Helper()

	tempDir := t.TempDir()

	origLogDir := logDir
	origInitErr := initErr
	origInitOnce := initOnce
	origSessionID := sessionID
	origSessionIDOnce := sessionIDOnce

	logDir = tempDir
	initErr = nil
	initOnce = sync.Once{}
	sessionID = ""
	sessionIDOnce = sync.Once{}
	initOnce.Do(func() {}) // directory already exists

	t.Cleanup(func() {
		logDir = origLogDir
		initErr = origInitErr
		initOnce = origInitOnce
		sessionID = origSessionID
		sessionIDOnce = origSessionIDOnce
	})
}

func TestNewLogger(t *testing.T) {
	setupTestDir(t)

	logger, err := NewLogger("converter")
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Close()

	if logger.SessionID() == "" {
		t.Error("expected a session ID")
	}
	if logger.LogPath() == "" {
		t.Error("expected a log path")
	}
	if !strings.HasSuffix(logger.LogPath(), "-devlink.log") {
		t.Errorf("unexpected log filename %q", logger.LogPath())
	}
	if _, err := os.Stat(logger.LogPath()); err != nil {
		t.Errorf("log file missing: %v", err)
	}
}

func TestLoggerFormatting(t *testing.T) {
	setupTestDir(t)

	logger, err := NewLogger("ocr")
	if err != nil {
		t.Fatal(err)
	}
	logger.Infof("extracted %d words", 42)
	logger.Errorf("engine failed: %v", os.ErrNotExist)
	logger.Close()

	data, err := os.ReadFile(logger.LogPath())
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	for _, want := range []string{"[ocr]", "[INFO]", "extracted 42 words", "[ERROR]", "engine failed"} {
		if !strings.Contains(content, want) {
			t.Errorf("log missing %q:\n%s", want, content)
		}
	}
}

func TestComponentsShareSessionFile(t *testing.T) {
	setupTestDir(t)

	a, err := NewLogger("selector")
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()
	b, err := NewLogger("assistant")
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	if a.LogPath() != b.LogPath() {
		t.Errorf("components split across files: %q vs %q", a.LogPath(), b.LogPath())
	}
	if a.SessionID() != b.SessionID() {
		t.Error("session ID differs between components")
	}

	// One session, one log file.
	entries, err := filepath.Glob(filepath.Join(logDir, "*-devlink.log"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 log file, found %d", len(entries))
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	setupTestDir(t)

	logger, err := NewLogger("session")
	if err != nil {
		t.Fatal(err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("first close failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second close failed: %v", err)
	}
}
